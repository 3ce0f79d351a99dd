//go:build cgo

package hal

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	consoleWidth  = 480
	consoleMargin = 8
)

// RunWindow opens a transparent, undecorated, always-on-top overlay window
// and steps the scene once per tick. It blocks until the window closes, Esc
// is pressed or ctx is done. It must be called from the main goroutine.
func RunWindow(ctx context.Context, h HAL, cfg WindowConfig, newScene func(HAL) Scene) error {
	hh, err := asHost(h)
	if err != nil {
		return err
	}
	cfg.normalize()

	scene := newScene(hh)
	g := &hostGame{
		ctx:     ctx,
		h:       hh,
		cfg:     cfg,
		scene:   scene,
		view:    Viewport{Width: cfg.Width, Height: cfg.Height},
		console: newConsole(consoleWidth, cfg.Console),
	}
	g.loadTextures()

	hh.win.bind(func(hitTest bool) {
		ebiten.SetWindowMousePassthrough(!hitTest)
	})

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowPosition(cfg.X, cfg.Y)
	ebiten.SetWindowDecorated(false)
	ebiten.SetWindowFloating(true)
	ebiten.SetVsyncEnabled(cfg.Vsync)
	ebiten.SetTPS(cfg.TPS)
	err = ebiten.RunGameWithOptions(g, &ebiten.RunGameOptions{
		ScreenTransparent: true,
		SkipTaskbar:       true,
	})
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

type hostGame struct {
	ctx   context.Context
	h     *hostHAL
	cfg   WindowConfig
	scene Scene
	view  Viewport

	textures [TextureMouse + 1]*ebiten.Image
	order    []Sprite

	console   *console
	logImg    *ebiten.Image
	statusImg *ebiten.Image
}

func (g *hostGame) loadTextures() {
	for id := range g.textures {
		if img := textureImage(TextureID(id)); img != nil {
			g.textures[id] = ebiten.NewImageFromImage(img)
		}
	}
	w, h := g.console.log.Size()
	g.logImg = ebiten.NewImage(int(w), int(h))
	w, h = g.console.status.Size()
	g.statusImg = ebiten.NewImage(int(w), int(h))
}

func (g *hostGame) Update() error {
	if g.ctx.Err() != nil || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.console.visible = !g.console.visible
	}
	g.h.kbd.poll()
	g.h.logger.drain(g.console.println)

	if g.scene != nil {
		if err := g.scene.Step(); err != nil {
			return err
		}
	}
	g.console.setStatus(g.statusLine())
	return nil
}

func (g *hostGame) statusLine() string {
	var b strings.Builder
	b.WriteString(g.cfg.Title)
	fmt.Fprintf(&b, "  tps %.0f", ebiten.ActualTPS())
	if g.h.win.HitTest() {
		b.WriteString("  click: captured")
	} else {
		b.WriteString("  click: passthrough")
	}
	if st, ok := g.scene.(Statuser); ok {
		b.WriteString("  ")
		b.WriteString(st.Status())
	}
	return b.String()
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	if g.scene != nil {
		g.order = depthOrder(g.order, g.scene.Sprites())
		for i := range g.order {
			g.drawSprite(screen, &g.order[i])
		}
	}
	if g.console.visible {
		g.drawConsole(screen)
	}
}

func (g *hostGame) drawSprite(screen *ebiten.Image, s *Sprite) {
	if int(s.Texture) >= len(g.textures) {
		return
	}
	img := g.textures[s.Texture]
	if img == nil {
		return
	}
	b := img.Bounds()

	var op ebiten.DrawImageOptions
	op.GeoM.Translate(-float64(b.Dx())/2, -float64(b.Dy())/2)
	op.GeoM.Scale(s.ScaleX, s.ScaleY)
	// Engine rotation is counter-clockwise with +Y up; GeoM works with +Y down.
	op.GeoM.Rotate(-s.Rotation)
	x, y := g.view.ToScreen(s.X, s.Y)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(s.Color)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(img, &op)
}

func (g *hostGame) drawConsole(screen *ebiten.Image) {
	if l := g.console.log; l.dirty {
		l.buf = l.view(l.buf)
		g.logImg.WritePixels(l.buf)
		l.dirty = false
	}
	if g.console.status.dirty {
		g.statusImg.WritePixels(g.console.status.img.Pix)
		g.console.status.dirty = false
	}

	statusY := float64(g.cfg.Height - statusHeight - consoleMargin)
	logY := statusY - float64(g.logImg.Bounds().Dy())

	var op ebiten.DrawImageOptions
	op.GeoM.Translate(consoleMargin, logY)
	op.ColorScale.ScaleAlpha(0.85)
	screen.DrawImage(g.logImg, &op)

	op = ebiten.DrawImageOptions{}
	op.GeoM.Translate(consoleMargin, statusY)
	screen.DrawImage(g.statusImg, &op)
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}
