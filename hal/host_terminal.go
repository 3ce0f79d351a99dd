package hal

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"
)

const termLogLines = 5

// RunTerminal renders the scene into the controlling terminal with tcell.
// Sprites are mapped from engine extents (cfg.Width x cfg.Height) onto the
// character grid. q, Esc or Ctrl-C quit; p emits KeyP; F1 toggles the log.
func RunTerminal(ctx context.Context, h HAL, cfg TerminalConfig, newScene func(HAL) Scene) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("hal: terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("hal: terminal init: %w", err)
	}
	defer screen.Fini()
	return runTerminal(ctx, h, screen, cfg, newScene)
}

func runTerminal(ctx context.Context, h HAL, screen tcell.Screen, cfg TerminalConfig, newScene func(HAL) Scene) error {
	hh, err := asHost(h)
	if err != nil {
		return err
	}
	if cfg.Width <= 0 {
		cfg.Width = defaultWidth
	}
	if cfg.Height <= 0 {
		cfg.Height = defaultHeight
	}
	scene := newScene(hh)
	tr := &termRenderer{
		view:    Viewport{Width: cfg.Width, Height: cfg.Height},
		title:   cfg.Title,
		showLog: true,
	}

	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	defer close(quit)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()

	t := time.NewTicker(tickPeriod(cfg.Hz))
	defer t.Stop()

	var tick uint64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				switch {
				case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyCtrlC:
					return nil
				case ev.Key() == tcell.KeyF1:
					tr.showLog = !tr.showLog
				case ev.Key() == tcell.KeyRune && (ev.Rune() == 'q' || ev.Rune() == 'Q'):
					return nil
				case ev.Key() == tcell.KeyRune && (ev.Rune() == 'p' || ev.Rune() == 'P'):
					hh.kbd.emit(KeyP, true)
				}
			case *tcell.EventResize:
				screen.Sync()
			}
		case <-t.C:
			if scene != nil {
				if err := scene.Step(); err != nil {
					return err
				}
			}
			hh.logger.drain(tr.appendLog)
			tr.draw(screen, scene, hh.win.HitTest())
			tick++
			if cfg.Ticks > 0 && tick >= cfg.Ticks {
				return nil
			}
		}
	}
}

type termRenderer struct {
	view    Viewport
	title   string
	showLog bool
	log     []string
	order   []Sprite
}

func (r *termRenderer) appendLog(s string) {
	r.log = append(r.log, s)
	if len(r.log) > termLogLines {
		r.log = r.log[len(r.log)-termLogLines:]
	}
}

func (r *termRenderer) draw(screen tcell.Screen, scene Scene, hitTest bool) {
	screen.Clear()
	cols, rows := screen.Size()
	if rows < 2 || cols < 1 {
		screen.Show()
		return
	}

	if scene != nil {
		r.order = depthOrder(r.order, scene.Sprites())
		for i := range r.order {
			s := &r.order[i]
			if s.Color.A == 0 {
				continue
			}
			col, row, ok := cellFor(r.view, s.X, s.Y, cols, rows-1)
			if !ok {
				continue
			}
			screen.SetContent(col, row, glyphFor(s), nil, styleFor(s))
		}
	}

	if r.showLog {
		dim := tcell.StyleDefault.Foreground(tcell.ColorGray)
		for i, line := range r.log {
			putString(screen, 0, i, line, dim)
		}
	}

	status := r.title
	if hitTest {
		status += "  click: captured"
	} else {
		status += "  click: passthrough"
	}
	if st, ok := scene.(Statuser); ok {
		status += "  " + st.Status()
	}
	putString(screen, 0, rows-1, status, tcell.StyleDefault.Reverse(true))
	screen.Show()
}

// cellFor maps an engine position onto a cols x rows character grid.
func cellFor(v Viewport, x, y float64, cols, rows int) (col, row int, ok bool) {
	if v.Width <= 0 || v.Height <= 0 {
		return 0, 0, false
	}
	sx, sy := v.ToScreen(x, y)
	fc := math.Floor(sx * float64(cols) / float64(v.Width))
	fr := math.Floor(sy * float64(rows) / float64(v.Height))
	if fc < 0 || fr < 0 || fc >= float64(cols) || fr >= float64(rows) {
		return 0, 0, false
	}
	return int(fc), int(fr), true
}

var arrowGlyphs = [8]rune{'↑', '↖', '←', '↙', '↓', '↘', '→', '↗'}

func glyphFor(s *Sprite) rune {
	switch s.Texture {
	case TextureDotCore:
		return '●'
	case TextureDotGlow:
		return '○'
	case TextureMouse:
		return '▮'
	case TextureArrow:
		i := int(math.Round(s.Rotation/(math.Pi/4))) % len(arrowGlyphs)
		if i < 0 {
			i += len(arrowGlyphs)
		}
		return arrowGlyphs[i]
	default:
		return ' '
	}
}

// styleFor blends the sprite color over black. Terminals have no alpha, so
// faint sprites keep a floor of visibility.
func styleFor(s *Sprite) tcell.Style {
	a := clamp(float64(s.Color.A)/0xff, 0.25, 1)
	c := tcell.NewRGBColor(
		int32(float64(s.Color.R)*a),
		int32(float64(s.Color.G)*a),
		int32(float64(s.Color.B)*a),
	)
	return tcell.StyleDefault.Foreground(c)
}

func putString(screen tcell.Screen, x, y int, s string, style tcell.Style) {
	cols, _ := screen.Size()
	for _, r := range s {
		if x >= cols {
			return
		}
		screen.SetContent(x, y, r, nil, style)
		x++
	}
}
