package hal

import (
	"image"
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
	"tinygo.org/x/tinyterm"
)

const (
	consoleFontHeight = 10
	consoleFontOffset = 6
	consoleRows       = 12
	statusHeight      = 12
	statusBaseline    = 9
)

var (
	colorStatusBG = color.RGBA{R: 0x10, G: 0x10, B: 0x14, A: 0xff}
	colorStatusFG = color.RGBA{R: 0x7c, G: 0xf0, B: 0x9a, A: 0xff}
)

// surface is an RGBA pixel buffer that satisfies the tinyterm display
// contract: drivers.Displayer plus fill and vertical scroll.
type surface struct {
	img    *image.RGBA
	scroll int
	dirty  bool
	buf    []byte
}

func newSurface(width, height int) *surface {
	return &surface{img: image.NewRGBA(image.Rect(0, 0, width, height))}
}

func (s *surface) Size() (x, y int16) {
	b := s.img.Bounds()
	return int16(b.Dx()), int16(b.Dy())
}

func (s *surface) SetPixel(x, y int16, c color.RGBA) {
	if !(image.Point{X: int(x), Y: int(y)}).In(s.img.Bounds()) {
		return
	}
	s.img.SetRGBA(int(x), int(y), c)
}

func (s *surface) Display() error {
	s.dirty = true
	return nil
}

func (s *surface) FillRectangle(x, y, width, height int16, c color.RGBA) error {
	b := s.img.Bounds()
	x0 := clamp(int(x), 0, b.Dx())
	y0 := clamp(int(y), 0, b.Dy())
	x1 := clamp(int(x)+int(width), 0, b.Dx())
	y1 := clamp(int(y)+int(height), 0, b.Dy())
	for py := y0; py < y1; py++ {
		for px := x0; px < x1; px++ {
			s.img.SetRGBA(px, py, c)
		}
	}
	return nil
}

// SetScroll sets the buffer row shown at the top, like a panel's vertical
// scroll register.
func (s *surface) SetScroll(line int16) {
	h := s.img.Bounds().Dy()
	if h == 0 {
		return
	}
	s.scroll = (int(line)%h + h) % h
	s.dirty = true
}

// view copies the pixels into dst in display order, honoring the scroll
// offset.
func (s *surface) view(dst []byte) []byte {
	n := s.scroll * s.img.Stride
	dst = append(dst[:0], s.img.Pix[n:]...)
	return append(dst, s.img.Pix[:n]...)
}

func (s *surface) SetRotation(rotation drivers.Rotation) error {
	_ = rotation
	return nil
}

var (
	_ drivers.Displayer  = (*surface)(nil)
	_ tinyterm.Displayer = (*surface)(nil)
)

// console is the on-screen log panel plus a one-line status strip.
type console struct {
	visible bool
	log     *surface
	status  *surface
	term    *tinyterm.Terminal
	font    *tinyfont.Font
	last    string
}

func newConsole(width int, visible bool) *console {
	c := &console{
		visible: visible,
		log:     newSurface(width, consoleRows*consoleFontHeight),
		status:  newSurface(width, statusHeight),
		font:    &proggy.TinySZ8pt7b,
	}
	c.term = tinyterm.NewTerminal(c.log)
	c.term.Configure(&tinyterm.Config{
		Font:       c.font,
		FontHeight: consoleFontHeight,
		FontOffset: consoleFontOffset,
	})
	c.log.dirty = true
	c.setStatus(" ")
	return c
}

func (c *console) println(s string) {
	_, _ = c.term.Write([]byte(s))
	_, _ = c.term.Write([]byte("\r\n"))
	c.log.dirty = true
}

func (c *console) setStatus(s string) {
	if s == c.last {
		return
	}
	c.last = s
	w, h := c.status.Size()
	_ = c.status.FillRectangle(0, 0, w, h, colorStatusBG)
	tinyfont.WriteLine(c.status, c.font, 2, statusBaseline, s, colorStatusFG)
	c.status.dirty = true
}
