package hal

import (
	"errors"
	"fmt"
	"image/color"
)

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

// Logf formats a line and writes it to l. A nil logger discards the line.
func Logf(l Logger, format string, args ...any) {
	if l == nil {
		return
	}
	l.WriteLineString(fmt.Sprintf(format, args...))
}

var ErrNotImplemented = errors.New("not implemented")

// KeyCode is a minimal key identifier.
type KeyCode uint16

const (
	KeyUnknown KeyCode = iota
	KeyP
	KeyEscape
	KeyF1
)

// KeyEvent is a keyboard edge. Press is true on the tick the key went down.
type KeyEvent struct {
	Code  KeyCode
	Press bool
}

// Keyboard provides key edges (best-effort on each platform).
type Keyboard interface {
	Events() <-chan KeyEvent
}

// Window exposes the per-window input hit-test flag. When hit testing is
// disabled, pointer input passes through the overlay to whatever is below.
type Window interface {
	HitTest() bool
	SetHitTest(enabled bool)
}

// Pointer reports the global cursor position in desktop pixels.
type Pointer interface {
	Position() (x, y int, err error)
}

// TextureID selects one of the procedurally generated host textures.
type TextureID uint8

const (
	TextureNone TextureID = iota
	TextureDotCore
	TextureDotGlow
	TextureArrow
	TextureMouse
)

func (t TextureID) String() string {
	switch t {
	case TextureNone:
		return "none"
	case TextureDotCore:
		return "dot-core"
	case TextureDotGlow:
		return "dot-glow"
	case TextureArrow:
		return "arrow"
	case TextureMouse:
		return "mouse"
	default:
		return "unknown"
	}
}

// Sprite is one renderable entity.
//
// Coordinates follow the engine convention: origin at the window centre,
// +Y pointing up, rotation in radians counter-clockwise. Sprites are drawn in
// ascending Depth order; equal depths keep slice order.
type Sprite struct {
	Texture  TextureID
	X, Y     float64
	Rotation float64
	ScaleX   float64
	ScaleY   float64
	Color    color.NRGBA
	Depth    float64
}

// Scene is stepped once per tick by a host runner and then drawn.
type Scene interface {
	Step() error
	Sprites() []Sprite
}

// Statuser is implemented by scenes that publish a one-line status for the HUD.
type Statuser interface {
	Status() string
}

// HAL provides the only contact point between the scenes and the outside world.
type HAL interface {
	Logger() Logger
	Keyboard() Keyboard
	Window() Window
	Pointer() Pointer
}
