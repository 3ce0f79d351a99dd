//go:build cgo

package hal

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var ebitenKeys = [...]struct {
	key  ebiten.Key
	code KeyCode
}{
	{ebiten.KeyP, KeyP},
	{ebiten.KeyEscape, KeyEscape},
}

func (k *hostKeyboard) poll() {
	for _, m := range ebitenKeys {
		if inpututil.IsKeyJustPressed(m.key) {
			k.emit(m.code, true)
		}
		if inpututil.IsKeyJustReleased(m.key) {
			k.emit(m.code, false)
		}
	}
}
