package hal

import (
	"image"
	"image/color"
	"math"
)

// Texture sizes in pixels before sprite scaling.
const (
	dotCoreSize = 12
	dotGlowSize = 32
	arrowWidth  = 64
	arrowHeight = 128
	mouseWidth  = 300
	mouseHeight = 450
)

// textureImage renders the texture for id. Textures are white (or grey) so
// that the sprite color acts as a tint.
func textureImage(id TextureID) *image.NRGBA {
	switch id {
	case TextureDotCore:
		return discImage(dotCoreSize, func(d, r float64) float64 {
			return clamp(r-d+0.5, 0, 1)
		})
	case TextureDotGlow:
		return discImage(dotGlowSize, func(d, r float64) float64 {
			f := clamp(1-d/r, 0, 1)
			return f * f
		})
	case TextureArrow:
		return arrowImage()
	case TextureMouse:
		return mouseImage()
	default:
		return nil
	}
}

func discImage(size int, alpha func(d, r float64) float64) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	r := float64(size) / 2
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx := float64(x) + 0.5 - r
			dy := float64(y) + 0.5 - r
			a := alpha(math.Hypot(dx, dy), r)
			img.SetNRGBA(x, y, color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: uint8(a*0xff + 0.5)})
		}
	}
	return img
}

// arrowImage points towards the top edge, which is engine "up" at rotation 0.
func arrowImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, arrowWidth, arrowHeight))
	white := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	const (
		headHeight = 56
		shaftWidth = 18
	)
	mid := float64(arrowWidth) / 2
	for y := 0; y < arrowHeight; y++ {
		half := shaftWidth / 2.0
		if y < headHeight {
			half = mid * float64(y+1) / headHeight
		}
		for x := 0; x < arrowWidth; x++ {
			if math.Abs(float64(x)+0.5-mid) <= half {
				img.SetNRGBA(x, y, white)
			}
		}
	}
	return img
}

func mouseImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, mouseWidth, mouseHeight))
	body := color.NRGBA{R: 0xe8, G: 0xe8, B: 0xec, A: 0xff}
	seam := color.NRGBA{R: 0x9a, G: 0x9a, B: 0xa4, A: 0xff}
	rx := float64(mouseWidth) / 2
	ry := float64(mouseHeight) / 2
	seamY := mouseHeight / 3
	for y := 0; y < mouseHeight; y++ {
		for x := 0; x < mouseWidth; x++ {
			nx := (float64(x) + 0.5 - rx) / rx
			ny := (float64(y) + 0.5 - ry) / ry
			if nx*nx+ny*ny > 1 {
				continue
			}
			c := body
			if y == seamY || y == seamY+1 || (y < seamY && (x == mouseWidth/2 || x == mouseWidth/2-1)) {
				c = seam
			}
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}
