package overlay

import (
	"fmt"
	"image"
	_ "image/png"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	xdraw "golang.org/x/image/draw"
)

// Sprite is a bitmap with an on-screen position. A Sprite with a nil bitmap
// still participates in layout but is skipped when drawing.
type Sprite struct {
	src *ebiten.Image

	// position of the top-left corner
	X int
	Y int

	W int
	H int

	HalfW int
	HalfH int
}

// NewSprite returns a sprite for the supplied bitmap, positioned at the
// origin.
func NewSprite(src *ebiten.Image) *Sprite {
	b := src.Bounds()
	s := &Sprite{src: src}
	s.setSize(b.Dx(), b.Dy())
	return s
}

func (s *Sprite) setSize(w, h int) {
	s.W = w
	s.H = h
	s.HalfW = w / 2
	s.HalfH = h / 2
}

// clone returns a sprite sharing the receiver's bitmap but with its own
// position.
func (s *Sprite) clone() *Sprite {
	c := *s
	return &c
}

// SetPos sets the position of the sprite's top-left corner.
func (s *Sprite) SetPos(x, y int) {
	s.X = x
	s.Y = y
}

// FitCenter centers the sprite at (cx, cy), nudged as necessary to keep it
// inside the rectangle (0, 0, maxW, maxH).
func (s *Sprite) FitCenter(cx, cy, maxW, maxH int) {
	s.FitCenterRect(cx, cy, 0, 0, maxW, maxH)
}

// FitCenterRect centers the sprite at (cx, cy), nudged as necessary to keep
// it inside the rectangle with top-left corner (rx, ry) and dimensions
// (rw, rh).
func (s *Sprite) FitCenterRect(cx, cy, rx, ry, rw, rh int) {
	if cx < rx+s.HalfW {
		cx = rx + s.HalfW
	}
	if cy < ry+s.HalfH {
		cy = ry + s.HalfH
	}
	if cx+s.HalfW > rx+rw {
		cx = rx + rw - s.HalfW
	}
	if cy+s.HalfH > ry+rh {
		cy = ry + rh - s.HalfH
	}
	s.X = cx - s.HalfW
	s.Y = cy - s.HalfH
}

// Draw blits the sprite onto the screen at its current position. Nil
// sprites and sprites without a bitmap are skipped.
func (s *Sprite) Draw(screen *ebiten.Image) {
	if s == nil || s.src == nil {
		return
	}
	var op ebiten.DrawImageOptions
	op.GeoM.Translate(float64(s.X), float64(s.Y))
	screen.DrawImage(s.src, &op)
}

// loadSprite reads a PNG file and returns a sprite for it, scaled by the
// supplied factor.
func loadSprite(path string, scale float64) (*Sprite, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("overlay: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("overlay: %s: %w", path, err)
	}

	if scale != 1.0 && scale > 0 {
		b := img.Bounds()
		w := int(float64(b.Dx()) * scale)
		h := int(float64(b.Dy()) * scale)
		dst := image.NewRGBA(image.Rect(0, 0, w, h))
		xdraw.BiLinear.Scale(dst, dst.Bounds(), img, b, xdraw.Over, nil)
		img = dst
	}

	return NewSprite(ebiten.NewImageFromImage(img)), nil
}
