package overlay

import (
	"testing"

	"github.com/touch64/touch64/test"
)

// sized returns a sprite with dimensions but no bitmap.
func sized(w, h int) *Sprite {
	s := &Sprite{}
	s.setSize(w, h)
	return s
}

// recorder counts the notifications it receives.
type recorder struct {
	all   int
	stick int
	fps   int

	lastFPS int
	lastX   float64
	lastY   float64
}

func (r *recorder) OverlayChanged(o *Overlay) {
	r.all++
}

func (r *recorder) StickChanged(o *Overlay, x float64, y float64) {
	r.stick++
	r.lastX = x
	r.lastY = y
}

func (r *recorder) FPSChanged(o *Overlay, fps int) {
	r.fps++
	r.lastFPS = fps
}

// newFPSOverlay returns an enabled overlay with ten numerals loaded. each
// numeral has a distinct width of 10+n so that digits can be identified by
// their dimensions.
func newFPSOverlay() *Overlay {
	o := NewOverlay(true)
	for i := range o.numerals {
		o.numerals[i] = sized(10+i, 16)
	}
	return o
}

func TestUpdateFPSClamp(t *testing.T) {
	o := newFPSOverlay()
	r := &recorder{}
	o.RegisterListener(r)

	o.UpdateFPS(10000)
	test.ExpectEquality(t, o.fpsValue, 9999)
	test.ExpectEquality(t, len(o.fpsDigits), 4)
	for _, d := range o.fpsDigits {
		test.ExpectEquality(t, d.W, 19)
	}
	test.ExpectEquality(t, r.lastFPS, 9999)

	o.UpdateFPS(-5)
	test.ExpectEquality(t, o.fpsValue, 0)
}

func TestUpdateFPSDigits(t *testing.T) {
	o := newFPSOverlay()

	o.UpdateFPS(7)
	test.ExpectEquality(t, len(o.fpsDigits), 1)
	test.ExpectEquality(t, o.fpsDigits[0].W, 17)

	o.UpdateFPS(42)
	test.ExpectEquality(t, len(o.fpsDigits), 2)
	test.ExpectEquality(t, o.fpsDigits[0].W, 14)
	test.ExpectEquality(t, o.fpsDigits[1].W, 12)

	o.UpdateFPS(9999)
	test.ExpectEquality(t, len(o.fpsDigits), 4)
}

func TestUpdateFPSDisabled(t *testing.T) {
	o := NewOverlay(false)
	for i := range o.numerals {
		o.numerals[i] = sized(10, 16)
	}
	r := &recorder{}
	o.RegisterListener(r)

	o.UpdateFPS(30)
	test.ExpectEquality(t, o.fpsValue, 0)
	test.ExpectEquality(t, len(o.fpsDigits), 0)
	test.ExpectEquality(t, r.fps, 0)
}

func TestUpdateFPSUnchangedValue(t *testing.T) {
	o := newFPSOverlay()
	r := &recorder{}
	o.RegisterListener(r)

	// the cleared overlay already holds a value of zero
	o.UpdateFPS(0)
	test.ExpectEquality(t, r.fps, 0)

	o.UpdateFPS(42)
	test.ExpectEquality(t, r.fps, 1)

	o.UpdateFPS(42)
	test.ExpectEquality(t, r.fps, 1)
}

func TestUpdateFPSMissingNumerals(t *testing.T) {
	o := NewOverlay(true)
	o.numerals[4] = sized(10, 16)

	// only the numeral for 4 is available so only one digit appears
	o.UpdateFPS(42)
	test.ExpectEquality(t, len(o.fpsDigits), 1)
}

func TestClear(t *testing.T) {
	o := newFPSOverlay()
	o.fpsFrame = sized(60, 20)
	o.fpsFrameX = 90
	o.fpsFrameY = 5
	o.fpsTextX = 40
	o.fpsTextY = 60
	o.fpsRecalcPeriod = 30
	o.UpdateFPS(42)

	o.Clear()
	test.ExpectEquality(t, o.fpsFrame == nil, true)
	test.ExpectEquality(t, o.fpsFrameX, 0)
	test.ExpectEquality(t, o.fpsFrameY, 0)
	test.ExpectEquality(t, o.fpsTextX, 50)
	test.ExpectEquality(t, o.fpsTextY, 50)
	test.ExpectEquality(t, o.fpsRecalcPeriod, 15)
	test.ExpectEquality(t, o.fpsValue, 0)
	test.ExpectEquality(t, len(o.fpsDigits), 0)
	for i := range o.numerals {
		test.ExpectEquality(t, o.numerals[i] == nil, true)
	}
}

func TestResizeCentersAnalog(t *testing.T) {
	o := NewOverlay(false)
	o.analogBack = sized(100, 100)
	o.analogFore = sized(40, 40)

	r := &recorder{}
	o.RegisterListener(r)

	o.Resize(400, 300)
	test.ExpectEquality(t, o.analogBack.X, 0)
	test.ExpectEquality(t, o.analogBack.Y, 0)
	test.ExpectEquality(t, o.analogFore.X, 30)
	test.ExpectEquality(t, o.analogFore.Y, 30)
	test.ExpectEquality(t, r.all, 1)
}

func TestResizePositionsFrame(t *testing.T) {
	o := NewOverlay(true)
	o.fpsFrame = sized(60, 20)
	o.fpsFrameX = 50
	o.fpsFrameY = 50

	o.Resize(400, 200)
	test.ExpectEquality(t, o.fpsFrame.X, 170)
	test.ExpectEquality(t, o.fpsFrame.Y, 90)
}

func TestUpdateAnalogCentered(t *testing.T) {
	o := NewOverlay(false)
	o.analogBack = sized(100, 100)
	o.analogFore = sized(40, 40)
	o.analogMaximum = 40
	o.Resize(400, 300)

	o.UpdateAnalog(0, 0)
	test.ExpectEquality(t, o.analogFore.X, 30)
	test.ExpectEquality(t, o.analogFore.Y, 30)
}

func TestUpdateAnalogDisplacement(t *testing.T) {
	o := NewOverlay(false)
	o.analogBack = sized(100, 100)
	o.analogFore = sized(40, 40)
	o.analogMaximum = 25
	o.Resize(400, 300)

	o.UpdateAnalog(1, 0)
	test.ExpectEquality(t, o.analogFore.X, 55)
	test.ExpectEquality(t, o.analogFore.Y, 30)

	// positive y fraction moves the stick up the screen
	o.UpdateAnalog(0, 1)
	test.ExpectEquality(t, o.analogFore.X, 30)
	test.ExpectEquality(t, o.analogFore.Y, 5)
}

func TestUpdateAnalogNegativeFallback(t *testing.T) {
	o := NewOverlay(false)
	o.analogBack = sized(100, 100)
	o.analogFore = sized(40, 40)

	// a displacement larger than the half-extents would take the computed
	// offset negative. the stick falls back to the centre of the background
	// rather than clamping to zero
	o.analogMaximum = 80
	o.Resize(400, 300)

	o.UpdateAnalog(-1, -1)
	test.ExpectEquality(t, o.analogFore.X, 30)
	test.ExpectEquality(t, o.analogFore.Y, 30)
}

func TestUpdateAnalogAlwaysNotifies(t *testing.T) {
	o := NewOverlay(false)
	r := &recorder{}
	o.RegisterListener(r)

	o.UpdateAnalog(0.5, -0.5)
	o.UpdateAnalog(0.5, -0.5)
	test.ExpectEquality(t, r.stick, 2)
	test.ExpectEquality(t, r.lastX, 0.5)
	test.ExpectEquality(t, r.lastY, -0.5)
}

func TestFPSDigitLayout(t *testing.T) {
	o := NewOverlay(true)
	for i := range o.numerals {
		o.numerals[i] = sized(10, 16)
	}
	o.fpsFrame = sized(60, 20)
	o.fpsFrame.SetPos(100, 100)

	// centroid is at (100+30, 100+10). two digits of width 10 start half the
	// total width to the left of the centroid
	o.UpdateFPS(42)
	test.ExpectEquality(t, len(o.fpsDigits), 2)
	test.ExpectEquality(t, o.fpsDigits[0].X, 120)
	test.ExpectEquality(t, o.fpsDigits[0].Y, 102)
	test.ExpectEquality(t, o.fpsDigits[1].X, 130)
}
