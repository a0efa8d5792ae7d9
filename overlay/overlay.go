package overlay

import (
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
)

const (
	// the FPS value is clamped to four digits
	fpsValueMax  = 9999
	fpsDigitsMax = 4

	// default and minimum number of frames between FPS recalculations
	fpsRecalcPeriodDefault = 15
	fpsRecalcPeriodMin     = 2

	// default centroid of the FPS text, in percent of the frame dimensions
	fpsTextCentroidDefault = 50
)

// button is a control button sprite positioned by screen percentage.
type button struct {
	name   string
	sprite *Sprite

	// position in percent of the screen dimensions
	x int
	y int
}

// Overlay maintains the positioned sprites of the touch-control layer. Use
// NewOverlay() to create a valid instance.
type Overlay struct {
	buttons []*button

	analogBack *Sprite
	analogFore *Sprite

	// position of the analog background in percent of the screen dimensions
	analogBackX int
	analogBackY int

	// maximum displacement of the stick from the centre of the background,
	// in pixels
	analogMaximum int

	fpsEnabled bool

	fpsFrame *Sprite

	// position of the FPS frame in percent of the screen dimensions
	fpsFrameX int
	fpsFrameY int

	// centroid of the FPS text in percent of the frame dimensions
	fpsTextX int
	fpsTextY int

	fpsRecalcPeriod int
	fpsValue        int

	// the sprites forming the current FPS string, leftmost digit first
	fpsDigits []*Sprite

	// the sprites for the numerals 0, 1, 2, ..., 9
	numerals [10]*Sprite

	publisher subscription
}

// NewOverlay returns an overlay in its cleared state. fpsEnabled controls
// whether the FPS indicator reacts to UpdateFPS().
func NewOverlay(fpsEnabled bool) *Overlay {
	o := &Overlay{
		fpsEnabled: fpsEnabled,
	}
	o.Clear()
	return o
}

// Clear resets all owned state to defaults. Listeners remain registered and
// are not notified.
func (o *Overlay) Clear() {
	o.buttons = o.buttons[:0]
	o.analogBack = nil
	o.analogFore = nil
	o.analogBackX = 0
	o.analogBackY = 0
	o.analogMaximum = 0
	o.fpsFrame = nil
	o.fpsFrameX = 0
	o.fpsFrameY = 0
	o.fpsTextX = fpsTextCentroidDefault
	o.fpsTextY = fpsTextCentroidDefault
	o.fpsRecalcPeriod = fpsRecalcPeriodDefault
	o.fpsValue = 0
	o.fpsDigits = o.fpsDigits[:0]
	for i := range o.numerals {
		o.numerals[i] = nil
	}
}

// RegisterListener adds a listener to the subscriber set. A nil listener is
// a no-op, as is registering a listener that is already in the set.
func (o *Overlay) RegisterListener(l Listener) {
	o.publisher.subscribe(l)
}

// UnregisterListener removes a listener from the subscriber set. A nil or
// unregistered listener is a no-op.
func (o *Overlay) UnregisterListener(l Listener) {
	o.publisher.unsubscribe(l)
}

// FPSRecalcPeriod returns the number of frames over which the FPS should be
// computed. Historically this value is loaded with the overlay assets, which
// is why it is provided here rather than with the user settings.
func (o *Overlay) FPSRecalcPeriod() int {
	return o.fpsRecalcPeriod
}

// Resize recomputes every sprite position for the new screen dimensions and
// notifies every registered listener that everything has changed.
func (o *Overlay) Resize(w, h int) {
	for _, b := range o.buttons {
		b.sprite.FitCenter(w*b.x/100, h*b.y/100, w, h)
	}

	// recenter the analog foreground on the background
	if o.analogBack != nil {
		o.analogBack.FitCenter(w*o.analogBackX/100, h*o.analogBackY/100, w, h)
		if o.analogFore != nil {
			cx := o.analogBack.X + o.analogBack.HalfW
			cy := o.analogBack.Y + o.analogBack.HalfH
			o.analogFore.FitCenterRect(cx, cy, o.analogBack.X, o.analogBack.Y,
				o.analogBack.W, o.analogBack.H)
		}
	}

	// compute FPS frame location
	if o.fpsFrame != nil {
		cx := int(float64(w) * float64(o.fpsFrameX) / 100)
		cy := int(float64(h) * float64(o.fpsFrameY) / 100)
		o.fpsFrame.FitCenter(cx, cy, w, h)
	}

	o.refreshFPSPositions()

	for _, l := range o.publisher.listeners {
		l.OverlayChanged(o)
	}
}

// UpdateAnalog repositions the analog stick foreground for the new axis
// fractions, each between -1 and 1 inclusive. Listeners are always notified
// of the stick change, even if the position is unchanged.
func (o *Overlay) UpdateAnalog(axisFractionX, axisFractionY float64) {
	if o.analogFore != nil && o.analogBack != nil {
		// location of the stick centre relative to the background corner
		hX := o.analogBack.HalfW + int(axisFractionX*float64(o.analogMaximum))
		hY := o.analogBack.HalfH - int(axisFractionY*float64(o.analogMaximum))

		// fall back to the half-extents rather than clamping to zero
		if hX < 0 {
			hX = o.analogBack.HalfW
		}
		if hY < 0 {
			hY = o.analogBack.HalfH
		}

		cx := o.analogBack.X + hX
		cy := o.analogBack.Y + hY
		o.analogFore.FitCenterRect(cx, cy, o.analogBack.X, o.analogBack.Y,
			o.analogBack.W, o.analogBack.H)
	}

	for _, l := range o.publisher.listeners {
		l.StickChanged(o, axisFractionX, axisFractionY)
	}
}

// UpdateFPS stores a new FPS value, clamped to [0, 9999], and regenerates
// the digit sprites. It is a no-op if the FPS indicator is disabled or if
// the clamped value equals the currently stored value.
func (o *Overlay) UpdateFPS(fps int) {
	fps = min(max(fps, 0), fpsValueMax)

	if !o.fpsEnabled || o.fpsValue == fps {
		return
	}

	o.fpsValue = fps

	o.refreshFPSImages()
	o.refreshFPSPositions()

	for _, l := range o.publisher.listeners {
		l.FPSChanged(o, o.fpsValue)
	}
}

// refreshFPSImages regenerates the digit sprite list from the current FPS
// value. numerals that failed to load are skipped, suppressing those digits.
func (o *Overlay) refreshFPSImages() {
	s := strconv.Itoa(o.fpsValue)
	o.fpsDigits = o.fpsDigits[:0]
	for i := 0; i < fpsDigitsMax && i < len(s); i++ {
		n := int(s[i] - '0')
		if o.numerals[n] != nil {
			o.fpsDigits = append(o.fpsDigits, o.numerals[n].clone())
		}
	}
}

// refreshFPSPositions lays the digit sprites out around the text centroid of
// the FPS frame.
func (o *Overlay) refreshFPSPositions() {
	var x, y int
	if o.fpsFrame != nil {
		x = o.fpsFrame.X + int(float64(o.fpsFrame.W)*float64(o.fpsTextX)/100)
		y = o.fpsFrame.Y + int(float64(o.fpsFrame.H)*float64(o.fpsTextY)/100)
	}

	var totalWidth int
	for _, d := range o.fpsDigits {
		totalWidth += d.W
	}

	x -= totalWidth / 2

	for _, d := range o.fpsDigits {
		d.SetPos(x, y-d.HalfH)
		x += d.W
	}
}

// DrawButtons blits the button sprites onto the screen.
func (o *Overlay) DrawButtons(screen *ebiten.Image) {
	for _, b := range o.buttons {
		b.sprite.Draw(screen)
	}
}

// DrawAnalog blits the analog stick onto the screen, background before
// foreground.
func (o *Overlay) DrawAnalog(screen *ebiten.Image) {
	o.analogBack.Draw(screen)
	o.analogFore.Draw(screen)
}

// DrawFPS blits the FPS indicator onto the screen, frame before digits.
func (o *Overlay) DrawFPS(screen *ebiten.Image) {
	o.fpsFrame.Draw(screen)
	for _, d := range o.fpsDigits {
		d.Draw(screen)
	}
}
