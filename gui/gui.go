package gui

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	input "github.com/quasilyte/ebitengine-input"

	"github.com/touch64/touch64/framerate"
	"github.com/touch64/touch64/logger"
	"github.com/touch64/touch64/overlay"
	"github.com/touch64/touch64/settings"
	"github.com/touch64/touch64/version"
)

type gui struct {
	started bool

	endGui chan bool

	ov      *overlay.Overlay
	sampler *framerate.Sampler

	// width/height of the canvas as reported by Layout()
	width  int
	height int

	inputHandler *input.Handler
	inputSystem  input.System

	// current axis fractions of the analog stick
	stick [2]float64

	// the overlay is composited into a cached layer. the layer is rebuilt
	// only when the overlay notifies a change
	layer *ebiten.Image
	stale bool
}

const (
	ActionStickLeft input.Action = iota
	ActionStickUp
	ActionStickRight
	ActionStickDown
)

func (g *gui) initialise() {
	keymap := input.Keymap{
		ActionStickLeft:  {input.KeyGamepadLeft, input.KeyLeft},
		ActionStickUp:    {input.KeyGamepadUp, input.KeyUp},
		ActionStickRight: {input.KeyGamepadRight, input.KeyRight},
		ActionStickDown:  {input.KeyGamepadDown, input.KeyDown},
	}
	g.inputHandler = g.inputSystem.NewHandler(uint8(0), keymap)
	g.started = true
}

// OverlayChanged implements the overlay.Listener interface.
func (g *gui) OverlayChanged(o *overlay.Overlay) {
	g.stale = true
}

// StickChanged implements the overlay.Listener interface.
func (g *gui) StickChanged(o *overlay.Overlay, x float64, y float64) {
	g.stale = true
}

// FPSChanged implements the overlay.Listener interface.
func (g *gui) FPSChanged(o *overlay.Overlay, fps int) {
	g.stale = true
}

func (g *gui) input() {
	g.inputSystem.Update()

	var x, y float64

	if g.inputHandler.ActionIsPressed(ActionStickLeft) {
		x -= 1
	}
	if g.inputHandler.ActionIsPressed(ActionStickRight) {
		x += 1
	}
	if g.inputHandler.ActionIsPressed(ActionStickUp) {
		y += 1
	}
	if g.inputHandler.ActionIsPressed(ActionStickDown) {
		y -= 1
	}

	// the analogue stick of the first gamepad takes precedence over the
	// keyboard when it is outside the deadzone
	const gamepad = 0
	const deadzone = 0.25

	v := ebiten.GamepadAxis(gamepad, 0)
	if v < -deadzone || v > deadzone {
		x = v
	}
	v = ebiten.GamepadAxis(gamepad, 1)
	if v < -deadzone || v > deadzone {
		y = -v
	}

	x = min(max(x, -1), 1)
	y = min(max(y, -1), 1)

	if x != g.stick[0] || y != g.stick[1] {
		g.stick[0] = x
		g.stick[1] = y
		g.ov.UpdateAnalog(x, y)
	}
}

func (g *gui) Update() error {
	if !g.started {
		g.initialise()
	}

	select {
	case <-g.endGui:
		return ebiten.Termination
	default:
	}

	g.input()

	if fps, ok := g.sampler.Tick(time.Now()); ok {
		g.ov.UpdateFPS(fps)
	}

	return nil
}

func (g *gui) Draw(screen *ebiten.Image) {
	if g.width <= 0 || g.height <= 0 {
		return
	}

	if g.layer == nil || g.layer.Bounds().Dx() != g.width || g.layer.Bounds().Dy() != g.height {
		g.layer = ebiten.NewImage(g.width, g.height)
		g.stale = true
	}

	if g.stale {
		g.layer.Clear()
		g.ov.DrawButtons(g.layer)
		g.ov.DrawAnalog(g.layer)
		g.ov.DrawFPS(g.layer)
		g.stale = false
	}

	screen.DrawImage(g.layer, nil)
}

func (g *gui) Layout(width, height int) (int, int) {
	if width != g.width || height != g.height {
		g.width = width
		g.height = height
		g.ov.Resize(width, height)
	}
	return width, height
}

// Launch runs the overlay window until the endGui channel is signalled or
// the window is closed.
func Launch(endGui chan bool, ov *overlay.Overlay, set *settings.Manager) error {
	ebiten.SetWindowTitle(version.Title())
	ebiten.SetVsyncEnabled(true)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowPosition(10, 10)
	ebiten.SetTPS(60)

	s := set.Get()
	ebiten.SetWindowSize(s.GUI.WindowWidth, s.GUI.WindowHeight)

	g := &gui{
		endGui:  endGui,
		ov:      ov,
		sampler: framerate.NewSampler(ov.FPSRecalcPeriod()),
		stale:   true,
	}

	g.inputSystem.Init(input.SystemConfig{
		DevicesEnabled: input.AnyDevice,
	})

	ov.RegisterListener(g)
	defer ov.UnregisterListener(g)

	if err := onWindowOpen(); err != nil {
		logger.Get().Component("gui").Debugf("window geometry: %v", err)
	}
	defer func() {
		if err := onWindowClose(); err != nil {
			logger.Get().Component("gui").Debugf("window geometry: %v", err)
		}
	}()

	return ebiten.RunGame(g)
}
