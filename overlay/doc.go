// Package overlay implements the on-screen touch-control layer drawn atop
// the emulated game video.
//
// The Overlay type owns a set of positioned sprites: the control buttons,
// the two halves of the analog stick, and the FPS indicator (a frame plus
// up to four numeral glyphs). Sprite positions are recomputed whenever the
// hosting surface is resized, the analog stick moves, or the frame rate
// value changes. Other components subscribe with RegisterListener() and are
// notified synchronously after each recomputation.
//
// Assets are described by a skin.ini file in the skin directory, one section
// per asset, and loaded with the Loader type. Asset loading is best-effort:
// a numeral font that fails to load part way through leaves the overlay
// operating with whatever glyphs loaded successfully.
//
// The overlay performs no hit-testing of input events. Callers translate
// input into the axis fractions and values passed to UpdateAnalog() and
// UpdateFPS().
//
// All Overlay methods must be called from the same goroutine. Listener
// notification is synchronous and a listener must not re-enter a mutating
// method of the overlay that notified it.
package overlay
