package profile

import (
	"fmt"

	"github.com/touch64/touch64/resources"
	"github.com/touch64/touch64/settings"
)

// Touchscreen is the profile domain for touchscreen control layouts.
type Touchscreen struct {
	settings *settings.Manager

	// editor opens the profile editor screen for the named profile
	editor func(name string) error
}

// NewTouchscreen returns the touchscreen profile domain. The editor function
// is called by EditProfile() with the profile name as its sole parameter; it
// may be nil if editing is not available.
func NewTouchscreen(set *settings.Manager, editor func(name string) error) *Touchscreen {
	return &Touchscreen{
		settings: set,
		editor:   editor,
	}
}

// ConfigFilePath implements the Domain interface.
func (d *Touchscreen) ConfigFilePath(builtin bool) (string, error) {
	if builtin {
		return resources.JoinPath("profiles", "touchscreen_builtin.ini")
	}
	return resources.JoinPath("profiles", "touchscreen.ini")
}

// NoDefaultSentinel implements the Domain interface. For the touchscreen
// domain the empty string means no default profile is selected.
func (d *Touchscreen) NoDefaultSentinel() string {
	return ""
}

// DefaultProfile implements the Domain interface.
func (d *Touchscreen) DefaultProfile() string {
	return d.settings.Get().Touchscreen.DefaultProfile
}

// SetDefaultProfile implements the Domain interface.
func (d *Touchscreen) SetDefaultProfile(name string) error {
	d.settings.Update(func(s *settings.Settings) {
		s.Touchscreen.DefaultProfile = name
	})
	return d.settings.Save()
}

// EditProfile implements the Domain interface.
func (d *Touchscreen) EditProfile(p Profile) error {
	if d.editor == nil {
		return fmt.Errorf("profile: no editor available for touchscreen profiles")
	}
	return d.editor(p.Name)
}
