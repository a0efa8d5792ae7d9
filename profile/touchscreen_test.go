package profile_test

import (
	"path/filepath"
	"testing"

	"github.com/touch64/touch64/profile"
	"github.com/touch64/touch64/settings"
	"github.com/touch64/touch64/test"
)

func TestTouchscreenDefaultProfile(t *testing.T) {
	set := settings.NewManager()
	err := set.Load(filepath.Join(t.TempDir(), "settings.yaml"))
	test.ExpectSuccess(t, err)

	d := profile.NewTouchscreen(set, nil)
	test.ExpectEquality(t, d.NoDefaultSentinel(), "")
	test.ExpectEquality(t, d.DefaultProfile(), "")

	err = d.SetDefaultProfile("Analog")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, d.DefaultProfile(), "Analog")
	test.ExpectEquality(t, set.Get().Touchscreen.DefaultProfile, "Analog")
}

func TestTouchscreenEditor(t *testing.T) {
	set := settings.NewManager()
	err := set.Load(filepath.Join(t.TempDir(), "settings.yaml"))
	test.ExpectSuccess(t, err)

	// no editor available
	d := profile.NewTouchscreen(set, nil)
	test.ExpectFailure(t, d.EditProfile(profile.Profile{Name: "Analog"}))

	var edited string
	d = profile.NewTouchscreen(set, func(name string) error {
		edited = name
		return nil
	})
	err = d.EditProfile(profile.Profile{Name: "Analog"})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, edited, "Analog")
}
