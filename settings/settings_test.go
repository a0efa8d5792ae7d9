package settings_test

import (
	"path/filepath"
	"testing"

	"github.com/touch64/touch64/settings"
	"github.com/touch64/touch64/test"
)

func TestDefaults(t *testing.T) {
	pth := filepath.Join(t.TempDir(), "settings.yaml")

	m := settings.NewManager()
	err := m.Load(pth)
	test.ExpectSuccess(t, err)

	s := m.Get()
	test.ExpectEquality(t, s.GUI.WindowWidth, 640)
	test.ExpectEquality(t, s.GUI.WindowHeight, 480)
	test.ExpectEquality(t, s.Overlay.Skin, "skins/outline")
	test.ExpectEquality(t, s.Overlay.Scale, 1.0)
	test.ExpectEquality(t, s.Overlay.FPSEnabled, true)
	test.ExpectEquality(t, s.Touchscreen.DefaultProfile, "")
	test.ExpectEquality(t, s.Logging.Level, "info")
}

func TestSaveAndReload(t *testing.T) {
	pth := filepath.Join(t.TempDir(), "settings.yaml")

	m := settings.NewManager()
	err := m.Load(pth)
	test.ExpectSuccess(t, err)

	m.Update(func(s *settings.Settings) {
		s.Touchscreen.DefaultProfile = "Analog"
		s.Overlay.FPSEnabled = false
	})
	err = m.Save()
	test.ExpectSuccess(t, err)

	// a fresh manager should see the saved values
	m = settings.NewManager()
	err = m.Load(pth)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, m.Get().Touchscreen.DefaultProfile, "Analog")
	test.ExpectEquality(t, m.Get().Overlay.FPSEnabled, false)
}

func TestSaveWithoutLoad(t *testing.T) {
	m := settings.NewManager()
	test.ExpectFailure(t, m.Save())
}
