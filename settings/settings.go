// Package settings provides persistent user settings for touch64.
package settings

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/spf13/viper"
)

// Settings holds all user settings.
type Settings struct {
	GUI         GUISettings         `mapstructure:"gui"`
	Overlay     OverlaySettings     `mapstructure:"overlay"`
	Touchscreen TouchscreenSettings `mapstructure:"touchscreen"`
	Logging     LoggingSettings     `mapstructure:"logging"`
}

// GUISettings holds window settings.
type GUISettings struct {
	// WindowWidth is the initial window width.
	WindowWidth int `mapstructure:"window_width"`
	// WindowHeight is the initial window height.
	WindowHeight int `mapstructure:"window_height"`
}

// OverlaySettings holds touch-overlay settings.
type OverlaySettings struct {
	// Skin is the overlay skin directory, relative to the resource path.
	Skin string `mapstructure:"skin"`
	// FontsDir is the directory containing the FPS numeral fonts.
	FontsDir string `mapstructure:"fonts_dir"`
	// Scale is the factor applied to overlay assets when they are loaded.
	Scale float64 `mapstructure:"scale"`
	// FPSEnabled controls whether the FPS indicator is displayed.
	FPSEnabled bool `mapstructure:"fps_enabled"`
}

// TouchscreenSettings holds touchscreen profile settings.
type TouchscreenSettings struct {
	// DefaultProfile is the name of the default touchscreen profile. The
	// empty string means no default has been selected.
	DefaultProfile string `mapstructure:"default_profile"`
}

// LoggingSettings holds logging settings.
type LoggingSettings struct {
	// Level is the minimum log level ("debug", "info", "warn", "error").
	Level string `mapstructure:"level"`
	// FilePath is the path to the log file, relative to the resource path.
	// The empty string disables file logging.
	FilePath string `mapstructure:"file_path"`
}

// Manager handles settings loading and saving.
type Manager struct {
	mu       sync.RWMutex
	settings *Settings
	viper    *viper.Viper
	filePath string
}

// NewManager returns a settings manager with no settings loaded.
func NewManager() *Manager {
	return &Manager{
		viper: viper.New(),
	}
}

// Load loads settings from the specified file path. If the file doesn't
// exist a file with default values is created.
func (m *Manager) Load(path string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.filePath = path
	m.viper.SetConfigType("yaml")
	m.viper.SetConfigFile(path)

	m.setDefaults()

	if err := m.viper.ReadInConfig(); err != nil {
		if os.IsNotExist(err) {
			if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
				return fmt.Errorf("settings: %w", err)
			}
			if err := m.viper.WriteConfigAs(path); err != nil {
				return fmt.Errorf("settings: %w", err)
			}
		} else {
			return fmt.Errorf("settings: %w", err)
		}
	}

	m.settings = &Settings{}
	if err := m.viper.Unmarshal(m.settings); err != nil {
		return fmt.Errorf("settings: %w", err)
	}

	return nil
}

// Save writes the current settings to the file they were loaded from.
func (m *Manager) Save() error {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.filePath == "" {
		return fmt.Errorf("settings: no file path set")
	}

	if err := m.viper.WriteConfig(); err != nil {
		return fmt.Errorf("settings: %w", err)
	}
	return nil
}

// Get returns the current settings.
func (m *Manager) Get() *Settings {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.settings
}

// Update applies a modifier function to the settings.
func (m *Manager) Update(modifier func(*Settings)) {
	m.mu.Lock()
	defer m.mu.Unlock()

	modifier(m.settings)

	m.viper.Set("gui.window_width", m.settings.GUI.WindowWidth)
	m.viper.Set("gui.window_height", m.settings.GUI.WindowHeight)
	m.viper.Set("overlay.skin", m.settings.Overlay.Skin)
	m.viper.Set("overlay.fonts_dir", m.settings.Overlay.FontsDir)
	m.viper.Set("overlay.scale", m.settings.Overlay.Scale)
	m.viper.Set("overlay.fps_enabled", m.settings.Overlay.FPSEnabled)
	m.viper.Set("touchscreen.default_profile", m.settings.Touchscreen.DefaultProfile)
	m.viper.Set("logging.level", m.settings.Logging.Level)
	m.viper.Set("logging.file_path", m.settings.Logging.FilePath)
}

func (m *Manager) setDefaults() {
	m.viper.SetDefault("gui.window_width", 640)
	m.viper.SetDefault("gui.window_height", 480)

	m.viper.SetDefault("overlay.skin", "skins/outline")
	m.viper.SetDefault("overlay.fonts_dir", "fonts")
	m.viper.SetDefault("overlay.scale", 1.0)
	m.viper.SetDefault("overlay.fps_enabled", true)

	m.viper.SetDefault("touchscreen.default_profile", "")

	m.viper.SetDefault("logging.level", "info")
	m.viper.SetDefault("logging.file_path", "logs/touch64.log")
}
