package main

import (
	"fmt"

	"github.com/touch64/touch64/gui"
	"github.com/touch64/touch64/logger"
	"github.com/touch64/touch64/overlay"
	"github.com/touch64/touch64/resources"
	"github.com/touch64/touch64/settings"
	"github.com/touch64/touch64/ui"
)

func launch() error {
	set := settings.NewManager()

	pth, err := resources.JoinPath("settings.yaml")
	if err != nil {
		return err
	}
	if err := set.Load(pth); err != nil {
		return err
	}

	s := set.Get()

	var logPath string
	if s.Logging.FilePath != "" {
		logPath, err = resources.JoinPath(s.Logging.FilePath)
		if err != nil {
			return err
		}
	}
	if err := logger.Get().Init(s.Logging.Level, logPath); err != nil {
		return err
	}
	defer logger.Get().Close()

	ov := overlay.NewOverlay(s.Overlay.FPSEnabled)

	skinDir, err := resources.JoinPath(s.Overlay.Skin)
	if err != nil {
		return err
	}
	fontsDir, err := resources.JoinPath(s.Overlay.FontsDir)
	if err != nil {
		return err
	}

	ld := overlay.NewLoader(fontsDir, s.Overlay.Scale)
	res, err := ld.Load(ov, skinDir)
	if err != nil {
		// a missing skin is not fatal. the overlay window simply opens empty
		logger.Get().Component("overlay").Errorf("%v", err)
	} else if res.Status == overlay.LoadPartial {
		logger.Get().Component("overlay").Warnf("skin loaded partially (missing numerals: %v)",
			res.MissingNumerals)
	}

	// buffered channels. this means we don't have to worry about the gui closing
	// before the profile manager and vice versa
	endGui := make(chan bool, 1)
	endUI := make(chan bool, 1)

	// similarly, the result channels are buffered because we don't know the
	// order in which the gui and profile manager will end
	resultGui := make(chan error, 1)
	resultUI := make(chan error, 1)

	go func() {
		resultGui <- gui.Launch(endGui, ov, set)
		endUI <- true
	}()

	go func() {
		resultUI <- ui.Launch(endUI, set)
		endGui <- true
	}()

	if err := <-resultGui; err != nil {
		fmt.Printf("*** %s\n", err)
	}
	if err := <-resultUI; err != nil {
		fmt.Printf("*** %s\n", err)
	}

	return nil
}

func main() {
	if err := launch(); err != nil {
		fmt.Printf("*** %s\n", err)
	}
}
