package overlay

import (
	"fmt"
	"path/filepath"
	"strings"

	"gopkg.in/ini.v1"

	"github.com/touch64/touch64/logger"
)

// the file describing a skin's assets, one section per asset
const skinFile = "skin.ini"

// LoadStatus describes the outcome of loading an asset set.
type LoadStatus int

// List of valid LoadStatus values.
const (
	// every asset loaded
	LoadFull LoadStatus = iota

	// some assets failed to load; the overlay operates with whatever loaded
	LoadPartial

	// the skin description could not be located
	LoadNotFound
)

// LoadResult is the outcome of a Loader.Load() call.
type LoadResult struct {
	Status LoadStatus

	// the numeral glyphs (0 to 9) that failed to load, if any
	MissingNumerals []int
}

// Loader reads overlay assets from a skin directory.
type Loader struct {
	// FontsDir is the directory containing the FPS numeral fonts.
	FontsDir string

	// Scale is applied to every asset as it is loaded.
	Scale float64

	// open loads a single sprite. replaceable so that layout can be
	// exercised without a display
	open func(path string, scale float64) (*Sprite, error)
}

// NewLoader returns a loader for the given fonts directory and asset scale.
func NewLoader(fontsDir string, scale float64) *Loader {
	if scale <= 0 {
		scale = 1.0
	}
	return &Loader{
		FontsDir: fontsDir,
		Scale:    scale,
		open:     loadSprite,
	}
}

// Load clears the overlay and loads the asset set described by the skin.ini
// file in the named directory. Individual asset failures are logged and
// reflected in the LoadResult rather than returned as errors; the returned
// error is non-nil only when the skin description itself cannot be read.
func (ld *Loader) Load(o *Overlay, directory string) (LoadResult, error) {
	o.Clear()

	cfg, err := ini.Load(filepath.Join(directory, skinFile))
	if err != nil {
		return LoadResult{Status: LoadNotFound}, fmt.Errorf("overlay: %w", err)
	}

	res := LoadResult{Status: LoadFull}
	for _, sec := range cfg.Sections() {
		if sec.Name() == ini.DefaultSection {
			continue
		}
		info := strings.ToLower(sec.Key("info").String())
		r := ld.loadAssetSection(o, directory, sec.Name(), sec, info)
		if r.Status == LoadPartial {
			res.Status = LoadPartial
			res.MissingNumerals = append(res.MissingNumerals, r.MissingNumerals...)
		}
	}

	return res, nil
}

// loadAssetSection dispatches on the asset type. types containing "fps" are
// handled by the FPS indicator loader; everything else is a touch asset.
func (ld *Loader) loadAssetSection(o *Overlay, directory string, filename string, sec *ini.Section, assetType string) LoadResult {
	if strings.Contains(assetType, "fps") {
		return ld.loadFPSIndicator(o, directory, filename, sec)
	}
	return ld.loadTouchAssets(o, directory, filename, sec, assetType)
}

// loadFPSIndicator loads the FPS indicator assets and properties. numeral
// font loading is best-effort: a failure part way through is logged and the
// glyphs loaded before the failure remain usable.
func (ld *Loader) loadFPSIndicator(o *Overlay, directory string, filename string, sec *ini.Section) LoadResult {
	res := LoadResult{Status: LoadFull}

	frame, err := ld.open(filepath.Join(directory, filename+".png"), ld.Scale)
	if err != nil {
		logger.Get().Component("overlay").Errorf("problem loading FPS frame: %v", err)
		res.Status = LoadPartial
	} else {
		o.fpsFrame = frame
	}

	// position, in percent of the screen dimensions
	o.fpsFrameX = sec.Key("x").MustInt(0)
	o.fpsFrameY = sec.Key("y").MustInt(0)

	// number position, in percent of the FPS indicator dimensions
	o.fpsTextX = sec.Key("numx").MustInt(fpsTextCentroidDefault)
	o.fpsTextY = sec.Key("numy").MustInt(fpsTextCentroidDefault)

	// refresh rate in frames. at least 2 frames are needed to calculate FPS
	o.fpsRecalcPeriod = sec.Key("rate").MustInt(fpsRecalcPeriodDefault)
	if o.fpsRecalcPeriod < fpsRecalcPeriodMin {
		o.fpsRecalcPeriod = fpsRecalcPeriodMin
	}

	// numeral font
	font := sec.Key("font").String()
	if font != "" {
		for i := range o.numerals {
			s, err := ld.open(filepath.Join(ld.FontsDir, font, fmt.Sprintf("%d.png", i)), ld.Scale)
			if err != nil {
				logger.Get().Component("overlay").Errorf("problem loading font '%s/%d.png': %v",
					filepath.Join(ld.FontsDir, font), i, err)
				for j := i; j < len(o.numerals); j++ {
					res.MissingNumerals = append(res.MissingNumerals, j)
				}
				res.Status = LoadPartial
				break
			}
			o.numerals[i] = s
		}
	}

	return res
}

// loadTouchAssets loads the analog stick pair or a button.
func (ld *Loader) loadTouchAssets(o *Overlay, directory string, filename string, sec *ini.Section, assetType string) LoadResult {
	switch assetType {
	case "analog":
		back, err := ld.open(filepath.Join(directory, filename+".png"), ld.Scale)
		if err != nil {
			logger.Get().Component("overlay").Errorf("problem loading analog background: %v", err)
			return LoadResult{Status: LoadPartial}
		}

		foreName := sec.Key("fore").MustString(filename + "-fore")
		fore, err := ld.open(filepath.Join(directory, foreName+".png"), ld.Scale)
		if err != nil {
			logger.Get().Component("overlay").Errorf("problem loading analog foreground: %v", err)
			return LoadResult{Status: LoadPartial}
		}

		o.analogBack = back
		o.analogFore = fore
		o.analogBackX = sec.Key("x").MustInt(0)
		o.analogBackY = sec.Key("y").MustInt(0)

		// maximum displacement of the stick, as a percentage of the
		// background half-width
		o.analogMaximum = back.HalfW * sec.Key("max").MustInt(50) / 100

	default:
		sprite, err := ld.open(filepath.Join(directory, filename+".png"), ld.Scale)
		if err != nil {
			logger.Get().Component("overlay").Errorf("problem loading button '%s': %v", filename, err)
			return LoadResult{Status: LoadPartial}
		}
		o.buttons = append(o.buttons, &button{
			name:   filename,
			sprite: sprite,
			x:      sec.Key("x").MustInt(0),
			y:      sec.Key("y").MustInt(0),
		})
	}

	return LoadResult{Status: LoadFull}
}
