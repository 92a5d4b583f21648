// Package scenario defines the on-disk description of a simulation run.
//
// A scenario is the full slider set of the reference dashboard, stored as a
// TOML file: collector geometry, material parameters, section size, the
// collector's working range, and any extra replay cells. Loading starts from
// [Default] and overlays the file, so omitted keys keep their reference
// values and an explicit zero stays an explicit zero.
package scenario

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/collectorsed/collectorsed/pkg/errors"
	"github.com/collectorsed/collectorsed/pkg/sed"
)

// Scenario holds every parameter of one simulation run. The JSON form is the
// canonical encoding used for cache keys and the run archive.
type Scenario struct {
	// Name optionally labels the scenario in summaries and the run archive.
	Name string `toml:"name" json:"name,omitempty" bson:"name,omitempty"`

	// Collector vehicle parameters.
	CutDepth             float64 `toml:"cut_depth" json:"cut_depth" bson:"cut_depth"`
	ExtraSettledCutDepth float64 `toml:"extra_settled_cut_depth" json:"extra_settled_cut_depth" bson:"extra_settled_cut_depth"`
	ProportionUpRiser    float64 `toml:"proportion_up_riser" json:"proportion_up_riser" bson:"proportion_up_riser"`

	// Per-cell material parameters.
	LeftRightRatio  float64 `toml:"left_right_ratio" json:"left_right_ratio" bson:"left_right_ratio"`
	PercentToSettle float64 `toml:"percent_to_settle" json:"percent_to_settle" bson:"percent_to_settle"`
	SettledDensity  float64 `toml:"settled_density" json:"settled_density" bson:"settled_density"`
	BaseDensity     float64 `toml:"base_density" json:"base_density" bson:"base_density"`

	// Section shape and tuning.
	CellCount      int     `toml:"cell_count" json:"cell_count" bson:"cell_count"`
	BedTop         float64 `toml:"bed_top" json:"bed_top" bson:"bed_top"`
	BedBottom      float64 `toml:"bed_bottom" json:"bed_bottom" bson:"bed_bottom"`
	MassLowerLimit float64 `toml:"mass_lower_limit" json:"mass_lower_limit" bson:"mass_lower_limit"`
	MaxSweeps      int     `toml:"max_sweeps" json:"max_sweeps" bson:"max_sweeps"`

	// Collector working range. Nil means the full row: Start defaults to 0,
	// Stop to the cell count. A start past the stop is an empty run.
	Start *int `toml:"start" json:"start,omitempty" bson:"start,omitempty"`
	Stop  *int `toml:"stop" json:"stop,omitempty" bson:"stop,omitempty"`

	// ExtraCells replays the collector over specific cells after the
	// primary range, in the order given.
	ExtraCells []int `toml:"extra_cells" json:"extra_cells,omitempty" bson:"extra_cells,omitempty"`
}

// Default returns the reference dashboard's parameter set.
func Default() Scenario {
	return Scenario{
		CutDepth:        0.1,
		LeftRightRatio:  0.5,
		PercentToSettle: 0.3,
		SettledDensity:  120.0,
		BaseDensity:     350.0,
		CellCount:       50,
		BedTop:          sed.DefaultBedTop,
		BedBottom:       sed.DefaultBedBottom,
		MassLowerLimit:  sed.DefaultMassLowerLimit,
		MaxSweeps:       sed.DefaultMaxSweeps,
	}
}

// Load reads a scenario from a TOML file, overlaying the defaults.
func Load(path string) (Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Scenario{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "scenario file %s", path)
		}
		return Scenario{}, errors.Wrap(errors.ErrCodeInvalidScenario, err, "read scenario file %s", path)
	}
	return Parse(data)
}

// Parse decodes TOML data into a scenario, overlaying the defaults.
func Parse(data []byte) (Scenario, error) {
	sc := Default()
	if err := toml.Unmarshal(data, &sc); err != nil {
		return Scenario{}, errors.Wrap(errors.ErrCodeInvalidScenario, err, "parse scenario")
	}
	return sc, nil
}

// Validate checks every parameter against its allowed range. The range and
// extra-cell indices are checked here too, so a bad scenario fails before a
// section is ever built.
func (s Scenario) Validate() error {
	checks := []error{
		errors.ValidateDepth("cut_depth", s.CutDepth),
		errors.ValidateDepth("extra_settled_cut_depth", s.ExtraSettledCutDepth),
		errors.ValidateRatio("proportion_up_riser", s.ProportionUpRiser),
		errors.ValidateRatio("left_right_ratio", s.LeftRightRatio),
		errors.ValidateRatio("percent_to_settle", s.PercentToSettle),
		errors.ValidateDensity("settled_density", s.SettledDensity),
		errors.ValidateDensity("base_density", s.BaseDensity),
		errors.ValidateCellCount(s.CellCount),
		errors.ValidateMassLimit(s.MassLowerLimit),
	}
	for _, err := range checks {
		if err != nil {
			return err
		}
	}

	if s.BedTop <= s.BedBottom {
		return errors.New(errors.ErrCodeInvalidScenario, "bed_top (%g) must be above bed_bottom (%g)", s.BedTop, s.BedBottom)
	}
	if s.CutDepth > s.BedTop-s.BedBottom {
		return errors.New(errors.ErrCodeInvalidScenario, "cut_depth (%g) exceeds the initial bed thickness (%g)", s.CutDepth, s.BedTop-s.BedBottom)
	}
	if s.MaxSweeps < 0 {
		return errors.New(errors.ErrCodeInvalidScenario, "max_sweeps must be non-negative: got %d", s.MaxSweeps)
	}
	for _, i := range s.ExtraCells {
		if i < 0 || i >= s.CellCount {
			return errors.New(errors.ErrCodeIndexOutOfRange, "extra cell %d outside section of %d cells", i, s.CellCount)
		}
	}
	return nil
}

// Bounds returns the collector's working range with defaults applied:
// [0, CellCount) unless the scenario narrows it.
func (s Scenario) Bounds() (start, stop int) {
	start, stop = 0, s.CellCount
	if s.Start != nil {
		start = *s.Start
	}
	if s.Stop != nil {
		stop = *s.Stop
	}
	return start, stop
}

// Section builds a fresh engine section from the scenario. The scenario
// should be validated first; NewSection only re-checks the cell count.
func (s Scenario) Section() (*sed.Section, error) {
	return sed.NewSection(sed.SectionConfig{
		CellCount: s.CellCount,
		Cell: sed.CellParams{
			LeftRightRatio:  s.LeftRightRatio,
			SettledDensity:  s.SettledDensity,
			BaseDensity:     s.BaseDensity,
			PercentToSettle: s.PercentToSettle,
		},
		Collector: sed.CollectorParams{
			CutDepth:             s.CutDepth,
			ExtraSettledCutDepth: s.ExtraSettledCutDepth,
			ProportionUpRiser:    s.ProportionUpRiser,
		},
		MassLowerLimit: s.MassLowerLimit,
		MaxSweeps:      s.MaxSweeps,
		BedTop:         s.BedTop,
		BedBottom:      s.BedBottom,
	})
}
