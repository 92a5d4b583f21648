package sed

import (
	"errors"
	"fmt"
	"strconv"
)

var (
	// ErrConvergenceFailure is returned by [Section.Run] when redistribution
	// has not reached quiescence within the sweep cap. Only reachable when
	// PercentToSettle is zero, which keeps a fixed mass reflecting between
	// the boundaries forever.
	ErrConvergenceFailure = errors.New("redistribution did not converge")

	// ErrCellIndexOutOfRange is returned by [Section.Run] for extra cell
	// indices outside the row. Callers are responsible for validating
	// user-supplied indices before running.
	ErrCellIndexOutOfRange = errors.New("cell index out of range")

	// ErrNoCells is returned by [NewSection] for a non-positive cell count.
	ErrNoCells = errors.New("section needs at least one cell")
)

// Default section tuning, matching the reference model.
const (
	// DefaultMassLowerLimit is the convergence threshold: pending transfers
	// at or below this mass are dropped rather than propagated.
	DefaultMassLowerLimit = 0.01

	// DefaultMaxSweeps caps redistribution sweeps per collector pass. With
	// any positive PercentToSettle the propagated mass decays geometrically
	// and real scenarios converge in a handful of sweeps; the cap only
	// exists to surface the degenerate zero-settle configuration.
	DefaultMaxSweeps = 10000
)

// SectionConfig describes a section to build. Cell and Collector apply to
// every cell; the zero values of the remaining fields select the defaults
// noted on each field.
type SectionConfig struct {
	// CellCount is the fixed number of cells in the row. Required.
	CellCount int

	// Cell is the seed parameter set copied into every cell.
	Cell CellParams

	// Collector is the vehicle configuration shared by all passes.
	Collector CollectorParams

	// MassLowerLimit is the convergence threshold. Zero selects
	// [DefaultMassLowerLimit].
	MassLowerLimit float64

	// MaxSweeps caps redistribution sweeps per pass. Zero selects
	// [DefaultMaxSweeps].
	MaxSweeps int

	// BedTop and BedBottom set the initial native layer extent. Both zero
	// selects [DefaultBedTop] and [DefaultBedBottom].
	BedTop    float64
	BedBottom float64
}

// Section owns an ordered, fixed-length row of cells and drives the
// collector across it. One simulation run owns the whole section
// exclusively; Section is not safe for concurrent use.
type Section struct {
	cells          []*Cell
	collector      CollectorParams
	massLowerLimit float64
	maxSweeps      int

	nextLabel int // monotonically increasing pass label, never reset
	sweeps    int // total redistribution sweeps across all passes
}

// NewSection builds a section of cfg.CellCount identical cells.
func NewSection(cfg SectionConfig) (*Section, error) {
	if cfg.CellCount <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrNoCells, cfg.CellCount)
	}
	if cfg.MassLowerLimit == 0 {
		cfg.MassLowerLimit = DefaultMassLowerLimit
	}
	if cfg.MaxSweeps == 0 {
		cfg.MaxSweeps = DefaultMaxSweeps
	}
	if cfg.BedTop == 0 && cfg.BedBottom == 0 {
		cfg.BedTop, cfg.BedBottom = DefaultBedTop, DefaultBedBottom
	}

	cells := make([]*Cell, cfg.CellCount)
	for i := range cells {
		cells[i] = NewCell(cfg.Cell, cfg.BedTop, cfg.BedBottom)
	}
	return &Section{
		cells:          cells,
		collector:      cfg.Collector,
		massLowerLimit: cfg.MassLowerLimit,
		maxSweeps:      cfg.MaxSweeps,
	}, nil
}

// CellCount returns the fixed number of cells in the row.
func (s *Section) CellCount() int { return len(s.cells) }

// Cells returns the row of cells, ordered left to right. The slice is shared
// with the section; treat it as read-only.
func (s *Section) Cells() []*Cell { return s.cells }

// Collector returns the collector configuration shared by all passes.
func (s *Section) Collector() CollectorParams { return s.collector }

// MassLowerLimit returns the convergence threshold.
func (s *Section) MassLowerLimit() float64 { return s.massLowerLimit }

// TotalSweeps returns the number of redistribution sweeps performed so far,
// summed across all collector passes.
func (s *Section) TotalSweeps() int { return s.sweeps }

// Passes returns the number of collector passes applied so far.
func (s *Section) Passes() int { return s.nextLabel }

// RunAll applies the collector once to every cell, left to right.
func (s *Section) RunAll() error { return s.Run(0, len(s.cells)) }

// Run applies the collector to each cell index in [start, stop) in ascending
// order, then to each index in extra in the order given, continuing the same
// label sequence. After every individual pass the whole row is redistributed
// to quiescence before the next pass starts.
//
// A start greater than stop is an empty run, not an error. Extra indices are
// validated up front; any index outside the row fails the whole call with
// [ErrCellIndexOutOfRange] before any pass is applied.
func (s *Section) Run(start, stop int, extra ...int) error {
	for _, i := range extra {
		if i < 0 || i >= len(s.cells) {
			return fmt.Errorf("%w: extra cell %d (section has %d cells)", ErrCellIndexOutOfRange, i, len(s.cells))
		}
	}
	if start > stop {
		return nil
	}
	if start < 0 {
		start = 0
	}
	if stop > len(s.cells) {
		stop = len(s.cells)
	}

	for i := start; i < stop; i++ {
		if err := s.runOnCell(i); err != nil {
			return err
		}
	}
	for _, i := range extra {
		if err := s.runOnCell(i); err != nil {
			return err
		}
	}
	return nil
}

// runOnCell applies one collector pass to cell i under a fresh label, then
// redistributes the row to quiescence.
func (s *Section) runOnCell(i int) error {
	label := strconv.Itoa(s.nextLabel)
	s.nextLabel++

	if err := s.cells[i].ApplyCollector(s.collector, label, i); err != nil {
		return fmt.Errorf("collector pass %s on cell %d: %w", label, i, err)
	}
	return s.redistribute(label, i)
}

// redistribute sweeps the row left to right until one full sweep moves no
// mass. Within a sweep, transfers use immediately updated neighbor state:
// mass handed to the right neighbor is processed later in the same sweep,
// mass handed to the left neighbor waits for the next one. Transfers at the
// row boundaries are discarded.
func (s *Section) redistribute(label string, originCell int) error {
	last := len(s.cells) - 1
	for sweep := 0; sweep < s.maxSweeps; sweep++ {
		s.sweeps++
		moved := false

		for i, cell := range s.cells {
			if cell.pendingLeft > s.massLowerLimit {
				moved = true
				if i > 0 {
					if err := s.cells[i-1].AddSediment(cell.pendingLeft, DirectionLeft, label, originCell); err != nil {
						return err
					}
				}
				cell.pendingLeft = 0
			}
			if cell.pendingRight > s.massLowerLimit {
				moved = true
				if i < last {
					if err := s.cells[i+1].AddSediment(cell.pendingRight, DirectionRight, label, originCell); err != nil {
						return err
					}
				}
				cell.pendingRight = 0
			}
		}

		if !moved {
			return nil
		}
	}
	return fmt.Errorf("%w after %d sweeps (pass %s, origin cell %d)", ErrConvergenceFailure, s.maxSweeps, label, originCell)
}
