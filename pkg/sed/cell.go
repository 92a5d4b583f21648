package sed

import (
	"errors"
	"fmt"
)

// ErrInvalidDirection is returned by [Cell.AddSediment] for any direction
// outside {DirectionLeft, DirectionRight}. This is a caller bug, not a
// recoverable model state.
var ErrInvalidDirection = errors.New("invalid transfer direction")

// Direction identifies which way a lateral mass transfer is travelling.
// The zero value is not a valid direction.
type Direction int

const (
	// DirectionLeft moves mass toward lower cell indices.
	DirectionLeft Direction = iota + 1
	// DirectionRight moves mass toward higher cell indices.
	DirectionRight
)

// String returns "left" or "right", or a diagnostic form for invalid values.
func (d Direction) String() string {
	switch d {
	case DirectionLeft:
		return "left"
	case DirectionRight:
		return "right"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// CellParams are the per-cell material parameters, immutable for a run.
type CellParams struct {
	// LeftRightRatio in [0, 1] splits distributed mass between the left and
	// right neighbor. 1 sends everything left, 0 everything right.
	LeftRightRatio float64

	// SettledDensity converts settled-layer thickness to mass.
	SettledDensity float64

	// BaseDensity converts native bed thickness to mass.
	BaseDensity float64

	// PercentToSettle in [0, 1] is the share of incoming mass that settles
	// on a cell instead of continuing to propagate. Values of zero keep
	// mass bouncing between cells and rely on the section's sweep cap to
	// terminate.
	PercentToSettle float64
}

// DefaultCellParams returns the reference cross-section's material
// parameters.
func DefaultCellParams() CellParams {
	return CellParams{
		LeftRightRatio:  0.5,
		SettledDensity:  120.0,
		BaseDensity:     350.0,
		PercentToSettle: 0.3,
	}
}

// CollectorParams describe one collector vehicle configuration, shared by
// all cells for a run.
type CollectorParams struct {
	// CutDepth is the thickness removed from the top of a cell's stack on
	// each collector pass.
	CutDepth float64

	// ExtraSettledCutDepth optionally strips previously settled material
	// before the main cut. Zero disables the pre-cut.
	ExtraSettledCutDepth float64

	// ProportionUpRiser in [0, 1] is the fraction of collected mass conveyed
	// out of the model entirely.
	ProportionUpRiser float64
}

// Cell is one discrete cross-section column of seafloor. It owns a
// [SedimentBed] exclusively and tracks the outgoing mass queued for each
// neighbor between redistribution sweeps.
type Cell struct {
	params CellParams
	bed    *SedimentBed

	pendingLeft  float64
	pendingRight float64
}

// NewCell creates a cell with a fresh bed spanning [bedBottom, bedTop].
func NewCell(params CellParams, bedTop, bedBottom float64) *Cell {
	return &Cell{params: params, bed: NewSedimentBed(bedTop, bedBottom)}
}

// Params returns the cell's material parameters.
func (c *Cell) Params() CellParams { return c.params }

// Bed returns the cell's layer stack.
func (c *Cell) Bed() *SedimentBed { return c.bed }

// PendingLeft returns the mass currently queued for the left neighbor.
func (c *Cell) PendingLeft() float64 { return c.pendingLeft }

// PendingRight returns the mass currently queued for the right neighbor.
func (c *Cell) PendingRight() float64 { return c.pendingRight }

// ApplyCollector runs one collector pass over this cell. The cut thicknesses
// are converted to mass with the settled and base densities, the riser
// fraction leaves the model, a share settles straight back onto this cell,
// and the remainder is split into the left and right pending registers.
func (c *Cell) ApplyCollector(cv CollectorParams, label string, originCell int) error {
	bedCut, settledCut, err := c.bed.Cut(cv.CutDepth, cv.ExtraSettledCutDepth)
	if err != nil {
		return err
	}
	collected := settledCut*c.params.SettledDensity + bedCut*c.params.BaseDensity

	retained := collected * (1 - cv.ProportionUpRiser)

	toSettle := retained * c.params.PercentToSettle
	if err := c.settleMass(toSettle, label, originCell); err != nil {
		return err
	}

	toDistribute := retained - toSettle
	c.pendingLeft = toDistribute * c.params.LeftRightRatio
	c.pendingRight = toDistribute - c.pendingLeft
	return nil
}

// AddSediment receives mass travelling in the given direction. A share
// settles here, tagged with the originating pass's label and origin cell so
// provenance survives multi-hop transfers; the remainder is queued to keep
// moving the same direction on the next sweep.
func (c *Cell) AddSediment(incomingMass float64, direction Direction, label string, originCell int) error {
	toSettle := incomingMass * c.params.PercentToSettle
	if err := c.settleMass(toSettle, label, originCell); err != nil {
		return err
	}

	remainder := incomingMass - toSettle
	switch direction {
	case DirectionLeft:
		c.pendingLeft = remainder
	case DirectionRight:
		c.pendingRight = remainder
	default:
		return fmt.Errorf("%w: %s", ErrInvalidDirection, direction)
	}
	return nil
}

// settleMass converts mass to thickness via the settled density and pushes
// the resulting layer.
func (c *Cell) settleMass(mass float64, label string, originCell int) error {
	return c.bed.Settle(mass/c.params.SettledDensity, label, originCell)
}
