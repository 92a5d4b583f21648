package sed

import "errors"

var (
	// ErrBedExhausted is returned by [SedimentBed.Cut] when the requested
	// depth reaches below the bed floor. Cut depth must never exceed the
	// available material: clamping silently would corrupt the mass balance,
	// so the configuration error is surfaced instead.
	ErrBedExhausted = errors.New("cut depth exceeds available bed material")

	// ErrNegativeDepth is returned by [SedimentBed.Cut] for negative cut
	// depths.
	ErrNegativeDepth = errors.New("cut depth must be non-negative")

	// ErrNegativeThickness is returned by [SedimentBed.Settle] for negative
	// settle thicknesses. Zero is allowed and produces a zero-height layer
	// boundary marker.
	ErrNegativeThickness = errors.New("settle thickness must be non-negative")
)

// Default vertical extent of the native bed layer, matching the reference
// cross-section: the seafloor at elevation zero with 0.2 of workable bed
// material beneath it.
const (
	DefaultBedTop    = 0.0
	DefaultBedBottom = -0.2
)

// SedimentBed owns the ordered layer stack for one cell. Layers are stored
// from lowest to highest elevation and stay contiguous: each layer's top
// equals the bottom of the layer above it. The lowest layer is always the
// single bed layer; zero or more settled layers sit above it.
//
// A bed is created once per cell at section construction and mutated in
// place by [SedimentBed.Cut] and [SedimentBed.Settle].
type SedimentBed struct {
	layers []Layer
}

// NewSedimentBed creates a bed with a single native layer spanning
// [bottom, top].
func NewSedimentBed(top, bottom float64) *SedimentBed {
	return &SedimentBed{
		layers: []Layer{{
			Top:        top,
			Bottom:     bottom,
			Kind:       KindBed,
			Label:      BedLabel,
			OriginCell: NoOrigin,
		}},
	}
}

// Layers returns a copy of the stack, ordered from lowest to highest layer.
func (b *SedimentBed) Layers() []Layer {
	out := make([]Layer, len(b.layers))
	copy(out, b.layers)
	return out
}

// Top returns the elevation of the top of the stack.
func (b *SedimentBed) Top() float64 { return b.layers[len(b.layers)-1].Top }

// BedTop returns the current upper elevation of the native bed layer.
func (b *SedimentBed) BedTop() float64 { return b.layers[0].Top }

// BedBottom returns the fixed lower elevation of the native bed layer.
func (b *SedimentBed) BedBottom() float64 { return b.layers[0].Bottom }

// SettledTop returns the top elevation of the topmost settled layer, or the
// bed layer's top if no settled layers exist.
func (b *SedimentBed) SettledTop() float64 { return b.Top() }

// SettledThickness returns the summed thickness of all settled layers.
func (b *SedimentBed) SettledThickness() float64 {
	var total float64
	for _, l := range b.layers[1:] {
		total += l.Thickness()
	}
	return total
}

// Cut removes material from the top of the stack in two phases and reports
// how much thickness came from bed versus settled material.
//
// If extraSettled is positive and settled layers exist, up to extraSettled of
// thickness is first stripped from the top, constrained to settled material:
// the pre-cut stops at the bed layer's top even when it asked for more. The
// main cut then removes depth more thickness from the new top, through
// settled and bed layers alike.
//
// Layers fully inside a removed band are dropped; the boundary layer is
// trimmed. Returns [ErrBedExhausted] when the main cut would pass below the
// bed floor.
func (b *SedimentBed) Cut(depth, extraSettled float64) (bedCut, settledCut float64, err error) {
	if depth < 0 || extraSettled < 0 {
		return 0, 0, ErrNegativeDepth
	}

	var preCut float64
	if extraSettled > 0 && len(b.layers) > 1 {
		top := b.Top()
		target := top - extraSettled
		if bedTop := b.BedTop(); target < bedTop {
			target = bedTop
		}
		b.trimTo(target)
		preCut = top - target
	}

	top := b.Top()
	target := top - depth
	if target < b.BedBottom() {
		return 0, 0, ErrBedExhausted
	}

	oldBedTop := b.BedTop()
	b.trimTo(target)

	bedCut = oldBedTop - b.BedTop()
	settledCut = preCut + (depth - bedCut)
	return bedCut, settledCut, nil
}

// Settle pushes one new settled layer of the given thickness on top of the
// stack, tagged with the pass label and the cell the material was cut from.
func (b *SedimentBed) Settle(thickness float64, label string, originCell int) error {
	if thickness < 0 {
		return ErrNegativeThickness
	}
	top := b.Top()
	b.layers = append(b.layers, Layer{
		Top:        top + thickness,
		Bottom:     top,
		Kind:       KindSettled,
		Label:      label,
		OriginCell: originCell,
	})
	return nil
}

// trimTo lowers the top of the stack to the target elevation. Layers whose
// bottom is at or above the target are dropped; the boundary layer is
// replaced with a trimmed copy. The caller guarantees target >= BedBottom,
// so the bed layer is never dropped.
func (b *SedimentBed) trimTo(target float64) {
	for len(b.layers) > 1 && b.layers[len(b.layers)-1].Bottom >= target {
		b.layers = b.layers[:len(b.layers)-1]
	}
	if top := &b.layers[len(b.layers)-1]; top.Top > target {
		trimmed := *top
		trimmed.Top = target
		*top = trimmed
	}
}
