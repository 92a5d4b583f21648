package sed

// Kind distinguishes native bed material from material deposited by the
// simulation.
type Kind int

const (
	// KindBed is pre-existing native seafloor. Every bed stack holds exactly
	// one bed layer, always at the bottom.
	KindBed Kind = iota
	// KindSettled is material deposited by a collector pass or a
	// redistribution event.
	KindSettled
)

// String returns the lowercase name of the kind, as used in flattened reports.
func (k Kind) String() string {
	if k == KindBed {
		return "bed"
	}
	return "settled"
}

// BedLabel is the fixed label carried by native bed material.
const BedLabel = "existing"

// NoOrigin marks material with no provenance, i.e. native bed layers that
// were never cut and redeposited.
const NoOrigin = -1

// Layer is one horizontal slab of material within a cell's stratigraphy
// stack. Layers are immutable: trimming a layer during a cut replaces it
// wholesale in the owning stack.
type Layer struct {
	Top    float64 // upper elevation, Top > Bottom for non-degenerate layers
	Bottom float64 // lower elevation
	Kind   Kind    // bed or settled material

	// Label identifies the collector pass or redistribution event that
	// created this layer. Bed layers carry [BedLabel].
	Label string

	// OriginCell is the index of the cell where the material was originally
	// cut, or [NoOrigin] for native bed material.
	OriginCell int
}

// Thickness returns the vertical extent of the layer.
func (l Layer) Thickness() float64 { return l.Top - l.Bottom }
