package sed

// Row is one flattened report entry: a single layer of a single cell,
// annotated with the derived values the presentation layer charts. The bson
// tags match the run archive's document layout.
type Row struct {
	CellIndex  int     `json:"cell_index" bson:"cell_index"`
	Top        float64 `json:"top" bson:"top"`
	Bottom     float64 `json:"bottom" bson:"bottom"`
	Kind       string  `json:"kind" bson:"kind"`
	Label      string  `json:"label" bson:"label"`
	OriginCell int     `json:"origin_cell" bson:"origin_cell"` // NoOrigin for bed material

	// Thickness is the layer's vertical extent.
	Thickness float64 `json:"thickness" bson:"thickness"`

	// TotalSettledThickness is the summed settled thickness of the whole
	// cell, repeated on each of its rows.
	TotalSettledThickness float64 `json:"total_settled_thickness" bson:"total_settled_thickness"`

	// Proximity is the distance between the cell and the material's origin
	// cell, used for provenance-colored rendering. NoOrigin for bed
	// material.
	Proximity int `json:"proximity" bson:"proximity"`
}

// Flatten materializes all cells' layer stacks into one table, ordered by
// cell index and, within a cell, from the lowest layer to the highest. It is
// a pure read-only derivation and never mutates the section.
func (s *Section) Flatten() []Row {
	var rows []Row
	for i, cell := range s.cells {
		layers := cell.Bed().Layers()
		total := cell.Bed().SettledThickness()

		for _, l := range layers {
			proximity := NoOrigin
			if l.OriginCell != NoOrigin {
				proximity = abs(l.OriginCell - i)
			}
			rows = append(rows, Row{
				CellIndex:             i,
				Top:                   l.Top,
				Bottom:                l.Bottom,
				Kind:                  l.Kind.String(),
				Label:                 l.Label,
				OriginCell:            l.OriginCell,
				Thickness:             l.Thickness(),
				TotalSettledThickness: total,
				Proximity:             proximity,
			})
		}
	}
	return rows
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
