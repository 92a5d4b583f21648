package sed

import "testing"

func TestFlatten_Annotations(t *testing.T) {
	s := testSection(t, 5)
	if err := s.Run(2, 3); err != nil {
		t.Fatalf("Run error: %v", err)
	}

	rows := s.Flatten()

	var total int
	for _, c := range s.Cells() {
		total += len(c.Bed().Layers())
	}
	if len(rows) != total {
		t.Fatalf("row count = %d, want %d (one per layer per cell)", len(rows), total)
	}

	perCellSettled := map[int]float64{}
	for _, row := range rows {
		if !approx(row.Thickness, row.Top-row.Bottom) {
			t.Errorf("row thickness = %v, want top-bottom = %v", row.Thickness, row.Top-row.Bottom)
		}

		switch row.Kind {
		case "bed":
			if row.Label != BedLabel {
				t.Errorf("bed row label = %q, want %q", row.Label, BedLabel)
			}
			if row.OriginCell != NoOrigin || row.Proximity != NoOrigin {
				t.Errorf("bed row provenance = (%d, %d), want (%d, %d)", row.OriginCell, row.Proximity, NoOrigin, NoOrigin)
			}
		case "settled":
			want := abs(row.OriginCell - row.CellIndex)
			if row.Proximity != want {
				t.Errorf("row proximity = %d, want %d", row.Proximity, want)
			}
			perCellSettled[row.CellIndex] += row.Thickness
		default:
			t.Errorf("unexpected row kind %q", row.Kind)
		}
	}

	// TotalSettledThickness is repeated on every row of a cell and matches
	// the sum of that cell's settled thicknesses.
	for _, row := range rows {
		if !approx(row.TotalSettledThickness, perCellSettled[row.CellIndex]) {
			t.Errorf("cell %d total settled = %v, want %v", row.CellIndex, row.TotalSettledThickness, perCellSettled[row.CellIndex])
		}
	}
}

func TestFlatten_DoesNotMutate(t *testing.T) {
	s := testSection(t, 3)
	if err := s.RunAll(); err != nil {
		t.Fatalf("RunAll error: %v", err)
	}

	first := s.Flatten()
	second := s.Flatten()
	if len(first) != len(second) {
		t.Fatalf("repeated Flatten() row counts differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("row %d differs between calls: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func TestFlatten_FreshSection(t *testing.T) {
	s := testSection(t, 3)

	rows := s.Flatten()
	if len(rows) != 3 {
		t.Fatalf("row count = %d, want 3 bed rows", len(rows))
	}
	for i, row := range rows {
		if row.CellIndex != i {
			t.Errorf("row %d cell index = %d, want %d", i, row.CellIndex, i)
		}
		if row.Kind != "bed" {
			t.Errorf("row %d kind = %q, want bed", i, row.Kind)
		}
		if row.TotalSettledThickness != 0 {
			t.Errorf("row %d total settled = %v, want 0", i, row.TotalSettledThickness)
		}
	}
}
