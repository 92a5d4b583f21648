package sed

import (
	"errors"
	"testing"
)

func testCell() *Cell {
	return NewCell(DefaultCellParams(), DefaultBedTop, DefaultBedBottom)
}

func TestApplyCollector_MassAccounting(t *testing.T) {
	// With no riser, collected mass must exactly equal the settled share
	// plus both pending registers.
	c := testCell()
	cv := CollectorParams{CutDepth: 0.1}

	if err := c.ApplyCollector(cv, "0", 0); err != nil {
		t.Fatalf("ApplyCollector error: %v", err)
	}

	// 0.1 of bed at density 350 = 35 mass units.
	collected := 0.1 * 350.0
	settled := c.Bed().SettledThickness() * c.Params().SettledDensity
	total := settled + c.PendingLeft() + c.PendingRight()
	if !approx(total, collected) {
		t.Errorf("settled+pending = %v, want %v", total, collected)
	}

	if !approx(settled, collected*0.3) {
		t.Errorf("settled mass = %v, want %v", settled, collected*0.3)
	}
	if !approx(c.PendingLeft(), c.PendingRight()) {
		t.Errorf("pending split %v/%v, want symmetric for ratio 0.5", c.PendingLeft(), c.PendingRight())
	}
}

func TestApplyCollector_RiserRemoval(t *testing.T) {
	tests := []struct {
		name  string
		riser float64
	}{
		{"no riser", 0.0},
		{"quarter up riser", 0.25},
		{"everything up riser", 1.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := testCell()
			cv := CollectorParams{CutDepth: 0.1, ProportionUpRiser: tt.riser}

			if err := c.ApplyCollector(cv, "0", 0); err != nil {
				t.Fatalf("ApplyCollector error: %v", err)
			}

			collected := 0.1 * 350.0
			retained := collected * (1 - tt.riser)
			settled := c.Bed().SettledThickness() * c.Params().SettledDensity
			got := settled + c.PendingLeft() + c.PendingRight()
			if !approx(got, retained) {
				t.Errorf("retained mass = %v, want %v", got, retained)
			}
		})
	}
}

func TestApplyCollector_LeftRightRatio(t *testing.T) {
	params := DefaultCellParams()
	params.LeftRightRatio = 0.8
	c := NewCell(params, DefaultBedTop, DefaultBedBottom)

	if err := c.ApplyCollector(CollectorParams{CutDepth: 0.1}, "0", 0); err != nil {
		t.Fatalf("ApplyCollector error: %v", err)
	}

	toDistribute := 0.1 * 350.0 * (1 - 0.3)
	if !approx(c.PendingLeft(), toDistribute*0.8) {
		t.Errorf("PendingLeft() = %v, want %v", c.PendingLeft(), toDistribute*0.8)
	}
	if !approx(c.PendingRight(), toDistribute*0.2) {
		t.Errorf("PendingRight() = %v, want %v", c.PendingRight(), toDistribute*0.2)
	}
}

func TestApplyCollector_BedExhausted(t *testing.T) {
	c := testCell()
	err := c.ApplyCollector(CollectorParams{CutDepth: 1.0}, "0", 0)
	if !errors.Is(err, ErrBedExhausted) {
		t.Fatalf("ApplyCollector error = %v, want ErrBedExhausted", err)
	}
}

func TestAddSediment(t *testing.T) {
	tests := []struct {
		name      string
		direction Direction
	}{
		{"left", DirectionLeft},
		{"right", DirectionRight},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := testCell()
			if err := c.AddSediment(10.0, tt.direction, "4", 9); err != nil {
				t.Fatalf("AddSediment error: %v", err)
			}

			// 30% settles, 70% keeps moving the same direction.
			settled := c.Bed().SettledThickness() * c.Params().SettledDensity
			if !approx(settled, 3.0) {
				t.Errorf("settled mass = %v, want 3", settled)
			}
			pending := c.PendingRight()
			other := c.PendingLeft()
			if tt.direction == DirectionLeft {
				pending, other = other, pending
			}
			if !approx(pending, 7.0) {
				t.Errorf("pending %s = %v, want 7", tt.direction, pending)
			}
			if !approx(other, 0) {
				t.Errorf("opposite register = %v, want 0", other)
			}

			// Provenance of the original pass is preserved.
			layers := c.Bed().Layers()
			top := layers[len(layers)-1]
			if top.Label != "4" || top.OriginCell != 9 {
				t.Errorf("top layer tagged (%q, %d), want (%q, %d)", top.Label, top.OriginCell, "4", 9)
			}
		})
	}
}

func TestAddSediment_InvalidDirection(t *testing.T) {
	c := testCell()
	if err := c.AddSediment(1.0, Direction(0), "0", 0); !errors.Is(err, ErrInvalidDirection) {
		t.Errorf("AddSediment error = %v, want ErrInvalidDirection", err)
	}
	if err := c.AddSediment(1.0, Direction(7), "0", 0); !errors.Is(err, ErrInvalidDirection) {
		t.Errorf("AddSediment error = %v, want ErrInvalidDirection", err)
	}
}

func TestDirection_String(t *testing.T) {
	if got := DirectionLeft.String(); got != "left" {
		t.Errorf("DirectionLeft.String() = %q, want %q", got, "left")
	}
	if got := DirectionRight.String(); got != "right" {
		t.Errorf("DirectionRight.String() = %q, want %q", got, "right")
	}
}
