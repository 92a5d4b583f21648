package sed_test

import (
	"fmt"
	"log"

	"github.com/collectorsed/collectorsed/pkg/sed"
)

func ExampleSection_basic() {
	// A single-cell section: both neighbors are boundaries, so everything
	// that does not settle on the cell leaks out of the model.
	s, err := sed.NewSection(sed.SectionConfig{
		CellCount: 1,
		Cell:      sed.DefaultCellParams(),
		Collector: sed.CollectorParams{CutDepth: 0.1},
	})
	if err != nil {
		log.Fatal(err)
	}
	if err := s.RunAll(); err != nil {
		log.Fatal(err)
	}

	cell := s.Cells()[0]
	fmt.Println("passes:", s.Passes())
	fmt.Printf("bed top: %.1f\n", cell.Bed().BedTop())
	fmt.Printf("settled thickness: %.4f\n", cell.Bed().SettledThickness())
	// Output:
	// passes: 1
	// bed top: -0.1
	// settled thickness: 0.0875
}

func ExampleSection_Flatten() {
	s, err := sed.NewSection(sed.SectionConfig{
		CellCount: 1,
		Cell:      sed.DefaultCellParams(),
		Collector: sed.CollectorParams{CutDepth: 0.1},
	})
	if err != nil {
		log.Fatal(err)
	}
	if err := s.RunAll(); err != nil {
		log.Fatal(err)
	}

	for _, row := range s.Flatten() {
		fmt.Printf("cell %d %s label=%s thickness=%.4f\n", row.CellIndex, row.Kind, row.Label, row.Thickness)
	}
	// Output:
	// cell 0 bed label=existing thickness=0.1000
	// cell 0 settled label=0 thickness=0.0875
}

func ExampleSection_Run_replay() {
	// Run the primary range, then replay the collector over cell 0. The
	// replay continues the label sequence, so its material stays
	// distinguishable from the first pass.
	s, err := sed.NewSection(sed.SectionConfig{
		CellCount: 3,
		Cell:      sed.DefaultCellParams(),
		Collector: sed.CollectorParams{CutDepth: 0.05},
	})
	if err != nil {
		log.Fatal(err)
	}
	if err := s.Run(0, 3); err != nil {
		log.Fatal(err)
	}
	if err := s.Run(0, 0, 0); err != nil {
		log.Fatal(err)
	}

	fmt.Println("passes:", s.Passes())
	// Output:
	// passes: 4
}
