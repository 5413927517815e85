package main

import (
	"fmt"

	"github.com/beetlebugorg/spatial/pkg/geom"
)

func main() {
	// A scattering of buoys and channel markers, built as a MultiPoint large
	// enough (above the Multi-Index threshold) to exercise the secondary
	// Multi-Index rather than a linear scan.
	var buoys []geom.Point
	for i := 0; i < 200; i++ {
		buoys = append(buoys, geom.Point{
			X: -71.1 + float64(i%20)*0.005,
			Y: 42.3 + float64(i/20)*0.005,
		})
	}
	harbor := geom.NewMultiPoint(buoys)

	// Boston Harbor viewport
	viewport := geom.NewRect(
		geom.Point{X: -71.08, Y: 42.32},
		geom.Point{X: -71.05, Y: 42.35},
	)

	var visible []int
	geom.SearchGeom(harbor, viewport, func(childIndex int) bool {
		visible = append(visible, childIndex)
		return true
	})

	fmt.Printf("Visible buoys: %d\n", len(visible))
	for _, i := range visible {
		child, err := harbor.GeometryAt(i)
		if err != nil {
			continue
		}
		fmt.Printf("  #%d: %+v\n", i, child.FullRect().Min)
	}
}
