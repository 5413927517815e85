package main

import (
	"fmt"
	"log"

	"github.com/beetlebugorg/spatial/pkg/geom"
)

func main() {
	// Build a polygon with a hole directly from decoded coordinates; nothing
	// here parses a file format — that's left to a serializer of your
	// choosing, handing its output to these constructors.
	exterior := []geom.Point{
		{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}, {X: 0, Y: 0},
	}
	hole := []geom.Point{
		{X: 4, Y: 4}, {X: 6, Y: 4}, {X: 6, Y: 6}, {X: 4, Y: 6}, {X: 4, Y: 4},
	}

	harbor := geom.NewPolygon(exterior, [][]geom.Point{hole}, geom.ComposeIndexTag(geom.IndexNatural, 4))
	if harbor.Err() != nil {
		log.Fatal(harbor.Err())
	}

	fmt.Printf("Type: %v\n", harbor.TypeOf())
	fmt.Printf("Bounds: %+v\n", harbor.FullRect())

	dock := geom.NewPoint(geom.Point{X: 1, Y: 1})
	pier := geom.NewPoint(geom.Point{X: 5, Y: 5}) // sits inside the hole

	fmt.Printf("dock covered: %v\n", geom.Covers(harbor, dock))
	fmt.Printf("pier covered (should be false, it's in the hole): %v\n", geom.Covers(harbor, pier))
}
