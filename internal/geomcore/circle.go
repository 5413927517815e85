package geomcore

import "math"

// Circle approximates a circle of the given radius centered at center using
// steps points, building a Ring with the given index tag.
func Circle(center Point, radius float64, steps int, tag IndexTag) (*Ring, error) {
	if steps < 3 {
		steps = 3
	}
	pts := make([]Point, steps)
	for i := 0; i < steps; i++ {
		theta := 2 * math.Pi * float64(i) / float64(steps)
		pts[i] = Point{
			X: center.X + radius*math.Cos(theta),
			Y: center.Y + radius*math.Sin(theta),
		}
	}
	return NewRing(pts, tag)
}
