// Package volume calculates the volume of simple solids. Every function returns false
// instead of a volume when a dimension is zero.
package volume

import "math"

// Cuboid: V = h * w * d
func Cuboid(height, width, depth float64) (float64, bool) {
	if height == 0 || width == 0 || depth == 0 {
		return 0, false
	}
	return height * width * depth, true
}

// Cylinder: V = π * r² * h
func Cylinder(height, radius float64) (float64, bool) {
	if height == 0 || radius == 0 {
		return 0, false
	}
	return math.Pi * radius * radius * height, true
}

// Sphere: V = 4/3 * π * r³
func Sphere(radius float64) (float64, bool) {
	if radius == 0 {
		return 0, false
	}
	return 4.0 / 3.0 * math.Pi * math.Pow(radius, 3), true
}

// HexagonalPrism: V = 3/2 * √3 * a² * h
func HexagonalPrism(height, edgeLength float64) (float64, bool) {
	if height == 0 || edgeLength == 0 {
		return 0, false
	}
	return 1.5 * math.Sqrt(3) * edgeLength * edgeLength * height, true
}
