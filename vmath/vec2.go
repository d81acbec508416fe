package vmath

import (
	"math"
)

// Vector2 is a float64 2D vector in cell-grid coordinates
type Vector2 struct {
	X, Y float64
}

// V2 is shorthand for Vector2{x, y}
func V2(x, y float64) Vector2 {
	return Vector2{X: x, Y: y}
}

func V2Add(a, b Vector2) Vector2 {
	return Vector2{a.X + b.X, a.Y + b.Y}
}

func V2Sub(a, b Vector2) Vector2 {
	return Vector2{a.X - b.X, a.Y - b.Y}
}

func V2MagSq(v Vector2) float64 {
	return v.X*v.X + v.Y*v.Y
}

// Distance returns the Euclidean distance between v and other
func (v Vector2) Distance(other Vector2) float64 {
	return math.Sqrt(V2MagSq(V2Sub(v, other)))
}

// CellAspect is the horizontal scale applied to cell columns (width:height = 1:2)
const CellAspect = 0.5

// ToSquare maps a cell position into a space where distances are visually uniform
// Terminal cells are roughly twice as tall as wide, so x is halved
func ToSquare(x, y float64) Vector2 {
	return Vector2{X: x * CellAspect, Y: y}
}
