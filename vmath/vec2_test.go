package vmath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVector2Distance(t *testing.T) {
	tests := []struct {
		name string
		a, b Vector2
		want float64
	}{
		{"same point", V2(1, 1), V2(1, 1), 0},
		{"3-4-5", V2(0, 0), V2(3, 4), 5},
		{"negative", V2(-1, -1), V2(2, 3), 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, tt.a.Distance(tt.b), 1e-12)
			assert.InDelta(t, tt.want, tt.b.Distance(tt.a), 1e-12)
		})
	}
}

func TestV2Arithmetic(t *testing.T) {
	assert.Equal(t, V2(4, 6), V2Add(V2(1, 2), V2(3, 4)))
	assert.Equal(t, V2(-2, -2), V2Sub(V2(1, 2), V2(3, 4)))
	assert.Equal(t, 25.0, V2MagSq(V2(3, 4)))
}

func TestToSquareHalvesX(t *testing.T) {
	assert.Equal(t, V2(5, 7), ToSquare(10, 7))
	// Two columns span the same visual distance as one row
	assert.InDelta(t, ToSquare(0, 0).Distance(ToSquare(2, 0)), ToSquare(0, 0).Distance(ToSquare(0, 1)), 1e-12)
}
