package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBoundaryContains(t *testing.T) {
	b := Boundary{BottomLeft: Point{0, 0}, TopRight: Point{10, 10}}
	tts := []struct {
		p    Point
		want bool
	}{
		{Point{3, 4}, true},
		{Point{0, 0}, true},
		{Point{10, 10}, true},
		{Point{0, 10}, true},
		{Point{10.0001, 5}, false},
		{Point{5, -0.1}, false},
		{Point{-1, -1}, false},
		{Point{11, 11}, false},
	}
	for i, tt := range tts {
		assert.Equal(t, tt.want, b.Contains(tt.p), "#%d: %v", i, tt.p)
	}
}

func TestBoundaryContainsInverted(t *testing.T) {
	// corners swapped: nothing strictly inside is reported
	b := Boundary{BottomLeft: Point{10, 10}, TopRight: Point{0, 0}}
	assert.False(t, b.Contains(Point{5, 5}))
}

func TestStrings(t *testing.T) {
	assert.Equal(t, "Point(x=0, y=10.5)", Point{0, 10.5}.String())
	f := &Field{Name: "Main Field", CropType: "Corn"}
	assert.Equal(t, "Field: Main Field, Crop: Corn", f.String())
}
