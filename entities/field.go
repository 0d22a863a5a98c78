package entities

import (
	"fmt"
	"time"
)

// Point is a cartesian coordinate pair used for field boundaries.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func (p Point) String() string { return fmt.Sprintf("Point(x=%g, y=%g)", p.X, p.Y) }

// Boundary is an axis-aligned rectangle. BottomLeft must not exceed TopRight
// on either axis; this is not checked.
type Boundary struct {
	BottomLeft Point `gorm:"embedded;embeddedPrefix:bl_" json:"bottom_left"`
	TopRight   Point `gorm:"embedded;embeddedPrefix:tr_" json:"top_right"`
}

// Contains reports whether p lies inside b, edges included.
func (b Boundary) Contains(p Point) bool {
	return b.BottomLeft.X <= p.X && p.X <= b.TopRight.X &&
		b.BottomLeft.Y <= p.Y && p.Y <= b.TopRight.Y
}

type Field struct {
	FieldID  uint     `gorm:"primaryKey" json:"field_id"`
	UserID   string   `json:"user_id" gorm:"index"`
	Name     string   `json:"name"`
	CropType string   `json:"crop_type"`
	Boundary Boundary `gorm:"embedded" json:"boundary"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (f *Field) String() string { return fmt.Sprintf("Field: %s, Crop: %s", f.Name, f.CropType) }
