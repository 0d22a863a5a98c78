package field

import "github.com/solvarsaurus/agriculture-programs/entities"

// Catalog hands out the two reference fields. Create one per process and share it;
// Primary is built once in NewCatalog and the same pointer is returned on every call,
// Secondary builds a new value each time.
type Catalog struct {
	primary *entities.Field
}

func NewCatalog() *Catalog {
	return &Catalog{primary: &entities.Field{
		Name:     "Main Field",
		CropType: "Corn",
		Boundary: entities.Boundary{BottomLeft: entities.Point{X: 0, Y: 0}, TopRight: entities.Point{X: 10, Y: 10}},
	}}
}

func (c *Catalog) Primary() *entities.Field { return c.primary }

func (c *Catalog) Secondary() *entities.Field {
	return &entities.Field{
		Name:     "Secondary Field",
		CropType: "Wheat",
		Boundary: entities.Boundary{BottomLeft: entities.Point{X: 0, Y: 0}, TopRight: entities.Point{X: 5, Y: 5}},
	}
}
