package field

import (
	"fmt"
	"io"
	"os"

	"github.com/solvarsaurus/agriculture-programs/entities"
)

// ContainsPoint reports whether p falls within the field boundary, edges included.
func ContainsPoint(f *entities.Field, p entities.Point) bool {
	return f.Boundary.Contains(p)
}

// WriteBoundaries writes the four-line boundary record for f.
func WriteBoundaries(w io.Writer, f *entities.Field) error {
	_, err := fmt.Fprintf(w, "Field: %s\nCrop: %s\nBoundary Bottom-Left: %s\nBoundary Top-Right: %s\n",
		f.Name, f.CropType, f.Boundary.BottomLeft, f.Boundary.TopRight)
	return err
}

// SaveBoundaries writes the boundary record to path, replacing any existing file.
func SaveBoundaries(f *entities.Field, path string) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := WriteBoundaries(out, f); err != nil {
		out.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return out.Close()
}
