// Package importer reads field registries from CSV or XLSX sheets.
//
// The first row is a header. Column names are matched loosely (case, spaces,
// dashes and underscores are ignored) and a few aliases are accepted:
//
//	name | field | field_name
//	crop | crop_type
//	bl_x | bottom_left_x | min_x
//	bl_y | bottom_left_y | min_y
//	tr_x | top_right_x   | max_x
//	tr_y | top_right_y   | max_y
package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/solvarsaurus/agriculture-programs/entities"
)

func FromCSV(r io.Reader) ([]entities.Field, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	return parseRows(rows)
}

// FromXLSX reads the first sheet of the workbook.
func FromXLSX(r io.Reader) ([]entities.Field, error) {
	x, err := excelize.OpenReader(r)
	if err != nil {
		return nil, err
	}
	defer x.Close()
	sheets := x.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}
	rows, err := x.GetRows(sheets[0])
	if err != nil {
		return nil, err
	}
	return parseRows(rows)
}

func norm(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "\uFEFF") // BOM
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "-", "")
	s = strings.ReplaceAll(s, "_", "")
	return s
}

func parseRows(rows [][]string) ([]entities.Field, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("empty sheet")
	}
	head := rows[0]
	hmap := map[string]int{}
	for i, h := range head {
		hmap[norm(h)] = i
	}
	findAny := func(keys ...string) int {
		for _, k := range keys {
			if idx, ok := hmap[norm(k)]; ok {
				return idx
			}
		}
		return -1
	}

	cName := findAny("name", "field", "field_name")
	cCrop := findAny("crop", "crop_type")
	cols := [4]int{
		findAny("bl_x", "bottom_left_x", "min_x"),
		findAny("bl_y", "bottom_left_y", "min_y"),
		findAny("tr_x", "top_right_x", "max_x"),
		findAny("tr_y", "top_right_y", "max_y"),
	}
	if cName == -1 || cCrop == -1 || cols[0] == -1 || cols[1] == -1 || cols[2] == -1 || cols[3] == -1 {
		return nil, fmt.Errorf("missing required columns, found headers: %v", head)
	}

	var out []entities.Field
	for n, rec := range rows[1:] {
		get := func(idx int) string {
			if idx < 0 || idx >= len(rec) {
				return ""
			}
			return strings.TrimSpace(rec[idx])
		}
		name := get(cName)
		if name == "" {
			continue // blank row
		}
		var v [4]float64
		for i, c := range cols {
			f, err := strconv.ParseFloat(get(c), 64)
			if err != nil {
				return nil, fmt.Errorf("row %d column %q: %w", n+2, head[c], err)
			}
			v[i] = f
		}
		out = append(out, entities.Field{
			Name:     name,
			CropType: get(cCrop),
			Boundary: entities.Boundary{
				BottomLeft: entities.Point{X: v[0], Y: v[1]},
				TopRight:   entities.Point{X: v[2], Y: v[3]},
			},
		})
	}
	return out, nil
}
