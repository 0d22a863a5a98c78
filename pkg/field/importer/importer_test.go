package importer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/solvarsaurus/agriculture-programs/entities"
)

func TestFromCSV(t *testing.T) {
	in := "\uFEFFField Name,Crop-Type,BL_X,bl_y,tr_x,TR_Y\n" +
		"Main Field,Corn,0,0,10,10\n" +
		",,,,,\n" +
		"North,Soy,1.5,2,3,4.25\n"
	fs, err := FromCSV(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, fs, 2)
	assert.Equal(t, "Main Field", fs[0].Name)
	assert.Equal(t, "Corn", fs[0].CropType)
	assert.Equal(t, entities.Point{X: 10, Y: 10}, fs[0].Boundary.TopRight)
	assert.Equal(t, entities.Point{X: 1.5, Y: 2}, fs[1].Boundary.BottomLeft)
	assert.Equal(t, entities.Point{X: 3, Y: 4.25}, fs[1].Boundary.TopRight)
}

func TestFromCSVErrors(t *testing.T) {
	_, err := FromCSV(strings.NewReader("name,crop\nA,B\n"))
	assert.ErrorContains(t, err, "missing required columns")

	_, err = FromCSV(strings.NewReader("name,crop,min_x,min_y,max_x,max_y\nA,B,x,0,1,1\n"))
	assert.ErrorContains(t, err, "row 2")

	_, err = FromCSV(strings.NewReader(""))
	assert.Error(t, err)
}

func TestFromXLSX(t *testing.T) {
	x := excelize.NewFile()
	defer x.Close()
	require.NoError(t, x.SetSheetRow("Sheet1", "A1", &[]any{"name", "crop", "bl_x", "bl_y", "tr_x", "tr_y"}))
	require.NoError(t, x.SetSheetRow("Sheet1", "A2", &[]any{"Secondary Field", "Wheat", 0, 0, 5, 5}))
	buf, err := x.WriteToBuffer()
	require.NoError(t, err)

	fs, err := FromXLSX(buf)
	require.NoError(t, err)
	require.Len(t, fs, 1)
	assert.Equal(t, "Secondary Field", fs[0].Name)
	assert.Equal(t, entities.Point{X: 5, Y: 5}, fs[0].Boundary.TopRight)
}
