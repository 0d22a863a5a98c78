package controllerImp

import (
	"bytes"
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/solvarsaurus/agriculture-programs/entities"
	"github.com/solvarsaurus/agriculture-programs/pkg/field"
	"github.com/solvarsaurus/agriculture-programs/pkg/field/service"
)

type FieldCtrl struct {
	svc     service.FieldService
	catalog *field.Catalog
}

func New(svc service.FieldService, catalog *field.Catalog) *FieldCtrl {
	return &FieldCtrl{svc: svc, catalog: catalog}
}

type createReq struct {
	Name       string         `json:"name"`
	CropType   string         `json:"crop_type"`
	BottomLeft entities.Point `json:"bottom_left"`
	TopRight   entities.Point `json:"top_right"`
}

func (h *FieldCtrl) Create(c echo.Context) error {
	uid := c.Get("uid").(string)
	var req createReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if req.Name == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "name is required"})
	}
	f := &entities.Field{
		UserID:   uid,
		Name:     req.Name,
		CropType: req.CropType,
		Boundary: entities.Boundary{BottomLeft: req.BottomLeft, TopRight: req.TopRight},
	}
	out, err := h.svc.CreateField(f)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *FieldCtrl) Get(c echo.Context) error {
	f, status, err := h.load(c)
	if err != nil {
		return c.JSON(status, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, f)
}

func (h *FieldCtrl) List(c echo.Context) error {
	uid := c.Get("uid").(string)
	out, err := h.svc.ListFields(uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *FieldCtrl) Import(c echo.Context) error {
	uid := c.Get("uid").(string)
	fh, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "file required"})
	}
	src, err := fh.Open()
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	defer src.Close()
	out, err := h.svc.ImportFields(uid, fh.Filename, src)
	if err != nil {
		return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, map[string]any{"imported": len(out), "fields": out})
}

func (h *FieldCtrl) Contains(c echo.Context) error {
	f, status, err := h.load(c)
	if err != nil {
		return c.JSON(status, map[string]string{"error": err.Error()})
	}
	x, errX := strconv.ParseFloat(c.QueryParam("x"), 64)
	y, errY := strconv.ParseFloat(c.QueryParam("y"), 64)
	if errX != nil || errY != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "x and y must be numbers"})
	}
	p := entities.Point{X: x, Y: y}
	return c.JSON(http.StatusOK, map[string]any{"field_id": f.FieldID, "point": p, "inside": h.svc.ContainsPoint(f, p)})
}

// Boundaries writes the record to disk and returns the same text.
func (h *FieldCtrl) Boundaries(c echo.Context) error {
	f, status, err := h.load(c)
	if err != nil {
		return c.JSON(status, map[string]string{"error": err.Error()})
	}
	if _, err := h.svc.SaveBoundaries(f); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	var buf bytes.Buffer
	if err := field.WriteBoundaries(&buf, f); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.String(http.StatusOK, buf.String())
}

func (h *FieldCtrl) Primary(c echo.Context) error { return c.JSON(http.StatusOK, h.catalog.Primary()) }

func (h *FieldCtrl) Secondary(c echo.Context) error {
	return c.JSON(http.StatusOK, h.catalog.Secondary())
}

// load resolves :id for the calling user and returns the HTTP status to use on failure.
func (h *FieldCtrl) load(c echo.Context) (*entities.Field, int, error) {
	uid := c.Get("uid").(string)
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return nil, http.StatusBadRequest, errors.New("invalid id")
	}
	f, err := h.svc.GetFieldByID(uint(id), uid)
	if errors.Is(err, service.ErrNotFound) {
		return nil, http.StatusNotFound, errors.New("not found")
	}
	if err != nil {
		return nil, http.StatusInternalServerError, err
	}
	return f, http.StatusOK, nil
}
