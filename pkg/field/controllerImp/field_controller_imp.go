package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/karamsafarli/siemens-hackathon/entities"
	"github.com/karamsafarli/siemens-hackathon/pkg/field/controller"
	"github.com/karamsafarli/siemens-hackathon/pkg/field/repository"
)

type FieldCtrl struct{ repo repository.FieldRepository }

func New(repo repository.FieldRepository) controller.FieldController { return &FieldCtrl{repo} }

type fieldReq struct {
	UserID       string   `json:"user_id"`
	Name         string   `json:"name"`
	Location     string   `json:"location"`
	SizeHectares *float64 `json:"size_hectares"`
}

func (h *FieldCtrl) List(c echo.Context) error {
	userID := c.QueryParam("userId")
	if userID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "userId is required"})
	}
	fields, err := h.repo.ListByUser(userID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to fetch fields"})
	}
	return c.JSON(http.StatusOK, fields)
}

func (h *FieldCtrl) Get(c echo.Context) error {
	f, err := h.repo.FindByID(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Field not found"})
	}
	return c.JSON(http.StatusOK, f)
}

func (h *FieldCtrl) Create(c echo.Context) error {
	var req fieldReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid json"})
	}
	if req.UserID == "" || req.Name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "user_id and name are required"})
	}
	f := &entities.Field{
		UserID:       req.UserID,
		Name:         req.Name,
		Location:     req.Location,
		SizeHectares: req.SizeHectares,
	}
	if err := h.repo.Create(f); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to create field"})
	}
	return c.JSON(http.StatusCreated, f)
}

func (h *FieldCtrl) Update(c echo.Context) error {
	f, err := h.repo.FindByID(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Field not found"})
	}
	var req fieldReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid json"})
	}
	if req.Name != "" {
		f.Name = req.Name
	}
	if req.Location != "" {
		f.Location = req.Location
	}
	if req.SizeHectares != nil {
		f.SizeHectares = req.SizeHectares
	}
	if err := h.repo.Update(f); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to update field"})
	}
	return c.JSON(http.StatusOK, f)
}

func (h *FieldCtrl) Delete(c echo.Context) error {
	id := c.Param("id")
	if _, err := h.repo.FindByID(id); err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Field not found"})
	}
	if err := h.repo.SoftDelete(id); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to delete field"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Field deleted successfully"})
}
