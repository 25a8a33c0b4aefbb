package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/karamsafarli/siemens-hackathon/entities"
	"github.com/karamsafarli/siemens-hackathon/pkg/notes/controller"
	"github.com/karamsafarli/siemens-hackathon/pkg/notes/repository"
)

type NoteCtrl struct{ repo repository.NoteRepository }

func New(repo repository.NoteRepository) controller.NoteController { return &NoteCtrl{repo} }

func (h *NoteCtrl) List(c echo.Context) error {
	notes, err := h.repo.List(c.QueryParam("plantBatchId"), c.QueryParam("noteType"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to fetch notes"})
	}
	return c.JSON(http.StatusOK, notes)
}

type noteReq struct {
	PlantBatchID    string `json:"plant_batch_id"`
	NoteType        string `json:"note_type"`
	Content         string `json:"content"`
	LinkedEventType string `json:"linked_event_type"`
	LinkedEventID   string `json:"linked_event_id"`
	UserID          string `json:"user_id"`
}

func (h *NoteCtrl) Create(c echo.Context) error {
	var req noteReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid json"})
	}
	if req.PlantBatchID == "" || req.NoteType == "" || req.Content == "" || req.UserID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "plant_batch_id, note_type, content, and user_id are required",
		})
	}
	n := &entities.Note{
		PlantBatchID:    req.PlantBatchID,
		NoteType:        req.NoteType,
		Content:         req.Content,
		LinkedEventType: req.LinkedEventType,
		LinkedEventID:   req.LinkedEventID,
		CreatedBy:       req.UserID,
	}
	if err := h.repo.Create(n); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to create note"})
	}
	return c.JSON(http.StatusCreated, n)
}

type noteUpdateReq struct {
	Content  string `json:"content"`
	NoteType string `json:"note_type"`
}

func (h *NoteCtrl) Update(c echo.Context) error {
	n, err := h.repo.FindByID(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Note not found"})
	}
	var req noteUpdateReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid json"})
	}
	if req.Content != "" {
		n.Content = req.Content
	}
	if req.NoteType != "" {
		n.NoteType = req.NoteType
	}
	if err := h.repo.Update(n); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to update note"})
	}
	return c.JSON(http.StatusOK, n)
}

func (h *NoteCtrl) Delete(c echo.Context) error {
	id := c.Param("id")
	if _, err := h.repo.FindByID(id); err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Note not found"})
	}
	if err := h.repo.SoftDelete(id); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to delete note"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Note deleted successfully"})
}
