package controllerImp

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/karamsafarli/siemens-hackathon/entities"
	"github.com/karamsafarli/siemens-hackathon/pkg/irrigation"
	"github.com/karamsafarli/siemens-hackathon/pkg/plant/controller"
	"github.com/karamsafarli/siemens-hackathon/pkg/plant/repository"
)

type PlantCtrl struct{ repo repository.PlantRepository }

func New(repo repository.PlantRepository) controller.PlantController { return &PlantCtrl{repo} }

func (h *PlantCtrl) ListTypes(c echo.Context) error {
	types, err := h.repo.ListTypes()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to fetch plant types"})
	}
	return c.JSON(http.StatusOK, types)
}

func (h *PlantCtrl) ListBatches(c echo.Context) error {
	batches, err := h.repo.ListBatches(repository.BatchFilter{
		UserID:      c.QueryParam("userId"),
		FieldID:     c.QueryParam("fieldId"),
		PlantTypeID: c.QueryParam("plantTypeId"),
		Status:      c.QueryParam("status"),
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to fetch plant batches"})
	}
	return c.JSON(http.StatusOK, batches)
}

type batchDetail struct {
	entities.PlantBatch
	IrrigationStatus irrigation.Status          `json:"irrigation_status"`
	StatusHistory    []entities.StatusHistory   `json:"status_history"`
	IrrigationEvents []entities.IrrigationEvent `json:"irrigation_events"`
	Notes            []entities.Note            `json:"notes"`
}

func (h *PlantCtrl) GetBatch(c echo.Context) error {
	b, err := h.repo.FindBatch(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Plant batch not found"})
	}

	freq := 0
	if b.PlantType != nil {
		freq = b.PlantType.IrrigationFrequencyDays
	}
	st, err := irrigation.ComputeStatus(b.LastIrrigationDate, freq, time.Now())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}

	history, _ := h.repo.RecentHistory(b.ID, 10)
	events, _ := h.repo.RecentEvents(b.ID, 10)
	notes, _ := h.repo.RecentNotes(b.ID, 10)

	return c.JSON(http.StatusOK, batchDetail{
		PlantBatch:       *b,
		IrrigationStatus: st,
		StatusHistory:    history,
		IrrigationEvents: events,
		Notes:            notes,
	})
}

type createBatchReq struct {
	FieldID      string `json:"field_id"`
	PlantTypeID  string `json:"plant_type_id"`
	BatchName    string `json:"batch_name"`
	PlantingDate string `json:"planting_date"`
	Quantity     *int   `json:"quantity"`
	UserID       string `json:"user_id"`
}

func (h *PlantCtrl) CreateBatch(c echo.Context) error {
	var req createBatchReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid json"})
	}
	if req.FieldID == "" || req.PlantTypeID == "" || req.BatchName == "" || req.PlantingDate == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "field_id, plant_type_id, batch_name, and planting_date are required",
		})
	}
	pd, err := time.Parse("2006-01-02", req.PlantingDate)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid planting_date"})
	}

	b := &entities.PlantBatch{
		FieldID:       req.FieldID,
		PlantTypeID:   req.PlantTypeID,
		BatchName:     req.BatchName,
		PlantingDate:  pd,
		Quantity:      req.Quantity,
		CurrentStatus: entities.StatusHealthy,
	}
	if err := h.repo.CreateBatch(b); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to create plant batch"})
	}

	if req.UserID != "" {
		_ = h.repo.AddStatusHistory(&entities.StatusHistory{
			PlantBatchID: b.ID,
			Status:       entities.StatusHealthy,
			ChangedBy:    req.UserID,
			Reason:       "Initial planting",
		})
	}
	return c.JSON(http.StatusCreated, b)
}

type updateBatchReq struct {
	BatchName    string `json:"batch_name"`
	PlantingDate string `json:"planting_date"`
	Quantity     *int   `json:"quantity"`
}

func (h *PlantCtrl) UpdateBatch(c echo.Context) error {
	b, err := h.repo.FindBatch(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Plant batch not found"})
	}
	var req updateBatchReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid json"})
	}
	if req.BatchName != "" {
		b.BatchName = req.BatchName
	}
	if req.PlantingDate != "" {
		pd, err := time.Parse("2006-01-02", req.PlantingDate)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid planting_date"})
		}
		b.PlantingDate = pd
	}
	if req.Quantity != nil {
		b.Quantity = req.Quantity
	}
	if err := h.repo.UpdateBatch(b); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to update plant batch"})
	}
	return c.JSON(http.StatusOK, b)
}

type updateStatusReq struct {
	Status   string `json:"status"`
	UserID   string `json:"user_id"`
	Reason   string `json:"reason"`
	Severity string `json:"severity"`
}

var validStatuses = map[string]bool{
	entities.StatusHealthy:   true,
	entities.StatusAtRisk:    true,
	entities.StatusCritical:  true,
	entities.StatusDiseased:  true,
	entities.StatusHarvested: true,
}

func (h *PlantCtrl) UpdateStatus(c echo.Context) error {
	b, err := h.repo.FindBatch(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Plant batch not found"})
	}
	var req updateStatusReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid json"})
	}
	if !validStatuses[req.Status] {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid status"})
	}
	if req.UserID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "user_id is required"})
	}

	previous := b.CurrentStatus
	b.CurrentStatus = req.Status
	if err := h.repo.UpdateBatch(b); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to update status"})
	}
	_ = h.repo.AddStatusHistory(&entities.StatusHistory{
		PlantBatchID:   b.ID,
		Status:         req.Status,
		PreviousStatus: previous,
		ChangedBy:      req.UserID,
		Reason:         req.Reason,
		Severity:       req.Severity,
	})
	return c.JSON(http.StatusOK, b)
}

func (h *PlantCtrl) DeleteBatch(c echo.Context) error {
	id := c.Param("id")
	if _, err := h.repo.FindBatch(id); err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Plant batch not found"})
	}
	if err := h.repo.SoftDeleteBatch(id); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to delete plant batch"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Plant batch deleted successfully"})
}
