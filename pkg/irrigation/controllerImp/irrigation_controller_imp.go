package controllerImp

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/karamsafarli/siemens-hackathon/entities"
	"github.com/karamsafarli/siemens-hackathon/pkg/irrigation"
	"github.com/karamsafarli/siemens-hackathon/pkg/irrigation/controller"
	"github.com/karamsafarli/siemens-hackathon/pkg/irrigation/repository"
	plantRepo "github.com/karamsafarli/siemens-hackathon/pkg/plant/repository"
)

type IrrigationCtrl struct {
	repo   repository.IrrigationRepository
	plants plantRepo.PlantRepository
}

func New(repo repository.IrrigationRepository, plants plantRepo.PlantRepository) controller.IrrigationController {
	return &IrrigationCtrl{repo: repo, plants: plants}
}

func (h *IrrigationCtrl) List(c echo.Context) error {
	batchID := c.QueryParam("plantBatchId")
	if batchID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "plantBatchId is required"})
	}
	events, err := h.repo.ListByBatch(batchID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to fetch irrigation events"})
	}
	return c.JSON(http.StatusOK, events)
}

type createEventReq struct {
	PlantBatchID      string   `json:"plant_batch_id"`
	ScheduledDate     string   `json:"scheduled_date"`
	ExecutedDate      string   `json:"executed_date"`
	WaterAmountLiters *float64 `json:"water_amount_liters"`
	Method            string   `json:"method"`
	Notes             string   `json:"notes"`
	UserID            string   `json:"user_id"`
	Status            string   `json:"status"`
}

func (h *IrrigationCtrl) Create(c echo.Context) error {
	var req createEventReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid json"})
	}
	if req.PlantBatchID == "" || req.ScheduledDate == "" || req.UserID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "plant_batch_id, scheduled_date, and user_id are required",
		})
	}
	scheduled, err := time.Parse("2006-01-02", req.ScheduledDate)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid scheduled_date"})
	}

	// Immediate watering (has an executed date) completes right away;
	// otherwise the event stays planned.
	var executed *time.Time
	if req.ExecutedDate != "" {
		t, err := time.Parse("2006-01-02", req.ExecutedDate)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid executed_date"})
		}
		executed = &t
	}
	completed := executed != nil || req.Status == entities.IrrigationCompleted
	status := entities.IrrigationPlanned
	if completed {
		status = entities.IrrigationCompleted
		if executed == nil {
			now := time.Now()
			executed = &now
		}
	}

	event := &entities.IrrigationEvent{
		PlantBatchID:      req.PlantBatchID,
		ScheduledDate:     scheduled,
		ExecutedDate:      executed,
		Status:            status,
		WaterAmountLiters: req.WaterAmountLiters,
		Method:            req.Method,
		Notes:             req.Notes,
		CreatedBy:         req.UserID,
	}
	if err := h.repo.Create(event); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to create irrigation event"})
	}

	if completed && executed != nil {
		if err := h.repo.SetLastIrrigation(req.PlantBatchID, *executed); err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to update last irrigation date"})
		}
	}
	return c.JSON(http.StatusCreated, event)
}

type completeReq struct {
	ExecutedDate      string   `json:"executed_date"`
	WaterAmountLiters *float64 `json:"water_amount_liters"`
	Notes             string   `json:"notes"`
}

func (h *IrrigationCtrl) Complete(c echo.Context) error {
	event, err := h.repo.FindByID(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Irrigation event not found"})
	}
	var req completeReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid json"})
	}

	executed := time.Now()
	if req.ExecutedDate != "" {
		t, err := time.Parse("2006-01-02", req.ExecutedDate)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid executed_date"})
		}
		executed = t
	}
	event.ExecutedDate = &executed
	event.Status = entities.IrrigationCompleted
	if req.WaterAmountLiters != nil {
		event.WaterAmountLiters = req.WaterAmountLiters
	}
	if req.Notes != "" {
		event.Notes = req.Notes
	}
	if err := h.repo.Update(event); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to complete irrigation"})
	}
	if err := h.repo.SetLastIrrigation(event.PlantBatchID, executed); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to update last irrigation date"})
	}
	return c.JSON(http.StatusOK, event)
}

func (h *IrrigationCtrl) Overdue(c echo.Context) error {
	userID := c.QueryParam("userId")
	if userID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "userId is required"})
	}
	batches, err := h.plants.ListForIrrigation(userID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to fetch overdue irrigation"})
	}
	entries, err := irrigation.ListOverdue(batches, time.Now())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, entries)
}
