package controllerImp

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/karamsafarli/siemens-hackathon/pkg/dashboard/controller"
	"github.com/karamsafarli/siemens-hackathon/pkg/dashboard/service"
)

type DashboardCtrl struct{ svc service.DashboardService }

func New(svc service.DashboardService) controller.DashboardController {
	return &DashboardCtrl{svc: svc}
}

func (h *DashboardCtrl) Stats(c echo.Context) error {
	userID := c.QueryParam("userId")
	if userID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "userId is required"})
	}
	stats, err := h.svc.Stats(userID, time.Now())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to fetch dashboard stats"})
	}
	return c.JSON(http.StatusOK, stats)
}

func (h *DashboardCtrl) Alerts(c echo.Context) error {
	userID := c.QueryParam("userId")
	if userID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "userId is required"})
	}
	list, err := h.svc.Alerts(userID, time.Now())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to fetch recent alerts"})
	}
	return c.JSON(http.StatusOK, list)
}
