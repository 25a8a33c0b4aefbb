package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/karamsafarli/siemens-hackathon/pkg/importer"
	"github.com/karamsafarli/siemens-hackathon/pkg/importer/controller"
	"github.com/karamsafarli/siemens-hackathon/pkg/importer/service"
)

type ImportCtrl struct{ svc service.ImportService }

func New(svc service.ImportService) controller.ImportController { return &ImportCtrl{svc: svc} }

type importReq struct {
	UserID  string            `json:"user_id"`
	Records []importer.Record `json:"records"`
}

func (h *ImportCtrl) Import(c echo.Context) error {
	var req importReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid json"})
	}
	if req.UserID == "" || req.Records == nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "user_id and records array are required"})
	}
	summary, err := h.svc.Run(req.UserID, "", req.Records)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to import data"})
	}
	return c.JSON(http.StatusOK, summary)
}

func (h *ImportCtrl) ImportXLSX(c echo.Context) error {
	userID := c.FormValue("user_id")
	if userID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "user_id is required"})
	}
	fh, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "file is required"})
	}
	f, err := fh.Open()
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "cannot read file"})
	}
	defer f.Close()

	records, err := importer.ParseXLSX(f)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	summary, err := h.svc.Run(userID, fh.Filename, records)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to import data"})
	}
	return c.JSON(http.StatusOK, summary)
}

func (h *ImportCtrl) ListJobs(c echo.Context) error {
	jobs, err := h.svc.ListJobs(c.QueryParam("userId"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to fetch import jobs"})
	}
	return c.JSON(http.StatusOK, jobs)
}

func (h *ImportCtrl) GetJob(c echo.Context) error {
	job, err := h.svc.FindJob(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Import job not found"})
	}
	return c.JSON(http.StatusOK, job)
}
