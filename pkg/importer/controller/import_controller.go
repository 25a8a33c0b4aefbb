package controller

import "github.com/labstack/echo/v4"

type ImportController interface {
	Import(c echo.Context) error
	ImportXLSX(c echo.Context) error
	ListJobs(c echo.Context) error
	GetJob(c echo.Context) error
}
