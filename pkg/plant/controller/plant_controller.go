package controller

import "github.com/labstack/echo/v4"

type PlantController interface {
	ListTypes(c echo.Context) error
	ListBatches(c echo.Context) error
	GetBatch(c echo.Context) error
	CreateBatch(c echo.Context) error
	UpdateBatch(c echo.Context) error
	UpdateStatus(c echo.Context) error
	DeleteBatch(c echo.Context) error
}
