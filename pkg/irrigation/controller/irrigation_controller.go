package controller

import "github.com/labstack/echo/v4"

type IrrigationController interface {
	List(c echo.Context) error
	Create(c echo.Context) error
	Complete(c echo.Context) error
	Overdue(c echo.Context) error
}
