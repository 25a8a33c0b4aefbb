package router

import (
	"github.com/labstack/echo/v4"

	authCtrl "github.com/karamsafarli/siemens-hackathon/pkg/auth/controller"
	chatCtrl "github.com/karamsafarli/siemens-hackathon/pkg/chat/controller"
	dashCtrl "github.com/karamsafarli/siemens-hackathon/pkg/dashboard/controller"
	fieldCtrl "github.com/karamsafarli/siemens-hackathon/pkg/field/controller"
	importCtrl "github.com/karamsafarli/siemens-hackathon/pkg/importer/controller"
	irrigCtrl "github.com/karamsafarli/siemens-hackathon/pkg/irrigation/controller"
	"github.com/karamsafarli/siemens-hackathon/pkg/middleware"
	noteCtrl "github.com/karamsafarli/siemens-hackathon/pkg/notes/controller"
	plantCtrl "github.com/karamsafarli/siemens-hackathon/pkg/plant/controller"
)

type Controllers struct {
	Auth       authCtrl.AuthController
	Fields     fieldCtrl.FieldController
	Plants     plantCtrl.PlantController
	Irrigation irrigCtrl.IrrigationController
	Notes      noteCtrl.NoteController
	Dashboard  dashCtrl.DashboardController
	Chat       chatCtrl.ChatController
	Import     importCtrl.ImportController
	Health     interface{ Health(echo.Context) error }
}

func New(e *echo.Echo, ctrls Controllers, jwtSecret string) *echo.Echo {
	e.GET("/health", ctrls.Health.Health)

	api := e.Group("/api")

	api.POST("/auth/login", ctrls.Auth.Login)
	api.POST("/auth/logout", ctrls.Auth.Logout)
	api.GET("/auth/me", ctrls.Auth.Me, middleware.RequireAuth(jwtSecret))

	api.GET("/fields", ctrls.Fields.List)
	api.GET("/fields/:id", ctrls.Fields.Get)
	api.POST("/fields", ctrls.Fields.Create)
	api.PUT("/fields/:id", ctrls.Fields.Update)
	api.DELETE("/fields/:id", ctrls.Fields.Delete)

	api.GET("/plant-types", ctrls.Plants.ListTypes)
	api.GET("/plant-batches", ctrls.Plants.ListBatches)
	api.GET("/plant-batches/:id", ctrls.Plants.GetBatch)
	api.POST("/plant-batches", ctrls.Plants.CreateBatch)
	api.PUT("/plant-batches/:id", ctrls.Plants.UpdateBatch)
	api.PUT("/plant-batches/:id/status", ctrls.Plants.UpdateStatus)
	api.DELETE("/plant-batches/:id", ctrls.Plants.DeleteBatch)

	api.GET("/irrigation", ctrls.Irrigation.List)
	api.GET("/irrigation/overdue", ctrls.Irrigation.Overdue)
	api.POST("/irrigation", ctrls.Irrigation.Create)
	api.PUT("/irrigation/:id/complete", ctrls.Irrigation.Complete)

	api.GET("/notes", ctrls.Notes.List)
	api.POST("/notes", ctrls.Notes.Create)
	api.PUT("/notes/:id", ctrls.Notes.Update)
	api.DELETE("/notes/:id", ctrls.Notes.Delete)

	api.GET("/dashboard/stats", ctrls.Dashboard.Stats)
	api.GET("/dashboard/alerts", ctrls.Dashboard.Alerts)

	api.POST("/chat", ctrls.Chat.Chat)
	api.GET("/chat/suggestions", ctrls.Chat.Suggestions)

	api.POST("/import", ctrls.Import.Import)
	api.POST("/import/xlsx", ctrls.Import.ImportXLSX)
	api.GET("/import/jobs", ctrls.Import.ListJobs)
	api.GET("/import/jobs/:id", ctrls.Import.GetJob)

	return e
}
