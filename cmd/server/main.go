package main

import (
	"log"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"github.com/karamsafarli/siemens-hackathon/config"
	"github.com/karamsafarli/siemens-hackathon/database"
	"github.com/karamsafarli/siemens-hackathon/router"

	authCtrlImp "github.com/karamsafarli/siemens-hackathon/pkg/auth/controllerImp"
	authRepoImp "github.com/karamsafarli/siemens-hackathon/pkg/auth/repositoryImp"

	fieldCtrlImp "github.com/karamsafarli/siemens-hackathon/pkg/field/controllerImp"
	fieldRepoImp "github.com/karamsafarli/siemens-hackathon/pkg/field/repositoryImp"

	plantCtrlImp "github.com/karamsafarli/siemens-hackathon/pkg/plant/controllerImp"
	plantRepoImp "github.com/karamsafarli/siemens-hackathon/pkg/plant/repositoryImp"

	irrigCtrlImp "github.com/karamsafarli/siemens-hackathon/pkg/irrigation/controllerImp"
	irrigRepoImp "github.com/karamsafarli/siemens-hackathon/pkg/irrigation/repositoryImp"

	noteCtrlImp "github.com/karamsafarli/siemens-hackathon/pkg/notes/controllerImp"
	noteRepoImp "github.com/karamsafarli/siemens-hackathon/pkg/notes/repositoryImp"

	dashCtrlImp "github.com/karamsafarli/siemens-hackathon/pkg/dashboard/controllerImp"
	dashSvcImp "github.com/karamsafarli/siemens-hackathon/pkg/dashboard/serviceImp"

	"github.com/karamsafarli/siemens-hackathon/pkg/ai"
	"github.com/karamsafarli/siemens-hackathon/pkg/chat"
	chatCtrlImp "github.com/karamsafarli/siemens-hackathon/pkg/chat/controllerImp"
	chatSvcImp "github.com/karamsafarli/siemens-hackathon/pkg/chat/serviceImp"

	importCtrlImp "github.com/karamsafarli/siemens-hackathon/pkg/importer/controllerImp"
	importSvcImp "github.com/karamsafarli/siemens-hackathon/pkg/importer/serviceImp"

	healthCtrlImp "github.com/karamsafarli/siemens-hackathon/pkg/health/controllerImp"
)

func main() {
	cfg := config.Load()

	db := database.OpenSQLite(cfg.DBPath)

	e := echo.New()
	e.HideBanner = true
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.CORS())

	// LLM client: real endpoint when a key is configured, mock otherwise.
	var llm ai.Client
	if cfg.LLMAPIKey != "" {
		llm = ai.NewOpenAI(cfg.LLMEndpoint, cfg.LLMAPIKey, cfg.LLMModel, ai.DefaultSchema, cfg.ChatUserID)
	} else {
		log.Printf("[main] no OPENAI_API_KEY set, chat uses the mock client")
		llm = ai.NewMock(cfg.ChatUserID)
	}

	userRepo := authRepoImp.New(db)
	fieldRepo := fieldRepoImp.New(db)
	plantRepo := plantRepoImp.New(db)
	irrigRepo := irrigRepoImp.New(db)
	noteRepo := noteRepoImp.New(db)

	chatSvc := chatSvcImp.New(llm, chat.NewExecutor(db))
	dashSvc := dashSvcImp.New(db, plantRepo)
	importSvc := importSvcImp.New(db)

	ctrls := router.Controllers{
		Auth:       authCtrlImp.New(userRepo, cfg.JWTSecret),
		Fields:     fieldCtrlImp.New(fieldRepo),
		Plants:     plantCtrlImp.New(plantRepo),
		Irrigation: irrigCtrlImp.New(irrigRepo, plantRepo),
		Notes:      noteCtrlImp.New(noteRepo),
		Dashboard:  dashCtrlImp.New(dashSvc),
		Chat:       chatCtrlImp.New(chatSvc, true),
		Import:     importCtrlImp.New(importSvc),
		Health:     healthCtrlImp.NewHealthCtrl(db),
	}

	r := router.New(e, ctrls, cfg.JWTSecret)

	log.Printf("listening on :%s", cfg.Port)
	if err := r.Start(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
