package app

import (
	"envportal/config"
	"envportal/internal/database"
	"envportal/internal/events"
	"envportal/internal/handlers/middleware"
	"envportal/internal/logger"
	"envportal/internal/repositories"
	"envportal/internal/services"
	"envportal/internal/websockets"

	adminController "envportal/internal/controllers/admin"
	airQualityController "envportal/internal/controllers/airquality"
	contentController "envportal/internal/controllers/content"
	recruitmentController "envportal/internal/controllers/recruitment"
	registrationController "envportal/internal/controllers/registration"
	reportsController "envportal/internal/controllers/reports"
	treePlantingController "envportal/internal/controllers/treeplanting"
)

type App struct {
	Database   database.DB
	Middleware middleware.Middleware
	Websocket  *websockets.Manager
	EventBus   *events.EventBus
	Config     config.Config

	// Services
	TransactionService *services.TransactionService
	SessionService     *services.SessionService
	StorageService     *services.StorageService
	ReferenceService   *services.ReferenceService
	ExportService      *services.ExportService

	// Repositories
	RegistrationRepo repositories.RegistrationRepository
	RecruitmentRepo  repositories.RecruitmentRepository
	ReportRepo       repositories.ReportRepository
	AirQualityRepo   repositories.AirQualityRepository
	AdminRepo        repositories.AdminRepository
	ContentRepo      repositories.ContentRepository
	TreePlantingRepo repositories.TreePlantingRepository

	// Controllers
	RegistrationController *registrationController.RegistrationController
	RecruitmentController  *recruitmentController.RecruitmentController
	ReportsController      *reportsController.ReportsController
	AirQualityController   *airQualityController.AirQualityController
	AdminController        *adminController.AdminController
	ContentController      *contentController.ContentController
	TreePlantingController *treePlantingController.TreePlantingController
}

func New() (*App, error) {
	log := logger.New("app").Function("New")

	config, err := config.InitConfig()
	if err != nil {
		return &App{}, log.Err("failed to initialize config", err)
	}

	db, err := database.New(config)
	if err != nil {
		return &App{}, log.Err("failed to create database", err)
	}

	eventBus := events.New(db.Cache.Events, config)

	// Initialize services
	transactionService := services.NewTransactionService(db)
	sessionService := services.NewSessionService(db, config)
	storageService, err := services.NewStorageService(config)
	if err != nil {
		return &App{}, log.Err("failed to create storage service", err)
	}
	referenceService := services.NewReferenceService()
	exportService := services.NewExportService()

	// Initialize repositories
	registrationRepo := repositories.NewRegistration(db)
	recruitmentRepo := repositories.NewRecruitment(db)
	reportRepo := repositories.NewReport(db)
	airQualityRepo := repositories.NewAirQuality(db)
	adminRepo := repositories.NewAdmin(db)
	contentRepo := repositories.NewContent(db)
	treePlantingRepo := repositories.NewTreePlanting(db)

	// Initialize controllers with repositories and services
	middleware := middleware.New(db, sessionService, adminRepo, config)
	registrationCtrl := registrationController.New(
		registrationRepo, transactionService, storageService, exportService, eventBus, config)
	recruitmentCtrl := recruitmentController.New(
		recruitmentRepo, transactionService, referenceService, exportService, eventBus)
	reportsCtrl := reportsController.New(reportRepo, exportService, eventBus)
	airQualityCtrl := airQualityController.New(airQualityRepo, exportService)
	adminCtrl := adminController.New(adminRepo, config)
	contentCtrl := contentController.New(contentRepo, storageService)
	treePlantingCtrl := treePlantingController.New(
		treePlantingRepo, transactionService, eventBus, config)

	websocket, err := websockets.New(db, eventBus, config)
	if err != nil {
		return &App{}, log.Err("failed to create websocket manager", err)
	}

	app := &App{
		Database:               db,
		Config:                 config,
		Middleware:             middleware,
		Websocket:              websocket,
		EventBus:               eventBus,
		TransactionService:     transactionService,
		SessionService:         sessionService,
		StorageService:         storageService,
		ReferenceService:       referenceService,
		ExportService:          exportService,
		RegistrationRepo:       registrationRepo,
		RecruitmentRepo:        recruitmentRepo,
		ReportRepo:             reportRepo,
		AirQualityRepo:         airQualityRepo,
		AdminRepo:              adminRepo,
		ContentRepo:            contentRepo,
		TreePlantingRepo:       treePlantingRepo,
		RegistrationController: registrationCtrl,
		RecruitmentController:  recruitmentCtrl,
		ReportsController:      reportsCtrl,
		AirQualityController:   airQualityCtrl,
		AdminController:        adminCtrl,
		ContentController:      contentCtrl,
		TreePlantingController: treePlantingCtrl,
	}

	if err := app.validate(); err != nil {
		return &App{}, log.Err("failed to validate app", err)
	}

	return app, nil
}

func (a *App) validate() error {
	log := logger.New("app").Function("validate")
	if a.Database.SQL == nil {
		return log.ErrMsg("database is nil")
	}

	if a.Config == (config.Config{}) {
		return log.ErrMsg("config is nil")
	}

	nilChecks := []any{
		a.Websocket,
		a.EventBus,
		a.TransactionService,
		a.SessionService,
		a.StorageService,
		a.ReferenceService,
		a.ExportService,
		a.RegistrationController,
		a.RecruitmentController,
		a.ReportsController,
		a.AirQualityController,
		a.AdminController,
		a.ContentController,
		a.TreePlantingController,
	}

	for _, check := range nilChecks {
		if check == nil {
			return log.ErrMsg("nil check failed")
		}
	}

	return nil
}

func (a *App) Close() (err error) {
	if a.EventBus != nil {
		if closeErr := a.EventBus.Close(); closeErr != nil {
			err = closeErr
		}
	}

	if dbErr := a.Database.Close(); dbErr != nil {
		err = dbErr
	}

	return err
}
