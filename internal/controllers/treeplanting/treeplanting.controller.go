package treePlantingController

import (
	"context"
	"errors"
	"strings"
	"time"

	"envportal/config"
	"envportal/internal/events"
	"envportal/internal/logger"
	. "envportal/internal/models"
	"envportal/internal/repositories"
	"envportal/internal/services"
	"envportal/internal/wizard"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidForm        = errors.New("form validation failed")
	ErrInvalidTransition  = errors.New("invalid status transition")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type TreePlantingController struct {
	treePlantingRepo   repositories.TreePlantingRepository
	transactionService *services.TransactionService
	eventBus           *events.EventBus
	bcryptCost         int
	log                logger.Logger
}

func New(
	treePlantingRepo repositories.TreePlantingRepository,
	transactionService *services.TransactionService,
	eventBus *events.EventBus,
	config config.Config,
) *TreePlantingController {
	cost := config.BcryptCost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	return &TreePlantingController{
		treePlantingRepo:   treePlantingRepo,
		transactionService: transactionService,
		eventBus:           eventBus,
		bcryptCost:         cost,
		log:                logger.New("TreePlantingController"),
	}
}

func (c *TreePlantingController) Submit(ctx context.Context, form wizard.TreePlantingForm) (*TreePlantingApplication, error) {
	log := c.log.Function("Submit")

	if !form.Validate() {
		return nil, ErrInvalidForm
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(form.Password), c.bcryptCost)
	if err != nil {
		return nil, log.Err("failed to hash password", err)
	}

	app := &TreePlantingApplication{
		OrganizationName: strings.TrimSpace(form.OrganizationName),
		OrganizationType: form.OrganizationType,
		TargetRegions:    form.TargetRegions,
		TreesPledged:     form.TreesPledged,
		PlantingPlan:     form.PlantingPlan,
		ContactName:      strings.TrimSpace(form.ContactName),
		ContactEmail:     strings.ToLower(strings.TrimSpace(form.ContactEmail)),
		ContactPhone:     strings.TrimSpace(form.ContactPhone),
		CredentialHash:   string(hash),
		Status:           RegistrationStatusPending,
	}

	err = c.transactionService.Execute(ctx, func(txCtx context.Context) error {
		return c.treePlantingRepo.Create(txCtx, app)
	})
	if err != nil {
		return nil, err
	}

	event := events.Event{
		ID:        uuid.New().String(),
		Type:      "tree_planting_submitted",
		Channel:   "admin",
		UserID:    app.ID,
		Data:      map[string]any{"organizationName": app.OrganizationName, "treesPledged": app.TreesPledged},
		Timestamp: time.Now(),
	}
	if err := c.eventBus.Publish("admin", event); err != nil {
		log.Warn("failed to publish admin event", "error", err)
	}

	return app, nil
}

func (c *TreePlantingController) Transition(ctx context.Context, id string, next RegistrationStatus) (*TreePlantingApplication, error) {
	log := c.log.Function("Transition")

	app, err := c.treePlantingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !app.Status.CanTransitionTo(next) {
		log.Warn("rejected status transition", "id", id, "from", app.Status, "to", next)
		return nil, ErrInvalidTransition
	}

	app.Status = next
	if next == RegistrationStatusApproved {
		now := time.Now()
		app.ApprovedAt = &now
	}

	if err := c.treePlantingRepo.UpdateStatus(ctx, app); err != nil {
		return nil, err
	}

	return app, nil
}

func (c *TreePlantingController) Login(ctx context.Context, email, password string) (*TreePlantingApplication, error) {
	app, err := c.treePlantingRepo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if app.Status != RegistrationStatusApproved {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(app.CredentialHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return app, nil
}

func (c *TreePlantingController) GetAll(ctx context.Context) ([]*TreePlantingApplication, error) {
	return c.treePlantingRepo.GetAll(ctx)
}
