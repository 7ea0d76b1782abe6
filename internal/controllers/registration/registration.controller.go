package registrationController

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
	// ErrInvalidForm means the submitted state fails wizard validation. The
	// step validator should have gated this client-side.
	ErrInvalidForm = errors.New("form validation failed")

	// ErrInvalidTransition guards the one-directional lifecycle.
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrInvalidCredentials covers unknown email, wrong password, and
	// not-yet-approved organizations alike.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// LogoUpload is an optional binary attachment accompanying a submission.
type LogoUpload struct {
	Filename string
	Data     []byte
}

type RegistrationController struct {
	registrationRepo   repositories.RegistrationRepository
	transactionService *services.TransactionService
	storageService     *services.StorageService
	exportService      *services.ExportService
	eventBus           *events.EventBus
	bcryptCost         int
	log                logger.Logger
}

func New(
	registrationRepo repositories.RegistrationRepository,
	transactionService *services.TransactionService,
	storageService *services.StorageService,
	exportService *services.ExportService,
	eventBus *events.EventBus,
	config config.Config,
) *RegistrationController {
	cost := config.BcryptCost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	return &RegistrationController{
		registrationRepo:   registrationRepo,
		transactionService: transactionService,
		storageService:     storageService,
		exportService:      exportService,
		eventBus:           eventBus,
		bcryptCost:         cost,
		log:                logger.New("RegistrationController"),
	}
}

// Submit persists a completed climate-actor registration. The plaintext
// password is hashed before it touches storage. A failed logo upload aborts
// the submission rather than saving a record with a dangling reference, and
// duplicate contact details surface as repositories.ErrDuplicateContact via
// the unique index, never via a pre-check query.
func (c *RegistrationController) Submit(
	ctx context.Context,
	form wizard.ClimateActorForm,
	logo *LogoUpload,
) (*RegistrationApplication, error) {
	log := c.log.Function("Submit")

	if !form.Validate() {
		return nil, ErrInvalidForm
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(form.Password), c.bcryptCost)
	if err != nil {
		return nil, log.Err("failed to hash password", err)
	}

	var logoURL *string
	if logo != nil {
		url, err := c.storageService.Save(ctx, logo.Filename, logo.Data)
		if err != nil {
			return nil, log.Err("failed to upload logo", err, "filename", logo.Filename)
		}
		logoURL = &url
	}

	app := &RegistrationApplication{
		ActorType:        form.ActorType,
		OrganizationName: strings.TrimSpace(form.OrganizationName),
		FocusAreas:       form.FocusAreas,
		OperatingRegions: form.OperatingRegions,
		YearEstablished:  form.YearEstablished,
		Description:      form.Description,
		ContactName:      strings.TrimSpace(form.ContactName),
		ContactEmail:     strings.ToLower(strings.TrimSpace(form.ContactEmail)),
		ContactPhone:     strings.TrimSpace(form.ContactPhone),
		CredentialHash:   string(hash),
		Status:           RegistrationStatusPending,
		LogoURL:          logoURL,
	}
	if form.Website != "" {
		website := form.Website
		app.Website = &website
	}

	err = c.transactionService.Execute(ctx, func(txCtx context.Context) error {
		return c.registrationRepo.Create(txCtx, app)
	})
	if err != nil {
		return nil, err
	}

	c.publishAdminEvent("registration_submitted", app.ID, map[string]any{
		"organizationName": app.OrganizationName,
		"actorType":        app.ActorType,
	})

	return app, nil
}

// Transition applies an admin decision. Only pending applications move.
func (c *RegistrationController) Transition(
	ctx context.Context,
	id string,
	next RegistrationStatus,
) (*RegistrationApplication, error) {
	log := c.log.Function("Transition")

	app, err := c.registrationRepo.GetByID(ctx, id)
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

	if err := c.registrationRepo.UpdateStatus(ctx, app); err != nil {
		return nil, err
	}

	return app, nil
}

// Login verifies an approved organization's credentials.
func (c *RegistrationController) Login(ctx context.Context, email, password string) (*RegistrationApplication, error) {
	log := c.log.Function("Login")

	app, err := c.registrationRepo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if app.Status != RegistrationStatusApproved {
		log.Warn("login attempt on non-approved application", "id", app.ID, "status", app.Status)
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(app.CredentialHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return app, nil
}

// Filter applies the admin dashboard's client-side search semantics:
// case-insensitive substring match over the fixed text fields, intersected
// with an optional status filter.
func (c *RegistrationController) Filter(
	apps []*RegistrationApplication,
	query string,
	status RegistrationStatus,
) []*RegistrationApplication {
	query = strings.ToLower(strings.TrimSpace(query))

	filtered := make([]*RegistrationApplication, 0, len(apps))
	for _, app := range apps {
		if status != "" && app.Status != status {
			continue
		}
		if query != "" && !matchesQuery(app, query) {
			continue
		}
		filtered = append(filtered, app)
	}
	return filtered
}

func matchesQuery(app *RegistrationApplication, query string) bool {
	for _, field := range []string{
		app.OrganizationName,
		app.ContactName,
		app.ContactEmail,
		app.ContactPhone,
	} {
		if strings.Contains(strings.ToLower(field), query) {
			return true
		}
	}
	return false
}

// ExportCSV renders applications for download.
func (c *RegistrationController) ExportCSV(apps []*RegistrationApplication) (string, error) {
	headers := []string{"Organization", "Actor Type", "Contact Name", "Email", "Phone", "Status", "Submitted"}

	rows := make([][]string, 0, len(apps))
	for _, app := range apps {
		rows = append(rows, []string{
			app.OrganizationName,
			string(app.ActorType),
			app.ContactName,
			app.ContactEmail,
			app.ContactPhone,
			string(app.Status),
			app.CreatedAt.Format(time.RFC3339),
		})
	}

	return c.exportService.BuildCSV(headers, rows)
}

func (c *RegistrationController) publishAdminEvent(eventType, subjectID string, data map[string]any) {
	log := c.log.Function("publishAdminEvent")

	event := events.Event{
		ID:        uuid.New().String(),
		Type:      eventType,
		Channel:   "admin",
		UserID:    subjectID,
		Data:      data,
		Timestamp: time.Now(),
	}

	if err := c.eventBus.Publish("admin", event); err != nil {
		log.Warn("failed to publish admin event", "type", eventType, "error", err)
	}
}
