package recruitmentController

import (
	"context"
	"errors"
	"strings"
	"time"

	"envportal/internal/events"
	"envportal/internal/logger"
	. "envportal/internal/models"
	"envportal/internal/repositories"
	"envportal/internal/services"
	"envportal/internal/wizard"

	"github.com/google/uuid"
)

// ReferencePrefix heads every forest-guard reference number.
const ReferencePrefix = "FG"

var (
	ErrInvalidForm       = errors.New("form validation failed")
	ErrInvalidTransition = errors.New("invalid status transition")
)

type RecruitmentController struct {
	recruitmentRepo    repositories.RecruitmentRepository
	transactionService *services.TransactionService
	referenceService   *services.ReferenceService
	exportService      *services.ExportService
	eventBus           *events.EventBus
	log                logger.Logger
}

func New(
	recruitmentRepo repositories.RecruitmentRepository,
	transactionService *services.TransactionService,
	referenceService *services.ReferenceService,
	exportService *services.ExportService,
	eventBus *events.EventBus,
) *RecruitmentController {
	return &RecruitmentController{
		recruitmentRepo:    recruitmentRepo,
		transactionService: transactionService,
		referenceService:   referenceService,
		exportService:      exportService,
		eventBus:           eventBus,
		log:                logger.New("RecruitmentController"),
	}
}

// Submit persists a forest-guard application with a fresh reference number.
// Document URLs are expected to be already uploaded by the handler; the
// wizard caps them at four.
func (c *RecruitmentController) Submit(ctx context.Context, form wizard.ForestGuardForm) (*RecruitmentApplication, error) {
	log := c.log.Function("Submit")

	if !form.Validate() {
		return nil, ErrInvalidForm
	}

	ref, err := c.referenceService.Generate(ReferencePrefix)
	if err != nil {
		return nil, log.Err("failed to allocate reference number", err)
	}

	app := &RecruitmentApplication{
		ReferenceNumber: ref,
		FirstName:       strings.TrimSpace(form.FirstName),
		LastName:        strings.TrimSpace(form.LastName),
		DateOfBirth:     form.DateOfBirth,
		Gender:          form.Gender,
		StateOfOrigin:   form.StateOfOrigin,
		LGA:             form.LGA,
		Email:           strings.ToLower(strings.TrimSpace(form.Email)),
		Phone:           strings.TrimSpace(form.Phone),
		Address:         form.Address,
		HighestDegree:   form.HighestDegree,
		Institution:     form.Institution,
		GraduationYear:  form.GraduationYear,
		PhysicallyFit:   form.PhysicallyFit,
		HasExperience:   form.HasExperience,
		ExperienceNotes: form.ExperienceNotes,
		Documents:       form.Documents,
		Status:          RecruitmentStatusPending,
	}

	err = c.transactionService.Execute(ctx, func(txCtx context.Context) error {
		return c.recruitmentRepo.Create(txCtx, app)
	})
	if err != nil {
		c.referenceService.Release(ref)
		return nil, err
	}

	c.publishAdminEvent("recruitment_submitted", app.ID, map[string]any{
		"referenceNumber": app.ReferenceNumber,
		"applicant":       app.FirstName + " " + app.LastName,
	})

	return app, nil
}

// Transition moves an application through review. The normal path advances
// one step at a time; override lets an admin jump between non-terminal
// states, but approved and rejected stay frozen either way.
func (c *RecruitmentController) Transition(
	ctx context.Context,
	id string,
	next RecruitmentStatus,
	override bool,
	reviewerID string,
) (*RecruitmentApplication, error) {
	log := c.log.Function("Transition")

	app, err := c.recruitmentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !app.Status.CanTransitionTo(next, override) {
		log.Warn("rejected status transition",
			"id", id, "from", app.Status, "to", next, "override", override)
		return nil, ErrInvalidTransition
	}

	now := time.Now()
	app.Status = next
	app.ReviewedBy = reviewerID
	app.ReviewedAt = &now

	if err := c.recruitmentRepo.Update(ctx, app); err != nil {
		return nil, err
	}

	return app, nil
}

// ScheduleInterview stamps the interview slot alongside the transition.
// Rescheduling an application already at the interview stage only moves the
// slot; no status change is involved.
func (c *RecruitmentController) ScheduleInterview(
	ctx context.Context,
	id string,
	at time.Time,
	reviewerID string,
) (*RecruitmentApplication, error) {
	log := c.log.Function("ScheduleInterview")

	app, err := c.recruitmentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if app.Status != RecruitmentStatusInterview {
		if !app.Status.CanTransitionTo(RecruitmentStatusInterview, true) {
			log.Warn("rejected interview scheduling", "id", id, "from", app.Status)
			return nil, ErrInvalidTransition
		}
		app.Status = RecruitmentStatusInterview
	}

	now := time.Now()
	app.ReviewedBy = reviewerID
	app.ReviewedAt = &now
	app.InterviewAt = &at

	if err := c.recruitmentRepo.Update(ctx, app); err != nil {
		return nil, err
	}

	return app, nil
}

func (c *RecruitmentController) GetByReference(ctx context.Context, ref string) (*RecruitmentApplication, error) {
	return c.recruitmentRepo.GetByReference(ctx, strings.ToUpper(strings.TrimSpace(ref)))
}

func (c *RecruitmentController) Filter(
	apps []*RecruitmentApplication,
	query string,
	status RecruitmentStatus,
) []*RecruitmentApplication {
	query = strings.ToLower(strings.TrimSpace(query))

	filtered := make([]*RecruitmentApplication, 0, len(apps))
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

func matchesQuery(app *RecruitmentApplication, query string) bool {
	for _, field := range []string{
		app.ReferenceNumber,
		app.FirstName,
		app.LastName,
		app.Email,
		app.Phone,
		app.StateOfOrigin,
		app.LGA,
	} {
		if strings.Contains(strings.ToLower(field), query) {
			return true
		}
	}
	return false
}

func (c *RecruitmentController) ExportCSV(apps []*RecruitmentApplication) (string, error) {
	headers := []string{"Reference", "Name", "Email", "Phone", "State", "LGA", "Status", "Submitted"}

	rows := make([][]string, 0, len(apps))
	for _, app := range apps {
		rows = append(rows, []string{
			app.ReferenceNumber,
			app.LastName + ", " + app.FirstName,
			app.Email,
			app.Phone,
			app.StateOfOrigin,
			app.LGA,
			string(app.Status),
			app.CreatedAt.Format(time.RFC3339),
		})
	}

	return c.exportService.BuildCSV(headers, rows)
}

func (c *RecruitmentController) publishAdminEvent(eventType, subjectID string, data map[string]any) {
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
