package reportsController

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

	"github.com/google/uuid"
)

var (
	ErrInvalidReport     = errors.New("report validation failed")
	ErrInvalidTransition = errors.New("invalid status transition")
)

type ReportsController struct {
	reportRepo    repositories.ReportRepository
	exportService *services.ExportService
	eventBus      *events.EventBus
	log           logger.Logger
}

func New(
	reportRepo repositories.ReportRepository,
	exportService *services.ExportService,
	eventBus *events.EventBus,
) *ReportsController {
	return &ReportsController{
		reportRepo:    reportRepo,
		exportService: exportService,
		eventBus:      eventBus,
		log:           logger.New("ReportsController"),
	}
}

// Submit records a public environmental report.
func (c *ReportsController) Submit(ctx context.Context, report *EnvironmentalReport) (*EnvironmentalReport, error) {
	if strings.TrimSpace(report.IssueType) == "" ||
		strings.TrimSpace(report.Location) == "" ||
		strings.TrimSpace(report.Description) == "" {
		return nil, ErrInvalidReport
	}

	report.Status = ReportStatusNew
	if err := c.reportRepo.Create(ctx, report); err != nil {
		return nil, err
	}

	c.publishAdminEvent("report_submitted", report.ID, map[string]any{
		"issueType": report.IssueType,
		"location":  report.Location,
	})

	return report, nil
}

// Transition moves a report forward through its lifecycle. Resolving stamps
// the resolver; notes are optional but only settable on resolution.
func (c *ReportsController) Transition(
	ctx context.Context,
	id string,
	next ReportStatus,
	resolutionNotes string,
	resolverID string,
) (*EnvironmentalReport, error) {
	log := c.log.Function("Transition")

	report, err := c.reportRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !report.Status.CanTransitionTo(next) {
		log.Warn("rejected status transition", "id", id, "from", report.Status, "to", next)
		return nil, ErrInvalidTransition
	}

	report.Status = next
	if next == ReportStatusResolved {
		now := time.Now()
		report.ResolvedAt = &now
		report.ResolvedBy = &resolverID
		if notes := strings.TrimSpace(resolutionNotes); notes != "" {
			report.ResolutionNotes = &notes
		}
	}

	if err := c.reportRepo.Update(ctx, report); err != nil {
		return nil, err
	}

	return report, nil
}

func (c *ReportsController) Filter(
	reports []*EnvironmentalReport,
	query string,
	status ReportStatus,
	issueType string,
) []*EnvironmentalReport {
	query = strings.ToLower(strings.TrimSpace(query))

	filtered := make([]*EnvironmentalReport, 0, len(reports))
	for _, report := range reports {
		if status != "" && report.Status != status {
			continue
		}
		if issueType != "" && !strings.EqualFold(report.IssueType, issueType) {
			continue
		}
		if query != "" && !matchesQuery(report, query) {
			continue
		}
		filtered = append(filtered, report)
	}
	return filtered
}

func matchesQuery(report *EnvironmentalReport, query string) bool {
	for _, field := range []string{
		report.Location,
		report.Description,
		report.ReporterName,
		report.ReporterEmail,
	} {
		if strings.Contains(strings.ToLower(field), query) {
			return true
		}
	}
	return false
}

func (c *ReportsController) ExportCSV(reports []*EnvironmentalReport) (string, error) {
	headers := []string{"Issue Type", "Location", "Reporter", "Status", "Submitted", "Resolved"}

	rows := make([][]string, 0, len(reports))
	for _, report := range reports {
		resolved := ""
		if report.ResolvedAt != nil {
			resolved = report.ResolvedAt.Format(time.RFC3339)
		}
		rows = append(rows, []string{
			report.IssueType,
			report.Location,
			report.ReporterName,
			string(report.Status),
			report.CreatedAt.Format(time.RFC3339),
			resolved,
		})
	}

	return c.exportService.BuildCSV(headers, rows)
}

func (c *ReportsController) publishAdminEvent(eventType, subjectID string, data map[string]any) {
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
