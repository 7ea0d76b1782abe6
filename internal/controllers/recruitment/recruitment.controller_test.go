package recruitmentController

import (
	"context"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"envportal/internal/logger"
	. "envportal/internal/models"
	"envportal/internal/repositories"
	"envportal/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRecruitmentRepo struct {
	apps map[string]*RecruitmentApplication
}

func newFakeRecruitmentRepo() *fakeRecruitmentRepo {
	return &fakeRecruitmentRepo{apps: make(map[string]*RecruitmentApplication)}
}

func (f *fakeRecruitmentRepo) Create(ctx context.Context, app *RecruitmentApplication) error {
	f.apps[app.ID] = app
	return nil
}

func (f *fakeRecruitmentRepo) GetByID(ctx context.Context, id string) (*RecruitmentApplication, error) {
	app, ok := f.apps[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return app, nil
}

func (f *fakeRecruitmentRepo) GetByReference(ctx context.Context, ref string) (*RecruitmentApplication, error) {
	for _, app := range f.apps {
		if app.ReferenceNumber == ref {
			return app, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (f *fakeRecruitmentRepo) GetAll(ctx context.Context) ([]*RecruitmentApplication, error) {
	apps := make([]*RecruitmentApplication, 0, len(f.apps))
	for _, app := range f.apps {
		apps = append(apps, app)
	}
	return apps, nil
}

func (f *fakeRecruitmentRepo) Update(ctx context.Context, app *RecruitmentApplication) error {
	f.apps[app.ID] = app
	return nil
}

func newTestController(repo repositories.RecruitmentRepository) *RecruitmentController {
	return &RecruitmentController{
		recruitmentRepo:  repo,
		referenceService: services.NewReferenceService(),
		exportService:    services.NewExportService(),
		log:              logger.New("RecruitmentController"),
	}
}

func applicationAt(id string, status RecruitmentStatus) *RecruitmentApplication {
	app := &RecruitmentApplication{
		ReferenceNumber: "FG202609010042",
		FirstName:       "Chidi",
		LastName:        "Okafor",
		Email:           "chidi@mail.example",
		Phone:           "+2348098765432",
		StateOfOrigin:   "Enugu",
		LGA:             "Nsukka",
		Status:          status,
	}
	app.ID = id
	return app
}

func TestRecruitmentController_Transition(t *testing.T) {
	tests := []struct {
		name     string
		from     RecruitmentStatus
		to       RecruitmentStatus
		override bool
		expected error
	}{
		{name: "pending to shortlisted", from: RecruitmentStatusPending, to: RecruitmentStatusShortlisted},
		{name: "shortlisted to interview", from: RecruitmentStatusShortlisted, to: RecruitmentStatusInterview},
		{name: "skip requires override", from: RecruitmentStatusPending, to: RecruitmentStatusApproved, expected: ErrInvalidTransition},
		{name: "override skips forward", from: RecruitmentStatusPending, to: RecruitmentStatusApproved, override: true},
		{name: "override moves backwards", from: RecruitmentStatusInterview, to: RecruitmentStatusShortlisted, override: true},
		{name: "reject from any stage", from: RecruitmentStatusInterview, to: RecruitmentStatusRejected},
		{name: "approved stays frozen", from: RecruitmentStatusApproved, to: RecruitmentStatusPending, override: true, expected: ErrInvalidTransition},
		{name: "rejected stays frozen", from: RecruitmentStatusRejected, to: RecruitmentStatusShortlisted, override: true, expected: ErrInvalidTransition},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeRecruitmentRepo()
			repo.apps["app-1"] = applicationAt("app-1", tt.from)

			controller := newTestController(repo)
			result, err := controller.Transition(context.Background(), "app-1", tt.to, tt.override, "admin-1")

			if tt.expected != nil {
				assert.ErrorIs(t, err, tt.expected)
				assert.Equal(t, tt.from, repo.apps["app-1"].Status)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.to, result.Status)
			assert.Equal(t, "admin-1", result.ReviewedBy)
			require.NotNil(t, result.ReviewedAt)
		})
	}
}

func TestRecruitmentController_ScheduleInterview(t *testing.T) {
	repo := newFakeRecruitmentRepo()
	repo.apps["app-1"] = applicationAt("app-1", RecruitmentStatusPending)

	controller := newTestController(repo)
	slot := time.Date(2026, 9, 15, 10, 0, 0, 0, time.UTC)

	result, err := controller.ScheduleInterview(context.Background(), "app-1", slot, "admin-1")
	require.NoError(t, err)
	assert.Equal(t, RecruitmentStatusInterview, result.Status)
	require.NotNil(t, result.InterviewAt)
	assert.Equal(t, slot, *result.InterviewAt)
}

func TestRecruitmentController_ScheduleInterview_Reschedule(t *testing.T) {
	repo := newFakeRecruitmentRepo()
	app := applicationAt("app-1", RecruitmentStatusInterview)
	original := time.Date(2026, 9, 10, 9, 0, 0, 0, time.UTC)
	app.InterviewAt = &original
	repo.apps["app-1"] = app

	controller := newTestController(repo)
	moved := time.Date(2026, 9, 22, 14, 0, 0, 0, time.UTC)

	result, err := controller.ScheduleInterview(context.Background(), "app-1", moved, "admin-2")
	require.NoError(t, err)
	assert.Equal(t, RecruitmentStatusInterview, result.Status)
	require.NotNil(t, result.InterviewAt)
	assert.Equal(t, moved, *result.InterviewAt)
	assert.Equal(t, "admin-2", result.ReviewedBy)
}

func TestRecruitmentController_ScheduleInterview_Terminal(t *testing.T) {
	repo := newFakeRecruitmentRepo()
	repo.apps["app-1"] = applicationAt("app-1", RecruitmentStatusRejected)

	controller := newTestController(repo)
	_, err := controller.ScheduleInterview(context.Background(), "app-1", time.Now(), "admin-1")
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestRecruitmentController_GetByReference_Normalizes(t *testing.T) {
	repo := newFakeRecruitmentRepo()
	repo.apps["app-1"] = applicationAt("app-1", RecruitmentStatusPending)

	controller := newTestController(repo)
	app, err := controller.GetByReference(context.Background(), "  fg202609010042 ")
	require.NoError(t, err)
	assert.Equal(t, "app-1", app.ID)
}

func TestRecruitmentController_Filter(t *testing.T) {
	one := applicationAt("app-1", RecruitmentStatusPending)
	two := applicationAt("app-2", RecruitmentStatusShortlisted)
	two.ReferenceNumber = "FG202609010043"
	two.FirstName = "Amina"
	two.LastName = "Bello"
	two.Email = "amina@mail.example"
	two.StateOfOrigin = "Kano"

	apps := []*RecruitmentApplication{one, two}
	controller := newTestController(newFakeRecruitmentRepo())

	tests := []struct {
		name     string
		query    string
		status   RecruitmentStatus
		expected []string
	}{
		{name: "no filters", expected: []string{"app-1", "app-2"}},
		{name: "reference match", query: "0043", expected: []string{"app-2"}},
		{name: "last name case insensitive", query: "OKAFOR", expected: []string{"app-1"}},
		{name: "state match", query: "kano", expected: []string{"app-2"}},
		{name: "status filter", status: RecruitmentStatusShortlisted, expected: []string{"app-2"}},
		{name: "query and status intersect", query: "okafor", status: RecruitmentStatusShortlisted, expected: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filtered := controller.Filter(apps, tt.query, tt.status)
			ids := make([]string, 0, len(filtered))
			for _, app := range filtered {
				ids = append(ids, app.ID)
			}
			assert.ElementsMatch(t, tt.expected, ids)
		})
	}
}

func TestRecruitmentController_ExportCSV(t *testing.T) {
	app := applicationAt("app-1", RecruitmentStatusPending)

	controller := newTestController(newFakeRecruitmentRepo())
	out, err := controller.ExportCSV([]*RecruitmentApplication{app})
	require.NoError(t, err)

	// "Last, First" contains a comma, so the name column must round-trip.
	parsed, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, parsed, 2)
	assert.Equal(t, "Okafor, Chidi", parsed[1][1])
	assert.Equal(t, "FG202609010042", parsed[1][0])
}
