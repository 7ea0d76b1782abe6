package registrationController

import (
	"context"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"envportal/internal/database"
	"envportal/internal/logger"
	. "envportal/internal/models"
	"envportal/internal/repositories"
	"envportal/internal/services"
	"envportal/internal/wizard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type fakeRegistrationRepo struct {
	apps    map[string]*RegistrationApplication
	updated *RegistrationApplication
}

func newFakeRegistrationRepo() *fakeRegistrationRepo {
	return &fakeRegistrationRepo{apps: make(map[string]*RegistrationApplication)}
}

func (f *fakeRegistrationRepo) Create(ctx context.Context, app *RegistrationApplication) error {
	f.apps[app.ID] = app
	return nil
}

func (f *fakeRegistrationRepo) GetByID(ctx context.Context, id string) (*RegistrationApplication, error) {
	app, ok := f.apps[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return app, nil
}

func (f *fakeRegistrationRepo) GetByEmail(ctx context.Context, email string) (*RegistrationApplication, error) {
	for _, app := range f.apps {
		if app.ContactEmail == email {
			return app, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (f *fakeRegistrationRepo) GetAll(ctx context.Context) ([]*RegistrationApplication, error) {
	apps := make([]*RegistrationApplication, 0, len(f.apps))
	for _, app := range f.apps {
		apps = append(apps, app)
	}
	return apps, nil
}

func (f *fakeRegistrationRepo) GetByStatus(ctx context.Context, status RegistrationStatus) ([]*RegistrationApplication, error) {
	var apps []*RegistrationApplication
	for _, app := range f.apps {
		if app.Status == status {
			apps = append(apps, app)
		}
	}
	return apps, nil
}

func (f *fakeRegistrationRepo) UpdateStatus(ctx context.Context, app *RegistrationApplication) error {
	f.apps[app.ID] = app
	f.updated = app
	return nil
}

func (f *fakeRegistrationRepo) Delete(ctx context.Context, id string) error {
	delete(f.apps, id)
	return nil
}

func newTestController(repo repositories.RegistrationRepository) *RegistrationController {
	return &RegistrationController{
		registrationRepo: repo,
		exportService:    services.NewExportService(),
		bcryptCost:       bcrypt.MinCost,
		log:              logger.New("RegistrationController"),
	}
}

func pendingApplication(id, email string) *RegistrationApplication {
	hash, _ := bcrypt.GenerateFromPassword([]byte("s3cret99"), bcrypt.MinCost)
	app := &RegistrationApplication{
		ActorType:        ActorTypeNonState,
		OrganizationName: "Green Future Initiative",
		ContactName:      "Amina Bello",
		ContactEmail:     email,
		ContactPhone:     "+2348012345678",
		CredentialHash:   string(hash),
		Status:           RegistrationStatusPending,
	}
	app.ID = id
	return app
}

func TestRegistrationController_Submit_InvalidForm(t *testing.T) {
	controller := newTestController(newFakeRegistrationRepo())

	// An incomplete form never reaches the repository.
	_, err := controller.Submit(context.Background(), wizard.ClimateActorForm{}, nil)
	assert.ErrorIs(t, err, ErrInvalidForm)
}

func submittableForm(email, phone string) wizard.ClimateActorForm {
	return wizard.ClimateActorForm{
		ActorType:        ActorTypeNonState,
		OrganizationName: "Shade Collective",
		FocusAreas:       []string{"reforestation"},
		OperatingRegions: []string{"South East"},
		Description:      "Community tree nurseries.",
		ContactName:      "Ngozi Eze",
		ContactEmail:     email,
		ContactPhone:     phone,
		Password:         "s3cret99",
		ConfirmPassword:  "s3cret99",
		Consent:          true,
	}
}

// Duplicate contact details must surface as ErrDuplicateContact from the
// unique index, and the rolled-back transaction must leave a single record.
func TestRegistrationController_Submit_DuplicateContact(t *testing.T) {
	gormDB, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, gormDB.AutoMigrate(&RegistrationApplication{}))

	db := database.DB{SQL: gormDB}
	repo := repositories.NewRegistration(db)
	controller := &RegistrationController{
		registrationRepo:   repo,
		transactionService: services.NewTransactionService(db),
		exportService:      services.NewExportService(),
		bcryptCost:         bcrypt.MinCost,
		log:                logger.New("RegistrationController"),
	}

	seed := pendingApplication("", "amina@greenfuture.example")
	require.NoError(t, repo.Create(context.Background(), seed))

	tests := []struct {
		name  string
		email string
		phone string
	}{
		{name: "same email", email: "amina@greenfuture.example", phone: "+2349000000001"},
		{name: "same phone", email: "other@greenfuture.example", phone: "+2348012345678"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := controller.Submit(context.Background(), submittableForm(tt.email, tt.phone), nil)
			require.ErrorIs(t, err, repositories.ErrDuplicateContact)

			var count int64
			require.NoError(t, gormDB.Model(&RegistrationApplication{}).Count(&count).Error)
			assert.EqualValues(t, 1, count)
		})
	}
}

func TestRegistrationController_Transition(t *testing.T) {
	tests := []struct {
		name     string
		from     RegistrationStatus
		to       RegistrationStatus
		expected error
	}{
		{name: "pending to approved", from: RegistrationStatusPending, to: RegistrationStatusApproved},
		{name: "pending to rejected", from: RegistrationStatusPending, to: RegistrationStatusRejected},
		{name: "approved is terminal", from: RegistrationStatusApproved, to: RegistrationStatusRejected, expected: ErrInvalidTransition},
		{name: "rejected is terminal", from: RegistrationStatusRejected, to: RegistrationStatusApproved, expected: ErrInvalidTransition},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeRegistrationRepo()
			app := pendingApplication("app-1", "amina@greenfuture.example")
			app.Status = tt.from
			repo.apps[app.ID] = app

			controller := newTestController(repo)
			result, err := controller.Transition(context.Background(), app.ID, tt.to)

			if tt.expected != nil {
				assert.ErrorIs(t, err, tt.expected)
				assert.Nil(t, repo.updated)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.to, result.Status)
			require.NotNil(t, repo.updated)
			if tt.to == RegistrationStatusApproved {
				require.NotNil(t, result.ApprovedAt)
				assert.WithinDuration(t, time.Now(), *result.ApprovedAt, time.Minute)
			} else {
				assert.Nil(t, result.ApprovedAt)
			}
		})
	}
}

func TestRegistrationController_Transition_NotFound(t *testing.T) {
	controller := newTestController(newFakeRegistrationRepo())

	_, err := controller.Transition(context.Background(), "missing", RegistrationStatusApproved)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestRegistrationController_Login(t *testing.T) {
	repo := newFakeRegistrationRepo()
	approved := pendingApplication("app-approved", "amina@greenfuture.example")
	approved.Status = RegistrationStatusApproved
	repo.apps[approved.ID] = approved

	pending := pendingApplication("app-pending", "pending@greenfuture.example")
	repo.apps[pending.ID] = pending

	controller := newTestController(repo)

	tests := []struct {
		name     string
		email    string
		password string
		expected error
	}{
		{name: "approved with correct password", email: "amina@greenfuture.example", password: "s3cret99"},
		{name: "email is normalized", email: "  AMINA@GreenFuture.example ", password: "s3cret99"},
		{name: "wrong password", email: "amina@greenfuture.example", password: "wrong", expected: ErrInvalidCredentials},
		{name: "pending cannot log in", email: "pending@greenfuture.example", password: "s3cret99", expected: ErrInvalidCredentials},
		{name: "unknown email", email: "nobody@example.com", password: "s3cret99", expected: ErrInvalidCredentials},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, err := controller.Login(context.Background(), tt.email, tt.password)
			if tt.expected != nil {
				assert.ErrorIs(t, err, tt.expected)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, approved.ID, app.ID)
		})
	}
}

func TestRegistrationController_Filter(t *testing.T) {
	one := pendingApplication("app-1", "amina@greenfuture.example")
	two := pendingApplication("app-2", "sani@desertshield.example")
	two.OrganizationName = "Desert Shield Coalition"
	two.ContactName = "Sani Garba"
	two.Status = RegistrationStatusApproved

	apps := []*RegistrationApplication{one, two}
	controller := newTestController(newFakeRegistrationRepo())

	tests := []struct {
		name     string
		query    string
		status   RegistrationStatus
		expected []string
	}{
		{name: "no filters returns all", expected: []string{"app-1", "app-2"}},
		{name: "query matches organization name", query: "desert", expected: []string{"app-2"}},
		{name: "query is case insensitive", query: "GREEN", expected: []string{"app-1"}},
		{name: "query matches contact email", query: "sani@", expected: []string{"app-2"}},
		{name: "query matches phone", query: "80123", expected: []string{"app-1", "app-2"}},
		{name: "status filter", status: RegistrationStatusApproved, expected: []string{"app-2"}},
		{name: "query and status intersect", query: "green", status: RegistrationStatusApproved, expected: []string{}},
		{name: "no match", query: "nonexistent", expected: []string{}},
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

func TestRegistrationController_ExportCSV(t *testing.T) {
	app := pendingApplication("app-1", "amina@greenfuture.example")
	app.OrganizationName = "Green Future, Initiative"

	controller := newTestController(newFakeRegistrationRepo())
	out, err := controller.ExportCSV([]*RegistrationApplication{app})
	require.NoError(t, err)

	parsed, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, parsed, 2)
	assert.Equal(t, "Green Future, Initiative", parsed[1][0])
	assert.Equal(t, "pending", parsed[1][5])
}
