package services_test

import (
	"context"
	"time"

	"github.com/legalpulse/survey-api/internal/models"
	"github.com/stretchr/testify/mock"
)

// MockLawyerSurveyRepository is a mock implementation of LawyerSurveyRepositoryInterface
type MockLawyerSurveyRepository struct {
	mock.Mock
}

func (m *MockLawyerSurveyRepository) Create(ctx context.Context, survey *models.LawyerSurvey) error {
	args := m.Called(ctx, survey)
	return args.Error(0)
}

func (m *MockLawyerSurveyRepository) GetByID(ctx context.Context, id string) (*models.LawyerSurvey, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.LawyerSurvey), args.Error(1)
}

func (m *MockLawyerSurveyRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockLawyerSurveyRepository) List(ctx context.Context, filter models.LawyerFilter, opts models.ListOptions) ([]*models.LawyerSurvey, int, error) {
	args := m.Called(ctx, filter, opts)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]*models.LawyerSurvey), args.Int(1), args.Error(2)
}

func (m *MockLawyerSurveyRepository) Search(ctx context.Context, criteria models.LawyerSearchCriteria) ([]*models.LawyerSurvey, error) {
	args := m.Called(ctx, criteria)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.LawyerSurvey), args.Error(1)
}

func (m *MockLawyerSurveyRepository) All(ctx context.Context) ([]*models.LawyerSurvey, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.LawyerSurvey), args.Error(1)
}

func (m *MockLawyerSurveyRepository) Analytics(ctx context.Context) (*models.LawyerAnalytics, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.LawyerAnalytics), args.Error(1)
}

func (m *MockLawyerSurveyRepository) UpdateStatus(ctx context.Context, id string, status *models.LifecycleStatus, notes map[string]any) (*models.LawyerSurvey, error) {
	args := m.Called(ctx, id, status, notes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.LawyerSurvey), args.Error(1)
}

func (m *MockLawyerSurveyRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockGeneralSurveyRepository is a mock implementation of GeneralSurveyRepositoryInterface
type MockGeneralSurveyRepository struct {
	mock.Mock
}

func (m *MockGeneralSurveyRepository) Create(ctx context.Context, survey *models.GeneralSurvey) error {
	args := m.Called(ctx, survey)
	return args.Error(0)
}

func (m *MockGeneralSurveyRepository) GetByID(ctx context.Context, id string) (*models.GeneralSurvey, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.GeneralSurvey), args.Error(1)
}

func (m *MockGeneralSurveyRepository) List(ctx context.Context, filter models.GeneralFilter, opts models.ListOptions) ([]*models.GeneralSurvey, int, error) {
	args := m.Called(ctx, filter, opts)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]*models.GeneralSurvey), args.Int(1), args.Error(2)
}

func (m *MockGeneralSurveyRepository) Analytics(ctx context.Context) (*models.GeneralAnalytics, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.GeneralAnalytics), args.Error(1)
}

func (m *MockGeneralSurveyRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockLeadNotifier records lead notifications
type MockLeadNotifier struct {
	mock.Mock
}

func (m *MockLeadNotifier) NotifyAsync(recordID string) {
	m.Called(recordID)
}

// MockArchiveStore is a mock implementation of ArchiveStore
type MockArchiveStore struct {
	mock.Mock
}

func (m *MockArchiveStore) ExportKey(kind string, at time.Time) string {
	args := m.Called(kind, at)
	return args.String(0)
}

func (m *MockArchiveStore) Upload(ctx context.Context, key string, body []byte, contentType string) (string, error) {
	args := m.Called(ctx, key, body, contentType)
	return args.String(0), args.Error(1)
}
