package usecase_test

import (
	"context"

	"talentai-backend/internal/domain"

	"github.com/stretchr/testify/mock"
)

// Mock Repositories

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepo) Update(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepo) SetVerified(ctx context.Context, id string, verified bool) error {
	return m.Called(ctx, id, verified).Error(0)
}

type MockCandidateProfileRepo struct {
	mock.Mock
}

func (m *MockCandidateProfileRepo) GetByUserID(ctx context.Context, userID string) (*domain.CandidateProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CandidateProfile), args.Error(1)
}

func (m *MockCandidateProfileRepo) Upsert(ctx context.Context, profile *domain.CandidateProfile) error {
	return m.Called(ctx, profile).Error(0)
}

func (m *MockCandidateProfileRepo) AttachSkill(ctx context.Context, userID string, skill domain.CandidateSkill) error {
	return m.Called(ctx, userID, skill).Error(0)
}

type MockCompanyProfileRepo struct {
	mock.Mock
}

func (m *MockCompanyProfileRepo) GetByUserID(ctx context.Context, userID string) (*domain.CompanyProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CompanyProfile), args.Error(1)
}

func (m *MockCompanyProfileRepo) GetByID(ctx context.Context, id int64) (*domain.CompanyProfile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CompanyProfile), args.Error(1)
}

func (m *MockCompanyProfileRepo) Upsert(ctx context.Context, profile *domain.CompanyProfile) error {
	return m.Called(ctx, profile).Error(0)
}

type MockJobRepo struct {
	mock.Mock
}

func (m *MockJobRepo) Create(ctx context.Context, job *domain.Job) error {
	return m.Called(ctx, job).Error(0)
}

func (m *MockJobRepo) GetByID(ctx context.Context, id int64) (*domain.Job, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Job), args.Error(1)
}

func (m *MockJobRepo) FetchPublicActiveJobs(ctx context.Context, limit, offset int) ([]domain.JobWithCompany, int64, error) {
	args := m.Called(ctx, limit, offset)
	return args.Get(0).([]domain.JobWithCompany), args.Get(1).(int64), args.Error(2)
}

func (m *MockJobRepo) FetchByCompanyID(ctx context.Context, companyID int64, limit, offset int) ([]domain.Job, int64, error) {
	args := m.Called(ctx, companyID, limit, offset)
	return args.Get(0).([]domain.Job), args.Get(1).(int64), args.Error(2)
}

func (m *MockJobRepo) Update(ctx context.Context, job *domain.Job) error {
	return m.Called(ctx, job).Error(0)
}

func (m *MockJobRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockMatchRepo struct {
	mock.Mock
}

func (m *MockMatchRepo) FetchCandidatesForJob(ctx context.Context, jobID int64) ([]domain.MatchCandidate, error) {
	args := m.Called(ctx, jobID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MatchCandidate), args.Error(1)
}

type MockBidRepo struct {
	mock.Mock
}

func (m *MockBidRepo) Upsert(ctx context.Context, bid *domain.Bid) error {
	return m.Called(ctx, bid).Error(0)
}

func (m *MockBidRepo) ListByJob(ctx context.Context, jobID int64) ([]domain.Bid, error) {
	args := m.Called(ctx, jobID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Bid), args.Error(1)
}
