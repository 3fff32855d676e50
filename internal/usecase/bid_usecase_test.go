package usecase_test

import (
	"context"
	"testing"

	"talentai-backend/internal/domain"
	"talentai-backend/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newBidFixture() (*MockBidRepo, *MockJobRepo, *MockCompanyProfileRepo, domain.BidUsecase) {
	bidRepo := new(MockBidRepo)
	jobRepo := new(MockJobRepo)
	companyRepo := new(MockCompanyProfileRepo)
	uc := usecase.NewBidUsecase(bidRepo, jobRepo, companyRepo)
	return bidRepo, jobRepo, companyRepo, uc
}

func TestPlaceBidPreconditions(t *testing.T) {
	ctx := context.Background()

	t.Run("Zero amount is rejected before any repository call", func(t *testing.T) {
		bidRepo, jobRepo, _, uc := newBidFixture()

		_, err := uc.PlaceBid(ctx, "company-user", 1, "candidate-1", 0)
		assert.Error(t, err)
		jobRepo.AssertNotCalled(t, "GetByID")
		bidRepo.AssertNotCalled(t, "Upsert")
	})

	t.Run("Negative amount is rejected", func(t *testing.T) {
		bidRepo, _, _, uc := newBidFixture()

		_, err := uc.PlaceBid(ctx, "company-user", 1, "candidate-1", -50)
		assert.Error(t, err)
		bidRepo.AssertNotCalled(t, "Upsert")
	})

	t.Run("Missing candidate is rejected", func(t *testing.T) {
		bidRepo, _, _, uc := newBidFixture()

		_, err := uc.PlaceBid(ctx, "company-user", 1, "", 100)
		assert.Error(t, err)
		bidRepo.AssertNotCalled(t, "Upsert")
	})
}

func TestPlaceBidOwnership(t *testing.T) {
	ctx := context.Background()

	t.Run("Bidding on another company's job is forbidden", func(t *testing.T) {
		bidRepo, jobRepo, companyRepo, uc := newBidFixture()
		jobRepo.On("GetByID", ctx, int64(7)).Return(&domain.Job{ID: 7, CompanyID: 2}, nil)
		companyRepo.On("GetByUserID", ctx, "company-user").Return(&domain.CompanyProfile{ID: 1, UserID: "company-user"}, nil)

		_, err := uc.PlaceBid(ctx, "company-user", 7, "candidate-1", 100)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "own job posts")
		bidRepo.AssertNotCalled(t, "Upsert")
	})

	t.Run("Owner's bid is upserted", func(t *testing.T) {
		bidRepo, jobRepo, companyRepo, uc := newBidFixture()
		jobRepo.On("GetByID", ctx, int64(7)).Return(&domain.Job{ID: 7, CompanyID: 1}, nil)
		companyRepo.On("GetByUserID", ctx, "company-user").Return(&domain.CompanyProfile{ID: 1, UserID: "company-user"}, nil)
		bidRepo.On("Upsert", ctx, mock.AnythingOfType("*domain.Bid")).Return(nil)

		bid, err := uc.PlaceBid(ctx, "company-user", 7, "candidate-1", 150)
		assert.NoError(t, err)
		assert.Equal(t, int64(7), bid.JobID)
		assert.Equal(t, "candidate-1", bid.CandidateID)
		assert.Equal(t, 150.0, bid.Amount)
		bidRepo.AssertExpectations(t)
	})
}

func TestListBidsForJob(t *testing.T) {
	ctx := context.Background()

	t.Run("Foreign job is forbidden", func(t *testing.T) {
		_, jobRepo, companyRepo, uc := newBidFixture()
		jobRepo.On("GetByID", ctx, int64(3)).Return(&domain.Job{ID: 3, CompanyID: 9}, nil)
		companyRepo.On("GetByUserID", ctx, "company-user").Return(&domain.CompanyProfile{ID: 1}, nil)

		_, err := uc.ListBidsForJob(ctx, "company-user", 3)
		assert.Error(t, err)
	})

	t.Run("Owner sees the bid list", func(t *testing.T) {
		bidRepo, jobRepo, companyRepo, uc := newBidFixture()
		jobRepo.On("GetByID", ctx, int64(3)).Return(&domain.Job{ID: 3, CompanyID: 1}, nil)
		companyRepo.On("GetByUserID", ctx, "company-user").Return(&domain.CompanyProfile{ID: 1}, nil)
		bidRepo.On("ListByJob", ctx, int64(3)).Return([]domain.Bid{{JobID: 3, CandidateID: "candidate-1", Amount: 100}}, nil)

		bids, err := uc.ListBidsForJob(ctx, "company-user", 3)
		assert.NoError(t, err)
		assert.Len(t, bids, 1)
	})
}
