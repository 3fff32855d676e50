package usecase

import (
	"context"
	"errors"

	"talentai-backend/internal/domain"
	"talentai-backend/pkg/apperror"
)

type bidUsecase struct {
	bidRepo            domain.BidRepository
	jobRepo            domain.JobRepository
	companyProfileRepo domain.CompanyProfileRepository
}

func NewBidUsecase(
	bidRepo domain.BidRepository,
	jobRepo domain.JobRepository,
	companyProfileRepo domain.CompanyProfileRepository,
) domain.BidUsecase {
	return &bidUsecase{
		bidRepo:            bidRepo,
		jobRepo:            jobRepo,
		companyProfileRepo: companyProfileRepo,
	}
}

// PlaceBid validates preconditions before any repository call: a
// non-positive amount or missing ids never reaches storage.
func (u *bidUsecase) PlaceBid(ctx context.Context, companyUserID string, jobID int64, candidateID string, amount float64) (*domain.Bid, error) {
	if amount <= 0 {
		return nil, apperror.BadRequest("Bid amount must be a positive number")
	}
	if jobID == 0 || candidateID == "" {
		return nil, apperror.BadRequest("Job and candidate are required")
	}

	job, err := u.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job not found")
		}
		return nil, err
	}

	company, err := u.companyProfileRepo.GetByUserID(ctx, companyUserID)
	if err != nil {
		return nil, apperror.NotFound("Company profile not found")
	}
	if job.CompanyID != company.ID {
		return nil, apperror.Forbidden("You can only bid on your own job posts")
	}

	bid := &domain.Bid{
		JobID:         jobID,
		CandidateID:   candidateID,
		CompanyUserID: companyUserID,
		Amount:        amount,
	}
	if err := u.bidRepo.Upsert(ctx, bid); err != nil {
		return nil, apperror.Internal(err)
	}
	return bid, nil
}

func (u *bidUsecase) ListBidsForJob(ctx context.Context, companyUserID string, jobID int64) ([]domain.Bid, error) {
	job, err := u.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job not found")
		}
		return nil, err
	}
	company, err := u.companyProfileRepo.GetByUserID(ctx, companyUserID)
	if err != nil {
		return nil, apperror.NotFound("Company profile not found")
	}
	if job.CompanyID != company.ID {
		return nil, apperror.Forbidden("You can only view bids on your own job posts")
	}

	bids, err := u.bidRepo.ListByJob(ctx, jobID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return bids, nil
}
