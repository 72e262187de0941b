package regularization

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/hris-portal-go/internal/domain/regularization"
	"github.com/cmlabs-hris/hris-portal-go/internal/domain/timelog"
	"github.com/cmlabs-hris/hris-portal-go/internal/pkg/datekey"
	"github.com/shopspring/decimal"
)

type RegularizationServiceImpl struct {
	timelog.TimeLogRepository
	now func() time.Time
}

// Validate implements regularization.RegularizationService.
func (s *RegularizationServiceImpl) Validate(ctx context.Context, req regularization.ValidateRegularizationRequest) (regularization.ValidationResponse, error) {
	if err := req.Validate(); err != nil {
		return regularization.ValidationResponse{}, err
	}

	r := req.ToRequest()
	today := datekey.FromTime(s.now(), req.Location)
	regularized := RegularizedHours(r)
	resp := regularization.ValidationResponse{
		RegularizedHours: regularized,
		RequiredHours:    RequiredLoggedHours(regularized),
		LoggedHours:      decimal.Zero,
	}

	// Missing and future dates are rejected without looking up logged time.
	if r.Date.IsZero() || r.Date.After(today) {
		resp.Result = ValidateRegularization(r, decimal.Zero, today)
		return resp, nil
	}

	logged, err := s.TimeLogRepository.TotalLoggedHours(ctx, req.EmployeeID, r.Date)
	if err != nil {
		return regularization.ValidationResponse{}, fmt.Errorf("failed to get logged hours: %w", err)
	}
	resp.LoggedHours = logged
	resp.Result = ValidateRegularization(r, logged, today)

	return resp, nil
}

func NewRegularizationService(timeLogRepository timelog.TimeLogRepository, now func() time.Time) regularization.RegularizationService {
	if now == nil {
		now = time.Now
	}
	return &RegularizationServiceImpl{
		TimeLogRepository: timeLogRepository,
		now:               now,
	}
}
