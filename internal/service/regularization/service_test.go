package regularization

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/cmlabs-hris/hris-portal-go/internal/domain/regularization"
	"github.com/cmlabs-hris/hris-portal-go/internal/domain/timelog"
	"github.com/cmlabs-hris/hris-portal-go/internal/pkg/datekey"
	"github.com/cmlabs-hris/hris-portal-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTimeLogs struct {
	logged map[datekey.Key]decimal.Decimal
	calls  int
	err    error
}

func (f *fakeTimeLogs) TotalLoggedHours(ctx context.Context, employeeID string, date datekey.Key) (decimal.Decimal, error) {
	f.calls++
	if f.err != nil {
		return decimal.Zero, f.err
	}
	return f.logged[date], nil
}

func (f *fakeTimeLogs) SummaryByTask(ctx context.Context, employeeID string, from, to datekey.Key) ([]timelog.TaskSummary, error) {
	return nil, nil
}

func clock() time.Time { return time.Date(2024, 6, 12, 15, 0, 0, 0, time.UTC) }

func TestServiceValidate(t *testing.T) {
	repo := &fakeTimeLogs{logged: map[datekey.Key]decimal.Decimal{"2024-06-11": hours("8")}}
	svc := NewRegularizationService(repo, clock)

	resp, err := svc.Validate(context.Background(), regularization.ValidateRegularizationRequest{
		EmployeeID: "emp-1",
		Date:       "2024-06-11",
		CheckIn:    "09:00",
		CheckOut:   "18:00",
		Location:   time.UTC,
	})
	require.NoError(t, err)

	assert.True(t, resp.Accepted)
	assert.True(t, hours("9").Equal(resp.RegularizedHours))
	assert.True(t, hours("8").Equal(resp.RequiredHours))
	assert.True(t, hours("8").Equal(resp.LoggedHours))
}

func TestServiceValidateFutureSkipsLookup(t *testing.T) {
	repo := &fakeTimeLogs{}
	svc := NewRegularizationService(repo, clock)

	resp, err := svc.Validate(context.Background(), regularization.ValidateRegularizationRequest{
		EmployeeID: "emp-1",
		Date:       "2024-06-13",
		CheckIn:    "09:00",
		CheckOut:   "18:00",
		Location:   time.UTC,
	})
	require.NoError(t, err)

	assert.False(t, resp.Accepted)
	assert.Equal(t, regularization.ReasonFutureDate, resp.ReasonCode)
	assert.Zero(t, repo.calls)
}

func TestServiceValidateErrors(t *testing.T) {
	svc := NewRegularizationService(&fakeTimeLogs{}, clock)
	_, err := svc.Validate(context.Background(), regularization.ValidateRegularizationRequest{Date: "2024-06-11", CheckIn: "9am"})
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.ToMap(), "check_in")

	boom := errors.New("timeout")
	svc = NewRegularizationService(&fakeTimeLogs{err: boom}, clock)
	_, err = svc.Validate(context.Background(), regularization.ValidateRegularizationRequest{Date: "2024-06-11", CheckIn: "09:00", CheckOut: "10:00"})
	assert.ErrorIs(t, err, boom)
}
