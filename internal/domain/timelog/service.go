package timelog

import "context"

type TimeLogService interface {
	Summary(ctx context.Context, req SummaryRequest) (SummaryResponse, error)
}
