package regularization

import "context"

type RegularizationService interface {
	Validate(ctx context.Context, req ValidateRegularizationRequest) (ValidationResponse, error)
}
