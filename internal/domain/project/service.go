package project

import "context"

type ProjectService interface {
	Hierarchy(ctx context.Context, req HierarchyRequest) (HierarchyResponse, error)
}
