package project

import (
	"strings"

	"github.com/cmlabs-hris/hris-portal-go/internal/pkg/validator"
)

type HierarchyRequest struct {
	EmployeeID string
	// Expanded lists project and task IDs whose children are shown.
	Expanded []string
}

// ParseExpanded splits a comma separated id list.
func ParseExpanded(s string) []string {
	var ids []string
	for _, id := range strings.Split(s, ",") {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}

func (r *HierarchyRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type HierarchyResponse struct {
	Rows []Row `json:"rows"`
}
