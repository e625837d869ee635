package advance

import "context"

type AdvanceService interface {
	CreateAdvance(ctx context.Context, req CreateAdvanceRequest) (Advance, error)
	ListAdvances(ctx context.Context, employeeID string) ([]Advance, error)
	DeleteAdvance(ctx context.Context, employeeID string, id string) error
}
