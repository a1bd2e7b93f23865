package usecase

import (
	"context"

	"github.com/xavierca1/ligue-crm/internal/entity"
)

type DeleteLeadUseCase struct {
	Repo entity.LeadRepositoryInterface
}

func NewDeleteLeadUseCase(repo entity.LeadRepositoryInterface) *DeleteLeadUseCase {
	return &DeleteLeadUseCase{Repo: repo}
}

// Execute deletes a lead and every conversation it owns. The repository runs
// both deletes in one transaction so a failure leaves no orphans.
func (uc *DeleteLeadUseCase) Execute(ctx context.Context, id string) error {
	if id == "" {
		return &DomainError{Code: "VALIDATION_ERROR", Message: "lead ID is required"}
	}
	if err := uc.Repo.DeleteCascade(ctx, id); err != nil {
		return persistenceFailed("delete lead", err)
	}
	return nil
}
