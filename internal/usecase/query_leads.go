package usecase

import (
	"context"

	"github.com/xavierca1/ligue-crm/internal/entity"
)

type GetLeadUseCase struct {
	Repo entity.LeadRepositoryInterface
}

func NewGetLeadUseCase(repo entity.LeadRepositoryInterface) *GetLeadUseCase {
	return &GetLeadUseCase{Repo: repo}
}

func (uc *GetLeadUseCase) Execute(ctx context.Context, id string) (*entity.Lead, error) {
	if id == "" {
		return nil, &DomainError{Code: "VALIDATION_ERROR", Message: "lead ID is required"}
	}
	return uc.Repo.FindByID(ctx, id)
}

type ListLeadsUseCase struct {
	Repo entity.LeadRepositoryInterface
}

func NewListLeadsUseCase(repo entity.LeadRepositoryInterface) *ListLeadsUseCase {
	return &ListLeadsUseCase{Repo: repo}
}

// Execute lists leads with conversations attached, optionally filtered by
// stage. The default ordering is most recently updated first; the manage
// view asks for creation order instead.
func (uc *ListLeadsUseCase) Execute(ctx context.Context, stage, order string) ([]*entity.Lead, error) {
	filter := entity.LeadFilter{Order: entity.OrderUpdatedDesc}

	switch order {
	case "", "updated":
	case "created":
		filter.Order = entity.OrderCreatedDesc
	default:
		return nil, &DomainError{Code: "VALIDATION_ERROR", Message: "order: must be updated or created"}
	}

	if stage != "" {
		s := entity.Stage(stage)
		if !s.Valid() {
			return nil, &DomainError{Code: "VALIDATION_ERROR", Message: "stage: must be NEW, CONTACTED, CONVERTED or LOST"}
		}
		filter.Stage = &s
	}

	return uc.Repo.List(ctx, filter)
}
