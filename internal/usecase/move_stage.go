package usecase

import (
	"context"

	"github.com/xavierca1/ligue-crm/internal/entity"
)

type MoveStageUseCase struct {
	Repo entity.LeadRepositoryInterface
}

func NewMoveStageUseCase(repo entity.LeadRepositoryInterface) *MoveStageUseCase {
	return &MoveStageUseCase{Repo: repo}
}

// Execute is an update restricted to the stage field. An invalid stage is
// rejected before the store is touched, leaving the lead unchanged.
func (uc *MoveStageUseCase) Execute(ctx context.Context, id string, stage entity.Stage) (*entity.Lead, error) {
	if id == "" {
		return nil, &DomainError{Code: "VALIDATION_ERROR", Message: "lead ID is required"}
	}
	if !stage.Valid() {
		return nil, &DomainError{Code: "VALIDATION_ERROR", Message: "stage: must be NEW, CONTACTED, CONVERTED or LOST"}
	}

	lead, err := uc.Repo.UpdateStage(ctx, id, stage)
	if err != nil {
		return nil, persistenceFailed("move lead", err)
	}
	return lead, nil
}
