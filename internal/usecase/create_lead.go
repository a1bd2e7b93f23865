package usecase

import (
	"context"

	"github.com/xavierca1/ligue-crm/internal/entity"
)

type CreateLeadUseCase struct {
	Repo entity.LeadRepositoryInterface
}

func NewCreateLeadUseCase(repo entity.LeadRepositoryInterface) *CreateLeadUseCase {
	return &CreateLeadUseCase{Repo: repo}
}

func (uc *CreateLeadUseCase) Execute(ctx context.Context, input CreateLeadInput) (*entity.Lead, error) {
	if errs := ValidateCreateLeadInput(input); len(errs) > 0 {
		return nil, validationFailed(errs)
	}

	lead, err := entity.NewLead(input.Name, input.Email, input.Company, entity.Stage(input.Stage))
	if err != nil {
		return nil, &DomainError{Code: "VALIDATION_ERROR", Message: err.Error()}
	}

	lead.LinkedIn = input.LinkedIn
	lead.Notes = input.Notes
	if input.Tags != nil {
		lead.Tags = input.Tags
	}
	if input.NextFollowUp != "" {
		ts, err := parseTimestamp(input.NextFollowUp)
		if err != nil {
			return nil, &DomainError{Code: "VALIDATION_ERROR", Message: "nextFollowUp: must be a valid date/time"}
		}
		lead.NextFollowUp = &ts
	}

	if err := uc.Repo.Create(ctx, lead); err != nil {
		return nil, persistenceFailed("persist lead", err)
	}

	lead.Conversations = []entity.Conversation{}
	return lead, nil
}
