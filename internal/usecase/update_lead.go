package usecase

import (
	"context"
	"time"

	"github.com/xavierca1/ligue-crm/internal/entity"
)

type UpdateLeadUseCase struct {
	Repo entity.LeadRepositoryInterface
}

func NewUpdateLeadUseCase(repo entity.LeadRepositoryInterface) *UpdateLeadUseCase {
	return &UpdateLeadUseCase{Repo: repo}
}

// Execute applies only the fields present in the input. Omitted fields keep
// their stored values.
func (uc *UpdateLeadUseCase) Execute(ctx context.Context, id string, input UpdateLeadInput) (*entity.Lead, error) {
	if id == "" {
		return nil, &DomainError{Code: "VALIDATION_ERROR", Message: "lead ID is required"}
	}

	if errs := ValidateUpdateLeadInput(input); len(errs) > 0 {
		return nil, validationFailed(errs)
	}

	lead, err := uc.Repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		lead.Name = *input.Name
	}
	if input.Email != nil {
		lead.Email = *input.Email
	}
	if input.Company != nil {
		lead.Company = *input.Company
	}
	if input.LinkedIn != nil {
		lead.LinkedIn = *input.LinkedIn
	}
	if input.Notes != nil {
		lead.Notes = *input.Notes
	}
	if input.Tags != nil {
		lead.Tags = *input.Tags
	}
	if input.Stage != nil {
		lead.Stage = entity.Stage(*input.Stage)
	}
	if input.NextFollowUp != nil {
		if *input.NextFollowUp == "" {
			lead.NextFollowUp = nil
		} else {
			ts, err := parseTimestamp(*input.NextFollowUp)
			if err != nil {
				return nil, &DomainError{Code: "VALIDATION_ERROR", Message: "nextFollowUp: must be a valid date/time"}
			}
			lead.NextFollowUp = &ts
		}
	}

	lead.UpdatedAt = time.Now().UTC()

	if err := uc.Repo.Update(ctx, lead); err != nil {
		return nil, persistenceFailed("update lead", err)
	}

	return lead, nil
}
