package usecase

import (
	"context"

	"github.com/xavierca1/ligue-crm/internal/entity"
)

type AddConversationUseCase struct {
	Repo     entity.ConversationRepositoryInterface
	LeadRepo entity.LeadRepositoryInterface
}

func NewAddConversationUseCase(repo entity.ConversationRepositoryInterface, leadRepo entity.LeadRepositoryInterface) *AddConversationUseCase {
	return &AddConversationUseCase{Repo: repo, LeadRepo: leadRepo}
}

func (uc *AddConversationUseCase) Execute(ctx context.Context, input AddConversationInput) (*entity.Conversation, error) {
	if errs := ValidateAddConversationInput(input); len(errs) > 0 {
		return nil, validationFailed(errs)
	}

	// The lead must exist before anything is written.
	lead, err := uc.LeadRepo.FindByID(ctx, input.LeadID)
	if err != nil {
		return nil, err
	}

	conv, err := entity.NewConversation(input.LeadID, entity.ConversationType(input.Type), input.Content)
	if err != nil {
		return nil, &DomainError{Code: "VALIDATION_ERROR", Message: err.Error()}
	}

	conv.Outcome = input.Outcome
	if input.Reminder != "" {
		ts, err := parseTimestamp(input.Reminder)
		if err != nil {
			return nil, &DomainError{Code: "VALIDATION_ERROR", Message: "reminder: must be a valid date/time"}
		}
		conv.Reminder = &ts
	}

	if err := uc.Repo.Create(ctx, conv); err != nil {
		return nil, persistenceFailed("persist conversation", err)
	}

	lead.Conversations = nil
	conv.Lead = lead
	return conv, nil
}

type UpdateConversationUseCase struct {
	Repo entity.ConversationRepositoryInterface
}

func NewUpdateConversationUseCase(repo entity.ConversationRepositoryInterface) *UpdateConversationUseCase {
	return &UpdateConversationUseCase{Repo: repo}
}

func (uc *UpdateConversationUseCase) Execute(ctx context.Context, id string, input UpdateConversationInput) (*entity.Conversation, error) {
	if id == "" {
		return nil, &DomainError{Code: "VALIDATION_ERROR", Message: "conversation ID is required"}
	}

	if errs := ValidateUpdateConversationInput(input); len(errs) > 0 {
		return nil, validationFailed(errs)
	}

	conv, err := uc.Repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Type != nil {
		conv.Type = entity.ConversationType(*input.Type)
	}
	if input.Content != nil {
		conv.Content = *input.Content
	}
	if input.Outcome != nil {
		conv.Outcome = *input.Outcome
	}
	if input.Reminder != nil {
		if *input.Reminder == "" {
			conv.Reminder = nil
		} else {
			ts, err := parseTimestamp(*input.Reminder)
			if err != nil {
				return nil, &DomainError{Code: "VALIDATION_ERROR", Message: "reminder: must be a valid date/time"}
			}
			conv.Reminder = &ts
		}
	}

	if err := uc.Repo.Update(ctx, conv); err != nil {
		return nil, persistenceFailed("update conversation", err)
	}

	return conv, nil
}

type DeleteConversationUseCase struct {
	Repo entity.ConversationRepositoryInterface
}

func NewDeleteConversationUseCase(repo entity.ConversationRepositoryInterface) *DeleteConversationUseCase {
	return &DeleteConversationUseCase{Repo: repo}
}

// Execute removes a single conversation. The owning lead is untouched.
func (uc *DeleteConversationUseCase) Execute(ctx context.Context, id string) error {
	if id == "" {
		return &DomainError{Code: "VALIDATION_ERROR", Message: "conversation ID is required"}
	}
	if err := uc.Repo.Delete(ctx, id); err != nil {
		return persistenceFailed("delete conversation", err)
	}
	return nil
}

type ListConversationsUseCase struct {
	Repo entity.ConversationRepositoryInterface
}

func NewListConversationsUseCase(repo entity.ConversationRepositoryInterface) *ListConversationsUseCase {
	return &ListConversationsUseCase{Repo: repo}
}

// Execute lists conversations newest first, scoped to a lead when leadID is
// given.
func (uc *ListConversationsUseCase) Execute(ctx context.Context, leadID string) ([]entity.Conversation, error) {
	if leadID != "" {
		return uc.Repo.ListByLead(ctx, leadID)
	}
	return uc.Repo.ListAll(ctx)
}
