package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/xavierca1/ligue-crm/internal/entity"
	"github.com/xavierca1/ligue-crm/internal/usecase"
)

func TestAddConversationWithReminder(t *testing.T) {
	lead := &entity.Lead{ID: "lead-1", Name: "A", Email: "a@b.com", Company: "C", Stage: entity.StageNew}

	leadRepo := new(MockLeadRepository)
	leadRepo.On("FindByID", mock.Anything, "lead-1").Return(lead, nil)

	convRepo := new(MockConversationRepository)
	convRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	uc := usecase.NewAddConversationUseCase(convRepo, leadRepo)

	conv, err := uc.Execute(context.Background(), usecase.AddConversationInput{
		LeadID:   "lead-1",
		Type:     "call",
		Content:  "intro",
		Reminder: "2025-04-01T10:00",
	})

	assert.NoError(t, err)
	assert.Equal(t, entity.ConversationCall, conv.Type)
	assert.NotNil(t, conv.Reminder)
	assert.Equal(t, time.Date(2025, 4, 1, 10, 0, 0, 0, time.UTC), *conv.Reminder)
	assert.NotNil(t, conv.Lead)
	assert.Equal(t, "lead-1", conv.Lead.ID)

	// The follow-up display rule picks this reminder up.
	latest := usecase.LatestFollowUp([]entity.Conversation{*conv})
	assert.Equal(t, *conv.Reminder, *latest)
}

func TestAddConversationWrapsStoreFailure(t *testing.T) {
	lead := &entity.Lead{ID: "lead-1", Name: "A", Email: "a@b.com", Company: "C", Stage: entity.StageNew}

	leadRepo := new(MockLeadRepository)
	leadRepo.On("FindByID", mock.Anything, "lead-1").Return(lead, nil)

	convRepo := new(MockConversationRepository)
	convRepo.On("Create", mock.Anything, mock.Anything).Return(errors.New("connection reset"))

	uc := usecase.NewAddConversationUseCase(convRepo, leadRepo)

	_, err := uc.Execute(context.Background(), usecase.AddConversationInput{
		LeadID: "lead-1", Type: "call", Content: "intro",
	})

	assert.True(t, usecase.IsTechnicalError(err))
}

func TestAddConversationRequiredFields(t *testing.T) {
	convRepo := new(MockConversationRepository)
	leadRepo := new(MockLeadRepository)
	uc := usecase.NewAddConversationUseCase(convRepo, leadRepo)

	tests := []struct {
		name  string
		input usecase.AddConversationInput
		want  string
	}{
		{"missing leadId", usecase.AddConversationInput{Type: "call", Content: "x"}, "leadId: is required"},
		{"missing type", usecase.AddConversationInput{LeadID: "l", Content: "x"}, "type: is required"},
		{"unknown type", usecase.AddConversationInput{LeadID: "l", Type: "fax", Content: "x"}, "type: must be email, call, linkedin, meeting or other"},
		{"missing content", usecase.AddConversationInput{LeadID: "l", Type: "call"}, "content: is required"},
		{"bad reminder", usecase.AddConversationInput{LeadID: "l", Type: "call", Content: "x", Reminder: "soon"}, "reminder: must be a valid date/time"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.input)
			assert.True(t, usecase.IsDomainError(err))
			assert.EqualError(t, err, tt.want)
		})
	}

	convRepo.AssertNotCalled(t, "Create")
}

func TestAddConversationUnknownLead(t *testing.T) {
	leadRepo := new(MockLeadRepository)
	leadRepo.On("FindByID", mock.Anything, "nope").Return(nil, entity.ErrLeadNotFound)

	convRepo := new(MockConversationRepository)

	uc := usecase.NewAddConversationUseCase(convRepo, leadRepo)

	_, err := uc.Execute(context.Background(), usecase.AddConversationInput{
		LeadID:  "nope",
		Type:    "email",
		Content: "x",
	})

	assert.ErrorIs(t, err, entity.ErrLeadNotFound)
	convRepo.AssertNotCalled(t, "Create")
}

func TestUpdateConversationPartial(t *testing.T) {
	reminder := time.Date(2025, 4, 1, 10, 0, 0, 0, time.UTC)
	existing := &entity.Conversation{
		ID:       "conv-1",
		LeadID:   "lead-1",
		Type:     entity.ConversationCall,
		Content:  "intro",
		Outcome:  "positive",
		Reminder: &reminder,
	}

	repo := new(MockConversationRepository)
	repo.On("FindByID", mock.Anything, "conv-1").Return(existing, nil)
	repo.On("Update", mock.Anything, mock.Anything).Return(nil)

	uc := usecase.NewUpdateConversationUseCase(repo)

	content := "intro call, discussed pricing"
	conv, err := uc.Execute(context.Background(), "conv-1", usecase.UpdateConversationInput{Content: &content})

	assert.NoError(t, err)
	assert.Equal(t, content, conv.Content)
	assert.Equal(t, entity.ConversationCall, conv.Type)
	assert.Equal(t, "positive", conv.Outcome)
	assert.Equal(t, reminder, *conv.Reminder)
}

func TestUpdateConversationReparsesReminder(t *testing.T) {
	existing := &entity.Conversation{ID: "conv-1", LeadID: "lead-1", Type: entity.ConversationCall, Content: "intro"}

	repo := new(MockConversationRepository)
	repo.On("FindByID", mock.Anything, "conv-1").Return(existing, nil)
	repo.On("Update", mock.Anything, mock.Anything).Return(nil)

	uc := usecase.NewUpdateConversationUseCase(repo)

	raw := "2025-04-10"
	conv, err := uc.Execute(context.Background(), "conv-1", usecase.UpdateConversationInput{Reminder: &raw})

	assert.NoError(t, err)
	assert.Equal(t, time.Date(2025, 4, 10, 0, 0, 0, 0, time.UTC), *conv.Reminder)
}

func TestDeleteConversationUnknownID(t *testing.T) {
	repo := new(MockConversationRepository)
	repo.On("Delete", mock.Anything, "nope").Return(entity.ErrConversationNotFound)

	uc := usecase.NewDeleteConversationUseCase(repo)

	err := uc.Execute(context.Background(), "nope")
	assert.ErrorIs(t, err, entity.ErrConversationNotFound)
}

func TestListConversationsScopesByLead(t *testing.T) {
	repo := new(MockConversationRepository)
	repo.On("ListByLead", mock.Anything, "lead-1").Return([]entity.Conversation{}, nil)

	uc := usecase.NewListConversationsUseCase(repo)

	_, err := uc.Execute(context.Background(), "lead-1")

	assert.NoError(t, err)
	repo.AssertNotCalled(t, "ListAll")
}
