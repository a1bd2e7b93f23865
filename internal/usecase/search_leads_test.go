package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/xavierca1/ligue-crm/internal/entity"
	"github.com/xavierca1/ligue-crm/internal/usecase"
)

func TestSearchLeadsRejectsEmptyQuery(t *testing.T) {
	repo := new(MockLeadRepository)
	uc := usecase.NewSearchLeadsUseCase(repo)

	for _, q := range []string{"", "   ", "\t"} {
		_, err := uc.Execute(context.Background(), q)
		assert.True(t, usecase.IsDomainError(err), "query %q", q)
		assert.EqualError(t, err, "search query is required")
	}

	repo.AssertNotCalled(t, "Search")
}

func TestSearchLeadsPassesTrimmedPrefixAndLimits(t *testing.T) {
	john := &entity.Lead{ID: "1", Name: "John Smith", Email: "john@techcorp.com"}
	joana := &entity.Lead{ID: "2", Name: "Joana Reyes", Email: "joana@acme.io"}

	repo := new(MockLeadRepository)
	repo.On("Search", mock.Anything, "jo", 3, 5).Return([]*entity.Lead{john, joana}, nil)

	uc := usecase.NewSearchLeadsUseCase(repo)

	leads, err := uc.Execute(context.Background(), "  jo ")

	assert.NoError(t, err)
	assert.Len(t, leads, 2)
	assert.Equal(t, "John Smith", leads[0].Name)
	assert.Equal(t, "Joana Reyes", leads[1].Name)
	repo.AssertExpectations(t)
}

func TestSearchLeadsEnforcesCaps(t *testing.T) {
	convs := make([]entity.Conversation, 8)
	many := []*entity.Lead{
		{ID: "1", Name: "A", Conversations: convs},
		{ID: "2", Name: "B"},
		{ID: "3", Name: "C"},
		{ID: "4", Name: "D"},
	}

	repo := new(MockLeadRepository)
	repo.On("Search", mock.Anything, "a", 3, 5).Return(many, nil)

	uc := usecase.NewSearchLeadsUseCase(repo)

	leads, err := uc.Execute(context.Background(), "a")

	assert.NoError(t, err)
	assert.Len(t, leads, 3)
	assert.Len(t, leads[0].Conversations, 5)
}
