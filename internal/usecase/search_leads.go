package usecase

import (
	"context"
	"strings"

	"github.com/xavierca1/ligue-crm/internal/entity"
)

const (
	searchResultLimit       = 3
	searchConversationLimit = 5
)

// SearchLeadsUseCase is a prefix search over lead name and email. Substring
// and fuzzy matching are deliberately out of scope.
type SearchLeadsUseCase struct {
	Repo entity.LeadRepositoryInterface
}

func NewSearchLeadsUseCase(repo entity.LeadRepositoryInterface) *SearchLeadsUseCase {
	return &SearchLeadsUseCase{Repo: repo}
}

func (uc *SearchLeadsUseCase) Execute(ctx context.Context, query string) ([]*entity.Lead, error) {
	prefix := strings.TrimSpace(query)
	if prefix == "" {
		return nil, &DomainError{Code: "VALIDATION_ERROR", Message: "search query is required"}
	}

	leads, err := uc.Repo.Search(ctx, prefix, searchResultLimit, searchConversationLimit)
	if err != nil {
		return nil, err
	}

	// Contract: at most 3 leads, each with at most 5 conversations.
	if len(leads) > searchResultLimit {
		leads = leads[:searchResultLimit]
	}
	for _, lead := range leads {
		if len(lead.Conversations) > searchConversationLimit {
			lead.Conversations = lead.Conversations[:searchConversationLimit]
		}
	}

	return leads, nil
}
