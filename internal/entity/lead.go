package entity

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrLeadNotFound         = errors.New("lead not found")
	ErrConversationNotFound = errors.New("conversation not found")
)

// Stage of a lead in the sales pipeline.
type Stage string

const (
	StageNew       Stage = "NEW"
	StageContacted Stage = "CONTACTED"
	StageConverted Stage = "CONVERTED"
	StageLost      Stage = "LOST"
)

// PipelineStages is the fixed display order of the board columns.
var PipelineStages = []Stage{StageNew, StageContacted, StageConverted, StageLost}

func (s Stage) Valid() bool {
	switch s {
	case StageNew, StageContacted, StageConverted, StageLost:
		return true
	}
	return false
}

type Lead struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	Email         string         `json:"email"`
	Company       string         `json:"company"`
	LinkedIn      string         `json:"linkedIn,omitempty"`
	Notes         string         `json:"notes,omitempty"`
	Tags          []string       `json:"tags"`
	Stage         Stage          `json:"stage"`
	NextFollowUp  *time.Time     `json:"nextFollowUp,omitempty"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`
	Conversations []Conversation `json:"conversations,omitempty"`
}

// Factory
func NewLead(name, email, company string, stage Stage) (*Lead, error) {
	if stage == "" {
		stage = StageNew
	}

	now := time.Now().UTC()
	lead := &Lead{
		ID:        uuid.New().String(),
		Name:      name,
		Email:     email,
		Company:   company,
		Tags:      []string{},
		Stage:     stage,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := lead.Validate(); err != nil {
		return nil, err
	}

	return lead, nil
}

func (l *Lead) Validate() error {
	if l.Name == "" {
		return errors.New("name is required")
	}
	if l.Email == "" {
		return errors.New("email is required")
	}
	if l.Company == "" {
		return errors.New("company is required")
	}
	if !l.Stage.Valid() {
		return errors.New("stage must be NEW, CONTACTED, CONVERTED or LOST")
	}
	return nil
}

// LeadFilter narrows and orders a lead listing. Both orderings exist in the
// product: the lead list sorts by last update, the manage view by creation.
type LeadFilter struct {
	Stage *Stage
	Order LeadOrder
}

type LeadOrder int

const (
	OrderUpdatedDesc LeadOrder = iota
	OrderCreatedDesc
)

type LeadRepositoryInterface interface {
	Create(ctx context.Context, lead *Lead) error
	FindByID(ctx context.Context, id string) (*Lead, error)
	List(ctx context.Context, filter LeadFilter) ([]*Lead, error)
	Update(ctx context.Context, lead *Lead) error
	UpdateStage(ctx context.Context, id string, stage Stage) (*Lead, error)
	DeleteCascade(ctx context.Context, id string) error
	Search(ctx context.Context, prefix string, limit, conversationLimit int) ([]*Lead, error)
}
