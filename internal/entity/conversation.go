package entity

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// ConversationType is the channel a conversation happened on.
type ConversationType string

const (
	ConversationEmail    ConversationType = "email"
	ConversationCall     ConversationType = "call"
	ConversationLinkedIn ConversationType = "linkedin"
	ConversationMeeting  ConversationType = "meeting"
	ConversationOther    ConversationType = "other"
)

func (t ConversationType) Valid() bool {
	switch t {
	case ConversationEmail, ConversationCall, ConversationLinkedIn, ConversationMeeting, ConversationOther:
		return true
	}
	return false
}

// Conversation is a logged touchpoint with a lead. A conversation is owned by
// its lead and never outlives it.
type Conversation struct {
	ID        string           `json:"id"`
	LeadID    string           `json:"leadId"`
	Type      ConversationType `json:"type"`
	Content   string           `json:"content"`
	Outcome   string           `json:"outcome,omitempty"`
	Timestamp time.Time        `json:"timestamp"`
	Reminder  *time.Time       `json:"reminder,omitempty"`
	Lead      *Lead            `json:"lead,omitempty"`
}

// Factory
func NewConversation(leadID string, convType ConversationType, content string) (*Conversation, error) {
	conv := &Conversation{
		ID:        uuid.New().String(),
		LeadID:    leadID,
		Type:      convType,
		Content:   content,
		Timestamp: time.Now().UTC(),
	}

	if err := conv.Validate(); err != nil {
		return nil, err
	}

	return conv, nil
}

func (c *Conversation) Validate() error {
	if c.LeadID == "" {
		return errors.New("leadId is required")
	}
	if c.Type == "" {
		return errors.New("type is required")
	}
	if !c.Type.Valid() {
		return errors.New("type must be email, call, linkedin, meeting or other")
	}
	if c.Content == "" {
		return errors.New("content is required")
	}
	return nil
}

type ConversationRepositoryInterface interface {
	Create(ctx context.Context, conv *Conversation) error
	FindByID(ctx context.Context, id string) (*Conversation, error)
	ListByLead(ctx context.Context, leadID string) ([]Conversation, error)
	ListAll(ctx context.Context) ([]Conversation, error)
	Update(ctx context.Context, conv *Conversation) error
	Delete(ctx context.Context, id string) error
}
