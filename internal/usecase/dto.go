package usecase

import (
	"time"

	"github.com/xavierca1/ligue-crm/internal/entity"
)

type CreateLeadInput struct {
	Name         string   `json:"name"`
	Email        string   `json:"email"`
	Company      string   `json:"company"`
	LinkedIn     string   `json:"linkedIn"`
	Notes        string   `json:"notes"`
	Tags         []string `json:"tags"`
	Stage        string   `json:"stage"`
	NextFollowUp string   `json:"nextFollowUp"`
}

// UpdateLeadInput is a partial update. Pointer fields distinguish omitted
// from present-empty, so an omitted field never wipes the stored value.
type UpdateLeadInput struct {
	Name         *string   `json:"name"`
	Email        *string   `json:"email"`
	Company      *string   `json:"company"`
	LinkedIn     *string   `json:"linkedIn"`
	Notes        *string   `json:"notes"`
	Tags         *[]string `json:"tags"`
	Stage        *string   `json:"stage"`
	NextFollowUp *string   `json:"nextFollowUp"`
}

type AddConversationInput struct {
	LeadID   string `json:"leadId"`
	Type     string `json:"type"`
	Content  string `json:"content"`
	Outcome  string `json:"outcome"`
	Reminder string `json:"reminder"`
}

type UpdateConversationInput struct {
	Type     *string `json:"type"`
	Content  *string `json:"content"`
	Outcome  *string `json:"outcome"`
	Reminder *string `json:"reminder"`
}

// Reminder is one derived entry of the upcoming-reminders view. It is never
// persisted.
type Reminder struct {
	LeadID       string                  `json:"leadId"`
	LeadName     string                  `json:"leadName"`
	ReminderDate time.Time               `json:"reminderDate"`
	Type         entity.ConversationType `json:"type"`
	Content      string                  `json:"content"`
}

// PipelineColumn is one board bucket in display order.
type PipelineColumn struct {
	Stage entity.Stage   `json:"stage"`
	Leads []*entity.Lead `json:"leads"`
}
