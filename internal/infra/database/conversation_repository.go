package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"github.com/xavierca1/ligue-crm/internal/entity"
)

// lib/pq error code for foreign key violations.
const foreignKeyViolation = "23503"

type ConversationRepository struct {
	DB *sql.DB
}

func NewConversationRepository(db *sql.DB) *ConversationRepository {
	return &ConversationRepository{DB: db}
}

func (r *ConversationRepository) Create(ctx context.Context, conv *entity.Conversation) error {
	query := `
		INSERT INTO conversations (id, lead_id, type, content, outcome, created_at, reminder)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.DB.ExecContext(ctx, query,
		conv.ID,
		conv.LeadID,
		conv.Type,
		conv.Content,
		conv.Outcome,
		conv.Timestamp,
		conv.Reminder,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == foreignKeyViolation {
			return entity.ErrLeadNotFound
		}
		return fmt.Errorf("inserting conversation: %w", err)
	}

	return nil
}

func (r *ConversationRepository) FindByID(ctx context.Context, id string) (*entity.Conversation, error) {
	query := `
		SELECT id, lead_id, type, content, outcome, created_at, reminder
		FROM conversations
		WHERE id = $1
	`

	var conv entity.Conversation
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&conv.ID,
		&conv.LeadID,
		&conv.Type,
		&conv.Content,
		&conv.Outcome,
		&conv.Timestamp,
		&conv.Reminder,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entity.ErrConversationNotFound
		}
		return nil, fmt.Errorf("finding conversation: %w", err)
	}

	return &conv, nil
}

func (r *ConversationRepository) ListByLead(ctx context.Context, leadID string) ([]entity.Conversation, error) {
	query := `
		SELECT id, lead_id, type, content, outcome, created_at, reminder
		FROM conversations
		WHERE lead_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.DB.QueryContext(ctx, query, leadID)
	if err != nil {
		return nil, fmt.Errorf("listing conversations: %w", err)
	}
	defer rows.Close()

	convs := []entity.Conversation{}
	for rows.Next() {
		var conv entity.Conversation
		if err := rows.Scan(&conv.ID, &conv.LeadID, &conv.Type, &conv.Content, &conv.Outcome, &conv.Timestamp, &conv.Reminder); err != nil {
			return nil, fmt.Errorf("scanning conversation: %w", err)
		}
		convs = append(convs, conv)
	}

	return convs, rows.Err()
}

// ListAll returns every conversation newest first with its parent lead
// embedded.
func (r *ConversationRepository) ListAll(ctx context.Context) ([]entity.Conversation, error) {
	query := `
		SELECT c.id, c.lead_id, c.type, c.content, c.outcome, c.created_at, c.reminder,
		       l.id, l.name, l.email, l.company, l.linked_in, l.notes, l.tags, l.stage,
		       l.next_follow_up, l.created_at, l.updated_at
		FROM conversations c
		JOIN leads l ON l.id = c.lead_id
		ORDER BY c.created_at DESC
	`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing conversations: %w", err)
	}
	defer rows.Close()

	convs := []entity.Conversation{}
	for rows.Next() {
		var conv entity.Conversation
		var lead entity.Lead
		err := rows.Scan(
			&conv.ID, &conv.LeadID, &conv.Type, &conv.Content, &conv.Outcome, &conv.Timestamp, &conv.Reminder,
			&lead.ID, &lead.Name, &lead.Email, &lead.Company, &lead.LinkedIn, &lead.Notes,
			pq.Array(&lead.Tags), &lead.Stage, &lead.NextFollowUp, &lead.CreatedAt, &lead.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning conversation: %w", err)
		}
		if lead.Tags == nil {
			lead.Tags = []string{}
		}
		conv.Lead = &lead
		convs = append(convs, conv)
	}

	return convs, rows.Err()
}

func (r *ConversationRepository) Update(ctx context.Context, conv *entity.Conversation) error {
	query := `
		UPDATE conversations
		SET type = $1, content = $2, outcome = $3, reminder = $4
		WHERE id = $5
	`

	res, err := r.DB.ExecContext(ctx, query, conv.Type, conv.Content, conv.Outcome, conv.Reminder, conv.ID)
	if err != nil {
		return fmt.Errorf("updating conversation: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return entity.ErrConversationNotFound
	}

	return nil
}

func (r *ConversationRepository) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM conversations WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting conversation: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return entity.ErrConversationNotFound
	}

	return nil
}
