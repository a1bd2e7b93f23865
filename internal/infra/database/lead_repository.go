package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"
	"github.com/xavierca1/ligue-crm/internal/entity"
)

const leadColumns = `id, name, email, company, linked_in, notes, tags, stage, next_follow_up, created_at, updated_at`

type LeadRepository struct {
	DB *sql.DB
}

func NewLeadRepository(db *sql.DB) *LeadRepository {
	return &LeadRepository{DB: db}
}

func (r *LeadRepository) Create(ctx context.Context, lead *entity.Lead) error {
	query := `
		INSERT INTO leads (id, name, email, company, linked_in, notes, tags, stage, next_follow_up, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := r.DB.ExecContext(ctx, query,
		lead.ID,
		lead.Name,
		lead.Email,
		lead.Company,
		lead.LinkedIn,
		lead.Notes,
		pq.Array(lead.Tags),
		lead.Stage,
		lead.NextFollowUp,
		lead.CreatedAt,
		lead.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("inserting lead: %w", err)
	}

	return nil
}

func (r *LeadRepository) FindByID(ctx context.Context, id string) (*entity.Lead, error) {
	query := `SELECT ` + leadColumns + ` FROM leads WHERE id = $1`

	lead, err := scanLead(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entity.ErrLeadNotFound
		}
		return nil, fmt.Errorf("finding lead: %w", err)
	}

	if err := r.attachConversations(ctx, lead, 0); err != nil {
		return nil, err
	}

	return lead, nil
}

func (r *LeadRepository) List(ctx context.Context, filter entity.LeadFilter) ([]*entity.Lead, error) {
	query := `SELECT ` + leadColumns + ` FROM leads`

	var args []any
	if filter.Stage != nil {
		query += ` WHERE stage = $1`
		args = append(args, *filter.Stage)
	}

	switch filter.Order {
	case entity.OrderCreatedDesc:
		query += ` ORDER BY created_at DESC`
	default:
		query += ` ORDER BY updated_at DESC`
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing leads: %w", err)
	}
	defer rows.Close()

	leads, err := collectLeads(rows)
	if err != nil {
		return nil, err
	}

	for _, lead := range leads {
		if err := r.attachConversations(ctx, lead, 0); err != nil {
			return nil, err
		}
	}

	return leads, nil
}

func (r *LeadRepository) Update(ctx context.Context, lead *entity.Lead) error {
	query := `
		UPDATE leads
		SET name = $1, email = $2, company = $3, linked_in = $4, notes = $5,
		    tags = $6, stage = $7, next_follow_up = $8, updated_at = $9
		WHERE id = $10
	`

	res, err := r.DB.ExecContext(ctx, query,
		lead.Name,
		lead.Email,
		lead.Company,
		lead.LinkedIn,
		lead.Notes,
		pq.Array(lead.Tags),
		lead.Stage,
		lead.NextFollowUp,
		lead.UpdatedAt,
		lead.ID,
	)
	if err != nil {
		return fmt.Errorf("updating lead: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return entity.ErrLeadNotFound
	}

	return nil
}

func (r *LeadRepository) UpdateStage(ctx context.Context, id string, stage entity.Stage) (*entity.Lead, error) {
	query := `
		UPDATE leads
		SET stage = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING ` + leadColumns

	lead, err := scanLead(r.DB.QueryRowContext(ctx, query, stage, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entity.ErrLeadNotFound
		}
		return nil, fmt.Errorf("updating lead stage: %w", err)
	}

	if err := r.attachConversations(ctx, lead, 0); err != nil {
		return nil, err
	}

	return lead, nil
}

// DeleteCascade removes the lead and every conversation it owns in one
// transaction. A failure anywhere leaves both tables untouched.
func (r *LeadRepository) DeleteCascade(ctx context.Context, id string) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning delete transaction: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM conversations WHERE lead_id = $1`, id); err != nil {
		tx.Rollback()
		return fmt.Errorf("deleting conversations: %w", err)
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM leads WHERE id = $1`, id)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("deleting lead: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		tx.Rollback()
		return err
	}
	if affected == 0 {
		tx.Rollback()
		return entity.ErrLeadNotFound
	}

	return tx.Commit()
}

func (r *LeadRepository) Search(ctx context.Context, prefix string, limit, conversationLimit int) ([]*entity.Lead, error) {
	query := `
		SELECT ` + leadColumns + `
		FROM leads
		WHERE LOWER(name) LIKE $1 OR LOWER(email) LIKE $1
		ORDER BY name ASC, email ASC, created_at DESC
		LIMIT $2
	`

	rows, err := r.DB.QueryContext(ctx, query, likePrefix(prefix), limit)
	if err != nil {
		return nil, fmt.Errorf("searching leads: %w", err)
	}
	defer rows.Close()

	leads, err := collectLeads(rows)
	if err != nil {
		return nil, err
	}

	for _, lead := range leads {
		if err := r.attachConversations(ctx, lead, conversationLimit); err != nil {
			return nil, err
		}
	}

	return leads, nil
}

// attachConversations loads the lead's conversations newest first. limit <= 0
// means all of them.
func (r *LeadRepository) attachConversations(ctx context.Context, lead *entity.Lead, limit int) error {
	query := `
		SELECT id, lead_id, type, content, outcome, created_at, reminder
		FROM conversations
		WHERE lead_id = $1
		ORDER BY created_at DESC
	`
	args := []any{lead.ID}
	if limit > 0 {
		query += ` LIMIT $2`
		args = append(args, limit)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("loading conversations: %w", err)
	}
	defer rows.Close()

	lead.Conversations = []entity.Conversation{}
	for rows.Next() {
		var conv entity.Conversation
		if err := rows.Scan(&conv.ID, &conv.LeadID, &conv.Type, &conv.Content, &conv.Outcome, &conv.Timestamp, &conv.Reminder); err != nil {
			return fmt.Errorf("scanning conversation: %w", err)
		}
		lead.Conversations = append(lead.Conversations, conv)
	}

	return rows.Err()
}

// likePrefix builds the case-insensitive starts-with pattern, escaping LIKE
// metacharacters in the user input.
func likePrefix(prefix string) string {
	escaped := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(strings.ToLower(prefix))
	return escaped + "%"
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanLead(row rowScanner) (*entity.Lead, error) {
	var lead entity.Lead
	err := row.Scan(
		&lead.ID,
		&lead.Name,
		&lead.Email,
		&lead.Company,
		&lead.LinkedIn,
		&lead.Notes,
		pq.Array(&lead.Tags),
		&lead.Stage,
		&lead.NextFollowUp,
		&lead.CreatedAt,
		&lead.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if lead.Tags == nil {
		lead.Tags = []string{}
	}
	return &lead, nil
}

func collectLeads(rows *sql.Rows) ([]*entity.Lead, error) {
	leads := []*entity.Lead{}
	for rows.Next() {
		lead, err := scanLead(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning lead: %w", err)
		}
		leads = append(leads, lead)
	}
	return leads, rows.Err()
}
