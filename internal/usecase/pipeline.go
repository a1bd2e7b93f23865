package usecase

import (
	"context"
	"sync"

	"github.com/xavierca1/ligue-crm/internal/entity"
	"go.uber.org/zap"
)

// LoadPipelineUseCase groups all leads into the four board columns in fixed
// display order.
type LoadPipelineUseCase struct {
	Repo entity.LeadRepositoryInterface
	Log  *zap.SugaredLogger
}

func NewLoadPipelineUseCase(repo entity.LeadRepositoryInterface, log *zap.SugaredLogger) *LoadPipelineUseCase {
	return &LoadPipelineUseCase{Repo: repo, Log: log}
}

func (uc *LoadPipelineUseCase) Execute(ctx context.Context) ([]PipelineColumn, error) {
	leads, err := uc.Repo.List(ctx, entity.LeadFilter{Order: entity.OrderUpdatedDesc})
	if err != nil {
		return nil, err
	}
	return uc.bucket(leads), nil
}

func (uc *LoadPipelineUseCase) bucket(leads []*entity.Lead) []PipelineColumn {
	byStage := make(map[entity.Stage][]*entity.Lead, len(entity.PipelineStages))

	for _, lead := range leads {
		if !lead.Stage.Valid() {
			// A lead with an unknown stage value has no column. The write
			// paths validate the stage, so this only happens for rows written
			// outside this service.
			if uc.Log != nil {
				uc.Log.Warnw("lead excluded from pipeline", "leadId", lead.ID, "stage", lead.Stage)
			}
			continue
		}
		byStage[lead.Stage] = append(byStage[lead.Stage], lead)
	}

	columns := make([]PipelineColumn, 0, len(entity.PipelineStages))
	for _, stage := range entity.PipelineStages {
		bucket := byStage[stage]
		if bucket == nil {
			bucket = []*entity.Lead{}
		}
		columns = append(columns, PipelineColumn{Stage: stage, Leads: bucket})
	}

	return columns
}

// boardLead is one lead in the local board projection. prevStage holds the
// value to restore if the persistence round trip fails.
type boardLead struct {
	lead      *entity.Lead
	pending   bool
	prevStage entity.Stage
}

// Board is the client-side view of the pipeline during drag interactions. A
// move relabels the lead immediately and marks it pending; the mark is
// cleared on confirmation and rolled back on failure. Pending state lives
// only here, never in the store.
type Board struct {
	mu    sync.Mutex
	leads map[string]*boardLead
}

func NewBoard(leads []*entity.Lead) *Board {
	b := &Board{leads: make(map[string]*boardLead, len(leads))}
	for _, lead := range leads {
		b.leads[lead.ID] = &boardLead{lead: lead}
	}
	return b
}

// Move optimistically relabels the lead. Returns false when the lead is
// unknown or already pending.
func (b *Board) Move(leadID string, to entity.Stage) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	bl, ok := b.leads[leadID]
	if !ok || bl.pending {
		return false
	}

	bl.prevStage = bl.lead.Stage
	bl.lead.Stage = to
	bl.pending = true
	return true
}

// Confirm clears the pending mark after the store accepted the move.
func (b *Board) Confirm(leadID string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if bl, ok := b.leads[leadID]; ok {
		bl.pending = false
	}
}

// Revert restores the stage the lead had before the optimistic move.
func (b *Board) Revert(leadID string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	bl, ok := b.leads[leadID]
	if !ok || !bl.pending {
		return
	}
	bl.lead.Stage = bl.prevStage
	bl.pending = false
}

// Pending reports whether the lead has an unconfirmed move.
func (b *Board) Pending(leadID string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	bl, ok := b.leads[leadID]
	return ok && bl.pending
}

// Stage returns the lead's current (possibly optimistic) stage.
func (b *Board) Stage(leadID string) (entity.Stage, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	bl, ok := b.leads[leadID]
	if !ok {
		return "", false
	}
	return bl.lead.Stage, true
}

// Reconcile replaces the projection with the store's truth, dropping any
// pending marks.
func (b *Board) Reconcile(leads []*entity.Lead) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.leads = make(map[string]*boardLead, len(leads))
	for _, lead := range leads {
		b.leads[lead.ID] = &boardLead{lead: lead}
	}
}

// MoveLeadUseCase runs the optimistic drag flow: relabel the board first,
// persist, then revert on failure or reconcile on success.
type MoveLeadUseCase struct {
	Repo entity.LeadRepositoryInterface
	Move *MoveStageUseCase
}

func NewMoveLeadUseCase(repo entity.LeadRepositoryInterface, move *MoveStageUseCase) *MoveLeadUseCase {
	return &MoveLeadUseCase{Repo: repo, Move: move}
}

func (uc *MoveLeadUseCase) Execute(ctx context.Context, board *Board, leadID string, from, to entity.Stage) error {
	if from == to {
		return nil
	}
	if !to.Valid() {
		return &DomainError{Code: "VALIDATION_ERROR", Message: "stage: must be NEW, CONTACTED, CONVERTED or LOST"}
	}

	board.Move(leadID, to)

	if _, err := uc.Move.Execute(ctx, leadID, to); err != nil {
		board.Revert(leadID)
		return err
	}

	leads, err := uc.Repo.List(ctx, entity.LeadFilter{Order: entity.OrderUpdatedDesc})
	if err != nil {
		// The move itself is persisted; the projection keeps the optimistic
		// state until the next successful load.
		board.Confirm(leadID)
		return nil
	}
	board.Reconcile(leads)

	return nil
}
