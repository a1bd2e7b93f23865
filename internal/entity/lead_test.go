package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/xavierca1/ligue-crm/internal/entity"
)

func TestNewLeadDefaults(t *testing.T) {
	lead, err := entity.NewLead("John Smith", "john@techcorp.com", "TechCorp", "")

	assert.NoError(t, err)
	assert.NotEmpty(t, lead.ID)
	assert.Equal(t, entity.StageNew, lead.Stage)
	assert.NotNil(t, lead.Tags)
	assert.Empty(t, lead.Tags)
	assert.False(t, lead.CreatedAt.IsZero())
	assert.Equal(t, lead.CreatedAt, lead.UpdatedAt)
}

func TestNewLeadRequiredFields(t *testing.T) {
	tests := []struct {
		name    string
		lead    [3]string
		wantErr string
	}{
		{"missing name", [3]string{"", "a@b.com", "C"}, "name is required"},
		{"missing email", [3]string{"A", "", "C"}, "email is required"},
		{"missing company", [3]string{"A", "a@b.com", ""}, "company is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := entity.NewLead(tt.lead[0], tt.lead[1], tt.lead[2], entity.StageNew)
			assert.EqualError(t, err, tt.wantErr)
		})
	}
}

func TestNewLeadRejectsUnknownStage(t *testing.T) {
	_, err := entity.NewLead("A", "a@b.com", "C", entity.Stage("ARCHIVED"))
	assert.Error(t, err)
}

func TestStageValid(t *testing.T) {
	for _, s := range entity.PipelineStages {
		assert.True(t, s.Valid(), string(s))
	}
	assert.False(t, entity.Stage("").Valid())
	assert.False(t, entity.Stage("new").Valid())
	assert.False(t, entity.Stage("WON").Valid())
}

func TestPipelineStagesDisplayOrder(t *testing.T) {
	assert.Equal(t, []entity.Stage{
		entity.StageNew,
		entity.StageContacted,
		entity.StageConverted,
		entity.StageLost,
	}, entity.PipelineStages)
}
