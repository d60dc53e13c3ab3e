package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "github.com/niggl1/appsindico/internal/domain/ticket/valueobjects"
)

func TestDetailsValidator(t *testing.T) {
	v, err := NewDetailsValidator()
	require.NoError(t, err)

	tests := []struct {
		name    string
		kind    vo.Kind
		details map[string]any
		wantErr string
	}{
		{
			name:    "empty inspection",
			kind:    vo.KindInspection,
			details: nil,
		},
		{
			name: "maintenance with known type",
			kind: vo.KindMaintenance,
			details: map[string]any{
				"maintenance_type": "preventive",
				"estimated_cost":   150.5,
			},
		},
		{
			name:    "maintenance with unknown type",
			kind:    vo.KindMaintenance,
			details: map[string]any{"maintenance_type": "urgent"},
			wantErr: "maintenance_type",
		},
		{
			name:    "negative cost",
			kind:    vo.KindServiceOrder,
			details: map[string]any{"estimated_cost": -1},
			wantErr: "estimated_cost",
		},
		{
			name:    "incident requires category",
			kind:    vo.KindIncident,
			details: map[string]any{"reported_by_unit": "101"},
			wantErr: "category",
		},
		{
			name: "checklist items",
			kind: vo.KindChecklist,
			details: map[string]any{
				"items": []any{
					map[string]any{"description": "Check pump", "done": true},
					map[string]any{"description": "Clean filter"},
				},
			},
		},
		{
			name: "checklist item without description",
			kind: vo.KindChecklist,
			details: map[string]any{
				"items": []any{map[string]any{"done": false}},
			},
			wantErr: "description",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.kind, tt.details)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestDetailsValidator_UnknownKind(t *testing.T) {
	v, err := NewDetailsValidator()
	require.NoError(t, err)
	assert.Error(t, v.Validate(vo.Kind("parking"), nil))
}
