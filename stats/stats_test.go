package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zabeliqbal/langkawi-data-hub/types"
)

func TestLatestAndChange(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		mode   ChangeMode
		want   types.Derived
	}{
		{
			name:   "empty series",
			values: nil,
			mode:   Relative,
			want:   types.Derived{Latest: 0, PercentChange: 0},
		},
		{
			name:   "single point has no change",
			values: []float64{70},
			mode:   Relative,
			want:   types.Derived{Latest: 70, PercentChange: 0},
		},
		{
			name:   "relative change for counts",
			values: []float64{80, 88},
			mode:   Relative,
			want:   types.Derived{Latest: 88, PercentChange: 10},
		},
		{
			name:   "percentage-point change for rates",
			values: []float64{80, 88},
			mode:   PercentagePoint,
			want:   types.Derived{Latest: 88, PercentChange: 8},
		},
		{
			name:   "only the last two points matter",
			values: []float64{10, 200, 100, 150},
			mode:   Relative,
			want:   types.Derived{Latest: 150, PercentChange: 50},
		},
		{
			name:   "negative relative change",
			values: []float64{100, 75},
			mode:   Relative,
			want:   types.Derived{Latest: 75, PercentChange: -25},
		},
		{
			name:   "zero previous value yields zero change, not Inf",
			values: []float64{0, 42},
			mode:   Relative,
			want:   types.Derived{Latest: 42, PercentChange: 0},
		},
		{
			name:   "percentage points can go negative",
			values: []float64{68.5, 62},
			mode:   PercentagePoint,
			want:   types.Derived{Latest: 62, PercentChange: -6.5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LatestAndChange(tt.values, tt.mode)
			assert.InDelta(t, tt.want.Latest, got.Latest, 1e-9)
			assert.InDelta(t, tt.want.PercentChange, got.PercentChange, 1e-9)
		})
	}
}
