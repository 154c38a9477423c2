package util

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarizeScores(t *testing.T) {
	tests := []struct {
		name   string
		scores []float64
		want   ScoreSummary
	}{
		{
			name: "empty",
			want: ScoreSummary{},
		},
		{
			name:   "single",
			scores: []float64{88.5},
			want:   ScoreSummary{Count: 1, Average: 88.5, Max: 88.5, Min: 88.5, PassCount: 1},
		},
		{
			name:   "rounded average",
			scores: []float64{30, 50, 90},
			want:   ScoreSummary{Count: 3, Average: 56.67, Max: 90, Min: 30, PassCount: 2, FailCount: 1},
		},
		{
			name:   "threshold counts as pass",
			scores: []float64{40, 39.99, 0},
			want:   ScoreSummary{Count: 3, Average: 26.66, Max: 40, Min: 0, PassCount: 1, FailCount: 2},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SummarizeScores(tt.scores))
		})
	}
}

var bucketLabels = []string{"0-20", "21-40", "41-60", "61-80", "81-100"}

func TestScoreDistribution(t *testing.T) {
	t.Run("all buckets present when empty", func(t *testing.T) {
		dist := ScoreDistribution(nil)
		require.Len(t, dist, len(bucketLabels))
		for _, label := range bucketLabels {
			require.Contains(t, dist, label)
			assert.Zero(t, dist[label], label)
		}
	})

	t.Run("inclusive bounds", func(t *testing.T) {
		dist := ScoreDistribution([]float64{0, 20, 21, 40, 41, 60, 61, 80, 81, 100})
		for _, label := range bucketLabels {
			assert.EqualValues(t, 2, dist[label], label)
		}
	})

	t.Run("gap values are not counted", func(t *testing.T) {
		dist := ScoreDistribution([]float64{20.5, 40.5, 30})
		assert.EqualValues(t, 1, dist["21-40"])
		var total int64
		for _, n := range dist {
			total += n
		}
		assert.EqualValues(t, 1, total)
	})

	t.Run("mixed", func(t *testing.T) {
		dist := ScoreDistribution([]float64{30, 50, 90})
		assert.EqualValues(t, 0, dist["0-20"])
		assert.EqualValues(t, 1, dist["21-40"])
		assert.EqualValues(t, 1, dist["41-60"])
		assert.EqualValues(t, 0, dist["61-80"])
		assert.EqualValues(t, 1, dist["81-100"])
	})
}

func TestClampScore(t *testing.T) {
	tests := []struct {
		name    string
		score   float64
		want    float64
		wantErr error
	}{
		{name: "in range", score: 72.5, want: 72.5},
		{name: "above max", score: 150, want: 100},
		{name: "below min", score: -5, want: 0},
		{name: "NaN", score: math.NaN(), wantErr: ErrInvalidScore},
		{name: "positive infinity", score: math.Inf(1), wantErr: ErrInvalidScore},
		{name: "negative infinity", score: math.Inf(-1), wantErr: ErrInvalidScore},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ClampScore(tt.score, 0, 100)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 56.67, Round2(170.0/3))
	assert.Equal(t, 0.0, Round2(0))
	assert.Equal(t, 12.35, Round2(12.345001))
}
