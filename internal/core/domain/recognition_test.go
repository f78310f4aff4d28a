package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/harborops/charter_accounting_app/internal/core/domain"
)

func TestComputeInitialRecognitionStatus(t *testing.T) {
	today := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	past := today.AddDate(0, -1, 0)
	future := today.AddDate(0, 1, 0)

	tests := []struct {
		name          string
		charterDateTo *time.Time
		want          domain.RecognitionStatus
	}{
		{"missing window needs review", nil, domain.RecognitionNeedsReview},
		{"past window recognizes immediately", &past, domain.Recognized},
		{"window ending today recognizes", &today, domain.Recognized},
		{"future window defers", &future, domain.RecognitionPending},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.ComputeInitialRecognitionStatus(tt.charterDateTo, today))
		})
	}
}

func TestRecognitionStatusIsTerminal(t *testing.T) {
	assert.False(t, domain.RecognitionPending.IsTerminal())
	assert.False(t, domain.RecognitionNeedsReview.IsTerminal())
	assert.True(t, domain.Recognized.IsTerminal())
	assert.True(t, domain.ManualRecognized.IsTerminal())
}
