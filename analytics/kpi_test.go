package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummarizeKPIs(t *testing.T) {
	rows := []EventRecord{
		{
			ColRegistrationCount: 100,
			ColSubmissionCount:   "20",
			ColPageVisits:        float64(1500),
		},
		{
			ColRegistrationCount: "50",
			ColSubmissionCount:   5,
			ColPageVisits:        "oops",
		},
	}

	t.Run("Happy path - sums fixed KPI columns", func(t *testing.T) {
		kpis := SummarizeKPIs(rows, KPIColumns)
		assert.Equal(t, 150, kpis[ColRegistrationCount])
		assert.Equal(t, 25, kpis[ColSubmissionCount])
		assert.Equal(t, 1500, kpis[ColPageVisits])
	})

	t.Run("Happy path - missing column reports zero, not an error", func(t *testing.T) {
		kpis := SummarizeKPIs(rows, KPIColumns)
		assert.Equal(t, 0, kpis[ColTeamsCount])
	})

	t.Run("Happy path - empty row set", func(t *testing.T) {
		kpis := SummarizeKPIs(nil, KPIColumns)
		for _, column := range KPIColumns {
			assert.Equal(t, 0, kpis[column])
		}
	})
}
