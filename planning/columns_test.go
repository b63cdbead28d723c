package planning_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/merchkit/plan-engine/planning"
)

// =============================================================================
// COLUMN SCHEMA
// =============================================================================

func TestColumns_GroupsWeeksByMonthInCalendarOrder(t *testing.T) {
	groups := planning.Columns(planning.SeedCalendar())

	require.Len(t, groups, 3)
	assert.Equal(t, "Feb", groups[0].Label)
	assert.Equal(t, "Mar", groups[1].Label)
	assert.Equal(t, "Apr", groups[2].Label)
	for _, group := range groups {
		assert.Len(t, group.Weeks, 4)
	}
}

func TestColumns_FourLeafColumnsPerWeek(t *testing.T) {
	groups := planning.Columns(planning.SeedCalendar())

	week := groups[0].Weeks[0]
	require.Len(t, week.Columns, 4)

	assert.Equal(t, "W01_SalesUnits", week.Columns[0].Field)
	assert.Equal(t, "W01_SalesDollars", week.Columns[1].Field)
	assert.Equal(t, "W01_GMDollars", week.Columns[2].Field)
	assert.Equal(t, "W01_GMPercent", week.Columns[3].Field)

	// Only Sales Units is editable; the rest are derived.
	assert.True(t, week.Columns[0].Editable)
	assert.False(t, week.Columns[1].Editable)
	assert.False(t, week.Columns[2].Editable)
	assert.False(t, week.Columns[3].Editable)

	assert.Equal(t, planning.FormatUnits, week.Columns[0].Format)
	assert.Equal(t, planning.FormatCurrency, week.Columns[1].Format)
	assert.Equal(t, planning.FormatCurrency, week.Columns[2].Format)
	assert.Equal(t, planning.FormatPercent, week.Columns[3].Format)
}

func TestColumns_MissingMonthLabel_FallsBackToFeb(t *testing.T) {
	weeks := []planning.CalendarWeek{
		{ID: 1, Week: "W01", WeekLabel: "Week 01", Month: "M01"},
	}
	groups := planning.Columns(weeks)

	require.Len(t, groups, 1)
	assert.Equal(t, "Feb", groups[0].Label)
}

func TestColumns_MissingWeekLabel_FallsBackToWeekKey(t *testing.T) {
	weeks := []planning.CalendarWeek{
		{ID: 1, Week: "W07", Month: "M02", MonthLabel: "Mar"},
	}
	groups := planning.Columns(weeks)

	assert.Equal(t, "Week W07", groups[0].Weeks[0].Label)
}

func TestColumns_EmptyCalendar_NoGroups(t *testing.T) {
	assert.Empty(t, planning.Columns(nil))
}

// =============================================================================
// FORMATS
// =============================================================================

func TestFormatValue(t *testing.T) {
	tests := []struct {
		name  string
		kind  planning.FormatKind
		value string
		want  string
	}{
		{"currency", planning.FormatCurrency, "229.98", "$ 229.98"},
		{"currency rounds", planning.FormatCurrency, "229.985", "$ 229.99"},
		{"currency zero", planning.FormatCurrency, "0", "$ 0.00"},
		{"percent", planning.FormatPercent, "84.1029", "84.10 %"},
		{"percent zero", planning.FormatPercent, "0", "0.00 %"},
		{"units render with two decimals", planning.FormatUnits, "7", "7.00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := planning.FormatValue(tt.kind, planning.MustDecimal(tt.value))
			assert.Equal(t, tt.want, got)
		})
	}
}

// =============================================================================
// GM PERCENT BANDING - inclusive lower bounds 40 / 30 / 8
// =============================================================================

func TestBand(t *testing.T) {
	tests := []struct {
		value string
		want  planning.Tier
	}{
		{"84.10", planning.TierHigh},
		{"40", planning.TierHigh},
		{"39.99", planning.TierMid},
		{"30", planning.TierMid},
		{"29.99", planning.TierLow},
		{"8", planning.TierLow},
		{"7.99", planning.TierCritical},
		{"0", planning.TierCritical},
		{"-5", planning.TierCritical},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			assert.Equal(t, tt.want, planning.Band(planning.MustDecimal(tt.value)))
		})
	}
}
