/*
columns.go - Plan grid column schema, cell formats, margin banding

PURPOSE:
  The column contract consumed by the rendering layer: a two-level header
  (month group -> week group -> four leaf columns), per-field formatting
  rules, and the GM percent banding policy. The engine owns the schema so
  every consumer (grid widget, workbook export) agrees on it.

LEAF COLUMNS PER WEEK:
  Sales Units   editable, plain number rendered with two decimals
  Sales Dollars derived, "$ X.XX"
  GM Dollars    derived, "$ X.XX"
  GM Percent    derived, "X.XX %", banded into four tiers
*/
package planning

import "github.com/shopspring/decimal"

// =============================================================================
// FORMATS
// =============================================================================

// FormatKind names a cell formatting rule.
type FormatKind string

const (
	FormatUnits    FormatKind = "units"    // X.XX
	FormatCurrency FormatKind = "currency" // $ X.XX
	FormatPercent  FormatKind = "percent"  // X.XX %
)

// FormatValue renders v under the given rule. Units render with two
// decimals even though they are integers; consumers rely on that.
func FormatValue(kind FormatKind, v decimal.Decimal) string {
	switch kind {
	case FormatCurrency:
		return "$ " + v.StringFixed(2)
	case FormatPercent:
		return v.StringFixed(2) + " %"
	default:
		return v.StringFixed(2)
	}
}

// =============================================================================
// COLUMN SCHEMA
// =============================================================================

// Column is one leaf column of the plan grid.
type Column struct {
	Field    string     `json:"field"`  // e.g. "W01_SalesUnits"
	Header   string     `json:"header"` // e.g. "Sales Units"
	Week     string     `json:"week"`
	Editable bool       `json:"editable"`
	Format   FormatKind `json:"format"`
}

// WeekGroup is the nested header grouping one week's four leaf columns.
type WeekGroup struct {
	Week    string   `json:"week"`
	Label   string   `json:"label"`
	Columns []Column `json:"columns"`
}

// MonthGroup is the top-level header grouping a month's weeks.
type MonthGroup struct {
	Month string      `json:"month"`
	Label string      `json:"label"`
	Weeks []WeekGroup `json:"weeks"`
}

// Columns derives the grouped column schema from the calendar. Months keep
// the calendar's order of first occurrence; a missing month label falls
// back to "Feb".
func Columns(weeks []CalendarWeek) []MonthGroup {
	var groups []MonthGroup
	byMonth := make(map[string]int)

	for _, week := range weeks {
		i, ok := byMonth[week.Month]
		if !ok {
			label := week.MonthLabel
			if label == "" {
				label = "Feb"
			}
			i = len(groups)
			byMonth[week.Month] = i
			groups = append(groups, MonthGroup{Month: week.Month, Label: label})
		}

		weekLabel := week.WeekLabel
		if weekLabel == "" {
			weekLabel = "Week " + week.Week
		}
		groups[i].Weeks = append(groups[i].Weeks, WeekGroup{
			Week:  week.Week,
			Label: weekLabel,
			Columns: []Column{
				{Field: week.Week + "_SalesUnits", Header: "Sales Units", Week: week.Week, Editable: true, Format: FormatUnits},
				{Field: week.Week + "_SalesDollars", Header: "Sales Dollars", Week: week.Week, Format: FormatCurrency},
				{Field: week.Week + "_GMDollars", Header: "GM Dollars", Week: week.Week, Format: FormatCurrency},
				{Field: week.Week + "_GMPercent", Header: "GM Percent", Week: week.Week, Format: FormatPercent},
			},
		})
	}

	return groups
}

// =============================================================================
// GM PERCENT BANDING
// =============================================================================

// Tier is a discrete presentation band for a GM percent cell.
type Tier string

const (
	TierHigh     Tier = "high"     // >= 40
	TierMid      Tier = "mid"      // >= 30
	TierLow      Tier = "low"      // >= 8
	TierCritical Tier = "critical" // below 8
)

var (
	bandHigh = decimal.NewFromInt(40)
	bandMid  = decimal.NewFromInt(30)
	bandLow  = decimal.NewFromInt(8)
)

// Band classifies a GM percent value. Thresholds are inclusive lower bounds.
func Band(gmPercent decimal.Decimal) Tier {
	switch {
	case gmPercent.GreaterThanOrEqual(bandHigh):
		return TierHigh
	case gmPercent.GreaterThanOrEqual(bandMid):
		return TierMid
	case gmPercent.GreaterThanOrEqual(bandLow):
		return TierLow
	default:
		return TierCritical
	}
}
