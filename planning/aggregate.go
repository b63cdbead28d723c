/*
aggregate.go - Weekly totals for the margin chart

PURPOSE:
  Derives the per-week sales / GM series for a single selected store, the
  data behind the bar+line margin chart. GM percent is computed from the
  weekly SUMS, not averaged across SKUs.
*/
package planning

import (
	"sort"

	"github.com/shopspring/decimal"
)

// PercentAxisMax is the fixed upper bound of the chart's percent axis.
// The dollar axis auto-scales; the percent axis does not.
const PercentAxisMax = 70

// WeekTotal is one point of the chart series.
type WeekTotal struct {
	Week         string          `json:"week"`
	SalesDollars decimal.Decimal `json:"salesDollars"`
	GMDollars    decimal.Decimal `json:"gmDollars"`
	GMPercent    decimal.Decimal `json:"gmPercent"`
}

// WeeklyTotals sums sales and GM dollars per calendar week across all SKUs
// for the given store, then derives each week's GM percent from the sums.
// Output is ordered by week key ascending (keys are zero-padded, so lexical
// order is calendar order). Facts for weeks missing from the calendar are
// dropped; a week with no sales yields zeros.
func WeeklyTotals(storeID string, weeks []CalendarWeek, facts []SalesFact) []WeekTotal {
	totals := make(map[string]*WeekTotal, len(weeks))
	for _, week := range weeks {
		totals[week.Week] = &WeekTotal{
			Week:         week.Week,
			SalesDollars: decimal.Zero,
			GMDollars:    decimal.Zero,
			GMPercent:    decimal.Zero,
		}
	}

	for _, fact := range facts {
		if fact.StoreID != storeID {
			continue
		}
		total, ok := totals[fact.Week]
		if !ok {
			continue
		}
		units := decimal.NewFromInt(int64(fact.SalesUnits))
		sales := fact.Price.Mul(units)
		total.SalesDollars = total.SalesDollars.Add(sales)
		total.GMDollars = total.GMDollars.Add(sales.Sub(fact.Cost.Mul(units)))
	}

	series := make([]WeekTotal, 0, len(totals))
	for _, total := range totals {
		if total.SalesDollars.IsPositive() {
			total.GMPercent = total.GMDollars.Div(total.SalesDollars).Mul(hundred)
		}
		series = append(series, *total)
	}
	sort.Slice(series, func(i, j int) bool { return series[i].Week < series[j].Week })
	return series
}
