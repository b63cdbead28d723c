package planning_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/merchkit/plan-engine/planning"
)

// =============================================================================
// TEST SETUP
// =============================================================================

func testStores() []planning.Store {
	return []planning.Store{
		{ID: 1, StoreID: "ST035", Name: "San Francisco Bay Trends", City: "San Francisco", State: "CA"},
		{ID: 2, StoreID: "ST046", Name: "Phoenix Sunwear", City: "Phoenix", State: "AZ"},
	}
}

func testSKUs() []planning.SKU {
	return []planning.SKU{
		{ID: 1, SKUCode: "SK00158", Label: "Crew Neck Merino Wool Sweater", Price: planning.MustDecimal("114.99"), Cost: planning.MustDecimal("18.28")},
		{ID: 2, SKUCode: "SK00522", Label: "Waterproof Hiking Boots", Price: planning.MustDecimal("89.99"), Cost: planning.MustDecimal("40.50")},
	}
}

func testWeeks() []planning.CalendarWeek {
	return []planning.CalendarWeek{
		{ID: 1, Week: "W01", WeekLabel: "Week 01", Month: "M01", MonthLabel: "Feb"},
		{ID: 2, Week: "W02", WeekLabel: "Week 02", Month: "M01", MonthLabel: "Feb"},
	}
}

func fact(storeID, skuCode, week string, units int, price, cost string) planning.SalesFact {
	return planning.SalesFact{
		StoreID:    storeID,
		SKUCode:    skuCode,
		Week:       week,
		SalesUnits: units,
		Price:      planning.MustDecimal(price),
		Cost:       planning.MustDecimal(cost),
	}
}

func rowByKey(t *testing.T, rows []planning.PlanRow, key string) planning.PlanRow {
	t.Helper()
	for _, row := range rows {
		if row.Key == key {
			return row
		}
	}
	t.Fatalf("no row with key %s", key)
	return planning.PlanRow{}
}

// =============================================================================
// DENSE-GRID COMPLETENESS
// =============================================================================

func TestBuildGrid_OneRowPerStoreSKUPair(t *testing.T) {
	// |rows| == |stores| x |skus| regardless of how many facts exist.

	grid := planning.BuildGrid(testStores(), testSKUs(), testWeeks(), nil)
	assert.Len(t, grid, 4)

	grid = planning.BuildGrid(testStores(), testSKUs(), testWeeks(), []planning.SalesFact{
		fact("ST035", "SK00158", "W01", 3, "114.99", "18.28"),
	})
	assert.Len(t, grid, 4)
}

func TestBuildGrid_EmptyMasterData_EmptyGrid(t *testing.T) {
	assert.Empty(t, planning.BuildGrid(nil, testSKUs(), testWeeks(), nil))
	assert.Empty(t, planning.BuildGrid(testStores(), nil, testWeeks(), nil))
}

func TestBuildGrid_AllWeeksInitializedToZero(t *testing.T) {
	grid := planning.BuildGrid(testStores(), testSKUs(), testWeeks(), nil)

	for _, row := range grid {
		for _, week := range testWeeks() {
			assert.Zero(t, row.SalesUnits(week.Week))
		}
	}
}

func TestBuildGrid_FactOverlaysItsWeek(t *testing.T) {
	grid := planning.BuildGrid(testStores(), testSKUs(), testWeeks(), []planning.SalesFact{
		fact("ST035", "SK00158", "W02", 7, "114.99", "18.28"),
	})

	row := rowByKey(t, grid, "ST035-SK00158")
	assert.Equal(t, 0, row.SalesUnits("W01"))
	assert.Equal(t, 7, row.SalesUnits("W02"))
}

func TestBuildGrid_OrphanedFact_SilentlyDropped(t *testing.T) {
	// A fact whose (store, SKU) pair no longer exists has no row to land on.

	grid := planning.BuildGrid(testStores(), testSKUs(), testWeeks(), []planning.SalesFact{
		fact("ST999", "SK00158", "W01", 5, "114.99", "18.28"),
		fact("ST035", "SK99999", "W01", 5, "114.99", "18.28"),
	})

	require.Len(t, grid, 4)
	for _, row := range grid {
		for _, week := range testWeeks() {
			assert.Zero(t, row.SalesUnits(week.Week))
		}
	}
}

func TestBuildGrid_RowOrderIsStoreMajor(t *testing.T) {
	grid := planning.BuildGrid(testStores(), testSKUs(), testWeeks(), nil)

	keys := make([]string, len(grid))
	for i, row := range grid {
		keys[i] = row.Key
	}
	assert.Equal(t, []string{
		"ST035-SK00158", "ST035-SK00522",
		"ST046-SK00158", "ST046-SK00522",
	}, keys)
}

func TestBuildGrid_Idempotent(t *testing.T) {
	facts := []planning.SalesFact{
		fact("ST035", "SK00158", "W01", 2, "114.99", "18.28"),
		fact("ST046", "SK00522", "W02", 9, "89.99", "40.50"),
	}

	first := planning.BuildGrid(testStores(), testSKUs(), testWeeks(), facts)
	second := planning.BuildGrid(testStores(), testSKUs(), testWeeks(), facts)
	assert.Equal(t, first, second)
}

// =============================================================================
// DERIVED FIELDS - computed on read, never stored
// =============================================================================

func TestPlanRow_DerivedFieldConsistency(t *testing.T) {
	grid := planning.BuildGrid(testStores(), testSKUs(), testWeeks(), []planning.SalesFact{
		fact("ST046", "SK00522", "W01", 4, "89.99", "40.50"),
	})
	row := rowByKey(t, grid, "ST046-SK00522")

	sales := row.SalesDollars("W01")
	gm := row.GMDollars("W01")

	// salesDollars == units x price, gmDollars == salesDollars - units x cost
	assert.Equal(t, "359.96", sales.StringFixed(2))
	assert.Equal(t, "197.96", gm.StringFixed(2))

	units := planning.MustDecimal("4")
	assert.True(t, sales.Sub(units.Mul(row.Cost)).Equal(gm))
}

func TestPlanRow_ZeroUnits_ZeroEverything(t *testing.T) {
	grid := planning.BuildGrid(testStores(), testSKUs(), testWeeks(), nil)
	row := rowByKey(t, grid, "ST035-SK00158")

	assert.True(t, row.SalesDollars("W01").IsZero())
	assert.True(t, row.GMDollars("W01").IsZero())
	assert.True(t, row.GMPercent("W01").IsZero(), "zero denominator resolves to 0, never an error")
}

func TestPlanRow_ExampleScenario(t *testing.T) {
	// GIVEN: Store ST035, SKU SK00158 (price 114.99, cost 18.28), 2 units in W01
	// THEN: salesDollars=229.98, gmDollars=193.42, gmPercent~=84.10, highest band

	grid := planning.BuildGrid(testStores(), testSKUs(), testWeeks(), []planning.SalesFact{
		fact("ST035", "SK00158", "W01", 2, "114.99", "18.28"),
	})
	row := rowByKey(t, grid, "ST035-SK00158")

	assert.Equal(t, "229.98", row.SalesDollars("W01").StringFixed(2))
	assert.Equal(t, "193.42", row.GMDollars("W01").StringFixed(2))
	assert.Equal(t, "84.10", row.GMPercent("W01").StringFixed(2))
	assert.Equal(t, planning.TierHigh, planning.Band(row.GMPercent("W01")))
}

func TestPlanRow_UnknownWeek_ReadsAsZero(t *testing.T) {
	grid := planning.BuildGrid(testStores(), testSKUs(), testWeeks(), nil)
	row := rowByKey(t, grid, "ST035-SK00158")

	assert.Zero(t, row.SalesUnits("W99"))
	assert.True(t, row.GMPercent("W99").IsZero())
}
