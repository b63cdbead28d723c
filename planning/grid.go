/*
grid.go - Dense plan grid derivation

PURPOSE:
  Builds the row-per-(store, SKU) grid the planning view renders. The grid
  is a pure function of the four source collections and is recomputed from
  them on every read; rows are never persisted.

ALGORITHM:
  1. Cross join stores x SKUs, one row per pair, keyed "storeID-skuCode",
     in store-order-major sequence. Every calendar week's units start at 0.
  2. Overlay sales facts: each fact overwrites its week's units on the
     matching row. Facts whose (store, SKU) pair no longer exists in master
     data have no row to land on and are dropped without error.

  Dollar and margin columns are NOT materialized here. They are methods on
  PlanRow, computed from units x price/cost at read time, so an edited cell
  can never disagree with its derived columns.
*/
package planning

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// RowKey is the composite grid row identity for a (store, SKU) pair.
func RowKey(storeID, skuCode string) string {
	return storeID + "-" + skuCode
}

// PlanRow is one dense-grid row: identity fields plus per-week sales units.
type PlanRow struct {
	Key       string          `json:"id"`
	StoreID   string          `json:"storeID"`
	StoreName string          `json:"storeName"`
	SKUCode   string          `json:"skuCode"`
	SKULabel  string          `json:"skuLabel"`
	Price     decimal.Decimal `json:"price"`
	Cost      decimal.Decimal `json:"cost"`
	Units     map[string]int  `json:"salesUnits"`
}

// SalesUnits returns the units recorded for week; absent weeks are zero.
func (r PlanRow) SalesUnits(week string) int {
	return r.Units[week]
}

// SalesDollars returns units x price for week.
func (r PlanRow) SalesDollars(week string) decimal.Decimal {
	return r.Price.Mul(decimal.NewFromInt(int64(r.Units[week])))
}

// GMDollars returns sales dollars minus units x cost for week.
func (r PlanRow) GMDollars(week string) decimal.Decimal {
	units := decimal.NewFromInt(int64(r.Units[week]))
	return r.Price.Mul(units).Sub(r.Cost.Mul(units))
}

// GMPercent returns GM dollars as a percentage of sales dollars for week.
// Zero sales resolves to zero percent, never a division error.
func (r PlanRow) GMPercent(week string) decimal.Decimal {
	sales := r.SalesDollars(week)
	if !sales.IsPositive() {
		return decimal.Zero
	}
	return r.GMDollars(week).Div(sales).Mul(hundred)
}

// BuildGrid derives the dense grid from the current source collections.
// Deterministic: identical inputs always yield identical output.
func BuildGrid(stores []Store, skus []SKU, weeks []CalendarWeek, facts []SalesFact) []PlanRow {
	rows := make([]PlanRow, 0, len(stores)*len(skus))
	index := make(map[string]int, len(stores)*len(skus))

	for _, store := range stores {
		for _, sku := range skus {
			key := RowKey(store.StoreID, sku.SKUCode)
			units := make(map[string]int, len(weeks))
			for _, week := range weeks {
				units[week.Week] = 0
			}
			index[key] = len(rows)
			rows = append(rows, PlanRow{
				Key:       key,
				StoreID:   store.StoreID,
				StoreName: store.Name,
				SKUCode:   sku.SKUCode,
				SKULabel:  sku.Label,
				Price:     sku.Price,
				Cost:      sku.Cost,
				Units:     units,
			})
		}
	}

	for _, fact := range facts {
		i, ok := index[RowKey(fact.StoreID, fact.SKUCode)]
		if !ok {
			continue // orphaned fact: no surviving (store, SKU) pair
		}
		rows[i].Units[fact.Week] = fact.SalesUnits
	}

	return rows
}
