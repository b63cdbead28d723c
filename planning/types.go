/*
Package planning provides the merchandising planning domain: master data
records (stores, SKUs, calendar weeks), recorded sales facts, and the pure
derivation engine that turns them into the dense plan grid and the weekly
margin series.

KEY CONCEPTS IN THIS FILE (types.go):
  - Store / SKU:     editable master data, integer surrogate id + business key
  - CalendarWeek:    static reference data defining the week columns
  - SalesFact:       sparse (store, SKU, week) units record; absence means 0

DESIGN PRINCIPLES:
  1. Precision: price, cost, and every derived dollar/percent value use
     decimal.Decimal. No float64 in plan arithmetic.
  2. Derived values are never stored: sales dollars, GM dollars, and GM
     percent are computed on read from units x price/cost, so they cannot
     drift from an edited units value.
  3. Totality: derivation never errors. Unknown references are dropped,
     zero denominators resolve to zero.

SEE ALSO:
  - grid.go:      dense cross-join grid
  - columns.go:   column schema, formats, margin banding
  - aggregate.go: weekly totals for the chart
  - planner.go:   service tying the collections to the derivations
*/
package planning

import "github.com/shopspring/decimal"

// Collection names: the logical keys the repository persists under.
const (
	CollectionStores   = "stores"
	CollectionSKUs     = "skus"
	CollectionCalendar = "calendar"
	CollectionFacts    = "sales_facts"
)

// =============================================================================
// MASTER DATA RECORDS
// =============================================================================

// Store is a retail location. StoreID is the business key shown to users;
// ID is the collection-assigned surrogate.
type Store struct {
	ID      int    `json:"id"`
	StoreID string `json:"storeID" validate:"required"`
	Name    string `json:"name" validate:"required"`
	City    string `json:"city" validate:"required"`
	State   string `json:"state" validate:"required"`
}

func (s Store) RecordID() int { return s.ID }
func (s Store) WithRecordID(id int) Store {
	s.ID = id
	return s
}

// SKU is a sellable item. Price and Cost drive all derived plan columns.
type SKU struct {
	ID         int             `json:"id"`
	SKUCode    string          `json:"skuCode" validate:"required"`
	Label      string          `json:"label" validate:"required"`
	Class      string          `json:"class"`
	Department string          `json:"department"`
	Price      decimal.Decimal `json:"price"`
	Cost       decimal.Decimal `json:"cost"`
}

func (s SKU) RecordID() int { return s.ID }
func (s SKU) WithRecordID(id int) SKU {
	s.ID = id
	return s
}

// CalendarWeek defines one week column. Weeks are grouped into months by the
// Month key; ordering is calendar order (the seed data's insertion order).
type CalendarWeek struct {
	ID         int    `json:"id"`
	Week       string `json:"week" validate:"required"`
	WeekLabel  string `json:"weekLabel"`
	Month      string `json:"month"`
	MonthLabel string `json:"monthLabel"`
}

func (w CalendarWeek) RecordID() int { return w.ID }
func (w CalendarWeek) WithRecordID(id int) CalendarWeek {
	w.ID = id
	return w
}

// =============================================================================
// SALES FACT
// =============================================================================

// SalesFact records units sold for a (store, SKU, week) triple. The name,
// label, price, cost, and calendar label fields are denormalized for display
// and are refreshed from master data whenever a cell edit writes the fact.
// No fact for a triple means zero units.
type SalesFact struct {
	ID         int             `json:"id"`
	StoreID    string          `json:"storeID" validate:"required"`
	StoreName  string          `json:"storeName"`
	SKUCode    string          `json:"skuCode" validate:"required"`
	SKULabel   string          `json:"skuLabel"`
	Week       string          `json:"week" validate:"required"`
	WeekLabel  string          `json:"weekLabel"`
	Month      string          `json:"month"`
	MonthLabel string          `json:"monthLabel"`
	SalesUnits int             `json:"salesUnits" validate:"gte=0"`
	Price      decimal.Decimal `json:"price"`
	Cost       decimal.Decimal `json:"cost"`
}

func (f SalesFact) RecordID() int { return f.ID }
func (f SalesFact) WithRecordID(id int) SalesFact {
	f.ID = id
	return f
}

// MustDecimal parses s, returning zero on malformed input. Seed data only.
func MustDecimal(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}
