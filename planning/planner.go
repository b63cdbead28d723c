/*
planner.go - Planning service tying collections to derivations

PURPOSE:
  Owns the four repository-backed collections (stores, SKUs, calendar,
  sales facts) and exposes the operations the presentation layer consumes:
  the dense grid, the column schema, the chart series, and the sales-units
  cell edit path.

EDIT PATH:
  A grid cell commit becomes an update-or-insert on the facts collection,
  keyed (storeID, skuCode, week). Denormalized display fields are refreshed
  from current master data on every write. Derived columns are never
  written anywhere; the next grid read recomputes them.

SEE ALSO:
  - collection: generic CRUD/reorder engine underneath
  - api: HTTP surface over this service
*/
package planning

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/merchkit/plan-engine/collection"
)

// =============================================================================
// ERRORS
// =============================================================================

var (
	// ErrNegativeUnits is returned when a cell edit carries units < 0.
	ErrNegativeUnits = errors.New("sales units must be a non-negative integer")

	// ErrUnknownKey is returned when a cell edit references a store, SKU,
	// or week that no longer exists in master data.
	ErrUnknownKey = errors.New("unknown plan cell key")
)

// UnknownKeyError reports which part of a cell key failed to resolve.
type UnknownKeyError struct {
	Kind string // "store", "sku", or "week"
	Key  string
}

func (e *UnknownKeyError) Error() string {
	return fmt.Sprintf("unknown %s %q", e.Kind, e.Key)
}

func (e *UnknownKeyError) Unwrap() error { return ErrUnknownKey }

// =============================================================================
// PLANNER
// =============================================================================

// Planner is the merchandising planning service.
type Planner struct {
	stores   *collection.Collection[Store]
	skus     *collection.Collection[SKU]
	calendar *collection.Collection[CalendarWeek]
	facts    *collection.Collection[SalesFact]
	rng      *rand.Rand
}

// PlannerOption configures a Planner.
type PlannerOption func(*Planner)

// WithRand overrides the random source used to seed first-load sales units.
// Tests pass a fixed seed for deterministic data.
func WithRand(r *rand.Rand) PlannerOption {
	return func(p *Planner) { p.rng = r }
}

// NewPlanner builds the four collections over repo. Each collection loads
// its persisted state; on first run the sample dataset is seeded (sales
// units randomized once, then persisted).
func NewPlanner(ctx context.Context, repo collection.Repository, opts ...PlannerOption) (*Planner, error) {
	p := &Planner{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
	for _, opt := range opts {
		opt(p)
	}

	var err error
	p.stores, err = collection.New(ctx, CollectionStores, repo, SeedStores(),
		collection.WithValidator(ValidateStore),
		collection.WithReorder[Store]())
	if err != nil {
		return nil, err
	}

	p.skus, err = collection.New(ctx, CollectionSKUs, repo, SeedSKUs(),
		collection.WithValidator(ValidateSKU),
		collection.WithReorder[SKU]())
	if err != nil {
		return nil, err
	}

	p.calendar, err = collection.New(ctx, CollectionCalendar, repo, SeedCalendar())
	if err != nil {
		return nil, err
	}

	seedFacts := SeedFacts(p.rng, p.stores.List(), p.skus.List(), p.calendar.List())
	p.facts, err = collection.New(ctx, CollectionFacts, repo, seedFacts,
		collection.WithValidator(ValidateFact))
	if err != nil {
		return nil, err
	}

	return p, nil
}

// Stores returns the editable store collection.
func (p *Planner) Stores() *collection.Collection[Store] { return p.stores }

// SKUs returns the editable SKU collection.
func (p *Planner) SKUs() *collection.Collection[SKU] { return p.skus }

// Calendar returns the plan calendar, read-only reference data.
func (p *Planner) Calendar() []CalendarWeek { return p.calendar.List() }

// Facts returns the current sales facts.
func (p *Planner) Facts() []SalesFact { return p.facts.List() }

// Grid derives the dense plan grid from current collections.
func (p *Planner) Grid() []PlanRow {
	return BuildGrid(p.stores.List(), p.skus.List(), p.calendar.List(), p.facts.List())
}

// ColumnSchema derives the grouped column schema from the calendar.
func (p *Planner) ColumnSchema() []MonthGroup {
	return Columns(p.calendar.List())
}

// ChartSeries derives the weekly totals for the given store.
func (p *Planner) ChartSeries(storeID string) []WeekTotal {
	return WeeklyTotals(storeID, p.calendar.List(), p.facts.List())
}

// SetSalesUnits commits a Sales Units cell edit: update-or-insert the fact
// keyed (storeID, skuCode, week). Units must be >= 0 and all three keys
// must resolve against current master data.
func (p *Planner) SetSalesUnits(ctx context.Context, storeID, skuCode, week string, units int) (SalesFact, error) {
	var zero SalesFact
	if units < 0 {
		return zero, ErrNegativeUnits
	}

	store, ok := p.findStore(storeID)
	if !ok {
		return zero, &UnknownKeyError{Kind: "store", Key: storeID}
	}
	sku, ok := p.findSKU(skuCode)
	if !ok {
		return zero, &UnknownKeyError{Kind: "sku", Key: skuCode}
	}
	cal, ok := p.findWeek(week)
	if !ok {
		return zero, &UnknownKeyError{Kind: "week", Key: week}
	}

	draft := SalesFact{
		StoreID:    store.StoreID,
		StoreName:  store.Name,
		SKUCode:    sku.SKUCode,
		SKULabel:   sku.Label,
		Week:       cal.Week,
		WeekLabel:  cal.WeekLabel,
		Month:      cal.Month,
		MonthLabel: cal.MonthLabel,
		SalesUnits: units,
		Price:      sku.Price,
		Cost:       sku.Cost,
	}

	for _, fact := range p.facts.List() {
		if fact.StoreID == storeID && fact.SKUCode == skuCode && fact.Week == week {
			return p.facts.Update(ctx, fact.ID, draft)
		}
	}
	return p.facts.Create(ctx, draft)
}

// Reset restores the sample dataset across all four collections,
// regenerating random sales units.
func (p *Planner) Reset(ctx context.Context) error {
	if err := p.stores.Reset(ctx, SeedStores()); err != nil {
		return err
	}
	if err := p.skus.Reset(ctx, SeedSKUs()); err != nil {
		return err
	}
	if err := p.calendar.Reset(ctx, SeedCalendar()); err != nil {
		return err
	}
	facts := SeedFacts(p.rng, p.stores.List(), p.skus.List(), p.calendar.List())
	return p.facts.Reset(ctx, facts)
}

func (p *Planner) findStore(storeID string) (Store, bool) {
	for _, s := range p.stores.List() {
		if s.StoreID == storeID {
			return s, true
		}
	}
	return Store{}, false
}

func (p *Planner) findSKU(skuCode string) (SKU, bool) {
	for _, s := range p.skus.List() {
		if s.SKUCode == skuCode {
			return s, true
		}
	}
	return SKU{}, false
}

func (p *Planner) findWeek(week string) (CalendarWeek, bool) {
	for _, w := range p.calendar.List() {
		if w.Week == week {
			return w, true
		}
	}
	return CalendarWeek{}, false
}
