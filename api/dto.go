/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  JSON structures for API communication. Master-data records (Store, SKU,
  CalendarWeek, SalesFact) marshal directly; the types here cover requests
  whose shape differs from a record and the derived-plan responses.

NAMING CONVENTION:
  - *Request: request body types from clients
  - *DTO:     response types returned to clients

SEE ALSO:
  - handlers.go: uses these types
  - planning:    the record and derived types they wrap
*/
package api

import (
	"github.com/shopspring/decimal"

	"github.com/merchkit/plan-engine/planning"
)

// =============================================================================
// REQUEST TYPES
// =============================================================================

// ReorderRequest moves the record at From to position To (zero-based).
type ReorderRequest struct {
	From int `json:"from"`
	To   int `json:"to"`
}

// CellEditRequest commits a Sales Units cell: update-or-insert the sales
// fact keyed (storeID, skuCode, week).
type CellEditRequest struct {
	StoreID    string `json:"storeID"`
	SKUCode    string `json:"skuCode"`
	Week       string `json:"week"`
	SalesUnits int    `json:"salesUnits"`
}

// =============================================================================
// RESPONSE TYPES
// =============================================================================

// PlanCellDTO is one week's worth of a grid row: the editable units plus
// the three derived columns and the margin band tier.
type PlanCellDTO struct {
	SalesUnits   int             `json:"salesUnits"`
	SalesDollars decimal.Decimal `json:"salesDollars"`
	GMDollars    decimal.Decimal `json:"gmDollars"`
	GMPercent    decimal.Decimal `json:"gmPercent"`
	Tier         planning.Tier   `json:"tier"`
}

// PlanRowDTO is one dense-grid row: identity fields plus per-week cells.
type PlanRowDTO struct {
	ID        string                 `json:"id"`
	StoreID   string                 `json:"storeID"`
	StoreName string                 `json:"storeName"`
	SKUCode   string                 `json:"skuCode"`
	SKULabel  string                 `json:"skuLabel"`
	Weeks     map[string]PlanCellDTO `json:"weeks"`
}

// ChartDTO is the margin chart contract: the weekly series for one store.
// The dollar axis auto-scales; the percent axis is fixed at [0, PercentAxisMax].
type ChartDTO struct {
	StoreID        string               `json:"storeID"`
	PercentAxisMax int                  `json:"percentAxisMax"`
	Series         []planning.WeekTotal `json:"series"`
}

// ErrorResponse is the standard error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
}

// =============================================================================
// CONVERSION HELPERS
// =============================================================================

func toPlanRowDTO(row planning.PlanRow, weeks []planning.CalendarWeek) PlanRowDTO {
	cells := make(map[string]PlanCellDTO, len(weeks))
	for _, week := range weeks {
		gmPercent := row.GMPercent(week.Week)
		cells[week.Week] = PlanCellDTO{
			SalesUnits:   row.SalesUnits(week.Week),
			SalesDollars: row.SalesDollars(week.Week),
			GMDollars:    row.GMDollars(week.Week),
			GMPercent:    gmPercent,
			Tier:         planning.Band(gmPercent),
		}
	}
	return PlanRowDTO{
		ID:        row.Key,
		StoreID:   row.StoreID,
		StoreName: row.StoreName,
		SKUCode:   row.SKUCode,
		SKULabel:  row.SKULabel,
		Weeks:     cells,
	}
}

func toPlanRowDTOs(rows []planning.PlanRow, weeks []planning.CalendarWeek) []PlanRowDTO {
	dtos := make([]PlanRowDTO, len(rows))
	for i, row := range rows {
		dtos[i] = toPlanRowDTO(row, weeks)
	}
	return dtos
}
