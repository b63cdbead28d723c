/*
seed.go - Sample dataset loaded on first run

PURPOSE:
  The fixed demo dataset: 5 stores, 5 SKUs, 12 weeks across three months.
  Sales units are randomized in [0, 50) once at first load and then live in
  the persisted facts collection like any user-entered value.
*/
package planning

import "math/rand"

// SeedStores returns the sample store master data.
func SeedStores() []Store {
	return []Store{
		{ID: 1, StoreID: "ST035", Name: "San Francisco Bay Trends", City: "San Francisco", State: "CA"},
		{ID: 2, StoreID: "ST046", Name: "Phoenix Sunwear", City: "Phoenix", State: "AZ"},
		{ID: 3, StoreID: "ST064", Name: "Dallas Ranch Supply", City: "Dallas", State: "TX"},
		{ID: 4, StoreID: "ST073", Name: "Miami Beach Fashion", City: "Miami", State: "FL"},
		{ID: 5, StoreID: "ST091", Name: "Chicago Urban Outfitters", City: "Chicago", State: "IL"},
	}
}

// SeedSKUs returns the sample SKU master data.
func SeedSKUs() []SKU {
	return []SKU{
		{ID: 1, SKUCode: "SK00158", Label: "Crew Neck Merino Wool Sweater", Class: "Tops", Department: "Men's Apparel", Price: MustDecimal("114.99"), Cost: MustDecimal("18.28")},
		{ID: 2, SKUCode: "SK00269", Label: "Faux Leather Leggings", Class: "Jewelry", Department: "Footwear", Price: MustDecimal("9.99"), Cost: MustDecimal("8.45")},
		{ID: 3, SKUCode: "SK00300", Label: "Fleece-Lined Parka", Class: "Jewelry", Department: "Unisex Accessories", Price: MustDecimal("199.99"), Cost: MustDecimal("17.80")},
		{ID: 4, SKUCode: "SK00411", Label: "V-Neck Cashmere Cardigan", Class: "Tops", Department: "Women's Apparel", Price: MustDecimal("149.99"), Cost: MustDecimal("30.00")},
		{ID: 5, SKUCode: "SK00522", Label: "Waterproof Hiking Boots", Class: "Footwear", Department: "Outdoor Gear", Price: MustDecimal("89.99"), Cost: MustDecimal("40.50")},
	}
}

// SeedCalendar returns the 12-week plan calendar: four weeks each in Feb,
// Mar, and Apr. Calendar weeks are reference data; there is no edit surface.
func SeedCalendar() []CalendarWeek {
	return []CalendarWeek{
		{ID: 1, Week: "W01", WeekLabel: "Week 01", Month: "M01", MonthLabel: "Feb"},
		{ID: 2, Week: "W02", WeekLabel: "Week 02", Month: "M01", MonthLabel: "Feb"},
		{ID: 3, Week: "W03", WeekLabel: "Week 03", Month: "M01", MonthLabel: "Feb"},
		{ID: 4, Week: "W04", WeekLabel: "Week 04", Month: "M01", MonthLabel: "Feb"},
		{ID: 5, Week: "W05", WeekLabel: "Week 05", Month: "M02", MonthLabel: "Mar"},
		{ID: 6, Week: "W06", WeekLabel: "Week 06", Month: "M02", MonthLabel: "Mar"},
		{ID: 7, Week: "W07", WeekLabel: "Week 07", Month: "M02", MonthLabel: "Mar"},
		{ID: 8, Week: "W08", WeekLabel: "Week 08", Month: "M02", MonthLabel: "Mar"},
		{ID: 9, Week: "W09", WeekLabel: "Week 09", Month: "M03", MonthLabel: "Apr"},
		{ID: 10, Week: "W10", WeekLabel: "Week 10", Month: "M03", MonthLabel: "Apr"},
		{ID: 11, Week: "W11", WeekLabel: "Week 11", Month: "M03", MonthLabel: "Apr"},
		{ID: 12, Week: "W12", WeekLabel: "Week 12", Month: "M03", MonthLabel: "Apr"},
	}
}

// SeedFacts generates the initial sales facts: the full store x SKU x week
// cross join with random units drawn from r. Runs once; after that the
// persisted collection is authoritative.
func SeedFacts(r *rand.Rand, stores []Store, skus []SKU, weeks []CalendarWeek) []SalesFact {
	facts := make([]SalesFact, 0, len(stores)*len(skus)*len(weeks))
	id := 1
	for _, store := range stores {
		for _, sku := range skus {
			for _, week := range weeks {
				facts = append(facts, SalesFact{
					ID:         id,
					StoreID:    store.StoreID,
					StoreName:  store.Name,
					SKUCode:    sku.SKUCode,
					SKULabel:   sku.Label,
					Week:       week.Week,
					WeekLabel:  week.WeekLabel,
					Month:      week.Month,
					MonthLabel: week.MonthLabel,
					SalesUnits: r.Intn(50),
					Price:      sku.Price,
					Cost:       sku.Cost,
				})
				id++
			}
		}
	}
	return facts
}
