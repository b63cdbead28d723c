package planning_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/merchkit/plan-engine/planning"
)

func validStore() planning.Store {
	return planning.Store{StoreID: "ST100", Name: "Test Store", City: "Austin", State: "TX"}
}

func validSKU() planning.SKU {
	return planning.SKU{SKUCode: "SK100", Label: "Test SKU", Price: planning.MustDecimal("9.99"), Cost: planning.MustDecimal("4.50")}
}

func TestValidateStore(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*planning.Store)
		wantErr bool
	}{
		{"valid", func(s *planning.Store) {}, false},
		{"empty storeID", func(s *planning.Store) { s.StoreID = "" }, true},
		{"whitespace-only name", func(s *planning.Store) { s.Name = "   " }, true},
		{"empty city", func(s *planning.Store) { s.City = "" }, true},
		{"empty state", func(s *planning.Store) { s.State = "" }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := validStore()
			tt.mutate(&s)
			err := planning.ValidateStore(s)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateSKU(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*planning.SKU)
		wantErr bool
	}{
		{"valid", func(s *planning.SKU) {}, false},
		{"zero price and cost ok", func(s *planning.SKU) {
			s.Price = planning.MustDecimal("0")
			s.Cost = planning.MustDecimal("0")
		}, false},
		{"empty skuCode", func(s *planning.SKU) { s.SKUCode = "" }, true},
		{"whitespace-only label", func(s *planning.SKU) { s.Label = "  " }, true},
		{"negative price", func(s *planning.SKU) { s.Price = planning.MustDecimal("-1") }, true},
		{"negative cost", func(s *planning.SKU) { s.Cost = planning.MustDecimal("-0.01") }, true},
		{"class and department optional", func(s *planning.SKU) { s.Class = ""; s.Department = "" }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := validSKU()
			tt.mutate(&s)
			err := planning.ValidateSKU(s)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateFact(t *testing.T) {
	valid := fact("ST100", "SK100", "W01", 3, "9.99", "4.50")
	assert.NoError(t, planning.ValidateFact(valid))

	negative := valid
	negative.SalesUnits = -1
	assert.Error(t, planning.ValidateFact(negative), "units must be non-negative")

	noStore := valid
	noStore.StoreID = " "
	assert.Error(t, planning.ValidateFact(noStore))
}
