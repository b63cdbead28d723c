/*
validate.go - Draft validation for master data and sales facts

PURPOSE:
  Validation predicates plugged into the collection engine. String fields
  are checked after trimming; money fields must be non-negative. Failures
  come back as real errors so the caller always sees the reason.

TOOLING:
  go-playground/validator struct tags cover required strings and the
  non-negative units check; decimal sign checks are done in code because
  the validator has no notion of decimal.Decimal.
*/
package planning

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

var (
	errNegativePrice = errors.New("price must be >= 0")
	errNegativeCost  = errors.New("cost must be >= 0")
)

// ValidateStore checks a store draft: storeID, name, city, state must be
// non-empty after trimming.
func ValidateStore(s Store) error {
	s.StoreID = strings.TrimSpace(s.StoreID)
	s.Name = strings.TrimSpace(s.Name)
	s.City = strings.TrimSpace(s.City)
	s.State = strings.TrimSpace(s.State)
	return validate.Struct(s)
}

// ValidateSKU checks a SKU draft: skuCode and label non-empty after
// trimming, price and cost non-negative.
func ValidateSKU(s SKU) error {
	s.SKUCode = strings.TrimSpace(s.SKUCode)
	s.Label = strings.TrimSpace(s.Label)
	if err := validate.Struct(s); err != nil {
		return err
	}
	if s.Price.IsNegative() {
		return errNegativePrice
	}
	if s.Cost.IsNegative() {
		return errNegativeCost
	}
	return nil
}

// ValidateFact checks a sales fact draft: identity keys present, units a
// non-negative integer.
func ValidateFact(f SalesFact) error {
	f.StoreID = strings.TrimSpace(f.StoreID)
	f.SKUCode = strings.TrimSpace(f.SKUCode)
	f.Week = strings.TrimSpace(f.Week)
	return validate.Struct(f)
}
