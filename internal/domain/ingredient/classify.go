// internal/domain/ingredient/classify.go
package ingredient

import (
	"time"
)

// StockState is the single displayed stock classification
type StockState string

const (
	StockStateOut        StockState = "out-of-stock"
	StockStateLow        StockState = "low-stock"
	StockStateSufficient StockState = "sufficient"
)

// ExpiryState classifies an ingredient by its expiration date
type ExpiryState string

const (
	ExpiryStateUnknown ExpiryState = "unknown"
	ExpiryStateExpired ExpiryState = "expired"
	ExpiryStateSoon    ExpiryState = "expiring-soon"
	ExpiryStateOK      ExpiryState = "ok"
)

const (
	slowMovingDays = 10
	expirySoonDays = 7
)

// IsOutOfStock reports whether the ingredient has no stock on hand
func IsOutOfStock(i *Ingredient) bool {
	return i.CurrentStock == 0
}

// IsLowStock reports whether stock is positive but at or below the
// alert threshold. Zero stock is out-of-stock, not low-stock.
func IsLowStock(i *Ingredient) bool {
	return i.CurrentStock > 0 && i.CurrentStock <= i.MinStock
}

// StockStatus returns exactly one state, out-of-stock taking precedence
func StockStatus(i *Ingredient) StockState {
	switch {
	case IsOutOfStock(i):
		return StockStateOut
	case IsLowStock(i):
		return StockStateLow
	default:
		return StockStateSufficient
	}
}

// localDate truncates a time to midnight in its own location. Day
// differences are computed on local dates so DST shifts cannot
// duplicate or skip a day.
func localDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DaysSince returns the number of whole calendar days from date to now
func DaysSince(date, now time.Time) int {
	return int(localDate(now).Sub(localDate(date.In(now.Location()))).Hours() / 24)
}

// DaysUntil returns the number of whole calendar days from now to date.
// Negative when the date has passed.
func DaysUntil(date, now time.Time) int {
	return int(localDate(date.In(now.Location())).Sub(localDate(now)).Hours() / 24)
}

// IsSlowMoving reports whether stock has sat on hand for more than the
// staleness threshold without replenishment. The last purchase date is
// used when present, the creation date otherwise.
func IsSlowMoving(i *Ingredient, now time.Time) bool {
	if i.CurrentStock <= 0 {
		return false
	}
	ref := i.CreatedAt
	if i.LastPurchaseDate != nil {
		ref = *i.LastPurchaseDate
	}
	return DaysSince(ref, now) > slowMovingDays
}

// ExpiryStatus classifies the ingredient's expiration date. DaysUntil is
// meaningful only for the expiring-soon state.
func ExpiryStatus(i *Ingredient, now time.Time) (ExpiryState, int) {
	if i.ExpirationDate == nil {
		return ExpiryStateUnknown, 0
	}
	days := DaysUntil(*i.ExpirationDate, now)
	switch {
	case days < 0:
		return ExpiryStateExpired, days
	case days <= expirySoonDays:
		return ExpiryStateSoon, days
	default:
		return ExpiryStateOK, days
	}
}
