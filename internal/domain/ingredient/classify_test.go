package ingredient

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func daysFromNow(now time.Time, days int) *time.Time {
	d := now.AddDate(0, 0, days)
	return &d
}

func TestStockStatusExactlyOneState(t *testing.T) {
	tests := []struct {
		name  string
		stock float64
		min   float64
		want  StockState
	}{
		{"zero stock is out of stock", 0, 5, StockStateOut},
		{"zero stock with zero threshold is out of stock", 0, 0, StockStateOut},
		{"at threshold is low stock", 5, 5, StockStateLow},
		{"below threshold is low stock", 2, 5, StockStateLow},
		{"above threshold is sufficient", 6, 5, StockStateSufficient},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			i := &Ingredient{CurrentStock: tt.stock, MinStock: tt.min}
			assert.Equal(t, tt.want, StockStatus(i))

			// Out-of-stock and low-stock never overlap in display
			if IsOutOfStock(i) {
				assert.False(t, IsLowStock(i))
			}
		})
	}
}

func TestExpiryStatusBoundaries(t *testing.T) {
	now := time.Date(2026, 3, 15, 14, 30, 0, 0, time.Local)

	tests := []struct {
		name     string
		expires  *time.Time
		want     ExpiryState
		wantDays int
	}{
		{"no expiration date is unknown", nil, ExpiryStateUnknown, 0},
		{"seven days out is expiring soon", daysFromNow(now, 7), ExpiryStateSoon, 7},
		{"eight days out is ok", daysFromNow(now, 8), ExpiryStateOK, 8},
		{"today is expiring soon", daysFromNow(now, 0), ExpiryStateSoon, 0},
		{"yesterday is expired", daysFromNow(now, -1), ExpiryStateExpired, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			i := &Ingredient{ExpirationDate: tt.expires}
			state, days := ExpiryStatus(i, now)
			assert.Equal(t, tt.want, state)
			assert.Equal(t, tt.wantDays, days)
		})
	}
}

func TestExpiryUsesCalendarDaysNotClockHours(t *testing.T) {
	// Late evening now, early morning expiry: less than 7*24h away but
	// still 7 calendar days.
	now := time.Date(2026, 3, 15, 23, 0, 0, 0, time.Local)
	expires := time.Date(2026, 3, 22, 1, 0, 0, 0, time.Local)

	state, days := ExpiryStatus(&Ingredient{ExpirationDate: &expires}, now)
	assert.Equal(t, ExpiryStateSoon, state)
	assert.Equal(t, 7, days)
}

func TestIsSlowMovingBoundary(t *testing.T) {
	now := time.Date(2026, 3, 15, 9, 0, 0, 0, time.Local)

	tenDaysAgo := now.AddDate(0, 0, -10)
	elevenDaysAgo := now.AddDate(0, 0, -11)

	assert.False(t, IsSlowMoving(&Ingredient{CurrentStock: 3, LastPurchaseDate: &tenDaysAgo}, now))
	assert.True(t, IsSlowMoving(&Ingredient{CurrentStock: 3, LastPurchaseDate: &elevenDaysAgo}, now))
}

func TestIsSlowMovingFallsBackToCreatedAt(t *testing.T) {
	now := time.Date(2026, 3, 15, 9, 0, 0, 0, time.Local)

	i := &Ingredient{CurrentStock: 3, CreatedAt: now.AddDate(0, 0, -12)}
	assert.True(t, IsSlowMoving(i, now))

	// A recent purchase overrides the old creation date
	recent := now.AddDate(0, 0, -2)
	i.LastPurchaseDate = &recent
	assert.False(t, IsSlowMoving(i, now))
}

func TestIsSlowMovingIgnoresEmptyStock(t *testing.T) {
	now := time.Now()
	old := now.AddDate(0, 0, -30)
	assert.False(t, IsSlowMoving(&Ingredient{CurrentStock: 0, LastPurchaseDate: &old}, now))
}

func TestCategoryAndUnitValidation(t *testing.T) {
	assert.True(t, CategoryMeat.IsValid())
	assert.Equal(t, "Meat", CategoryMeat.DisplayName())
	assert.False(t, Category("frozen").IsValid())

	assert.True(t, UnitKilogram.IsValid())
	assert.Equal(t, "Bottle", UnitBottle.DisplayName())
	assert.False(t, Unit("ton").IsValid())
}
