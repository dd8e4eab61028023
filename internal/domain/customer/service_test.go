package customer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/your-org/restaurant-backend/internal/domain/order"
)

func day(d int) time.Time {
	return time.Date(2026, 3, d, 12, 0, 0, 0, time.Local)
}

func TestComputeReturnFrequencyGroupsByNormalizedName(t *testing.T) {
	orders := []order.Order{
		{CustomerName: "nguyen van a", OrderDate: day(1), TotalAmount: 100},
		{CustomerName: "NGUYEN VAN A", OrderDate: day(5), TotalAmount: 150},
		{CustomerName: "Tran B", OrderDate: day(3), TotalAmount: 80},
	}

	stats := ComputeReturnFrequency(orders)
	require.Len(t, stats, 2)

	// Most frequent customer first, title-cased for display
	assert.Equal(t, "Nguyen Van A", stats[0].Name)
	assert.Equal(t, 2, stats[0].OrderCount)
	assert.InDelta(t, 250, stats[0].TotalSpent, 1e-9)
	require.NotNil(t, stats[0].AvgDaysBetweenOrders)
	assert.InDelta(t, 4, *stats[0].AvgDaysBetweenOrders, 1e-9)

	assert.Equal(t, "Tran B", stats[1].Name)
	assert.Equal(t, 1, stats[1].OrderCount)
}

func TestComputeReturnFrequencySingleOrderHasNoAverage(t *testing.T) {
	stats := ComputeReturnFrequency([]order.Order{
		{CustomerName: "Solo", OrderDate: day(10), TotalAmount: 50},
	})

	require.Len(t, stats, 1)
	assert.Nil(t, stats[0].AvgDaysBetweenOrders)
}

func TestComputeReturnFrequencySkipsBlankNames(t *testing.T) {
	stats := ComputeReturnFrequency([]order.Order{
		{CustomerName: "  ", OrderDate: day(1), TotalAmount: 10},
	})
	assert.Empty(t, stats)
}
