package finance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/your-org/restaurant-backend/internal/domain/order"
)

func at(d int) time.Time {
	return time.Date(2026, 4, d, 0, 0, 0, 0, time.Local)
}

func TestMergeReportSortsByDateThenAmount(t *testing.T) {
	records := []FinancialRecord{
		{RecordType: RecordTypeExpense, Amount: 40, RecordDate: at(2)},
		{RecordType: RecordTypeRevenue, Amount: 90, RecordDate: at(5)},
	}
	orders := []order.Order{
		{Code: "DH-001", CustomerName: "A", TotalAmount: 120, OrderDate: at(5)},
		{Code: "DH-002", CustomerName: "B", TotalAmount: 60, OrderDate: at(3)},
	}

	lines := MergeReport(records, orders)
	require.Len(t, lines, 4)

	// Newest first; the 120 order outranks the 90 record on the same day
	assert.Equal(t, "order", lines[0].Source)
	assert.InDelta(t, 120, lines[0].Amount, 1e-9)
	assert.Equal(t, "record", lines[1].Source)
	assert.InDelta(t, 90, lines[1].Amount, 1e-9)
	assert.Equal(t, "DH-002", lines[2].Reference)
	assert.Equal(t, RecordTypeExpense, lines[3].RecordType)
}

func TestMergeReportOrdersAreRevenue(t *testing.T) {
	lines := MergeReport(nil, []order.Order{
		{Code: "DH-007", CustomerName: "C", TotalAmount: 75, OrderDate: at(1)},
	})

	require.Len(t, lines, 1)
	assert.Equal(t, RecordTypeRevenue, lines[0].RecordType)
	assert.Contains(t, lines[0].Description, "DH-007")
}

func TestRecordTypeValidation(t *testing.T) {
	assert.True(t, RecordTypeRevenue.IsValid())
	assert.False(t, RecordType("transfer").IsValid())
}
