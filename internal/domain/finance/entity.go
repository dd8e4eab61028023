// internal/domain/finance/entity.go
package finance

import (
	"time"
)

// RecordType classifies a financial record
type RecordType string

const (
	RecordTypeRevenue RecordType = "revenue"
	RecordTypeExpense RecordType = "expense"
)

// IsValid reports whether the record type is recognized
func (t RecordType) IsValid() bool {
	return t == RecordTypeRevenue || t == RecordTypeExpense
}

// FinancialRecord is a manually entered revenue or expense line
type FinancialRecord struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	UserID      uint       `gorm:"not null;index" json:"user_id"`
	RecordType  RecordType `gorm:"not null;size:10" json:"record_type"`
	Amount      float64    `gorm:"type:decimal(14,2);not null" json:"amount"`
	Description string     `gorm:"type:text" json:"description"`
	RecordDate  time.Time  `gorm:"not null;index" json:"record_date"`
	CreatedAt   time.Time  `json:"created_at"`
}

// ReportLine is one row of the merged financial report: either a manual
// record or revenue derived from a non-cancelled order.
type ReportLine struct {
	RecordType  RecordType `json:"record_type"`
	Amount      float64    `json:"amount"`
	Description string     `json:"description"`
	Date        time.Time  `json:"date"`
	Source      string     `json:"source"` // "record" or "order"
	Reference   string     `json:"reference,omitempty"`
}
