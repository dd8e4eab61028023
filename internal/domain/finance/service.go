// internal/domain/finance/service.go
package finance

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"time"

	"gorm.io/gorm"

	"github.com/your-org/restaurant-backend/internal/config"
	"github.com/your-org/restaurant-backend/internal/domain/order"
	"github.com/your-org/restaurant-backend/internal/pkg/apperror"
)

// Service handles financial records and reporting
type Service struct {
	db     *gorm.DB
	config *config.Config
}

// NewService creates a new finance service
func NewService(db *gorm.DB, cfg *config.Config) *Service {
	return &Service{
		db:     db,
		config: cfg,
	}
}

// RecordRequest represents financial record creation or update data
type RecordRequest struct {
	RecordType  RecordType `json:"record_type" binding:"required"`
	Amount      float64    `json:"amount" binding:"required"`
	Description string     `json:"description,omitempty"`
	RecordDate  *time.Time `json:"record_date,omitempty"`
}

func validateRecord(req *RecordRequest) error {
	if !req.RecordType.IsValid() {
		return apperror.NewValidation("record_type", fmt.Sprintf("unknown record type '%s'", req.RecordType))
	}
	if math.IsNaN(req.Amount) || math.IsInf(req.Amount, 0) || req.Amount <= 0 {
		return apperror.NewValidation("amount", "must be a positive number")
	}
	return nil
}

// CreateRecord inserts a manual financial record
func (s *Service) CreateRecord(userID uint, req *RecordRequest) (*FinancialRecord, error) {
	if err := validateRecord(req); err != nil {
		return nil, err
	}

	recordDate := time.Now()
	if req.RecordDate != nil {
		recordDate = *req.RecordDate
	}

	record := &FinancialRecord{
		UserID:      userID,
		RecordType:  req.RecordType,
		Amount:      req.Amount,
		Description: req.Description,
		RecordDate:  recordDate,
	}
	if err := s.db.Create(record).Error; err != nil {
		return nil, apperror.NewPersistence("create financial record", err)
	}
	return record, nil
}

// GetRecords lists the account's manual records newest first
func (s *Service) GetRecords(userID uint) ([]FinancialRecord, error) {
	var records []FinancialRecord
	err := s.db.Where("user_id = ?", userID).
		Order("record_date DESC, amount DESC").
		Find(&records).Error
	if err != nil {
		return nil, apperror.NewPersistence("list financial records", err)
	}
	return records, nil
}

// UpdateRecord overwrites a manual record
func (s *Service) UpdateRecord(userID, id uint, req *RecordRequest) (*FinancialRecord, error) {
	if err := validateRecord(req); err != nil {
		return nil, err
	}

	var record FinancialRecord
	if err := s.db.Where("id = ? AND user_id = ?", id, userID).First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NewNotFound("financial record", id)
		}
		return nil, apperror.NewPersistence("get financial record", err)
	}

	record.RecordType = req.RecordType
	record.Amount = req.Amount
	record.Description = req.Description
	if req.RecordDate != nil {
		record.RecordDate = *req.RecordDate
	}

	if err := s.db.Save(&record).Error; err != nil {
		return nil, apperror.NewPersistence("update financial record", err)
	}
	return &record, nil
}

// DeleteRecord removes a manual record
func (s *Service) DeleteRecord(userID, id uint) error {
	result := s.db.Where("id = ? AND user_id = ?", id, userID).Delete(&FinancialRecord{})
	if result.Error != nil {
		return apperror.NewPersistence("delete financial record", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperror.NewNotFound("financial record", id)
	}
	return nil
}

// MergeReport combines manual records with order-derived revenue lines,
// sorted by date descending, ties broken by amount descending.
func MergeReport(records []FinancialRecord, orders []order.Order) []ReportLine {
	lines := make([]ReportLine, 0, len(records)+len(orders))

	for _, r := range records {
		lines = append(lines, ReportLine{
			RecordType:  r.RecordType,
			Amount:      r.Amount,
			Description: r.Description,
			Date:        r.RecordDate,
			Source:      "record",
		})
	}
	for _, o := range orders {
		lines = append(lines, ReportLine{
			RecordType:  RecordTypeRevenue,
			Amount:      o.TotalAmount,
			Description: fmt.Sprintf("Order %s - %s", o.Code, o.CustomerName),
			Date:        o.OrderDate,
			Source:      "order",
			Reference:   o.Code,
		})
	}

	sort.SliceStable(lines, func(a, b int) bool {
		da, db := lines[a].Date, lines[b].Date
		if !da.Equal(db) {
			return da.After(db)
		}
		return lines[a].Amount > lines[b].Amount
	})
	return lines
}

// Report produces the merged financial report for a date range. Every
// non-cancelled order contributes a revenue line.
func (s *Service) Report(userID uint, from, to time.Time) ([]ReportLine, error) {
	var records []FinancialRecord
	err := s.db.Where("user_id = ? AND record_date >= ? AND record_date <= ?", userID, from, to).
		Find(&records).Error
	if err != nil {
		return nil, apperror.NewPersistence("list financial records", err)
	}

	var orders []order.Order
	err = s.db.Where("user_id = ? AND status != ? AND order_date >= ? AND order_date <= ?",
		userID, order.StatusCancelled, from, to).
		Find(&orders).Error
	if err != nil {
		return nil, apperror.NewPersistence("list orders", err)
	}

	return MergeReport(records, orders), nil
}
