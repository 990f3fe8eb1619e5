// internals/features/library/borrowings/dto/borrowing_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	model "perpustakaanku_backend/internals/features/library/borrowings/model"
)

/* =========================
   REQUEST
   ========================= */

type BorrowRequest struct {
	UserID uuid.UUID `json:"user_id" validate:"required"`
	BookID uuid.UUID `json:"book_id" validate:"required"`
	// Override opsional; default = today + periode pinjam role peminjam.
	ExpectedReturnDate *string `json:"expected_return_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Notes              *string `json:"notes,omitempty" validate:"omitempty,max=1000"`
}

type RenewRequest struct {
	// Jumlah hari perpanjangan; default = periode pinjam role peminjam.
	AdditionalDays *int `json:"additional_days,omitempty" validate:"omitempty,min=1,max=60"`
}

type MarkLostRequest struct {
	Notes *string `json:"notes,omitempty" validate:"omitempty,max=1000"`
}

func (r *BorrowRequest) Normalize() {
	if r.Notes != nil {
		t := strings.TrimSpace(*r.Notes)
		if t == "" {
			r.Notes = nil
		} else {
			r.Notes = &t
		}
	}
}

// ParseExpectedReturnDate mengembalikan override jatuh tempo (atau nil).
func (r *BorrowRequest) ParseExpectedReturnDate() (*time.Time, error) {
	if r.ExpectedReturnDate == nil {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", *r.ExpectedReturnDate)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

/* =========================
   RESPONSE
   ========================= */

type BorrowingRecordResponse struct {
	BorrowingRecordsID                 uuid.UUID  `json:"borrowing_records_id"`
	BorrowingRecordsUserID             uuid.UUID  `json:"borrowing_records_user_id"`
	BorrowingRecordsBookID             uuid.UUID  `json:"borrowing_records_book_id"`
	BorrowingRecordsBorrowedDate       string     `json:"borrowing_records_borrowed_date"`
	BorrowingRecordsExpectedReturnDate string     `json:"borrowing_records_expected_return_date"`
	BorrowingRecordsActualReturnDate   *string    `json:"borrowing_records_actual_return_date,omitempty"`
	BorrowingRecordsStatus             string     `json:"borrowing_records_status"`
	BorrowingRecordsFineAmount         float64    `json:"borrowing_records_fine_amount"`
	BorrowingRecordsFinePaidDate       *string    `json:"borrowing_records_fine_paid_date,omitempty"`
	BorrowingRecordsNotes              *string    `json:"borrowing_records_notes,omitempty"`
	BorrowingRecordsRenewalCount       int        `json:"borrowing_records_renewal_count"`
	BorrowingRecordsMaxRenewals        int        `json:"borrowing_records_max_renewals"`
	BorrowingRecordsIsOverdue          bool       `json:"borrowing_records_is_overdue"`
	BorrowingRecordsDaysOverdue        int64      `json:"borrowing_records_days_overdue"`
	BorrowingRecordsCreatedAt          time.Time  `json:"borrowing_records_created_at"`
	BorrowingRecordsUpdatedAt          time.Time  `json:"borrowing_records_updated_at"`
}

func formatDatePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format("2006-01-02")
	return &s
}

func ToBorrowingRecordResponse(m *model.BorrowingRecordModel) BorrowingRecordResponse {
	now := time.Now()
	return BorrowingRecordResponse{
		BorrowingRecordsID:                 m.BorrowingRecordsID,
		BorrowingRecordsUserID:             m.BorrowingRecordsUserID,
		BorrowingRecordsBookID:             m.BorrowingRecordsBookID,
		BorrowingRecordsBorrowedDate:       m.BorrowingRecordsBorrowedDate.Format("2006-01-02"),
		BorrowingRecordsExpectedReturnDate: m.BorrowingRecordsExpectedReturnDate.Format("2006-01-02"),
		BorrowingRecordsActualReturnDate:   formatDatePtr(m.BorrowingRecordsActualReturnDate),
		BorrowingRecordsStatus:             m.BorrowingRecordsStatus,
		BorrowingRecordsFineAmount:         m.BorrowingRecordsFineAmount,
		BorrowingRecordsFinePaidDate:       formatDatePtr(m.BorrowingRecordsFinePaidDate),
		BorrowingRecordsNotes:              m.BorrowingRecordsNotes,
		BorrowingRecordsRenewalCount:       m.BorrowingRecordsRenewalCount,
		BorrowingRecordsMaxRenewals:        m.BorrowingRecordsMaxRenewals,
		BorrowingRecordsIsOverdue:          m.IsOverdueAt(now),
		BorrowingRecordsDaysOverdue:        m.DaysOverdueAt(now),
		BorrowingRecordsCreatedAt:          m.BorrowingRecordsCreatedAt,
		BorrowingRecordsUpdatedAt:          m.BorrowingRecordsUpdatedAt,
	}
}

func ToBorrowingRecordResponses(ms []model.BorrowingRecordModel) []BorrowingRecordResponse {
	out := make([]BorrowingRecordResponse, 0, len(ms))
	for i := range ms {
		out = append(out, ToBorrowingRecordResponse(&ms[i]))
	}
	return out
}
