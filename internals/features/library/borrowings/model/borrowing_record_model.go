// internals/features/library/borrowings/model/borrowing_record_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Status transaksi peminjaman
const (
	BorrowingStatusBorrowed = "BORROWED"
	BorrowingStatusReturned = "RETURNED"
	BorrowingStatusOverdue  = "OVERDUE"
	BorrowingStatusLost     = "LOST"
	BorrowingStatusDamaged  = "DAMAGED"
)

// Tarif denda tetap: $1 per hari keterlambatan.
const DailyFineRate = 1.0

// Default maksimal perpanjangan per transaksi.
const DefaultMaxRenewals = 2

func IsValidBorrowingStatus(status string) bool {
	switch status {
	case BorrowingStatusBorrowed, BorrowingStatusReturned,
		BorrowingStatusOverdue, BorrowingStatusLost, BorrowingStatusDamaged:
		return true
	}
	return false
}

type BorrowingRecordModel struct {
	// PK
	BorrowingRecordsID uuid.UUID `json:"borrowing_records_id" gorm:"column:borrowing_records_id;type:uuid;default:gen_random_uuid();primaryKey"`

	// FKs — immutable setelah create (pinjaman tidak bisa dipindah tangan)
	BorrowingRecordsUserID uuid.UUID `json:"borrowing_records_user_id" gorm:"column:borrowing_records_user_id;type:uuid;not null;index:idx_borrowing_records_user"`
	BorrowingRecordsBookID uuid.UUID `json:"borrowing_records_book_id" gorm:"column:borrowing_records_book_id;type:uuid;not null;index:idx_borrowing_records_book"`

	BorrowingRecordsBorrowedDate       time.Time  `json:"borrowing_records_borrowed_date"        gorm:"column:borrowing_records_borrowed_date;type:date;not null"`
	BorrowingRecordsExpectedReturnDate time.Time  `json:"borrowing_records_expected_return_date" gorm:"column:borrowing_records_expected_return_date;type:date;not null"`
	BorrowingRecordsActualReturnDate   *time.Time `json:"borrowing_records_actual_return_date,omitempty" gorm:"column:borrowing_records_actual_return_date;type:date"`

	BorrowingRecordsStatus string `json:"borrowing_records_status" gorm:"column:borrowing_records_status;type:varchar(20);not null;default:'BORROWED';index:idx_borrowing_records_status"`

	BorrowingRecordsFineAmount   float64    `json:"borrowing_records_fine_amount" gorm:"column:borrowing_records_fine_amount;type:numeric(10,2);not null;default:0"`
	BorrowingRecordsFinePaidDate *time.Time `json:"borrowing_records_fine_paid_date,omitempty" gorm:"column:borrowing_records_fine_paid_date;type:date"`

	BorrowingRecordsNotes *string `json:"borrowing_records_notes,omitempty" gorm:"column:borrowing_records_notes;type:varchar(1000)"`

	BorrowingRecordsRenewalCount int `json:"borrowing_records_renewal_count" gorm:"column:borrowing_records_renewal_count;not null;default:0"`
	BorrowingRecordsMaxRenewals  int `json:"borrowing_records_max_renewals"  gorm:"column:borrowing_records_max_renewals;not null;default:2"`

	// Timestamps — record peminjaman tidak pernah dihapus fisik
	BorrowingRecordsCreatedAt time.Time      `json:"borrowing_records_created_at" gorm:"column:borrowing_records_created_at;type:timestamptz;not null;autoCreateTime"`
	BorrowingRecordsUpdatedAt time.Time      `json:"borrowing_records_updated_at" gorm:"column:borrowing_records_updated_at;type:timestamptz;not null;autoUpdateTime"`
	BorrowingRecordsDeletedAt gorm.DeletedAt `json:"borrowing_records_deleted_at,omitempty" gorm:"column:borrowing_records_deleted_at;index"`
}

func (BorrowingRecordModel) TableName() string { return "borrowing_records" }

func (r *BorrowingRecordModel) BeforeCreate(tx *gorm.DB) error {
	if r.BorrowingRecordsID == uuid.Nil {
		r.BorrowingRecordsID = uuid.New()
	}
	if r.BorrowingRecordsStatus == "" {
		r.BorrowingRecordsStatus = BorrowingStatusBorrowed
	}
	if r.BorrowingRecordsMaxRenewals == 0 {
		r.BorrowingRecordsMaxRenewals = DefaultMaxRenewals
	}
	return nil
}

/* =========================================================
   State machine transaksi peminjaman
   Setiap aturan punya varian ...At(now) supaya bisa diuji
   tanpa wall clock; versi tanpa argumen memakai time.Now().
   ========================================================= */

// epochDay: hari sejak epoch di UTC, meniru LocalDate.toEpochDay()
// supaya selisih tanggal bebas dari urusan jam/DST.
func epochDay(t time.Time) int64 {
	return t.UTC().Unix() / 86400
}

// DateOnly membuang komponen jam (UTC midnight). Kolom tanggal di
// relasi ini bertipe date; pembanding di query juga harus lewat sini
// supaya batas harinya sama dengan epochDay.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// IsOverdueAt: terlambat jika belum dikembalikan dan now sudah
// melewati tanggal jatuh tempo.
func (r *BorrowingRecordModel) IsOverdueAt(now time.Time) bool {
	if r.BorrowingRecordsActualReturnDate != nil {
		return false // sudah dikembalikan
	}
	return epochDay(now) > epochDay(r.BorrowingRecordsExpectedReturnDate)
}

func (r *BorrowingRecordModel) IsOverdue() bool {
	return r.IsOverdueAt(time.Now())
}

// DaysOverdueAt: jumlah hari keterlambatan (0 kalau tidak terlambat).
func (r *BorrowingRecordModel) DaysOverdueAt(now time.Time) int64 {
	if !r.IsOverdueAt(now) {
		return 0
	}
	return epochDay(now) - epochDay(r.BorrowingRecordsExpectedReturnDate)
}

func (r *BorrowingRecordModel) DaysOverdue() int64 {
	return r.DaysOverdueAt(time.Now())
}

// CalculateFineAt: denda = hari terlambat × tarif. Murni, tidak mengubah state.
func (r *BorrowingRecordModel) CalculateFineAt(dailyFineRate float64, now time.Time) float64 {
	if !r.IsOverdueAt(now) {
		return 0.0
	}
	return float64(r.DaysOverdueAt(now)) * dailyFineRate
}

func (r *BorrowingRecordModel) CalculateFine(dailyFineRate float64) float64 {
	return r.CalculateFineAt(dailyFineRate, time.Now())
}

// CanBeRenewedAt: masih BORROWED, jatah perpanjangan belum habis,
// dan belum terlambat.
func (r *BorrowingRecordModel) CanBeRenewedAt(now time.Time) bool {
	return r.BorrowingRecordsStatus == BorrowingStatusBorrowed &&
		r.BorrowingRecordsRenewalCount < r.BorrowingRecordsMaxRenewals &&
		!r.IsOverdueAt(now)
}

func (r *BorrowingRecordModel) CanBeRenewed() bool {
	return r.CanBeRenewedAt(time.Now())
}

// RenewAt menggeser jatuh tempo additionalDays hari dan menambah counter.
// No-op (return false) kalau tidak memenuhi syarat perpanjangan.
func (r *BorrowingRecordModel) RenewAt(additionalDays int, now time.Time) bool {
	if !r.CanBeRenewedAt(now) {
		return false
	}
	r.BorrowingRecordsExpectedReturnDate = r.BorrowingRecordsExpectedReturnDate.AddDate(0, 0, additionalDays)
	r.BorrowingRecordsRenewalCount++
	return true
}

func (r *BorrowingRecordModel) Renew(additionalDays int) bool {
	return r.RenewAt(additionalDays, time.Now())
}

// ReturnBookAt menutup transaksi. Denda dihitung terhadap saat
// pengembalian — SEBELUM actual return date diisi, supaya transaksi
// yang terlambat benar-benar tercatat dendanya.
func (r *BorrowingRecordModel) ReturnBookAt(now time.Time) bool {
	if r.BorrowingRecordsStatus != BorrowingStatusBorrowed {
		return false
	}

	if r.IsOverdueAt(now) {
		r.BorrowingRecordsFineAmount = r.CalculateFineAt(DailyFineRate, now)
	}

	returned := DateOnly(now)
	r.BorrowingRecordsActualReturnDate = &returned
	r.BorrowingRecordsStatus = BorrowingStatusReturned
	return true
}

func (r *BorrowingRecordModel) ReturnBook() bool {
	return r.ReturnBookAt(time.Now())
}

// BorrowingDurationDaysAt: lama pinjam dalam hari; kalau belum kembali,
// dihitung sampai now.
func (r *BorrowingRecordModel) BorrowingDurationDaysAt(now time.Time) int64 {
	end := now
	if r.BorrowingRecordsActualReturnDate != nil {
		end = *r.BorrowingRecordsActualReturnDate
	}
	return epochDay(end) - epochDay(r.BorrowingRecordsBorrowedDate)
}

func (r *BorrowingRecordModel) BorrowingDurationDays() int64 {
	return r.BorrowingDurationDaysAt(time.Now())
}

func (r *BorrowingRecordModel) IsFinePaid() bool {
	return r.BorrowingRecordsFinePaidDate != nil
}

// PayFineAt menandai denda lunas. No-op kalau tidak ada denda
// atau sudah dibayar.
func (r *BorrowingRecordModel) PayFineAt(now time.Time) bool {
	if r.BorrowingRecordsFineAmount > 0 && !r.IsFinePaid() {
		paid := DateOnly(now)
		r.BorrowingRecordsFinePaidDate = &paid
		return true
	}
	return false
}

func (r *BorrowingRecordModel) PayFine() bool {
	return r.PayFineAt(time.Now())
}
