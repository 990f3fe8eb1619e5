// internals/features/library/books/model/book_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Status koleksi buku
const (
	BookStatusAvailable   = "AVAILABLE"
	BookStatusBorrowed    = "BORROWED"
	BookStatusReserved    = "RESERVED"
	BookStatusMaintenance = "MAINTENANCE"
	BookStatusLost        = "LOST"
	BookStatusDamaged     = "DAMAGED"
)

func IsValidBookStatus(status string) bool {
	switch status {
	case BookStatusAvailable, BookStatusBorrowed, BookStatusReserved,
		BookStatusMaintenance, BookStatusLost, BookStatusDamaged:
		return true
	}
	return false
}

type BookModel struct {
	// PK
	BooksID uuid.UUID `json:"books_id" gorm:"column:books_id;type:uuid;default:gen_random_uuid();primaryKey"`

	// Identitas katalog
	BooksTitle  string `json:"books_title"  gorm:"column:books_title;type:varchar(255);not null;index:idx_books_title"`
	BooksAuthor string `json:"books_author" gorm:"column:books_author;type:varchar(255);not null;index:idx_books_author"`

	// ISBN unik selama baris masih alive (soft-delete aware)
	BooksISBN string `json:"books_isbn" gorm:"column:books_isbn;type:varchar(20);not null;index:uq_books_isbn_alive,unique,where:books_deleted_at IS NULL"`

	BooksPublisher       string    `json:"books_publisher"        gorm:"column:books_publisher;type:varchar(255);not null"`
	BooksPublicationDate time.Time `json:"books_publication_date" gorm:"column:books_publication_date;type:date;not null"`
	BooksCategory        string    `json:"books_category"         gorm:"column:books_category;type:varchar(100);not null;index:idx_books_category"`
	BooksPages           int       `json:"books_pages"            gorm:"column:books_pages;not null"`
	BooksPrice           float64   `json:"books_price"            gorm:"column:books_price;type:numeric(10,2);not null"`
	BooksDescription     *string   `json:"books_description,omitempty" gorm:"column:books_description;type:varchar(1000)"`
	BooksLanguage        string    `json:"books_language"         gorm:"column:books_language;type:varchar(50);not null;default:'English'"`
	BooksCoverImageURL   *string   `json:"books_cover_image_url,omitempty" gorm:"column:books_cover_image_url;type:varchar(500)"`

	// Inventori copy
	BooksTotalCopies     int    `json:"books_total_copies"     gorm:"column:books_total_copies;not null;default:1"`
	BooksCopiesAvailable int    `json:"books_copies_available" gorm:"column:books_copies_available;not null;default:1"`
	BooksStatus          string `json:"books_status"           gorm:"column:books_status;type:varchar(20);not null;default:'AVAILABLE';index:idx_books_status"`

	// Timestamps
	BooksCreatedAt time.Time      `json:"books_created_at" gorm:"column:books_created_at;type:timestamptz;not null;autoCreateTime"`
	BooksUpdatedAt time.Time      `json:"books_updated_at" gorm:"column:books_updated_at;type:timestamptz;not null;autoUpdateTime"`
	BooksDeletedAt gorm.DeletedAt `json:"books_deleted_at,omitempty" gorm:"column:books_deleted_at;index"`
}

func (BookModel) TableName() string { return "books" }

func (b *BookModel) BeforeCreate(tx *gorm.DB) error {
	if b.BooksID == uuid.Nil {
		b.BooksID = uuid.New()
	}
	if b.BooksStatus == "" {
		b.BooksStatus = BookStatusAvailable
	}
	if b.BooksLanguage == "" {
		b.BooksLanguage = "English"
	}
	return nil
}

/* =========================================================
   State machine inventori copy
   ========================================================= */

// IsAvailable: buku bisa dipinjam jika status AVAILABLE dan masih ada copy.
func (b *BookModel) IsAvailable() bool {
	return b.BooksStatus == BookStatusAvailable && b.BooksCopiesAvailable > 0
}

// BorrowCopy mengurangi satu copy. Return false kalau tidak ada copy tersisa.
func (b *BookModel) BorrowCopy() bool {
	if b.BooksCopiesAvailable > 0 {
		b.BooksCopiesAvailable--
		if b.BooksCopiesAvailable == 0 {
			b.BooksStatus = BookStatusBorrowed
		}
		return true
	}
	return false
}

// ReturnCopy mengembalikan satu copy. Return false kalau semua copy sudah ada
// di rak (over-return, harusnya tidak terjadi kalau pemanggil benar).
func (b *BookModel) ReturnCopy() bool {
	if b.BooksCopiesAvailable < b.BooksTotalCopies {
		b.BooksCopiesAvailable++
		if b.BooksStatus == BookStatusBorrowed && b.BooksCopiesAvailable > 0 {
			b.BooksStatus = BookStatusAvailable
		}
		return true
	}
	return false
}

// AddCopies menambah stok copy sebanyak n (n harus > 0).
func (b *BookModel) AddCopies(n int) bool {
	if n <= 0 {
		return false
	}
	b.BooksTotalCopies += n
	b.BooksCopiesAvailable += n
	if b.BooksStatus == BookStatusBorrowed && b.BooksCopiesAvailable > 0 {
		b.BooksStatus = BookStatusAvailable
	}
	return true
}

// RemoveCopies mengurangi stok copy sebanyak n. Copy yang sedang dipinjam
// tidak boleh ikut dihapus (n ≤ copies available).
func (b *BookModel) RemoveCopies(n int) bool {
	if n <= 0 || n > b.BooksTotalCopies || n > b.BooksCopiesAvailable {
		return false
	}
	b.BooksTotalCopies -= n
	b.BooksCopiesAvailable -= n
	if b.BooksCopiesAvailable == 0 {
		b.BooksStatus = BookStatusBorrowed
	}
	return true
}

// ReconcileStatus menyelaraskan pasangan AVAILABLE/BORROWED dengan stok
// setelah perubahan manual (update admin). Status administratif lain
// (RESERVED, MAINTENANCE, LOST, DAMAGED) dibiarkan.
func (b *BookModel) ReconcileStatus() {
	switch {
	case b.BooksStatus == BookStatusAvailable && b.BooksCopiesAvailable == 0:
		b.BooksStatus = BookStatusBorrowed
	case b.BooksStatus == BookStatusBorrowed && b.BooksCopiesAvailable > 0:
		b.BooksStatus = BookStatusAvailable
	}
}

// AvailabilityPercentage: persentase copy yang tersedia (0 kalau total 0).
func (b *BookModel) AvailabilityPercentage() float64 {
	if b.BooksTotalCopies == 0 {
		return 0.0
	}
	return float64(b.BooksCopiesAvailable) / float64(b.BooksTotalCopies) * 100
}
