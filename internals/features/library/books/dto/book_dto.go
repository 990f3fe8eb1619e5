// internals/features/library/books/dto/book_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	model "perpustakaanku_backend/internals/features/library/books/model"
)

/* =========================
   REQUEST
   ========================= */

type BookCreateRequest struct {
	BooksTitle           string  `json:"books_title"            validate:"required,min=1,max=255"`
	BooksAuthor          string  `json:"books_author"           validate:"required,min=1,max=255"`
	BooksISBN            string  `json:"books_isbn"             validate:"required,isbn"`
	BooksPublisher       string  `json:"books_publisher"        validate:"required,min=1,max=255"`
	BooksPublicationDate string  `json:"books_publication_date" validate:"required,datetime=2006-01-02"`
	BooksCategory        string  `json:"books_category"         validate:"required,min=1,max=100"`
	BooksPages           int     `json:"books_pages"            validate:"required,min=1,max=10000"`
	BooksPrice           float64 `json:"books_price"            validate:"required,gt=0"`
	BooksDescription     *string `json:"books_description,omitempty" validate:"omitempty,max=1000"`
	BooksLanguage        *string `json:"books_language,omitempty"    validate:"omitempty,min=2,max=50"`
	BooksCoverImageURL   *string `json:"books_cover_image_url,omitempty" validate:"omitempty,max=500"`
	BooksTotalCopies     *int    `json:"books_total_copies,omitempty"     validate:"omitempty,min=1"`
	BooksCopiesAvailable *int    `json:"books_copies_available,omitempty" validate:"omitempty,min=0"`
}

type BookUpdateRequest struct {
	BooksTitle           *string  `json:"books_title,omitempty"            validate:"omitempty,min=1,max=255"`
	BooksAuthor          *string  `json:"books_author,omitempty"           validate:"omitempty,min=1,max=255"`
	BooksISBN            *string  `json:"books_isbn,omitempty"             validate:"omitempty,isbn"`
	BooksPublisher       *string  `json:"books_publisher,omitempty"        validate:"omitempty,min=1,max=255"`
	BooksPublicationDate *string  `json:"books_publication_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	BooksCategory        *string  `json:"books_category,omitempty"         validate:"omitempty,min=1,max=100"`
	BooksPages           *int     `json:"books_pages,omitempty"            validate:"omitempty,min=1,max=10000"`
	BooksPrice           *float64 `json:"books_price,omitempty"            validate:"omitempty,gt=0"`
	BooksDescription     *string  `json:"books_description,omitempty"      validate:"omitempty,max=1000"`
	BooksLanguage        *string  `json:"books_language,omitempty"         validate:"omitempty,min=2,max=50"`
	BooksCoverImageURL   *string  `json:"books_cover_image_url,omitempty"  validate:"omitempty,max=500"`
	BooksTotalCopies     *int     `json:"books_total_copies,omitempty"     validate:"omitempty,min=1"`
	BooksStatus          *string  `json:"books_status,omitempty"`
}

// Body untuk POST /:id/add-copies dan /:id/remove-copies
type BookAdjustCopiesRequest struct {
	Copies int `json:"copies" validate:"required,min=1"`
}

/* =========================
   NORMALIZER
   ========================= */

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}
	return &t
}

func (r *BookCreateRequest) Normalize() {
	r.BooksTitle = strings.TrimSpace(r.BooksTitle)
	r.BooksAuthor = strings.TrimSpace(r.BooksAuthor)
	r.BooksISBN = strings.TrimSpace(r.BooksISBN)
	r.BooksPublisher = strings.TrimSpace(r.BooksPublisher)
	r.BooksCategory = strings.TrimSpace(r.BooksCategory)
	r.BooksDescription = trimPtr(r.BooksDescription)
	r.BooksLanguage = trimPtr(r.BooksLanguage)
	r.BooksCoverImageURL = trimPtr(r.BooksCoverImageURL)
}

func (r *BookUpdateRequest) Normalize() {
	r.BooksTitle = trimPtr(r.BooksTitle)
	r.BooksAuthor = trimPtr(r.BooksAuthor)
	r.BooksISBN = trimPtr(r.BooksISBN)
	r.BooksPublisher = trimPtr(r.BooksPublisher)
	r.BooksCategory = trimPtr(r.BooksCategory)
	r.BooksDescription = trimPtr(r.BooksDescription)
	r.BooksLanguage = trimPtr(r.BooksLanguage)
	r.BooksCoverImageURL = trimPtr(r.BooksCoverImageURL)
	if r.BooksStatus != nil {
		s := strings.ToUpper(strings.TrimSpace(*r.BooksStatus))
		r.BooksStatus = &s
	}
}

// ToModel mengubah request jadi model baru.
// copies_available default = total_copies kalau tidak dikirim.
func (r *BookCreateRequest) ToModel() (*model.BookModel, error) {
	pub, err := time.Parse("2006-01-02", r.BooksPublicationDate)
	if err != nil {
		return nil, err
	}

	total := 1
	if r.BooksTotalCopies != nil {
		total = *r.BooksTotalCopies
	}
	available := total
	if r.BooksCopiesAvailable != nil {
		available = *r.BooksCopiesAvailable
	}

	language := "English"
	if r.BooksLanguage != nil {
		language = *r.BooksLanguage
	}

	m := &model.BookModel{
		BooksTitle:           r.BooksTitle,
		BooksAuthor:          r.BooksAuthor,
		BooksISBN:            r.BooksISBN,
		BooksPublisher:       r.BooksPublisher,
		BooksPublicationDate: pub,
		BooksCategory:        r.BooksCategory,
		BooksPages:           r.BooksPages,
		BooksPrice:           r.BooksPrice,
		BooksDescription:     r.BooksDescription,
		BooksLanguage:        language,
		BooksCoverImageURL:   r.BooksCoverImageURL,
		BooksTotalCopies:     total,
		BooksCopiesAvailable: available,
		BooksStatus:          model.BookStatusAvailable,
	}
	return m, nil
}

/* =========================
   RESPONSE
   ========================= */

type BookResponse struct {
	BooksID              uuid.UUID `json:"books_id"`
	BooksTitle           string    `json:"books_title"`
	BooksAuthor          string    `json:"books_author"`
	BooksISBN            string    `json:"books_isbn"`
	BooksPublisher       string    `json:"books_publisher"`
	BooksPublicationDate string    `json:"books_publication_date"`
	BooksCategory        string    `json:"books_category"`
	BooksPages           int       `json:"books_pages"`
	BooksPrice           float64   `json:"books_price"`
	BooksDescription     *string   `json:"books_description,omitempty"`
	BooksLanguage        string    `json:"books_language"`
	BooksCoverImageURL   *string   `json:"books_cover_image_url,omitempty"`
	BooksTotalCopies     int       `json:"books_total_copies"`
	BooksCopiesAvailable int       `json:"books_copies_available"`
	BooksStatus          string    `json:"books_status"`
	BooksAvailability    float64   `json:"books_availability_percentage"`
	BooksCreatedAt       time.Time `json:"books_created_at"`
	BooksUpdatedAt       time.Time `json:"books_updated_at"`
}

func ToBookResponse(m *model.BookModel) BookResponse {
	return BookResponse{
		BooksID:              m.BooksID,
		BooksTitle:           m.BooksTitle,
		BooksAuthor:          m.BooksAuthor,
		BooksISBN:            m.BooksISBN,
		BooksPublisher:       m.BooksPublisher,
		BooksPublicationDate: m.BooksPublicationDate.Format("2006-01-02"),
		BooksCategory:        m.BooksCategory,
		BooksPages:           m.BooksPages,
		BooksPrice:           m.BooksPrice,
		BooksDescription:     m.BooksDescription,
		BooksLanguage:        m.BooksLanguage,
		BooksCoverImageURL:   m.BooksCoverImageURL,
		BooksTotalCopies:     m.BooksTotalCopies,
		BooksCopiesAvailable: m.BooksCopiesAvailable,
		BooksStatus:          m.BooksStatus,
		BooksAvailability:    m.AvailabilityPercentage(),
		BooksCreatedAt:       m.BooksCreatedAt,
		BooksUpdatedAt:       m.BooksUpdatedAt,
	}
}

func ToBookResponses(ms []model.BookModel) []BookResponse {
	out := make([]BookResponse, 0, len(ms))
	for i := range ms {
		out = append(out, ToBookResponse(&ms[i]))
	}
	return out
}

// Statistik koleksi untuk endpoint /statistics
type BookStatisticsResponse struct {
	TotalBooks                    int64   `json:"total_books"`
	AvailableBooks                int64   `json:"available_books"`
	BorrowedBooks                 int64   `json:"borrowed_books"`
	OverdueBooks                  int64   `json:"overdue_books"`
	BooksNeedingRestock           int64   `json:"books_needing_restock"`
	AverageAvailabilityPercentage float64 `json:"average_availability_percentage"`
}
