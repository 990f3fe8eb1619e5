package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	BookModel "perpustakaanku_backend/internals/features/library/books/model"
	BorrowingModel "perpustakaanku_backend/internals/features/library/borrowings/model"
	UserModel "perpustakaanku_backend/internals/features/library/users/model"
)

var DB *gorm.DB

func ConnectDB() {
	log.Println("🔌 Koneksi ke PostgreSQL...")

	// ✅ Gunakan URL/DSN lengkap + statement_timeout
	// Catatan: kalau pakai PgBouncer, ganti host/port ke port PgBouncer dan biarkan PreferSimpleProtocol=true
	sslmode := getenv("DB_SSLMODE", "require")
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=perpustakaanku&options=-c statement_timeout=3000",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
		sslmode,
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // 👍 cocok untuk PgBouncer (transaction pooling)
	}), &gorm.Config{})
	if err != nil {
		log.Fatalf("❌ Gagal konek DB: %v", err)
	}
	DB = db
	log.Println("✅ DB connected.")
}

func TunePool() {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Printf("pool tune err: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

// MigrateModels menjalankan AutoMigrate untuk ketiga relasi inti:
// books, users, borrowing_records.
func MigrateModels() {
	if err := DB.AutoMigrate(
		&BookModel.BookModel{},
		&UserModel.UserModel{},
		&BorrowingModel.BorrowingRecordModel{},
	); err != nil {
		log.Fatalf("❌ Gagal migrate: %v", err)
	}
	log.Println("✅ Migrasi model selesai.")
}

func WarmUpQueries() {
	// jalankan ringan supaya koneksi/pool siap dipakai
	go func() {
		time.Sleep(500 * time.Millisecond)
		if err := ping(); err != nil {
			log.Printf("warm-up ping err: %v", err)
			return
		}
		var n int64
		_ = DB.Table("books").Count(&n).Error
		log.Printf("🔥 Warm-up selesai (books=%d)", n)
	}()
}

func ping() error {
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
