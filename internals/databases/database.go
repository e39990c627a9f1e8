package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"pabrikku_backend/internals/configs"
	chatModel "pabrikku_backend/internals/features/messaging/chat/model"
	notifModel "pabrikku_backend/internals/features/messaging/notifications/model"
	lineModel "pabrikku_backend/internals/features/production/lines/model"
	productModel "pabrikku_backend/internals/features/production/products/model"
	authModel "pabrikku_backend/internals/features/users/auth/model"
	userModel "pabrikku_backend/internals/features/users/user/model"
	assignmentModel "pabrikku_backend/internals/features/workforce/assignments/model"
	perfModel "pabrikku_backend/internals/features/workforce/performance/model"
	workerModel "pabrikku_backend/internals/features/workforce/workers/model"
)

var DB *gorm.DB

func ConnectDB() {
	log.Println("🔌 Koneksi ke PostgreSQL...")

	// ✅ Gunakan URL/DSN lengkap + statement_timeout
	// Catatan: kalau pakai PgBouncer, ganti host/port ke port PgBouncer dan biarkan PreferSimpleProtocol=true
	sslmode := getenv("DB_SSLMODE", "require")
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=pabrikku&options=-c statement_timeout=3000",
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
	}), &gorm.Config{Logger: configs.NewGormLogger()})
	if err != nil {
		log.Fatalf("❌ Gagal konek DB: %v", err)
	}
	DB = db
	log.Println("✅ DB connected.")
}

// MigrateAll jalankan AutoMigrate seluruh model domain. Index komposit
// uq_assignments_worker_date_shift ikut dibuat di sini.
func MigrateAll(db *gorm.DB) error {
	log.Println("📦 AutoMigrate schema...")
	if err := db.AutoMigrate(
		&userModel.UserModel{},
		&authModel.RefreshTokenModel{},
		&authModel.TokenBlacklistModel{},
		&workerModel.WorkerModel{},
		&lineModel.ProductionLineModel{},
		&productModel.ProductModel{},
		&assignmentModel.AssignmentModel{},
		&perfModel.PerformanceRecordModel{},
		&chatModel.ChatMessageModel{},
		&notifModel.NotificationModel{},
	); err != nil {
		return err
	}
	log.Println("✅ Schema siap.")
	return nil
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

func WarmUpQueries() {
	// jalankan ringan supaya koneksi/pool “keisi” & siap
	go func() {
		time.Sleep(500 * time.Millisecond) // beri waktu server naik
		if err := ping(); err != nil {
			log.Printf("warm-up ping err: %v", err)
		}
	}()
}

func ping() error {
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
