// file: internals/databases/database.go
package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	attendanceModel "examhall_backend/internals/features/exam/attendance/model"
	examModel "examhall_backend/internals/features/exam/exams/model"
	masterModel "examhall_backend/internals/features/exam/masters/model"
)

var DB *gorm.DB

func ConnectDB() {
	log.Println("🔌 Connecting to PostgreSQL...")

	// Full DSN + statement_timeout. With PgBouncer, point host/port at the
	// bouncer and keep PreferSimpleProtocol=true (transaction pooling).
	sslmode := getenv("DB_SSLMODE", "require")
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=examhall&options=-c statement_timeout=3000",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
		sslmode,
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
	if err != nil {
		log.Fatalf("❌ DB connect failed: %v", err)
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

// Migrate creates/updates the schema, including the composite unique
// indexes that back the seating and invigilation invariants.
func Migrate() {
	if err := DB.AutoMigrate(
		&masterModel.DepartmentModel{},
		&masterModel.HallModel{},
		&masterModel.StudentModel{},
		&masterModel.TeacherModel{},
		&examModel.ExamModel{},
		&examModel.SeatingAllocationModel{},
		&examModel.InvigilationAssignmentModel{},
		&attendanceModel.AttendanceRecordModel{},
	); err != nil {
		log.Fatalf("❌ migration failed: %v", err)
	}
	log.Println("✅ migration done.")
}

func WarmUpQueries() {
	// light-touch warm-up so the pool is filled and ready
	go func() {
		time.Sleep(500 * time.Millisecond)
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
