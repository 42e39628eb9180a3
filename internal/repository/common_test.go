package repository

import (
	"context"
	"go-parking-management/config"
	"go-parking-management/internal/database"
	"log"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var testDB *pgxpool.Pool

func TestMain(m *testing.M) {
	cfg := config.LoadTestConfig()

	var err error
	testDB, err = database.InitDatabase(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to initialize test database: %v", err)
	}

	if err := testDB.Ping(context.Background()); err != nil {
		log.Fatalf("Failed to ping test database: %v", err)
	}

	log.Println("Test database connected successfully")
	log.Println("Running repository tests...")

	code := m.Run()

	testDB.Close()
	log.Println("Test database closed")

	os.Exit(code)
}

func setupTestWithTruncate(t *testing.T) {
	t.Helper()
	ctx := context.Background()

	_, err := testDB.Exec(ctx, "TRUNCATE car_entries, vehicles, parking_slots, users RESTART IDENTITY CASCADE")
	if err != nil {
		t.Fatalf("Failed to truncate tables: %v", err)
	}
}

func getTestDB() *pgxpool.Pool {
	if testDB == nil {
		panic("testDB is not initialized. Make sure TestMain has run.")
	}
	return testDB
}

func createTestSlot(t *testing.T, code string, feePerHour float64, totalSpaces, availableSpaces int) int {
	t.Helper()
	ctx := context.Background()

	query := `
		INSERT INTO parking_slots (code, name, location, fee_per_hour, total_spaces, available_spaces)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	var id int
	err := testDB.QueryRow(ctx, query, code, "Test Lot "+code, "Block T", feePerHour, totalSpaces, availableSpaces).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test slot: %v", err)
	}

	return id
}

func createTestUser(t *testing.T, email string) int {
	t.Helper()
	ctx := context.Background()

	query := `
		INSERT INTO users (first_name, last_name, email, password, role, verified)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	var id int
	err := testDB.QueryRow(ctx, query, "Test", "User", email, "hashed", "user", true).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}

	return id
}

func createTestEntry(t *testing.T, plate, code, ticket string, entryTime time.Time, exitTime *time.Time, amount float64) int {
	t.Helper()
	ctx := context.Background()

	query := `
		INSERT INTO car_entries (plate_number, parking_code, entry_time, exit_time, amount, ticket_number)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	var id int
	err := testDB.QueryRow(ctx, query, plate, code, entryTime, exitTime, amount, ticket).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test entry: %v", err)
	}

	return id
}

func inTx(t *testing.T, fn func(tx pgx.Tx) error) {
	t.Helper()
	ctx := context.Background()

	tx, err := testDB.Begin(ctx)
	if err != nil {
		t.Fatalf("Failed to begin tx: %v", err)
	}

	if err := fn(tx); err != nil {
		_ = tx.Rollback(ctx)
		t.Fatalf("tx func failed: %v", err)
	}

	if err := tx.Commit(ctx); err != nil {
		t.Fatalf("Failed to commit tx: %v", err)
	}
}
