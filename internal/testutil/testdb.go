package testutil

import (
	"context"
	"strings"
	"testing"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/charlinto/MedRemApp/internal/domain"
	"github.com/charlinto/MedRemApp/internal/infra/repository"
	"github.com/charlinto/MedRemApp/internal/observability/logging"
)

// reminderTables lists every table Migrate creates, children first.
var reminderTables = []string{"reminder_occurrences", "medication_schedules", "schedule_owners"}

type TestDB struct {
	Container testcontainers.Container
	DB        *gorm.DB
	DSN       string
}

// SetupTestDB starts a postgres container and migrates the record store
// schema into it. Callers skip in -short mode.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:17-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		postgres.BasicWaitStrategies(),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}

	dsn, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("failed to get connection string: %v", err)
	}

	db, err := gorm.Open(pgdriver.Open(dsn), &gorm.Config{
		Logger: logging.NewGormLogger(0).LogMode(gormlogger.Error),
	})
	if err != nil {
		t.Fatalf("failed to connect to database: %v", err)
	}

	if err := repository.Migrate(ctx, db); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	return &TestDB{
		Container: pgContainer,
		DB:        db,
		DSN:       dsn,
	}
}

func (tdb *TestDB) TeardownTestDB(t *testing.T) {
	t.Helper()

	if err := tdb.Container.Terminate(context.Background()); err != nil {
		t.Logf("failed to terminate container: %v", err)
	}
}

// Store returns a RecordStore backed by the container database.
func (tdb *TestDB) Store() domain.RecordStore {
	return repository.NewRecordStore(tdb.DB)
}

func (tdb *TestDB) CleanTables(t *testing.T) {
	t.Helper()

	if err := tdb.DB.Exec("TRUNCATE TABLE " + strings.Join(reminderTables, ", ")).Error; err != nil {
		t.Fatalf("failed to clean tables: %v", err)
	}
}

// SeedOwner stores a contact record for ownerID and returns it.
func (tdb *TestDB) SeedOwner(t *testing.T, ownerID domain.OwnerID, email, deviceToken string) *domain.Owner {
	t.Helper()

	owner, err := domain.NewOwner(ownerID, email, deviceToken)
	if err != nil {
		t.Fatalf("failed to build owner: %v", err)
	}

	if err := tdb.Store().Owners().Save(context.Background(), owner); err != nil {
		t.Fatalf("failed to seed owner: %v", err)
	}

	return owner
}
