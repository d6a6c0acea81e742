package store

import (
	"errors"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"logitrack/internal/models"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	// A single connection keeps the in-memory database alive and makes the
	// pragma stick.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	db.Exec("PRAGMA foreign_keys = ON")

	err = db.AutoMigrate(
		&models.User{},
		&models.Client{},
		&models.Cargo{},
		&models.Vehicle{},
		&models.Aircraft{},
		&models.Driver{},
		&models.Pilot{},
		&models.Route{},
		&models.Dispatch{},
	)
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

// seedReferences creates the route/client/cargo a dispatch needs.
func seedReferences(t *testing.T, db *gorm.DB) (models.Route, models.Client, models.Cargo) {
	t.Helper()

	route := models.Route{Code: "R-001", Name: "Lima-Cusco", Origin: "Lima", Destination: "Cusco", TransportType: models.TransportGround}
	if err := db.Create(&route).Error; err != nil {
		t.Fatalf("seed route: %v", err)
	}
	client := models.Client{Code: "C-001", Name: "Acme"}
	if err := db.Create(&client).Error; err != nil {
		t.Fatalf("seed client: %v", err)
	}
	cargo := models.Cargo{Code: "CG-001", Description: "Machine parts", WeightKg: 120, VolumeM3: 2}
	if err := db.Create(&cargo).Error; err != nil {
		t.Fatalf("seed cargo: %v", err)
	}
	return route, client, cargo
}

func seedDispatch(t *testing.T, db *gorm.DB, reference string, mutate func(*models.Dispatch)) models.Dispatch {
	t.Helper()

	route, client, cargo := seedReferences(t, db)
	d := models.Dispatch{
		Reference: reference,
		RouteID:   route.ID,
		ClientID:  client.ID,
		CargoID:   cargo.ID,
	}
	if mutate != nil {
		mutate(&d)
	}
	if err := Create(db, &d); err != nil {
		t.Fatalf("seed dispatch: %v", err)
	}
	return d
}

func TestCreateDuplicateCode(t *testing.T) {
	db := testDB(t)

	first := models.Client{Code: "C-100", Name: "First"}
	if err := Create(db, &first); err != nil {
		t.Fatalf("create: %v", err)
	}

	dup := models.Client{Code: "C-100", Name: "Second"}
	err := Create(db, &dup)
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}

	n, err := Count(db, &models.Client{})
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected 1 client after rejected duplicate, got %d", n)
	}
}

func TestDeleteFreesUniqueCode(t *testing.T) {
	db := testDB(t)

	first := models.Client{Code: "C-200", Name: "First"}
	if err := Create(db, &first); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := Delete[models.Client](db, first.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	// the code must be reusable once its record is gone
	again := models.Client{Code: "C-200", Name: "Second"}
	if err := Create(db, &again); err != nil {
		t.Fatalf("recreate with freed code: %v", err)
	}
}

func TestGetNotFound(t *testing.T) {
	db := testDB(t)
	if _, err := Get[models.Client](db, 42); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := Delete[models.Client](db, 42); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on delete, got %v", err)
	}
}

func TestListFilterSearchOrdering(t *testing.T) {
	db := testDB(t)

	vehicles := []models.Vehicle{
		{Plate: "AAA-111", Make: "Volvo", VehicleModel: "FH16", Year: 2020, CapacityKg: 20000, CapacityVolumeM3: 60, Status: models.VehicleAvailable},
		{Plate: "BBB-222", Make: "Scania", VehicleModel: "R450", Year: 2018, CapacityKg: 18000, CapacityVolumeM3: 55, Status: models.VehicleMaintenance},
		{Plate: "CCC-333", Make: "Volvo", VehicleModel: "FM", Year: 2022, CapacityKg: 15000, CapacityVolumeM3: 48, Status: models.VehicleAvailable},
	}
	for i := range vehicles {
		if err := Create(db, &vehicles[i]); err != nil {
			t.Fatalf("create vehicle: %v", err)
		}
	}

	opt := ListOptions{
		SearchColumns: []string{"plate", "make", "vehicle_model"},
		OrderColumns:  []string{"plate", "year", "created_at"},
		DefaultOrder:  "created_at DESC",
		StatusColumn:  "status",
	}

	got, err := List[models.Vehicle](db, ListQuery{Status: models.VehicleAvailable}, opt)
	if err != nil {
		t.Fatalf("list by status: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("status filter: got %d vehicles, want 2", len(got))
	}

	got, err = List[models.Vehicle](db, ListQuery{Search: "volvo"}, opt)
	if err != nil {
		t.Fatalf("list by search: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("search: got %d vehicles, want 2", len(got))
	}

	got, err = List[models.Vehicle](db, ListQuery{Ordering: "-year"}, opt)
	if err != nil {
		t.Fatalf("list ordered: %v", err)
	}
	if got[0].Plate != "CCC-333" {
		t.Fatalf("ordering -year: first plate %s, want CCC-333", got[0].Plate)
	}

	// an ordering outside the allow-list falls back to the default
	got, err = List[models.Vehicle](db, ListQuery{Ordering: "capacity_kg"}, opt)
	if err != nil {
		t.Fatalf("list with disallowed ordering: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected full set, got %d", len(got))
	}
}

func TestSavePreservesCreateOnlyFields(t *testing.T) {
	db := testDB(t)

	creator := uint(9)
	d := seedDispatch(t, db, "DSP-001", func(d *models.Dispatch) {
		d.CreatedByID = &creator
	})

	var stored models.Dispatch
	if err := db.First(&stored, d.ID).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	requestedAt := stored.RequestedAt
	if requestedAt.IsZero() {
		t.Fatalf("requested_at not stamped on create")
	}

	// a later save under a different principal changes neither field
	other := uint(12)
	later := time.Now().Add(48 * time.Hour)
	stored.Notes = "rescheduled"
	stored.CreatedByID = &other
	stored.RequestedAt = later
	if err := Save(db, &stored); err != nil {
		t.Fatalf("save: %v", err)
	}

	var reloaded models.Dispatch
	if err := db.First(&reloaded, d.ID).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	if reloaded.Notes != "rescheduled" {
		t.Fatalf("mutable field not saved")
	}
	if !reloaded.RequestedAt.Equal(requestedAt) {
		t.Fatalf("requested_at changed: %v -> %v", requestedAt, reloaded.RequestedAt)
	}
	if reloaded.CreatedByID == nil || *reloaded.CreatedByID != creator {
		t.Fatalf("created_by changed: %v", reloaded.CreatedByID)
	}
}
