package store

import (
	"errors"
	"testing"
	"time"

	"logitrack/internal/models"
)

func TestMarkEnRoute(t *testing.T) {
	db := testDB(t)

	route, client, cargo := seedReferences(t, db)
	var ids []uint
	for _, ref := range []string{"DSP-001", "DSP-002", "DSP-003"} {
		d := models.Dispatch{Reference: ref, RouteID: route.ID, ClientID: client.ID, CargoID: cargo.ID}
		if err := Create(db, &d); err != nil {
			t.Fatalf("create dispatch: %v", err)
		}
		ids = append(ids, d.ID)
	}

	updated, err := MarkEnRoute(db, ids)
	if err != nil {
		t.Fatalf("MarkEnRoute: %v", err)
	}
	if updated != 3 {
		t.Fatalf("updated = %d, want 3", updated)
	}

	n, err := Count(db, &models.Dispatch{}, "status = ?", models.DispatchEnRoute)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 3 {
		t.Fatalf("en_route count = %d, want 3", n)
	}
}

func TestMarkEnRouteIgnoresPriorStatus(t *testing.T) {
	db := testDB(t)

	// the bulk action is deliberately permissive: even a cancelled dispatch
	// transitions
	d := seedDispatch(t, db, "DSP-010", func(d *models.Dispatch) {
		d.Status = models.DispatchCancelled
	})

	updated, err := MarkEnRoute(db, []uint{d.ID})
	if err != nil {
		t.Fatalf("MarkEnRoute: %v", err)
	}
	if updated != 1 {
		t.Fatalf("updated = %d, want 1", updated)
	}
}

func TestMarkDelivered(t *testing.T) {
	db := testDB(t)

	d := seedDispatch(t, db, "DSP-020", nil)
	at := time.Now().Truncate(time.Second)

	updated, err := MarkDelivered(db, []uint{d.ID}, at)
	if err != nil {
		t.Fatalf("MarkDelivered: %v", err)
	}
	if updated != 1 {
		t.Fatalf("updated = %d, want 1", updated)
	}

	var reloaded models.Dispatch
	if err := db.First(&reloaded, d.ID).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	if reloaded.Status != models.DispatchDelivered {
		t.Fatalf("status = %s, want delivered", reloaded.Status)
	}
	if reloaded.DeliveredAt == nil || !reloaded.DeliveredAt.Equal(at) {
		t.Fatalf("delivered_at = %v, want %v", reloaded.DeliveredAt, at)
	}
}

func TestDeleteProtectedRoute(t *testing.T) {
	db := testDB(t)

	d := seedDispatch(t, db, "DSP-030", nil)

	err := DeleteProtected[models.Route](db, d.RouteID, "route_id")
	if !errors.Is(err, ErrProtected) {
		t.Fatalf("expected ErrProtected, got %v", err)
	}

	// route and dispatch both unchanged
	if _, err := Get[models.Route](db, d.RouteID); err != nil {
		t.Fatalf("route gone after rejected delete: %v", err)
	}
	if _, err := Get[models.Dispatch](db, d.ID); err != nil {
		t.Fatalf("dispatch gone after rejected delete: %v", err)
	}

	// once the dispatch is removed the route delete goes through
	if err := Delete[models.Dispatch](db, d.ID); err != nil {
		t.Fatalf("delete dispatch: %v", err)
	}
	if err := DeleteProtected[models.Route](db, d.RouteID, "route_id"); err != nil {
		t.Fatalf("delete unreferenced route: %v", err)
	}
}

func TestDeleteClearingVehicle(t *testing.T) {
	db := testDB(t)

	vehicle := models.Vehicle{Plate: "XYZ-987", Make: "Volvo", VehicleModel: "FH16", Year: 2021, CapacityKg: 20000, CapacityVolumeM3: 60}
	if err := Create(db, &vehicle); err != nil {
		t.Fatalf("create vehicle: %v", err)
	}

	d := seedDispatch(t, db, "DSP-040", func(d *models.Dispatch) {
		d.VehicleID = &vehicle.ID
	})

	if err := DeleteClearing[models.Vehicle](db, vehicle.ID, "vehicle_id"); err != nil {
		t.Fatalf("DeleteClearing: %v", err)
	}

	if _, err := Get[models.Vehicle](db, vehicle.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("vehicle still present: %v", err)
	}

	var reloaded models.Dispatch
	if err := db.First(&reloaded, d.ID).Error; err != nil {
		t.Fatalf("reload dispatch: %v", err)
	}
	if reloaded.VehicleID != nil {
		t.Fatalf("vehicle reference not cleared: %v", *reloaded.VehicleID)
	}
}

func TestDeleteClearingMissingRecord(t *testing.T) {
	db := testDB(t)
	if err := DeleteClearing[models.Driver](db, 99, "driver_id"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCountDelayed(t *testing.T) {
	db := testDB(t)

	route, client, cargo := seedReferences(t, db)
	now := time.Now()
	past := now.Add(-72 * time.Hour)
	future := now.Add(72 * time.Hour)

	fixtures := []struct {
		ref       string
		status    string
		scheduled *time.Time
	}{
		{"DSP-050", models.DispatchPending, &past},    // delayed
		{"DSP-051", models.DispatchEnRoute, &past},    // delayed
		{"DSP-052", models.DispatchPending, &future},  // on time
		{"DSP-053", models.DispatchDelivered, &past},  // finished
		{"DSP-054", models.DispatchPending, nil},      // never scheduled
	}
	for _, f := range fixtures {
		d := models.Dispatch{
			Reference:   f.ref,
			RouteID:     route.ID,
			ClientID:    client.ID,
			CargoID:     cargo.ID,
			Status:      f.status,
			ScheduledAt: f.scheduled,
		}
		if err := Create(db, &d); err != nil {
			t.Fatalf("create %s: %v", f.ref, err)
		}
	}

	n, err := CountDelayed(db, now)
	if err != nil {
		t.Fatalf("CountDelayed: %v", err)
	}
	if n != 2 {
		t.Fatalf("delayed count = %d, want 2", n)
	}
}
