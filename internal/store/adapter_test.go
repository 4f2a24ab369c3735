package store

import (
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/c51838777-max/santakrit/internal/domain"
)

func tripColumns() []string {
	return []string{"id", "date", "driver_name", "route", "price", "fuel", "wage", "maintenance", "basket_count", "basket", "staff_share", "advance", "profit"}
}

func openRemote(t *testing.T, mock sqlmock.Sqlmock, db *sql.DB) *Adapter {
	t.Helper()
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM trips`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`SELECT \* FROM trips ORDER BY`).
		WillReturnRows(sqlmock.NewRows(tripColumns()).
			AddRow(int64(1), "2024-03-05", "Somchai", "BKK-CNX", 5000.0, 600.0, 1200.0, 300.0, int64(91), 600.0, 400.0, 200.0, 3100.0))
	mock.ExpectQuery(`SELECT \* FROM route_presets`).
		WillReturnRows(sqlmock.NewRows([]string{"route_name", "price", "wage"}).
			AddRow("BKK-CNX", 5000.0, 1200.0))

	a := Open(&RemoteStore{DB: db}, NewCache(t.TempDir()))
	if a.Mode() != ModeRemote {
		t.Fatalf("mode = %s, want remote", a.Mode())
	}
	return a
}

func TestOpenRemoteNormalizesFetchedRows(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	a := openRemote(t, mock, db)

	trips := a.Trips()
	if len(trips) != 1 {
		t.Fatalf("trips = %d, want 1", len(trips))
	}
	got := trips[0]
	if got.DriverName != "Somchai" || got.BasketShare != 400 || got.StaffShare != 200 {
		t.Fatalf("normalized trip wrong: %+v", got)
	}
	if p, ok := a.Presets()["BKK-CNX"]; !ok || p.Wage != 1200 {
		t.Fatalf("presets = %+v", a.Presets())
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestInsertTripShapeFallback(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	a := openRemote(t, mock, db)

	// Older schema: the three richer shapes bounce off unknown columns,
	// the minimal shape lands.
	unknownColumn := errors.New("Error 1054: Unknown column 'driver_name' in 'field list'")
	mock.ExpectExec("INSERT INTO trips").WillReturnError(unknownColumn)
	mock.ExpectExec("INSERT INTO trips").WillReturnError(unknownColumn)
	mock.ExpectExec("INSERT INTO trips").WillReturnError(errors.New("Error 1054: Unknown column 'basket_share' in 'field list'"))
	mock.ExpectExec("INSERT INTO trips").WillReturnResult(sqlmock.NewResult(9, 1))
	mock.ExpectQuery(`SELECT \* FROM trips WHERE id`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "date", "route", "price", "fuel", "wage", "profit"}).
			AddRow(int64(9), "2024-03-06", "BKK-HDY", 7000.0, 900.0, 1500.0, 4600.0))

	stored, err := a.InsertTrip(domain.Trip{
		Date: "2024-03-06", DriverName: "Anan", Route: "BKK-HDY",
		Price: 7000, Fuel: 900, Wage: 1500, Profit: 4600,
	})
	if err != nil {
		t.Fatalf("insert error: %v", err)
	}
	if stored.ID != 9 {
		t.Fatalf("stored id = %d, want 9", stored.ID)
	}
	if len(a.Trips()) != 2 {
		t.Fatalf("collection = %d trips, want 2", len(a.Trips()))
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestInsertTripAllShapesRejected(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	a := openRemote(t, mock, db)

	reject := errors.New("Error 1142: INSERT command denied")
	for i := 0; i < 4; i++ {
		mock.ExpectExec("INSERT INTO trips").WillReturnError(reject)
	}

	_, err = a.InsertTrip(domain.Trip{Date: "2024-03-06", Route: "BKK-HDY"})
	if !domain.IsUnavailable(err) {
		t.Fatalf("error = %v, want unavailable", err)
	}
	if len(a.Trips()) != 1 {
		t.Fatalf("rejected insert mutated the collection: %d trips", len(a.Trips()))
	}
}

func TestUpdateTripRemoteFailureTolerated(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	a := openRemote(t, mock, db)

	reject := errors.New("Error 1142: UPDATE command denied")
	for i := 0; i < 4; i++ {
		mock.ExpectExec("UPDATE trips").WillReturnError(reject)
	}

	updated, err := a.UpdateTrip(1, domain.Trip{Date: "2024-03-05", DriverName: "Somchai", Route: "BKK-CNX", Wage: 1300})
	if err != nil {
		t.Fatalf("update should tolerate remote failure, got %v", err)
	}
	if updated.Wage != 1300 {
		t.Fatalf("updated wage = %v", updated.Wage)
	}
	if got := a.Trips()[0].Wage; got != 1300 {
		t.Fatalf("in-memory wage = %v, want 1300", got)
	}
}

func TestUpdateTripUnknownID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	a := openRemote(t, mock, db)

	_, err = a.UpdateTrip(999, domain.Trip{Route: "X"})
	if !domain.IsNotFound(err) {
		t.Fatalf("error = %v, want not found", err)
	}
}

func TestOpenFallsBackToLocalCache(t *testing.T) {
	dir := t.TempDir()
	cache := NewCache(dir)
	seed := []domain.Trip{{ID: 5, Date: "2024-03-01", DriverName: "Somchai", Route: "BKK-CNX"}}
	if err := cache.SaveTrips(seed); err != nil {
		t.Fatalf("seed cache: %v", err)
	}

	a := Open(&RemoteStore{}, cache)
	if a.Mode() != ModeLocal {
		t.Fatalf("mode = %s, want local", a.Mode())
	}
	if trips := a.Trips(); len(trips) != 1 || trips[0].ID != 5 {
		t.Fatalf("cached trips not served: %+v", trips)
	}
}

func TestLocalInsertAssignsIDAndPersists(t *testing.T) {
	dir := t.TempDir()
	a := Open(&RemoteStore{}, NewCache(dir))
	if a.Mode() != ModeLocal {
		t.Fatalf("mode = %s, want local", a.Mode())
	}

	stored, err := a.InsertTrip(domain.Trip{Date: "2024-03-06", DriverName: "Anan", Route: "BKK-HDY"})
	if err != nil {
		t.Fatalf("local insert: %v", err)
	}
	if stored.ID <= 0 {
		t.Fatalf("no id assigned: %+v", stored)
	}

	// A restart in local mode serves the snapshot.
	b := Open(&RemoteStore{}, NewCache(dir))
	if trips := b.Trips(); len(trips) != 1 || trips[0].ID != stored.ID {
		t.Fatalf("snapshot not reloaded: %+v", trips)
	}
}

func TestDeleteTripOptimistic(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	a := openRemote(t, mock, db)

	mock.ExpectExec("DELETE FROM trips").WillReturnError(errors.New("gone away"))
	a.DeleteTrip(1)
	if len(a.Trips()) != 0 {
		t.Fatalf("delete did not remove trip: %d left", len(a.Trips()))
	}
}
