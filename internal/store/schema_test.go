package store

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestSchemaGeneration(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()
	mock.MatchExpectationsInOrder(false)

	// trips exists, bill columns missing, staff_share present: "no-bills".
	mock.ExpectQuery("information_schema\\.tables").WithArgs("trips").
		WillReturnRows(sqlmock.NewRows([]string{"table_name"}).AddRow("trips"))
	mock.ExpectQuery("information_schema\\.columns").WithArgs("trips", "fuel_bill_url").
		WillReturnRows(sqlmock.NewRows([]string{"column_name"}))
	mock.ExpectQuery("information_schema\\.columns").WithArgs("trips", "staff_share").
		WillReturnRows(sqlmock.NewRows([]string{"column_name"}).AddRow("staff_share"))

	s := &RemoteStore{DB: db}
	if got := s.SchemaGeneration(); got != "no-bills" {
		t.Fatalf("generation = %q, want no-bills", got)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestSchemaGenerationMissingTable(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("information_schema\\.tables").WithArgs("trips").
		WillReturnRows(sqlmock.NewRows([]string{"table_name"}))

	s := &RemoteStore{DB: db}
	if got := s.SchemaGeneration(); got != "missing" {
		t.Fatalf("generation = %q, want missing", got)
	}
}
