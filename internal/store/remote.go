package store

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/c51838777-max/santakrit/internal/domain"
	"github.com/c51838777-max/santakrit/internal/utils"
)

// RemoteStore wraps the hosted trips table. Column names are not guaranteed
// to match the canonical shape, so reads come back as raw records for the
// normalizer and writes go through the ordered shape fallback.
type RemoteStore struct {
	DB *sql.DB
}

// Probe runs the trivial read used to decide remote vs local mode. An empty
// table is fine; anything the store refuses to answer is a failure.
func (s *RemoteStore) Probe() error {
	if s == nil || s.DB == nil {
		return fmt.Errorf("no database handle")
	}
	var n int
	return s.DB.QueryRow(`SELECT COUNT(*) FROM trips`).Scan(&n)
}

// FetchTrips returns every trips row as a raw record, newest date first.
// SELECT * keeps reads working no matter which schema generation the
// deployment carries; the normalizer sorts the columns out.
func (s *RemoteStore) FetchTrips() ([]domain.Raw, error) {
	return s.fetchAll(`SELECT * FROM trips ORDER BY date DESC, id DESC`)
}

// FetchPresets returns every route_presets row as a raw record.
func (s *RemoteStore) FetchPresets() ([]domain.Raw, error) {
	return s.fetchAll(`SELECT * FROM route_presets`)
}

func (s *RemoteStore) fetchAll(query string, args ...any) ([]domain.Raw, error) {
	rows, err := s.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	out := []domain.Raw{}
	for rows.Next() {
		vals := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range vals {
			ptrs[i] = &vals[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return out, err
		}
		rec := domain.Raw{}
		for i, c := range cols {
			rec[c] = vals[i]
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// InsertTrip attempts each payload shape in order and stops at the first
// the store accepts, then re-reads the stored row so the caller normalizes
// what was actually persisted, not what we happened to send.
func (s *RemoteStore) InsertTrip(t domain.Trip) (domain.Raw, error) {
	var lastErr error
	for _, shape := range tripShapes {
		cols := shape.columns()
		marks := strings.TrimSuffix(strings.Repeat("?,", len(cols)), ",")
		query := fmt.Sprintf(`INSERT INTO trips (%s) VALUES (%s)`, strings.Join(cols, ", "), marks)

		res, err := s.DB.Exec(query, shape.values(t)...)
		if err != nil {
			utils.LogEvent("", "store", "insert_shape_rejected", fmt.Sprintf("shape=%s err=%v", shape.name, err))
			lastErr = err
			continue
		}

		id, _ := res.LastInsertId()
		row, err := s.readTrip(id)
		if err != nil {
			// Write landed but the confirmation read failed; fall back
			// to what this shape sent so the caller is not left empty.
			row = domain.Raw{"id": id}
			vals := shape.values(t)
			for i, c := range cols {
				row[c] = vals[i]
			}
		}
		return row, nil
	}
	return nil, domain.UnavailableError{Op: "insert trip", Err: lastErr}
}

// UpdateTrip runs the same ordered shape fallback as InsertTrip against an
// existing row.
func (s *RemoteStore) UpdateTrip(id int64, t domain.Trip) error {
	var lastErr error
	for _, shape := range tripShapes {
		sets := make([]string, len(shape.fields))
		for i, f := range shape.fields {
			sets[i] = f.col + "=?"
		}
		query := fmt.Sprintf(`UPDATE trips SET %s WHERE id=?`, strings.Join(sets, ", "))
		args := append(shape.values(t), id)

		if _, err := s.DB.Exec(query, args...); err != nil {
			utils.LogEvent("", "store", "update_shape_rejected", fmt.Sprintf("shape=%s err=%v", shape.name, err))
			lastErr = err
			continue
		}
		return nil
	}
	return domain.UnavailableError{Op: "update trip", Err: lastErr}
}

func (s *RemoteStore) DeleteTrip(id int64) error {
	_, err := s.DB.Exec(`DELETE FROM trips WHERE id=?`, id)
	return err
}

func (s *RemoteStore) DeletePreset(route string) error {
	_, err := s.DB.Exec(`DELETE FROM route_presets WHERE route_name=?`, route)
	return err
}

func (s *RemoteStore) readTrip(id int64) (domain.Raw, error) {
	rows, err := s.fetchAll(`SELECT * FROM trips WHERE id=?`, id)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, sql.ErrNoRows
	}
	return rows[0], nil
}

// SchemaGeneration reports which trips schema generation this deployment
// carries, named after the payload shape its columns can accept. Diagnostic
// only; writes always walk the full fallback order.
func (s *RemoteStore) SchemaGeneration() string {
	switch {
	case !HasTable(s.DB, "trips"):
		return "missing"
	case HasColumn(s.DB, "trips", "fuel_bill_url"):
		return "full"
	case HasColumn(s.DB, "trips", "staff_share"):
		return "no-bills"
	case HasColumn(s.DB, "trips", "basket_share"):
		return "legacy-names"
	default:
		return "minimal"
	}
}

// Fingerprint is a cheap change indicator for the poll watcher. MySQL has
// no push channel, so the adapter re-fetches whenever this moves.
func (s *RemoteStore) Fingerprint() (string, error) {
	var count int
	var maxID int64
	err := s.DB.QueryRow(`SELECT COUNT(*), COALESCE(MAX(id),0) FROM trips`).Scan(&count, &maxID)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%d:%d", count, maxID), nil
}
