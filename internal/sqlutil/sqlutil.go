// Package sqlutil holds small database/sql helpers shared by storage
// code.
package sqlutil

import "database/sql"

// ScanRows drains rows into a slice using scan for each row, closing
// the rows in all cases.
func ScanRows[T any](rows *sql.Rows, scan func(*sql.Rows) (T, error)) ([]T, error) {
	defer rows.Close()

	var out []T
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, rows.Err()
}

// QueryCount runs a single-count query and returns the value.
func QueryCount(db *sql.DB, query string, args ...any) (int, error) {
	var n int
	if err := db.QueryRow(query, args...).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}
