package db

import (
	"database/sql"
	"errors"
)

// ErrNotFound reports that a write targeted a row that does not exist.
// Handlers map it to 404.
var ErrNotFound = errors.New("row not found")

func requireRow(result sql.Result) error {
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
