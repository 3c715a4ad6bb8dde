// Package repository provides Postgres-backed persistence for the metro
// domain.
//
// Owner scoping follows one uniform policy: every query on a rider-owned
// record carries `AND user_id=$n` in its WHERE clause, and both a missing row
// and a row owned by someone else surface as pgx.ErrNoRows. Callers therefore
// cannot distinguish "does not exist" from "not yours".
package repository

import "github.com/jackc/pgx/v5"

// rowsAffected converts a zero-row command result into pgx.ErrNoRows so that
// owner-scoped updates and deletes fail the same way as owner-scoped reads.
func rowsAffected(n int64, err error) error {
	if err != nil {
		return err
	}
	if n == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
