// Package repository contains data access logic for BMI measurements.
// This file defines the MeasurementRepo, the only repository in the
// application. Measurements are append-only: the repo exposes an
// insert and two read paths but no update or delete, matching the
// immutability of stored records.
package repository

import (
	"context"
	"database/sql"

	"github.com/iliyamo/bmi-tracker/internal/model"
)

// MeasurementRepo manages persistence for BMI measurements in the
// bmi_records table. All timestamp fields are stored in UTC.
type MeasurementRepo struct {
	db *sql.DB
}

// NewMeasurementRepo returns a new MeasurementRepo bound to the given database.
func NewMeasurementRepo(db *sql.DB) *MeasurementRepo { return &MeasurementRepo{db: db} }

const measurementColumns = `id, user_id, height, weight, age, bmi, category, created_at, updated_at`

// Insert stores a new measurement and populates the generated ID and
// DB-assigned timestamps on the provided record. The row is queried
// back after the insert so created_at/updated_at reflect what the
// database actually stored rather than the application clock.
func (r *MeasurementRepo) Insert(ctx context.Context, m *model.Measurement) error {
	const q = `INSERT INTO bmi_records (user_id, height, weight, age, bmi, category) VALUES (?, ?, ?, ?, ?, ?)`
	result, err := r.db.ExecContext(ctx, q, m.UserID, m.Height, m.Weight, m.Age, m.BMI, m.Category)
	if err != nil {
		return err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	m.ID = uint64(id)
	// Query back the full row to populate timestamps and defaults
	const sel = `SELECT ` + measurementColumns + ` FROM bmi_records WHERE id = ?`
	return r.db.QueryRowContext(ctx, sel, m.ID).Scan(
		&m.ID, &m.UserID, &m.Height, &m.Weight, &m.Age,
		&m.BMI, &m.Category, &m.CreatedAt, &m.UpdatedAt,
	)
}

// FindByUser returns all measurements for a user ordered newest first.
// Equal timestamps break on id so the order is deterministic. A user
// with no measurements yields an empty slice, not an error.
func (r *MeasurementRepo) FindByUser(ctx context.Context, userID string) ([]model.Measurement, error) {
	const q = `SELECT ` + measurementColumns + ` FROM bmi_records WHERE user_id = ? ORDER BY created_at DESC, id DESC`
	rows, err := r.db.QueryContext(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.Measurement, 0)
	for rows.Next() {
		var m model.Measurement
		if err := rows.Scan(
			&m.ID, &m.UserID, &m.Height, &m.Weight, &m.Age,
			&m.BMI, &m.Category, &m.CreatedAt, &m.UpdatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

// FindLatestByUser returns the single most recent measurement for a
// user, or ErrNotFound when the user has none.
func (r *MeasurementRepo) FindLatestByUser(ctx context.Context, userID string) (model.Measurement, error) {
	const q = `SELECT ` + measurementColumns + ` FROM bmi_records WHERE user_id = ? ORDER BY created_at DESC, id DESC LIMIT 1`
	var m model.Measurement
	err := r.db.QueryRowContext(ctx, q, userID).Scan(
		&m.ID, &m.UserID, &m.Height, &m.Weight, &m.Age,
		&m.BMI, &m.Category, &m.CreatedAt, &m.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return model.Measurement{}, ErrNotFound
	}
	return m, err
}
