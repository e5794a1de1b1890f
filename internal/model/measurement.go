package model

import "time"

// Measurement is one stored BMI computation tied to a user identifier.
// Height and weight are the raw inputs; BMI and Category are derived
// from them exactly once at creation time and never recomputed, so a
// stored row is always internally consistent. Rows are immutable:
// there is no update or delete path anywhere in the application.
//
// Fields:
//  ID        – primary key identifier, assigned by the database.
//  UserID    – caller-supplied owner identifier; not checked against
//              any user registry.
//  Height    – height in centimeters, > 0.
//  Weight    – weight in kilograms, > 0.
//  Age       – age in years, > 0; stored but not used in computation.
//  BMI       – derived index value rounded to 2 decimal places.
//  Category  – derived label (see the bmi package).
//  CreatedAt – row creation timestamp (UTC).
//  UpdatedAt – row update timestamp; equals CreatedAt for the life of
//              the row since rows are never updated.
type Measurement struct {
	ID        uint64    `json:"id"`         // bmi_records.id
	UserID    string    `json:"user_id"`    // bmi_records.user_id
	Height    float64   `json:"height"`     // bmi_records.height
	Weight    float64   `json:"weight"`     // bmi_records.weight
	Age       int       `json:"age"`        // bmi_records.age
	BMI       float64   `json:"bmi"`        // bmi_records.bmi
	Category  string    `json:"category"`   // bmi_records.category
	CreatedAt time.Time `json:"created_at"` // bmi_records.created_at
	UpdatedAt time.Time `json:"updated_at"` // bmi_records.updated_at
}
