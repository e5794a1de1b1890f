// Package queue defines message payloads exchanged over the message broker
// together with the publisher and the background consumer.
package queue

// MeasurementRecordedEvent is published after a measurement has been
// persisted. It carries the full record so downstream consumers can
// log or trigger analytics without querying the primary database.
type MeasurementRecordedEvent struct {
	MeasurementID uint64  `json:"measurement_id"`
	UserID        string  `json:"user_id"`
	Height        float64 `json:"height"`
	Weight        float64 `json:"weight"`
	Age           int     `json:"age"`
	BMI           float64 `json:"bmi"`
	Category      string  `json:"category"`
	RecordedAt    string  `json:"recorded_at"`
}
