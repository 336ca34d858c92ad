package models

import "time"

// Timestamp is the wire form of a point in time: epoch seconds plus the
// sub-second remainder in nanoseconds. Stored documents keep native BSON
// dates; this shape only appears in API responses.
type Timestamp struct {
	Seconds     int64 `json:"seconds"`
	Nanoseconds int64 `json:"nanoseconds"`
}

// NewTimestamp converts t to its wire form.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{
		Seconds:     t.Unix(),
		Nanoseconds: int64(t.Nanosecond()),
	}
}

// Time converts the wire form back to a time.Time in UTC.
func (ts Timestamp) Time() time.Time {
	return time.Unix(ts.Seconds, ts.Nanoseconds).UTC()
}
