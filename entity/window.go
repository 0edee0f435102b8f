package entity

import "time"

// Window is the submission window policy. A zero StartDate or EndDate leaves
// that side unbounded.
type Window struct {
	Open      bool      `toml:"open" bson:"open"`
	StartDate time.Time `toml:"start_date" bson:"start_date"`
	EndDate   time.Time `toml:"end_date" bson:"end_date"`
}
