package models

import (
	"time"

	"github.com/uptrace/bun"
)

type Show struct {
	bun.BaseModel `bun:"table:shows"`

	ID        int64     `bun:"id,pk,autoincrement"`
	StartTime time.Time `bun:"start_time,notnull"`
	ArtistID  int64     `bun:"artist_id,notnull"`
	VenueID   int64     `bun:"venue_id,notnull"`

	Artist *Artist `bun:"rel:belongs-to,join:artist_id=id"`
	Venue  *Venue  `bun:"rel:belongs-to,join:venue_id=id"`
}

// Upcoming reports whether the show starts strictly after the given
// reference time. Derived on demand, never stored.
func (s *Show) Upcoming(now time.Time) bool {
	return s.StartTime.After(now)
}
