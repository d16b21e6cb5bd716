package models

import (
	"github.com/uptrace/bun"
)

type Artist struct {
	bun.BaseModel `bun:"table:artists"`

	ID                 int64  `bun:"id,pk,autoincrement"`
	Name               string `bun:"name,notnull"`
	Genres             string `bun:"genres"`
	City               string `bun:"city"`
	State              string `bun:"state"`
	Phone              string `bun:"phone"`
	Website            string `bun:"website"`
	ImageLink          string `bun:"image_link"`
	FacebookLink       string `bun:"facebook_link"`
	SeekingVenue       bool   `bun:"seeking_venue"`
	SeekingDescription string `bun:"seeking_description"`

	Shows []*Show `bun:"rel:has-many,join:id=artist_id"`
}
