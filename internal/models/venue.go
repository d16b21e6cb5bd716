package models

import (
	"github.com/uptrace/bun"
)

type Venue struct {
	bun.BaseModel `bun:"table:venues"`

	ID                 int64  `bun:"id,pk,autoincrement"`
	Name               string `bun:"name,notnull"`
	Genres             string `bun:"genres"`
	City               string `bun:"city"`
	State              string `bun:"state"`
	Address            string `bun:"address"`
	Phone              string `bun:"phone"`
	Website            string `bun:"website"`
	ImageLink          string `bun:"image_link"`
	FacebookLink       string `bun:"facebook_link"`
	SeekingTalent      bool   `bun:"seeking_talent"`
	SeekingDescription string `bun:"seeking_description"`

	Shows []*Show `bun:"rel:has-many,join:id=venue_id"`
}
