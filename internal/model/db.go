package model

import (
	"time"
)

type Genre struct {
	ID   uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	Name string `gorm:"column:name;type:varchar(120);uniqueIndex:uq_genre_name;not null"` // unique so concurrent creators converge on one row
}

// Venue is a place that hosts shows. Phone holds digits only.
type Venue struct {
	ID                 uint64  `gorm:"column:id;primaryKey;autoIncrement"`
	Name               string  `gorm:"column:name;type:varchar(255)"`
	City               string  `gorm:"column:city;type:varchar(120);index:idx_venue_location,priority:2"`
	State              string  `gorm:"column:state;type:varchar(120);index:idx_venue_location,priority:1"`
	Address            string  `gorm:"column:address;type:varchar(120)"`
	Phone              string  `gorm:"column:phone;type:varchar(120)"`
	ImageLink          string  `gorm:"column:image_link;type:varchar(500)"`
	FacebookLink       string  `gorm:"column:facebook_link;type:varchar(120)"`
	Website            string  `gorm:"column:website;type:varchar(120)"`
	SeekingTalent      bool    `gorm:"column:seeking_talent;type:boolean;default:false"`
	SeekingDescription string  `gorm:"column:seeking_description;type:varchar(120)"`
	Genres             []Genre `gorm:"many2many:venue_genres;"`
	Shows              []Show  `gorm:"foreignKey:VenueID"`
}

// Artist is a performer that can be booked for shows.
type Artist struct {
	ID                 uint64  `gorm:"column:id;primaryKey;autoIncrement"`
	Name               string  `gorm:"column:name;type:varchar(255);index"`
	City               string  `gorm:"column:city;type:varchar(120)"`
	State              string  `gorm:"column:state;type:varchar(120)"`
	Phone              string  `gorm:"column:phone;type:varchar(120)"`
	ImageLink          string  `gorm:"column:image_link;type:varchar(500)"`
	FacebookLink       string  `gorm:"column:facebook_link;type:varchar(120)"`
	Website            string  `gorm:"column:website;type:varchar(120)"`
	SeekingVenue       bool    `gorm:"column:seeking_venue;type:boolean;default:false"`
	SeekingDescription string  `gorm:"column:seeking_description;type:varchar(120)"`
	Genres             []Genre `gorm:"many2many:artist_genres;"`
	Shows              []Show  `gorm:"foreignKey:ArtistID"`
}

// Show links one artist to one venue at a start time. StartTime is stored
// as UTC. Rows are never updated.
type Show struct {
	ID        uint64    `gorm:"column:id;primaryKey;autoIncrement"`
	StartTime time.Time `gorm:"column:start_time;type:timestamp;not null;index"`
	ArtistID  uint64    `gorm:"column:artist_id;type:bigint;not null;index"`
	VenueID   uint64    `gorm:"column:venue_id;type:bigint;not null;index"`
}

func (Genre) TableName() string  { return "genres" }
func (Venue) TableName() string  { return "venues" }
func (Artist) TableName() string { return "artists" }
func (Show) TableName() string   { return "shows" }

// AllModels returns the models in migration order.
func AllModels() []interface{} {
	return []interface{}{
		&Genre{},
		&Venue{},
		&Artist{},
		&Show{},
	}
}

// GenreNames flattens a genre association into names.
func GenreNames(genres []Genre) []string {
	names := make([]string, 0, len(genres))
	for _, g := range genres {
		names = append(names, g.Name)
	}
	return names
}
