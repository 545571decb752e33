package models

import "time"

// Show joins one venue and one artist at a start time. Its identity is the
// (id, venue_id, artist_id) triple; id comes from the table sequence.
type Show struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id" example:"1"`
	VenueID   uint      `gorm:"primaryKey;autoIncrement:false;index" json:"venue_id" example:"1"`
	ArtistID  uint      `gorm:"primaryKey;autoIncrement:false;index" json:"artist_id" example:"4"`
	StartTime time.Time `gorm:"not null;index" json:"start_time"`
	Venue     *Venue    `gorm:"foreignKey:VenueID" json:"-"`
	Artist    *Artist   `gorm:"foreignKey:ArtistID" json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (Show) TableName() string {
	return "shows"
}
