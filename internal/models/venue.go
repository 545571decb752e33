package models

import "time"

const DefaultVenueSeekingDescription = "We are on the lookout for a local artist to play every two weeks. Please call us."

type Venue struct {
	ID                 uint      `gorm:"primaryKey" json:"id" example:"1"`
	Name               string    `gorm:"not null;index" json:"name" example:"The Musical Hop"`
	City               string    `gorm:"size:120;index:idx_venues_area" json:"city" example:"San Francisco"`
	State              string    `gorm:"size:120;index:idx_venues_area" json:"state" example:"CA"`
	Address            string    `gorm:"size:120" json:"address" example:"1015 Folsom Street"`
	Phone              string    `gorm:"size:120" json:"phone" example:"123-123-1234"`
	Genres             Genres    `gorm:"type:text[];not null;default:'{}'" json:"genres" swaggertype:"array,string"`
	ImageLink          string    `gorm:"size:500" json:"image_link"`
	FacebookLink       string    `gorm:"size:120" json:"facebook_link"`
	Website            string    `gorm:"size:120" json:"website"`
	SeekingTalent      bool      `gorm:"not null;default:false" json:"seeking_talent"`
	SeekingDescription string    `gorm:"size:500" json:"seeking_description"`
	Shows              []Show    `gorm:"foreignKey:VenueID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `gorm:"not null" json:"updated_at"`
}

func (Venue) TableName() string {
	return "venues"
}
