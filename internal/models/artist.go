package models

import "time"

const DefaultArtistSeekingDescription = "Currently seeking performance venues"

type Artist struct {
	ID                 uint      `gorm:"primaryKey" json:"id" example:"4"`
	Name               string    `gorm:"not null;index" json:"name" example:"Guns N Petals"`
	City               string    `gorm:"size:120" json:"city" example:"San Francisco"`
	State              string    `gorm:"size:120" json:"state" example:"CA"`
	Phone              string    `gorm:"size:120" json:"phone" example:"326-123-5000"`
	Genres             Genres    `gorm:"type:text[];not null;default:'{}'" json:"genres" swaggertype:"array,string"`
	ImageLink          string    `gorm:"size:500" json:"image_link"`
	FacebookLink       string    `gorm:"size:300" json:"facebook_link"`
	Website            string    `gorm:"size:120" json:"website"`
	SeekingVenue       bool      `gorm:"not null;default:false" json:"seeking_venue"`
	SeekingDescription string    `gorm:"size:500" json:"seeking_description"`
	Shows              []Show    `gorm:"foreignKey:ArtistID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `gorm:"not null" json:"updated_at"`
}

func (Artist) TableName() string {
	return "artists"
}
