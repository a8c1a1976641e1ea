package models

import "time"

type Admin struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Nome      string  `gorm:"size:100;not null" json:"nome"`
	Login     string  `gorm:"size:100;uniqueIndex;not null" json:"login"`
	SenhaHash string  `gorm:"size:255;not null" json:"-"`
	FotoURL   *string `gorm:"size:255" json:"foto_url"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
