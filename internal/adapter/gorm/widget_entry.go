package gorm

import "time"

type WidgetEntry struct {
	Scope string `gorm:"primaryKey"`
	Name  string `gorm:"primaryKey"`

	CreatedAt time.Time
	UpdatedAt time.Time

	Value []byte
}
