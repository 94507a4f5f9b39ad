package model

import "time"

// Category groups tasks by area (work, health, shopping, etc.).
type Category struct {
	ID        uint      `gorm:"column:id;primaryKey"`
	Name      string    `gorm:"column:name;size:255;not null;uniqueIndex"`
	CreatedAt time.Time `gorm:"column:createdAt;not null"`
	UpdatedAt time.Time `gorm:"column:updatedAt;not null"`
}

func (Category) TableName() string {
	return "Categories"
}

// DefaultCategoryNames is the fixed list inserted by the seeder.
var DefaultCategoryNames = []string{
	"Work",
	"Personal",
	"Shopping",
	"Health",
	"Education",
	"Finance",
	"Travel",
	"Home",
	"Entertainment",
	"Other",
}
