package model

import "time"

// Task is a single to-do item owned by a category.
// Deleting the category removes its tasks through the foreign key.
type Task struct {
	ID          uint      `gorm:"column:id;primaryKey"`
	Title       string    `gorm:"column:title;size:255;not null"`
	Description *string   `gorm:"column:description;type:text"`
	Completed   bool      `gorm:"column:completed;not null;default:false;index:tasks_completed_idx;index:tasks_category_completed_idx,priority:2"`
	CategoryID  uint      `gorm:"column:categoryId;not null;index:tasks_category_id_idx;index:tasks_category_completed_idx,priority:1"`
	Category    *Category `gorm:"foreignKey:CategoryID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	CreatedAt   time.Time `gorm:"column:createdAt;not null"`
	UpdatedAt   time.Time `gorm:"column:updatedAt;not null"`
}

func (Task) TableName() string {
	return "Tasks"
}
