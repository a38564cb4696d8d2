package model

import "time"

// Task represents a single to-do item.
// A nil ProjectID means the task is not assigned to any project.
type Task struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"size:100;not null" json:"title"`
	Description string    `gorm:"size:255" json:"description"`
	Completed   bool      `gorm:"default:false" json:"completed"`
	CreatedAt   time.Time `json:"created_at"`
	UserID      *uint     `gorm:"index" json:"user_id"`
	ProjectID   *uint     `gorm:"index" json:"project_id"`

	User    *User    `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Project *Project `gorm:"constraint:OnDelete:SET NULL" json:"-"`
}
