package models

import (
	"time"
)

type Memo struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	User      *User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Title     string    `gorm:"not null;size:100" json:"title"`
	Content   string    `gorm:"not null;size:1000" json:"content"`
	CreatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
}

// TableName keeps the model aligned with the migration files
func (Memo) TableName() string {
	return "memos"
}
