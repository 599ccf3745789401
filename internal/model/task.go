package model

import (
	"time"

	"github.com/google/uuid"
)

// TaskTitleMaxLength caps the trimmed title.
const TaskTitleMaxLength = 200

// Task is a to-do item owned by exactly one user. Callers outside the owner
// never observe it.
type Task struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	AuthorID    uuid.UUID `json:"-" gorm:"type:uuid;not null;index"`
	Title       string    `json:"title" gorm:"size:200;not null"`
	Description string    `json:"description" gorm:"type:text;default:''"`
	IsCompleted bool      `json:"is_completed" gorm:"default:false"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Author User `json:"-" gorm:"foreignKey:AuthorID"`
}
