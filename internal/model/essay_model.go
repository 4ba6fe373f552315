package model

import (
	"time"
)

type Essay struct {
	ID        int       `gorm:"primaryKey;autoIncrement" json:"id"`
	Title     string    `gorm:"type:text" json:"title"`
	Content   string    `gorm:"type:text" json:"content"`
	Prompt    string    `gorm:"type:text" json:"prompt"`
	WordCount int       `json:"word_count"`
	TimeSpent int       `json:"time_spent"` // in seconds
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// InsertEssay carries the caller-supplied fields of an essay, without the
// id and timestamps the store assigns itself.
type InsertEssay struct {
	Title     string `json:"title"`
	Content   string `json:"content"`
	Prompt    string `json:"prompt"`
	WordCount int    `json:"word_count"`
	TimeSpent int    `json:"time_spent"`
}

// EssayUpdate is a partial update: nil fields are left untouched.
type EssayUpdate struct {
	Title     *string `json:"title"`
	Content   *string `json:"content"`
	Prompt    *string `json:"prompt"`
	WordCount *int    `json:"word_count"`
	TimeSpent *int    `json:"time_spent"`
}
