package models

import "time"

type Question struct {
	ID        int      `gorm:"primaryKey" json:"id"`
	UserID    int      `gorm:"not null" json:"user_id"`
	SubjectID *int     `json:"subject_id,omitempty"`
	Subject   *Subject `gorm:"foreignKey:SubjectID" json:"subject,omitempty"`
	Title     string   `gorm:"size:300;not null" json:"title"`
	Content   string   `gorm:"type:text;not null" json:"content"`

	// Derived caches, recomputed from the vote ledger and the answers
	// table. Never the source of truth.
	Upvotes     int  `gorm:"not null;default:0" json:"upvotes"`
	Downvotes   int  `gorm:"not null;default:0" json:"downvotes"`
	AnswerCount int  `gorm:"not null;default:0" json:"answer_count"`
	ViewCount   int  `gorm:"not null;default:0" json:"view_count"`
	IsSolved    bool `gorm:"not null;default:false" json:"is_solved"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Tag names, loaded on read from the question_tags links.
	Tags []string `gorm:"-" json:"tags"`
}
