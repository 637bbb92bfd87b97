package models

import "time"

// AcceptThreshold is the upvote count at which an answer becomes
// accepted. Exactly AcceptThreshold upvotes is accepted; one fewer is not.
const AcceptThreshold = 10

type Answer struct {
	ID         int       `gorm:"primaryKey" json:"id"`
	QuestionID int       `gorm:"not null" json:"question_id"`
	Question   *Question `gorm:"foreignKey:QuestionID;constraint:OnDelete:CASCADE" json:"-"`
	UserID     int       `gorm:"not null" json:"user_id"`
	Content    string    `gorm:"type:text;not null" json:"content"`

	// Derived caches. IsAccepted is recomputed from the upvote count on
	// every vote mutation and is never set directly by callers.
	Upvotes    int  `gorm:"not null;default:0" json:"upvotes"`
	Downvotes  int  `gorm:"not null;default:0" json:"downvotes"`
	IsAccepted bool `gorm:"not null;default:false" json:"is_accepted"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
