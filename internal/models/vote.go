package models

import "time"

// VoteValue is the direction of a vote.
type VoteValue int

const (
	VoteUp   VoteValue = 1
	VoteDown VoteValue = -1
)

// Validate rejects anything that is not an up or down vote.
func (v VoteValue) Validate() error {
	if v != VoteUp && v != VoteDown {
		return &ValidationError{Field: "vote", Message: "vote value must be up or down"}
	}
	return nil
}

// QuestionVote is one ledger row per (voter, question). The composite
// unique index is what protects the one-vote invariant against racing
// voters; application logic alone is not enough.
type QuestionVote struct {
	ID         int       `gorm:"primaryKey" json:"id"`
	UserID     int       `gorm:"not null;uniqueIndex:idx_question_votes_user" json:"user_id"`
	QuestionID int       `gorm:"not null;uniqueIndex:idx_question_votes_user" json:"question_id"`
	Question   *Question `gorm:"foreignKey:QuestionID;constraint:OnDelete:CASCADE" json:"-"`
	VoteType   int       `gorm:"not null" json:"vote_type"` // 1 or -1
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// AnswerVote is one ledger row per (voter, answer).
type AnswerVote struct {
	ID        int       `gorm:"primaryKey" json:"id"`
	AnswerID  int       `gorm:"not null;uniqueIndex:idx_answer_votes_user" json:"answer_id"`
	Answer    *Answer   `gorm:"foreignKey:AnswerID;constraint:OnDelete:CASCADE" json:"-"`
	UserID    int       `gorm:"not null;uniqueIndex:idx_answer_votes_user" json:"user_id"`
	IsUpvote  bool      `gorm:"not null" json:"is_upvote"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
