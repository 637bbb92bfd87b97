package models

type Tag struct {
	ID   int    `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:100;uniqueIndex;not null" json:"name"`

	// UsageCount tracks how many times the tag has ever been linked to a
	// question. It is incremented on every link and never decremented.
	UsageCount int `gorm:"not null;default:0" json:"usage_count"`
}

// QuestionTag links a question to a tag. Rows are cascade-deleted with
// either parent.
type QuestionTag struct {
	QuestionID int       `gorm:"primaryKey" json:"question_id"`
	Question   *Question `gorm:"foreignKey:QuestionID;constraint:OnDelete:CASCADE" json:"-"`
	TagID      int       `gorm:"primaryKey" json:"tag_id"`
	Tag        *Tag      `gorm:"foreignKey:TagID;constraint:OnDelete:CASCADE" json:"-"`
}
