package store

import (
	"strings"

	"gorm.io/gorm"

	"github.com/emilythestrangee/qanda/backend/internal/models"
)

// SaveAnswer inserts an answer and refreshes the parent question's
// answer-count cache in the same transaction.
func (s *Store) SaveAnswer(a *models.Answer) error {
	if strings.TrimSpace(a.Content) == "" {
		return &models.ValidationError{Field: "content", Message: "content must not be blank"}
	}
	if a.UserID == 0 {
		return &models.ValidationError{Field: "user_id", Message: "author is required"}
	}

	return s.transact("save answer", func(tx *gorm.DB) error {
		var question models.Question
		if err := tx.First(&question, a.QuestionID).Error; err != nil {
			return translateFind("question", a.QuestionID, err)
		}
		if err := tx.Create(a).Error; err != nil {
			return err
		}
		return recomputeAnswerCount(tx, a.QuestionID)
	})
}

// DeleteAnswer removes an answer (its votes cascade away) and refreshes
// the parent's answer-count cache.
func (s *Store) DeleteAnswer(id int) error {
	return s.transact("delete answer", func(tx *gorm.DB) error {
		var answer models.Answer
		if err := tx.First(&answer, id).Error; err != nil {
			return translateFind("answer", id, err)
		}
		if err := tx.Delete(&answer).Error; err != nil {
			return err
		}
		return recomputeAnswerCount(tx, answer.QuestionID)
	})
}

// FindAnswerByID loads a single answer.
func (s *Store) FindAnswerByID(id int) (*models.Answer, error) {
	var answer models.Answer
	if err := s.db.First(&answer, id).Error; err != nil {
		return nil, wrapStoreError("find answer", translateFind("answer", id, err))
	}
	return &answer, nil
}

// AnswersForQuestion lists a question's answers, best first.
func (s *Store) AnswersForQuestion(questionID int) ([]models.Answer, error) {
	var answers []models.Answer
	err := s.db.Where("question_id = ?", questionID).
		Order("upvotes desc, created_at asc").
		Find(&answers).Error
	if err != nil {
		return nil, wrapStoreError("list answers", err)
	}
	if answers == nil {
		answers = []models.Answer{}
	}
	return answers, nil
}

// recomputeAnswerCount recounts a question's answers and writes the
// cached counter back.
func recomputeAnswerCount(tx *gorm.DB, questionID int) error {
	var count int64
	if err := tx.Model(&models.Answer{}).Where("question_id = ?", questionID).Count(&count).Error; err != nil {
		return err
	}
	return tx.Model(&models.Question{}).Where("id = ?", questionID).
		Update("answer_count", count).Error
}
