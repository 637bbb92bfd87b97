package store

import (
	"errors"

	"gorm.io/gorm"

	"github.com/emilythestrangee/qanda/backend/internal/models"
)

// VoteOutcome says what the toggle protocol did with the ledger row.
type VoteOutcome string

const (
	VoteCreated VoteOutcome = "created"
	VoteUpdated VoteOutcome = "updated"
	VoteRemoved VoteOutcome = "removed"
)

// VoteResult is the state of the item after the cast: the outcome plus
// the freshly recomputed counters. Accepted is only meaningful for
// answer votes.
type VoteResult struct {
	Outcome   VoteOutcome `json:"outcome"`
	Upvotes   int         `json:"upvotes"`
	Downvotes int         `json:"downvotes"`
	Accepted  bool        `json:"accepted,omitempty"`
}

// CastQuestionVote applies the toggle protocol to a question vote and
// recomputes the question's cached counters, all in one transaction:
// no existing row inserts, an identical row toggles off, a different
// value flips in place.
func (s *Store) CastQuestionVote(questionID, voterID int, value models.VoteValue) (VoteResult, error) {
	if err := value.Validate(); err != nil {
		return VoteResult{}, err
	}

	var result VoteResult
	err := s.transact("cast question vote", func(tx *gorm.DB) error {
		var question models.Question
		if err := tx.First(&question, questionID).Error; err != nil {
			return translateFind("question", questionID, err)
		}

		outcome, err := castWithRetry(tx, func(inner *gorm.DB) (VoteOutcome, error) {
			return toggleQuestionVote(inner, questionID, voterID, value)
		})
		if err != nil {
			return err
		}

		up, down, err := recomputeQuestionVotes(tx, questionID)
		if err != nil {
			return err
		}

		result = VoteResult{Outcome: outcome, Upvotes: up, Downvotes: down}
		return nil
	})
	if err != nil {
		return VoteResult{}, err
	}
	return result, nil
}

// CastAnswerVote is the answer-side cast. On top of the toggle and the
// counter recompute it re-evaluates the acceptance state: an answer is
// accepted exactly while its upvote count is at or above the threshold,
// so a downvote or a toggle-off can take acceptance away again.
func (s *Store) CastAnswerVote(answerID, voterID int, value models.VoteValue) (VoteResult, error) {
	if err := value.Validate(); err != nil {
		return VoteResult{}, err
	}

	var result VoteResult
	err := s.transact("cast answer vote", func(tx *gorm.DB) error {
		var answer models.Answer
		if err := tx.First(&answer, answerID).Error; err != nil {
			return translateFind("answer", answerID, err)
		}

		outcome, err := castWithRetry(tx, func(inner *gorm.DB) (VoteOutcome, error) {
			return toggleAnswerVote(inner, answerID, voterID, value)
		})
		if err != nil {
			return err
		}

		up, down, accepted, err := recomputeAnswerVotes(tx, answerID)
		if err != nil {
			return err
		}

		result = VoteResult{Outcome: outcome, Upvotes: up, Downvotes: down, Accepted: accepted}
		return nil
	})
	if err != nil {
		return VoteResult{}, err
	}
	return result, nil
}

// castWithRetry runs one toggle attempt inside a savepoint. A unique
// violation means a concurrent voter inserted between our read and our
// write; the row exists now, so rerunning the read-modify-write once
// resolves the race as an update or removal. A second violation surfaces
// as a ConstraintViolation instead of corrupting the ledger.
func castWithRetry(tx *gorm.DB, toggle func(inner *gorm.DB) (VoteOutcome, error)) (VoteOutcome, error) {
	var outcome VoteOutcome
	attempt := func(inner *gorm.DB) error {
		var err error
		outcome, err = toggle(inner)
		return err
	}

	err := tx.Transaction(attempt)
	if isUniqueViolation(err) {
		err = tx.Transaction(attempt)
		if isUniqueViolation(err) {
			return "", &models.ConstraintViolation{Constraint: constraintName(err), Err: err}
		}
	}
	if err != nil {
		return "", err
	}
	return outcome, nil
}

func toggleQuestionVote(tx *gorm.DB, questionID, voterID int, value models.VoteValue) (VoteOutcome, error) {
	var existing models.QuestionVote
	err := tx.Where("user_id = ? AND question_id = ?", voterID, questionID).First(&existing).Error
	switch {
	case err == nil:
		if existing.VoteType == int(value) {
			// Same vote again - remove it (toggle off)
			if err := tx.Delete(&existing).Error; err != nil {
				return "", err
			}
			return VoteRemoved, nil
		}
		existing.VoteType = int(value)
		if err := tx.Save(&existing).Error; err != nil {
			return "", err
		}
		return VoteUpdated, nil

	case errors.Is(err, gorm.ErrRecordNotFound):
		vote := models.QuestionVote{UserID: voterID, QuestionID: questionID, VoteType: int(value)}
		if err := tx.Create(&vote).Error; err != nil {
			return "", err
		}
		return VoteCreated, nil

	default:
		return "", err
	}
}

func toggleAnswerVote(tx *gorm.DB, answerID, voterID int, value models.VoteValue) (VoteOutcome, error) {
	isUpvote := value == models.VoteUp

	var existing models.AnswerVote
	err := tx.Where("answer_id = ? AND user_id = ?", answerID, voterID).First(&existing).Error
	switch {
	case err == nil:
		if existing.IsUpvote == isUpvote {
			if err := tx.Delete(&existing).Error; err != nil {
				return "", err
			}
			return VoteRemoved, nil
		}
		if err := tx.Model(&existing).Update("is_upvote", isUpvote).Error; err != nil {
			return "", err
		}
		return VoteUpdated, nil

	case errors.Is(err, gorm.ErrRecordNotFound):
		vote := models.AnswerVote{AnswerID: answerID, UserID: voterID, IsUpvote: isUpvote}
		if err := tx.Create(&vote).Error; err != nil {
			return "", err
		}
		return VoteCreated, nil

	default:
		return "", err
	}
}

// recomputeQuestionVotes recounts the ledger for one question and writes
// both counters back, inside the caller's transaction so the caches are
// never observably out of step with the ledger.
func recomputeQuestionVotes(tx *gorm.DB, questionID int) (int, int, error) {
	var up, down int64
	if err := tx.Model(&models.QuestionVote{}).
		Where("question_id = ? AND vote_type = ?", questionID, 1).Count(&up).Error; err != nil {
		return 0, 0, err
	}
	if err := tx.Model(&models.QuestionVote{}).
		Where("question_id = ? AND vote_type = ?", questionID, -1).Count(&down).Error; err != nil {
		return 0, 0, err
	}

	err := tx.Model(&models.Question{}).Where("id = ?", questionID).
		Updates(map[string]interface{}{"upvotes": up, "downvotes": down}).Error
	if err != nil {
		return 0, 0, err
	}
	return int(up), int(down), nil
}

// recomputeAnswerVotes recounts the ledger for one answer and updates the
// counters together with the acceptance flag. Acceptance is not sticky:
// it tracks the threshold in both directions and no path may write the
// counters without re-evaluating it.
func recomputeAnswerVotes(tx *gorm.DB, answerID int) (int, int, bool, error) {
	var up, down int64
	if err := tx.Model(&models.AnswerVote{}).
		Where("answer_id = ? AND is_upvote = ?", answerID, true).Count(&up).Error; err != nil {
		return 0, 0, false, err
	}
	if err := tx.Model(&models.AnswerVote{}).
		Where("answer_id = ? AND is_upvote = ?", answerID, false).Count(&down).Error; err != nil {
		return 0, 0, false, err
	}

	accepted := up >= models.AcceptThreshold
	err := tx.Model(&models.Answer{}).Where("id = ?", answerID).
		Updates(map[string]interface{}{
			"upvotes":     up,
			"downvotes":   down,
			"is_accepted": accepted,
		}).Error
	if err != nil {
		return 0, 0, false, err
	}
	return int(up), int(down), accepted, nil
}
