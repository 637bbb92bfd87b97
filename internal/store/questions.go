package store

import (
	"log"
	"strings"

	"gorm.io/gorm"

	"github.com/emilythestrangee/qanda/backend/internal/models"
	"github.com/emilythestrangee/qanda/backend/internal/query"
)

func validateQuestion(q *models.Question) error {
	if strings.TrimSpace(q.Title) == "" {
		return &models.ValidationError{Field: "title", Message: "title must not be blank"}
	}
	if strings.TrimSpace(q.Content) == "" {
		return &models.ValidationError{Field: "content", Message: "content must not be blank"}
	}
	if q.UserID == 0 {
		return &models.ValidationError{Field: "user_id", Message: "author is required"}
	}
	return nil
}

// SaveQuestion inserts a question and links its tag set in one
// transaction. The question's ID is populated on success.
func (s *Store) SaveQuestion(q *models.Question, tags []string) error {
	if err := validateQuestion(q); err != nil {
		return err
	}
	names, err := normalizeTagSet(tags)
	if err != nil {
		return err
	}

	return s.transact("save question", func(tx *gorm.DB) error {
		if err := tx.Create(q).Error; err != nil {
			if isForeignKeyViolation(err) {
				return &models.ValidationError{Field: "subject_id", Message: "subject does not exist"}
			}
			return err
		}
		if err := replaceTags(tx, q.ID, names); err != nil {
			return err
		}
		q.Tags = names
		return nil
	})
}

// UpdateQuestion replaces a question's title, content and tag set
// atomically. The tag replacement is clear-then-insert, so every tag in
// the new set has its usage counter bumped even if it was already linked.
func (s *Store) UpdateQuestion(id int, title, content string, tags []string) (*models.Question, error) {
	if strings.TrimSpace(title) == "" {
		return nil, &models.ValidationError{Field: "title", Message: "title must not be blank"}
	}
	if strings.TrimSpace(content) == "" {
		return nil, &models.ValidationError{Field: "content", Message: "content must not be blank"}
	}
	names, err := normalizeTagSet(tags)
	if err != nil {
		return nil, err
	}

	var question models.Question
	err = s.transact("update question", func(tx *gorm.DB) error {
		if err := tx.First(&question, id).Error; err != nil {
			return translateFind("question", id, err)
		}
		question.Title = title
		question.Content = content
		if err := tx.Save(&question).Error; err != nil {
			return err
		}
		if err := replaceTags(tx, id, names); err != nil {
			return err
		}
		question.Tags = names
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &question, nil
}

// DeleteQuestion removes a question. Votes, answers and tag links go
// with it through the schema's cascades; tag rows themselves stay, so
// orphan tags are possible and fine.
func (s *Store) DeleteQuestion(id int) error {
	return s.transact("delete question", func(tx *gorm.DB) error {
		var question models.Question
		if err := tx.First(&question, id).Error; err != nil {
			return translateFind("question", id, err)
		}
		return tx.Delete(&question).Error
	})
}

// FindQuestionByID loads one question with its subject and tag names.
func (s *Store) FindQuestionByID(id int) (*models.Question, error) {
	var question models.Question
	if err := s.db.Preload("Subject").First(&question, id).Error; err != nil {
		return nil, wrapStoreError("find question", translateFind("question", id, err))
	}
	tags, err := s.TagsForQuestion(id)
	if err != nil {
		return nil, err
	}
	question.Tags = tags
	return &question, nil
}

// Search runs one faceted query over the question store: free text,
// subject, author, tag intersection, status filters, sort and
// pagination, all rendered as a single parameterized statement. Reads
// run without a transaction.
func (s *Store) Search(c query.Criteria) (query.Page[models.Question], error) {
	var empty query.Page[models.Question]

	if c.Page < 0 {
		return empty, &models.ValidationError{Field: "page", Message: "page must not be negative"}
	}
	if c.PageSize == 0 {
		c.PageSize = query.DefaultPageSize
	}
	tags, err := normalizeTagSet(c.Tags)
	if err != nil {
		return empty, err
	}
	c.Tags = tags

	sqlText, args := query.Build(c)
	var questions []models.Question
	if err := s.db.Raw(sqlText, args...).Scan(&questions).Error; err != nil {
		return empty, wrapStoreError("search questions", err)
	}

	countText, countArgs := query.BuildCount(c)
	var total int64
	if err := s.db.Raw(countText, countArgs...).Scan(&total).Error; err != nil {
		return empty, wrapStoreError("count search results", err)
	}

	if err := s.loadTags(questions); err != nil {
		return empty, err
	}

	return query.Paginate(questions, int(total), c.PageSize, c.Page)
}

// loadTags fills in the tag names for a batch of questions with one
// query over the link table.
func (s *Store) loadTags(questions []models.Question) error {
	if len(questions) == 0 {
		return nil
	}
	ids := make([]int, len(questions))
	for i, q := range questions {
		ids[i] = q.ID
	}

	type taggedRow struct {
		QuestionID int
		Name       string
	}
	var rows []taggedRow
	err := s.db.Raw(
		"SELECT qt.question_id, t.name FROM question_tags qt JOIN tags t ON t.id = qt.tag_id WHERE qt.question_id IN ? ORDER BY t.name",
		ids,
	).Scan(&rows).Error
	if err != nil {
		return wrapStoreError("load search tags", err)
	}

	byQuestion := make(map[int][]string, len(questions))
	for _, row := range rows {
		byQuestion[row.QuestionID] = append(byQuestion[row.QuestionID], row.Name)
	}
	for i := range questions {
		tags := byQuestion[questions[i].ID]
		if tags == nil {
			tags = []string{}
		}
		questions[i].Tags = tags
	}
	return nil
}

// IncrementViewCount bumps a question's view counter. Strictly
// best-effort: a failure is logged and swallowed so a broken counter
// never breaks a read path.
func (s *Store) IncrementViewCount(id int) {
	err := s.db.Model(&models.Question{}).Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + 1")).Error
	if err != nil {
		log.Printf("view count increment for question %d failed: %v", id, err)
	}
}

// MarkSolved flips the solved flag on a question.
func (s *Store) MarkSolved(id int, solved bool) error {
	return s.transact("mark question solved", func(tx *gorm.DB) error {
		res := tx.Model(&models.Question{}).Where("id = ?", id).Update("is_solved", solved)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return &models.NotFoundError{Entity: "question", ID: id}
		}
		return nil
	})
}
