package store

import (
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/emilythestrangee/qanda/backend/internal/models"
)

// NormalizeTag trims surrounding whitespace, preserving case. A name that
// is empty after trimming is rejected.
func NormalizeTag(name string) (string, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", &models.ValidationError{Field: "tag", Message: "tag name must not be blank"}
	}
	return trimmed, nil
}

// normalizeTagSet normalizes and deduplicates a caller-supplied tag list,
// keeping first-seen order. Runs before any I/O so a bad name fails the
// whole operation up front.
func normalizeTagSet(names []string) ([]string, error) {
	if len(names) == 0 {
		return nil, nil
	}
	seen := make(map[string]struct{}, len(names))
	normalized := make([]string, 0, len(names))
	for _, raw := range names {
		name, err := NormalizeTag(raw)
		if err != nil {
			return nil, err
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		normalized = append(normalized, name)
	}
	return normalized, nil
}

// ensureTag upserts a tag row by name: a new name is created with
// usage_count 1, an existing one has its counter incremented. The single
// INSERT .. ON CONFLICT statement makes the upsert race-free without a
// savepoint. usage_count counts times ever linked and is never
// decremented on unlink or question delete.
func ensureTag(tx *gorm.DB, name string) (int, error) {
	tag := models.Tag{Name: name, UsageCount: 1}
	err := tx.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "name"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"usage_count": gorm.Expr("tags.usage_count + 1"),
		}),
	}).Create(&tag).Error
	if err != nil {
		return 0, err
	}
	return tag.ID, nil
}

// replaceTags swaps a question's tag set wholesale: clear every existing
// link, then ensure and link each name. Not a diff — re-linking a tag the
// question already had still increments its usage counter. Names must
// already be normalized and deduplicated.
func replaceTags(tx *gorm.DB, questionID int, names []string) error {
	if err := tx.Where("question_id = ?", questionID).Delete(&models.QuestionTag{}).Error; err != nil {
		return err
	}
	for _, name := range names {
		tagID, err := ensureTag(tx, name)
		if err != nil {
			return err
		}
		link := models.QuestionTag{QuestionID: questionID, TagID: tagID}
		if err := tx.Create(&link).Error; err != nil {
			return err
		}
	}
	return nil
}

// PopularTags returns the most used tags, usage counter descending with
// name as the tiebreak.
func (s *Store) PopularTags(limit int) ([]models.Tag, error) {
	if limit <= 0 {
		limit = 10
	}
	var tags []models.Tag
	err := s.db.Order("usage_count desc, name asc").Limit(limit).Find(&tags).Error
	if err != nil {
		return nil, wrapStoreError("list popular tags", err)
	}
	if tags == nil {
		tags = []models.Tag{}
	}
	return tags, nil
}

// TagsForQuestion loads the tag names linked to one question.
func (s *Store) TagsForQuestion(questionID int) ([]string, error) {
	var names []string
	err := s.db.Model(&models.Tag{}).
		Joins("JOIN question_tags qt ON qt.tag_id = tags.id").
		Where("qt.question_id = ?", questionID).
		Order("tags.name asc").
		Pluck("tags.name", &names).Error
	if err != nil {
		return nil, wrapStoreError("load question tags", err)
	}
	if names == nil {
		names = []string{}
	}
	return names, nil
}
