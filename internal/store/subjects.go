package store

import (
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/emilythestrangee/qanda/backend/internal/models"
)

// EnsureSubject upserts a subject by its unique name and returns the
// stored row. An existing subject keeps its description unless a new,
// non-empty one is supplied.
func (s *Store) EnsureSubject(name, description string) (*models.Subject, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, &models.ValidationError{Field: "name", Message: "subject name must not be blank"}
	}

	var subject models.Subject
	err := s.transact("ensure subject", func(tx *gorm.DB) error {
		subject = models.Subject{Name: name, Description: description}
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoNothing: true,
		}).Create(&subject).Error; err != nil {
			return err
		}
		// DoNothing leaves the ID zero when the row already existed.
		if subject.ID == 0 {
			if err := tx.Where("name = ?", name).First(&subject).Error; err != nil {
				return err
			}
			if description != "" && subject.Description != description {
				subject.Description = description
				return tx.Save(&subject).Error
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &subject, nil
}

// ListSubjects returns all subjects ordered by name.
func (s *Store) ListSubjects() ([]models.Subject, error) {
	var subjects []models.Subject
	if err := s.db.Order("name asc").Find(&subjects).Error; err != nil {
		return nil, wrapStoreError("list subjects", err)
	}
	if subjects == nil {
		subjects = []models.Subject{}
	}
	return subjects, nil
}

// FindSubjectByID loads one subject.
func (s *Store) FindSubjectByID(id int) (*models.Subject, error) {
	var subject models.Subject
	if err := s.db.First(&subject, id).Error; err != nil {
		return nil, wrapStoreError("find subject", translateFind("subject", id, err))
	}
	return &subject, nil
}
