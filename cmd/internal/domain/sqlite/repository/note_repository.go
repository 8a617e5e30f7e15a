package repository

import (
	"context"
	"errors"
	"stickynotes/cmd/internal/domain/entity"
	"stickynotes/cmd/internal/domain/filter"

	"gorm.io/gorm"
)

type DefaultNoteRepository struct {
	db *gorm.DB
}

func NewNoteRepository(db *gorm.DB) *DefaultNoteRepository {
	return &DefaultNoteRepository{db: db}
}

func (d *DefaultNoteRepository) Insert(ctx context.Context, note *entity.Note) error {
	return d.db.WithContext(ctx).Create(note).Error
}

// FindByID returns nil, nil when no note has the given id.
func (d *DefaultNoteRepository) FindByID(ctx context.Context, id int) (*entity.Note, error) {
	var note entity.Note
	err := d.db.WithContext(ctx).First(&note, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &note, nil
}

// FindAll narrows the rows in SQL by the exact-match predicates, then hands
// them to filter.Apply, which owns text matching and ordering.
func (d *DefaultNoteRepository) FindAll(ctx context.Context, f *filter.Filter) ([]*entity.Note, error) {
	var notes []*entity.Note
	err := d.db.WithContext(ctx).
		Scopes(scopeFor(f)).
		Order("updated_at DESC").
		Order("id ASC").
		Find(&notes).Error
	if err != nil {
		return nil, err
	}
	return filter.Apply(notes, f), nil
}

func (d *DefaultNoteRepository) Update(ctx context.Context, note *entity.Note) error {
	return d.db.WithContext(ctx).Save(note).Error
}

func (d *DefaultNoteRepository) Delete(ctx context.Context, note *entity.Note) error {
	return d.db.WithContext(ctx).Delete(note).Error
}

func (d *DefaultNoteRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := d.db.WithContext(ctx).Model(&entity.Note{}).Count(&n).Error
	return n, err
}

func scopeFor(f *filter.Filter) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		switch f.Scope {
		case filter.ScopeActive:
			db = db.Where("is_archived = ?", false)
		case filter.ScopeArchived:
			db = db.Where("is_archived = ?", true)
		}

		if f.Category != "" {
			db = db.Where("category = ?", f.Category)
		}
		if f.Priority != "" {
			db = db.Where("priority = ?", f.Priority)
		}
		return db
	}
}
