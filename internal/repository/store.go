package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"fyyur/internal/database"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// store holds the persistence helpers shared by the entity repositories.
// Every write runs in its own transaction.
type store[T any] struct {
	db      *database.Database
	timeout time.Duration
}

func newStore[T any](db *database.Database) store[T] {
	return store[T]{
		db:      db,
		timeout: db.GetQueryTimeout(),
	}
}

func (s store[T]) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok || s.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, s.timeout)
}

func (s store[T]) findByID(ctx context.Context, id uint, preloads ...string) (*T, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	query := s.db.WithContext(ctx)
	for _, p := range preloads {
		query = query.Preload(p)
	}

	var entity T
	if err := query.First(&entity, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &entity, nil
}

func (s store[T]) create(ctx context.Context, entity *T) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Omit(clause.Associations).Create(entity).Error
	})
}

// update saves entity after checking that the row with id still exists.
func (s store[T]) update(ctx context.Context, id uint, entity *T) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing T
		if err := tx.Select("id").First(&existing, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		return tx.Omit(clause.Associations, "created_at").Save(entity).Error
	})
}

// remove deletes the row with id and the shows referencing it through
// showColumn, returning the deleted row.
func (s store[T]) remove(ctx context.Context, id uint, showColumn string) (*T, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var entity T
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&entity, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if err := tx.Exec(`DELETE FROM "shows" WHERE `+showColumn+` = ?`, id).Error; err != nil {
			return err
		}
		return tx.Delete(&entity).Error
	})
	if err != nil {
		return nil, err
	}
	return &entity, nil
}

// searchByName matches term as a case-insensitive substring of name. An
// empty term matches every row.
func (s store[T]) searchByName(ctx context.Context, term string, preloads ...string) ([]T, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	query := s.db.WithContext(ctx)
	for _, p := range preloads {
		query = query.Preload(p)
	}
	if term = strings.TrimSpace(term); term != "" {
		query = query.Where("name ILIKE ?", "%"+escapeLike(term)+"%")
	}

	var entities []T
	err := query.Order("name ASC").Order("id ASC").Find(&entities).Error
	return entities, err
}

func (s store[T]) list(ctx context.Context, order string, limit int, preloads ...string) ([]T, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	query := s.db.WithContext(ctx)
	for _, p := range preloads {
		query = query.Preload(p)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}

	var entities []T
	err := query.Order(order).Find(&entities).Error
	return entities, err
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(term string) string {
	return likeEscaper.Replace(term)
}
