package repo

import (
	"context"

	"gorm.io/gorm"
)

// Base binds a GORM handle, either the pool or an open transaction, for the
// domain repositories.
type Base struct {
	db *gorm.DB
}

func NewBase(db *gorm.DB) Base {
	return Base{db: db}
}

// DB returns the handle bound to ctx, so cancelled requests abort their
// queries.
func (b Base) DB(ctx context.Context) *gorm.DB {
	if ctx == nil {
		return b.db
	}
	return b.db.WithContext(ctx)
}

// FindByIDs loads the rows of T whose id is in ids and indexes them by id.
// Missing ids are simply absent from the result.
func FindByIDs[T any](ctx context.Context, b Base, ids []uint, idOf func(T) uint) (map[uint]T, error) {
	out := make(map[uint]T, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	var rows []T
	if err := b.DB(ctx).Where("id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, err
	}
	for _, row := range rows {
		out[idOf(row)] = row
	}
	return out, nil
}
