package store

import (
	"context"

	"svw.info/sudokupad/internal/domain"
)

type ctxKey struct{}

// NewContext returns a copy of ctx carrying s.
func NewContext(ctx context.Context, s *Store) context.Context {
	return context.WithValue(ctx, ctxKey{}, s)
}

// FromContext returns the store carried by ctx, or a *domain.UsageError when
// there is none.
func FromContext(ctx context.Context) (*Store, error) {
	if ctx != nil {
		if s, ok := ctx.Value(ctxKey{}).(*Store); ok && s != nil {
			return s, nil
		}
	}
	return nil, &domain.UsageError{Op: "store.FromContext"}
}

// MustFromContext is like FromContext but panics when no store is present.
func MustFromContext(ctx context.Context) *Store {
	s, err := FromContext(ctx)
	if err != nil {
		panic(err)
	}
	return s
}
