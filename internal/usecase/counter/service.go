package counter

import (
	"context"

	"go.uber.org/zap"

	"github.com/huytran-le/vidlens/errors"
)

// Store persists the visitor counter. Implementations exist for Redis
// and for an in-process fallback.
type Store interface {
	Current(ctx context.Context) (int64, error)
	Increment(ctx context.Context) (int64, error)
	Decrement(ctx context.Context) (int64, error)
}

// Service exposes the counter operations behind the secondary endpoints.
type Service interface {
	Init(ctx context.Context) (int64, error)
	Increment(ctx context.Context) (int64, error)
	Decrement(ctx context.Context) (int64, error)
}

type service struct {
	store  Store
	logger *zap.Logger
}

// NewService constructs a counter service over the given store
func NewService(store Store, logger *zap.Logger) Service {
	return &service{store: store, logger: logger}
}

func (s *service) Init(ctx context.Context) (int64, error) {
	n, err := s.store.Current(ctx)
	if err != nil {
		return 0, s.fail("init", err)
	}
	return n, nil
}

func (s *service) Increment(ctx context.Context) (int64, error) {
	n, err := s.store.Increment(ctx)
	if err != nil {
		return 0, s.fail("increment", err)
	}
	return n, nil
}

func (s *service) Decrement(ctx context.Context) (int64, error) {
	n, err := s.store.Decrement(ctx)
	if err != nil {
		return 0, s.fail("decrement", err)
	}
	return n, nil
}

func (s *service) fail(op string, err error) error {
	if s.logger != nil {
		s.logger.Error("counter store operation failed",
			zap.String("operation", op),
			zap.Error(err),
		)
	}
	return errors.ErrCounterFailed(err)
}
