package acess_log

import (
	"context"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Log(ctx context.Context, entry AccessLog) error {
	return s.repo.Save(ctx, entry)
}

func (s *Service) Count(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}

func (s *Service) Recent(ctx context.Context, limit int) ([]AccessLog, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.repo.Recent(ctx, limit)
}
