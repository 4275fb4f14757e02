package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rocketscienceinc/battleship/internal/entity"
)

const historyLimit = entity.MatchHistoryLimit

type RecordService interface {
	Record(ctx context.Context, record *entity.MatchRecord) error
	Totals(ctx context.Context) (map[string]int, error)
}

type matchRepo interface {
	Create(ctx context.Context, record *entity.MatchRecord) error
	List(ctx context.Context, limit int64) ([]*entity.MatchRecord, error)
}

type recordService struct {
	matchRepo matchRepo
	now       func() time.Time
}

func NewRecordService(matchRepo matchRepo) RecordService {
	return &recordService{
		matchRepo: matchRepo,
		now:       time.Now,
	}
}

// Record stamps the record with a fresh id and finish time and stores it.
func (that *recordService) Record(ctx context.Context, record *entity.MatchRecord) error {
	record.ID = uuid.NewString()
	record.FinishedAt = that.now().UTC()

	if err := that.matchRepo.Create(ctx, record); err != nil {
		return fmt.Errorf("failed to store match: %w", err)
	}

	return nil
}

// Totals counts wins per side over the kept history.
func (that *recordService) Totals(ctx context.Context) (map[string]int, error) {
	records, err := that.matchRepo.List(ctx, historyLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list matches: %w", err)
	}

	totals := map[string]int{
		entity.SideHuman: 0,
		entity.SideBot:   0,
	}
	for _, record := range records {
		totals[record.Winner]++
	}

	return totals, nil
}
