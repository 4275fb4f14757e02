package service

import (
	"context"

	"github.com/rocketscienceinc/battleship/internal/entity"
	"github.com/stretchr/testify/mock"
)

type mockStrategy struct {
	mock.Mock
}

func (that *mockStrategy) NextTarget(ctx context.Context, enemy entity.GridView) (entity.Coordinate, error) {
	args := that.Called(ctx, enemy)
	return args.Get(0).(entity.Coordinate), args.Error(1)
}

type mockReporter struct {
	mock.Mock
}

func (that *mockReporter) ShotFired(name string, target entity.Coordinate, result entity.ShotResult) {
	that.Called(name, target, result)
}

func (that *mockReporter) ShotRejected(name string, target entity.Coordinate, err error) {
	that.Called(name, target, err)
}

type mockSource struct {
	mock.Mock
}

func (that *mockSource) ReadCoordinate(ctx context.Context, size int) (entity.Coordinate, error) {
	args := that.Called(ctx, size)
	return args.Get(0).(entity.Coordinate), args.Error(1)
}

type mockMatchRepo struct {
	mock.Mock
}

func (that *mockMatchRepo) Create(ctx context.Context, record *entity.MatchRecord) error {
	return that.Called(ctx, record).Error(0)
}

func (that *mockMatchRepo) List(ctx context.Context, limit int64) ([]*entity.MatchRecord, error) {
	args := that.Called(ctx, limit)
	records, _ := args.Get(0).([]*entity.MatchRecord)
	return records, args.Error(1)
}
