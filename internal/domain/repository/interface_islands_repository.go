package repository

import (
	"context"

	"Shimatabi-App/internal/domain/model"
)

// IslandsRepository は島カタログ（島・航路時刻表・診断クイズ）へのアクセスを提供する
// カタログは読み取り専用で、実装はロード済みデータをそのまま返す
type IslandsRepository interface {
	GetAllIslands(ctx context.Context) ([]*model.Island, error)
	GetIslandByID(ctx context.Context, id string) (*model.Island, error)
	GetClusterByID(ctx context.Context, id string) (*model.Cluster, error)
	GetIslandsByCluster(ctx context.Context, clusterID string) ([]*model.Island, error)
	GetFerrySchedules(ctx context.Context) ([]*model.FerrySchedule, error)
	GetQuizQuestions(ctx context.Context) ([]*model.QuizQuestion, error)
}
