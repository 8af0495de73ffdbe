package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"Shimatabi-App/internal/domain/model"
	"Shimatabi-App/internal/domain/repository"
)

// IslandDataset はJSONファイル1枚に収めたカタログ全体
type IslandDataset struct {
	Islands        []*model.Island        `json:"islands"`
	Clusters       []*model.Cluster       `json:"clusters"`
	FerrySchedules []*model.FerrySchedule `json:"ferry_schedules"`
	QuizQuestions  []*model.QuizQuestion  `json:"quiz_questions"`
}

// MemoryIslandsRepository ロード済みカタログをそのまま返すインメモリリポジトリ
// データベースなしのローカル起動とテストで使う。内容は読み取り専用
type MemoryIslandsRepository struct {
	dataset *IslandDataset
}

// NewMemoryIslandsRepository データセットを受け取ってインメモリリポジトリを作成
func NewMemoryIslandsRepository(dataset *IslandDataset) repository.IslandsRepository {
	return &MemoryIslandsRepository{dataset: dataset}
}

// NewMemoryIslandsRepositoryFromFile JSONファイルからカタログをロードしてリポジトリを作成
func NewMemoryIslandsRepositoryFromFile(path string) (repository.IslandsRepository, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("カタログファイルの読み込み失敗: %w", err)
	}

	var dataset IslandDataset
	if err := json.Unmarshal(b, &dataset); err != nil {
		return nil, fmt.Errorf("カタログJSONのアンマーシャル失敗: %w", err)
	}

	return NewMemoryIslandsRepository(&dataset), nil
}

func (r *MemoryIslandsRepository) GetAllIslands(ctx context.Context) ([]*model.Island, error) {
	return r.dataset.Islands, nil
}

func (r *MemoryIslandsRepository) GetIslandByID(ctx context.Context, id string) (*model.Island, error) {
	for _, island := range r.dataset.Islands {
		if island.ID == id {
			return island, nil
		}
	}
	return nil, fmt.Errorf("島 ID %s が見つかりません", id)
}

func (r *MemoryIslandsRepository) GetClusterByID(ctx context.Context, id string) (*model.Cluster, error) {
	for _, cluster := range r.dataset.Clusters {
		if cluster.ID == id {
			return cluster, nil
		}
	}
	return nil, fmt.Errorf("クラスター ID %s が見つかりません", id)
}

func (r *MemoryIslandsRepository) GetIslandsByCluster(ctx context.Context, clusterID string) ([]*model.Island, error) {
	cluster, err := r.GetClusterByID(ctx, clusterID)
	if err != nil {
		return nil, err
	}

	member := make(map[string]struct{}, len(cluster.Islands))
	for _, id := range cluster.Islands {
		member[id] = struct{}{}
	}

	var result []*model.Island
	for _, island := range r.dataset.Islands {
		if _, ok := member[island.ID]; ok {
			result = append(result, island)
		}
	}
	return result, nil
}

func (r *MemoryIslandsRepository) GetFerrySchedules(ctx context.Context) ([]*model.FerrySchedule, error) {
	return r.dataset.FerrySchedules, nil
}

func (r *MemoryIslandsRepository) GetQuizQuestions(ctx context.Context) ([]*model.QuizQuestion, error) {
	return r.dataset.QuizQuestions, nil
}
