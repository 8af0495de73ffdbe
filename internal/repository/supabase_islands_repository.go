package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"Shimatabi-App/internal/domain/model"
	"Shimatabi-App/internal/domain/repository"
	"Shimatabi-App/internal/infrastructure/database"
)

// SupabaseIslandsRepository Supabase（postgrest）経由で島カタログを取得するリポジトリ
type SupabaseIslandsRepository struct {
	client *database.SupabaseClient
}

// NewSupabaseIslandsRepository 新しいSupabaseIslandsRepositoryインスタンスを作成
func NewSupabaseIslandsRepository(client *database.SupabaseClient) repository.IslandsRepository {
	return &SupabaseIslandsRepository{
		client: client,
	}
}

func (r *SupabaseIslandsRepository) GetAllIslands(ctx context.Context) ([]*model.Island, error) {
	var islands []*model.Island
	data, count, err := r.client.GetClient().From("islands").Select("*", "exact", false).Execute()
	if err != nil {
		return nil, fmt.Errorf("島データの取得失敗: %w", err)
	}
	_ = count

	if err := json.Unmarshal([]byte(data), &islands); err != nil {
		return nil, fmt.Errorf("島データのJSONアンマーシャル失敗: %w", err)
	}

	return islands, nil
}

func (r *SupabaseIslandsRepository) GetIslandByID(ctx context.Context, id string) (*model.Island, error) {
	var islands []*model.Island
	data, count, err := r.client.GetClient().From("islands").Select("*", "exact", false).Eq("id", id).Execute()
	if err != nil {
		return nil, fmt.Errorf("島データの取得失敗: %w", err)
	}
	_ = count

	if err := json.Unmarshal([]byte(data), &islands); err != nil {
		return nil, fmt.Errorf("島データのJSONアンマーシャル失敗: %w", err)
	}

	if len(islands) == 0 {
		return nil, fmt.Errorf("島 ID %s が見つかりません", id)
	}

	return islands[0], nil
}

func (r *SupabaseIslandsRepository) GetClusterByID(ctx context.Context, id string) (*model.Cluster, error) {
	var clusters []*model.Cluster
	data, count, err := r.client.GetClient().From("clusters").Select("*", "exact", false).Eq("id", id).Execute()
	if err != nil {
		return nil, fmt.Errorf("クラスターデータの取得失敗: %w", err)
	}
	_ = count

	if err := json.Unmarshal([]byte(data), &clusters); err != nil {
		return nil, fmt.Errorf("クラスターデータのJSONアンマーシャル失敗: %w", err)
	}

	if len(clusters) == 0 {
		return nil, fmt.Errorf("クラスター ID %s が見つかりません", id)
	}

	return clusters[0], nil
}

func (r *SupabaseIslandsRepository) GetIslandsByCluster(ctx context.Context, clusterID string) ([]*model.Island, error) {
	cluster, err := r.GetClusterByID(ctx, clusterID)
	if err != nil {
		return nil, err
	}

	islands, err := r.GetAllIslands(ctx)
	if err != nil {
		return nil, err
	}

	member := make(map[string]struct{}, len(cluster.Islands))
	for _, id := range cluster.Islands {
		member[id] = struct{}{}
	}

	var result []*model.Island
	for _, island := range islands {
		if _, ok := member[island.ID]; ok {
			result = append(result, island)
		}
	}

	return result, nil
}

func (r *SupabaseIslandsRepository) GetFerrySchedules(ctx context.Context) ([]*model.FerrySchedule, error) {
	var schedules []*model.FerrySchedule
	data, count, err := r.client.GetClient().From("ferry_schedules").Select("*", "exact", false).Execute()
	if err != nil {
		return nil, fmt.Errorf("航路時刻表の取得失敗: %w", err)
	}
	_ = count

	if err := json.Unmarshal([]byte(data), &schedules); err != nil {
		return nil, fmt.Errorf("航路時刻表のJSONアンマーシャル失敗: %w", err)
	}

	return schedules, nil
}

func (r *SupabaseIslandsRepository) GetQuizQuestions(ctx context.Context) ([]*model.QuizQuestion, error) {
	var questions []*model.QuizQuestion
	data, count, err := r.client.GetClient().From("quiz_questions").Select("*", "exact", false).Execute()
	if err != nil {
		return nil, fmt.Errorf("診断クイズの取得失敗: %w", err)
	}
	_ = count

	if err := json.Unmarshal([]byte(data), &questions); err != nil {
		return nil, fmt.Errorf("診断クイズのJSONアンマーシャル失敗: %w", err)
	}

	return questions, nil
}
