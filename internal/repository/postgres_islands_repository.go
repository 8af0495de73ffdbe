package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/lib/pq"

	"Shimatabi-App/internal/domain/model"
	"Shimatabi-App/internal/domain/repository"
	"Shimatabi-App/internal/infrastructure/database"
)

// PostgresIslandsRepository PostgreSQL直接接続で島カタログを取得するリポジトリ
type PostgresIslandsRepository struct {
	client *database.PostgreSQLClient
}

// NewPostgresIslandsRepository 新しいPostgresIslandsRepositoryインスタンスを作成
func NewPostgresIslandsRepository(client *database.PostgreSQLClient) repository.IslandsRepository {
	return &PostgresIslandsRepository{
		client: client,
	}
}

// islandRow islandsテーブルの1行を受け取るための構造体
// 配列・ネスト構造はJSONBカラムとして保持している
type islandRow struct {
	ID             string
	Name           string
	NameEn         string
	Description    string
	Lat            float64
	Lng            float64
	Area           float64
	Population     int
	AgingRate      float64
	TravelTime     int
	FerryFrequency int
	FerryPort      string
	FerryName      string
	Attractions    string // JSONB
	Restaurants    int
	Accommodations int
	CulturalSites  string // JSONB
	Activities     string // JSONB
	BestSeason     string
	Vector         string // JSONB
	Cluster        string
	Status         string
	NextFerry      string
	Weather        sql.NullString // JSONB
	Marine         sql.NullString // JSONB
	Festivals      sql.NullString // JSONB
	Hashtags       sql.NullString // JSONB
}

// toIsland islandRowをmodel.Islandに変換
func (row *islandRow) toIsland() (*model.Island, error) {
	island := &model.Island{
		ID:             row.ID,
		Name:           row.Name,
		NameEn:         row.NameEn,
		Description:    row.Description,
		Lat:            row.Lat,
		Lng:            row.Lng,
		Area:           row.Area,
		Population:     row.Population,
		AgingRate:      row.AgingRate,
		TravelTime:     row.TravelTime,
		FerryFrequency: row.FerryFrequency,
		FerryPort:      row.FerryPort,
		FerryName:      row.FerryName,
		Restaurants:    row.Restaurants,
		Accommodations: row.Accommodations,
		BestSeason:     row.BestSeason,
		Cluster:        row.Cluster,
		Status:         row.Status,
		NextFerry:      row.NextFerry,
	}

	if err := json.Unmarshal([]byte(row.Attractions), &island.Attractions); err != nil {
		return nil, fmt.Errorf("attractions JSONBパースエラー: %w", err)
	}
	if err := json.Unmarshal([]byte(row.CulturalSites), &island.CulturalSites); err != nil {
		return nil, fmt.Errorf("cultural_sites JSONBパースエラー: %w", err)
	}
	if err := json.Unmarshal([]byte(row.Activities), &island.Activities); err != nil {
		return nil, fmt.Errorf("activities JSONBパースエラー: %w", err)
	}
	if err := json.Unmarshal([]byte(row.Vector), &island.Vector); err != nil {
		return nil, fmt.Errorf("vector JSONBパースエラー: %w", err)
	}

	if row.Weather.Valid {
		if err := json.Unmarshal([]byte(row.Weather.String), &island.Weather); err != nil {
			return nil, fmt.Errorf("weather JSONBパースエラー: %w", err)
		}
	}
	if row.Marine.Valid {
		if err := json.Unmarshal([]byte(row.Marine.String), &island.Marine); err != nil {
			return nil, fmt.Errorf("marine JSONBパースエラー: %w", err)
		}
	}
	if row.Festivals.Valid {
		if err := json.Unmarshal([]byte(row.Festivals.String), &island.Festivals); err != nil {
			return nil, fmt.Errorf("festivals JSONBパースエラー: %w", err)
		}
	}
	if row.Hashtags.Valid {
		if err := json.Unmarshal([]byte(row.Hashtags.String), &island.Hashtags); err != nil {
			return nil, fmt.Errorf("hashtags JSONBパースエラー: %w", err)
		}
	}

	return island, nil
}

const islandColumns = `id, name, name_en, description, lat, lng, area, population, aging_rate,
	travel_time, ferry_frequency, ferry_port, ferry_name, attractions, restaurants,
	accommodations, cultural_sites, activities, best_season, vector, cluster, status,
	next_ferry, weather, marine, festivals, hashtags`

func scanIslandRow(scanner interface{ Scan(...any) error }) (*model.Island, error) {
	var row islandRow
	err := scanner.Scan(
		&row.ID, &row.Name, &row.NameEn, &row.Description, &row.Lat, &row.Lng,
		&row.Area, &row.Population, &row.AgingRate, &row.TravelTime, &row.FerryFrequency,
		&row.FerryPort, &row.FerryName, &row.Attractions, &row.Restaurants,
		&row.Accommodations, &row.CulturalSites, &row.Activities, &row.BestSeason,
		&row.Vector, &row.Cluster, &row.Status, &row.NextFerry,
		&row.Weather, &row.Marine, &row.Festivals, &row.Hashtags,
	)
	if err != nil {
		return nil, err
	}
	return row.toIsland()
}

func (r *PostgresIslandsRepository) GetAllIslands(ctx context.Context) ([]*model.Island, error) {
	query := fmt.Sprintf(`SELECT %s FROM islands ORDER BY id`, islandColumns)

	rows, err := r.client.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("島データの取得失敗: %w", err)
	}
	defer rows.Close()

	var islands []*model.Island
	for rows.Next() {
		island, err := scanIslandRow(rows)
		if err != nil {
			return nil, fmt.Errorf("島データのスキャン失敗: %w", err)
		}
		islands = append(islands, island)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("島データの読み取り失敗: %w", err)
	}

	return islands, nil
}

func (r *PostgresIslandsRepository) GetIslandByID(ctx context.Context, id string) (*model.Island, error) {
	query := fmt.Sprintf(`SELECT %s FROM islands WHERE id = $1`, islandColumns)

	island, err := scanIslandRow(r.client.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("島 ID %s が見つかりません", id)
		}
		return nil, fmt.Errorf("島データの取得失敗: %w", err)
	}

	return island, nil
}

func (r *PostgresIslandsRepository) GetClusterByID(ctx context.Context, id string) (*model.Cluster, error) {
	query := `SELECT id, name, name_en, description, color, icon, islands FROM clusters WHERE id = $1`

	var cluster model.Cluster
	var islandIDs string
	err := r.client.DB.QueryRowContext(ctx, query, id).Scan(
		&cluster.ID, &cluster.Name, &cluster.NameEn, &cluster.Description,
		&cluster.Color, &cluster.Icon, &islandIDs,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("クラスター ID %s が見つかりません", id)
		}
		return nil, fmt.Errorf("クラスターデータの取得失敗: %w", err)
	}

	if err := json.Unmarshal([]byte(islandIDs), &cluster.Islands); err != nil {
		return nil, fmt.Errorf("islands JSONBパースエラー: %w", err)
	}

	return &cluster, nil
}

func (r *PostgresIslandsRepository) GetIslandsByCluster(ctx context.Context, clusterID string) ([]*model.Island, error) {
	cluster, err := r.GetClusterByID(ctx, clusterID)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`SELECT %s FROM islands WHERE id = ANY($1) ORDER BY id`, islandColumns)

	rows, err := r.client.DB.QueryContext(ctx, query, pq.Array(cluster.Islands))
	if err != nil {
		return nil, fmt.Errorf("クラスター所属の島データの取得失敗: %w", err)
	}
	defer rows.Close()

	var islands []*model.Island
	for rows.Next() {
		island, err := scanIslandRow(rows)
		if err != nil {
			return nil, fmt.Errorf("島データのスキャン失敗: %w", err)
		}
		islands = append(islands, island)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("島データの読み取り失敗: %w", err)
	}

	return islands, nil
}

func (r *PostgresIslandsRepository) GetFerrySchedules(ctx context.Context) ([]*model.FerrySchedule, error) {
	query := `SELECT route, departures, duration, fare FROM ferry_schedules ORDER BY route`

	rows, err := r.client.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("航路時刻表の取得失敗: %w", err)
	}
	defer rows.Close()

	var schedules []*model.FerrySchedule
	for rows.Next() {
		var s model.FerrySchedule
		var departures string
		if err := rows.Scan(&s.Route, &departures, &s.Duration, &s.Fare); err != nil {
			return nil, fmt.Errorf("航路時刻表のスキャン失敗: %w", err)
		}
		if err := json.Unmarshal([]byte(departures), &s.Departures); err != nil {
			return nil, fmt.Errorf("departures JSONBパースエラー: %w", err)
		}
		schedules = append(schedules, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("航路時刻表の読み取り失敗: %w", err)
	}

	return schedules, nil
}

func (r *PostgresIslandsRepository) GetQuizQuestions(ctx context.Context) ([]*model.QuizQuestion, error) {
	query := `SELECT id, question, options FROM quiz_questions ORDER BY id`

	rows, err := r.client.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("診断クイズの取得失敗: %w", err)
	}
	defer rows.Close()

	var questions []*model.QuizQuestion
	for rows.Next() {
		var q model.QuizQuestion
		var options string
		if err := rows.Scan(&q.ID, &q.Question, &options); err != nil {
			return nil, fmt.Errorf("診断クイズのスキャン失敗: %w", err)
		}
		if err := json.Unmarshal([]byte(options), &q.Options); err != nil {
			return nil, fmt.Errorf("options JSONBパースエラー: %w", err)
		}
		questions = append(questions, &q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("診断クイズの読み取り失敗: %w", err)
	}

	return questions, nil
}
