package service

import (
	"fmt"
	"math"
	"sort"

	"Shimatabi-App/internal/domain/model"
)

// RecommendService は診断回答から島のレコメンドを行うサービス
type RecommendService interface {
	BuildUserVector(answers []model.QuizOption) model.IslandVector
	Recommend(islands []*model.Island, userVector model.IslandVector, topN int) []model.RecommendResult
}

type recommendService struct{}

// NewRecommendService は新しいRecommendServiceインスタンスを作成する
func NewRecommendService() RecommendService {
	return &recommendService{}
}

// BuildUserVector は回答の部分ベクトルを集約してユーザーベクトルを構築する
// 各次元は「定義した回答の合計 ÷ 全回答数」で、回答が触れない次元は0票扱いになる
// （次元ごとの回答数で割らないのは仕様通りの挙動）。上限1でクランプし、回答0件なら零ベクトル
func (s *recommendService) BuildUserVector(answers []model.QuizOption) model.IslandVector {
	var sum model.IslandVector
	count := 0

	for _, answer := range answers {
		for _, key := range model.VectorKeys {
			if value, ok := answer.Vector[key]; ok {
				sum.SetValue(key, sum.Value(key)+value)
			}
		}
		count++
	}

	if count == 0 {
		return sum
	}

	for _, key := range model.VectorKeys {
		sum.SetValue(key, math.Min(1, sum.Value(key)/float64(count)))
	}

	return sum
}

// cosineSimilarity は2つのベクトルのコサイン類似度を計算する
// どちらかのノルムが0のときは0を返す（エラーにはしない）
func cosineSimilarity(a, b model.IslandVector) float64 {
	var dotProduct, normA, normB float64

	for _, key := range model.VectorKeys {
		av := a.Value(key)
		bv := b.Value(key)
		dotProduct += av * bv
		normA += av * av
		normB += bv * bv
	}

	normA = math.Sqrt(normA)
	normB = math.Sqrt(normB)

	if normA == 0 || normB == 0 {
		return 0
	}
	return dotProduct / (normA * normB)
}

// generateReasons はユーザーベクトルと島の特性から理由文を最大3件生成する
// 特性理由 → 移動時間理由 → 見どころ理由の順で追加し、最後に3件へ切り詰める
func generateReasons(island *model.Island, userVector model.IslandVector) []string {
	var reasons []string

	type dimension struct {
		key       string
		value     float64
		userValue float64
	}

	var candidates []dimension
	for _, key := range model.VectorKeys {
		userValue := userVector.Value(key)
		if userValue > model.ReasonUserThreshold {
			candidates = append(candidates, dimension{
				key:       key,
				value:     island.Vector.Value(key),
				userValue: userValue,
			})
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].value*candidates[i].userValue > candidates[j].value*candidates[j].userValue
	})

	if len(candidates) > model.MaxReasons {
		candidates = candidates[:model.MaxReasons]
	}
	for _, c := range candidates {
		if c.value >= model.ReasonStrongTraitThreshold {
			reasons = append(reasons, model.GetReasonLabel(c.key))
		}
	}

	if island.TravelTime <= model.NearbyTravelTimeMinutes {
		reasons = append(reasons, fmt.Sprintf("船で%d分で到着できます", island.TravelTime))
	}

	if len(island.Attractions) > 0 {
		reasons = append(reasons, fmt.Sprintf("%sがおすすめです", island.Attractions[0]))
	}

	if len(reasons) > model.MaxReasons {
		reasons = reasons[:model.MaxReasons]
	}
	return reasons
}

// Recommend はカタログをユーザーベクトルとの類似度でランキングして上位topN件を返す
// 有効な島のみ対象とし、スコア降順・同点はカタログ順を保つ
func (s *recommendService) Recommend(islands []*model.Island, userVector model.IslandVector, topN int) []model.RecommendResult {
	var results []model.RecommendResult

	for _, island := range islands {
		if !island.IsListed() {
			continue
		}
		score := cosineSimilarity(userVector, island.Vector)
		results = append(results, model.RecommendResult{
			Island:       island,
			Score:        score,
			MatchPercent: int(math.Round(score * 100)),
			Reasons:      generateReasons(island, userVector),
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if len(results) > topN {
		results = results[:topN]
	}
	return results
}
