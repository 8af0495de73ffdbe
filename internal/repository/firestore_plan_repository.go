package repository

import (
	"context"
	"fmt"
	"log"
	"strings"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"

	"Shimatabi-App/internal/domain/model"
)

// FirestorePlanRepository Firestoreを使用した日帰りプランキャッシュリポジトリ
// 生成したプランに一時IDを振ってTTL付きで保存し、後から再取得できるようにする
type FirestorePlanRepository struct {
	client *firestore.Client
}

// NewFirestorePlanRepository 新しいFirestorePlanRepositoryインスタンスを作成
func NewFirestorePlanRepository(client *firestore.Client) *FirestorePlanRepository {
	return &FirestorePlanRepository{
		client: client,
	}
}

// planCollection プラン保存先のコレクション名
const planCollection = "itineraryPlans"

// SaveItineraryPlans は生成済みプランをFirestoreに保存し、plan_idを付与して返す
func (r *FirestorePlanRepository) SaveItineraryPlans(ctx context.Context, itineraries []*model.Itinerary, stayType string, groupSize, ttlHours int) ([]*model.ItineraryPlan, error) {
	var result []*model.ItineraryPlan

	collection := r.client.Collection(planCollection)

	for _, itinerary := range itineraries {
		// 一時IDを生成
		planID := fmt.Sprintf("plan_%s", uuid.New().String())

		plan := model.NewItineraryPlan(planID, itinerary, stayType, groupSize)

		// Firestore用の構造体に変換して保存
		firestoreData := plan.ToFirestoreItineraryPlan(ttlHours)
		if _, err := collection.Doc(planID).Set(ctx, firestoreData); err != nil {
			log.Printf("❌ Failed to save itinerary plan %s: %v", planID, err)
			return nil, fmt.Errorf("プランの保存に失敗しました: %w", err)
		}

		log.Printf("✅ Itinerary plan saved: %s (expires in %d hours)", planID, ttlHours)
		result = append(result, plan)
	}

	return result, nil
}

// GetItineraryPlan は指定されたplan_idのプランをFirestoreから取得する
func (r *FirestorePlanRepository) GetItineraryPlan(ctx context.Context, planID string) (*model.ItineraryPlan, error) {
	doc, err := r.client.Collection(planCollection).Doc(planID).Get(ctx)
	if err != nil {
		// Firestoreのエラータイプをチェック
		if status := err.Error(); strings.Contains(status, "NotFound") || strings.Contains(status, "not found") {
			return nil, fmt.Errorf("プランが見つかりません（有効期限切れまたは無効なID）: %s", planID)
		}
		return nil, fmt.Errorf("プランの取得に失敗しました: %w", err)
	}

	var firestoreData model.FirestoreItineraryPlan
	if err := doc.DataTo(&firestoreData); err != nil {
		return nil, fmt.Errorf("データの変換に失敗しました: %w", err)
	}

	plan := firestoreData.ToItineraryPlan(planID)

	log.Printf("✅ Itinerary plan retrieved: %s", planID)
	return plan, nil
}
