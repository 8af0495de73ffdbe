package usecase

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"Shimatabi-App/internal/domain/model"
	"Shimatabi-App/internal/domain/repository"
	"Shimatabi-App/internal/domain/service"
	repoImpl "Shimatabi-App/internal/repository"
)

// PlanTTLHours Firestoreに保存するプランの有効期限（時間）
const PlanTTLHours = 24

type PlannerUseCase interface {
	// GeneratePlans はリクエストに基づいて日帰りプランを生成し、Firestoreに保存してレスポンスを返す
	GeneratePlans(ctx context.Context, req *model.PlannerRequest) (*model.PlannerResponse, error)

	// GetPlan は指定されたplan_idのプランをFirestoreから取得する
	GetPlan(ctx context.Context, planID string) (*model.ItineraryPlan, error)
}

// plannerUseCaseImpl はPlannerUseCaseの実装
type plannerUseCaseImpl struct {
	islandsRepo      repository.IslandsRepository
	itineraryService service.ItineraryService
	firestoreRepo    *repoImpl.FirestorePlanRepository
}

// NewPlannerUseCase は新しいPlannerUseCaseインスタンスを作成
// firestoreRepoはnil可（その場合プランは保存されず、IDのみ付与して返す）
func NewPlannerUseCase(
	islandsRepo repository.IslandsRepository,
	itineraryService service.ItineraryService,
	firestoreRepo *repoImpl.FirestorePlanRepository,
) PlannerUseCase {
	return &plannerUseCaseImpl{
		islandsRepo:      islandsRepo,
		itineraryService: itineraryService,
		firestoreRepo:    firestoreRepo,
	}
}

// GeneratePlans はリクエストに基づいて日帰りプランを生成し、Firestoreに保存してレスポンスを返す
func (u *plannerUseCaseImpl) GeneratePlans(ctx context.Context, req *model.PlannerRequest) (*model.PlannerResponse, error) {
	log.Printf("🚀 プラン生成開始 (出発: %s, 帰着: %s, 人数: %d)", req.DepartureTime, req.ReturnTime, req.GroupSize)

	// Step 1: カタログと時刻表を取得
	islands, err := u.islandsRepo.GetAllIslands(ctx)
	if err != nil {
		return nil, fmt.Errorf("島カタログの取得に失敗: %w", err)
	}
	schedules, err := u.islandsRepo.GetFerrySchedules(ctx)
	if err != nil {
		return nil, fmt.Errorf("航路時刻表の取得に失敗: %w", err)
	}

	// Step 2: プランを生成
	itineraries := u.itineraryService.GenerateItineraries(islands, schedules, req)
	if len(itineraries) == 0 {
		log.Printf("⚠️ 条件に合うプランがありませんでした")
		return &model.PlannerResponse{Plans: []model.ItineraryPlan{}}, nil
	}
	log.Printf("✅ %d件のプランを生成", len(itineraries))

	// Step 3: Firestoreに保存（未設定時はID付与のみ）
	var plans []*model.ItineraryPlan
	if u.firestoreRepo != nil {
		log.Printf("💾 Firestore保存中...")
		plans, err = u.firestoreRepo.SaveItineraryPlans(ctx, itineraries, req.StayType, req.GroupSize, PlanTTLHours)
		if err != nil {
			return nil, fmt.Errorf("Firestore保存に失敗: %w", err)
		}
	} else {
		log.Printf("⚠️ Firestore未設定のためプランは保存されません")
		for _, itinerary := range itineraries {
			planID := fmt.Sprintf("plan_%s", uuid.New().String())
			plans = append(plans, model.NewItineraryPlan(planID, itinerary, req.StayType, req.GroupSize))
		}
	}

	log.Printf("🎉 プラン生成完了 (%d件)", len(plans))

	return &model.PlannerResponse{
		Plans: u.convertToSlice(plans),
	}, nil
}

// GetPlan は指定されたplan_idのプランをFirestoreから取得する
func (u *plannerUseCaseImpl) GetPlan(ctx context.Context, planID string) (*model.ItineraryPlan, error) {
	if u.firestoreRepo == nil {
		return nil, fmt.Errorf("プランが見つかりません（プラン保存が無効です）: %s", planID)
	}

	log.Printf("📖 プラン取得開始 (ID: %s)", planID)

	plan, err := u.firestoreRepo.GetItineraryPlan(ctx, planID)
	if err != nil {
		return nil, fmt.Errorf("プランの取得に失敗: %w", err)
	}

	log.Printf("✅ プラン取得完了 (ID: %s)", planID)
	return plan, nil
}

// convertToSlice は[]*ItineraryPlanを[]ItineraryPlanに変換
func (u *plannerUseCaseImpl) convertToSlice(plans []*model.ItineraryPlan) []model.ItineraryPlan {
	result := make([]model.ItineraryPlan, len(plans))
	for i, plan := range plans {
		if plan != nil {
			result[i] = *plan
		}
	}
	return result
}
