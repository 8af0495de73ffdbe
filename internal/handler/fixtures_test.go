package handler

import (
	"github.com/gin-gonic/gin"

	"Shimatabi-App/internal/domain/model"
	"Shimatabi-App/internal/domain/service"
	repoImpl "Shimatabi-App/internal/repository"
	"Shimatabi-App/internal/usecase"
)

// newTestDataset はハンドラーテスト共通の小さなカタログを作成する
func newTestDataset() *repoImpl.IslandDataset {
	return &repoImpl.IslandDataset{
		Islands: []*model.Island{
			{
				ID:             "naoshima",
				Name:           "直島",
				NameEn:         "Naoshima",
				Population:     3000,
				TravelTime:     50,
				FerryFrequency: 8,
				FerryPort:      "宮浦港",
				Lat:            34.4602,
				Lng:            133.9957,
				Attractions:    []string{"地中美術館", "赤かぼちゃ"},
				Restaurants:    5,
				Activities:     []string{"アート散策"},
				Vector:         model.IslandVector{Culture: 0.9, Nature: 0.5, Food: 0.6},
				Cluster:        "art",
			},
			{
				ID:             "okishima",
				Name:           "沖島",
				NameEn:         "Okishima",
				Population:     250,
				TravelTime:     10,
				FerryFrequency: 0,
				FerryPort:      "-",
				Lat:            35.2503,
				Lng:            136.0585,
				Attractions:    []string{"湖畔の集落"},
				Restaurants:    1,
				Vector:         model.IslandVector{Tranquility: 0.9, Nature: 0.7},
				Cluster:        "quiet",
			},
		},
		Clusters: []*model.Cluster{
			{
				ID:      "art",
				Name:    "アートの島",
				Islands: []string{"naoshima"},
			},
		},
		FerrySchedules: []*model.FerrySchedule{
			{
				Route:      "高松 ⇔ 直島",
				Departures: []string{"07:30", "10:00", "13:00", "17:00"},
				Duration:   50,
				Fare:       520,
			},
		},
		QuizQuestions: []*model.QuizQuestion{
			{
				ID:       "q1",
				Question: "旅先で一番楽しみたいことは？",
				Options: []model.QuizOption{
					{Label: "自然を満喫したい", Value: "nature", Vector: map[string]float64{"nature": 0.9, "tranquility": 0.5}},
					{Label: "アートや文化に触れたい", Value: "culture", Vector: map[string]float64{"culture": 0.9}},
				},
			},
			{
				ID:       "q2",
				Question: "食事へのこだわりは？",
				Options: []model.QuizOption{
					{Label: "地元グルメは外せない", Value: "foodie", Vector: map[string]float64{"food": 0.9}},
					{Label: "こだわらない", Value: "any", Vector: map[string]float64{}},
				},
			},
		},
	}
}

// newTestRouter はインメモリカタログを使うテスト用ルーターを組み立てる
// Firestoreは未接続（プラン保存なし）の構成
func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	islandsRepo := repoImpl.NewMemoryIslandsRepository(newTestDataset())
	recommendUseCase := usecase.NewRecommendUseCase(islandsRepo, service.NewRecommendService())
	plannerUseCase := usecase.NewPlannerUseCase(islandsRepo, service.NewItineraryService(), nil)

	islandsHandler := NewIslandsHandler(islandsRepo)
	recommendHandler := NewRecommendHandler(recommendUseCase)
	plannerHandler := NewPlannerHandler(plannerUseCase)

	r := gin.New()
	islands := r.Group("/islands")
	{
		islands.GET("", islandsHandler.GetIslands)
		islands.GET("/bounds", islandsHandler.GetArchipelagoBounds)
		islands.GET("/:id", islandsHandler.GetIslandByID)
	}
	r.GET("/clusters/:id/islands", islandsHandler.GetIslandsByCluster)
	r.GET("/quiz/questions", recommendHandler.GetQuizQuestions)
	r.POST("/recommend", recommendHandler.PostRecommend)
	planner := r.Group("/planner")
	{
		planner.POST("/plans", plannerHandler.PostPlans)
		planner.GET("/plans/:id", plannerHandler.GetPlan)
	}
	return r
}
