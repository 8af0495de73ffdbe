package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"Shimatabi-App/internal/domain/repository"
	"Shimatabi-App/internal/domain/service"
	"Shimatabi-App/internal/handler"
	"Shimatabi-App/internal/infrastructure/database"
	"Shimatabi-App/internal/infrastructure/firestore"
	repoImpl "Shimatabi-App/internal/repository"
	"Shimatabi-App/internal/usecase"
)

func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Println("Warning: .env file not found, using system environment variables")
	}

	ctx := context.Background()

	// 島カタログのバックエンドを選択
	islandsRepo, err := newIslandsRepository()
	if err != nil {
		log.Fatalf("島カタログの初期化失敗: %v", err)
	}

	// Firestore（プランキャッシュ）はオプション
	var planRepo *repoImpl.FirestorePlanRepository
	if projectID := os.Getenv("GOOGLE_CLOUD_PROJECT"); projectID != "" {
		fsClient, err := firestore.NewFirestoreClient(ctx, projectID)
		if err != nil {
			log.Fatalf("Firestoreクライアント初期化失敗: %v", err)
		}
		defer fsClient.Close()
		planRepo = repoImpl.NewFirestorePlanRepository(fsClient.GetClient())
	} else {
		fmt.Println("⚠️  GOOGLE_CLOUD_PROJECT未設定: プランのFirestore保存は無効です")
	}

	// サービスとユースケースの初期化
	recommendService := service.NewRecommendService()
	itineraryService := service.NewItineraryService()
	recommendUseCase := usecase.NewRecommendUseCase(islandsRepo, recommendService)
	plannerUseCase := usecase.NewPlannerUseCase(islandsRepo, itineraryService, planRepo)

	// ハンドラーの初期化
	islandsHandler := handler.NewIslandsHandler(islandsRepo)
	recommendHandler := handler.NewRecommendHandler(recommendUseCase)
	plannerHandler := handler.NewPlannerHandler(plannerUseCase)

	// Ginルーターのセットアップ
	r := gin.Default()

	r.GET("/api/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "healthy", "service": "Shimatabi-App"})
	})

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

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	fmt.Printf("Shimatabi-App server starting on :%s...\n", port)
	log.Fatal(r.Run(":" + port))
}

// newIslandsRepository は環境変数に応じて島カタログのバックエンドを選択する
// 優先順位: Supabase → PostgreSQL直接続 → ローカルJSONファイル
func newIslandsRepository() (repository.IslandsRepository, error) {
	if os.Getenv("SUPABASE_URL") != "" && os.Getenv("SUPABASE_ANON_KEY") != "" {
		fmt.Println("Initializing Supabase client...")
		supabaseClient, err := database.NewSupabaseClient()
		if err != nil {
			return nil, fmt.Errorf("Supabaseクライアント初期化失敗: %w", err)
		}
		if err := supabaseClient.HealthCheck(); err != nil {
			return nil, fmt.Errorf("Supabaseヘルスチェック失敗: %w", err)
		}
		fmt.Println("✅ Supabase connection successful!")
		return repoImpl.NewSupabaseIslandsRepository(supabaseClient), nil
	}

	if os.Getenv("DATABASE_URL") != "" || os.Getenv("SUPABASE_DB_PASSWORD") != "" {
		fmt.Println("Initializing PostgreSQL client...")
		pgClient, err := database.NewPostgreSQLClient()
		if err != nil {
			return nil, fmt.Errorf("PostgreSQLクライアント初期化失敗: %w", err)
		}
		fmt.Println("✅ PostgreSQL connection successful!")
		return repoImpl.NewPostgresIslandsRepository(pgClient), nil
	}

	dataFile := os.Getenv("ISLAND_DATA_FILE")
	if dataFile == "" {
		dataFile = "data/islands.json"
	}
	fmt.Printf("Loading island catalog from %s...\n", dataFile)
	return repoImpl.NewMemoryIslandsRepositoryFromFile(dataFile)
}
