package usecase

import (
	"context"
	"fmt"
	"log"

	"Shimatabi-App/internal/domain/model"
	"Shimatabi-App/internal/domain/repository"
	"Shimatabi-App/internal/domain/service"
)

// DefaultTopN レコメンド件数のデフォルト値
const DefaultTopN = 3

type RecommendUseCase interface {
	// GetQuizQuestions は診断クイズのカタログを取得する
	GetQuizQuestions(ctx context.Context) ([]*model.QuizQuestion, error)

	// GetRecommendations は診断回答からユーザーベクトルを構築し、島のレコメンドを返す
	GetRecommendations(ctx context.Context, req *model.RecommendRequest) (*model.RecommendResponse, error)
}

// recommendUseCaseImpl はRecommendUseCaseの実装
type recommendUseCaseImpl struct {
	islandsRepo      repository.IslandsRepository
	recommendService service.RecommendService
}

// NewRecommendUseCase は新しいRecommendUseCaseインスタンスを作成
func NewRecommendUseCase(islandsRepo repository.IslandsRepository, recommendService service.RecommendService) RecommendUseCase {
	return &recommendUseCaseImpl{
		islandsRepo:      islandsRepo,
		recommendService: recommendService,
	}
}

// GetQuizQuestions は診断クイズのカタログを取得する
func (u *recommendUseCaseImpl) GetQuizQuestions(ctx context.Context) ([]*model.QuizQuestion, error) {
	questions, err := u.islandsRepo.GetQuizQuestions(ctx)
	if err != nil {
		return nil, fmt.Errorf("診断クイズの取得に失敗: %w", err)
	}
	return questions, nil
}

// GetRecommendations は診断回答からユーザーベクトルを構築し、島のレコメンドを返す
func (u *recommendUseCaseImpl) GetRecommendations(ctx context.Context, req *model.RecommendRequest) (*model.RecommendResponse, error) {
	log.Printf("🚀 レコメンド生成開始 (回答数: %d)", len(req.Answers))

	// Step 1: 回答を診断クイズの選択肢に解決
	questions, err := u.islandsRepo.GetQuizQuestions(ctx)
	if err != nil {
		return nil, fmt.Errorf("診断クイズの取得に失敗: %w", err)
	}

	questionByID := make(map[string]*model.QuizQuestion, len(questions))
	for _, q := range questions {
		questionByID[q.ID] = q
	}

	var options []model.QuizOption
	for _, answer := range req.Answers {
		question, ok := questionByID[answer.QuestionID]
		if !ok {
			log.Printf("⚠️ 未知の質問IDをスキップ: %s", answer.QuestionID)
			continue
		}
		option := question.FindOption(answer.Value)
		if option == nil {
			log.Printf("⚠️ 質問 %s に選択肢 %s がないためスキップ", answer.QuestionID, answer.Value)
			continue
		}
		options = append(options, *option)
	}

	// Step 2: ユーザーベクトルを構築
	userVector := u.recommendService.BuildUserVector(options)

	// Step 3: カタログをランキング
	islands, err := u.islandsRepo.GetAllIslands(ctx)
	if err != nil {
		return nil, fmt.Errorf("島カタログの取得に失敗: %w", err)
	}

	topN := req.TopN
	if topN <= 0 {
		topN = DefaultTopN
	}

	results := u.recommendService.Recommend(islands, userVector, topN)
	log.Printf("🎉 レコメンド生成完了 (%d件)", len(results))

	return &model.RecommendResponse{
		UserVector: userVector,
		Results:    results,
	}, nil
}
