package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"Shimatabi-App/internal/domain/model"
	"Shimatabi-App/internal/usecase"
)

// RecommendHandler は島レコメンドAPIのハンドラー
type RecommendHandler struct {
	recommendUseCase usecase.RecommendUseCase
}

// NewRecommendHandler は新しいRecommendHandlerインスタンスを作成
func NewRecommendHandler(recommendUseCase usecase.RecommendUseCase) *RecommendHandler {
	return &RecommendHandler{
		recommendUseCase: recommendUseCase,
	}
}

// GetQuizQuestions は診断クイズの一覧を取得するエンドポイント
// GET /quiz/questions
func (h *RecommendHandler) GetQuizQuestions(c *gin.Context) {
	questions, err := h.recommendUseCase.GetQuizQuestions(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "診断クイズの取得に失敗しました",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"questions": questions})
}

// PostRecommend は診断回答から島レコメンドを生成するエンドポイント
// POST /recommend
func (h *RecommendHandler) PostRecommend(c *gin.Context) {
	var req model.RecommendRequest

	// リクエストボディのバインド
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "リクエストの形式が正しくありません",
			"details": err.Error(),
		})
		return
	}

	// バリデーション
	if err := h.validateRequest(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "バリデーションエラー",
			"details": err.Error(),
		})
		return
	}

	// UseCase呼び出し
	response, err := h.recommendUseCase.GetRecommendations(c.Request.Context(), &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "レコメンドの生成に失敗しました",
			"details": err.Error(),
		})
		return
	}

	// 成功レスポンス
	c.JSON(http.StatusOK, response)
}

// validateRequest はリクエストの詳細バリデーションを行う
func (h *RecommendHandler) validateRequest(req *model.RecommendRequest) error {
	if req.Answers == nil {
		return &ValidationError{Field: "answers", Message: "回答リストは必須です"}
	}

	for i, answer := range req.Answers {
		if answer.QuestionID == "" {
			return &ValidationError{Field: fmt.Sprintf("answers[%d].question_id", i), Message: "question_idは必須です"}
		}
		if answer.Value == "" {
			return &ValidationError{Field: fmt.Sprintf("answers[%d].value", i), Message: "valueは必須です"}
		}
	}

	if req.TopN < 0 {
		return &ValidationError{Field: "top_n", Message: "top_nは0以上で指定してください"}
	}

	return nil
}
