package handler

import (
	"net/http"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin"

	"Shimatabi-App/internal/domain/model"
	"Shimatabi-App/internal/domain/service"
	"Shimatabi-App/internal/usecase"
)

// PlannerHandler は日帰りプランAPIのハンドラー
type PlannerHandler struct {
	plannerUseCase usecase.PlannerUseCase
}

// NewPlannerHandler は新しいPlannerHandlerインスタンスを作成
func NewPlannerHandler(plannerUseCase usecase.PlannerUseCase) *PlannerHandler {
	return &PlannerHandler{
		plannerUseCase: plannerUseCase,
	}
}

// timePattern HH:MM（24時間表記）の形式チェック
var timePattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// PostPlans は日帰りプランを生成するエンドポイント
// POST /planner/plans
func (h *PlannerHandler) PostPlans(c *gin.Context) {
	var req model.PlannerRequest

	// リクエストボディのバインド
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "リクエストの形式が正しくありません",
			"details": err.Error(),
		})
		return
	}

	// バリデーション（不正な時刻はコアに渡さずここで弾く）
	if err := h.validateRequest(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "バリデーションエラー",
			"details": err.Error(),
		})
		return
	}

	// UseCase呼び出し
	response, err := h.plannerUseCase.GeneratePlans(c.Request.Context(), &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "プランの生成に失敗しました",
			"details": err.Error(),
		})
		return
	}

	// 成功レスポンス
	c.JSON(http.StatusOK, response)
}

// GetPlan は保存済みプランを取得するエンドポイント
// GET /planner/plans/:id
func (h *PlannerHandler) GetPlan(c *gin.Context) {
	planID := c.Param("id")
	if planID == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "plan_idが指定されていません",
		})
		return
	}

	// UseCaseから取得
	plan, err := h.plannerUseCase.GetPlan(c.Request.Context(), planID)
	if err != nil {
		// エラーメッセージから404か500かを判定
		if strings.Contains(err.Error(), "見つかりません") || strings.Contains(err.Error(), "有効期限切れ") {
			c.JSON(http.StatusNotFound, gin.H{
				"error":   "プランが見つかりません",
				"details": err.Error(),
			})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":   "プランの取得に失敗しました",
				"details": err.Error(),
			})
		}
		return
	}

	// 成功レスポンス
	c.JSON(http.StatusOK, plan)
}

// validateRequest はリクエストの詳細バリデーションを行う
func (h *PlannerHandler) validateRequest(req *model.PlannerRequest) error {
	// 時刻の形式チェック
	if !timePattern.MatchString(req.DepartureTime) {
		return &ValidationError{Field: "departure_time", Message: "HH:MM（24時間表記）で指定してください"}
	}
	if !timePattern.MatchString(req.ReturnTime) {
		return &ValidationError{Field: "return_time", Message: "HH:MM（24時間表記）で指定してください"}
	}

	// 帰着は出発より後（同日内、日跨ぎ非対応）
	if service.TimeToMinutes(req.ReturnTime) <= service.TimeToMinutes(req.DepartureTime) {
		return &ValidationError{Field: "return_time", Message: "帰着時刻は出発時刻より後に指定してください"}
	}

	// 人数のチェック
	if req.GroupSize < 1 {
		return &ValidationError{Field: "group_size", Message: "group_sizeは1以上で指定してください"}
	}

	// 滞在タイプのチェック
	if !model.IsValidStayType(req.StayType) {
		return &ValidationError{Field: "stay_type", Message: "stay_typeは'daytrip'、'onenight'、'extended'のいずれかを指定してください"}
	}

	return nil
}

// ValidationError はバリデーションエラーを表す
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}
