package model

// RecommendRequest はレコメンドAPIのリクエスト
type RecommendRequest struct {
	Answers []QuizAnswer `json:"answers" validate:"required"`
	TopN    int          `json:"top_n"`
}

// QuizAnswer はユーザーが回答した1問分の選択
type QuizAnswer struct {
	QuestionID string `json:"question_id" validate:"required"`
	Value      string `json:"value" validate:"required"`
}

// RecommendResult は1島分のレコメンド結果
type RecommendResult struct {
	Island       *Island  `json:"island"`
	Score        float64  `json:"score"`         // コサイン類似度（実用上0〜1）
	MatchPercent int      `json:"match_percent"` // round(score * 100)
	Reasons      []string `json:"reasons"`       // 最大3件の理由文
}

// RecommendResponse はレコメンドAPIのレスポンス
// UserVectorは診断結果のレーダーチャート表示に使う
type RecommendResponse struct {
	UserVector IslandVector      `json:"user_vector"`
	Results    []RecommendResult `json:"results"`
}
