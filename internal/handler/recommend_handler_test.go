package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"Shimatabi-App/internal/domain/model"
)

func TestGetQuizQuestions(t *testing.T) {
	router := newTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/quiz/questions", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Questions []model.QuizQuestion `json:"questions"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("レスポンスのアンマーシャル失敗: %v", err)
	}
	if assert.Len(t, body.Questions, 2) {
		assert.Equal(t, "q1", body.Questions[0].ID)
		assert.NotEmpty(t, body.Questions[0].Options)
	}
}

func TestPostRecommendValidation(t *testing.T) {
	router := newTestRouter()

	cases := []struct {
		name string
		body string
	}{
		{"answersなし", `{"top_n": 3}`},
		{"question_idなし", `{"answers": [{"value": "nature"}]}`},
		{"valueなし", `{"answers": [{"question_id": "q1"}]}`},
		{"top_nが負", `{"answers": [], "top_n": -1}`},
		{"壊れたJSON", `{"answers": [`},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/recommend", strings.NewReader(c.body))
			req.Header.Set("Content-Type", "application/json")
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestPostRecommend(t *testing.T) {
	router := newTestRouter()

	t.Run("診断回答からレコメンドを返す", func(t *testing.T) {
		body := `{"answers": [{"question_id": "q1", "value": "culture"}, {"question_id": "q2", "value": "foodie"}], "top_n": 2}`

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/recommend", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var response model.RecommendResponse
		if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
			t.Fatalf("レスポンスのアンマーシャル失敗: %v", err)
		}

		// culture 0.9 / foodie 0.9 を2回答で平均
		assert.InDelta(t, 0.45, response.UserVector.Culture, 1e-9)
		assert.InDelta(t, 0.45, response.UserVector.Food, 1e-9)

		if assert.Len(t, response.Results, 2) {
			// 文化・食の回答には直島が先頭で返る
			assert.Equal(t, "naoshima", response.Results[0].Island.ID)
			assert.GreaterOrEqual(t, response.Results[0].Score, response.Results[1].Score)
			for _, r := range response.Results {
				assert.GreaterOrEqual(t, r.MatchPercent, 0)
				assert.LessOrEqual(t, r.MatchPercent, 100)
				assert.LessOrEqual(t, len(r.Reasons), model.MaxReasons)
			}
		}
	})

	t.Run("未知の質問IDはスキップして処理を続ける", func(t *testing.T) {
		body := `{"answers": [{"question_id": "q99", "value": "nature"}, {"question_id": "q1", "value": "nature"}]}`

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/recommend", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var response model.RecommendResponse
		if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
			t.Fatalf("レスポンスのアンマーシャル失敗: %v", err)
		}
		// 有効な回答1件だけでベクトルが作られる
		assert.InDelta(t, 0.9, response.UserVector.Nature, 1e-9)
	})

	t.Run("空の回答リストでも200で全件0スコア", func(t *testing.T) {
		body := `{"answers": []}`

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/recommend", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var response model.RecommendResponse
		if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
			t.Fatalf("レスポンスのアンマーシャル失敗: %v", err)
		}
		for _, r := range response.Results {
			assert.Equal(t, float64(0), r.Score)
			assert.Equal(t, 0, r.MatchPercent)
		}
	})
}
