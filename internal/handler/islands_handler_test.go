package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"Shimatabi-App/internal/domain/model"
	repoImpl "Shimatabi-App/internal/repository"
)

func TestGetIslands(t *testing.T) {
	router := newTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/islands", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Islands []model.Island `json:"islands"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("レスポンスのアンマーシャル失敗: %v", err)
	}
	assert.Len(t, body.Islands, 2)
}

func TestGetIslandByID(t *testing.T) {
	router := newTestRouter()

	t.Run("存在する島は200", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/islands/naoshima", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var island model.Island
		if err := json.Unmarshal(w.Body.Bytes(), &island); err != nil {
			t.Fatalf("レスポンスのアンマーシャル失敗: %v", err)
		}
		assert.Equal(t, "直島", island.Name)
	})

	t.Run("存在しない島は404", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/islands/atlantis", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestGetIslandsByCluster(t *testing.T) {
	router := newTestRouter()

	t.Run("クラスター所属の島だけ返す", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/clusters/art/islands", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var body struct {
			Islands []model.Island `json:"islands"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("レスポンスのアンマーシャル失敗: %v", err)
		}
		if assert.Len(t, body.Islands, 1) {
			assert.Equal(t, "naoshima", body.Islands[0].ID)
		}
	})

	t.Run("存在しないクラスターは404", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/clusters/unknown/islands", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestGetArchipelagoBounds(t *testing.T) {
	router := newTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/islands/bounds", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var bounds repoImpl.GeoPolygon
	if err := json.Unmarshal(w.Body.Bytes(), &bounds); err != nil {
		t.Fatalf("レスポンスのアンマーシャル失敗: %v", err)
	}
	assert.Equal(t, "Polygon", bounds.Type)
	if assert.Len(t, bounds.Coordinates, 1) {
		// 閉じたリング（始点と終点が一致する5点）
		ring := bounds.Coordinates[0]
		if assert.Len(t, ring, 5) {
			assert.Equal(t, ring[0], ring[4])
		}
	}
}
