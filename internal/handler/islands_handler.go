package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"Shimatabi-App/internal/domain/repository"
	repoImpl "Shimatabi-App/internal/repository"
)

// IslandsHandler は島カタログ参照APIのハンドラー
// カタログは読み取り専用なのでリポジトリをそのまま読み通す
type IslandsHandler struct {
	islandsRepo repository.IslandsRepository
}

// NewIslandsHandler は新しいIslandsHandlerインスタンスを作成
func NewIslandsHandler(islandsRepo repository.IslandsRepository) *IslandsHandler {
	return &IslandsHandler{
		islandsRepo: islandsRepo,
	}
}

// GetIslands は島カタログ全件を取得するエンドポイント
// GET /islands
func (h *IslandsHandler) GetIslands(c *gin.Context) {
	islands, err := h.islandsRepo.GetAllIslands(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "島カタログの取得に失敗しました",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"islands": islands})
}

// GetIslandByID は島を1件取得するエンドポイント
// GET /islands/:id
func (h *IslandsHandler) GetIslandByID(c *gin.Context) {
	id := c.Param("id")

	island, err := h.islandsRepo.GetIslandByID(c.Request.Context(), id)
	if err != nil {
		if strings.Contains(err.Error(), "見つかりません") {
			c.JSON(http.StatusNotFound, gin.H{
				"error":   "島が見つかりません",
				"details": err.Error(),
			})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":   "島の取得に失敗しました",
				"details": err.Error(),
			})
		}
		return
	}

	c.JSON(http.StatusOK, island)
}

// GetIslandsByCluster はクラスター所属の島一覧を取得するエンドポイント
// GET /clusters/:id/islands
func (h *IslandsHandler) GetIslandsByCluster(c *gin.Context) {
	clusterID := c.Param("id")

	islands, err := h.islandsRepo.GetIslandsByCluster(c.Request.Context(), clusterID)
	if err != nil {
		if strings.Contains(err.Error(), "見つかりません") {
			c.JSON(http.StatusNotFound, gin.H{
				"error":   "クラスターが見つかりません",
				"details": err.Error(),
			})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":   "クラスター所属の島の取得に失敗しました",
				"details": err.Error(),
			})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"islands": islands})
}

// GetArchipelagoBounds は全島を含む境界ボックスを取得するエンドポイント
// 地図ビューの初期表示範囲に使う
// GET /islands/bounds
func (h *IslandsHandler) GetArchipelagoBounds(c *gin.Context) {
	islands, err := h.islandsRepo.GetAllIslands(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "島カタログの取得に失敗しました",
			"details": err.Error(),
		})
		return
	}

	bounds := repoImpl.ArchipelagoBounds(islands)
	if bounds == nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "カタログに島が登録されていません",
		})
		return
	}

	c.JSON(http.StatusOK, bounds)
}
