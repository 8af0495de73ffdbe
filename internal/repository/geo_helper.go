package repository

import (
	"github.com/paulmach/orb"

	"Shimatabi-App/internal/domain/model"
)

// GeoPoint GeoJSON POINT のJSON表現
type GeoPoint struct {
	Type        string    `json:"type"`
	Coordinates []float64 `json:"coordinates"` // [longitude, latitude]
}

// GeoPolygon GeoJSON POLYGON のJSON表現
type GeoPolygon struct {
	Type        string        `json:"type"`
	Coordinates [][][]float64 `json:"coordinates"`
}

// IslandToGeoPoint 島の座標をGeoJSON POINT形式に変換
func IslandToGeoPoint(island *model.Island) *GeoPoint {
	if island == nil {
		return nil
	}

	point := orb.Point{island.Lng, island.Lat}

	return &GeoPoint{
		Type:        "Point",
		Coordinates: []float64{point.Lon(), point.Lat()},
	}
}

// ArchipelagoBounds 全島を含む境界ボックスをGeoJSON POLYGONとして作成
// 地図表示の初期ビューポートに使う。島が1つもない場合はnil
func ArchipelagoBounds(islands []*model.Island) *GeoPolygon {
	if len(islands) == 0 {
		return nil
	}

	first := orb.Point{islands[0].Lng, islands[0].Lat}
	bound := orb.Bound{Min: first, Max: first}

	for _, island := range islands[1:] {
		bound = bound.Extend(orb.Point{island.Lng, island.Lat})
	}

	// 沿岸の航路分だけ余裕を持たせる（約1km強）
	padding := 0.01
	bound = bound.Pad(padding)

	minLng := bound.Min.Lon()
	minLat := bound.Min.Lat()
	maxLng := bound.Max.Lon()
	maxLat := bound.Max.Lat()

	coordinates := [][][]float64{
		{
			{minLng, minLat}, // 左下
			{maxLng, minLat}, // 右下
			{maxLng, maxLat}, // 右上
			{minLng, maxLat}, // 左上
			{minLng, minLat}, // 閉じる
		},
	}

	return &GeoPolygon{
		Type:        "Polygon",
		Coordinates: coordinates,
	}
}
