package repository

import (
	"math"
	"testing"

	"Shimatabi-App/internal/domain/model"
)

func TestIslandToGeoPoint(t *testing.T) {
	t.Run("経度・緯度の順で座標を格納する", func(t *testing.T) {
		island := &model.Island{ID: "naoshima", Lat: 34.4602, Lng: 133.9957}

		point := IslandToGeoPoint(island)
		if point == nil {
			t.Fatal("GeoPointがnilです")
		}
		if point.Type != "Point" {
			t.Errorf("Typeが想定と異なります: %s", point.Type)
		}
		if point.Coordinates[0] != 133.9957 || point.Coordinates[1] != 34.4602 {
			t.Errorf("座標が[lng, lat]順ではありません: %v", point.Coordinates)
		}
	})

	t.Run("nilの島はnil", func(t *testing.T) {
		if point := IslandToGeoPoint(nil); point != nil {
			t.Errorf("nilが返りませんでした: %+v", point)
		}
	})
}

func TestArchipelagoBounds(t *testing.T) {
	t.Run("全島を含む閉じたリングを返す", func(t *testing.T) {
		islands := []*model.Island{
			{ID: "naoshima", Lat: 34.4602, Lng: 133.9957},
			{ID: "teshima", Lat: 34.4891, Lng: 134.0927},
			{ID: "shodoshima", Lat: 34.5106, Lng: 134.2925},
		}

		bounds := ArchipelagoBounds(islands)
		if bounds == nil {
			t.Fatal("境界がnilです")
		}
		if bounds.Type != "Polygon" {
			t.Errorf("Typeが想定と異なります: %s", bounds.Type)
		}

		ring := bounds.Coordinates[0]
		if len(ring) != 5 {
			t.Fatalf("リングが5点ではありません: %d", len(ring))
		}
		if ring[0][0] != ring[4][0] || ring[0][1] != ring[4][1] {
			t.Error("リングが閉じていません")
		}

		// パディング0.01を含めて全島を内包する
		minLng, minLat := ring[0][0], ring[0][1]
		maxLng, maxLat := ring[2][0], ring[2][1]
		for _, island := range islands {
			if island.Lng < minLng || island.Lng > maxLng || island.Lat < minLat || island.Lat > maxLat {
				t.Errorf("島 %s が境界の外にあります", island.ID)
			}
		}
		if math.Abs(minLng-(133.9957-0.01)) > 1e-9 {
			t.Errorf("西端のパディングが想定と異なります: %f", minLng)
		}
		if math.Abs(maxLat-(34.5106+0.01)) > 1e-9 {
			t.Errorf("北端のパディングが想定と異なります: %f", maxLat)
		}
	})

	t.Run("島が1つもなければnil", func(t *testing.T) {
		if bounds := ArchipelagoBounds(nil); bounds != nil {
			t.Errorf("nilが返りませんでした: %+v", bounds)
		}
	})
}
