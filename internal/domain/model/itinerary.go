package model

import "time"

// PlannerRequest は日帰りプラン生成に必要な全ての条件を保持する
type PlannerRequest struct {
	DepartureTime string   `json:"departure_time" validate:"required"` // HH:MM（24時間表記）
	ReturnTime    string   `json:"return_time" validate:"required"`    // HH:MM（24時間表記）
	GroupSize     int      `json:"group_size"`
	Preferences   []string `json:"preferences"` // ベクトル次元キーのリスト
	StayType      string   `json:"stay_type" validate:"required,oneof=daytrip onenight extended"`
}

// ItineraryItem は行程表の1イベント
type ItineraryItem struct {
	Time     string `json:"time"`     // HH:MM
	Activity string `json:"activity"` // イベント名
	Location string `json:"location"` // 場所ラベル
	Duration int    `json:"duration"` // 所要時間（分、瞬間イベントは0）
	Icon     string `json:"icon"`
}

// Itinerary は1つの島に対する日帰りプラン
type Itinerary struct {
	Island         *Island         `json:"island"`
	Schedule       []ItineraryItem `json:"schedule"`
	TotalTime      int             `json:"total_time"` // 往路出発から復路到着まで（分）
	Ferry          *FerrySchedule  `json:"ferry"`
	DepartureFerry string          `json:"departure_ferry"` // 採用した往路の出港時刻
	ReturnFerry    string          `json:"return_ferry"`    // 採用した復路の出港時刻
}

// PlannerResponse はプラン生成APIのレスポンス
type PlannerResponse struct {
	Plans []ItineraryPlan `json:"plans"`
}

// ItineraryPlan はFirestoreにキャッシュされるプラン（一時IDつき）
type ItineraryPlan struct {
	PlanID         string          `json:"plan_id"` // 一時ID
	IslandID       string          `json:"island_id"`
	IslandName     string          `json:"island_name"`
	Schedule       []ItineraryItem `json:"schedule"`
	TotalTime      int             `json:"total_time"`
	FerryRoute     string          `json:"ferry_route"`
	FerryFare      int             `json:"ferry_fare"`
	DepartureFerry string          `json:"departure_ferry"`
	ReturnFerry    string          `json:"return_ferry"`
	StayType       string          `json:"stay_type"`
	GroupSize      int             `json:"group_size"`
}

// FirestoreItineraryPlan はFirestore保存用の構造体
type FirestoreItineraryPlan struct {
	IslandID       string          `firestore:"island_id"`
	IslandName     string          `firestore:"island_name"`
	Schedule       []ItineraryItem `firestore:"schedule"`
	TotalTime      int             `firestore:"total_time"`
	FerryRoute     string          `firestore:"ferry_route"`
	FerryFare      int             `firestore:"ferry_fare"`
	DepartureFerry string          `firestore:"departure_ferry"`
	ReturnFerry    string          `firestore:"return_ferry"`
	StayType       string          `firestore:"stay_type"`
	GroupSize      int             `firestore:"group_size"`
	ExpireAt       time.Time       `firestore:"expireAt"`
}

// NewItineraryPlan はItineraryからキャッシュ用プランを作成する
func NewItineraryPlan(planID string, it *Itinerary, stayType string, groupSize int) *ItineraryPlan {
	return &ItineraryPlan{
		PlanID:         planID,
		IslandID:       it.Island.ID,
		IslandName:     it.Island.Name,
		Schedule:       it.Schedule,
		TotalTime:      it.TotalTime,
		FerryRoute:     it.Ferry.Route,
		FerryFare:      it.Ferry.Fare,
		DepartureFerry: it.DepartureFerry,
		ReturnFerry:    it.ReturnFerry,
		StayType:       stayType,
		GroupSize:      groupSize,
	}
}

// ToFirestoreItineraryPlan はTTLを付与してFirestore保存用に変換する
func (p *ItineraryPlan) ToFirestoreItineraryPlan(ttlHours int) *FirestoreItineraryPlan {
	return &FirestoreItineraryPlan{
		IslandID:       p.IslandID,
		IslandName:     p.IslandName,
		Schedule:       p.Schedule,
		TotalTime:      p.TotalTime,
		FerryRoute:     p.FerryRoute,
		FerryFare:      p.FerryFare,
		DepartureFerry: p.DepartureFerry,
		ReturnFerry:    p.ReturnFerry,
		StayType:       p.StayType,
		GroupSize:      p.GroupSize,
		ExpireAt:       time.Now().Add(time.Duration(ttlHours) * time.Hour),
	}
}

// ToItineraryPlan はFirestoreの保存内容からプランを復元する
func (fp *FirestoreItineraryPlan) ToItineraryPlan(planID string) *ItineraryPlan {
	return &ItineraryPlan{
		PlanID:         planID,
		IslandID:       fp.IslandID,
		IslandName:     fp.IslandName,
		Schedule:       fp.Schedule,
		TotalTime:      fp.TotalTime,
		FerryRoute:     fp.FerryRoute,
		FerryFare:      fp.FerryFare,
		DepartureFerry: fp.DepartureFerry,
		ReturnFerry:    fp.ReturnFerry,
		StayType:       fp.StayType,
		GroupSize:      fp.GroupSize,
	}
}
