package service

import (
	"sort"

	"Shimatabi-App/internal/domain/model"
)

// ItineraryService は日帰りプラン生成のオーケストレーションを行うサービス
type ItineraryService interface {
	GenerateItineraries(islands []*model.Island, schedules []*model.FerrySchedule, req *model.PlannerRequest) []*model.Itinerary
}

type itineraryService struct{}

// NewItineraryService は新しいItineraryServiceインスタンスを作成する
func NewItineraryService() ItineraryService {
	return &itineraryService{}
}

// MaxItineraries は返却するプランの最大件数
const MaxItineraries = 5

// GenerateItineraries は全島に対して航路照合とスケジュール構築を行い、
// 希望条件スコアの降順で上位5件のプランを返す
// 航路なし・便なし・滞在時間不足の島は黙ってスキップする（島単位のエラーは出さない）
// GroupSizeとStayTypeは現状スケジューリングに影響しないパススルー項目
func (s *itineraryService) GenerateItineraries(islands []*model.Island, schedules []*model.FerrySchedule, req *model.PlannerRequest) []*model.Itinerary {
	depMinutes := TimeToMinutes(req.DepartureTime)
	retMinutes := TimeToMinutes(req.ReturnTime)

	var results []*model.Itinerary

	for _, island := range islands {
		if !island.HasScheduledFerry() {
			// 陸路到達可能な島は時刻表を使わず、前後15分のバッファで滞在枠を作る
			stayMinutes := retMinutes - depMinutes - 2*model.OverlandBufferMinutes
			if stayMinutes < model.MinStayMinutes {
				continue
			}

			schedule := BuildSchedule(island, depMinutes+model.OverlandBufferMinutes, retMinutes-model.OverlandBufferMinutes)
			results = append(results, &model.Itinerary{
				Island:         island,
				Schedule:       schedule,
				TotalTime:      retMinutes - depMinutes,
				Ferry:          model.NewOverlandSchedule(island.TravelTime),
				DepartureFerry: req.DepartureTime,
				ReturnFerry:    req.ReturnTime,
			})
			continue
		}

		ferry := FindFerry(schedules, island.Name)
		if ferry == nil {
			continue
		}

		depFerry := FindDepartureFerry(ferry, depMinutes)
		if depFerry == "" {
			continue
		}

		arrivalMinutes := TimeToMinutes(depFerry) + ferry.Duration
		retFerry := FindReturnFerry(ferry, retMinutes, model.MinStayMinutes, arrivalMinutes)
		if retFerry == "" {
			continue
		}

		schedule := BuildSchedule(island, arrivalMinutes, TimeToMinutes(retFerry))
		totalTime := TimeToMinutes(retFerry) + ferry.Duration - TimeToMinutes(depFerry)

		results = append(results, &model.Itinerary{
			Island:         island,
			Schedule:       schedule,
			TotalTime:      totalTime,
			Ferry:          ferry,
			DepartureFerry: depFerry,
			ReturnFerry:    retFerry,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return preferenceScore(results[i], req.Preferences) > preferenceScore(results[j], req.Preferences)
	})

	if len(results) > MaxItineraries {
		results = results[:MaxItineraries]
	}
	return results
}

// preferenceScore は希望次元キーごとの島ベクトル値を合算する
// 未知のキーは0として扱い、キー数による正規化は行わない
func preferenceScore(it *model.Itinerary, preferences []string) float64 {
	var score float64
	for _, pref := range preferences {
		score += it.Island.Vector.Value(pref)
	}
	return score
}
