package service

import (
	"fmt"
	"strings"

	"Shimatabi-App/internal/domain/model"
)

// activityCandidate はスケジュール詰め込み候補の1件
type activityCandidate struct {
	name     string
	duration int
	icon     string
}

// GetActivityIcon はアクティビティ名にマッチするアイコンを取得する
// ActivityIconRulesを上から順に評価し、一致がなければ汎用アイコンを返す
func GetActivityIcon(activity string) string {
	for _, rule := range model.ActivityIconRules {
		for _, keyword := range rule.Keywords {
			if strings.Contains(activity, keyword) {
				return rule.Icon
			}
		}
	}
	return model.IconFallback
}

// BuildSchedule は到着時刻から出発時刻までの行程表を構築する
// 到着イベント（10分）と出発イベント（0分）は必ず両端に入る
// 中間は「見どころ → 食事 → アクティビティ」の候補順に前から詰め、
// 安全マージンを超える最初の候補で打ち切る（スキップして続行はしない）
func BuildSchedule(island *model.Island, arrivalMinutes, departureMinutes int) []model.ItineraryItem {
	var items []model.ItineraryItem
	currentTime := arrivalMinutes

	location := island.Name
	if island.FerryPort != "-" {
		location = fmt.Sprintf("%s 港", island.Name)
	}

	items = append(items, model.ItineraryItem{
		Time:     MinutesToTime(currentTime),
		Activity: fmt.Sprintf("%s 到着", island.Name),
		Location: location,
		Duration: model.ArrivalAllowanceMinutes,
		Icon:     model.IconArrival,
	})
	currentTime += model.ArrivalAllowanceMinutes

	availableMinutes := departureMinutes - currentTime

	var pool []activityCandidate
	for _, attraction := range island.Attractions {
		pool = append(pool, activityCandidate{
			name:     attraction,
			duration: model.AttractionDuration,
			icon:     model.IconAttraction,
		})
	}
	if island.Restaurants > 0 {
		pool = append(pool, activityCandidate{
			name:     fmt.Sprintf("%s グルメ巡り", island.Name),
			duration: model.LocalFoodDuration,
			icon:     model.IconLocalFood,
		})
	}
	for _, activity := range island.Activities {
		pool = append(pool, activityCandidate{
			name:     activity,
			duration: model.ActivityDuration,
			icon:     GetActivityIcon(activity),
		})
	}

	usedMinutes := 0
	for _, act := range pool {
		if usedMinutes+act.duration > availableMinutes-model.SafetyMarginMinutes {
			break
		}
		items = append(items, model.ItineraryItem{
			Time:     MinutesToTime(currentTime),
			Activity: act.name,
			Location: island.Name,
			Duration: act.duration,
			Icon:     act.icon,
		})
		currentTime += act.duration
		usedMinutes += act.duration
	}

	items = append(items, model.ItineraryItem{
		Time:     MinutesToTime(departureMinutes),
		Activity: fmt.Sprintf("%s 出発", island.Name),
		Location: location,
		Duration: 0,
		Icon:     model.IconDeparture,
	})

	return items
}
