package service

import (
	"fmt"
	"strconv"
	"strings"

	"Shimatabi-App/internal/domain/model"
)

// TimeToMinutes はHH:MM表記を0時からの経過分に変換する
// 時刻文字列はハンドラー層で検証済みの前提（不正値はここでは扱わない）
func TimeToMinutes(t string) int {
	parts := strings.Split(t, ":")
	if len(parts) != 2 {
		return 0
	}
	h, _ := strconv.Atoi(parts[0])
	m, _ := strconv.Atoi(parts[1])
	return h*60 + m
}

// MinutesToTime は経過分をHH:MM表記に変換する
func MinutesToTime(m int) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// FindFerry は島名を含む航路を時刻表から探す
// まず完全一致の部分文字列、次に小文字化した部分文字列で判定し、最初の一致を返す
// 複数の航路が島名を含む場合もカタログ順の先頭を採用する
func FindFerry(schedules []*model.FerrySchedule, islandName string) *model.FerrySchedule {
	for _, s := range schedules {
		if strings.Contains(s.Route, islandName) ||
			strings.Contains(strings.ToLower(s.Route), strings.ToLower(islandName)) {
			return s
		}
	}
	return nil
}

// FindDepartureFerry は指定時刻以降で最も早い出港時刻を返す
// 見つからない場合は空文字列
func FindDepartureFerry(ferry *model.FerrySchedule, afterMinutes int) string {
	for _, dep := range ferry.Departures {
		if TimeToMinutes(dep) >= afterMinutes {
			return dep
		}
	}
	return ""
}

// FindReturnFerry は滞在条件と帰着期限を満たす最も遅い出港時刻を返す
// 条件: 出港 >= 到着+最低滞在時間 かつ 出港+所要時間 <= 帰着期限
func FindReturnFerry(ferry *model.FerrySchedule, beforeMinutes, stayMinutes, arrivalMinutes int) string {
	result := ""
	for _, dep := range ferry.Departures {
		depMin := TimeToMinutes(dep)
		if depMin >= arrivalMinutes+stayMinutes && depMin+ferry.Duration <= beforeMinutes {
			result = dep
		}
	}
	return result
}
