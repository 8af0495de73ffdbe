package model

// FerrySchedule は1航路の時刻表
// Departuresは同日内のHH:MM表記で昇順に格納されている前提（日跨ぎなし）
type FerrySchedule struct {
	Route      string   `json:"route" db:"route"`           // 航路名（島名を含む文字列）
	Departures []string `json:"departures" db:"departures"` // 出港時刻リスト（昇順）
	Duration   int      `json:"duration" db:"duration"`     // 片道所要時間（分）
	Fare       int      `json:"fare" db:"fare"`             // 片道運賃（円、0は無料/適用外）
}

// OverlandRouteName は定期航路を持たない島に割り当てる合成航路名
// 実在の航路名と衝突しない表記にしておく
const OverlandRouteName = "陸路移動"

// NewOverlandSchedule は陸路到達可能な島のための合成時刻表を作成する
// 出港時刻を持たず、所要時間は島の移動時間、運賃は0とする
func NewOverlandSchedule(travelTime int) *FerrySchedule {
	return &FerrySchedule{
		Route:      OverlandRouteName,
		Departures: []string{},
		Duration:   travelTime,
		Fare:       0,
	}
}
