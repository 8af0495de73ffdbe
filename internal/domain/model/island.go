package model

// Island は島カタログの1エントリを表すモデル
// カタログは起動時に一括ロードされ、リクエスト処理中は不変として扱う
type Island struct {
	ID             string       `json:"id" db:"id"`
	Name           string       `json:"name" db:"name"`
	NameEn         string       `json:"name_en" db:"name_en"`
	Description    string       `json:"description" db:"description"`
	Lat            float64      `json:"lat" db:"lat"`
	Lng            float64      `json:"lng" db:"lng"`
	Area           float64      `json:"area" db:"area"`
	Population     int          `json:"population" db:"population"`
	AgingRate      float64      `json:"aging_rate" db:"aging_rate"`
	TravelTime     int          `json:"travel_time" db:"travel_time"`       // 港からの所要時間（分）
	FerryFrequency int          `json:"ferry_frequency" db:"ferry_frequency"` // 0は定期航路なし（陸路到達可）
	FerryPort      string       `json:"ferry_port" db:"ferry_port"`
	FerryName      string       `json:"ferry_name" db:"ferry_name"`
	Attractions    []string     `json:"attractions" db:"attractions"`
	Restaurants    int          `json:"restaurants" db:"restaurants"`
	Accommodations int          `json:"accommodations" db:"accommodations"`
	CulturalSites  []string     `json:"cultural_sites" db:"cultural_sites"`
	Activities     []string     `json:"activities" db:"activities"`
	BestSeason     string       `json:"best_season" db:"best_season"`
	Vector         IslandVector `json:"vector" db:"vector"`
	Cluster        string       `json:"cluster" db:"cluster"`
	Status         string       `json:"status" db:"status"` // "green" / "yellow" / "red"
	NextFerry      string       `json:"next_ferry" db:"next_ferry"`
	Weather        *Weather     `json:"weather,omitempty" db:"weather"`
	Marine         *Marine      `json:"marine,omitempty" db:"marine"`
	Festivals      []Festival   `json:"festivals" db:"festivals"`
	Hashtags       []string     `json:"hashtags" db:"hashtags"`
}

// IsListed はカタログ上有効な島かどうかを判定する
// 人口が負の値のエントリは撤去済み・プレースホルダーとして除外する
func (i *Island) IsListed() bool {
	return i.Population >= 0
}

// HasScheduledFerry は定期航路を持つ島かどうかを判定する
func (i *Island) HasScheduledFerry() bool {
	return i.FerryFrequency > 0
}

// Weather は島の現在の気象情報
type Weather struct {
	Temp      float64 `json:"temp"`
	Condition string  `json:"condition"`
	Wind      float64 `json:"wind"`
	Wave      float64 `json:"wave"`
}

// Marine は海洋環境の観測値
type Marine struct {
	SeaTemp         float64 `json:"sea_temp"`
	WaterQuality    float64 `json:"water_quality"`
	Transparency    float64 `json:"transparency"`
	DissolvedOxygen float64 `json:"dissolved_oxygen"`
}

// Festival は島で開催される祭り・イベント
type Festival struct {
	Name        string `json:"name"`
	Period      string `json:"period"`
	Description string `json:"description"`
}

// Cluster は島のカテゴリ分類（テーマ別グループ）
type Cluster struct {
	ID          string   `json:"id" db:"id"`
	Name        string   `json:"name" db:"name"`
	NameEn      string   `json:"name_en" db:"name_en"`
	Description string   `json:"description" db:"description"`
	Color       string   `json:"color" db:"color"`
	Icon        string   `json:"icon" db:"icon"`
	Islands     []string `json:"islands" db:"islands"` // 所属する島のIDリスト
}
