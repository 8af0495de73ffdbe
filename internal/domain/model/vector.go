package model

// 8次元ベクトルの各次元キー
const (
	DimAccessibility = "accessibility"
	DimNature        = "nature"
	DimCulture       = "culture"
	DimFood          = "food"
	DimActivity      = "activity"
	DimAccommodation = "accommodation"
	DimTranquility   = "tranquility"
	DimFamily        = "family"
)

// VectorKeys はベクトル次元の固定順序（島・ユーザー共通）
var VectorKeys = []string{
	DimAccessibility, DimNature, DimCulture, DimFood,
	DimActivity, DimAccommodation, DimTranquility, DimFamily,
}

// IslandVector は島の特性とユーザーの好みを共通で表す8次元プロファイル
// 各値は0〜1を想定するが、正規化箇所以外ではクランプしない
type IslandVector struct {
	Accessibility float64 `json:"accessibility"`
	Nature        float64 `json:"nature"`
	Culture       float64 `json:"culture"`
	Food          float64 `json:"food"`
	Activity      float64 `json:"activity"`
	Accommodation float64 `json:"accommodation"`
	Tranquility   float64 `json:"tranquility"`
	Family        float64 `json:"family"`
}

// Value は次元キーに対応する値を取得する（未知のキーは0）
func (v IslandVector) Value(key string) float64 {
	switch key {
	case DimAccessibility:
		return v.Accessibility
	case DimNature:
		return v.Nature
	case DimCulture:
		return v.Culture
	case DimFood:
		return v.Food
	case DimActivity:
		return v.Activity
	case DimAccommodation:
		return v.Accommodation
	case DimTranquility:
		return v.Tranquility
	case DimFamily:
		return v.Family
	default:
		return 0
	}
}

// SetValue は次元キーに対応する値を設定する（未知のキーは無視）
func (v *IslandVector) SetValue(key string, value float64) {
	switch key {
	case DimAccessibility:
		v.Accessibility = value
	case DimNature:
		v.Nature = value
	case DimCulture:
		v.Culture = value
	case DimFood:
		v.Food = value
	case DimActivity:
		v.Activity = value
	case DimAccommodation:
		v.Accommodation = value
	case DimTranquility:
		v.Tranquility = value
	case DimFamily:
		v.Family = value
	}
}

// Values はVectorKeys順の値スライスを返す
func (v IslandVector) Values() []float64 {
	values := make([]float64, len(VectorKeys))
	for i, key := range VectorKeys {
		values[i] = v.Value(key)
	}
	return values
}
