package model

// StayTypeConstants はアプリケーションで使用する滞在タイプの定数
const (
	StayTypeDaytrip  = "daytrip"
	StayTypeOnenight = "onenight"
	StayTypeExtended = "extended"
)

// GetAllStayTypes は全滞在タイプの一覧を取得する
func GetAllStayTypes() []string {
	return []string{StayTypeDaytrip, StayTypeOnenight, StayTypeExtended}
}

// IsValidStayType は滞在タイプが定義済みかどうかを判定する
func IsValidStayType(stayType string) bool {
	for _, st := range GetAllStayTypes() {
		if st == stayType {
			return true
		}
	}
	return false
}

// レコメンド理由生成の閾値
const (
	// ReasonUserThreshold ユーザー側の値がこれを超える次元のみ理由候補になる
	ReasonUserThreshold = 0.3
	// ReasonStrongTraitThreshold 島側の値がこれ以上の次元だけ理由文を出す
	ReasonStrongTraitThreshold = 0.6
	// MaxReasons 理由文の最大件数
	MaxReasons = 3
	// NearbyTravelTimeMinutes この分数以内なら「すぐ着く」理由を追加する
	NearbyTravelTimeMinutes = 30
)

// ReasonLabelMap は次元キーから理由文へのマッピング
var ReasonLabelMap = map[string]string{
	DimAccessibility: "アクセスが良くて行きやすい島です",
	DimNature:        "自然景観が美しい島です",
	DimCulture:       "文化・歴史体験が豊富です",
	DimFood:          "美味しいグルメが楽しめます",
	DimActivity:      "多彩なアクティビティが楽しめます",
	DimAccommodation: "宿泊施設が充実しています",
	DimTranquility:   "静かで穏やかに過ごせます",
	DimFamily:        "家族旅行にぴったりです",
}

// GetReasonLabel は次元キーから理由文を取得する
func GetReasonLabel(key string) string {
	if label, ok := ReasonLabelMap[key]; ok {
		return label
	}
	return key // デフォルトはそのまま返す
}

// スケジュール構築の固定パラメータ（分）
const (
	ArrivalAllowanceMinutes = 10 // 到着イベントに割り当てる時間
	SafetyMarginMinutes     = 20 // 出発前に残す安全マージン
	MinStayMinutes          = 60 // 定期航路利用時の最低滞在時間
	OverlandBufferMinutes   = 15 // 陸路移動時の往路・復路バッファ
	AttractionDuration      = 40 // 見どころ1箇所の所要時間
	LocalFoodDuration       = 60 // 食事の所要時間
	ActivityDuration        = 50 // アクティビティ1件の所要時間
)

// スケジュールアイテムのアイコン
const (
	IconArrival    = "🚢"
	IconDeparture  = "⛴️"
	IconAttraction = "📸"
	IconLocalFood  = "🍽️"
	IconFallback   = "🏝️"
)

// ActivityIconRule はアクティビティ名のキーワードからアイコンを決める1ルール
type ActivityIconRule struct {
	Keywords []string
	Icon     string
}

// ActivityIconRules はキーワード→アイコンの静的な優先順位付きテーブル
// 上から順に評価し、最初に一致したルールのアイコンを使う
var ActivityIconRules = []ActivityIconRule{
	{Keywords: []string{"トレッキング", "登山", "遊歩道"}, Icon: "🥾"},
	{Keywords: []string{"釣り"}, Icon: "🎣"},
	{Keywords: []string{"海水浴", "シュノーケリング"}, Icon: "🏊"},
	{Keywords: []string{"夕日", "日の出"}, Icon: "🌅"},
	{Keywords: []string{"キャンプ"}, Icon: "⛺"},
	{Keywords: []string{"写真"}, Icon: "📷"},
	{Keywords: []string{"カフェ"}, Icon: "☕"},
	{Keywords: []string{"グルメ", "海鮮"}, Icon: "🦐"},
	{Keywords: []string{"文化", "歴史", "散策"}, Icon: "🏛️"},
}
