package model

// QuizOption は診断クイズの選択肢
// Vectorは部分ベクトルで、定義された次元だけがユーザーベクトルに寄与する
type QuizOption struct {
	Label  string             `json:"label" db:"label"`
	Value  string             `json:"value" db:"value"`
	Vector map[string]float64 `json:"vector" db:"vector"`
}

// QuizQuestion は診断クイズの1問
type QuizQuestion struct {
	ID       string       `json:"id" db:"id"`
	Question string       `json:"question" db:"question"`
	Options  []QuizOption `json:"options" db:"options"`
}

// FindOption は選択肢のvalueから該当するQuizOptionを取得する
func (q *QuizQuestion) FindOption(value string) *QuizOption {
	for i := range q.Options {
		if q.Options[i].Value == value {
			return &q.Options[i]
		}
	}
	return nil
}
