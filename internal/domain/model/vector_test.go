package model

import "testing"

func TestIslandVectorValue(t *testing.T) {
	vector := IslandVector{Nature: 0.8, Food: 0.4}

	if got := vector.Value(DimNature); got != 0.8 {
		t.Errorf("Value(nature) = %f, want 0.8", got)
	}
	if got := vector.Value("sunshine"); got != 0 {
		t.Errorf("未知のキーが0ではありません: %f", got)
	}
}

func TestIslandVectorSetValue(t *testing.T) {
	var vector IslandVector

	for _, key := range VectorKeys {
		vector.SetValue(key, 0.5)
	}
	for _, key := range VectorKeys {
		if vector.Value(key) != 0.5 {
			t.Errorf("次元 %s が0.5ではありません: %f", key, vector.Value(key))
		}
	}

	// 未知のキーは無視される
	before := vector
	vector.SetValue("sunshine", 1.0)
	if vector != before {
		t.Error("未知のキーの設定でベクトルが変化しました")
	}
}

func TestIslandVectorValues(t *testing.T) {
	vector := IslandVector{Accessibility: 0.1, Family: 0.9}

	values := vector.Values()
	if len(values) != len(VectorKeys) {
		t.Fatalf("次元数が%dではありません: %d", len(VectorKeys), len(values))
	}
	if values[0] != 0.1 {
		t.Errorf("先頭がaccessibilityの値ではありません: %f", values[0])
	}
	if values[len(values)-1] != 0.9 {
		t.Errorf("末尾がfamilyの値ではありません: %f", values[len(values)-1])
	}
}

func TestQuizQuestionFindOption(t *testing.T) {
	question := QuizQuestion{
		ID: "q1",
		Options: []QuizOption{
			{Label: "自然", Value: "nature"},
			{Label: "文化", Value: "culture"},
		},
	}

	option := question.FindOption("culture")
	if option == nil {
		t.Fatal("選択肢が見つかりません")
	}
	if option.Label != "文化" {
		t.Errorf("ラベルが想定と異なります: %s", option.Label)
	}

	if question.FindOption("unknown") != nil {
		t.Error("存在しない選択肢が返りました")
	}
}

func TestIsValidStayType(t *testing.T) {
	for _, st := range GetAllStayTypes() {
		if !IsValidStayType(st) {
			t.Errorf("%s が有効と判定されません", st)
		}
	}
	if IsValidStayType("weekly") {
		t.Error("weeklyが有効と判定されました")
	}
}
