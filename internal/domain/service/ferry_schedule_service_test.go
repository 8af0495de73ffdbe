package service

import (
	"testing"

	"Shimatabi-App/internal/domain/model"
)

func TestTimeToMinutes(t *testing.T) {
	cases := []struct {
		input string
		want  int
	}{
		{"00:00", 0},
		{"07:30", 450},
		{"12:05", 725},
		{"23:59", 1439},
	}
	for _, c := range cases {
		if got := TimeToMinutes(c.input); got != c.want {
			t.Errorf("TimeToMinutes(%s) = %d, want %d", c.input, got, c.want)
		}
	}
}

func TestMinutesToTime(t *testing.T) {
	cases := []struct {
		input int
		want  string
	}{
		{0, "00:00"},
		{450, "07:30"},
		{605, "10:05"},
		{1439, "23:59"},
	}
	for _, c := range cases {
		if got := MinutesToTime(c.input); got != c.want {
			t.Errorf("MinutesToTime(%d) = %s, want %s", c.input, got, c.want)
		}
	}
}

func TestFindFerry(t *testing.T) {
	schedules := []*model.FerrySchedule{
		{Route: "高松 ⇔ 直島（宮浦港）", Departures: []string{"07:30"}, Duration: 50, Fare: 520},
		{Route: "宇野 ⇔ 直島", Departures: []string{"08:00"}, Duration: 20, Fare: 300},
		{Route: "Takamatsu ⇔ Megijima", Departures: []string{"09:00"}, Duration: 20, Fare: 370},
	}

	t.Run("島名を含む航路を返す", func(t *testing.T) {
		ferry := FindFerry(schedules, "直島")
		if ferry == nil {
			t.Fatal("航路が見つかりません")
		}
		// 複数一致する場合はカタログ順の先頭を採用する
		if ferry.Route != "高松 ⇔ 直島（宮浦港）" {
			t.Errorf("先頭一致の航路ではありません: %s", ferry.Route)
		}
	})

	t.Run("英字の島名は小文字化して照合する", func(t *testing.T) {
		ferry := FindFerry(schedules, "MEGIJIMA")
		if ferry == nil {
			t.Fatal("航路が見つかりません")
		}
		if ferry.Route != "Takamatsu ⇔ Megijima" {
			t.Errorf("想定外の航路です: %s", ferry.Route)
		}
	})

	t.Run("一致しない島名はnil", func(t *testing.T) {
		if ferry := FindFerry(schedules, "豊島"); ferry != nil {
			t.Errorf("存在しない島で航路が返りました: %s", ferry.Route)
		}
	})
}

func TestFindDepartureFerry(t *testing.T) {
	ferry := &model.FerrySchedule{
		Route:      "高松 ⇔ 直島",
		Departures: []string{"07:30", "10:00", "13:00", "17:00"},
		Duration:   50,
	}

	t.Run("指定時刻以降で最も早い便を返す", func(t *testing.T) {
		if got := FindDepartureFerry(ferry, TimeToMinutes("08:00")); got != "10:00" {
			t.Errorf("想定外の便です: %s", got)
		}
	})

	t.Run("指定時刻ちょうどの便は乗れる", func(t *testing.T) {
		if got := FindDepartureFerry(ferry, TimeToMinutes("07:30")); got != "07:30" {
			t.Errorf("想定外の便です: %s", got)
		}
	})

	t.Run("最終便より遅ければ空文字列", func(t *testing.T) {
		if got := FindDepartureFerry(ferry, TimeToMinutes("17:01")); got != "" {
			t.Errorf("便が返りました: %s", got)
		}
	})
}

func TestFindReturnFerry(t *testing.T) {
	ferry := &model.FerrySchedule{
		Route:      "高松 ⇔ 直島",
		Departures: []string{"07:30", "10:00", "13:00", "17:00"},
		Duration:   50,
	}

	t.Run("条件を満たす最も遅い便を返す", func(t *testing.T) {
		// 09:00着、最低滞在60分、19:00までに帰着
		got := FindReturnFerry(ferry, TimeToMinutes("19:00"), 60, TimeToMinutes("09:00"))
		if got != "17:00" {
			t.Errorf("想定外の便です: %s", got)
		}
	})

	t.Run("帰着期限で後ろの便が落ちる", func(t *testing.T) {
		// 17:00便は17:50着で期限超過、13:00便が採用される
		got := FindReturnFerry(ferry, TimeToMinutes("14:00"), 60, TimeToMinutes("09:00"))
		if got != "13:00" {
			t.Errorf("想定外の便です: %s", got)
		}
	})

	t.Run("最低滞在時間を確保できなければ空文字列", func(t *testing.T) {
		got := FindReturnFerry(ferry, TimeToMinutes("19:00"), 60, TimeToMinutes("16:30"))
		if got != "" {
			t.Errorf("便が返りました: %s", got)
		}
	})

	t.Run("滞在時間ちょうどの便は乗れる", func(t *testing.T) {
		// 12:00着 + 60分 = 13:00発ちょうど
		got := FindReturnFerry(ferry, TimeToMinutes("19:00"), 60, TimeToMinutes("12:00"))
		if got != "17:00" {
			t.Errorf("想定外の便です: %s", got)
		}
		got = FindReturnFerry(ferry, TimeToMinutes("13:50"), 60, TimeToMinutes("12:00"))
		if got != "13:00" {
			t.Errorf("想定外の便です: %s", got)
		}
	})
}
