package notify

import "testing"

func TestShowReachesAllSinks(t *testing.T) {
	svc := NewService()
	var first, second []Notification
	svc.Subscribe(func(n Notification) { first = append(first, n) })
	svc.Subscribe(func(n Notification) { second = append(second, n) })

	svc.Warning("careful")
	svc.Danger("broken")

	for name, got := range map[string][]Notification{"first": first, "second": second} {
		if len(got) != 2 {
			t.Fatalf("%s sink saw %d notifications", name, len(got))
		}
		if got[0].Level != LevelWarning || got[0].Message != "careful" {
			t.Errorf("%s sink [0] = %+v", name, got[0])
		}
		if got[1].Level != LevelDanger || got[1].Message != "broken" {
			t.Errorf("%s sink [1] = %+v", name, got[1])
		}
	}
}

func TestNotificationsHaveDistinctIDs(t *testing.T) {
	svc := NewService()
	var got []Notification
	svc.Subscribe(func(n Notification) { got = append(got, n) })

	svc.Info("one")
	svc.Info("one")
	if got[0].ID == "" || got[0].ID == got[1].ID {
		t.Errorf("ids = %q, %q, want distinct non-empty", got[0].ID, got[1].ID)
	}
}

func TestLevelHelpers(t *testing.T) {
	svc := NewService()
	var got []Notification
	svc.Subscribe(func(n Notification) { got = append(got, n) })

	svc.Success("s")
	svc.Info("i")
	svc.Warning("w")
	svc.Danger("d")

	want := []Level{LevelSuccess, LevelInfo, LevelWarning, LevelDanger}
	for i, lvl := range want {
		if got[i].Level != lvl {
			t.Errorf("got[%d].Level = %s, want %s", i, got[i].Level, lvl)
		}
	}
}
