package rating

import "testing"

func TestUpdateElo_EvenMatch(t *testing.T) {
	if got := UpdateElo(1000, 1000, true); got != 1016 {
		t.Fatalf("even-match win = %d, want 1016", got)
	}
	if got := UpdateElo(1000, 1000, false); got != 984 {
		t.Fatalf("even-match loss = %d, want 984", got)
	}
}

func TestUpdateElo_WinNeverDecreases(t *testing.T) {
	cases := [][2]int{{1000, 1000}, {2000, 100}, {100, 2000}, {0, 0}}
	for _, c := range cases {
		if got := UpdateElo(c[0], c[1], true); got < c[0] {
			t.Fatalf("winning at %d vs %d decreased the rating to %d", c[0], c[1], got)
		}
	}
}

func TestUpdateElo_UpsetPaysMore(t *testing.T) {
	upset := UpdateElo(1000, 1400, true) - 1000
	expected := UpdateElo(1400, 1000, true) - 1400
	if upset <= expected {
		t.Fatalf("beating a stronger opponent must pay more: upset +%d, expected +%d", upset, expected)
	}
}

func TestUpdateElo_FloorsAtZero(t *testing.T) {
	if got := UpdateElo(10, 10, false); got != 0 {
		t.Fatalf("rating must floor at zero, got %d", got)
	}
}

func TestTier_Boundaries(t *testing.T) {
	cases := []struct {
		rating int
		want   string
	}{
		{0, "Bronze"},
		{999, "Bronze"},
		{1000, "Silver"},
		{1199, "Silver"},
		{1200, "Gold"},
		{1399, "Gold"},
		{1400, "Platinum"},
		{1599, "Platinum"},
		{1600, "Diamond"},
		{1799, "Diamond"},
		{1800, "Legendary"},
		{2400, "Legendary"},
	}
	for _, c := range cases {
		if got := Tier(c.rating); got != c.want {
			t.Fatalf("Tier(%d) = %s, want %s", c.rating, got, c.want)
		}
	}
}
