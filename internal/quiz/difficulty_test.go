package quiz

import "testing"

func TestByAge(t *testing.T) {
	cases := []struct {
		age  int
		want Difficulty
	}{
		{3, Easy}, {5, Easy}, {6, Medium}, {8, Medium}, {9, Hard}, {14, Hard},
	}
	for _, tc := range cases {
		if got := ByAge(tc.age); got != tc.want {
			t.Errorf("ByAge(%d) = %q, want %q", tc.age, got, tc.want)
		}
	}
}

func TestPromoteDemoteAreAdjacentAndClamped(t *testing.T) {
	if Easy.Promote() != Medium || Medium.Promote() != Hard {
		t.Error("promotion must step one tier")
	}
	if Hard.Promote() != Hard {
		t.Error("hard must stay hard")
	}
	if Hard.Demote() != Medium || Medium.Demote() != Easy {
		t.Error("demotion must step one tier")
	}
	if Easy.Demote() != Easy {
		t.Error("easy must stay easy")
	}
}

func TestGameTypeGeneratable(t *testing.T) {
	for _, g := range []GameType{GameWordImage, GameNumber, GameColor} {
		if !g.Generatable() {
			t.Errorf("%q should be generatable", g)
		}
	}
	if GameAttentionSprint.Generatable() {
		t.Error("attention-sprint is served elsewhere")
	}
	if !GameAttentionSprint.Valid() {
		t.Error("attention-sprint is still a known game type")
	}
	if GameType("tetris").Valid() {
		t.Error("unknown game type should be invalid")
	}
}

func TestStrategyAdaptedFor(t *testing.T) {
	cases := map[Strategy]AdaptedFor{
		StrategyChallenge: AdaptedSuccess,
		StrategySimplify:  AdaptedStruggle,
		StrategyEncourage: AdaptedConfusion,
		StrategyRefocus:   AdaptedConfusion,
		StrategyEnergize:  AdaptedConfusion,
	}
	for s, want := range cases {
		if got := s.AdaptedFor(); got != want {
			t.Errorf("%q.AdaptedFor() = %q, want %q", s, got, want)
		}
	}
}
