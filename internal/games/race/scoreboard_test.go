package race

import "testing"

func TestWinCondition(t *testing.T) {
	tests := []struct {
		name   string
		scores []int
		winner int
		won    bool
	}{
		{"10-7 margin 3", []int{10, 7}, 0, true},
		{"10-9 margin 1", []int{10, 9}, -1, false},
		{"11-9 margin 2", []int{11, 9}, 0, true},
		{"9-0 below threshold", []int{9, 0}, -1, false},
		{"7-10 second player", []int{7, 10}, 1, true},
		{"12-12 tied", []int{12, 12}, -1, false},
		{"0-0 start", []int{0, 0}, -1, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := NewScoreBoard(len(tc.scores))
			copy(b.scores, tc.scores)

			winner, won := b.Winner()
			if won != tc.won || winner != tc.winner {
				t.Errorf("Winner() = (%d, %v), expected (%d, %v)", winner, won, tc.winner, tc.won)
			}
		})
	}
}

func TestWinnerPrefersRegistrationOrder(t *testing.T) {
	// Two qualifying players is only possible with margin 0.
	b := NewScoreBoard(2)
	b.margin = 0
	b.scores[0], b.scores[1] = 10, 10

	winner, won := b.Winner()
	if !won || winner != 0 {
		t.Errorf("Winner() = (%d, %v), expected first registered player", winner, won)
	}
}

func TestAwardIsMonotonic(t *testing.T) {
	b := NewScoreBoard(2)
	for i := 1; i <= 5; i++ {
		if got := b.Award(1); got != i {
			t.Errorf("Award() = %d, expected %d", got, i)
		}
	}
	if b.Score(0) != 0 || b.Score(1) != 5 {
		t.Errorf("scores = %d/%d, expected 0/5", b.Score(0), b.Score(1))
	}
	if b.Len() != 2 {
		t.Errorf("Len() = %d", b.Len())
	}
}
