package race

// Fixed match rules.
const (
	CollectRadius = 30.0 // Center distance under which the item is collected
	WinThreshold  = 10
	WinMargin     = 2
)

// ScoreBoard keeps one counter per character, in registration order.
type ScoreBoard struct {
	scores    []int
	threshold int
	margin    int
}

// NewScoreBoard creates a board for n characters with the standard rules.
func NewScoreBoard(n int) *ScoreBoard {
	return &ScoreBoard{
		scores:    make([]int, n),
		threshold: WinThreshold,
		margin:    WinMargin,
	}
}

// Award adds one point to character i and returns the new score.
func (b *ScoreBoard) Award(i int) int {
	b.scores[i]++
	return b.scores[i]
}

// Score returns character i's score.
func (b *ScoreBoard) Score(i int) int {
	return b.scores[i]
}

// Len returns the number of counters.
func (b *ScoreBoard) Len() int {
	return len(b.scores)
}

// Winner returns the first character, in registration order, that has reached
// the threshold and leads every other character by at least the margin.
func (b *ScoreBoard) Winner() (int, bool) {
	for i, s := range b.scores {
		if s < b.threshold {
			continue
		}
		if b.leadsAll(i) {
			return i, true
		}
	}
	return -1, false
}

func (b *ScoreBoard) leadsAll(i int) bool {
	for j, other := range b.scores {
		if j != i && b.scores[i]-other < b.margin {
			return false
		}
	}
	return true
}
