package race

// Character geometry shared by both players.
const (
	CharacterWidth  = 40.0
	CharacterHeight = 60.0
)

// Fixed control schemes.
var (
	NeuroControls = Controls{Up: "w", Down: "s", Left: "a", Right: "d"}
	EvilControls  = Controls{Up: "up", Down: "down", Left: "left", Right: "right"}
)

// newRoster creates both characters at their starting spots, named from
// labels (keyed by ID) where set.
// Slice order is the registration order used for scoring and tie-breaks.
func newRoster(labels map[string]string) []*Character {
	label := func(id, fallback string) string {
		if l := labels[id]; l != "" {
			return l
		}
		return fallback
	}
	return []*Character{
		NewCharacter("neuro", label("neuro", "Neuro"), 50, 50, CharacterWidth, CharacterHeight, NeuroControls),
		NewCharacter("evil", label("evil", "Evil"), 200, 200, CharacterWidth, CharacterHeight, EvilControls),
	}
}
