package core

// SpriteRef is an opaque handle to a pre-loaded image.
// The simulation never looks inside it; only a Surface resolves it.
type SpriteRef string

// Surface is the 2D drawing capability the game renders into.
// Coordinates are canvas units. Implementations decide how (and whether)
// a reference is drawn; an unknown reference must not panic.
type Surface interface {
	ClearRect(x, y, w, h float64)
	DrawImage(ref SpriteRef, x, y, w, h float64)
}

// WinPresenter is notified once when a match is won.
// It is expected to stop the simulation and offer a restart.
type WinPresenter interface {
	PresentWin(winnerLabel string, winnerImage SpriteRef)
}
