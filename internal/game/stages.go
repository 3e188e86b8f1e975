// internal/game/stages.go
//
// Static gallows drawings, one per number of trials lost.

package game

var stages = [...]string{`
        ┌───┐
        │   │
            │
            │
            │
            │
    ════════╛`, `
        ┌───┐
        │   │
        O   │
            │
            │
            │
    ════════╛`, `
        ┌───┐
        │   │
        O   │
        |   │
            │
            │
    ════════╛`, `
        ┌───┐
        │   │
        O   │
       /│   │
            │
            │
    ════════╛`, `
        ┌───┐
        │   │
        O   │
       /│\  │
            │
            │
    ════════╛`, `
        ┌───┐
        │   │
        O   │
       /│\  │
       /    │
            │
    ════════╛`, `
        ┌───┐
        │   │
        O   │
       /│\  │
       / \  │
            │
    ════════╛`}

const (
	// StageCount is the number of drawings, from empty gallows to fully drawn.
	StageCount = len(stages)
	// MaxTrials is the number of misses allowed before the round is lost.
	MaxTrials = StageCount - 1
)

// DrawingAt returns the drawing for stage i, clamped to the table.
func DrawingAt(i int) string {
	if i < 0 {
		i = 0
	}
	if i >= StageCount {
		i = StageCount - 1
	}
	return stages[i]
}
