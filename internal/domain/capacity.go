package domain

// NoTarget is passed to CanMoveCardSequence when the destination column is
// not known yet.
const NoTarget = -1

// CalculateMaxSequenceMoveSize returns how many cards can move between
// columns as a unit: 2^(empty columns) * (empty free cells + 1).
func (e *Engine) CalculateMaxSequenceMoveSize() int {
	return (e.EmptyFreeCellCount() + 1) << e.EmptyTableauColumnCount()
}

// CanMoveCardSequence reports whether count cards may move together onto
// tableau column target (or NoTarget). Moving onto an empty column halves
// the limit since that column is no longer free to park cards in. A single
// card (or none) may always move, and variants without free cells are not
// limited.
func (e *Engine) CanMoveCardSequence(count, target int) bool {
	if !e.config.HasFreeCells() || count <= 1 {
		return true
	}
	limit := e.CalculateMaxSequenceMoveSize()
	if target >= 0 && target < len(e.TableauColumns) && len(e.TableauColumns[target]) == 0 {
		limit /= 2
	}
	return count <= limit
}
