package app

import "github.com/samsmithnz/CardGames-sub000/internal/domain"

// initialFaceUp lays out face-up flags for a fresh deal: whole columns for
// variants dealt face up, otherwise only each column's top card.
func initialFaceUp(e *domain.Engine) [][]bool {
	def := e.Config()
	faceUp := make([][]bool, len(e.TableauColumns))
	for i, col := range e.TableauColumns {
		flags := make([]bool, len(col))
		if def.ColumnFaceUp(i) {
			for j := range flags {
				flags[j] = true
			}
		} else if len(flags) > 0 {
			flags[len(flags)-1] = true
		}
		faceUp[i] = flags
	}
	return faceUp
}

// restoreFaceUp keeps saved flags for columns whose length still matches and
// falls back to the fresh-deal default for the rest.
func restoreFaceUp(e *domain.Engine, saved [][]bool) [][]bool {
	faceUp := initialFaceUp(e)
	for i := range faceUp {
		if i < len(saved) && len(saved[i]) == len(faceUp[i]) {
			faceUp[i] = append([]bool(nil), saved[i]...)
		}
	}
	return faceUp
}

func allFaceUp(flags []bool) bool {
	for _, f := range flags {
		if !f {
			return false
		}
	}
	return true
}

// removeFaceUp drops the flags of the top n cards of a column and turns the
// new top card face up.
func removeFaceUp(faceUp [][]bool, col, n int) {
	flags := faceUp[col]
	flags = flags[:len(flags)-n]
	if len(flags) > 0 {
		flags[len(flags)-1] = true
	}
	faceUp[col] = flags
}

func addFaceUp(faceUp [][]bool, col, n int) {
	for i := 0; i < n; i++ {
		faceUp[col] = append(faceUp[col], true)
	}
}

func cloneFaceUp(faceUp [][]bool) [][]bool {
	out := make([][]bool, len(faceUp))
	for i, f := range faceUp {
		out[i] = append([]bool{}, f...)
	}
	return out
}
