package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samsmithnz/CardGames-sub000/internal/domain"
)

func TestSnapshot_RoundTrip(t *testing.T) {
	deck := domain.NewDeck()
	deck.Shuffle(&counterRNG{})
	src := domain.NewEngine(freeCell())
	require.NoError(t, src.DealCards(deck))

	moved := src.TableauColumns[3][len(src.TableauColumns[3])-1]
	require.True(t, src.RemoveFromTableau(3, []domain.Card{moved}))
	require.True(t, src.PlaceCardInFreeCell(moved, 2))
	src.FoundationPiles[1] = []domain.Card{card(domain.Ace, domain.Diamond)}

	snap := src.ExportState("autosave")
	snap.TableauFaceUpStates = [][]bool{{true, false}, {true}}

	for _, pretty := range []bool{false, true} {
		raw, err := snap.ToJSON(pretty)
		require.NoError(t, err)

		back, err := domain.SnapshotFromJSON(raw)
		require.NoError(t, err)
		assert.Equal(t, snap, back)

		dst := domain.NewEngine(freeCell())
		require.NoError(t, dst.ImportState(back))
		assert.Equal(t, src.TableauColumns, dst.TableauColumns)
		assert.Equal(t, src.FoundationPiles, dst.FoundationPiles)
		assert.Equal(t, src.FreeCells, dst.FreeCells)
		assert.Nil(t, dst.FreeCells[0])

		exported := dst.ExportState("autosave")
		exported.TableauFaceUpStates = snap.TableauFaceUpStates
		assert.Equal(t, snap, exported)
	}
}

func TestSnapshot_KlondikeRoundTrip(t *testing.T) {
	src := dealt(t, klondike())
	src.DrawFromStock()
	src.DrawFromStock()

	raw, err := src.ExportState("mid-game").ToJSON(false)
	require.NoError(t, err)
	back, err := domain.SnapshotFromJSON(raw)
	require.NoError(t, err)

	dst := domain.NewEngine(klondike())
	require.NoError(t, dst.ImportState(back))
	assert.Equal(t, src.StockPile, dst.StockPile)
	assert.Equal(t, src.WastePile, dst.WastePile)
	assert.Equal(t, src.TableauColumns, dst.TableauColumns)
	assert.Equal(t, "Klondike Solitaire", back.GameName)
	assert.Equal(t, "mid-game", back.Label)
}

func TestSnapshot_JSONShape(t *testing.T) {
	e := domain.NewEngine(freeCell())
	e.PlaceCardInFreeCell(card(domain.Ace, domain.Spade), 1)
	raw, err := e.ExportState("x").ToJSON(false)
	require.NoError(t, err)

	var doc map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &doc))
	for _, key := range []string{"gameName", "label", "stockPile", "wastePile", "foundationPiles", "tableauColumns", "freeCells", "tableauFaceUpStates"} {
		assert.Contains(t, doc, key)
	}
	assert.JSONEq(t, `[null, {"rank":"Ace","suit":"Spade"}, null, null]`, string(doc["freeCells"]))
}

func TestSnapshot_ExportIsDetached(t *testing.T) {
	e := dealt(t, klondike())
	snap := e.ExportState("")
	snap.TableauColumns[0][0] = card(domain.Two, domain.Heart)
	assert.NotEqual(t, card(domain.Two, domain.Heart), e.TableauColumns[0][0])
}

func TestSnapshotFromJSON_Malformed(t *testing.T) {
	_, err := domain.SnapshotFromJSON([]byte(`{"gameName": "FreeCell", "stockPile": [`))
	assert.ErrorIs(t, err, domain.ErrMalformedSnapshot)

	_, err = domain.SnapshotFromJSON([]byte(`{"label": "no game"}`))
	assert.ErrorIs(t, err, domain.ErrMalformedSnapshot)

	_, err = domain.SnapshotFromJSON([]byte(`{"gameName": "FreeCell", "stockPile": [{"rank": "Joker", "suit": "Club"}]}`))
	assert.ErrorIs(t, err, domain.ErrMalformedSnapshot)

	for name, doc := range map[string]string{
		"missing suit":    `{"gameName": "FreeCell", "tableauColumns": [[{"rank": "Queen"}]]}`,
		"empty card":      `{"gameName": "FreeCell", "tableauColumns": [[], [{}]]}`,
		"null pile card":  `{"gameName": "FreeCell", "wastePile": [null]}`,
		"empty free cell": `{"gameName": "FreeCell", "freeCells": [{}, null, null, null]}`,
	} {
		_, err := domain.SnapshotFromJSON([]byte(doc))
		assert.ErrorIs(t, err, domain.ErrMalformedSnapshot, name)
	}

	raw := []byte(`{"gameName": "FreeCell", "freeCells": [null, {"rank": "Ace", "suit": "Club"}, null, null]}`)
	snap, err := domain.SnapshotFromJSON(raw)
	require.NoError(t, err)
	assert.Nil(t, snap.FreeCells[0])
	assert.Equal(t, card(domain.Ace, domain.Club), *snap.FreeCells[1])
}

func TestImportState_RejectsBlankCards(t *testing.T) {
	e := dealt(t, freeCell())
	before := e.ExportState("")

	snap := e.ExportState("")
	snap.FreeCells[0] = &domain.Card{}
	assert.ErrorIs(t, e.ImportState(snap), domain.ErrMalformedSnapshot)

	snap = e.ExportState("")
	snap.TableauColumns[1] = append(snap.TableauColumns[1], domain.Card{})
	assert.ErrorIs(t, e.ImportState(snap), domain.ErrMalformedSnapshot)

	assert.Equal(t, before, e.ExportState(""))
	assert.Equal(t, 4, e.EmptyFreeCellCount())
}

func TestImportState_Mismatch(t *testing.T) {
	src := dealt(t, freeCell())
	dst := dealt(t, klondike())
	before := dst.ExportState("")

	assert.ErrorIs(t, dst.ImportState(src.ExportState("")), domain.ErrSnapshotMismatch)
	assert.Equal(t, before, dst.ExportState(""))
}
