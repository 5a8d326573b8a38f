package domain

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Empty-tableau policies.
const (
	EmptyTableauKingsOnly = "kings only"
	EmptyTableauAnyCard   = "any card"
)

// Redeal policies.
const (
	RedealsUnlimited     = "unlimited"
	RedealsNotApplicable = "not applicable"
)

// GameDefinition declares a solitaire variant.
type GameDefinition struct {
	GameName      string        `json:"gameName" yaml:"gameName"`
	Decks         int           `json:"decks" yaml:"decks"`
	Piles         Piles         `json:"piles" yaml:"piles"`
	InitialLayout InitialLayout `json:"initialLayout" yaml:"initialLayout"`
	MovementRules MovementRules `json:"movementRules" yaml:"movementRules"`
	DrawRules     DrawRules     `json:"drawRules" yaml:"drawRules"`
	WinCondition  string        `json:"winCondition" yaml:"winCondition"`
	Metadata      Metadata      `json:"metadata" yaml:"metadata"`
}

type Piles struct {
	Tableau    int `json:"tableau" yaml:"tableau"`
	Foundation int `json:"foundation" yaml:"foundation"`
	Waste      int `json:"waste" yaml:"waste"`
	FreeCells  int `json:"freecells" yaml:"freecells"`
}

// InitialLayout gives the number of cards dealt to each tableau column and,
// per column, whether the whole column is dealt face up. FaceUp is a UI
// default only; the engine never reads it.
type InitialLayout struct {
	Tableau []int  `json:"tableau" yaml:"tableau"`
	FaceUp  []bool `json:"faceUp,omitempty" yaml:"faceUp,omitempty"`
}

type MovementRules struct {
	EmptyTableau        string `json:"emptyTableau" yaml:"emptyTableau"`
	EmptyFoundation     string `json:"emptyFoundation" yaml:"emptyFoundation"`
	TableauToTableau    string `json:"tableauToTableau" yaml:"tableauToTableau"`
	TableauToFoundation string `json:"tableauToFoundation" yaml:"tableauToFoundation"`
}

type DrawRules struct {
	DrawCount int    `json:"drawCount" yaml:"drawCount"`
	Redeals   string `json:"redeals" yaml:"redeals"`
}

// Metadata is carried through untouched.
type Metadata struct {
	Author      string `json:"author,omitempty" yaml:"author,omitempty"`
	Version     string `json:"version,omitempty" yaml:"version,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// TotalCards is the number of cards a deal for this definition needs.
func (g GameDefinition) TotalCards() int {
	return g.Decks * CardsPerDeck
}

// LayoutCards is the number of cards dealt to the tableau.
func (g GameDefinition) LayoutCards() int {
	n := 0
	for _, c := range g.InitialLayout.Tableau {
		n += c
	}
	return n
}

func (g GameDefinition) HasFreeCells() bool { return g.Piles.FreeCells > 0 }

// HasStock reports whether the variant draws from a stock.
func (g GameDefinition) HasStock() bool { return g.DrawRules.DrawCount > 0 }

// AllowsAnyCardOnEmptyTableau reports whether empty columns accept any card
// rather than only kings.
func (g GameDefinition) AllowsAnyCardOnEmptyTableau() bool {
	return g.MovementRules.EmptyTableau == EmptyTableauAnyCard
}

// ColumnFaceUp returns the face-up default for tableau column i.
func (g GameDefinition) ColumnFaceUp(i int) bool {
	if i < 0 || i >= len(g.InitialLayout.FaceUp) {
		return false
	}
	return g.InitialLayout.FaceUp[i]
}

// Validate checks that the definition describes a dealable layout.
func (g GameDefinition) Validate() error {
	switch {
	case g.GameName == "":
		return fmt.Errorf("%w: missing gameName", ErrInvalidDefinition)
	case g.Decks < 1:
		return fmt.Errorf("%w: %s: decks must be at least 1", ErrInvalidDefinition, g.GameName)
	case g.Piles.Tableau < 1:
		return fmt.Errorf("%w: %s: at least one tableau column required", ErrInvalidDefinition, g.GameName)
	case g.Piles.Foundation < 1:
		return fmt.Errorf("%w: %s: at least one foundation required", ErrInvalidDefinition, g.GameName)
	case g.Piles.Waste < 0 || g.Piles.Waste > 1:
		return fmt.Errorf("%w: %s: waste must be 0 or 1", ErrInvalidDefinition, g.GameName)
	case g.Piles.FreeCells < 0:
		return fmt.Errorf("%w: %s: negative free cell count", ErrInvalidDefinition, g.GameName)
	case g.DrawRules.DrawCount < 0:
		return fmt.Errorf("%w: %s: negative draw count", ErrInvalidDefinition, g.GameName)
	case len(g.InitialLayout.Tableau) != g.Piles.Tableau:
		return fmt.Errorf("%w: %s: layout has %d columns, piles declare %d",
			ErrInvalidDefinition, g.GameName, len(g.InitialLayout.Tableau), g.Piles.Tableau)
	}
	for i, n := range g.InitialLayout.Tableau {
		if n < 0 {
			return fmt.Errorf("%w: %s: column %d has negative card count", ErrInvalidDefinition, g.GameName, i)
		}
	}
	if g.LayoutCards() > g.TotalCards() {
		return fmt.Errorf("%w: %s: layout deals %d cards from %d",
			ErrInvalidDefinition, g.GameName, g.LayoutCards(), g.TotalCards())
	}
	return nil
}

// Catalog is a set of game definitions keyed by name.
type Catalog struct {
	Games []GameDefinition `json:"games" yaml:"games"`
}

// ParseCatalog decodes a JSON catalog document and validates every definition.
func ParseCatalog(raw []byte) (*Catalog, error) {
	var c Catalog
	if err := json.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedCatalog, err)
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// ParseCatalogYAML decodes a YAML catalog document with the same shape as the JSON one.
func ParseCatalogYAML(raw []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedCatalog, err)
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Catalog) validate() error {
	seen := make(map[string]bool, len(c.Games))
	for _, g := range c.Games {
		if err := g.Validate(); err != nil {
			return err
		}
		if seen[g.GameName] {
			return fmt.Errorf("%w: duplicate game %q", ErrMalformedCatalog, g.GameName)
		}
		seen[g.GameName] = true
	}
	return nil
}

// FindGame looks up a definition by exact, case-sensitive name.
func (c *Catalog) FindGame(name string) (GameDefinition, bool) {
	for _, g := range c.Games {
		if g.GameName == name {
			return g, true
		}
	}
	return GameDefinition{}, false
}

// Names lists the catalog's game names in catalog order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.Games))
	for i, g := range c.Games {
		names[i] = g.GameName
	}
	return names
}
