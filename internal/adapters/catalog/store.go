package catalog

import (
	"context"
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/samsmithnz/CardGames-sub000/internal/domain"
)

// DefaultGame is the variant the zero-argument constructor deals.
const DefaultGame = "Klondike Solitaire"

//go:embed data/games.json
var catalogFS embed.FS

const bundledFile = "data/games.json"

// Store serves game definitions from a parsed catalog. The catalog is loaded
// on first use.
type Store struct {
	once sync.Once
	load func() (*domain.Catalog, error)
	cat  *domain.Catalog
	err  error
}

// NewEmbeddedStore serves the catalog bundled into the binary.
func NewEmbeddedStore() *Store {
	return &Store{load: Bundled}
}

// NewFileStore serves the catalog at path. Files ending in .yaml or .yml are
// parsed as YAML, anything else as JSON.
func NewFileStore(path string) *Store {
	return &Store{load: func() (*domain.Catalog, error) { return LoadFile(path) }}
}

func (s *Store) init() {
	s.cat, s.err = s.load()
}

// Catalog returns the loaded catalog.
func (s *Store) Catalog() (*domain.Catalog, error) {
	s.once.Do(s.init)
	return s.cat, s.err
}

func (s *Store) GetGame(_ context.Context, name string) (domain.GameDefinition, error) {
	cat, err := s.Catalog()
	if err != nil {
		return domain.GameDefinition{}, err
	}
	def, ok := cat.FindGame(name)
	if !ok {
		return domain.GameDefinition{}, fmt.Errorf("%w: %q", domain.ErrGameNotFound, name)
	}
	return def, nil
}

func (s *Store) ListGames(_ context.Context) ([]domain.GameDefinition, error) {
	cat, err := s.Catalog()
	if err != nil {
		return nil, err
	}
	return append([]domain.GameDefinition(nil), cat.Games...), nil
}

// Bundled parses the embedded catalog.
func Bundled() (*domain.Catalog, error) {
	raw, err := catalogFS.ReadFile(bundledFile)
	if err != nil {
		return nil, fmt.Errorf("read embedded catalog: %w", err)
	}
	cat, err := domain.ParseCatalog(raw)
	if err != nil {
		return nil, fmt.Errorf("parse embedded catalog: %w", err)
	}
	return cat, nil
}

// LoadFile reads and parses a catalog document from disk.
func LoadFile(path string) (*domain.Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	var cat *domain.Catalog
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		cat, err = domain.ParseCatalogYAML(raw)
	default:
		cat, err = domain.ParseCatalog(raw)
	}
	if err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", path, err)
	}
	return cat, nil
}

// NewEngine builds an engine for the named bundled game.
func NewEngine(name string) (*domain.Engine, error) {
	cat, err := Bundled()
	if err != nil {
		return nil, err
	}
	return domain.NewEngineByName(cat, name)
}

// NewDefaultEngine builds an engine for DefaultGame.
func NewDefaultEngine() *domain.Engine {
	e, err := NewEngine(DefaultGame)
	if err != nil {
		// The bundled catalog is compiled in and covered by tests.
		panic(err)
	}
	return e
}
