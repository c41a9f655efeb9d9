package namecraft

import (
	"log/slog"

	"github.com/pankajredekar/namecraft/internal/catalog"
	"github.com/pankajredekar/namecraft/internal/generator"
	"github.com/pankajredekar/namecraft/internal/ids"
	"github.com/pankajredekar/namecraft/internal/models"
	"github.com/pankajredekar/namecraft/internal/persistence"
	"github.com/pankajredekar/namecraft/internal/store"
	"github.com/pankajredekar/namecraft/internal/tree"
)

// Catalog types
type (
	Category      = models.Category
	NameList      = models.NameList
	SeoText       = models.SeoText
	Position      = models.Position
	MenuItem      = models.MenuItem
	AdminSettings = models.AdminSettings
	Patch         = tree.Patch
	Service       = catalog.Service
	CategoryInput = catalog.CategoryInput
	NameListInput = catalog.NameListInput
	SeoTextInput  = catalog.SeoTextInput
	Page          = catalog.Page
)

const (
	PositionBeforeFooter = models.PositionBeforeFooter
	PositionAfterHeader  = models.PositionAfterHeader
)

// NoNamesAvailable is the single result of generating from an empty pool
const NoNamesAvailable = generator.NoNamesAvailable

// ErrNegativeCount is returned by Generate for a negative count
var ErrNegativeCount = generator.ErrNegativeCount

// Find returns the first category with the given id, searching depth-first
func Find(forest []Category, id string) (Category, bool) {
	return tree.Find(forest, id)
}

// Insert adds c at the root when parentID is empty, otherwise under the
// matching parent. The input forest is not modified.
func Insert(forest []Category, parentID string, c Category) ([]Category, bool) {
	return tree.Insert(forest, parentID, c)
}

// Update applies patch to the first category with the given id
func Update(forest []Category, id string, patch Patch) ([]Category, bool) {
	return tree.Update(forest, id, patch)
}

// Delete removes the first category with the given id together with its
// subtree
func Delete(forest []Category, id string) ([]Category, bool) {
	return tree.Delete(forest, id)
}

// Generate draws count names from lists with replacement and prepends
// prefix to each
func Generate(lists []NameList, prefix string, count int) ([]string, error) {
	return generator.Generate(lists, prefix, count)
}

// Open connects to databaseURL, prepares the store table and returns a
// catalog service over it. A nil logger uses slog.Default.
func Open(databaseURL string, logger *slog.Logger) (*Service, error) {
	db, err := store.Open(databaseURL)
	if err != nil {
		return nil, err
	}
	st := store.NewStore(db, store.DefaultTable)
	if err := st.Initialize(); err != nil {
		return nil, err
	}
	gateway := persistence.NewGateway(st, logger)
	return catalog.NewService(gateway, ids.New, generator.NewGenerator(nil)), nil
}
