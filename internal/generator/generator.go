package generator

import (
	"errors"
	"math/rand/v2"

	"github.com/pankajredekar/namecraft/internal/models"
)

// NoNamesAvailable is the single result returned when the candidate pool is
// empty.
const NoNamesAvailable = "No names available in the selected lists"

// DefaultCount is the batch size used by the generator screen
const DefaultCount = 5

// ErrNegativeCount is returned for a negative batch size
var ErrNegativeCount = errors.New("count must not be negative")

// Intner is a source of uniform integers in [0, n). *rand.Rand satisfies it.
type Intner interface {
	IntN(n int) int
}

type globalSource struct{}

func (globalSource) IntN(n int) int { return rand.IntN(n) }

// Generator draws names from name lists
type Generator struct {
	rnd Intner
}

// NewGenerator creates a generator. A nil source uses math/rand/v2.
func NewGenerator(rnd Intner) *Generator {
	if rnd == nil {
		rnd = globalSource{}
	}
	return &Generator{rnd: rnd}
}

// Pool concatenates the names of every list in list order
func Pool(lists []models.NameList) []string {
	var pool []string
	for _, l := range lists {
		pool = append(pool, l.Names...)
	}
	return pool
}

// Generate draws count names with replacement from the pool built from
// lists and prepends prefix to each. An empty pool yields
// []string{NoNamesAvailable}.
func (g *Generator) Generate(lists []models.NameList, prefix string, count int) ([]string, error) {
	if count < 0 {
		return nil, ErrNegativeCount
	}

	pool := Pool(lists)
	if len(pool) == 0 {
		return []string{NoNamesAvailable}, nil
	}

	names := make([]string, 0, count)
	for i := 0; i < count; i++ {
		names = append(names, prefix+pool[g.rnd.IntN(len(pool))])
	}
	return names, nil
}

var defaultGenerator = NewGenerator(nil)

// Generate uses the package default generator
func Generate(lists []models.NameList, prefix string, count int) ([]string, error) {
	return defaultGenerator.Generate(lists, prefix, count)
}
