package cyk

import (
	"context"
	"fmt"
	"strings"

	"github.com/emirpasic/gods/maps/linkedhashmap"
	pool "github.com/jolestar/go-commons-pool"
	"github.com/npillmayer/cyk/grammar"
	"github.com/npillmayer/schuko/tracing"
)

// cell maps symbols to the intermediate they have first been derived with.
// Symbols are kept in insertion order.
type cell struct {
	entries *linkedhashmap.Map
}

func newCell() *cell {
	return &cell{entries: linkedhashmap.New()}
}

// put inserts im for sym, unless sym is already present. Returns true if
// im has been inserted.
func (c *cell) put(sym grammar.Symbol, im intermediate) bool {
	if _, found := c.entries.Get(sym); found {
		return false
	}
	c.entries.Put(sym, im)
	return true
}

func (c *cell) get(sym grammar.Symbol) (intermediate, bool) {
	v, found := c.entries.Get(sym)
	if !found {
		return nil, false
	}
	return v.(intermediate), true
}

func (c *cell) symbols() []grammar.Symbol {
	keys := c.entries.Keys()
	syms := make([]grammar.Symbol, len(keys))
	for i, k := range keys {
		syms[i] = k.(grammar.Symbol)
	}
	return syms
}

func (c *cell) empty() bool {
	return c.entries.Empty()
}

// table is the triangular CYK table for a sentence of n words. Cell (l, s)
// covers the l words starting at word s (1-based) and lives at index
// (l-1) + (s-1)*n. Only cells with l+s ≤ n+1 are in use.
type table struct {
	n     int
	cells []*cell
}

func (t *table) reset(n int) {
	t.n = n
	for len(t.cells) < n*n {
		t.cells = append(t.cells, newCell())
	}
	for i := 0; i < n*n; i++ {
		t.cells[i].entries.Clear()
	}
}

func (t *table) index(length, start int) int {
	return (length - 1) + (start-1)*t.n
}

func (t *table) cell(length, start int) *cell {
	return t.cells[t.index(length, start)]
}

// fill runs the CYK algorithm for a sentence of categorized tokens.
// Spans are processed by increasing length, then start position, then
// split point; for every split all pairs of symbols of the left and right
// cell are combined, in insertion order, with every producer of the pair,
// in compilation order.
func (t *table) fill(g *grammar.Grammar, categories []grammar.Symbol, tokens []string) {
	n := t.n
	for s := 1; s <= n; s++ {
		c := t.cell(1, s)
		producers := g.TerminalProducers(categories[s-1])
		if len(producers) == 0 {
			CT().Debugf("no rule consumes category %s of word %q", categories[s-1], tokens[s-1])
		}
		for _, sym := range producers {
			c.put(sym, &wordEntry{category: categories[s-1], origin: tokens[s-1]})
		}
	}
	for l := 2; l <= n; l++ {
		for s := 1; s <= n-l+1; s++ {
			target := t.cell(l, s)
			for p := 1; p < l; p++ {
				li, ri := t.index(p, s), t.index(l-p, s+p)
				left, right := t.cells[li], t.cells[ri]
				if left.empty() || right.empty() {
					continue
				}
				lsyms, rsyms := left.symbols(), right.symbols()
				for _, lsym := range lsyms {
					for _, rsym := range rsyms {
						for _, sym := range g.PairProducers(lsym, rsym) {
							target.put(sym, &derivation{
								left:      lsym,
								right:     rsym,
								leftCell:  li,
								rightCell: ri,
							})
						}
					}
				}
			}
		}
	}
	t.printTable()
}

// --- Pooling ---------------------------------------------------------------

// Tables are allocated for every parse. To avoid re-allocating cells
// over and over again we will pool them.
type tablePool struct {
	opool *pool.ObjectPool
	ctx   context.Context
}

var globalTablePool *tablePool

func init() {
	globalTablePool = &tablePool{}
	factory := pool.NewPooledObjectFactorySimple(
		func(context.Context) (interface{}, error) {
			return &table{}, nil
		})
	globalTablePool.ctx = context.Background()
	config := pool.NewDefaultPoolConfig()
	config.MaxTotal = -1 // infinity
	config.BlockWhenExhausted = false
	globalTablePool.opool = pool.NewObjectPool(globalTablePool.ctx, factory, config)
}

// borrowTable returns an empty table for n words, either from the pool or
// newly allocated.
func borrowTable(n int) *table {
	var t *table
	if o, err := globalTablePool.opool.BorrowObject(globalTablePool.ctx); err == nil {
		t = o.(*table)
	} else {
		CT().Errorf("cannot borrow parse table from pool: %v", err)
		t = &table{}
	}
	t.reset(n)
	return t
}

// releaseIntoPool clears the table and puts it back into the pool.
func (t *table) releaseIntoPool() {
	for i := 0; i < t.n*t.n; i++ {
		t.cells[i].entries.Clear()
	}
	t.n = 0
	_ = globalTablePool.opool.ReturnObject(globalTablePool.ctx, t)
}

// --- Debugging -------------------------------------------------------------

// Debugging helper. Print the populated cells of the table to the debug log.
func (t *table) printTable() {
	if CT().GetTraceLevel() < tracing.LevelDebug {
		return
	}
	var sb strings.Builder
	for l := 1; l <= t.n; l++ {
		sb.Reset()
		sb.WriteString(fmt.Sprintf("length %2d:", l))
		for s := 1; s <= t.n-l+1; s++ {
			sb.WriteString(" [")
			for i, sym := range t.cell(l, s).symbols() {
				if i > 0 {
					sb.WriteByte(' ')
				}
				sb.WriteString(string(sym))
			}
			sb.WriteByte(']')
		}
		CT().Debugf("%s", sb.String())
	}
}
