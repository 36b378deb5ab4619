package codegen

import (
	"github.com/coregx/litmap/dfa"
	"github.com/coregx/litmap/internal/conv"
)

// deadRow is the table row of the dead state. Block i lives in row i+1.
const deadRow = 0

// table is the dense form used by StrategyTable: a byte-to-class map and one
// row of next-row indices per block.
type table struct {
	classes  [256]byte
	alphabet int
	rows     [][]int
	// width is the bit width of the smallest unsigned type holding a row index
	width int
}

func buildTable[V any](p *Program[V], bc *dfa.ByteClasses) *table {
	t := &table{
		alphabet: bc.AlphabetLen(),
		rows:     make([][]int, len(p.Blocks)+1),
		width:    conv.UintWidth(len(p.Blocks)),
	}
	for b := 0; b < 256; b++ {
		t.classes[b] = bc.Get(byte(b))
	}

	t.rows[deadRow] = make([]int, t.alphabet)
	reps := bc.Representatives()
	for i := range p.Blocks {
		row := make([]int, t.alphabet)
		for class, rep := range reps {
			if next, ok := p.Blocks[i].step(rep); ok {
				row[class] = next + 1
			}
		}
		t.rows[i+1] = row
	}
	return t
}
