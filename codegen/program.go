package codegen

import (
	"github.com/coregx/litmap/dfa"
	"github.com/coregx/litmap/internal/conv"
	"github.com/coregx/litmap/internal/sparse"
)

// guardMinArms is the arm count from which a block gets a range guard.
const guardMinArms = 4

// Arm is one outgoing branch of a block: every byte in Bytes continues to
// block Next. Under folding Bytes holds both case variants of a letter.
type Arm struct {
	Bytes []byte
	Next  int
}

// Range is an inclusive byte interval.
type Range struct {
	Lo, Hi byte
}

// Contains reports whether c lies in the interval.
func (r Range) Contains(c byte) bool {
	return c >= r.Lo && c <= r.Hi
}

// Block is the dispatch code of one automaton state.
type Block[V any] struct {
	// ID is the block index; block 0 is the root and ids follow
	// breadth-first order.
	ID int
	// State is the automaton state the block was lowered from.
	State dfa.StateID
	Depth int
	// Arms are sorted by canonical byte. Arm byte sets are disjoint.
	Arms []Arm
	// Guard, when set, bounds every arm byte; bytes outside it fail
	// without looking at the arms.
	Guard *Range

	Terminal bool
	Value    V
	// Pattern is the insertion index of the pattern owning Value.
	Pattern int
}

// Program is the dialect-neutral form of an automaton: one block per state
// in a fixed breadth-first order, with whole-input length bounds.
type Program[V any] struct {
	Blocks          []Block[V]
	CaseInsensitive bool
	// Empty is true when no input can match.
	Empty bool
	// MinLen and MaxLen bound the length of matching inputs.
	MinLen, MaxLen int
}

// Lower converts an automaton into a Program. States are visited breadth
// first from the root with transitions in ascending byte order, so equal
// automata always lower to equal programs.
func Lower[V any](a *dfa.Automaton[V]) *Program[V] {
	n := a.States()
	order := sparse.NewSparseSet(conv.IntToUint32(n))
	order.Insert(uint32(dfa.RootState))

	// The dense side of the set grows while we scan it, which makes it the
	// BFS queue as well as the visited set.
	for i := 0; i < order.Len(); i++ {
		s := a.State(dfa.StateID(order.At(i)))
		for _, t := range s.Transitions() {
			order.Insert(uint32(t.Next))
		}
	}

	blockOf := make([]int, n)
	for i, id := range order.Values() {
		blockOf[id] = i
	}

	p := &Program[V]{
		Blocks:          make([]Block[V], order.Len()),
		CaseInsensitive: a.CaseInsensitive(),
		Empty:           a.IsEmpty(),
		MinLen:          a.MinLen(),
		MaxLen:          a.MaxLen(),
	}

	for i, id := range order.Values() {
		s := a.State(dfa.StateID(id))
		blk := &p.Blocks[i]
		blk.ID = i
		blk.State = s.ID()
		blk.Depth = s.Depth()
		blk.Pattern = s.Pattern()
		blk.Value, blk.Terminal = s.Value()

		ts := s.Transitions()
		blk.Arms = make([]Arm, len(ts))
		for j, t := range ts {
			blk.Arms[j] = Arm{
				Bytes: armBytes(t.Byte, p.CaseInsensitive),
				Next:  blockOf[t.Next],
			}
		}
		if len(ts) >= guardMinArms {
			blk.Guard = armRange(blk.Arms)
		}
	}

	return p
}

// armBytes expands a canonical transition byte into the input bytes that
// take it, in ascending order.
func armBytes(c byte, fold bool) []byte {
	if fold {
		if lower, upper, ok := dfa.FoldVariants(c); ok {
			return []byte{upper, lower}
		}
	}
	return []byte{c}
}

func armRange(arms []Arm) *Range {
	r := &Range{Lo: 0xFF, Hi: 0x00}
	for _, arm := range arms {
		for _, c := range arm.Bytes {
			if c < r.Lo {
				r.Lo = c
			}
			if c > r.Hi {
				r.Hi = c
			}
		}
	}
	return r
}

// Exec runs the program on input the way the emitted Go code does: length
// bounds first, then one block per byte, then the terminal check.
func (p *Program[V]) Exec(input []byte) (V, bool) {
	var zero V
	if p.Empty || len(input) < p.MinLen || len(input) > p.MaxLen {
		return zero, false
	}

	cur := 0
	for _, c := range input {
		next, ok := p.Blocks[cur].step(c)
		if !ok {
			return zero, false
		}
		cur = next
	}

	blk := &p.Blocks[cur]
	if !blk.Terminal {
		return zero, false
	}
	return blk.Value, true
}

func (b *Block[V]) step(c byte) (int, bool) {
	if b.Guard != nil && !b.Guard.Contains(c) {
		return 0, false
	}
	for _, arm := range b.Arms {
		for _, x := range arm.Bytes {
			if x == c {
				return arm.Next, true
			}
		}
	}
	return 0, false
}

// Terminals returns the terminal blocks in block order.
func (p *Program[V]) Terminals() []*Block[V] {
	var out []*Block[V]
	for i := range p.Blocks {
		if p.Blocks[i].Terminal {
			out = append(out, &p.Blocks[i])
		}
	}
	return out
}

// HasTransitions reports whether any block has an outgoing arm.
func (p *Program[V]) HasTransitions() bool {
	return len(p.Blocks) > 1
}
