package codegen

import (
	"bytes"
	"fmt"
	"strconv"
)

// emitDOT renders the program as a Graphviz digraph. Terminal blocks are
// double circles labelled with their value; edges are labelled with the
// input bytes that take them.
func emitDOT[V any](p *Program[V], name string) []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "digraph %s {\n", strconv.Quote(name))
	buf.WriteString("\trankdir=LR;\n")
	buf.WriteString("\tnode [shape=circle];\n")
	buf.WriteString("\tstart [shape=point];\n")
	buf.WriteString("\tstart -> b0;\n")

	for i := range p.Blocks {
		blk := &p.Blocks[i]
		if blk.Terminal {
			label := fmt.Sprintf("%d\n%v", blk.ID, blk.Value)
			fmt.Fprintf(&buf, "\tb%d [shape=doublecircle, label=%s];\n", blk.ID, dotQuote(label))
		} else {
			fmt.Fprintf(&buf, "\tb%d [label=\"%d\"];\n", blk.ID, blk.ID)
		}
	}
	for i := range p.Blocks {
		blk := &p.Blocks[i]
		for _, arm := range blk.Arms {
			fmt.Fprintf(&buf, "\tb%d -> b%d [label=%s];\n", blk.ID, arm.Next, dotQuote(armLabel(arm.Bytes)))
		}
	}
	buf.WriteString("}\n")
	return buf.Bytes()
}

// armLabel renders an arm's bytes: a single printable byte as itself, a
// fold pair as a bracket class, anything else in hex.
func armLabel(bs []byte) string {
	var buf bytes.Buffer
	if len(bs) > 1 {
		buf.WriteByte('[')
	}
	for _, c := range bs {
		if c > 0x20 && c < 0x7F {
			buf.WriteByte(c)
		} else {
			fmt.Fprintf(&buf, "0x%02X", c)
		}
	}
	if len(bs) > 1 {
		buf.WriteByte(']')
	}
	return buf.String()
}

// dotQuote quotes s as a DOT string. Newlines become the \n escape Graphviz
// renders as a centered line break.
func dotQuote(s string) string {
	var buf bytes.Buffer
	buf.WriteByte('"')
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '"', '\\':
			buf.WriteByte('\\')
			buf.WriteByte(c)
		case '\n':
			buf.WriteString(`\n`)
		default:
			buf.WriteByte(c)
		}
	}
	buf.WriteByte('"')
	return buf.String()
}
