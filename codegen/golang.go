package codegen

import (
	"bytes"
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/coregx/litmap/dfa"
	"github.com/dave/jennifer/jen"
)

// Names used inside the emitted function.
const (
	inputName = "input"
	stateName = "state"
	byteName  = "c"
	indexName = "i"
)

// multiLine renders composite literal elements one per line.
var multiLine = jen.Options{Open: "{", Close: "}", Separator: ",", Multi: true}

type goEmitter[V any] struct {
	opts *Options[V]
	prog *Program[V]
	// values holds the rendered value expression of each terminal block,
	// indexed by block id
	values []string
}

func emitGo[V any](a *dfa.Automaton[V], p *Program[V], opts *Options[V]) ([]byte, error) {
	g := &goEmitter[V]{
		opts:   opts,
		prog:   p,
		values: make([]string, len(p.Blocks)),
	}
	for _, blk := range p.Terminals() {
		expr, err := opts.renderValue(blk.Value)
		if err != nil {
			return nil, err
		}
		g.values[blk.ID] = expr
	}

	f := jen.NewFile(opts.Package)
	f.HeaderComment(fmt.Sprintf("Code generated by %s. DO NOT EDIT.", opts.Generator))
	for _, h := range opts.Header {
		f.HeaderComment(h)
	}

	var body []jen.Code
	switch {
	case p.Empty:
		body = []jen.Code{jen.Return()}
	case !p.HasTransitions():
		// Only the empty input can match.
		body = []jen.Code{
			g.lengthGuard(),
			jen.Return(jen.Id(g.values[0]), jen.True()),
		}
	case opts.Strategy == StrategyTable:
		body = g.tableBody(f, buildTable(p, a.ByteClasses()))
	default:
		body = g.switchBody()
	}

	var inputType jen.Code = jen.Index().Byte()
	if opts.Input == InputText {
		inputType = jen.String()
	}

	fold := "exactly"
	if p.CaseInsensitive {
		fold = "under ASCII case folding"
	}
	f.Comment(fmt.Sprintf("%s returns the value of the pattern equal to %s %s.", opts.FuncName, inputName, fold))
	f.Comment(fmt.Sprintf("It reports ok=false when %s matches no pattern.", inputName))
	f.Func().Id(opts.FuncName).
		Params(jen.Id(inputName).Add(inputType)).
		Params(jen.Id("value").Id(opts.ValueType), jen.Id("ok").Bool()).
		Block(body...)

	var buf bytes.Buffer
	if err := f.Render(&buf); err != nil {
		return nil, fmt.Errorf("codegen: render %s: %w", opts.FuncName, err)
	}
	return buf.Bytes(), nil
}

// lengthGuard rejects inputs outside [MinLen, MaxLen] before dispatch.
func (g *goEmitter[V]) lengthGuard() jen.Code {
	tooLong := jen.Len(jen.Id(inputName)).Op(">").Lit(g.prog.MaxLen)
	if g.prog.MinLen == 0 {
		return jen.If(tooLong).Block(jen.Return())
	}
	tooShort := jen.Len(jen.Id(inputName)).Op("<").Lit(g.prog.MinLen)
	return jen.If(tooShort.Op("||").Add(tooLong)).Block(jen.Return())
}

func (g *goEmitter[V]) loopHeader() *jen.Statement {
	return jen.For(
		jen.Id(indexName).Op(":=").Lit(0),
		jen.Id(indexName).Op("<").Len(jen.Id(inputName)),
		jen.Id(indexName).Op("++"),
	)
}

func (g *goEmitter[V]) switchBody() []jen.Code {
	var cases []jen.Code
	for i := range g.prog.Blocks {
		blk := &g.prog.Blocks[i]
		if len(blk.Arms) == 0 {
			continue
		}
		cases = append(cases, jen.Case(jen.Lit(blk.ID)).Block(g.dispatch(blk)...))
	}
	cases = append(cases, jen.Default().Block(jen.Return()))

	body := []jen.Code{
		g.lengthGuard(),
		jen.Id(stateName).Op(":=").Lit(0),
		g.loopHeader().Block(
			jen.Id(byteName).Op(":=").Id(inputName).Index(jen.Id(indexName)),
			jen.Switch(jen.Id(stateName)).Block(cases...),
		),
	}
	return append(body, g.terminalSwitch(func(id int) int { return id })...)
}

// dispatch renders the byte test of one block. A single arm becomes an if
// statement; more arms become a switch, preceded by a range check when the
// block has a guard.
func (g *goEmitter[V]) dispatch(blk *Block[V]) []jen.Code {
	if len(blk.Arms) == 1 {
		arm := blk.Arms[0]
		cond := jen.Id(byteName).Op("!=").Add(byteLit(arm.Bytes[0]))
		for _, c := range arm.Bytes[1:] {
			cond = cond.Op("&&").Id(byteName).Op("!=").Add(byteLit(c))
		}
		return []jen.Code{
			jen.If(cond).Block(jen.Return()),
			jen.Id(stateName).Op("=").Lit(arm.Next),
		}
	}

	var code []jen.Code
	if guard := guardCond(blk.Guard); guard != nil {
		code = append(code, jen.If(guard).Block(jen.Return()))
	}

	arms := make([]jen.Code, 0, len(blk.Arms)+1)
	for _, arm := range blk.Arms {
		lits := make([]jen.Code, len(arm.Bytes))
		for k, c := range arm.Bytes {
			lits[k] = byteLit(c)
		}
		arms = append(arms, jen.Case(lits...).Block(jen.Id(stateName).Op("=").Lit(arm.Next)))
	}
	arms = append(arms, jen.Default().Block(jen.Return()))
	return append(code, jen.Switch(jen.Id(byteName)).Block(arms...))
}

// guardCond renders the out-of-range test for r, omitting comparisons that
// are always false for a byte.
func guardCond(r *Range) *jen.Statement {
	if r == nil {
		return nil
	}
	switch {
	case r.Lo == 0x00 && r.Hi == 0xFF:
		return nil
	case r.Lo == 0x00:
		return jen.Id(byteName).Op(">").Add(byteLit(r.Hi))
	case r.Hi == 0xFF:
		return jen.Id(byteName).Op("<").Add(byteLit(r.Lo))
	default:
		return jen.Id(byteName).Op("<").Add(byteLit(r.Lo)).
			Op("||").Id(byteName).Op(">").Add(byteLit(r.Hi))
	}
}

// terminalSwitch returns the value of the final state. Blocks whose values
// render identically share one case, in order of first appearance.
func (g *goEmitter[V]) terminalSwitch(label func(id int) int) []jen.Code {
	type group struct {
		expr   string
		labels []jen.Code
	}
	var groups []*group
	byExpr := make(map[string]*group)
	for _, blk := range g.prog.Terminals() {
		expr := g.values[blk.ID]
		gr, ok := byExpr[expr]
		if !ok {
			gr = &group{expr: expr}
			byExpr[expr] = gr
			groups = append(groups, gr)
		}
		gr.labels = append(gr.labels, jen.Lit(label(blk.ID)))
	}

	cases := make([]jen.Code, 0, len(groups))
	for _, gr := range groups {
		cases = append(cases, jen.Case(gr.labels...).Block(jen.Return(jen.Id(gr.expr), jen.True())))
	}
	return []jen.Code{
		jen.Switch(jen.Id(stateName)).Block(cases...),
		jen.Return(),
	}
}

// tableBody declares the class map and transition array at file level and
// returns the loop that walks them. Row 0 is the dead state; block i is
// row i+1.
func (g *goEmitter[V]) tableBody(f *jen.File, t *table) []jen.Code {
	base := lowerFirst(g.opts.FuncName)
	classesName := base + "Classes"
	transName := base + "Transitions"

	var classes []jen.Code
	for b := 0; b < 256; b++ {
		if class := t.classes[b]; class != 0 {
			classes = append(classes, byteLit(byte(b)).Op(":").Lit(int(class)))
		}
	}
	f.Comment(fmt.Sprintf("%s maps each input byte to one of %d equivalence classes.", classesName, t.alphabet))
	f.Var().Id(classesName).Op("=").Index(jen.Lit(256)).Uint8().Custom(multiLine, classes...)
	f.Line()

	rows := make([]jen.Code, len(t.rows))
	for r, row := range t.rows {
		cells := make([]jen.Code, len(row))
		for k, next := range row {
			cells[k] = jen.Lit(next)
		}
		rows[r] = jen.Values(cells...)
	}
	f.Comment(fmt.Sprintf("%s holds the next row for each row and byte class. Row 0 rejects.", transName))
	f.Var().Id(transName).Op("=").
		Index(jen.Lit(len(t.rows))).Index(jen.Lit(t.alphabet)).Add(uintType(t.width)).
		Custom(multiLine, rows...)
	f.Line()

	body := []jen.Code{
		g.lengthGuard(),
		jen.Var().Id(stateName).Add(uintType(t.width)).Op("=").Lit(1),
		g.loopHeader().Block(
			jen.Id(stateName).Op("=").Id(transName).Index(jen.Id(stateName)).
				Index(jen.Id(classesName).Index(jen.Id(inputName).Index(jen.Id(indexName)))),
			jen.If(jen.Id(stateName).Op("==").Lit(deadRow)).Block(jen.Return()),
		),
	}
	return append(body, g.terminalSwitch(func(id int) int { return id + 1 })...)
}

func uintType(width int) *jen.Statement {
	switch width {
	case 8:
		return jen.Uint8()
	case 16:
		return jen.Uint16()
	default:
		return jen.Uint32()
	}
}

// byteLit renders printable ASCII as a rune literal and other bytes as
// byte(0x..) conversions.
func byteLit(c byte) *jen.Statement {
	if c >= 0x20 && c < 0x7F {
		return jen.LitRune(rune(c))
	}
	return jen.LitByte(c)
}

func lowerFirst(s string) string {
	r, n := utf8.DecodeRuneInString(s)
	return string(unicode.ToLower(r)) + s[n:]
}
