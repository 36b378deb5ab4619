package codegen

import (
	"github.com/goccy/go-json"

	"github.com/coregx/litmap/dfa"
)

type jsonProgram struct {
	CaseInsensitive bool        `json:"caseInsensitive"`
	MinLen          int         `json:"minLen"`
	MaxLen          int         `json:"maxLen"`
	Classes         int         `json:"classes"`
	Blocks          []jsonBlock `json:"blocks"`
}

type jsonBlock struct {
	ID       int        `json:"id"`
	State    uint32     `json:"state"`
	Depth    int        `json:"depth"`
	Terminal bool       `json:"terminal"`
	Value    any        `json:"value,omitempty"`
	Pattern  *int       `json:"pattern,omitempty"`
	Guard    *jsonRange `json:"guard,omitempty"`
	Arms     []jsonArm  `json:"arms,omitempty"`
}

type jsonRange struct {
	Lo int `json:"lo"`
	Hi int `json:"hi"`
}

type jsonArm struct {
	Bytes []int `json:"bytes"`
	Next  int   `json:"next"`
}

// emitJSON renders the program for external tooling such as visualizers.
// Values are encoded as JSON themselves; a value type JSON cannot encode is
// a configuration error.
func emitJSON[V any](p *Program[V], bc *dfa.ByteClasses) ([]byte, error) {
	out := jsonProgram{
		CaseInsensitive: p.CaseInsensitive,
		MinLen:          p.MinLen,
		MaxLen:          p.MaxLen,
		Classes:         bc.AlphabetLen(),
		Blocks:          make([]jsonBlock, len(p.Blocks)),
	}

	for i := range p.Blocks {
		blk := &p.Blocks[i]
		jb := jsonBlock{
			ID:       blk.ID,
			State:    uint32(blk.State),
			Depth:    blk.Depth,
			Terminal: blk.Terminal,
		}
		if blk.Terminal {
			pattern := blk.Pattern
			jb.Value = blk.Value
			jb.Pattern = &pattern
		}
		if blk.Guard != nil {
			jb.Guard = &jsonRange{Lo: int(blk.Guard.Lo), Hi: int(blk.Guard.Hi)}
		}
		for _, arm := range blk.Arms {
			ja := jsonArm{Next: arm.Next, Bytes: make([]int, len(arm.Bytes))}
			for k, c := range arm.Bytes {
				ja.Bytes[k] = int(c)
			}
			jb.Arms = append(jb.Arms, ja)
		}
		out.Blocks[i] = jb
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, configErr("Dialect", DialectJSON.String(), "value cannot be encoded as JSON", err)
	}
	return append(data, '\n'), nil
}
