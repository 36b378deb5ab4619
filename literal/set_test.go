package literal

import (
	"bytes"
	"testing"
)

func TestSetAddPreservesOrder(t *testing.T) {
	s := NewSet[int]()
	s.AddString("b", 2)
	s.AddString("a", 1)
	s.Add([]byte("c"), 3)

	if s.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", s.Len())
	}

	want := []string{"b", "a", "c"}
	for i, w := range want {
		p := s.Get(i)
		if string(p.Bytes) != w {
			t.Errorf("Get(%d).Bytes = %q, want %q", i, p.Bytes, w)
		}
		if p.Index != i {
			t.Errorf("Get(%d).Index = %d, want %d", i, p.Index, i)
		}
	}
}

func TestSetAddCopiesBytes(t *testing.T) {
	buf := []byte("abc")
	s := NewSet[int]()
	s.Add(buf, 1)
	buf[0] = 'X'

	if got := string(s.Get(0).Bytes); got != "abc" {
		t.Errorf("pattern aliased caller buffer: got %q", got)
	}
}

func TestSetEmpty(t *testing.T) {
	var nilSet *Set[int]
	if !nilSet.IsEmpty() || nilSet.Len() != 0 {
		t.Error("nil set should be empty")
	}

	s := NewSet[string]()
	if !s.IsEmpty() {
		t.Error("new set should be empty")
	}
	if s.MinLen() != 0 || s.MaxLen() != 0 || s.TotalBytes() != 0 {
		t.Error("empty set lengths should be zero")
	}
	if len(s.LongestCommonPrefix()) != 0 {
		t.Error("empty set has no common prefix")
	}
}

func TestFromStringMapIsSorted(t *testing.T) {
	m := map[string]int{"zeta": 1, "alpha": 2, "mid": 3, "": 4}
	for i := 0; i < 10; i++ {
		s := FromStringMap(m)
		want := []string{"", "alpha", "mid", "zeta"}
		for j, w := range want {
			if got := string(s.Get(j).Bytes); got != w {
				t.Fatalf("run %d: Get(%d) = %q, want %q", i, j, got, w)
			}
		}
	}
}

func TestSetLengths(t *testing.T) {
	s := NewSet[int]()
	s.AddString("text/html", 1)
	s.AddString("a", 2)
	s.AddString("image/png", 3)

	if s.MinLen() != 1 {
		t.Errorf("MinLen() = %d, want 1", s.MinLen())
	}
	if s.MaxLen() != 9 {
		t.Errorf("MaxLen() = %d, want 9", s.MaxLen())
	}
	if s.TotalBytes() != 19 {
		t.Errorf("TotalBytes() = %d, want 19", s.TotalBytes())
	}
}

func TestLongestCommonPrefix(t *testing.T) {
	tests := []struct {
		name string
		pats []string
		want string
	}{
		{"shared", []string{"hello", "help", "hero"}, "he"},
		{"none", []string{"abc", "def"}, ""},
		{"single", []string{"text/html"}, "text/html"},
		{"one_is_prefix", []string{"text/", "text/html"}, "text/"},
		{"with_empty", []string{"", "x"}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSet[int]()
			for i, p := range tt.pats {
				s.AddString(p, i)
			}
			if got := s.LongestCommonPrefix(); !bytes.Equal(got, []byte(tt.want)) {
				t.Errorf("LongestCommonPrefix() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSetCloneIsDeep(t *testing.T) {
	s := NewSet[int]()
	s.AddString("abc", 1)
	c := s.Clone()
	c.Get(0).Bytes[0] = 'X'

	if string(s.Get(0).Bytes) != "abc" {
		t.Error("Clone shares byte storage with original")
	}
	if c.Get(0).Value != 1 || c.Get(0).Index != 0 {
		t.Error("Clone lost value or index")
	}
}

func TestSetContainsAndEach(t *testing.T) {
	s := NewSet[int]()
	s.AddString("GET", 1)
	s.AddString("PUT", 2)
	s.AddString("POST", 3)

	if !s.Contains([]byte("PUT")) || s.Contains([]byte("put")) {
		t.Error("Contains must compare bytes exactly")
	}

	visited := 0
	s.Each(func(p Pattern[int]) bool {
		visited++
		return p.Value < 2
	})
	if visited != 2 {
		t.Errorf("Each visited %d patterns, want 2 (stops on false)", visited)
	}
}
