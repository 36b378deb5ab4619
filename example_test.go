package litmap_test

import (
	"fmt"

	"github.com/coregx/litmap"
	"github.com/coregx/litmap/literal"
)

// ExampleCompileStrings demonstrates case-insensitive lookup.
func ExampleCompileStrings() {
	m, err := litmap.CompileStrings(map[string]int{
		"text/html":  10,
		"text/plain": 20,
	}, litmap.DefaultConfig().WithCaseInsensitive(true))
	if err != nil {
		panic(err)
	}

	fmt.Println(m.LookupString("Text/Html"))
	fmt.Println(m.LookupString("text/htm"))
	// Output:
	// 10 true
	// 0 false
}

// ExampleMustCompile demonstrates compiling an ordered pattern set.
func ExampleMustCompile() {
	set := literal.NewSet[string]()
	set.AddString("a", "short")
	set.AddString("ab", "long")
	m := litmap.MustCompile(set, litmap.DefaultConfig())

	fmt.Println(m.LookupString("a"))
	fmt.Println(m.LookupString("ab"))
	fmt.Println(m.LookupString("ac"))
	// Output:
	// short true
	// long true
	//  false
}

// ExampleMap_Finder demonstrates locating patterns inside a larger input.
func ExampleMap_Finder() {
	m, _ := litmap.CompileStrings(map[string]string{
		"GET": "get", "POST": "post",
	}, litmap.DefaultConfig())
	f, err := m.Finder()
	if err != nil {
		panic(err)
	}

	for _, hit := range f.FindAll([]byte("GET /a\nPOST /b\n")) {
		fmt.Printf("[%d:%d] %s\n", hit.Start, hit.End, hit.Value)
	}
	// Output:
	// [0:3] get
	// [7:11] post
}
