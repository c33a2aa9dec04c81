package lp

import "strconv"

// UniqueNames generates variable names that are unique and acceptable to all
// supported engines. The zero value is ready to use.
//
//	var g lp.UniqueNames
//	g.Add("x")    // "x"
//	g.Add("y")    // "y"
//	g.Add("!#?/") // "v" ("!#?/" is not a valid variable name)
//	g.Add("x")    // "x2" (a variable named x already exists)
type UniqueNames struct {
	seen map[string]int
}

// Add returns a valid variable name derived from name, never returned before
// by this generator.
func (g *UniqueNames) Add(name string) string {
	stem := nameStem(name)
	if g.seen == nil {
		g.seen = make(map[string]int)
	}
	g.seen[stem]++
	if n := g.seen[stem]; n >= 2 {
		return stem + strconv.Itoa(n)
	}
	return stem
}

// nameStem strips everything the pickiest engine would reject. A name with
// no usable characters left becomes "v".
func nameStem(name string) string {
	kept := make([]byte, 0, len(name))
	for i := 0; i < len(name); i++ {
		c := name[i]
		if (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') {
			kept = append(kept, c)
		}
	}
	if len(kept) == 0 {
		return "v"
	}
	return string(kept)
}
