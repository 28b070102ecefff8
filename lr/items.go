package lr

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/cnf/structhash"
	"github.com/emirpasic/gods/utils"
	"github.com/npillmayer/slrgen/lr/iteratable"
)

// Item is an LR(0) item, i.e. a rule with a dot position in its right hand side.
// Items are values and may be compared with ==.
type Item struct {
	rule *Rule
	dot  int
}

// StartItem returns the item for a rule with the dot in front of the right hand
// side, together with the symbol after the dot (nil for epsilon rules).
func StartItem(r *Rule) (Item, *Symbol) {
	i := Item{rule: r, dot: 0}
	return i, i.PeekSymbol()
}

// Rule returns the rule of an item.
func (i Item) Rule() *Rule {
	return i.rule
}

// Dot returns the dot position, 0 ≤ dot ≤ len(RHS).
func (i Item) Dot() int {
	return i.dot
}

// PeekSymbol returns the symbol after the dot, or nil if the item is complete.
func (i Item) PeekSymbol() *Symbol {
	if i.dot >= len(i.rule.rhs) {
		return nil
	}
	return i.rule.rhs[i.dot]
}

// Advance returns the item with the dot moved one symbol to the right.
// Advancing a complete item returns the item unchanged.
func (i Item) Advance() Item {
	if i.dot >= len(i.rule.rhs) {
		return i
	}
	return Item{rule: i.rule, dot: i.dot + 1}
}

// Prefix returns the symbols in front of the dot.
func (i Item) Prefix() []*Symbol {
	return i.rule.rhs[:i.dot]
}

// IsComplete is a predicate: is the dot at the end of the right hand side?
func (i Item) IsComplete() bool {
	return i.dot >= len(i.rule.rhs)
}

func (i Item) String() string {
	var b bytes.Buffer
	b.WriteString(i.rule.LHS.Name)
	b.WriteString(" ->")
	for k, A := range i.rule.rhs {
		if k == i.dot {
			b.WriteString(" •")
		}
		b.WriteString(" ")
		b.WriteString(A.Name)
	}
	if i.IsComplete() {
		b.WriteString(" •")
	}
	return b.String()
}

// itemComparator orders items by rule serial, then by dot position.
func itemComparator(x, y interface{}) int {
	i, j := x.(Item), y.(Item)
	if c := utils.IntComparator(i.rule.Serial, j.rule.Serial); c != 0 {
		return c
	}
	return utils.IntComparator(i.dot, j.dot)
}

func asItem(x interface{}) Item {
	return x.(Item)
}

func newItemSet() *iteratable.Set {
	return iteratable.NewSet()
}

// sortedItems returns the items of an item set in canonical order.
func sortedItems(S *iteratable.Set) []Item {
	values := S.Sorted(itemComparator)
	items := make([]Item, len(values))
	for k, x := range values {
		items[k] = asItem(x)
	}
	return items
}

// itemKey is the hashable form of an item.
type itemKey struct {
	Rule int
	Dot  int
}

// itemSetKey computes a canonical hash key for an item set. Equal item sets
// have equal keys, regardless of the order in which items have been added.
func itemSetKey(S *iteratable.Set) string {
	items := sortedItems(S)
	keys := make([]itemKey, len(items))
	for k, i := range items {
		keys[k] = itemKey{Rule: i.rule.Serial, Dot: i.dot}
	}
	return fmt.Sprintf("%x", structhash.Md5(keys, 1))
}

// === Closure and Goto-Set Operations =======================================

// Refer to "Crafting A Compiler" by Charles N. Fisher & Richard J. LeBlanc, Jr.
// Section 6.2.1 LR(0) Parsing

// closureSet computes the LR(0) closure of an item set: for every item with
// a non-terminal B after the dot, add all start items of B's rules, until
// nothing new is added. S is not changed.
func (g *Grammar) closureSet(S *iteratable.Set) *iteratable.Set {
	C := S.Copy()
	C.IterateOnce()
	for C.Next() { // visits items added during iteration as well
		item := asItem(C.Item())
		B := item.PeekSymbol()
		if B == nil || !B.IsNonTerminal() {
			continue
		}
		for _, r := range g.FindNonTermRules(B) {
			i, _ := StartItem(r)
			C.Add(i)
		}
	}
	return C
}

// gotoSet computes GOTO(S, A): advance every item of S with A after the dot,
// then take the closure. The result is empty if no item of S expects A.
func (g *Grammar) gotoSet(S *iteratable.Set, A *Symbol) *iteratable.Set {
	kernel := newItemSet()
	for _, x := range S.Values() {
		i := asItem(x)
		if i.PeekSymbol() == A {
			kernel.Add(i.Advance())
		}
	}
	if kernel.Empty() {
		return kernel
	}
	C := g.closureSet(kernel)
	tracer().Debugf("goto(%s) --%s--> %s", itemSetString(S), A, itemSetString(C))
	return C
}

// itemSetString renders an item set in canonical order.
func itemSetString(S *iteratable.Set) string {
	var b bytes.Buffer
	b.WriteString("{")
	for k, i := range sortedItems(S) {
		if k > 0 {
			b.WriteString(",")
		}
		b.WriteString(" ")
		b.WriteString(i.String())
	}
	b.WriteString(" }")
	return b.String()
}

// Dump is a debugging helper, tracing the items of an item set.
func Dump(S *iteratable.Set) {
	for _, i := range sortedItems(S) {
		tracer().Debugf("    %s", i)
	}
}

// sortedUInts returns the distinct values of in, in increasing order.
func sortedUInts(in []uint) []uint {
	if len(in) == 0 {
		return in
	}
	sort.Slice(in, func(a, b int) bool { return in[a] < in[b] })
	j := 0
	for k := 1; k < len(in); k++ {
		if in[j] == in[k] {
			continue
		}
		j++
		in[j] = in[k]
	}
	return in[:j+1]
}
