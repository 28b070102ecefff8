package iteratable

import (
	"fmt"
	"sort"
	"strings"

	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/emirpasic/gods/sets/hashset"
	"github.com/emirpasic/gods/utils"
)

// Set is an insertion-ordered set of comparable values. Create one with NewSet.
type Set struct {
	members *hashset.Set    // fast membership test
	order   *arraylist.List // insertion order
	cursor  int             // position of an active iteration
}

// NewSet creates an empty set, optionally holding initial values.
func NewSet(values ...interface{}) *Set {
	S := &Set{
		members: hashset.New(),
		order:   arraylist.New(),
		cursor:  -1,
	}
	S.Add(values...)
	return S
}

// Add inserts values which are not yet present. It returns true if at least
// one value has been added.
func (S *Set) Add(values ...interface{}) bool {
	added := false
	for _, v := range values {
		if S.members.Contains(v) {
			continue
		}
		S.members.Add(v)
		S.order.Add(v)
		added = true
	}
	return added
}

// Remove deletes a value from the set. Removing the value currently visited
// by an iteration is safe.
func (S *Set) Remove(value interface{}) {
	if !S.members.Contains(value) {
		return
	}
	S.members.Remove(value)
	inx := S.order.IndexOf(value)
	S.order.Remove(inx)
	if inx <= S.cursor {
		S.cursor--
	}
}

// Contains is a predicate: is value an element of S?
func (S *Set) Contains(value interface{}) bool {
	return S.members.Contains(value)
}

// Size returns the number of elements in S.
func (S *Set) Size() int {
	return S.order.Size()
}

// Empty is a predicate: is S the empty set?
func (S *Set) Empty() bool {
	return S.order.Empty()
}

// Values returns the elements of S in insertion order.
func (S *Set) Values() []interface{} {
	return S.order.Values()
}

// Sorted returns the elements of S ordered by comparator c. S is not changed.
func (S *Set) Sorted(c utils.Comparator) []interface{} {
	vals := S.order.Values()
	sort.SliceStable(vals, func(i, j int) bool {
		return c(vals[i], vals[j]) < 0
	})
	return vals
}

// Copy returns a shallow copy of S. Iteration state is not copied.
func (S *Set) Copy() *Set {
	return NewSet(S.order.Values()...)
}

// Union adds all elements of other to S and returns S.
func (S *Set) Union(other *Set) *Set {
	if other != nil {
		S.Add(other.order.Values()...)
	}
	return S
}

// Difference removes all elements of other from S and returns S.
func (S *Set) Difference(other *Set) *Set {
	if other == nil {
		return S
	}
	for _, v := range other.order.Values() {
		S.Remove(v)
	}
	return S
}

// Equals is a predicate: do S and other hold the same elements?
// Insertion order is irrelevant.
func (S *Set) Equals(other *Set) bool {
	if other == nil || S.Size() != other.Size() {
		return false
	}
	for _, v := range other.order.Values() {
		if !S.members.Contains(v) {
			return false
		}
	}
	return true
}

// --- Iteration -------------------------------------------------------------

// IterateOnce starts an iteration over S. Elements added during the iteration
// will be visited as well.
func (S *Set) IterateOnce() {
	S.cursor = -1
}

// Next moves the iteration to the next element. It returns false when all
// elements have been visited.
func (S *Set) Next() bool {
	if S.cursor+1 >= S.order.Size() {
		S.cursor = S.order.Size()
		return false
	}
	S.cursor++
	return true
}

// Item returns the element the iteration currently visits.
func (S *Set) Item() interface{} {
	v, ok := S.order.Get(S.cursor)
	if !ok {
		return nil
	}
	return v
}

func (S *Set) String() string {
	var b strings.Builder
	b.WriteString("{")
	for i, v := range S.order.Values() {
		if i > 0 {
			b.WriteString(",")
		}
		b.WriteString(fmt.Sprintf(" %v", v))
	}
	b.WriteString(" }")
	return b.String()
}
