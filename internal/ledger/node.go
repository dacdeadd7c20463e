package ledger

import (
	"errors"

	"github.com/shopspring/decimal"
)

var ErrNegativeAmount = errors.New("amount must not be negative")

// Node is one element of a transaction rollup tree: a single amount or a
// named group of child nodes. Totals are computed uniformly over both.
type Node interface {
	Total() decimal.Decimal
}

// Leaf holds a single transaction amount, the smallest unit in the tree.
type Leaf struct {
	amount decimal.Decimal
}

// NewLeaf builds a leaf, rejecting negative amounts.
func NewLeaf(amount decimal.Decimal) (*Leaf, error) {
	if amount.IsNegative() {
		return nil, ErrNegativeAmount
	}
	return &Leaf{amount: amount}, nil
}

// MustLeaf builds a leaf and panics on a negative amount. Intended for
// literals in tests and examples.
func MustLeaf(amount decimal.Decimal) *Leaf {
	leaf, err := NewLeaf(amount)
	if err != nil {
		panic(err)
	}
	return leaf
}

func (l *Leaf) Total() decimal.Decimal {
	return l.amount
}

// Group is a named collection of leaves and nested groups, typically one
// reporting period (a day, a week, a month, a year).
//
// A group is built by a single caller and read-only afterwards; it carries
// no internal locking.
type Group struct {
	name     string
	children []Node
}

func NewGroup(name string) *Group {
	return &Group{name: name}
}

func (g *Group) Name() string {
	return g.name
}

// Add appends a child and returns the group itself for chaining.
func (g *Group) Add(child Node) *Group {
	g.children = append(g.children, child)
	return g
}

// Children returns the child list in insertion order.
func (g *Group) Children() []Node {
	return g.children
}

// Total recomputes the sum over all children on every call. A group with no
// children totals zero.
func (g *Group) Total() decimal.Decimal {
	total := decimal.Zero
	for _, child := range g.children {
		total = total.Add(child.Total())
	}
	return total
}
