// Package bank holds the immutable question banks. A Bank is built once at
// process start and shared read-only across all requests, so no
// synchronization is needed anywhere downstream.
package bank

import (
	"fmt"

	"thozhahub/internal/model"
)

// Bank is an arena of question nodes keyed by id. The declaration order of
// the nodes is preserved and used as the deterministic secondary tie-break
// during selection.
type Bank struct {
	nodes   map[string]*model.QuestionNode
	order   []string
	startID string
}

// New builds a bank from the given nodes and validates its structure: unique
// ids, a resolvable start node, at least two options per node, resolvable
// continuity hints, and non-negative score/trait deltas.
func New(nodes []model.QuestionNode, startID string) (*Bank, error) {
	b := &Bank{
		nodes:   make(map[string]*model.QuestionNode, len(nodes)),
		order:   make([]string, 0, len(nodes)),
		startID: startID,
	}
	for i := range nodes {
		n := &nodes[i]
		if n.ID == "" {
			return nil, fmt.Errorf("bank: node %d has empty id", i)
		}
		if _, dup := b.nodes[n.ID]; dup {
			return nil, fmt.Errorf("bank: duplicate question id %q", n.ID)
		}
		if len(n.Options) < 2 {
			return nil, fmt.Errorf("bank: question %q needs at least two options", n.ID)
		}
		b.nodes[n.ID] = n
		b.order = append(b.order, n.ID)
	}
	if _, ok := b.nodes[startID]; !ok {
		return nil, fmt.Errorf("bank: start question %q not found", startID)
	}
	for _, id := range b.order {
		for i, opt := range b.nodes[id].Options {
			if opt.NextID != "" {
				if _, ok := b.nodes[opt.NextID]; !ok {
					return nil, fmt.Errorf("bank: question %q option %d hints at unknown question %q", id, i, opt.NextID)
				}
			}
			for cat, v := range opt.Scores {
				if v < 0 {
					return nil, fmt.Errorf("bank: question %q option %d has negative %s delta", id, i, cat)
				}
			}
			for trait, v := range opt.Traits {
				if v < 0 {
					return nil, fmt.Errorf("bank: question %q option %d has negative %s delta", id, i, trait)
				}
			}
		}
	}
	return b, nil
}

// Start returns the designated entry node.
func (b *Bank) Start() *model.QuestionNode {
	return b.nodes[b.startID]
}

// Get looks up a question by id.
func (b *Bank) Get(id string) (*model.QuestionNode, bool) {
	n, ok := b.nodes[id]
	return n, ok
}

// All returns every node in declaration order.
func (b *Bank) All() []*model.QuestionNode {
	out := make([]*model.QuestionNode, len(b.order))
	for i, id := range b.order {
		out[i] = b.nodes[id]
	}
	return out
}

// Len is the number of questions in the bank.
func (b *Bank) Len() int {
	return len(b.order)
}

// TraitCoverage returns the traits a question can affect, in the fixed trait
// order: the union of trait keys across all its options.
func TraitCoverage(q *model.QuestionNode) []model.Trait {
	seen := make(map[model.Trait]bool)
	for _, opt := range q.Options {
		for trait := range opt.Traits {
			seen[trait] = true
		}
	}
	out := make([]model.Trait, 0, len(seen))
	for _, trait := range model.AllTraits {
		if seen[trait] {
			out = append(out, trait)
		}
	}
	return out
}
