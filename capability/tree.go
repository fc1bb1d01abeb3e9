package capability

import (
	"fmt"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Node is a capability tree node: either a *Branch or a *Leaf.
type Node interface {
	isNode()
}

// Entry is a keyed child used to build a Branch.
type Entry struct {
	Key  string
	Node Node
}

// Branch is an ordered mapping from keys to child nodes.
// Children keep the order in which they were added.
type Branch struct {
	children *orderedmap.OrderedMap[string, Node]
}

func (*Branch) isNode() {}

// NewBranch creates a branch from the given entries.
// Keys must be unique, non-empty and free of '.' separators.
func NewBranch(entries ...Entry) (*Branch, error) {
	b := &Branch{children: orderedmap.New[string, Node]()}
	for _, e := range entries {
		if err := b.add(e.Key, e.Node); err != nil {
			return nil, err
		}
	}
	return b, nil
}

// MustBranch creates a branch or panics.
func MustBranch(entries ...Entry) *Branch {
	b, err := NewBranch(entries...)
	if err != nil {
		panic(err)
	}
	return b
}

func (b *Branch) add(key string, child Node) error {
	if key == "" {
		return fmt.Errorf("branch key cannot be empty")
	}
	if strings.Contains(key, PathSeparator) {
		return fmt.Errorf("branch key %q cannot contain %q", key, PathSeparator)
	}
	if child == nil {
		return fmt.Errorf("branch key %q has no node", key)
	}
	if _, exists := b.children.Get(key); exists {
		return fmt.Errorf("duplicate branch key %q", key)
	}
	b.children.Set(key, child)
	return nil
}

// Child returns the node stored under key.
func (b *Branch) Child(key string) (Node, bool) {
	if b == nil || b.children == nil {
		return nil, false
	}
	return b.children.Get(key)
}

// Keys returns child keys in insertion order.
func (b *Branch) Keys() []string {
	if b == nil || b.children == nil {
		return nil
	}
	keys := make([]string, 0, b.children.Len())
	for pair := b.children.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}

// Len returns the number of children.
func (b *Branch) Len() int {
	if b == nil || b.children == nil {
		return 0
	}
	return b.children.Len()
}

// Leaf holds one integration together with its variable extractor.
type Leaf struct {
	integration Integration
	extractor   VariableExtractor
}

func (*Leaf) isNode() {}

// NewLeaf wraps an integration, choosing its variable extractor.
func NewLeaf(integration Integration) (*Leaf, error) {
	extractor, err := NewExtractor(integration)
	if err != nil {
		return nil, err
	}
	return &Leaf{integration: integration, extractor: extractor}, nil
}

// MustLeaf wraps an integration or panics.
func MustLeaf(integration Integration) *Leaf {
	l, err := NewLeaf(integration)
	if err != nil {
		panic(err)
	}
	return l
}

// Integration returns the original satellite object.
func (l *Leaf) Integration() Integration {
	return l.integration
}

// DeclaredName returns the integration's own display name, or "".
func (l *Leaf) DeclaredName() string {
	if n, ok := l.integration.(Named); ok {
		return n.Name()
	}
	return ""
}

// Variables returns the request and response variables.
func (l *Leaf) Variables() (request, response []Variable) {
	return l.extractor.ExtractVariables()
}
