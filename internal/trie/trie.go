// Package trie is a prefix tree keyed on nucleotide sequences.
//
// Every node has one child slot per symbol of genome.Alphabet, so branching
// on a key's next symbol is a single array index. Lookups either follow a
// key exactly or tolerate a single substituted symbol anywhere in the key.
package trie

import (
	"errors"
	"fmt"

	"github.com/moiseyalaev/Genome-Matcher/internal/genome"
)

// ErrInvalidKey is returned for an empty key or one with a symbol outside genome.Alphabet.
var ErrInvalidKey = errors.New("invalid key")

// budget is the number of substitutions a lookup may still spend.
type budget int

const (
	spent   budget = 0
	unspent budget = 1
)

type node[V any] struct {
	children [len(genome.Alphabet)]*node[V]
	values   []V
}

// Trie maps nucleotide keys to every value inserted under them.
//
// A Trie is not safe for concurrent use while it is being built. Once
// insertion is done, any number of goroutines may call Find.
type Trie[V any] struct {
	root   *node[V]
	nodes  int
	values int
}

// New returns an empty Trie.
func New[V any]() *Trie[V] {
	t := &Trie[V]{}
	t.Reset()
	return t
}

// Reset discards every node and value in the Trie.
func (t *Trie[V]) Reset() {
	t.root = &node[V]{}
	t.nodes = 1
	t.values = 0
}

// Insert appends value to those stored under key, creating nodes along the key's path as needed.
func (t *Trie[V]) Insert(key string, value V) error {
	codes, err := encode(key)
	if err != nil {
		return err
	}

	curr := t.root
	for _, c := range codes {
		if curr.children[c] == nil {
			curr.children[c] = &node[V]{}
			t.nodes++
		}
		curr = curr.children[c]
	}

	curr.values = append(curr.values, value)
	t.values++
	return nil
}

// Find returns the values stored under key.
//
// With exactMatchOnly false, values stored under any key that differs from
// key by one substituted symbol are returned too. Values under the exact key
// come first; the rest follow in alphabet order of the substituted branch.
func (t *Trie[V]) Find(key string, exactMatchOnly bool) ([]V, error) {
	codes, err := encode(key)
	if err != nil {
		return nil, err
	}

	b := unspent
	if exactMatchOnly {
		b = spent
		if t.root.children[codes[0]] == nil {
			return nil, nil
		}
	}

	return t.root.lookup(codes, b, nil), nil
}

// Len returns the number of values stored in the Trie.
func (t *Trie[V]) Len() int {
	return t.values
}

// Nodes returns the number of nodes in the Trie, its root included.
func (t *Trie[V]) Nodes() int {
	return t.nodes
}

// lookup appends the values reachable from n by consuming key to found.
//
// At each level the search follows the matching edge with its budget intact
// and, if the budget is unspent, every other edge with the budget spent.
func (n *node[V]) lookup(key []int, b budget, found []V) []V {
	if len(key) == 0 {
		return append(found, n.values...)
	}

	want := key[0]
	if child := n.children[want]; child != nil {
		found = child.lookup(key[1:], b, found)
	}

	if b == spent {
		return found
	}

	for c, child := range n.children {
		if child == nil || c == want {
			continue
		}
		found = child.lookup(key[1:], spent, found)
	}

	return found
}

// encode maps each symbol of key to its alphabet code.
func encode(key string) ([]int, error) {
	if key == "" {
		return nil, fmt.Errorf("%w: empty key", ErrInvalidKey)
	}

	codes := make([]int, len(key))
	for i := 0; i < len(key); i++ {
		c, ok := genome.Code(key[i])
		if !ok {
			return nil, fmt.Errorf("%w: %q at %d in %s", ErrInvalidKey, key[i], i, key)
		}
		codes[i] = c
	}
	return codes, nil
}
