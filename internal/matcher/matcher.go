// Package matcher finds where DNA fragments occur across a library of genomes,
// and which genomes of the library are related to a query genome.
//
// Every genome added to a Matcher is broken into overlapping fragments of the
// Matcher's minimum search length and indexed in a prefix tree. Queries walk
// the tree for candidate anchors, allowing at most one mismatch, and extend
// each anchor against its genome to measure the full length of the match.
package matcher

import (
	"errors"
	"fmt"
	"runtime"
	"sort"
	"strings"
	"sync"

	"github.com/moiseyalaev/Genome-Matcher/internal/genome"
	"github.com/moiseyalaev/Genome-Matcher/internal/trie"
)

var (
	// ErrInvalidQuery is returned when a query's lengths or threshold are outside of what the Matcher supports.
	ErrInvalidQuery = errors.New("invalid query")

	// ErrDuplicateGenome is returned when a genome's name is already in the library.
	ErrDuplicateGenome = errors.New("duplicate genome")
)

// DNAMatch is a single occurrence of a fragment in a genome.
type DNAMatch struct {
	// Genome is the name of the genome the fragment occurs in
	Genome string `json:"genome"`

	// Position is the zero-based offset of the occurrence in the genome
	Position int `json:"position"`

	// Length is the number of leading bases of the fragment that match
	Length int `json:"length"`
}

// Stats summarizes the contents of a Matcher.
type Stats struct {
	Genomes   int `json:"genomes"`
	Bases     int `json:"bases"`
	Fragments int `json:"fragments"`
	Nodes     int `json:"nodes"`
}

// Matcher indexes genomes for fragment and related genome queries.
//
// Genomes may be added and queries run from multiple goroutines: adding a
// genome blocks queries until it is fully indexed.
type Matcher struct {
	mu sync.RWMutex

	// minSearch is the length of every indexed fragment
	minSearch int

	// workers caps the goroutines of a related genome query
	workers int

	// library maps each genome's name to the genome
	library map[string]*genome.Genome

	// bases is the sum of the library's genome lengths
	bases int

	index *trie.Trie[DNAMatch]
}

// New returns an empty Matcher that indexes fragments of minSearchLength.
func New(minSearchLength int) (*Matcher, error) {
	if minSearchLength < 1 {
		return nil, fmt.Errorf("%w: minimum search length %d is less than 1", ErrInvalidQuery, minSearchLength)
	}

	return &Matcher{
		minSearch: minSearchLength,
		workers:   runtime.NumCPU(),
		library:   make(map[string]*genome.Genome),
		index:     trie.New[DNAMatch](),
	}, nil
}

// MinimumSearchLength returns the length of the fragments in the index.
func (m *Matcher) MinimumSearchLength() int {
	return m.minSearch
}

// SetWorkers sets how many fragments of a related genome query are matched in parallel.
// Values below one reset it to the number of CPUs.
func (m *Matcher) SetWorkers(n int) {
	if n < 1 {
		n = runtime.NumCPU()
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.workers = n
}

// AddGenome indexes every fragment of the minimum search length in g.
func (m *Matcher) AddGenome(g *genome.Genome) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.library[g.Name()]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateGenome, g.Name())
	}

	for i := 0; i+m.minSearch <= g.Len(); i++ {
		fragment, err := g.Extract(i, m.minSearch)
		if err != nil {
			return err
		}

		occurrence := DNAMatch{Genome: g.Name(), Position: i, Length: m.minSearch}
		if err = m.index.Insert(fragment, occurrence); err != nil {
			return fmt.Errorf("failed to index %s at %d: %w", g.Name(), i, err)
		}
	}

	m.library[g.Name()] = g
	m.bases += g.Len()
	return nil
}

// Reset removes every genome from the Matcher.
func (m *Matcher) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.index.Reset()
	m.library = make(map[string]*genome.Genome)
	m.bases = 0
}

// Stats returns the number of genomes, bases, fragments and index nodes in the Matcher.
func (m *Matcher) Stats() Stats {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return Stats{
		Genomes:   len(m.library),
		Bases:     m.bases,
		Fragments: m.index.Len(),
		Nodes:     m.index.Nodes(),
	}
}

// FindFragment returns, for every genome that contains fragment, its longest occurrence.
//
// A genome contains fragment if a prefix of at least minimumLength bases
// occurs in it, exactly or, if exactMatchOnly is false, with at most one
// mismatch. The reported Length of each match is the longest such prefix.
// Matches are sorted by genome name.
func (m *Matcher) FindFragment(fragment string, minimumLength int, exactMatchOnly bool) ([]DNAMatch, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.find(strings.ToUpper(fragment), minimumLength, exactMatchOnly)
}

// find expects the read lock to be held.
func (m *Matcher) find(fragment string, minimumLength int, exactMatchOnly bool) ([]DNAMatch, error) {
	if minimumLength < m.minSearch {
		return nil, fmt.Errorf("%w: minimum length %d is less than the minimum search length %d", ErrInvalidQuery, minimumLength, m.minSearch)
	}
	if len(fragment) < minimumLength {
		return nil, fmt.Errorf("%w: fragment length %d is less than the minimum length %d", ErrInvalidQuery, len(fragment), minimumLength)
	}

	for i := m.minSearch; i < len(fragment); i++ {
		if _, ok := genome.Code(fragment[i]); !ok {
			return nil, fmt.Errorf("%w: %q at %d in %s", trie.ErrInvalidKey, fragment[i], i, fragment)
		}
	}

	// the index only holds fragments of the minimum search length
	anchors, err := m.index.Find(fragment[:m.minSearch], exactMatchOnly)
	if err != nil {
		return nil, err
	}

	allowed := 1
	if exactMatchOnly {
		allowed = 0
	}

	best := make(map[string]DNAMatch)
	for _, anchor := range anchors {
		g, ok := m.library[anchor.Genome]
		if !ok {
			return nil, fmt.Errorf("%w: %s is not in the library", genome.ErrOutOfRange, anchor.Genome)
		}
		if _, err := g.Extract(anchor.Position, anchor.Length); err != nil {
			return nil, err
		}

		window, err := g.Extract(anchor.Position, len(fragment))
		if err != nil {
			continue // fragment runs off the end of the genome
		}

		match := anchor
		match.Length = extend(fragment, window, allowed)
		if match.Length < minimumLength {
			continue
		}

		if prev, seen := best[match.Genome]; !seen || match.Length > prev.Length ||
			(match.Length == prev.Length && match.Position < prev.Position) {
			best[match.Genome] = match
		}
	}

	matches := make([]DNAMatch, 0, len(best))
	for _, match := range best {
		matches = append(matches, match)
	}
	sort.Slice(matches, func(i, j int) bool {
		return matches[i].Genome < matches[j].Genome
	})

	return matches, nil
}

// extend returns the length of the longest prefix of fragment that matches
// window with no more than allowed mismatches.
func extend(fragment, window string, allowed int) int {
	mismatches := 0
	for i := 0; i < len(fragment); i++ {
		if fragment[i] == window[i] {
			continue
		}
		if mismatches++; mismatches > allowed {
			return i
		}
	}
	return len(fragment)
}
