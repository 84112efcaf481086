// Package genome holds named nucleotide sequences and loads them from FASTA files.
package genome

import (
	"errors"
	"fmt"
	"strings"
)

// Alphabet is the set of nucleotide symbols a Genome may hold, in code order.
const Alphabet = "ACGTN"

var (
	// ErrOutOfRange is returned when an extraction falls outside of a sequence.
	ErrOutOfRange = errors.New("out of range")

	// ErrInvalidSequence is returned for a genome without a name or with non-nucleotide symbols.
	ErrInvalidSequence = errors.New("invalid sequence")
)

// Genome is a named, upper-case nucleotide sequence.
type Genome struct {
	name string
	seq  string
}

// New returns a Genome after normalizing its sequence to upper case.
func New(name, seq string) (*Genome, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: empty genome name", ErrInvalidSequence)
	}

	seq = strings.ToUpper(seq)
	for i := 0; i < len(seq); i++ {
		if _, ok := Code(seq[i]); !ok {
			return nil, fmt.Errorf("%w: %q at %d in %s", ErrInvalidSequence, seq[i], i, name)
		}
	}

	return &Genome{name: name, seq: seq}, nil
}

// Name returns the genome's name.
func (g *Genome) Name() string {
	return g.name
}

// Len returns the number of bases in the genome.
func (g *Genome) Len() int {
	return len(g.seq)
}

// Extract returns the length bases starting at position.
func (g *Genome) Extract(position, length int) (string, error) {
	if position < 0 || length < 0 || position+length > len(g.seq) {
		return "", fmt.Errorf("%w: [%d, %d) of %s with length %d", ErrOutOfRange, position, position+length, g.name, len(g.seq))
	}
	return g.seq[position : position+length], nil
}

// Code maps an upper-case nucleotide to its index in Alphabet.
func Code(b byte) (int, bool) {
	switch b {
	case 'A':
		return 0, true
	case 'C':
		return 1, true
	case 'G':
		return 2, true
	case 'T':
		return 3, true
	case 'N':
		return 4, true
	}
	return -1, false
}
