package trie

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/moiseyalaev/Genome-Matcher/internal/genome"
)

// fragments inserts every 4-mer of seq under its offset
func fragments(t *testing.T, seq string) *Trie[int] {
	tr := New[int]()
	for i := 0; i+4 <= len(seq); i++ {
		if err := tr.Insert(seq[i:i+4], i); err != nil {
			t.Fatal(err)
		}
	}
	return tr
}

func TestTrie_Find(t *testing.T) {
	tr := fragments(t, "ACGTACGT")

	type args struct {
		key            string
		exactMatchOnly bool
	}
	tests := []struct {
		name string
		args args
		want []int
	}{
		{
			"exact match at both offsets",
			args{"ACGT", true},
			[]int{0, 4},
		},
		{
			"exact lookup of an interior fragment",
			args{"GTAC", true},
			[]int{2},
		},
		{
			"exact lookup misses a one-off key",
			args{"ACGA", true},
			nil,
		},
		{
			"mismatch in the last position",
			args{"ACGA", false},
			[]int{0, 4},
		},
		{
			"mismatch in an interior position",
			args{"AGGT", false},
			[]int{0, 4},
		},
		{
			"mismatch in the first position",
			args{"TCGT", false},
			[]int{0, 4},
		},
		{
			"two mismatches are not tolerated",
			args{"AGGA", false},
			nil,
		},
		{
			"no match",
			args{"AAAA", false},
			nil,
		},
		{
			"exact key first, then substituted branches",
			args{"TACG", false},
			[]int{3},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tr.Find(tt.args.key, tt.args.exactMatchOnly)
			if err != nil {
				t.Fatal(err)
			}
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Find() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTrie_Find_order(t *testing.T) {
	tr := New[string]()
	for _, key := range []string{"CCGT", "ACGT", "NCGT", "ACGT"} {
		if err := tr.Insert(key, key); err != nil {
			t.Fatal(err)
		}
	}

	got, err := tr.Find("ACGT", false)
	if err != nil {
		t.Fatal(err)
	}

	want := []string{"ACGT", "ACGT", "CCGT", "NCGT"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Find() = %v, want %v", got, want)
	}
}

// every indexed fragment comes back from an exact lookup, and every single
// substitution of it comes back from a fuzzy one
func TestTrie_roundTrip(t *testing.T) {
	seq := "GGCTAATATAGCGAATTGCCGAGAACCCGGNCCCACGCAATGGAACGTCT"
	tr := New[int]()
	for i := 0; i+8 <= len(seq); i++ {
		if err := tr.Insert(seq[i:i+8], i); err != nil {
			t.Fatal(err)
		}
	}

	contains := func(vals []int, want int) bool {
		for _, v := range vals {
			if v == want {
				return true
			}
		}
		return false
	}

	for i := 0; i+8 <= len(seq); i++ {
		key := seq[i : i+8]

		exact, err := tr.Find(key, true)
		if err != nil {
			t.Fatal(err)
		}
		if !contains(exact, i) {
			t.Errorf("Find(%s, true) = %v, missing %d", key, exact, i)
		}

		for j := 0; j < len(key); j++ {
			mutant := []byte(key)
			mutant[j] = genome.Alphabet[(strings.IndexByte(genome.Alphabet, key[j])+1)%len(genome.Alphabet)]

			fuzzy, err := tr.Find(string(mutant), false)
			if err != nil {
				t.Fatal(err)
			}
			if !contains(fuzzy, i) {
				t.Errorf("Find(%s, false) = %v, missing %d", mutant, fuzzy, i)
			}
		}
	}
}

func TestTrie_invalidKey(t *testing.T) {
	tr := New[int]()

	for _, key := range []string{"", "ACGX", "acgt", "AC T"} {
		if err := tr.Insert(key, 0); !errors.Is(err, ErrInvalidKey) {
			t.Errorf("Insert(%q) error = %v, want ErrInvalidKey", key, err)
		}
		if _, err := tr.Find(key, false); !errors.Is(err, ErrInvalidKey) {
			t.Errorf("Find(%q) error = %v, want ErrInvalidKey", key, err)
		}
	}

	if tr.Len() != 0 || tr.Nodes() != 1 {
		t.Errorf("invalid keys changed the trie: len=%d nodes=%d", tr.Len(), tr.Nodes())
	}
}

func TestTrie_Reset(t *testing.T) {
	tr := fragments(t, "ACGTACGT")

	if tr.Len() != 5 {
		t.Errorf("Len() = %d, want 5", tr.Len())
	}
	// ACGT, CGTA, GTAC and TACG share no prefix: 4 * 4 nodes and the root
	if tr.Nodes() != 17 {
		t.Errorf("Nodes() = %d, want 17", tr.Nodes())
	}

	tr.Reset()

	if tr.Len() != 0 || tr.Nodes() != 1 {
		t.Errorf("Reset() left len=%d nodes=%d", tr.Len(), tr.Nodes())
	}
	if got, _ := tr.Find("ACGT", false); len(got) != 0 {
		t.Errorf("Find() after Reset() = %v", got)
	}
}
