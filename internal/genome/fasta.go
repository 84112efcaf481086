package genome

import (
	"fmt"
	"io"

	"github.com/shenwei356/bio/seqio/fastx"
)

// Load reads every record in a FASTA file into a Genome.
//
// The full header line is used as the genome's name. A record with an empty
// name, an empty sequence or a non-nucleotide symbol fails the whole load.
func Load(path string) ([]*Genome, error) {
	reader, err := fastx.NewDefaultReader(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer reader.Close()

	var genomes []*Genome
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}

		// record buffers are reused by the reader, string() copies them
		name, seq := string(record.Name), string(record.Seq.Seq)
		if len(seq) == 0 {
			return nil, fmt.Errorf("%w: %s in %s has no bases", ErrInvalidSequence, name, path)
		}

		g, err := New(name, seq)
		if err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", path, err)
		}
		genomes = append(genomes, g)
	}

	return genomes, nil
}
