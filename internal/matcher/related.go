package matcher

import (
	"context"
	"fmt"
	"math"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/moiseyalaev/Genome-Matcher/internal/genome"
)

// GenomeMatch is a genome of the library and the percentage of a query's fragments found in it.
type GenomeMatch struct {
	Genome  string  `json:"genome"`
	Percent float64 `json:"percent"`
}

// FindRelatedGenomes ranks the library's genomes by how many of query's fragments they contain.
//
// query is split into consecutive, non-overlapping fragments of
// fragmentMatchLength (a shorter tail is ignored) and each is searched for
// with FindFragment. A genome's percent is the share of fragments it
// contains. Genomes at or above matchPercentThreshold are returned, highest
// percent first and then by name. query itself is skipped if it was added
// to the Matcher.
func (m *Matcher) FindRelatedGenomes(
	ctx context.Context,
	query *genome.Genome,
	fragmentMatchLength int,
	exactMatchOnly bool,
	matchPercentThreshold float64,
) ([]GenomeMatch, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if fragmentMatchLength < m.minSearch {
		return nil, fmt.Errorf("%w: fragment match length %d is less than the minimum search length %d", ErrInvalidQuery, fragmentMatchLength, m.minSearch)
	}
	if fragmentMatchLength > query.Len() {
		return nil, fmt.Errorf("%w: fragment match length %d is greater than the length of %s, %d", ErrInvalidQuery, fragmentMatchLength, query.Name(), query.Len())
	}
	if math.IsNaN(matchPercentThreshold) || matchPercentThreshold < 0 || matchPercentThreshold > 100 {
		return nil, fmt.Errorf("%w: match percent threshold %v is not within [0, 100]", ErrInvalidQuery, matchPercentThreshold)
	}

	// genomes with a match for each fragment of the query
	fragments := query.Len() / fragmentMatchLength
	found := make([][]DNAMatch, fragments)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(m.workers)
	for i := 0; i < fragments; i++ {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			fragment, err := query.Extract(i*fragmentMatchLength, fragmentMatchLength)
			if err != nil {
				return err
			}

			found[i], err = m.find(fragment, fragmentMatchLength, exactMatchOnly)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to match fragments of %s: %w", query.Name(), err)
	}

	// each fragment credits a genome once: find keeps one match per genome
	hits := make(map[string]int)
	for _, matches := range found {
		for _, match := range matches {
			hits[match.Genome]++
		}
	}

	var related []GenomeMatch
	for name, indexed := range m.library {
		if indexed == query {
			continue
		}

		percent := 100 * float64(hits[name]) / float64(fragments)
		if percent >= matchPercentThreshold {
			related = append(related, GenomeMatch{Genome: name, Percent: percent})
		}
	}

	sort.Slice(related, func(i, j int) bool {
		if related[i].Percent != related[j].Percent {
			return related[i].Percent > related[j].Percent
		}
		return related[i].Genome < related[j].Genome
	})

	return related, nil
}
