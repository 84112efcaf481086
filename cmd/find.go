package cmd

import (
	"github.com/moiseyalaev/Genome-Matcher/config"
	"github.com/moiseyalaev/Genome-Matcher/internal/genomatch"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// findCmd is for finding fragments or related genomes in a library of genomes.
var findCmd = &cobra.Command{
	Use:                        "find",
	Short:                      "Find fragments or related genomes",
	SuggestionsMinimumDistance: 2,
	Long: `Find where a fragment occurs in a library of genomes, or which genomes
of the library are related to a query genome.

Both allow one mismatched base unless --exact is passed.`,
	Aliases: []string{"search"},
}

// fragmentFindCmd is for finding the genomes that contain a fragment
var fragmentFindCmd = &cobra.Command{
	Use:                        "fragment [DNA]",
	Short:                      "Find the genomes that contain a fragment",
	Run:                        genomatch.FragmentCmd,
	Args:                       cobra.ExactArgs(1),
	SuggestionsMinimumDistance: 2,
	Example:                    "  genomatch find fragment GCAATTAAGGACAAC --dbs library.fa",
	Long: `Find the genomes that contain a fragment. A genome contains the fragment if
at least --min-length of its leading bases occur in the genome. Each genome's
longest match is reported with its position and length.`,
	Aliases: []string{"dna", "frag"},
}

// relatedFindCmd is for ranking genomes by how many fragments they share with a query genome
var relatedFindCmd = &cobra.Command{
	Use:                        "related",
	Short:                      "Find the genomes related to a query genome",
	Run:                        genomatch.RelatedCmd,
	SuggestionsMinimumDistance: 2,
	Example:                    "  genomatch find related --in query.fa --dbs library.fa --threshold 30",
	Long: `Split the first genome in --in into fragments of --length and report the
genomes that contain at least --threshold percent of them, most related first.`,
	Aliases: []string{"genome", "genomes"},
}

// set flags
func init() {
	fragmentFindCmd.Flags().StringP("dbs", "d", "", "comma separated list of FASTA genome libraries")
	fragmentFindCmd.Flags().StringP("out", "o", "", "output JSON file name (stdout if empty)")
	fragmentFindCmd.Flags().IntP("min-length", "m", 0, "minimum match length (min-search-length if zero)")
	fragmentFindCmd.Flags().BoolP("exact", "e", false, "disallow a mismatched base")

	relatedFindCmd.Flags().StringP("in", "i", "", "input FASTA with the query genome")
	relatedFindCmd.Flags().StringP("dbs", "d", "", "comma separated list of FASTA genome libraries")
	relatedFindCmd.Flags().StringP("out", "o", "", "output JSON file name (stdout if empty)")
	relatedFindCmd.Flags().BoolP("exact", "e", false, "disallow a mismatched base in each fragment")
	relatedFindCmd.Flags().IntP("length", "l", config.DefaultFragmentMatchLength, "length of the query's fragments")
	relatedFindCmd.Flags().Float64P("threshold", "t", config.DefaultMatchPercentThreshold, "minimum percentage of fragments in a related genome")
	relatedFindCmd.MarkFlagRequired("in")

	viper.BindPFlag("fragment-match-length", relatedFindCmd.Flags().Lookup("length"))
	viper.BindPFlag("match-percent-threshold", relatedFindCmd.Flags().Lookup("threshold"))

	findCmd.AddCommand(fragmentFindCmd)
	findCmd.AddCommand(relatedFindCmd)

	RootCmd.AddCommand(findCmd)
}
