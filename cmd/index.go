package cmd

import (
	"github.com/moiseyalaev/Genome-Matcher/internal/genomatch"
	"github.com/spf13/cobra"
)

// indexCmd is for building the index of a library and reporting its size
var indexCmd = &cobra.Command{
	Use:                        "index",
	Short:                      "Index a library of genomes and report its size",
	Run:                        genomatch.IndexCmd,
	SuggestionsMinimumDistance: 2,
	Example:                    "  genomatch index --dbs bacteria.fa,archaea.fa -k 12",
	Long: `Break every genome in the libraries into overlapping fragments of
--min-search-length and index them. Reports the number of genomes, bases,
fragments and index nodes.`,
	Aliases: []string{"stats"},
}

// set flags
func init() {
	indexCmd.Flags().StringP("dbs", "d", "", "comma separated list of FASTA genome libraries")

	RootCmd.AddCommand(indexCmd)
}
