// Package cmd is for command line interactions with the plastburst application
package cmd

import (
	"log"

	"github.com/KeatonRowley/PlastomeBurstAndAlign/config"
	"github.com/KeatonRowley/PlastomeBurstAndAlign/internal/plastburst"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use: "plastburst",
	Short: `Extract and align coding and non-coding regions across plastid genomes.
Pools same-named regions from a batch of annotated genomes, aligns each
region with MAFFT, and concatenates the alignments into one supermatrix`,
	Version: "0.9.0",
	Run: func(cmd *cobra.Command, args []string) {
		conf := config.New()
		if err := conf.Validate(); err != nil {
			log.Fatalf("%v", err)
		}

		lg := plastburst.NewLogger(conf.Verbose)
		if err := plastburst.Run(conf, lg); err != nil {
			lg.Fatal("%v", err)
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("%v", err)
	}
}

func init() {
	rootCmd.Flags().StringP("inpd", "i", "", "path to the input directory with the annotated genome flatfiles")
	rootCmd.Flags().StringP("outd", "o", "./output", "path to the output directory")
	rootCmd.Flags().StringP("selectmode", "s", "cds", "type of regions to extract: cds, igs, or int")
	rootCmd.Flags().StringP("fileext", "f", ".gb", "file extension of the input flatfiles")
	rootCmd.Flags().StringSliceP("exclude", "e", []string{"rps12"}, "genes to exclude from the output")
	rootCmd.Flags().IntP("min-seq-length", "l", 3, "minimum sequence length below which regions are not extracted")
	rootCmd.Flags().IntP("min-num-taxa", "t", 1, "minimum number of taxa a region must occur in to be kept")
	rootCmd.Flags().String("backtransl", "align_back_trans.py", "path to the back-translation helper script (cds mode)")
	rootCmd.Flags().BoolP("verbose", "v", false, "enable verbose logging")

	rootCmd.MarkFlagRequired("inpd")

	viper.BindPFlag("inpd", rootCmd.Flags().Lookup("inpd"))
	viper.BindPFlag("outd", rootCmd.Flags().Lookup("outd"))
	viper.BindPFlag("selectmode", rootCmd.Flags().Lookup("selectmode"))
	viper.BindPFlag("fileext", rootCmd.Flags().Lookup("fileext"))
	viper.BindPFlag("exclude", rootCmd.Flags().Lookup("exclude"))
	viper.BindPFlag("min-seq-length", rootCmd.Flags().Lookup("min-seq-length"))
	viper.BindPFlag("min-num-taxa", rootCmd.Flags().Lookup("min-num-taxa"))
	viper.BindPFlag("backtransl", rootCmd.Flags().Lookup("backtransl"))
	viper.BindPFlag("verbose", rootCmd.Flags().Lookup("verbose"))
}
