// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Modes of region extraction.
const (
	// ModeCDS extracts coding sequences
	ModeCDS = "cds"

	// ModeIGS extracts intergenic spacers
	ModeIGS = "igs"

	// ModeInt extracts introns
	ModeInt = "int"
)

// Config is the root-level settings struct and is a mix
// of settings available from the command line
type Config struct {
	// the path to the input directory with annotated genome flatfiles
	InDir string `mapstructure:"inpd"`

	// the path to the output directory
	OutDir string `mapstructure:"outd"`

	// the type of regions to extract: cds, igs, or int
	Mode string `mapstructure:"selectmode"`

	// the file extension of the input flatfiles
	FileExt string `mapstructure:"fileext"`

	// region names to exclude from the output
	Exclude []string `mapstructure:"exclude"`

	// the minimum sequence length below which regions are not extracted
	MinSeqLength int `mapstructure:"min-seq-length"`

	// the minimum number of taxa a region must occur in to be kept
	MinNumTaxa int `mapstructure:"min-num-taxa"`

	// the path to the back-translation helper script (cds mode only)
	BackTransl string `mapstructure:"backtransl"`

	// whether to log debug output
	Verbose bool `mapstructure:"verbose"`
}

// New returns a new Config struct populated by Viper settings
// (bound command line arguments)
func New() *Config {
	var c Config

	if err := viper.Unmarshal(&c); err != nil {
		log.Fatalf("unable to decode settings into struct: %v", err)
	}

	return &c
}

// Validate checks the settings that have to hold before any
// processing starts. Returns the first problem found.
func (c *Config) Validate() error {
	if _, err := os.Stat(c.InDir); os.IsNotExist(err) {
		return fmt.Errorf("input directory %s does not exist", c.InDir)
	}

	if _, err := os.Stat(c.OutDir); os.IsNotExist(err) {
		return fmt.Errorf("output directory %s does not exist", c.OutDir)
	}

	if c.Mode != ModeCDS && c.Mode != ModeIGS && c.Mode != ModeInt {
		return fmt.Errorf("unrecognized extraction mode %s: want cds, igs, or int", c.Mode)
	}

	// the back-translation helper is only needed when aligning proteins
	if c.Mode == ModeCDS {
		helper, err := filepath.Abs(c.BackTransl)
		if err != nil {
			return fmt.Errorf("failed to create path to back-translation helper: %v", err)
		}

		if _, err := os.Stat(helper); os.IsNotExist(err) {
			return fmt.Errorf("failed to find the back-translation helper at %s", helper)
		}
		c.BackTransl = helper
	}

	return nil
}
