package plastburst

import (
	"fmt"
	"path/filepath"
)

// collectAlignments converts every region's aligned nucleotide file to
// NEXUS, rewrites the sequence names to the shared concat token, and
// parses the result. Regions whose aligner failed have no aligned file
// and drop out here, as does anything that fails conversion or parsing.
func collectAlignments(nucl *RegionCollection, outDir string, lg *Logger) []ConcatenationEntry {
	lg.Info("collecting all successful alignments")

	var entries []ConcatenationEntry
	for _, region := range nucl.Names() {
		fastaPath := alignedNuclPath(outDir, region)
		nexusPath := nexusNuclPath(outDir, region)

		if err := convertFastaToNexus(fastaPath, nexusPath); err != nil {
			lg.Warn("unable to convert the alignment of %s to NEXUS, excluding region: %v", region, err)
			continue
		}

		aln, err := readNexus(nexusPath)
		if err != nil {
			lg.Warn("unable to add the alignment of %s to the concatenation, excluding region: %v", region, err)
			continue
		}
		renameForConcat(aln, region)

		entries = append(entries, ConcatenationEntry{Region: region, Aln: aln})
	}

	return entries
}

// concatenate merges all collected alignments into one supermatrix, in no
// particular order, and writes it in NEXUS and FASTA. The output names
// carry the count of regions actually merged. A merge failure is fatal:
// this is the pipeline's only global commit point.
func concatenate(entries []ConcatenationEntry, outDir string, lg *Logger) error {
	lg.Info("concatenating all successful alignments (in no particular order)")

	combined, err := combine(entries)
	if err != nil {
		return fmt.Errorf("unable to concatenate alignments: %v", err)
	}

	base := fmt.Sprintf("nucl_%dconcat.aligned", len(entries))
	nexusOut := filepath.Join(outDir, base+".nexus")
	fastaOut := filepath.Join(outDir, base+".fasta")

	if err := writeNexus(nexusOut, combined); err != nil {
		return fmt.Errorf("unable to write the concatenated NEXUS file: %v", err)
	}

	frags := make([]Fragment, 0, len(combined.Names))
	for _, name := range combined.Names {
		frags = append(frags, Fragment{ID: name, Seq: combined.Seqs[name]})
	}
	if err := writeFasta(fastaOut, frags); err != nil {
		return fmt.Errorf("unable to write the concatenated FASTA file: %v", err)
	}

	lg.Info("wrote the supermatrix of %d regions to %s", len(entries), nexusOut)

	return nil
}
