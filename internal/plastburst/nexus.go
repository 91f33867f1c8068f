package plastburst

import (
	"bytes"
	"fmt"
	"io/ioutil"
	"strings"
)

// Alignment is a parsed multiple-sequence alignment: sequence names in
// order plus the aligned (equal-length, gapped) sequences.
type Alignment struct {
	Names []string
	Seqs  map[string]string
}

// Length returns the alignment's column count.
func (a *Alignment) Length() int {
	if len(a.Names) == 0 {
		return 0
	}
	return len(a.Seqs[a.Names[0]])
}

// convertFastaToNexus rewrites an aligned FASTA file as a NEXUS file,
// the canonical interchange format of the concatenation stage. Sequences
// of unequal length mean the input wasn't an alignment.
func convertFastaToNexus(fastaPath, nexusPath string) error {
	frags, err := readFasta(fastaPath)
	if err != nil {
		return err
	}

	aln := &Alignment{Seqs: make(map[string]string, len(frags))}
	for _, f := range frags {
		aln.Names = append(aln.Names, f.ID)
		aln.Seqs[f.ID] = f.Seq
	}

	for _, name := range aln.Names {
		if len(aln.Seqs[name]) != aln.Length() {
			return fmt.Errorf(
				"%s is not an alignment: %s has %d columns, want %d",
				fastaPath, name, len(aln.Seqs[name]), aln.Length(),
			)
		}
	}

	return writeNexus(nexusPath, aln)
}

// writeNexus writes an alignment as a NEXUS data block (datatype dna).
func writeNexus(path string, aln *Alignment) error {
	var buf bytes.Buffer
	buf.WriteString("#NEXUS\n")
	buf.WriteString("begin data;\n")
	fmt.Fprintf(&buf, "dimensions ntax=%d nchar=%d;\n", len(aln.Names), aln.Length())
	buf.WriteString("format datatype=dna missing=? gap=-;\n")
	buf.WriteString("matrix\n")
	for _, name := range aln.Names {
		fmt.Fprintf(&buf, "%s %s\n", name, aln.Seqs[name])
	}
	buf.WriteString(";\n")
	buf.WriteString("end;\n")

	return ioutil.WriteFile(path, buf.Bytes(), 0644)
}

// readNexus parses the matrix block of a NEXUS file to an Alignment.
func readNexus(path string) (*Alignment, error) {
	dat, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, err
	}

	aln := &Alignment{Seqs: make(map[string]string)}
	inMatrix := false
	for _, line := range strings.Split(string(dat), "\n") {
		line = strings.TrimSpace(line)
		if strings.EqualFold(line, "matrix") {
			inMatrix = true
			continue
		}
		if !inMatrix {
			continue
		}
		if line == ";" || strings.HasPrefix(line, "end") {
			break
		}
		if line == "" {
			continue
		}

		cols := strings.Fields(line)
		if len(cols) != 2 {
			return nil, fmt.Errorf("failed to parse matrix row %q in %s", line, path)
		}

		name, seq := cols[0], cols[1]
		if _, seen := aln.Seqs[name]; !seen {
			aln.Names = append(aln.Names, name)
		}
		// interleaved matrices continue an earlier row
		aln.Seqs[name] += seq
	}

	if !inMatrix || len(aln.Names) == 0 {
		return nil, fmt.Errorf("failed to parse a matrix block from %s", path)
	}

	for _, name := range aln.Names {
		if len(aln.Seqs[name]) != aln.Length() {
			return nil, fmt.Errorf("ragged matrix in %s: %s", path, name)
		}
	}

	return aln, nil
}

// renameForConcat rewrites every sequence name's per-region prefix to the
// shared concat token. The merge step matches partitions by sequence
// name, so the region part has to go and the genome part has to stay.
func renameForConcat(aln *Alignment, region string) {
	prefix := region + "_"
	for i, name := range aln.Names {
		if !strings.HasPrefix(name, prefix) {
			continue
		}
		renamed := "concat_" + strings.TrimPrefix(name, prefix)
		aln.Names[i] = renamed
		aln.Seqs[renamed] = aln.Seqs[name]
		delete(aln.Seqs, name)
	}
}

// ConcatenationEntry pairs a region name with its parsed alignment. One
// exists per region whose whole pipeline succeeded.
type ConcatenationEntry struct {
	Region string
	Aln    *Alignment
}

// combine merges the per-region alignments into one supermatrix keyed by
// sequence name. Genomes missing from a partition are padded with gap
// columns spanning that partition.
func combine(entries []ConcatenationEntry) (*Alignment, error) {
	if len(entries) == 0 {
		return nil, fmt.Errorf("no alignments to combine")
	}

	combined := &Alignment{Seqs: make(map[string]string)}
	for _, entry := range entries {
		for _, name := range entry.Aln.Names {
			if _, seen := combined.Seqs[name]; !seen {
				combined.Names = append(combined.Names, name)
				combined.Seqs[name] = ""
			}
		}
	}

	for _, entry := range entries {
		width := entry.Aln.Length()
		if width == 0 {
			return nil, fmt.Errorf("empty alignment for region %s", entry.Region)
		}
		gaps := strings.Repeat("-", width)

		for _, name := range combined.Names {
			seq, present := entry.Aln.Seqs[name]
			if !present {
				seq = gaps
			}
			combined.Seqs[name] += seq
		}
	}

	return combined, nil
}
