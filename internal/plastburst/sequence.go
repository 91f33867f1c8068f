package plastburst

import (
	"bytes"
	"fmt"
	"strings"
)

// table11 is the plastid/bacterial genetic code (NCBI translation table 11).
// Its codon-to-amino-acid assignments match the standard code; the tables
// differ only in permitted start codons, which don't matter here because
// whole coding sequences are translated as-is.
var table11 = map[string]byte{
	"TTT": 'F', "TTC": 'F', "TTA": 'L', "TTG": 'L',
	"CTT": 'L', "CTC": 'L', "CTA": 'L', "CTG": 'L',
	"ATT": 'I', "ATC": 'I', "ATA": 'I', "ATG": 'M',
	"GTT": 'V', "GTC": 'V', "GTA": 'V', "GTG": 'V',
	"TCT": 'S', "TCC": 'S', "TCA": 'S', "TCG": 'S',
	"CCT": 'P', "CCC": 'P', "CCA": 'P', "CCG": 'P',
	"ACT": 'T', "ACC": 'T', "ACA": 'T', "ACG": 'T',
	"GCT": 'A', "GCC": 'A', "GCA": 'A', "GCG": 'A',
	"TAT": 'Y', "TAC": 'Y', "TAA": '*', "TAG": '*',
	"CAT": 'H', "CAC": 'H', "CAA": 'Q', "CAG": 'Q',
	"AAT": 'N', "AAC": 'N', "AAA": 'K', "AAG": 'K',
	"GAT": 'D', "GAC": 'D', "GAA": 'E', "GAG": 'E',
	"TGT": 'C', "TGC": 'C', "TGA": '*', "TGG": 'W',
	"CGT": 'R', "CGC": 'R', "CGA": 'R', "CGG": 'R',
	"AGT": 'S', "AGC": 'S', "AGA": 'R', "AGG": 'R',
	"GGT": 'G', "GGC": 'G', "GGA": 'G', "GGG": 'G',
}

// translate converts a nucleotide sequence to amino acids using table 11.
// A trailing partial codon is ignored; codons with ambiguity characters
// translate to X.
func translate(seq string) string {
	seq = strings.ToUpper(seq)

	var prot bytes.Buffer
	for i := 0; i+3 <= len(seq); i += 3 {
		aa, known := table11[seq[i:i+3]]
		if !known {
			aa = 'X'
		}
		prot.WriteByte(aa)
	}

	return prot.String()
}

// reverseComplement returns the reverse complement of a sequence
func reverseComplement(seq string) string {
	seq = strings.ToUpper(seq)

	revCompMap := map[rune]byte{
		'A': 'T',
		'T': 'A',
		'G': 'C',
		'C': 'G',
	}

	var revCompBuffer bytes.Buffer
	for _, c := range seq {
		comp, known := revCompMap[c]
		if !known {
			comp = 'N'
		}
		revCompBuffer.WriteByte(comp)
	}

	revCompBytes := revCompBuffer.Bytes()
	for i := 0; i < len(revCompBytes)/2; i++ {
		j := len(revCompBytes) - i - 1
		revCompBytes[i], revCompBytes[j] = revCompBytes[j], revCompBytes[i]
	}

	return string(revCompBytes)
}

// Extract returns the subsequence of rec addressed by the location:
// part subsequences concatenated in order, reverse complemented when the
// feature sits on the reverse strand. Inverted or out-of-range coordinates
// are an error handled per feature by the caller.
func (loc Location) Extract(rec *GenomeRecord) (string, error) {
	var joined strings.Builder
	for _, p := range loc.Parts {
		if p.Start < 0 || p.End > len(rec.Seq) || p.Start > p.End {
			return "", fmt.Errorf(
				"location %d..%d outside of %s (length %d)",
				p.Start, p.End, rec.Name, len(rec.Seq),
			)
		}
		joined.WriteString(rec.Seq[p.Start:p.End])
	}

	if loc.Complement {
		return reverseComplement(joined.String()), nil
	}

	return joined.String(), nil
}
