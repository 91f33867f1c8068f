package plastburst

import (
	"regexp"
	"strings"
)

// nestedGene sits entirely inside the interval of another gene (trnK);
// pairing it with its neighbors would yield spurious spacers.
const nestedGene = "matK"

// nonWordRegex strips whatever survives the dash replacement in
// safeGeneName.
var nonWordRegex = regexp.MustCompile(`\W`)

// safeGeneName normalizes a gene qualifier for use in region names:
// dashes become underscores, remaining non-word characters are removed.
func safeGeneName(name string) string {
	return nonWordRegex.ReplaceAllString(strings.ReplaceAll(name, "-", "_"), "")
}

// extractCDS pools every coding sequence of the record that carries a gene
// qualifier: the nucleotide sequence always, the table-11 translation only
// when it reaches minSeqLength. The translation-length check is what later
// decides which regions are eligible for protein-guided alignment.
func extractCDS(rec *GenomeRecord, minSeqLength int, nucl, prot *RegionCollection, lg *Logger) {
	for _, feat := range rec.Features {
		if feat.Type != "CDS" || feat.Gene == "" {
			continue
		}

		geneName := feat.Gene
		seqName := geneName + "_" + rec.Name

		seq, err := feat.Location.Extract(rec)
		if err != nil {
			lg.Warn("unable to extract CDS %s of %s, skipping feature: %v", geneName, rec.Name, err)
			continue
		}
		nucl.Add(geneName, Fragment{ID: seqName, Seq: seq})

		protSeq := translate(seq)
		if len(protSeq) < minSeqLength {
			continue
		}
		prot.Add(geneName, Fragment{ID: seqName, Seq: protSeq})
	}
}

// extractIGS pools the intergenic spacers between adjacent gene features.
// fname only shows up in diagnostics.
func extractIGS(rec *GenomeRecord, fname string, minSeqLength int, nucl *RegionCollection, lg *Logger) {
	// genes in genome order; the nested gene would produce a
	// zero-or-negative spacer against its host gene
	var genes []Feature
	for _, feat := range rec.Features {
		if feat.Type == "gene" && feat.Gene != "" && feat.Gene != nestedGene {
			genes = append(genes, feat)
		}
	}

	for i := 0; i+1 < len(genes); i++ {
		cur, adj := genes[i], genes[i+1]

		curSafe := safeGeneName(cur.Gene)
		adjSafe := safeGeneName(adj.Gene)
		igsName := curSafe + "_" + adjSafe
		invName := adjSafe + "_" + curSafe

		// a compound location makes the spacer boundary ambiguous
		if cur.Location.Compound() || adj.Location.Compound() {
			lg.Warn(
				"%s: the spacer between %s and %s is not handled (compound location), skipping",
				fname, cur.Gene, adj.Gene,
			)
			continue
		}

		start := cur.Location.End()
		end := adj.Location.Start()
		if start >= end {
			continue // adjacent or overlapping genes leave no spacer
		}

		spacer := Location{Parts: []Interval{{Start: start, End: end}}}
		seq, err := spacer.Extract(rec)
		if err != nil {
			lg.Warn(
				"%s: unable to extract the spacer between %s (start %d) and %s (end %d), skipping: %v",
				fname, cur.Gene, start, adj.Gene, end, err,
			)
			continue
		}

		if len(seq) < minSeqLength {
			continue
		}

		frag := Fragment{ID: igsName + "_" + rec.Name, Seq: seq}

		// a spacer in the inverted repeat shows up in both orientations;
		// count it once
		switch {
		case nucl.Has(igsName):
			nucl.Add(igsName, frag)
		case nucl.Has(invName):
			// already pooled under the reverse key
		default:
			nucl.Add(igsName, frag)
		}
	}
}

// extractInt pools the introns of spliced coding sequences and tRNAs.
// Two-part locations hold one intron, three-part locations hold two; the
// second introns accumulate in intron2 and are merged into the primary
// collection only after the record pass, so a failed first intron never
// leaves its sibling behind alone.
func extractInt(rec *GenomeRecord, nucl, intron2 *RegionCollection, lg *Logger) {
	for _, feat := range rec.Features {
		if feat.Type != "CDS" && feat.Type != "tRNA" {
			continue
		}

		if feat.Gene == "" {
			lg.Warn(
				"unable to extract a gene name for the %s starting at %d of %s, skipping feature",
				feat.Type, feat.Location.Start(), rec.Name,
			)
			continue
		}
		safe := safeGeneName(feat.Gene)

		switch len(feat.Location.Parts) {
		case 2:
			frag, err := extractIntron(rec, feat, safe+"_intron1", 0)
			if err != nil {
				lg.Warn("an error occurred for %s of %s: %v", feat.Gene, rec.Name, err)
				continue
			}
			nucl.Add(safe+"_intron1", frag)

		case 3:
			frag, err := extractIntron(rec, feat, safe+"_intron1", 0)
			if err != nil {
				lg.Warn("an error occurred for %s of %s: %v", feat.Gene, rec.Name, err)
			} else {
				nucl.Add(safe+"_intron1", frag)
			}

			frag, err = extractIntron(rec, feat, safe+"_intron2", 1)
			if err != nil {
				lg.Warn("an issue occurred for %s of %s: %v", feat.Gene, rec.Name, err)
				continue
			}
			intron2.Add(safe+"_intron2", frag)
		}
	}
}

// extractIntron computes the intron between location parts offset and
// offset+1 and extracts its sequence. The bounds are read forward first
// and reversed when that ordering is inverted, tolerating either strand
// convention.
func extractIntron(rec *GenomeRecord, feat Feature, regionName string, offset int) (Fragment, error) {
	start := feat.Location.Parts[offset].End
	end := feat.Location.Parts[offset+1].Start
	if start > end {
		start, end = feat.Location.Parts[offset+1].Start, feat.Location.Parts[offset].End
	}

	intron := Location{Parts: []Interval{{Start: start, End: end}}}
	seq, err := intron.Extract(rec)
	if err != nil {
		return Fragment{}, err
	}

	return Fragment{ID: regionName + "_" + rec.Name, Seq: seq}, nil
}
