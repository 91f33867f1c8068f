package plastburst

import (
	"fmt"
	"io/ioutil"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
)

// Interval is a 0-indexed, half-open [Start, End) span on a genome.
type Interval struct {
	Start int
	End   int
}

// Location addresses the sequence of a feature. More than one part means
// a compound location (the feature is spliced).
type Location struct {
	// the intervals making up the location, in the order they were annotated
	Parts []Interval

	// whether the feature lies on the reverse strand
	Complement bool
}

// Compound returns whether the location is split across multiple intervals.
func (loc Location) Compound() bool {
	return len(loc.Parts) > 1
}

// Start returns the lowest position covered by the location.
func (loc Location) Start() int {
	return loc.Parts[0].Start
}

// End returns the end of the location's first interval run.
func (loc Location) End() int {
	return loc.Parts[len(loc.Parts)-1].End
}

// Feature is one annotation row of a genome record.
type Feature struct {
	// the feature key: "gene", "CDS", "tRNA", etc
	Type string

	// the /gene qualifier, empty if the feature has none
	Gene string

	// where the feature sits on the genome
	Location Location
}

// GenomeRecord is one parsed genome flatfile: the LOCUS name, the full
// sequence, and the features in annotation order. Never mutated after parsing.
type GenomeRecord struct {
	Name     string
	Seq      string
	Features []Feature
}

var (
	// locusRegex pulls the record name out of the LOCUS line
	locusRegex = regexp.MustCompile(`LOCUS\s+(\S+)`)

	// geneRegex pulls the value out of a /gene qualifier
	geneRegex = regexp.MustCompile(`/gene="?([^"]+)"?`)

	// rangeRegex matches a start..end span, tolerating partial markers
	rangeRegex = regexp.MustCompile(`[<>]?(\d+)\.\.[<>]?(\d+)`)

	// nonBpRegex removes everything that isn't a nucleotide from ORIGIN
	nonBpRegex = regexp.MustCompile(`[^A-Za-z]`)
)

// ReadGenBank parses a genome flatfile to a GenomeRecord. A file that
// cannot be parsed is a fatal error for the whole run.
func ReadGenBank(path string) (*GenomeRecord, error) {
	if !filepath.IsAbs(path) {
		abs, err := filepath.Abs(path)
		if err != nil {
			return nil, fmt.Errorf("failed to create path to input file: %v", err)
		}
		path = abs
	}

	dat, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return parseGenBank(path, string(dat))
}

// parseGenBank parses flatfile contents: the LOCUS name, the FEATURES
// table, and the ORIGIN sequence.
func parseGenBank(path, contents string) (*GenomeRecord, error) {
	locusMatch := locusRegex.FindStringSubmatch(contents)
	if locusMatch == nil {
		return nil, fmt.Errorf("failed to parse LOCUS name from %s", path)
	}

	rec := &GenomeRecord{Name: locusMatch[1]}

	lines := strings.Split(contents, "\n")

	// walk to the FEATURES table
	i := 0
	for i < len(lines) && !strings.HasPrefix(lines[i], "FEATURES") {
		i++
	}
	if i == len(lines) {
		return nil, fmt.Errorf("failed to find a FEATURES table in %s", path)
	}
	i++

	// gather each feature: a key + location header line, the location
	// possibly wrapping onto further lines, then /qualifier lines
	for i < len(lines) {
		line := lines[i]
		if strings.HasPrefix(line, "ORIGIN") || strings.HasPrefix(line, "CONTIG") || strings.HasPrefix(line, "//") {
			break
		}

		trimmed := strings.TrimSpace(line)
		if trimmed == "" || !isFeatureHeader(line) {
			i++
			continue
		}

		cols := strings.Fields(trimmed)
		if len(cols) < 2 {
			i++
			continue
		}

		feat := Feature{Type: cols[0]}
		locString := cols[1]

		// the location may wrap; continuation lines are indented
		// qualifier-deep but don't start with a slash
		i++
		for i < len(lines) {
			next := strings.TrimSpace(lines[i])
			if isFeatureHeader(lines[i]) || strings.HasPrefix(next, "/") ||
				strings.HasPrefix(lines[i], "ORIGIN") || strings.HasPrefix(lines[i], "//") {
				break
			}
			locString += next
			i++
		}

		// qualifiers until the next feature header
		for i < len(lines) {
			if isFeatureHeader(lines[i]) || strings.HasPrefix(lines[i], "ORIGIN") ||
				strings.HasPrefix(lines[i], "CONTIG") || strings.HasPrefix(lines[i], "//") {
				break
			}
			if geneMatch := geneRegex.FindStringSubmatch(lines[i]); geneMatch != nil && feat.Gene == "" {
				feat.Gene = strings.TrimSpace(geneMatch[1])
			}
			i++
		}

		loc, err := parseLocation(locString)
		if err != nil {
			return nil, fmt.Errorf("failed to parse location of %s feature in %s: %v", feat.Type, path, err)
		}
		feat.Location = loc

		rec.Features = append(rec.Features, feat)
	}

	// the sequence follows ORIGIN
	originSplit := strings.SplitN(contents, "ORIGIN", 2)
	if len(originSplit) != 2 {
		return nil, fmt.Errorf("failed to parse %s: no ORIGIN section", path)
	}
	seq := strings.SplitN(originSplit[1], "//", 2)[0]
	rec.Seq = strings.ToUpper(nonBpRegex.ReplaceAllString(seq, ""))

	if rec.Seq == "" {
		return nil, fmt.Errorf("failed to parse %s: empty sequence", path)
	}

	return rec, nil
}

// isFeatureHeader reports whether a line opens a new feature: a key at
// the feature-table indent depth (5 spaces) rather than at qualifier depth.
func isFeatureHeader(line string) bool {
	if len(line) < 6 || line[0] != ' ' {
		return false
	}
	return strings.HasPrefix(line, "     ") && line[5] != ' '
}

// parseLocation converts a flatfile location string, eg
// "complement(join(1..10,20..30))", into 0-indexed half-open intervals.
func parseLocation(s string) (loc Location, err error) {
	s = strings.ReplaceAll(s, " ", "")

	if strings.Contains(s, "complement(") {
		loc.Complement = true
	}

	spans := rangeRegex.FindAllStringSubmatch(s, -1)
	if spans == nil {
		// single-base locations, eg "467"
		if pos, convErr := strconv.Atoi(strings.Trim(s, "<>")); convErr == nil {
			loc.Parts = []Interval{{Start: pos - 1, End: pos}}
			return loc, nil
		}
		return loc, fmt.Errorf("unrecognized location %q", s)
	}

	for _, span := range spans {
		start, _ := strconv.Atoi(span[1])
		end, _ := strconv.Atoi(span[2])
		// 1-based inclusive to 0-based half-open
		loc.Parts = append(loc.Parts, Interval{Start: start - 1, End: end})
	}

	return loc, nil
}
