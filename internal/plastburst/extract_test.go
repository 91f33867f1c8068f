package plastburst

import (
	"reflect"
	"testing"
)

// record builds a minimal GenomeRecord for extraction tests.
func record(name, seq string, features ...Feature) *GenomeRecord {
	return &GenomeRecord{Name: name, Seq: seq, Features: features}
}

func gene(name string, start, end int) Feature {
	return Feature{Type: "gene", Gene: name, Location: Location{Parts: []Interval{{start, end}}}}
}

func Test_extractCDS(t *testing.T) {
	lg := NewLogger(false)

	// one gene shared across three records
	recs := []*GenomeRecord{
		record("NC_1", "ATGGCTAAACGTTAAT",
			Feature{Type: "CDS", Gene: "rbcL", Location: Location{Parts: []Interval{{0, 15}}}}),
		record("NC_2", "ATGGCTAAACGTTAAT",
			Feature{Type: "CDS", Gene: "rbcL", Location: Location{Parts: []Interval{{0, 15}}}}),
		record("NC_3", "ATGGCTAAACGTTAAT",
			Feature{Type: "CDS", Gene: "rbcL", Location: Location{Parts: []Interval{{0, 15}}}}),
	}

	nucl := NewRegionCollection()
	prot := NewRegionCollection()
	for _, rec := range recs {
		extractCDS(rec, 3, nucl, prot, lg)
	}

	if got := len(nucl.Get("rbcL")); got != 3 {
		t.Errorf("nucleotide fragments for rbcL = %d, want 3", got)
	}
	if got := len(prot.Get("rbcL")); got != 3 {
		t.Errorf("protein fragments for rbcL = %d, want 3", got)
	}

	if want := (Fragment{ID: "rbcL_NC_1", Seq: "ATGGCTAAACGTTAA"}); !reflect.DeepEqual(nucl.Get("rbcL")[0], want) {
		t.Errorf("nucleotide fragment = %+v, want %+v", nucl.Get("rbcL")[0], want)
	}
	if want := (Fragment{ID: "rbcL_NC_1", Seq: "MAKR*"}); !reflect.DeepEqual(prot.Get("rbcL")[0], want) {
		t.Errorf("protein fragment = %+v, want %+v", prot.Get("rbcL")[0], want)
	}
}

func Test_extractCDS_shortTranslation(t *testing.T) {
	lg := NewLogger(false)

	// translation below the minimum still pools the nucleotide fragment
	// but not the protein one
	rec := record("NC_1", "ATGGCTTAAGGG",
		Feature{Type: "CDS", Gene: "petN", Location: Location{Parts: []Interval{{0, 9}}}})

	nucl := NewRegionCollection()
	prot := NewRegionCollection()
	extractCDS(rec, 5, nucl, prot, lg)

	if !nucl.Has("petN") {
		t.Error("extractCDS() dropped the nucleotide fragment, want it kept")
	}
	if prot.Has("petN") {
		t.Error("extractCDS() kept a protein fragment below the minimum translated length")
	}
}

func Test_extractCDS_skipsUnnamed(t *testing.T) {
	lg := NewLogger(false)

	rec := record("NC_1", "ATGGCTTAA",
		Feature{Type: "CDS", Location: Location{Parts: []Interval{{0, 9}}}},
		Feature{Type: "gene", Gene: "rbcL", Location: Location{Parts: []Interval{{0, 9}}}},
	)

	nucl := NewRegionCollection()
	prot := NewRegionCollection()
	extractCDS(rec, 0, nucl, prot, lg)

	if nucl.Len() != 0 {
		t.Errorf("extractCDS() pooled %v, want nothing: no CDS carries a gene qualifier", nucl.Names())
	}
}

func Test_extractIGS(t *testing.T) {
	lg := NewLogger(false)

	tests := []struct {
		name        string
		rec         *GenomeRecord
		wantRegions []string
		wantFrags   int
	}{
		{
			"spacer between two genes",
			record("NC_1", "AAAATTTTGGGGCCCCAAAA",
				gene("trnA", 0, 4),
				gene("trnB", 8, 12),
			),
			[]string{"trnA_trnB"},
			1,
		},
		{
			"overlapping genes leave no spacer",
			record("NC_1", "AAAATTTTGGGGCCCCAAAA",
				gene("trnA", 0, 10),
				gene("trnB", 8, 12),
			),
			nil,
			0,
		},
		{
			"nested gene excluded",
			record("NC_1", "AAAATTTTGGGGCCCCAAAA",
				gene("trnK", 0, 4),
				gene("matK", 5, 7),
				gene("trnB", 8, 12),
			),
			[]string{"trnK_trnB"},
			1,
		},
		{
			"compound location skipped",
			record("NC_1", "AAAATTTTGGGGCCCCAAAA",
				Feature{Type: "gene", Gene: "trnA", Location: Location{Parts: []Interval{{0, 2}, {3, 4}}}},
				gene("trnB", 8, 12),
			),
			nil,
			0,
		},
		{
			"spacer below minimum length dropped",
			record("NC_1", "AAAATTTTGGGGCCCCAAAA",
				gene("trnA", 0, 6),
				gene("trnB", 8, 12),
			),
			nil,
			0,
		},
		{
			"gene names sanitized",
			record("NC_1", "AAAATTTTGGGGCCCCAAAA",
				gene("trnK-UUU", 0, 4),
				gene("psb'A", 8, 12),
			),
			[]string{"trnK_UUU_psbA"},
			1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nucl := NewRegionCollection()
			extractIGS(tt.rec, "test.gb", 3, nucl, lg)

			if !reflect.DeepEqual(nucl.Names(), tt.wantRegions) {
				t.Errorf("extractIGS() regions = %v, want %v", nucl.Names(), tt.wantRegions)
			}
			if len(tt.wantRegions) > 0 && len(nucl.Get(tt.wantRegions[0])) != tt.wantFrags {
				t.Errorf("extractIGS() fragments = %d, want %d", len(nucl.Get(tt.wantRegions[0])), tt.wantFrags)
			}
		})
	}
}

func Test_extractIGS_invertedRepeat(t *testing.T) {
	lg := NewLogger(false)

	// the same spacer shows up in both orientations across records; the
	// reverse key must not create a second region
	forward := record("NC_1", "AAAATTTTGGGGCCCCAAAA",
		gene("trnA", 0, 4),
		gene("trnB", 8, 12),
	)
	inverted := record("NC_2", "AAAATTTTGGGGCCCCAAAA",
		gene("trnB", 0, 4),
		gene("trnA", 8, 12),
	)

	nucl := NewRegionCollection()
	extractIGS(forward, "nc1.gb", 3, nucl, lg)
	extractIGS(inverted, "nc2.gb", 3, nucl, lg)

	if want := []string{"trnA_trnB"}; !reflect.DeepEqual(nucl.Names(), want) {
		t.Errorf("regions = %v, want %v", nucl.Names(), want)
	}
	if got := len(nucl.Get("trnA_trnB")); got != 1 {
		t.Errorf("fragments under trnA_trnB = %d, want 1: the inverted spacer must not be double-counted", got)
	}
}

func Test_extractInt(t *testing.T) {
	lg := NewLogger(false)

	seq := "AAAATTTTGGGGCCCCAAAATTTTGGGGCCCC"

	tests := []struct {
		name        string
		feat        Feature
		wantPrimary []string
		wantSecond  []string
		wantSeq     string
	}{
		{
			"single intron",
			Feature{Type: "CDS", Gene: "atpF", Location: Location{
				Parts: []Interval{{0, 4}, {8, 12}},
			}},
			[]string{"atpF_intron1"},
			nil,
			"TTTT",
		},
		{
			"two introns",
			Feature{Type: "tRNA", Gene: "rps12", Location: Location{
				Parts: []Interval{{0, 4}, {8, 12}, {16, 20}},
			}},
			[]string{"rps12_intron1"},
			[]string{"rps12_intron2"},
			"TTTT",
		},
		{
			"reversed part order tolerated",
			Feature{Type: "CDS", Gene: "petB", Location: Location{
				Parts: []Interval{{8, 12}, {0, 4}},
			}},
			[]string{"petB_intron1"},
			nil,
			"AAAATTTTGGGG",
		},
		{
			"no introns",
			Feature{Type: "CDS", Gene: "rbcL", Location: Location{
				Parts: []Interval{{0, 12}},
			}},
			nil,
			nil,
			"",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nucl := NewRegionCollection()
			intron2 := NewRegionCollection()
			extractInt(record("NC_1", seq, tt.feat), nucl, intron2, lg)

			if !reflect.DeepEqual(nucl.Names(), tt.wantPrimary) {
				t.Errorf("primary regions = %v, want %v", nucl.Names(), tt.wantPrimary)
			}
			if !reflect.DeepEqual(intron2.Names(), tt.wantSecond) {
				t.Errorf("second-intron regions = %v, want %v", intron2.Names(), tt.wantSecond)
			}
			if len(tt.wantPrimary) > 0 {
				if got := nucl.Get(tt.wantPrimary[0])[0].Seq; got != tt.wantSeq {
					t.Errorf("intron sequence = %s, want %s", got, tt.wantSeq)
				}
			}
		})
	}
}

func Test_safeGeneName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"trnK-UUU", "trnK_UUU"},
		{"psb'A", "psbA"},
		{"rbcL", "rbcL"},
	}

	for _, tt := range tests {
		if got := safeGeneName(tt.in); got != tt.want {
			t.Errorf("safeGeneName(%s) = %s, want %s", tt.in, got, tt.want)
		}
	}
}
