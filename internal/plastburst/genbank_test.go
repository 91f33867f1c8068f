package plastburst

import (
	"reflect"
	"testing"
)

const testFlatfile = `LOCUS       NC_000001             120 bp    DNA     circular PLN 01-JAN-2020
DEFINITION  Testa plantae plastid, complete genome.
FEATURES             Location/Qualifiers
     source          1..120
                     /organism="Testa plantae"
     gene            4..21
                     /gene="psbA"
     CDS             4..21
                     /gene="psbA"
                     /codon_start=1
     gene            31..60
                     /gene="trnK-UUU"
     tRNA            complement(join(31..40,51..60))
                     /gene="trnK-UUU"
     CDS             join(70..81,
                     100..111)
                     /gene="rpl2"
ORIGIN
        1 atgatgaaac gtacgtaaac cacgtacgta cgtacgtacg tacgtacgta cgtacgtacg
       61 tacgtacgta atggcatgca tgcatgcatg catgcatgca tgcatgcatg catgcatgca
//
`

func Test_parseGenBank(t *testing.T) {
	rec, err := parseGenBank("test.gb", testFlatfile)
	if err != nil {
		t.Fatalf("parseGenBank() err = %v", err)
	}

	if rec.Name != "NC_000001" {
		t.Errorf("parseGenBank() name = %s, want NC_000001", rec.Name)
	}

	if len(rec.Seq) != 120 {
		t.Errorf("parseGenBank() sequence length = %d, want 120", len(rec.Seq))
	}

	wantFeatures := []Feature{
		{Type: "source", Location: Location{Parts: []Interval{{0, 120}}}},
		{Type: "gene", Gene: "psbA", Location: Location{Parts: []Interval{{3, 21}}}},
		{Type: "CDS", Gene: "psbA", Location: Location{Parts: []Interval{{3, 21}}}},
		{Type: "gene", Gene: "trnK-UUU", Location: Location{Parts: []Interval{{30, 60}}}},
		{Type: "tRNA", Gene: "trnK-UUU", Location: Location{
			Parts:      []Interval{{30, 40}, {50, 60}},
			Complement: true,
		}},
		{Type: "CDS", Gene: "rpl2", Location: Location{Parts: []Interval{{69, 81}, {99, 111}}}},
	}

	if !reflect.DeepEqual(rec.Features, wantFeatures) {
		t.Errorf("parseGenBank() features = %+v, want %+v", rec.Features, wantFeatures)
	}
}

func Test_parseGenBank_invalid(t *testing.T) {
	tests := []struct {
		name     string
		contents string
	}{
		{
			"no locus",
			"FEATURES\nORIGIN\n1 atgc\n//\n",
		},
		{
			"no origin",
			"LOCUS       NC_1\nFEATURES             Location/Qualifiers\n     gene            1..4\n",
		},
		{
			"empty sequence",
			"LOCUS       NC_1\nFEATURES             Location/Qualifiers\nORIGIN\n//\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := parseGenBank("test.gb", tt.contents); err == nil {
				t.Error("parseGenBank() err = nil, want an error")
			}
		})
	}
}

func Test_parseLocation(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Location
	}{
		{
			"simple span",
			"687..3158",
			Location{Parts: []Interval{{686, 3158}}},
		},
		{
			"complement",
			"complement(34..126)",
			Location{Parts: []Interval{{33, 126}}, Complement: true},
		},
		{
			"join",
			"join(12..78,134..202)",
			Location{Parts: []Interval{{11, 78}, {133, 202}}},
		},
		{
			"complement of join",
			"complement(join(12..78,134..202,300..400))",
			Location{Parts: []Interval{{11, 78}, {133, 202}, {299, 400}}, Complement: true},
		},
		{
			"partial markers",
			"<1..>206",
			Location{Parts: []Interval{{0, 206}}},
		},
		{
			"single base",
			"467",
			Location{Parts: []Interval{{466, 467}}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseLocation(tt.in)
			if err != nil {
				t.Fatalf("parseLocation(%q) err = %v", tt.in, err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("parseLocation(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}
