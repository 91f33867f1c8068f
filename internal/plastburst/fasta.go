package plastburst

import (
	"bytes"
	"fmt"
	"io/ioutil"
	"strings"
)

// fastaLineWidth is the wrap width for sequence lines.
const fastaLineWidth = 60

// writeFasta writes fragments to a multi-FASTA file.
func writeFasta(path string, frags []Fragment) error {
	var buf bytes.Buffer
	for _, f := range frags {
		fmt.Fprintf(&buf, ">%s\n", f.ID)
		for i := 0; i < len(f.Seq); i += fastaLineWidth {
			end := i + fastaLineWidth
			if end > len(f.Seq) {
				end = len(f.Seq)
			}
			buf.WriteString(f.Seq[i:end])
			buf.WriteByte('\n')
		}
	}

	return ioutil.WriteFile(path, buf.Bytes(), 0644)
}

// readFasta parses a multi-FASTA file to fragments. Gap characters are
// kept: aligned matrices pass through here.
func readFasta(path string) (frags []Fragment, err error) {
	dat, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cur *Fragment
	var seq strings.Builder
	flush := func() {
		if cur != nil {
			cur.Seq = seq.String()
			frags = append(frags, *cur)
		}
		seq.Reset()
	}

	for _, line := range strings.Split(string(dat), "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.HasPrefix(line, ">") {
			flush()
			id := strings.TrimSpace(line[1:])
			// keep only the identifier, not FASTA description text
			if fields := strings.Fields(id); len(fields) > 0 {
				id = fields[0]
			}
			cur = &Fragment{ID: id}
			continue
		}
		seq.WriteString(strings.TrimSpace(line))
	}
	flush()

	if len(frags) == 0 {
		return nil, fmt.Errorf("failed to parse any sequences from %s", path)
	}

	return frags, nil
}
