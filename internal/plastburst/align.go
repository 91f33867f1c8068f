package plastburst

import (
	"fmt"
	"io/ioutil"
	"os/exec"
	"strconv"
)

// geneticCodeTable is passed to the back-translation helper; 11 is the
// plastid/bacterial code, matching translate.
const geneticCodeTable = "11"

// mafftAlign aligns the sequences in input and writes the alignment to
// output. MAFFT prints the alignment on stdout; --adjustdirection lets it
// flip reverse-complemented fragments.
func mafftAlign(input, output string, threads int) error {
	mafftCmd := exec.Command(
		"mafft",
		"--adjustdirection",
		"--thread", strconv.Itoa(threads),
		input,
	)

	aligned, err := mafftCmd.Output()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return fmt.Errorf("failed to execute mafft on %s: %v: %s", input, err, string(exitErr.Stderr))
		}
		return fmt.Errorf("failed to execute mafft on %s: %v", input, err)
	}

	if err := ioutil.WriteFile(output, aligned, 0644); err != nil {
		return fmt.Errorf("failed to write alignment to %s: %v", output, err)
	}

	return nil
}

// backTranslate maps an aligned protein file plus its pre-alignment
// nucleotide file to an aligned nucleotide file, via the external helper
// script. The helper only accepts FASTA input.
func backTranslate(helper, alignedProt, unalignedNucl, alignedNucl string) error {
	btCmd := exec.Command(
		"python3",
		helper,
		"fasta",
		alignedProt,
		unalignedNucl,
		alignedNucl,
		geneticCodeTable,
	)

	if output, err := btCmd.CombinedOutput(); err != nil {
		return fmt.Errorf("failed to execute %s: %v: %s", helper, err, string(output))
	}

	return nil
}
