package plastburst

import (
	"path/filepath"
	"runtime"
	"sync"
)

// Per-region file names in the output directory. Isolation between
// concurrent jobs comes from these names being unique per region.
func unalignedNuclPath(outDir, region string) string {
	return filepath.Join(outDir, "nucl_"+region+".unalign.fasta")
}

func alignedNuclPath(outDir, region string) string {
	return filepath.Join(outDir, "nucl_"+region+".aligned.fasta")
}

func nexusNuclPath(outDir, region string) string {
	return filepath.Join(outDir, "nucl_"+region+".aligned.nexus")
}

func unalignedProtPath(outDir, region string) string {
	return filepath.Join(outDir, "prot_"+region+".unalign.fasta")
}

func alignedProtPath(outDir, region string) string {
	return filepath.Join(outDir, "prot_"+region+".aligned.fasta")
}

// alignmentJob is the immutable input to one alignment task: a region
// name plus, in protein-guided mode, the protein fragments to align.
type alignmentJob struct {
	region string

	// protein fragments; nil means nucleotide-direct mode
	prot []Fragment
}

// run aligns one region. Nucleotide-direct mode aligns the region's
// unaligned nucleotide file as-is. Protein-guided mode writes and aligns
// the protein fragments, then back-translates against the unaligned
// nucleotide file. Every path is derived from the region name, so jobs
// never touch each other's files.
func (j alignmentJob) run(outDir, helper string) error {
	if j.prot == nil {
		return mafftAlign(unalignedNuclPath(outDir, j.region), alignedNuclPath(outDir, j.region), 1)
	}

	if err := writeFasta(unalignedProtPath(outDir, j.region), j.prot); err != nil {
		return err
	}

	if err := mafftAlign(unalignedProtPath(outDir, j.region), alignedProtPath(outDir, j.region), 1); err != nil {
		return err
	}

	return backTranslate(
		helper,
		alignedProtPath(outDir, j.region),
		unalignedNuclPath(outDir, j.region),
		alignedNuclPath(outDir, j.region),
	)
}

// alignRegions distributes one job per region across a worker pool sized
// to the available processing units and blocks until every job has
// completed or failed. A failed job is logged and its region is simply
// absent from later stages; sibling jobs keep running. Returns the count
// of successful jobs.
func alignRegions(jobs []alignmentJob, outDir, helper string, lg *Logger) (succeeded int) {
	workers := runtime.NumCPU()
	if workers > len(jobs) {
		workers = len(jobs)
	}
	if workers < 1 {
		workers = 1
	}

	type result struct {
		region string
		err    error
	}

	jobCh := make(chan alignmentJob, len(jobs))
	resultCh := make(chan result, len(jobs))

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for j := range jobCh {
				resultCh <- result{region: j.region, err: j.run(outDir, helper)}
			}
		}()
	}

	for _, j := range jobs {
		jobCh <- j
	}
	close(jobCh)

	// full barrier: the concatenation stage must not start before every
	// job has finished
	wg.Wait()
	close(resultCh)

	for r := range resultCh {
		if r.err != nil {
			lg.Warn("unable to align region %s: %v", r.region, r.err)
			continue
		}
		lg.Debug("aligned region %s", r.region)
		succeeded++
	}

	return succeeded
}
