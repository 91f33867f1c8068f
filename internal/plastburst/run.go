package plastburst

import (
	"fmt"
	"io/ioutil"
	"path/filepath"
	"strings"

	"github.com/KeatonRowley/PlastomeBurstAndAlign/config"
)

// Run executes the whole pipeline: sequential extraction and filtering,
// the parallel per-region alignment stage, and the final concatenation.
// The returned error is fatal for the run; everything recoverable is
// logged and excluded along the way.
func Run(conf *config.Config, lg *Logger) error {
	nucl, prot, err := extractAll(conf, lg)
	if err != nil {
		return err
	}

	filterRegions(nucl, prot, conf, lg)

	if err := writeUnaligned(nucl, conf.OutDir, lg); err != nil {
		return err
	}

	jobs := buildJobs(nucl, prot, conf.Mode)
	alignRegions(jobs, conf.OutDir, conf.BackTransl, lg)

	entries := collectAlignments(nucl, conf.OutDir, lg)

	return concatenate(entries, conf.OutDir, lg)
}

// extractAll parses every genome flatfile in the input directory, one
// record at a time, and pools the mode's regions across all of them. The
// protein collection is only returned in cds mode.
func extractAll(conf *config.Config, lg *Logger) (nucl, prot *RegionCollection, err error) {
	lg.Info("parsing genome records and extracting their annotations")

	files, err := listInputFiles(conf.InDir, conf.FileExt)
	if err != nil {
		return nil, nil, err
	}

	nucl = NewRegionCollection()
	if conf.Mode == config.ModeCDS {
		prot = NewRegionCollection()
	}

	// second introns are pooled apart and merged after the record pass so
	// a failed first intron never commits its sibling alone
	var intron2 *RegionCollection
	if conf.Mode == config.ModeInt {
		intron2 = NewRegionCollection()
	}

	for _, f := range files {
		lg.Info("parsing genome flatfile %s", filepath.Base(f))

		rec, err := ReadGenBank(f)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to read %s: %v", f, err)
		}

		switch conf.Mode {
		case config.ModeCDS:
			extractCDS(rec, conf.MinSeqLength, nucl, prot, lg)
		case config.ModeIGS:
			extractIGS(rec, filepath.Base(f), conf.MinSeqLength, nucl, lg)
		case config.ModeInt:
			extractInt(rec, nucl, intron2, lg)
		}
	}

	if intron2 != nil {
		nucl.Merge(intron2)
	}

	if nucl.Len() == 0 {
		return nil, nil, fmt.Errorf("no regions were extracted from %s", conf.InDir)
	}

	return nucl, prot, nil
}

// listInputFiles returns the flatfiles in dir carrying the extension, in
// directory order.
func listInputFiles(dir, ext string) (paths []string, err error) {
	infos, err := ioutil.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read the input directory %s: %v", dir, err)
	}

	for _, info := range infos {
		if info.IsDir() || !strings.HasSuffix(info.Name(), ext) {
			continue
		}
		paths = append(paths, filepath.Join(dir, info.Name()))
	}

	return paths, nil
}

// filterRegions applies the filter pipeline in its fixed order:
// deduplication, minimum taxon count, ORF names, user exclusions. The
// protein collection is kept in lockstep throughout.
func filterRegions(nucl, prot *RegionCollection, conf *config.Config, lg *Logger) {
	lg.Info("removing duplicate annotations")
	nucl.Deduplicate()
	if prot != nil {
		prot.Deduplicate()
	}

	filterMinTaxa(nucl, prot, conf.MinNumTaxa, lg)
	filterORFs(nucl, prot, lg)
	filterExcluded(nucl, prot, conf.Exclude, conf.Mode == config.ModeInt, lg)
}

// writeUnaligned saves every region's pooled fragments as an unaligned
// nucleotide matrix in the output directory.
func writeUnaligned(nucl *RegionCollection, outDir string, lg *Logger) error {
	lg.Info("saving individual regions as unaligned nucleotide matrices")

	for _, region := range nucl.Names() {
		if err := writeFasta(unalignedNuclPath(outDir, region), nucl.Get(region)); err != nil {
			return fmt.Errorf("failed to write the unaligned matrix of %s: %v", region, err)
		}
	}

	return nil
}

// buildJobs creates one alignment job per surviving region. In cds mode
// only regions with protein fragments are eligible: the translation-length
// filter during extraction decides this.
func buildJobs(nucl, prot *RegionCollection, mode string) (jobs []alignmentJob) {
	if mode == config.ModeCDS {
		for _, region := range prot.Names() {
			if !nucl.Has(region) {
				continue // removed by a filter after extraction
			}
			jobs = append(jobs, alignmentJob{region: region, prot: prot.Get(region)})
		}
		return jobs
	}

	for _, region := range nucl.Names() {
		jobs = append(jobs, alignmentJob{region: region})
	}

	return jobs
}
