package plastburst

import "strings"

// Fragment is one sequence instance of a region, from one genome.
// ID is "<region>_<genome name>".
type Fragment struct {
	ID  string
	Seq string
}

// RegionCollection maps region names to the fragments pooled for them
// across all genome records. Names keep their first-encountered order.
// It has a single owner: all mutation happens in the sequential phase,
// the alignment phase only reads it.
type RegionCollection struct {
	names   []string
	regions map[string][]Fragment
}

// NewRegionCollection returns an empty collection.
func NewRegionCollection() *RegionCollection {
	return &RegionCollection{regions: make(map[string][]Fragment)}
}

// Add appends a fragment under the region name, creating the region on
// first use.
func (rc *RegionCollection) Add(name string, f Fragment) {
	if _, seen := rc.regions[name]; !seen {
		rc.names = append(rc.names, name)
	}
	rc.regions[name] = append(rc.regions[name], f)
}

// Has returns whether the region name is present.
func (rc *RegionCollection) Has(name string) bool {
	_, seen := rc.regions[name]
	return seen
}

// Get returns the fragments of a region.
func (rc *RegionCollection) Get(name string) []Fragment {
	return rc.regions[name]
}

// Names returns the region names in first-encountered order.
func (rc *RegionCollection) Names() []string {
	return rc.names
}

// Len returns the number of regions.
func (rc *RegionCollection) Len() int {
	return len(rc.names)
}

// Delete removes a region. A no-op for unknown names.
func (rc *RegionCollection) Delete(name string) {
	if _, seen := rc.regions[name]; !seen {
		return
	}
	delete(rc.regions, name)
	for i, n := range rc.names {
		if n == name {
			rc.names = append(rc.names[:i], rc.names[i+1:]...)
			break
		}
	}
}

// Merge appends every region of other into rc, keeping fragment order.
func (rc *RegionCollection) Merge(other *RegionCollection) {
	for _, name := range other.names {
		for _, f := range other.regions[name] {
			rc.Add(name, f)
		}
	}
}

// Deduplicate keeps only the first fragment per unique ID within every
// region, preserving order. Idempotent.
func (rc *RegionCollection) Deduplicate() {
	for name, frags := range rc.regions {
		seen := make(map[string]bool, len(frags))
		unique := frags[:0]
		for _, f := range frags {
			if seen[f.ID] {
				continue
			}
			seen[f.ID] = true
			unique = append(unique, f)
		}
		rc.regions[name] = unique
	}
}

// filterMinTaxa drops regions with fewer fragments than minNumTaxa. The
// protein collection is kept in lockstep; it may be nil outside cds mode.
func filterMinTaxa(nucl, prot *RegionCollection, minNumTaxa int, lg *Logger) {
	lg.Info("removing regions that occur in fewer than %d taxa", minNumTaxa)

	for _, name := range append([]string{}, nucl.names...) {
		if len(nucl.Get(name)) < minNumTaxa {
			nucl.Delete(name)
			if prot != nil {
				prot.Delete(name)
			}
		}
	}
}

// filterORFs drops regions named as unverified open reading frames.
func filterORFs(nucl, prot *RegionCollection, lg *Logger) {
	lg.Info("removing ORFs")

	for _, name := range append([]string{}, nucl.names...) {
		if strings.Contains(name, "orf") {
			nucl.Delete(name)
			if prot != nil {
				prot.Delete(name)
			}
		}
	}
}

// filterExcluded drops the user-excluded regions. In intron mode the
// exclusion names address both possible introns of the gene. A requested
// name that was never extracted is only worth a warning.
func filterExcluded(nucl, prot *RegionCollection, exclude []string, intronMode bool, lg *Logger) {
	lg.Info("removing user-defined regions")

	if intronMode {
		var expanded []string
		for _, name := range exclude {
			expanded = append(expanded, name+"_intron1", name+"_intron2")
		}
		exclude = expanded
	}

	for _, name := range exclude {
		if !nucl.Has(name) {
			lg.Warn("region %s was to be excluded but is not present in the input", name)
			continue
		}
		nucl.Delete(name)
		if prot != nil {
			prot.Delete(name)
		}
	}
}
