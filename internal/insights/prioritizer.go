package insights

import "sort"

// maxNudges bounds the nudge list returned to the caller. Entries beyond
// the cap are discarded, not deferred to a later run.
const maxNudges = 5

// prioritize stably orders nudges by priority (high before medium before
// low), breaking ties by descending generation order, then truncates to
// maxNudges.
func prioritize(nudges []Nudge) []Nudge {
	sort.SliceStable(nudges, func(i, j int) bool {
		ri, rj := nudges[i].Priority.rank(), nudges[j].Priority.rank()
		if ri != rj {
			return ri < rj
		}
		return nudges[i].seq > nudges[j].seq
	})

	if len(nudges) > maxNudges {
		nudges = nudges[:maxNudges]
	}
	return nudges
}
