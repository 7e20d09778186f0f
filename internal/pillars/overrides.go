package pillars

import (
	"time"

	"saju/internal/cycle"
)

// Override pins the month pillar of one calendar date to a fixed value,
// consulted before the general solar-term algorithm. The table exists so
// that almanac discrepancies, once verified, stay visible, versioned and
// individually tested instead of being folded into the normal path. Entries
// are not assumed to be ground truth; each one carries the version that
// introduced it and a reason.
type Override struct {
	Month   cycle.Pillar
	Version string
	Reason  string
}

// Overrides maps "2006-01-02" date keys to overrides.
type Overrides map[string]Override

const overrideKeyLayout = "2006-01-02"

// Lookup returns the override for a date, if any.
func (o Overrides) Lookup(date time.Time) (cycle.Pillar, bool) {
	if len(o) == 0 {
		return cycle.Pillar{}, false
	}
	entry, ok := o[date.Format(overrideKeyLayout)]
	if !ok {
		return cycle.Pillar{}, false
	}
	return entry.Month, true
}

// ProductionOverrides is the shipped override table. It is empty: every
// boundary fixture checked so far is reproduced by the general algorithm,
// and unverified special-case values are not carried forward as truth. The
// table stays wired so a verified discrepancy can be pinned with a version
// tag and a per-entry test.
func ProductionOverrides() Overrides {
	return Overrides{}
}
