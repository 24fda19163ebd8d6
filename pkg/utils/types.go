package utils

import "time"

/**************************************************************************************************
** TOffset represents a signed time correction applied uniformly to every capture in a batch.
** Each component is independently signed; the components are summed into a single duration.
** An offset is immutable once built and never varies per file.
**************************************************************************************************/
type TOffset struct {
	Days    int // Whole days to add (can be negative)
	Hours   int // Whole hours to add (can be negative)
	Minutes int // Whole minutes to add (can be negative)
}

/**************************************************************************************************
** Duration converts the offset into a single time.Duration. Month and year boundary crossings
** are handled by the time package when the duration is added to a timestamp.
**
** @return time.Duration - The summed offset
**************************************************************************************************/
func (o TOffset) Duration() time.Duration {
	return time.Duration(o.Days)*24*time.Hour +
		time.Duration(o.Hours)*time.Hour +
		time.Duration(o.Minutes)*time.Minute
}

// IsZero reports whether the offset would leave timestamps unchanged.
func (o TOffset) IsZero() bool {
	return o.Days == 0 && o.Hours == 0 && o.Minutes == 0
}

/**************************************************************************************************
** TCapture represents a single image file considered for processing, together with its raw
** and corrected capture timestamps. Captures are transient: they live for one plan/apply cycle
** and are never persisted.
**************************************************************************************************/
type TCapture struct {
	Path          string    // Location of the file on disk
	RawTime       time.Time // Timestamp extracted from embedded metadata
	CorrectedTime time.Time // RawTime plus the configured offset
	ScanIndex     int       // Position in the original scan order, used as a sort tie-breaker
}

/**************************************************************************************************
** TSkip records a file that was excluded from a plan, with the reason for exclusion.
** Skips are expected outcomes (e.g. no timestamp in metadata), not failures.
**************************************************************************************************/
type TSkip struct {
	Path   string // File that was skipped
	Reason string // Why it was skipped
}

/**************************************************************************************************
** TFailure records a per-file execution failure. Failures never abort the remaining batch;
** they are accumulated and reported to the caller.
**************************************************************************************************/
type TFailure struct {
	Path   string // File that failed
	Reason string // Why it failed
}

/**************************************************************************************************
** TRenameEntry is one source -> target pair in a rename plan. When Source equals Target the
** file is already correctly named and applying the entry is a no-op.
**************************************************************************************************/
type TRenameEntry struct {
	Source        string    // Current location of the file
	Target        string    // Computed destination path
	RawTime       time.Time // Timestamp read from metadata
	CorrectedTime time.Time // Timestamp encoded into the target name
}

/**************************************************************************************************
** TRenamePlan is a fully computed, side-effect-free description of a rename batch. Target
** paths within one plan are pairwise distinct; collisions are resolved before the plan is
** finalized. Captures with no resolvable timestamp appear only in Skipped.
**************************************************************************************************/
type TRenamePlan struct {
	Root      string         // Directory that was scanned
	Prefix    string         // Filename prefix used for targets
	OutputDir string         // When set, entries are copied here instead of renamed in place
	Entries   []TRenameEntry // Planned operations, in scan order
	Skipped   []TSkip        // Files excluded from the plan
}

// Copy reports whether applying the plan duplicates files rather than renaming them in place.
func (p *TRenamePlan) Copy() bool {
	return p.OutputDir != ""
}

/**************************************************************************************************
** TBucket is a half-open time window [Start, Start + interval) holding the captures whose
** corrected timestamps fall inside it. Buckets are contiguous, non-overlapping, and anchored
** at the corrected timestamp of the earliest capture in the scanned set.
**************************************************************************************************/
type TBucket struct {
	Index          int       // Bucket index, 0 for the window containing the anchor
	Start          time.Time // Inclusive start of the window
	Count          int       // Number of captures that fell into this window
	Representative TCapture  // Earliest capture in the window (ties broken by scan order)
}

/**************************************************************************************************
** TSamplePlan is a fully computed, side-effect-free description of a sampling batch: one
** representative per non-empty bucket. Only non-empty buckets appear, ordered by index.
**************************************************************************************************/
type TSamplePlan struct {
	Root              string        // Directory that was scanned
	Interval          time.Duration // Fixed bucket width
	Anchor            time.Time     // Corrected timestamp of the earliest capture
	PreserveStructure bool          // Mirror paths relative to Root under the output directory
	Buckets           []TBucket     // Non-empty buckets, ascending by index
	Skipped           []TSkip       // Files excluded from the plan
}
