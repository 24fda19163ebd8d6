/**************************************************************************************************
** Package resolver derives corrected capture timestamps. It combines an injected metadata
** reader with a uniform signed offset that compensates for camera clock drift. The resolver is
** read-only: it never mutates source files.
**************************************************************************************************/
package resolver

import (
	"time"

	"github.com/entolab/ami-camera-utils/pkg/utils"
)

/**************************************************************************************************
** TReadCaptureTime is the metadata-reading capability the resolver consumes. Implementations
** report absent or unreadable timestamps through the ok flag; that is an expected outcome,
** not an error.
**************************************************************************************************/
type TReadCaptureTime func(path string) (time.Time, bool)

/**************************************************************************************************
** Resolver applies one immutable offset to every timestamp it resolves. Offsets compose
** additively: resolving with o1 and then correcting by o2 equals resolving with o1+o2.
**************************************************************************************************/
type Resolver struct {
	read   TReadCaptureTime
	offset utils.TOffset
}

// New builds a resolver around a metadata reader and a batch-wide offset.
func New(read TReadCaptureTime, offset utils.TOffset) *Resolver {
	return &Resolver{read: read, offset: offset}
}

/**************************************************************************************************
** Resolve returns the corrected capture timestamp for the file at path: the raw metadata
** timestamp plus the configured offset. Timestamps are naive civil time; offset arithmetic
** crosses month and year boundaries correctly via duration addition.
**
** @param path - File to resolve
** @return raw - Timestamp as read from metadata
** @return corrected - Raw timestamp plus the offset
** @return ok - False when no timestamp could be determined
**************************************************************************************************/
func (r *Resolver) Resolve(path string) (raw time.Time, corrected time.Time, ok bool) {
	raw, ok = r.read(path)
	if !ok {
		return time.Time{}, time.Time{}, false
	}
	return raw, raw.Add(r.offset.Duration()), true
}
