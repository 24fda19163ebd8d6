/**************************************************************************************************
** Package renamer plans and applies timestamp-encoding renames for batches of camera images.
** Planning is side-effect free and always usable headlessly; applying executes a previously
** computed plan with per-file failure isolation.
**************************************************************************************************/
package renamer

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/entolab/ami-camera-utils/pkg/resolver"
	"github.com/entolab/ami-camera-utils/pkg/scanner"
	"github.com/entolab/ami-camera-utils/pkg/utils"
)

/**************************************************************************************************
** TPlanOptions configures one rename planning pass. Options are explicit per invocation;
** no global state is consulted.
**************************************************************************************************/
type TPlanOptions struct {
	Root      string        // Directory to scan for image files
	Prefix    string        // Filename prefix for computed targets
	Recursive bool          // Whether to scan subdirectories
	Offset    utils.TOffset // Clock-drift correction applied to every capture
	OutputDir string        // When set, plan copies into this directory instead of renaming in place
}

/**************************************************************************************************
** Plan enumerates image files under the root, resolves each file's corrected timestamp, and
** computes a collision-free target name for every resolvable capture. Files with no
** resolvable timestamp are excluded and reported in the plan's Skipped list. Target names
** follow {prefix}-{YYYYMMDDHHmmSS}{ext}; when two or more sources map to the same target, all
** but the first get a numeric suffix in scan order, so targets are pairwise distinct before
** anything is executed.
**
** @param opts - Planning options
** @param read - Metadata-reading capability
** @param logger - Logger for progress and per-file detail
** @return *utils.TRenamePlan - The computed plan
** @return error - Configuration error; nothing was attempted
**************************************************************************************************/
func Plan(opts TPlanOptions, read resolver.TReadCaptureTime, logger *logrus.Logger) (*utils.TRenamePlan, error) {
	if opts.Prefix == "" {
		return nil, errors.New("prefix must not be empty")
	}

	files, err := scanner.FindImageFiles(opts.Root, opts.Recursive)
	if err != nil {
		return nil, err
	}
	logger.Infof("Found %d image files in %s", len(files), opts.Root)

	res := resolver.New(read, opts.Offset)
	plan := &utils.TRenamePlan{
		Root:      opts.Root,
		Prefix:    opts.Prefix,
		OutputDir: opts.OutputDir,
	}
	taken := make(map[string]bool, len(files))

	/**********************************************************************************************
	** First pass: resolve timestamps and claim identity targets. An in-place source whose name
	** already encodes its corrected timestamp (with or without a collision suffix) keeps its
	** own path, no matter where it falls in scan order. Without this, re-running over a
	** previously suffixed pair would swap the suffixed and unsuffixed names instead of being a
	** no-op.
	**********************************************************************************************/
	type candidate struct {
		path      string
		raw       time.Time
		corrected time.Time
		name      string
		identity  bool
	}
	var candidates []candidate
	for _, path := range files {
		raw, corrected, ok := res.Resolve(path)
		if !ok {
			logger.Warnf("No timestamp found for %s", path)
			plan.Skipped = append(plan.Skipped, utils.TSkip{Path: path, Reason: utils.REASON_NO_TIMESTAMP})
			continue
		}

		name := opts.Prefix + "-" + utils.FormatTimestamp(corrected) + utils.NormalizedExt(path)
		identity := opts.OutputDir == "" && encodesName(filepath.Base(path), name)
		if identity {
			taken[path] = true
		}
		candidates = append(candidates, candidate{
			path:      path,
			raw:       raw,
			corrected: corrected,
			name:      name,
			identity:  identity,
		})
	}

	/**********************************************************************************************
	** Second pass: assign targets to the remaining claimants in scan order, disambiguating
	** collisions with numeric suffixes.
	**********************************************************************************************/
	for _, c := range candidates {
		target := c.path
		if !c.identity {
			dir := opts.OutputDir
			if dir == "" {
				dir = filepath.Dir(c.path)
			}
			target = utils.UniqueTarget(filepath.Join(dir, c.name), taken)
			if filepath.Base(target) != c.name {
				logger.Infof("%s for %s -> %s", utils.REASON_COLLISION_RESOLVED, c.path, target)
			}
		}

		plan.Entries = append(plan.Entries, utils.TRenameEntry{
			Source:        c.path,
			Target:        target,
			RawTime:       c.raw,
			CorrectedTime: c.corrected,
		})
	}

	return plan, nil
}

/**************************************************************************************************
** encodesName reports whether a source basename already carries the computed target name:
** either the name itself or the name with a numeric collision suffix before the extension
** (cam1-20250423100000-1.jpg for cam1-20250423100000.jpg). Such files are the output of a
** previous run and keep their path, making re-runs idempotent.
**
** @param base - Basename of the source file
** @param name - Computed target filename for the source's corrected timestamp
** @return bool - True when the basename already encodes the target name
**************************************************************************************************/
func encodesName(base, name string) bool {
	if base == name {
		return true
	}
	ext := filepath.Ext(name)
	stem := strings.TrimSuffix(name, ext)
	if !strings.HasSuffix(base, ext) {
		return false
	}
	suffix, found := strings.CutPrefix(strings.TrimSuffix(base, ext), stem+"-")
	if !found || suffix == "" {
		return false
	}
	for _, r := range suffix {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

/**************************************************************************************************
** Apply executes a rename plan in order. Entries whose source already equals the target are
** no-ops and count as succeeded, which makes re-running over already-renamed output
** idempotent. A per-file failure (existing target, permission error, I/O error) is recorded
** and the batch continues; a single file failure is never fatal.
**
** @param plan - Plan to execute
** @param logger - Logger for per-file outcomes
** @return int - Number of entries that succeeded
** @return []utils.TFailure - Per-file failures, in plan order
**************************************************************************************************/
func Apply(plan *utils.TRenamePlan, logger *logrus.Logger) (int, []utils.TFailure) {
	var failures []utils.TFailure
	succeeded := 0

	if plan.Copy() {
		if err := os.MkdirAll(plan.OutputDir, 0o755); err != nil {
			// Nothing can be copied without the output directory; fail every entry.
			for _, entry := range plan.Entries {
				failures = append(failures, utils.TFailure{Path: entry.Source, Reason: err.Error()})
			}
			return 0, failures
		}
	}

	for _, entry := range plan.Entries {
		if entry.Source == entry.Target {
			logger.Debugf("Already named correctly: %s", entry.Source)
			succeeded++
			continue
		}

		if _, err := os.Lstat(entry.Target); err == nil {
			logger.Errorf("Cannot process %s: %s: %s", entry.Source, utils.REASON_TARGET_EXISTS, entry.Target)
			failures = append(failures, utils.TFailure{Path: entry.Source, Reason: utils.REASON_TARGET_EXISTS})
			continue
		}

		var err error
		if plan.Copy() {
			err = utils.CopyFile(entry.Source, entry.Target)
		} else {
			err = os.Rename(entry.Source, entry.Target)
		}
		if err != nil {
			logger.Errorf("Error processing %s: %v", entry.Source, err)
			failures = append(failures, utils.TFailure{Path: entry.Source, Reason: err.Error()})
			continue
		}

		logger.Infof("%s -> %s", entry.Source, entry.Target)
		succeeded++
	}

	return succeeded, failures
}
