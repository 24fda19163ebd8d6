/**************************************************************************************************
** Package sampler selects representative images at fixed time intervals from a batch of
** camera captures, for quick preview and time-lapse review without processing the full set.
** Captures are partitioned into contiguous buckets anchored at the earliest corrected
** timestamp; the earliest capture in each non-empty bucket is its representative.
**************************************************************************************************/
package sampler

import (
	"errors"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/entolab/ami-camera-utils/pkg/resolver"
	"github.com/entolab/ami-camera-utils/pkg/scanner"
	"github.com/entolab/ami-camera-utils/pkg/utils"
)

/**************************************************************************************************
** TPlanOptions configures one sampling planning pass.
**************************************************************************************************/
type TPlanOptions struct {
	Root              string        // Directory to scan for image files
	Recursive         bool          // Whether to scan subdirectories
	Offset            utils.TOffset // Clock-drift correction applied to every capture
	Interval          time.Duration // Bucket width, must be positive
	PreserveStructure bool          // Mirror paths relative to Root in the output directory
}

/**************************************************************************************************
** Plan enumerates and resolves captures the same way the renamer does, sorts them by
** corrected timestamp (stable, ties broken by scan order), and partitions them into
** fixed-width buckets. The anchor is the corrected timestamp of the earliest capture, so that
** capture always falls in bucket 0 and every resolvable capture falls in exactly one bucket:
** floor((timestamp - anchor) / interval). Only non-empty buckets appear in the plan, each
** carrying its earliest capture as representative.
**
** @param opts - Planning options
** @param read - Metadata-reading capability
** @param logger - Logger for progress and per-file detail
** @return *utils.TSamplePlan - The computed plan
** @return error - Configuration error; nothing was attempted
**************************************************************************************************/
func Plan(opts TPlanOptions, read resolver.TReadCaptureTime, logger *logrus.Logger) (*utils.TSamplePlan, error) {
	if opts.Interval <= 0 {
		return nil, errors.New("interval must be positive")
	}

	files, err := scanner.FindImageFiles(opts.Root, opts.Recursive)
	if err != nil {
		return nil, err
	}
	logger.Infof("Found %d image files in %s", len(files), opts.Root)

	res := resolver.New(read, opts.Offset)
	plan := &utils.TSamplePlan{
		Root:              opts.Root,
		Interval:          opts.Interval,
		PreserveStructure: opts.PreserveStructure,
	}

	var captures []utils.TCapture
	for i, path := range files {
		raw, corrected, ok := res.Resolve(path)
		if !ok {
			logger.Warnf("No timestamp found for %s", path)
			plan.Skipped = append(plan.Skipped, utils.TSkip{Path: path, Reason: utils.REASON_NO_TIMESTAMP})
			continue
		}
		captures = append(captures, utils.TCapture{
			Path:          path,
			RawTime:       raw,
			CorrectedTime: corrected,
			ScanIndex:     i,
		})
	}
	if len(captures) == 0 {
		logger.Warn("No images with valid timestamps found")
		return plan, nil
	}

	sort.SliceStable(captures, func(i, j int) bool {
		return captures[i].CorrectedTime.Before(captures[j].CorrectedTime)
	})

	plan.Anchor = captures[0].CorrectedTime
	byIndex := make(map[int]*utils.TBucket)
	var indices []int
	for _, capture := range captures {
		idx := int(capture.CorrectedTime.Sub(plan.Anchor) / opts.Interval)
		bucket, exists := byIndex[idx]
		if !exists {
			// First capture seen for this window is the earliest one: captures are sorted.
			bucket = &utils.TBucket{
				Index:          idx,
				Start:          plan.Anchor.Add(time.Duration(idx) * opts.Interval),
				Representative: capture,
			}
			byIndex[idx] = bucket
			indices = append(indices, idx)
		}
		bucket.Count++
	}

	sort.Ints(indices)
	for _, idx := range indices {
		plan.Buckets = append(plan.Buckets, *byIndex[idx])
		logger.Debugf("Bucket %d [%s): representative %s",
			idx, byIndex[idx].Start.Format(utils.TimestampLayout), byIndex[idx].Representative.Path)
	}

	return plan, nil
}

/**************************************************************************************************
** Apply copies each bucket representative into outputDir. With PreserveStructure set, the
** representative's path relative to the scanned root is mirrored under outputDir, creating
** intermediate directories as needed; otherwise representatives land flat in outputDir with
** name collisions resolved by the same numeric-suffix policy the renamer uses. Copy failures
** are recorded per file and never abort the batch. Existing targets are never overwritten.
**
** @param plan - Plan to execute
** @param outputDir - Destination directory for representatives
** @param logger - Logger for per-file outcomes
** @return int - Number of files copied
** @return []utils.TFailure - Per-file failures, in bucket order
**************************************************************************************************/
func Apply(plan *utils.TSamplePlan, outputDir string, logger *logrus.Logger) (int, []utils.TFailure) {
	var failures []utils.TFailure
	copied := 0

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		for _, bucket := range plan.Buckets {
			failures = append(failures, utils.TFailure{Path: bucket.Representative.Path, Reason: err.Error()})
		}
		return 0, failures
	}

	taken := make(map[string]bool, len(plan.Buckets))
	for _, bucket := range plan.Buckets {
		source := bucket.Representative.Path

		var target string
		if plan.PreserveStructure {
			rel, err := filepath.Rel(plan.Root, source)
			if err != nil {
				rel = filepath.Base(source)
			}
			target = filepath.Join(outputDir, rel)
			if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
				logger.Errorf("Error creating directory for %s: %v", source, err)
				failures = append(failures, utils.TFailure{Path: source, Reason: err.Error()})
				continue
			}
		} else {
			target = utils.UniqueTarget(filepath.Join(outputDir, filepath.Base(source)), taken)
		}

		if _, err := os.Lstat(target); err == nil {
			logger.Errorf("Cannot copy %s: %s: %s", source, utils.REASON_TARGET_EXISTS, target)
			failures = append(failures, utils.TFailure{Path: source, Reason: utils.REASON_TARGET_EXISTS})
			continue
		}

		if err := utils.CopyFile(source, target); err != nil {
			logger.Errorf("Error copying %s: %v", source, err)
			failures = append(failures, utils.TFailure{Path: source, Reason: err.Error()})
			continue
		}

		logger.Infof("Copied %s -> %s", source, target)
		copied++
	}

	return copied, failures
}
