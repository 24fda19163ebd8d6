/**************************************************************************************************
** Sample command implementation for the AMI camera utilities CLI. Plans an interval sampling
** over a directory of images, shows the selected representatives, and copies them to the
** output directory after confirmation.
**************************************************************************************************/

package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/entolab/ami-camera-utils/pkg/exifmeta"
	"github.com/entolab/ami-camera-utils/pkg/sampler"
	"github.com/entolab/ami-camera-utils/pkg/utils"
)

/**************************************************************************************************
** Main execution logic for the sample command. The bucketing logic lives in pkg/sampler; this
** adapter validates flags, drives the plan/confirm/apply flow, and reports the outcome.
**
** @param cmd - Cobra command instance
** @param args - Command line arguments; args[0] is the directory to process
**************************************************************************************************/
func runSample(cmd *cobra.Command, args []string) {
	logger := loadEnv()
	root := args[0]

	if intervalMinutes <= 0 {
		logger.Fatalf("Invalid sampling interval: %d minutes", intervalMinutes)
	}

	offset := currentOffset()
	logger.Infof("Processing images in %s", root)
	logger.Infof("Sampling interval: %d minutes", intervalMinutes)
	logOffset(logger, offset)

	plan, err := sampler.Plan(sampler.TPlanOptions{
		Root:              root,
		Recursive:         recursive,
		Offset:            offset,
		Interval:          time.Duration(intervalMinutes) * time.Minute,
		PreserveStructure: preserveStructure,
	}, exifmeta.ReadCaptureTime, logger)
	if err != nil {
		logger.Fatalf("Error planning sample: %v", err)
	}

	utils.PrintSampleSummary(plan)

	if dryRun {
		logger.Infof("Dry run complete. Would copy %d files to %s", len(plan.Buckets), sampleOutputDir)
		return
	}
	if len(plan.Buckets) == 0 {
		logger.Info("No samples to copy. Exiting")
		return
	}

	if !confirm("Do you want to proceed with copying to " + sampleOutputDir + "?") {
		logger.Info("Operation cancelled. No files were copied")
		return
	}

	copied, failures := sampler.Apply(plan, sampleOutputDir, logger)
	utils.PrintFailures(failures)
	logger.Infof("Successfully copied %d out of %d files to %s", copied, len(plan.Buckets), sampleOutputDir)
}
