/**************************************************************************************************
** Rename command implementation for the AMI camera utilities CLI. Plans a timestamp-encoding
** rename for a directory of images, shows the plan, and applies it after confirmation.
**************************************************************************************************/

package main

import (
	"github.com/spf13/cobra"

	"github.com/entolab/ami-camera-utils/pkg/exifmeta"
	"github.com/entolab/ami-camera-utils/pkg/renamer"
	"github.com/entolab/ami-camera-utils/pkg/utils"
)

/**************************************************************************************************
** Main execution logic for the rename command. The heavy lifting lives in pkg/renamer; this
** adapter only validates flags, drives the plan/confirm/apply flow, and reports the outcome.
**
** @param cmd - Cobra command instance
** @param args - Command line arguments; args[0] is the directory to process
**************************************************************************************************/
func runRename(cmd *cobra.Command, args []string) {
	logger := loadEnv()
	root := args[0]

	/**********************************************************************************************
	** Either files are renamed in place or copied into an output directory; exactly one of the
	** two modes must be chosen.
	**********************************************************************************************/
	if !inplace && renameOutputDir == "" {
		logger.Fatal("Either --output-dir must be specified or --inplace must be used")
	}
	if inplace && renameOutputDir != "" {
		logger.Fatal("Cannot use both --inplace and --output-dir options together")
	}

	offset := currentOffset()
	logger.Infof("Processing images in %s", root)
	logOffset(logger, offset)

	plan, err := renamer.Plan(renamer.TPlanOptions{
		Root:      root,
		Prefix:    prefix,
		Recursive: recursive,
		Offset:    offset,
		OutputDir: renameOutputDir,
	}, exifmeta.ReadCaptureTime, logger)
	if err != nil {
		logger.Fatalf("Error planning rename: %v", err)
	}

	utils.PrintRenameSummary(plan)

	if dryRun {
		logger.Info("Dry run complete. No files were processed")
		return
	}
	if len(plan.Entries) == 0 {
		logger.Info("No files to process. Exiting")
		return
	}

	operation := "rename"
	if plan.Copy() {
		operation = "copy"
	}
	if !confirm("Do you want to proceed with the " + operation + "?") {
		logger.Info("Operation cancelled. No files were processed")
		return
	}

	succeeded, failures := renamer.Apply(plan, logger)
	utils.PrintFailures(failures)
	logger.Infof("Successfully processed %d out of %d files", succeeded, len(plan.Entries))
}
