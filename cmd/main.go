/**************************************************************************************************
** Main entry point for the AMI camera utilities CLI. This tool reorganizes images captured by
** unattended field cameras: renaming batches to encode corrected capture timestamps, and
** sampling representatives at fixed time intervals for quick review.
**************************************************************************************************/

package main

import (
	"os"

	"github.com/entolab/ami-camera-utils/pkg/utils"
	"github.com/spf13/cobra"
)

/**************************************************************************************************
** Application entry point. Sets up the CLI command structure using Cobra, including all
** available commands and their associated flags. Handles command execution and error
** reporting.
**************************************************************************************************/
func main() {
	var rootCmd = &cobra.Command{
		Use:   "ami-camera-utils",
		Short: "AMI Camera Utils CLI",
		Long:  "Utilities for organizing insect camera-trap images by capture timestamp.",
	}

	var renameCmd = &cobra.Command{
		Use:   "rename <directory>",
		Short: "Rename photos based on their capture timestamp",
		Long:  "Process images from a directory and rename them to prefix-YYYYMMDDHHmmSS.ext using the EXIF timestamp, with optional clock-drift correction.",
		Args:  cobra.ExactArgs(1),
		Run:   runRename,
	}

	var sampleCmd = &cobra.Command{
		Use:   "sample <directory>",
		Short: "Sample photos at fixed time intervals",
		Long:  "Select one image per time interval based on the EXIF timestamp and copy the selected images to an output directory.",
		Args:  cobra.ExactArgs(1),
		Run:   runSample,
	}

	rootCmd.PersistentFlags().IntVarP(&daysOffset, "days", "d", 0, "Days to add to the timestamp, can be negative")
	rootCmd.PersistentFlags().IntVar(&hoursOffset, "hours", 0, "Hours to add to the timestamp, can be negative")
	rootCmd.PersistentFlags().IntVarP(&minutesOffset, "minutes", "m", 0, "Minutes to add to the timestamp, can be negative")
	rootCmd.PersistentFlags().BoolVarP(&recursive, "recursive", "r", true, "Search subdirectories recursively")
	rootCmd.PersistentFlags().BoolVarP(&dryRun, "dry-run", "n", false, "Show the plan without touching any file (or set DRY_RUN=true)")
	rootCmd.PersistentFlags().BoolVarP(&assumeYes, "yes", "y", false, "Skip the confirmation prompt (or set ASSUME_YES=true)")

	renameCmd.Flags().StringVarP(&prefix, "prefix", "p", "", "Prefix for the new filenames (or set PREFIX env var)")
	renameCmd.Flags().BoolVar(&inplace, "inplace", false, "Rename files in place rather than copying to an output directory")
	renameCmd.Flags().StringVarP(&renameOutputDir, "output-dir", "o", "", "Output directory for renamed copies (required unless --inplace is used)")

	sampleCmd.Flags().IntVarP(&intervalMinutes, "interval", "i", utils.DefaultIntervalMinutes, "Sampling interval in minutes (or set INTERVAL env var)")
	sampleCmd.Flags().StringVarP(&sampleOutputDir, "output-dir", "o", utils.DefaultSampleOutputDir, "Directory to save sampled images (or set OUTPUT_DIR env var)")
	sampleCmd.Flags().BoolVar(&preserveStructure, "preserve-structure", false, "Preserve the directory structure in the output")

	rootCmd.AddCommand(renameCmd)
	rootCmd.AddCommand(sampleCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
