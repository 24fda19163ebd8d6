/**************************************************************************************************
** Configuration and environment management for the AMI camera utilities CLI.
** Handles logger configuration, environment variable loading, and global configuration state.
**************************************************************************************************/

package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/entolab/ami-camera-utils/pkg/utils"
)

// Global configuration variables
var daysOffset int
var hoursOffset int
var minutesOffset int
var recursive bool
var dryRun bool
var assumeYes bool
var prefix string
var inplace bool
var renameOutputDir string
var intervalMinutes int
var sampleOutputDir string
var preserveStructure bool

/**************************************************************************************************
** Configures the logger based on environment variables. Sets up the log level and format
** according to LOG_LEVEL and LOG_FORMAT environment variables.
**
** @return *logrus.Logger - Configured logger instance
**************************************************************************************************/
func configureLogger() *logrus.Logger {
	logger := logrus.New()

	// Set log level from environment variable
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		if parsedLevel, err := logrus.ParseLevel(level); err == nil {
			logger.SetLevel(parsedLevel)
		} else {
			logger.Warnf("Invalid LOG_LEVEL '%s', using default 'info'", level)
			logger.SetLevel(logrus.InfoLevel)
		}
	} else {
		logger.SetLevel(logrus.InfoLevel)
	}

	// Set log format from environment variable
	if format := os.Getenv("LOG_FORMAT"); format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: time.RFC3339,
		})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			DisableTimestamp: true,
			FullTimestamp:    false,
			TimestampFormat:  time.RFC3339,
		})
	}

	return logger
}

/**************************************************************************************************
** Loads environment variables and command-line flags, with flags taking precedence over env
** variables. Handles shared configuration like the filename prefix, sampling interval, and
** operation modes.
**
** @return *logrus.Logger - Logger instance for outputting status and errors
**************************************************************************************************/
func loadEnv() *logrus.Logger {
	_ = godotenv.Load()
	logger := configureLogger()
	if prefix == "" {
		prefix = os.Getenv("PREFIX")
	}
	if prefix == "" {
		prefix = utils.DefaultPrefix
	}
	if intervalMinutes == utils.DefaultIntervalMinutes {
		if val := os.Getenv("INTERVAL"); val != "" {
			if intVal, err := strconv.Atoi(val); err == nil {
				intervalMinutes = intVal
			}
		}
	}
	if sampleOutputDir == utils.DefaultSampleOutputDir {
		if val := os.Getenv("OUTPUT_DIR"); val != "" {
			sampleOutputDir = val
		}
	}
	if !dryRun {
		dryRun = os.Getenv("DRY_RUN") == "true"
	}
	if dryRun {
		logger.Info("DRY_RUN is set to true, no changes will be applied")
	}
	if !assumeYes {
		assumeYes = os.Getenv("ASSUME_YES") == "true"
	}
	if logger.Level == logrus.DebugLevel {
		utils.Pretty(currentOffset())
	}
	return logger
}

// currentOffset assembles the batch-wide clock correction from the offset flags.
func currentOffset() utils.TOffset {
	return utils.TOffset{Days: daysOffset, Hours: hoursOffset, Minutes: minutesOffset}
}

/**************************************************************************************************
** logOffset reports the active time correction, component by component, when any is nonzero.
**
** @param logger - Logger instance for outputting the correction summary
**************************************************************************************************/
func logOffset(logger *logrus.Logger, offset utils.TOffset) {
	if offset.IsZero() {
		return
	}
	var parts []string
	for _, component := range []struct {
		name  string
		value int
	}{{"days", offset.Days}, {"hours", offset.Hours}, {"minutes", offset.Minutes}} {
		if component.value != 0 {
			parts = append(parts, fmt.Sprintf("%d %s", component.value, component.name))
		}
	}
	logger.Infof("Applying time correction: %s", strings.Join(parts, ", "))
}

/**************************************************************************************************
** confirm asks the user to approve the pending operation. Returns true without prompting when
** the --yes flag (or ASSUME_YES) is set. Planning never reaches this point; only execution is
** gated.
**
** @param question - Prompt shown to the user
** @return bool - True when the user answered yes
**************************************************************************************************/
func confirm(question string) bool {
	if assumeYes {
		return true
	}
	fmt.Printf("%s [y/N]: ", question)
	reader := bufio.NewReader(os.Stdin)
	answer, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}
