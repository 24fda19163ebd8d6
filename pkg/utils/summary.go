// Colorized console output for plan summaries. This is display plumbing for the CLI layer;
// structured logging everywhere else goes through logrus.
package utils

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/fatih/color"
)

var colorGreen = color.New(color.FgGreen).Add(color.Bold).SprintFunc()
var colorYellow = color.New(color.FgYellow).Add(color.Bold).SprintFunc()
var colorCyan = color.New(color.FgCyan).SprintFunc()
var colorMagenta = color.New(color.FgMagenta).Add(color.Bold).SprintFunc()

const summaryTimeLayout = "2006-01-02 15:04:05"

/**************************************************************************************************
** PrintRenameSummary renders a rename plan as an aligned table: one row per planned operation
** plus a skipped-file section. Mirrors the table the interactive flow shows before asking for
** confirmation.
**
** @param plan - The rename plan to display
**************************************************************************************************/
func PrintRenameSummary(plan *TRenamePlan) {
	operation := "rename"
	if plan.Copy() {
		operation = "copy"
	}
	if len(plan.Entries) == 0 {
		fmt.Println(colorYellow("No files to " + operation + "."))
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
		colorCyan("ORIGINAL"), colorMagenta("RAW TIME"), colorGreen("CORRECTED"), colorYellow("TARGET"))
	for _, entry := range plan.Entries {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			entry.Source,
			entry.RawTime.Format(summaryTimeLayout),
			entry.CorrectedTime.Format(summaryTimeLayout),
			entry.Target)
	}
	w.Flush()

	printSkipped(plan.Skipped)
	fmt.Println(colorGreen(fmt.Sprintf("Total files to %s: %d", operation, len(plan.Entries))))
}

/**************************************************************************************************
** PrintSampleSummary renders a sample plan as an aligned table: one row per selected
** representative with its bucket window start.
**
** @param plan - The sample plan to display
**************************************************************************************************/
func PrintSampleSummary(plan *TSamplePlan) {
	if len(plan.Buckets) == 0 {
		fmt.Println(colorYellow("No samples selected."))
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
		colorCyan("BUCKET"), colorMagenta("WINDOW START"), colorGreen("TIMESTAMP"), colorYellow("REPRESENTATIVE"))
	for _, bucket := range plan.Buckets {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n",
			bucket.Index,
			bucket.Start.Format(summaryTimeLayout),
			bucket.Representative.CorrectedTime.Format(summaryTimeLayout),
			bucket.Representative.Path)
	}
	w.Flush()

	printSkipped(plan.Skipped)
	fmt.Println(colorGreen(fmt.Sprintf("Total samples selected: %d (interval %s)",
		len(plan.Buckets), formatInterval(plan.Interval))))
}

/**************************************************************************************************
** PrintFailures renders per-file execution failures after an apply. Failures are informational
** here; the caller already received them in the structured result.
**************************************************************************************************/
func PrintFailures(failures []TFailure) {
	for _, failure := range failures {
		fmt.Println(colorYellow("FAILED"), failure.Path+":", failure.Reason)
	}
}

func printSkipped(skipped []TSkip) {
	for _, skip := range skipped {
		fmt.Println(colorYellow("SKIPPED"), skip.Path+":", skip.Reason)
	}
}

func formatInterval(interval time.Duration) string {
	if interval%time.Minute == 0 {
		return fmt.Sprintf("%dm", int(interval/time.Minute))
	}
	return interval.String()
}

// Pretty function disasemble a variable and display it's struct and values
func Pretty(variable ...interface{}) {
	spew.Config.Indent = "    "
	fmt.Printf("%s", colorYellow("----------------------------------\n"))
	for _, each := range variable {
		spew.Dump(each)
	}
	fmt.Printf("%s", colorYellow("----------------------------------\n"))
}
