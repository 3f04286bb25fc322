package cmd

import (
	"fmt"

	"github.com/huangsam/maturity/core"
	"github.com/huangsam/maturity/internal/contract"
	"github.com/spf13/cobra"
)

// runReport returns the Run function of a report command.
func runReport(name string, execute core.ExecutorFunc) func(*cobra.Command, []string) {
	return func(_ *cobra.Command, _ []string) {
		if err := execute(rootCtx, cfg, historyManager); err != nil {
			contract.LogFatal(fmt.Sprintf("Cannot run %s", name), err)
		}
	}
}

// gapsCmd shows the gap of every question.
var gapsCmd = &cobra.Command{
	Use:   "gaps <workbook>",
	Short: "Show the gap between current and target maturity per question.",
	Long: `Score the current and target implementation level of every assessment question
and show the gap between them with the action it calls for.

Gaps are bucketed into:
- none: the target is reached
- limited: one step away
- significant: two steps away
- extensive: three steps away

Examples:
  # Show every question gap
  maturity gaps assessment.xlsx

  # Only the questions needing extensive action in one dimension
  maturity gaps assessment.xlsx --bucket extensive --dimension "People & Culture"

  # Export for a spreadsheet
  maturity gaps assessment.xlsx --output csv --output-file gaps.csv`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	Run:     runReport("gaps", core.ExecuteGaps),
}

// goalsCmd lists the goal columns of the Overview sheet.
var goalsCmd = &cobra.Command{
	Use:   "goals <workbook>",
	Short: "List the goal columns detected in the Overview sheet.",
	Long: `Detect the goal columns of the Overview sheet and show which ones are selected.

Goal columns sit between the indicator description columns and Total Utility.
Blank, placeholder ("Goal 2") and empty columns are skipped.

Examples:
  # Show candidate and selected goals
  maturity goals assessment.xlsx

  # Check a selection before ranking
  maturity goals assessment.xlsx --goals Efficiency,Resilience`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	Run:     runReport("goals", core.ExecuteGoals),
}

// indicatorsCmd summarizes each indicator.
var indicatorsCmd = &cobra.Command{
	Use:   "indicators <workbook>",
	Short: "Show utility, maturity gap and impact per indicator.",
	Long: `Aggregate the Overview sheet per indicator for the selected goals.

Shows:
- Total utility (sum of the selected goal weights)
- Maturity gap
- Total impact
- Whether the indicator serves at least one selected goal

Examples:
  # Weigh utility with every detected goal
  maturity indicators assessment.xlsx

  # Use the precomputed Total Utility column
  maturity indicators assessment.xlsx --no-goals`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	Run:     runReport("indicators", core.ExecuteIndicators),
}

// prioritiesCmd ranks the measures to implement next.
var prioritiesCmd = &cobra.Command{
	Use:   "priorities <workbook>",
	Short: "Rank the measures to implement next.",
	Long: `Rank the questions with an open gap by the total impact of their indicator.

Only indicators that serve a selected goal and have a positive impact are kept.
Ties keep the question order.

Examples:
  # Top ten measures for two goals
  maturity priorities assessment.xlsx --goals Efficiency,Resilience --limit 10

  # Write priorities.xlsx for the steering committee
  maturity priorities assessment.xlsx --output xlsx --output-file priorities.xlsx`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	Run:     runReport("priorities", core.ExecutePriorities),
}

// questionsCmd lists the assessment questions.
var questionsCmd = &cobra.Command{
	Use:   "questions <workbook>",
	Short: "List the assessment questions in number order.",
	Long: `List the assessment questions ordered by number, with their level and responses.

Examples:
  # Every question
  maturity questions assessment.xlsx

  # The questions of one indicator
  maturity questions assessment.xlsx --indicator "Data Quality"`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	Run:     runReport("questions", core.ExecuteQuestions),
}

// chartsCmd renders the three charts as PNG files.
var chartsCmd = &cobra.Command{
	Use:   "charts <workbook>",
	Short: "Render the maturity, gap and alignment charts as PNG.",
	Long: `Render the dashboard charts into a directory:
- maturity_results.png: current responses per question and level
- gap_analysis.png: action buckets per question and level
- alignment_scatter.png: indicators by total utility and maturity gap

Response filters blank cells of the maturity chart and bucket filters hide
cells of the gap chart, so every ring keeps its shape.

Examples:
  # Write the charts next to the workbook
  maturity charts assessment.xlsx --out-dir reports

  # Bigger images, only the selected goals on the scatter
  maturity charts assessment.xlsx --chart-width 16 --chart-height 16 --goals Efficiency`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	Run:     runReport("charts", core.ExecuteCharts),
}
