package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	m "github.com/mouse-blink/flashqual/internal/model"
)

var viewAllFlag bool

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view",
		Short: "View previously saved qualification reports",
		Long:  "View the latest qualification report saved in the work directory, or every report with --all.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := m.ParseOutputFormat(outputFormatFlag)
			if err != nil {
				return err
			}

			reports, err := reportStore.LoadReports(m.Path(workDirFlag))
			if err != nil {
				return err
			}

			if len(reports) == 0 {
				return fmt.Errorf("no reports found in %s", workDirFlag)
			}

			if !viewAllFlag {
				reports = reports[len(reports)-1:]
			}

			ui, err := newUI(cmd, format, isTTY())
			if err != nil {
				return err
			}

			for _, report := range reports {
				if format == m.FormatPretty {
					cmd.Printf("# %s on %s finished %s\n", report.Path, report.Target, report.Finished.Format("2006-01-02 15:04:05 MST"))
				}

				if err := ui.Report(report.Metadata, report.Outcomes); err != nil {
					return err
				}
			}

			return nil
		},
	}
	cmd.Flags().BoolVarP(&viewAllFlag, "all", "a", false, "show every saved report, oldest first")

	return cmd
}
