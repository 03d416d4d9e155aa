package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/flashqual/internal/domain"
	m "github.com/mouse-blink/flashqual/internal/model"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List qualification tests and targets",
		Long:  "List the qualification tests in run order and the targets they can address. Test names are accepted case insensitively as filters by the root command.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.Println("Tests:")

			for _, c := range domain.QualificationCases() {
				if c.Expected() == m.Pass {
					cmd.Printf("  %s\n", c.Name())
				} else {
					cmd.Printf("  %s (expected %s)\n", c.Name(), c.Expected())
				}
			}

			cmd.Println("Targets:")

			for _, t := range m.Targets {
				cmd.Printf("  %-9s -p %s\n", t, t.ProgrammerArg())
			}

			return nil
		},
	}
}
