package cmd

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/flashqual/internal/domain"
	m "github.com/mouse-blink/flashqual/internal/model"
)

func newLayoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "layout <size>",
		Short: "Print the layout file used for a chip size",
		Long: `Print the BOTTOM_QUAD/BOTTOM_HALF/TOP_QUAD/TOP_HALF layout file the
qualification run writes for a chip of the given size. The size accepts
decimal, 0x hex and 0o octal notation.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			size, err := strconv.ParseInt(args[0], 0, 64)
			if err != nil {
				return fmt.Errorf("invalid chip size %q: %w", args[0], err)
			}

			layout, err := domain.PlanLayout(size)
			if err != nil {
				return err
			}

			var text bytes.Buffer
			if _, err := layout.WriteTo(&text); err != nil {
				return err
			}

			ui, err := newUI(cmd, m.FormatPretty, isTTY())
			if err != nil {
				return err
			}

			ui.DisplayLayout(size, text.String())

			return nil
		},
	}
}
