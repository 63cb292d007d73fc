package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/fixgen/internal/core/domain"
)

func (c *CLI) newGenerateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   domain.GoalName + " [targets...]",
		Short: "Discover, resolve and write test lockfile fixtures",
		Long: "Collects lockfile fixture declarations from the selected test targets, " +
			"resolves each requirement set through the configured resolver and writes " +
			"the header-stamped lockfiles next to their tests.",
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// No targets is a valid, empty run.
			return c.app.Generate(cmd.Context(), args)
		},
	}
}
