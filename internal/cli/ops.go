package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/arcs/internal/eval"
)

// NewOpsCommand creates the ops command.
func NewOpsCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "ops",
		Short:         "List the available operations",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := newFormatter(rootOpts, cmd)
			ops := eval.Ops()
			if rootOpts.Format == formatJSON {
				return formatter.Success(ops)
			}
			for _, op := range ops {
				params := make([]string, len(op.Params))
				for i, p := range op.Params {
					params[i] = p.Name + ":" + string(p.Kind)
					if p.Optional {
						params[i] += "?"
					}
				}
				formatter.Textf("%-28s %-36s -> %-8s %s", op.Name, strings.Join(params, " "), op.Result, op.Doc)
			}
			return nil
		},
	}
}
