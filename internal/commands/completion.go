package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/Soumodip04/MindScope-sub001/internal/core/scenario"
)

// ScriptCompleter returns a ShellCompleteFunc that suggests script names from
// the configured scenario library as positional completions.
//
// When the user's last typed argument starts with "-", it falls back to the
// default flag completion behavior.
func ScriptCompleter(flags *Flags) cli.ShellCompleteFunc {
	return func(ctx context.Context, cmd *cli.Command) {
		// Delegate to default flag completion when typing a flag
		if args := cmd.Args(); args != nil && args.Present() {
			last := args.Slice()[args.Len()-1]
			if len(last) > 0 && last[0] == '-' {
				cli.DefaultCompleteWithFlags(ctx, cmd)
				return
			}
		}

		scripts, err := scenario.Discover(flags.cfg().Scenarios.Dir)
		if err != nil {
			return
		}

		w := cmd.Root().Writer
		for _, s := range scripts {
			_, _ = fmt.Fprintln(w, scenario.Name(s))
		}
	}
}
