package cliutil

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

// ErrArgumentCount is returned when a command receives the wrong number of positional arguments.
var ErrArgumentCount = errors.New("wrong number of arguments")

// RangeArgs accepts between min and max positional arguments, naming the
// expected usage on failure.
func RangeArgs(min, max int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) >= min && len(args) <= max {
			return nil
		}
		want := fmt.Sprintf("%d", min)
		if max != min {
			want = fmt.Sprintf("%d or %d", min, max)
			if max-min > 1 {
				want = fmt.Sprintf("%d to %d", min, max)
			}
		}
		return fmt.Errorf("%w: %s expects %s, got %d (usage: %s)", ErrArgumentCount, cmd.Name(), want, len(args), cmd.UseLine())
	}
}

// ExactArgs accepts exactly n positional arguments.
func ExactArgs(n int) cobra.PositionalArgs {
	return RangeArgs(n, n)
}
