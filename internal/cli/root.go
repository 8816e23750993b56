// Package cli implements the amzshort command line tool.
package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tsc11539/amazon-shortener/internal/canonical"
	"github.com/tsc11539/amazon-shortener/internal/config"
)

// ErrNoMatch is returned when some argument has no /dp/ segment.
var ErrNoMatch = errors.New("no product segment found")

// Run executes the CLI with args.
func Run(args []string, vars config.Vars) error {
	root := newRootCmd(vars)
	root.SetArgs(args)
	return root.Execute()
}

func newRootCmd(vars config.Vars) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "amzshort",
		Short:         "Shorten Amazon Japan product URLs",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(
		newShortenCmd(),
		newVersionCmd(vars),
	)
	return cmd
}

type shortenOptions struct {
	decode bool
	host   string
}

func newShortenCmd() *cobra.Command {
	opts := shortenOptions{}
	cmd := &cobra.Command{
		Use:   "shorten <url>...",
		Short: "Print the canonical /dp/ URL for each argument",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShorten(cmd, opts, args)
		},
	}
	fs := cmd.Flags()
	fs.BoolVarP(&opts.decode, "decode", "d", false, "percent-decode arguments first")
	fs.StringVar(&opts.host, "host", canonical.DefaultHost, "redirect host prefix")
	return cmd
}

func runShorten(cmd *cobra.Command, opts shortenOptions, args []string) error {
	s := canonical.NewShortener(opts.host)
	missed := 0
	for _, arg := range args {
		input := arg
		if opts.decode {
			decoded, err := canonical.Decode(arg)
			if err != nil {
				return err
			}
			input = decoded
		}

		target, ok, err := s.Resolve(input)
		if err != nil {
			return err
		}
		if !ok {
			missed++
			fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", arg, ErrNoMatch)
			continue
		}
		fmt.Fprintln(cmd.OutOrStdout(), target.String())
	}

	if missed > 0 {
		return fmt.Errorf("%d of %d: %w", missed, len(args), ErrNoMatch)
	}
	return nil
}

func newVersionCmd(vars config.Vars) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print " + config.VersionVar,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			version, err := vars.Var(config.VersionVar)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), version)
			return nil
		},
	}
}
