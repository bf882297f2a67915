package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/birdayz/flip/pkg/app"
	"github.com/birdayz/flip/pkg/cmd/completion"
	flipconfig "github.com/birdayz/flip/pkg/cmd/config"
	"github.com/birdayz/flip/pkg/cmd/decode"
	"github.com/birdayz/flip/pkg/cmd/encode"
	"github.com/birdayz/flip/pkg/cmd/table"
)

// Execute is the single entry point for the CLI.
func Execute(version, commit string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return NewRootCommand(app.New(), version, commit).ExecuteContext(ctx)
}

// NewRootCommand builds the command tree around a.
func NewRootCommand(a *app.App, version, commit string) *cobra.Command {
	root := &cobra.Command{
		Use:          "flip",
		Short:        "Convert text to and from flipphone keypad presses",
		Version:      fmt.Sprintf("%s (%s)", version, commit),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			a.SetIO(cmd)
			return a.InitConfig()
		},
	}

	root.PersistentFlags().StringVar(&a.CfgFile, "config", "", "config file (default is $FLIP_CONFIG or $HOME/.flip/config)")
	root.PersistentFlags().StringVarP(&a.ProfileOverride, "profile", "p", "", "set a temporary current profile")
	root.PersistentFlags().BoolVarP(&a.Verbose, "verbose", "v", false, "log debug output to stderr")

	if err := root.RegisterFlagCompletionFunc("profile", a.ValidProfileArgs); err != nil {
		panic(fmt.Sprintf("Failed to register flag completion: %v", err))
	}

	root.AddCommand(
		encode.NewCommand(a),
		decode.NewCommand(a),
		table.NewCommand(a),
		flipconfig.NewCommand(a),
		completion.NewCommand(root, a),
	)

	a.Root = root
	return root
}
