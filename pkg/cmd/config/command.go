package config

import (
	"fmt"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/birdayz/flip/pkg/app"
	"github.com/birdayz/flip/pkg/config"
)

// NewCommand returns the "flip config" command with subcommands.
func NewCommand(a *app.App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Handle flip configuration",
	}

	cmd.AddCommand(
		newCurrentProfileCommand(a),
		newUseProfileCommand(a),
		newGetProfilesCommand(a),
		newAddProfileCommand(a),
		newRemoveProfileCommand(a),
		newSelectProfileCommand(a),
		newImportCommand(a),
	)

	return cmd
}

func newCurrentProfileCommand(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "current-profile",
		Short: "Displays the current profile",
		Args:  cobra.ExactArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(a.OutWriter, a.Cfg.CurrentProfile)
		},
	}
}

func newUseProfileCommand(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:               "use-profile [NAME]",
		Short:             "Sets the current profile in the configuration",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: a.ValidProfileArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			if !a.Cfg.HasProfile(name) {
				return fmt.Errorf("profile with name %v not found", name)
			}
			if err := a.Cfg.SetCurrentProfile(name); err != nil {
				return fmt.Errorf("unable to write config: %w", err)
			}
			fmt.Fprintf(a.OutWriter, "Switched to profile \"%v\".\n", name)
			return nil
		},
	}
}

func newGetProfilesCommand(a *app.App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get-profiles",
		Short: "Display profiles in the configuration file",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			w := app.NewTabWriter(a.OutWriter)
			if !a.NoHeaderFlag {
				fmt.Fprintf(w, "  NAME\tCHAR\tWORD\tINPUT\tOUTPUT\t\n")
			}
			for _, profile := range a.Cfg.Profiles {
				marker := "  "
				if profile.Name == a.Cfg.CurrentProfile {
					marker = "* "
				}
				fmt.Fprintf(w, "%s%s\t%q\t%q\t%q\t%q\t\n", marker, profile.Name,
					profile.CharSeparator, profile.WordSeparator, profile.InputSeparator, profile.OutputSeparator)
			}
			w.Flush()
		},
	}
	a.AddNoHeadersFlag(cmd)
	return cmd
}

func newAddProfileCommand(a *app.App) *cobra.Command {
	var p config.Profile

	cmd := &cobra.Command{
		Use:     "add-profile [NAME]",
		Short:   "Add profile",
		Example: `  flip config add-profile sms --word-separator=- --skip-unencodable`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			if a.Cfg.HasProfile(name) {
				return fmt.Errorf("could not add profile: profile with name '%v' exists already", name)
			}

			profile := p
			profile.Name = name
			profile.CharSeparator = app.UnescapeSeparator(profile.CharSeparator)
			profile.WordSeparator = app.UnescapeSeparator(profile.WordSeparator)
			profile.InputSeparator = app.UnescapeSeparator(profile.InputSeparator)
			profile.OutputSeparator = app.UnescapeSeparator(profile.OutputSeparator)
			a.Cfg.UpsertProfile(&profile)

			if a.Cfg.CurrentProfile == "" {
				a.Cfg.CurrentProfile = name
			}
			if err := a.Cfg.Write(); err != nil {
				return fmt.Errorf("unable to write config: %w", err)
			}
			fmt.Fprintln(a.OutWriter, "Added profile.")
			return nil
		},
	}

	cmd.Flags().StringVar(&p.CharSeparator, "char-separator", "", "String between the tokens of a word when decoding")
	cmd.Flags().StringVar(&p.WordSeparator, "word-separator", "", "String between encoded words when decoding")
	cmd.Flags().StringVar(&p.InputSeparator, "input-separator", "", "String between the words of the input when encoding")
	cmd.Flags().StringVar(&p.OutputSeparator, "output-separator", "", "String placed between encoded words when encoding")
	cmd.Flags().BoolVar(&p.SkipUnencodable, "skip-unencodable", false, "Drop characters without a keypad letter when encoding")
	cmd.Flags().BoolVar(&p.Lenient, "lenient", false, "Decode tokens by first digit and length")
	return cmd
}

func newRemoveProfileCommand(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:               "remove-profile [NAME]",
		Short:             "remove profile",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: a.ValidProfileArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			if !a.Cfg.RemoveProfile(name) {
				return fmt.Errorf("could not delete profile: profile with name '%v' does not exist", name)
			}

			if err := a.Cfg.Write(); err != nil {
				return fmt.Errorf("unable to write config: %w", err)
			}
			fmt.Fprintln(a.OutWriter, "Removed profile.")
			return nil
		},
	}
}

func newSelectProfileCommand(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "select-profile",
		Short: "Interactively select a profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(a.Cfg.Profiles) == 0 {
				return fmt.Errorf("no profiles in %v", a.Cfg.Path())
			}

			var profileNames []string
			pos := 0
			for k, profile := range a.Cfg.Profiles {
				profileNames = append(profileNames, profile.Name)
				if profile.Name == a.Cfg.CurrentProfile {
					pos = k
				}
			}

			searcher := func(input string, index int) bool {
				profile := profileNames[index]
				name := strings.ReplaceAll(strings.ToLower(profile), " ", "")
				input = strings.ReplaceAll(strings.ToLower(input), " ", "")
				return strings.Contains(name, input)
			}

			p := promptui.Select{
				Label:     "Select profile",
				Items:     profileNames,
				Searcher:  searcher,
				Size:      10,
				CursorPos: pos,
			}

			_, selected, err := p.Run()
			if err != nil {
				// User cancelled (e.g. Ctrl-C). Not an error.
				return nil
			}

			if err := a.Cfg.SetCurrentProfile(selected); err != nil {
				return fmt.Errorf("unable to write config: %w", err)
			}
			fmt.Fprintf(a.OutWriter, "Switched to profile \"%v\".\n", selected)
			return nil
		},
	}
}

func newImportCommand(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:     "import [FILE]",
		Short:   "Import a profile from a properties file into the config file",
		Example: "  flip config import sms.properties",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			profile, err := config.ImportProperties(args[0])
			if err != nil {
				return fmt.Errorf("failed to import profile: %w", err)
			}

			if a.Cfg.UpsertProfile(profile) {
				fmt.Fprintf(a.OutWriter, "Replaced profile %q\n", profile.Name)
			} else {
				fmt.Fprintf(a.OutWriter, "Added profile %q\n", profile.Name)
			}

			if a.Cfg.CurrentProfile == "" {
				a.Cfg.CurrentProfile = profile.Name
			}
			if err := a.Cfg.Write(); err != nil {
				return fmt.Errorf("failed to write config: %w", err)
			}
			return nil
		},
	}
}
