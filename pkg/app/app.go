package app

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"text/tabwriter"

	"github.com/hokaccha/go-prettyjson"
	"github.com/joho/godotenv"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/birdayz/flip/pkg/config"
	"github.com/birdayz/flip/pkg/keypad"
)

// EnvProfile selects the active profile when --profile is not given.
const EnvProfile = "FLIP_PROFILE"

// App holds all shared mutable state for the CLI. It is created once per
// invocation and threaded into every command package.
type App struct {
	// I/O
	OutWriter    io.Writer
	ErrWriter    io.Writer
	InReader     io.Reader
	ColorableOut io.Writer

	// Config state
	Cfg             config.Config
	CurrentProfile  *config.Profile
	CfgFile         string
	ProfileOverride string
	EnvFile         string

	Log     *logrus.Logger
	Verbose bool

	// Display
	JSONFmt      *prettyjson.Formatter
	NoHeaderFlag bool

	// Root command reference (for completion generation)
	Root *cobra.Command
}

// New creates an App with sane defaults.
func New() *App {
	jsonfmt := prettyjson.NewFormatter()
	jsonfmt.DisabledColor = !isatty.IsTerminal(os.Stdout.Fd())

	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetLevel(logrus.WarnLevel)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	return &App{
		OutWriter:    os.Stdout,
		ErrWriter:    os.Stderr,
		InReader:     os.Stdin,
		ColorableOut: colorable.NewColorableStdout(),
		EnvFile:      ".env",
		Log:          log,
		JSONFmt:      jsonfmt,
	}
}

// SetIO points the App at the writers and reader of cmd. Output that is not
// the process stdout is never coloured.
func (a *App) SetIO(cmd *cobra.Command) {
	a.OutWriter = cmd.OutOrStdout()
	a.ErrWriter = cmd.ErrOrStderr()
	a.InReader = cmd.InOrStdin()

	if a.OutWriter != os.Stdout {
		a.ColorableOut = a.OutWriter
		a.JSONFmt.DisabledColor = true
	}

	a.Log.SetOutput(a.ErrWriter)
	if a.Verbose {
		a.Log.SetLevel(logrus.DebugLevel)
	}
}

// InitConfig loads the optional .env file, reads the config file and
// resolves the active profile. Called by PersistentPreRunE on the root
// command.
func (a *App) InitConfig() error {
	if a.EnvFile != "" {
		if err := godotenv.Load(a.EnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("unable to load %v: %w", a.EnvFile, err)
		}
	}

	var err error
	a.Cfg, err = config.ReadConfig(a.CfgFile)
	if err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	override := a.ProfileOverride
	if override == "" {
		override = os.Getenv(EnvProfile)
	}
	a.Cfg.ProfileOverride = override

	a.CurrentProfile = a.Cfg.ActiveProfile()
	if a.CurrentProfile == nil && override != "" {
		return fmt.Errorf("profile %q not found in %v", override, a.Cfg.Path())
	}

	a.Log.WithFields(logrus.Fields{
		"config":  a.Cfg.Path(),
		"profile": a.profileName(),
	}).Debug("loaded config")
	return nil
}

func (a *App) profileName() string {
	if a.CurrentProfile == nil {
		return ""
	}
	return a.CurrentProfile.Name
}

// Settings returns the codec settings of the active profile. Commands
// apply their own flags on top.
func (a *App) Settings() keypad.Settings {
	return a.CurrentProfile.Settings()
}

// AddNoHeadersFlag installs --no-headers on cmd.
func (a *App) AddNoHeadersFlag(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&a.NoHeaderFlag, "no-headers", false, "Hide table headers")
}

// ValidProfileArgs provides shell completion for profile names.
func (a *App) ValidProfileArgs(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	// Completion runs without the root pre-run hook.
	if a.Cfg.Path() == "" {
		cfg, err := config.ReadConfig(a.CfgFile)
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}
		a.Cfg = cfg
	}
	profiles := make([]string, 0, len(a.Cfg.Profiles))
	for _, profile := range a.Cfg.Profiles {
		profiles = append(profiles, profile.Name)
	}
	return profiles, cobra.ShellCompDirectiveNoFileComp
}

const (
	TabwriterMinWidth = 6
	TabwriterWidth    = 4
	TabwriterPadding  = 3
	TabwriterPadChar  = ' '
	TabwriterFlags    = 0
)

// NewTabWriter creates a standard tabwriter for CLI output.
func NewTabWriter(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, TabwriterMinWidth, TabwriterWidth, TabwriterPadding, TabwriterPadChar, TabwriterFlags)
}
