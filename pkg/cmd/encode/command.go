package encode

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/birdayz/flip/pkg/app"
	"github.com/birdayz/flip/pkg/keypad"
)

// NewCommand returns the "flip encode" command.
func NewCommand(a *app.App) *cobra.Command {
	var (
		inputSepFlag  string
		outputSepFlag string
		skipFlag      bool
		flags         app.TransformFlags
	)

	cmd := &cobra.Command{
		Use:   "encode [TEXT...]",
		Short: "Encode letters into keypad presses",
		Long:  "Encode letters into keypad presses. Arguments are joined with a space and encoded as one phrase; without arguments every line of stdin is encoded.",
		Example: `  flip encode I AM
  echo "as black as night" | flip encode
  flip encode --output-separator '\n' you are an absolute poohead
  flip encode --skip-unencodable "hello, world!"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := a.Settings()
			if cmd.Flags().Changed("input-separator") {
				s.InputSeparator = app.UnescapeSeparator(inputSepFlag)
				if s.InputSeparator == "" {
					return fmt.Errorf("input-separator: %w", keypad.ErrEmptySeparator)
				}
			}
			if cmd.Flags().Changed("output-separator") {
				s.OutputSeparator = app.UnescapeSeparator(outputSepFlag)
			}
			if cmd.Flags().Changed("skip-unencodable") {
				s.SkipUnencodable = skipFlag
			}

			codec := keypad.NewCodec(s)
			s = codec.Settings()
			a.Log.WithFields(logrus.Fields{
				"input-separator":  s.InputSeparator,
				"output-separator": s.OutputSeparator,
				"skip-unencodable": s.SkipUnencodable,
			}).Debug("encoding")

			return a.RunEncode(cmd.Context(), args, &flags, codec)
		},
	}

	cmd.Flags().StringVar(&inputSepFlag, "input-separator", keypad.DefaultInputSeparator, "String between the words of the input")
	cmd.Flags().StringVar(&outputSepFlag, "output-separator", keypad.DefaultOutputSeparator, "String placed between encoded words. Escapes such as \\n are interpreted.")
	cmd.Flags().BoolVar(&skipFlag, "skip-unencodable", false, "Drop characters without a keypad letter instead of failing")
	a.AddTransformFlags(cmd, &flags)

	return cmd
}
