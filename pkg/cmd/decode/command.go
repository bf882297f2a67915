package decode

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/birdayz/flip/pkg/app"
	"github.com/birdayz/flip/pkg/keypad"
)

// NewCommand returns the "flip decode" command.
func NewCommand(a *app.App) *cobra.Command {
	var (
		charSepFlag string
		wordSepFlag string
		lenientFlag bool
		flags       app.TransformFlags
	)

	cmd := &cobra.Command{
		Use:   "decode [CODE...]",
		Short: "Decode keypad presses into letters",
		Long:  "Decode keypad presses into letters. Arguments are joined with a space and decoded as one record; without arguments every line of stdin is decoded. Without a word separator the whole record is a single word.",
		Example: `  flip decode 444 2 6
  flip decode --word-separator=- "444-2 6"
  printf '999 666 88\n2 777 33\n' | flip decode --input-mode full --word-separator '\n'`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := a.Settings()
			if cmd.Flags().Changed("char-separator") {
				s.CharSeparator = app.UnescapeSeparator(charSepFlag)
				if s.CharSeparator == "" {
					return fmt.Errorf("char-separator: %w", keypad.ErrEmptySeparator)
				}
			}
			if cmd.Flags().Changed("word-separator") {
				s.WordSeparator = app.UnescapeSeparator(wordSepFlag)
			}
			if cmd.Flags().Changed("lenient") {
				s.Lenient = lenientFlag
			}

			codec := keypad.NewCodec(s)
			s = codec.Settings()
			a.Log.WithFields(logrus.Fields{
				"char-separator": s.CharSeparator,
				"word-separator": s.WordSeparator,
				"lenient":        s.Lenient,
			}).Debug("decoding")

			return a.RunDecode(cmd.Context(), args, &flags, codec)
		},
	}

	cmd.Flags().StringVar(&charSepFlag, "char-separator", keypad.DefaultCharSeparator, "String between the tokens of a word")
	cmd.Flags().StringVar(&wordSepFlag, "word-separator", "", "String between encoded words. Empty decodes the input as one word.")
	cmd.Flags().BoolVar(&lenientFlag, "lenient", false, "Decode tokens by first digit and length without checking the remaining digits")
	a.AddTransformFlags(cmd, &flags)

	return cmd
}
