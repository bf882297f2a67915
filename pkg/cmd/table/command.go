package table

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/birdayz/flip/pkg/app"
	"github.com/birdayz/flip/pkg/keypad"
)

// NewCommand returns the "flip table" command.
func NewCommand(a *app.App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "table",
		Short: "Print the keypad layout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := app.NewTabWriter(a.OutWriter)
			if !a.NoHeaderFlag {
				fmt.Fprintf(w, "KEY\tLETTERS\tPRESSES\t\n")
			}
			for _, k := range keypad.Keys() {
				presses := make([]string, 0, len(k.Letters))
				for _, l := range k.Letters {
					token, err := keypad.EncodeLetter(l)
					if err != nil {
						return err
					}
					presses = append(presses, token)
				}
				fmt.Fprintf(w, "%c\t%v\t%v\t\n", k.Digit, string(k.Letters), strings.Join(presses, " "))
			}
			return w.Flush()
		},
	}
	a.AddNoHeadersFlag(cmd)
	return cmd
}
