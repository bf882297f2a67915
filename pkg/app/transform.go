package app

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/birdayz/flip/pkg/encoding"
)

// TransformFlags are shared by the encode and decode commands.
type TransformFlags struct {
	InputMode       InputMode
	LineLengthLimit int
	Template        bool
	Output          OutputFormat
	ContinueOnError bool
}

// AddTransformFlags installs the input and output flags on cmd.
func (a *App) AddTransformFlags(cmd *cobra.Command, f *TransformFlags) {
	f.InputMode = InputModeLine
	f.Output = OutputFormatDefault

	cmd.Flags().Var(&f.InputMode, "input-mode", "Scanning input mode for stdin: [line|full]")
	cmd.Flags().IntVar(&f.LineLengthLimit, "line-length-limit", 0, "line length limit in line input mode")
	cmd.Flags().BoolVar(&f.Template, "template", false, "run input through go template engine")
	cmd.Flags().VarP(&f.Output, "output", "o", "Set output format: default, json, json-each-row, msgpack")
	cmd.Flags().BoolVar(&f.ContinueOnError, "continue-on-error", false, "Report invalid records and keep going")

	if err := cmd.RegisterFlagCompletionFunc("output", CompleteOutputFormat); err != nil {
		panic(fmt.Sprintf("Failed to register flag completion: %v", err))
	}
	if err := cmd.RegisterFlagCompletionFunc("input-mode", CompleteInputMode); err != nil {
		panic(fmt.Sprintf("Failed to register flag completion: %v", err))
	}
}

// RunEncode encodes the command arguments joined by a space, or every
// record read from stdin when there are no arguments, and prints the results.
func (a *App) RunEncode(ctx context.Context, args []string, f *TransformFlags, enc encoding.Encoder) error {
	return a.runTransform(ctx, args, f, enc.Encode)
}

// RunDecode is the decoding counterpart of RunEncode.
func (a *App) RunDecode(ctx context.Context, args []string, f *TransformFlags, dec encoding.Decoder) error {
	return a.runTransform(ctx, args, f, dec.Decode)
}

func (a *App) runTransform(ctx context.Context, args []string, f *TransformFlags, fn func([]byte) ([]byte, error)) error {
	// Stops the reader when a record error or cancellation ends the loop
	// before out is drained.
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	out := make(chan []byte, 1)
	errCh := make(chan error, 1)
	switch {
	case len(args) > 0:
		out <- []byte(strings.Join(args, " "))
		close(out)
	case f.InputMode == InputModeFull:
		go ReadFull(ctx, a.InReader, out, errCh)
	default:
		go ReadLines(ctx, a.InReader, out, errCh, f.LineLengthLimit)
	}

	var i int
	for data := range out {
		if err := ctx.Err(); err != nil {
			return err
		}

		if f.Template {
			rendered, err := RenderTemplate(data, i)
			if err != nil {
				return err
			}
			data = rendered
		}

		rec := Record{Index: i, Input: string(data)}
		output, err := fn(data)
		if err != nil {
			if !f.ContinueOnError {
				if len(args) > 0 {
					return err
				}
				return fmt.Errorf("record %d: %w", i, err)
			}
			a.Log.WithError(err).WithField("record", i).Warn("skipping invalid record")
			rec.Error = err.Error()
		} else {
			rec.Output = string(output)
		}

		if err := a.WriteRecord(rec, f.Output); err != nil {
			return err
		}
		i++
	}

	select {
	case err := <-errCh:
		return err
	default:
		return nil
	}
}

// UnescapeSeparator interprets Go escape sequences such as \n or \t in a
// separator given on the command line. Values that do not unquote are used
// as is.
func UnescapeSeparator(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}
	u, err := strconv.Unquote(`"` + strings.ReplaceAll(s, `"`, `\"`) + `"`)
	if err != nil {
		return s
	}
	return u
}
