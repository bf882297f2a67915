package app

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vmihailenco/msgpack/v5"
)

// OutputFormat controls how transformed records are printed.
type OutputFormat string

const (
	OutputFormatDefault     OutputFormat = "default"
	OutputFormatJSON        OutputFormat = "json"
	OutputFormatJSONEachRow OutputFormat = "json-each-row"
	OutputFormatMsgPack     OutputFormat = "msgpack"
)

func (e *OutputFormat) String() string {
	return string(*e)
}

func (e *OutputFormat) Set(v string) error {
	switch v {
	case "default", "json", "json-each-row", "msgpack":
		*e = OutputFormat(v)
		return nil
	default:
		return fmt.Errorf("must be one of: default, json, json-each-row, msgpack")
	}
}

func (e *OutputFormat) Type() string {
	return "OutputFormat"
}

// CompleteOutputFormat provides shell completion for --output.
func CompleteOutputFormat(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	return []string{"default", "json", "json-each-row", "msgpack"}, cobra.ShellCompDirectiveNoFileComp
}

// InputMode controls how stdin is split into records.
type InputMode string

const (
	InputModeLine InputMode = "line"
	InputModeFull InputMode = "full"
)

func (e *InputMode) String() string {
	return string(*e)
}

func (e *InputMode) Set(v string) error {
	switch v {
	case "line", "full":
		*e = InputMode(v)
		return nil
	default:
		return fmt.Errorf("must be one of: line, full")
	}
}

func (e *InputMode) Type() string {
	return "InputMode"
}

// CompleteInputMode provides shell completion for --input-mode.
func CompleteInputMode(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	return []string{"line", "full"}, cobra.ShellCompDirectiveNoFileComp
}

// Record is one transformed input. It is the wire format of the json,
// json-each-row and msgpack outputs.
type Record struct {
	Index  int    `json:"index" msgpack:"index"`
	Input  string `json:"input" msgpack:"input"`
	Output string `json:"output" msgpack:"output"`
	Error  string `json:"error,omitempty" msgpack:"error,omitempty"`
}

// WriteRecord prints rec in the given format. The default format prints
// only the output and nothing for failed records.
func (a *App) WriteRecord(rec Record, format OutputFormat) error {
	switch format {
	case OutputFormatJSON:
		b, err := a.JSONFmt.Marshal(rec)
		if err != nil {
			return fmt.Errorf("unable to format record: %w", err)
		}
		fmt.Fprintln(a.ColorableOut, string(b))
	case OutputFormatJSONEachRow:
		b, err := json.Marshal(rec)
		if err != nil {
			return fmt.Errorf("unable to marshal record: %w", err)
		}
		fmt.Fprintln(a.OutWriter, string(b))
	case OutputFormatMsgPack:
		if err := msgpack.NewEncoder(a.OutWriter).Encode(&rec); err != nil {
			return fmt.Errorf("unable to encode record: %w", err)
		}
	default:
		if rec.Error != "" {
			return nil
		}
		fmt.Fprintln(a.OutWriter, rec.Output)
	}
	return nil
}
