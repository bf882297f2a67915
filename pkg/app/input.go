package app

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"text/template"

	"github.com/Masterminds/sprig/v3"
)

// ReadLines sends every line of reader to out, without its line ending,
// then closes out. A scan error is sent to errCh before out is closed.
// Reading stops early once ctx is done.
func ReadLines(ctx context.Context, reader io.Reader, out chan<- []byte, errCh chan<- error, bufferSize int) {
	defer close(out)
	scanner := bufio.NewScanner(reader)
	if bufferSize > 0 {
		scanner.Buffer(make([]byte, bufferSize), bufferSize)
	}
	for scanner.Scan() {
		select {
		case out <- bytes.TrimSuffix(bytes.Clone(scanner.Bytes()), []byte("\r")):
		case <-ctx.Done():
			return
		}
	}
	if err := scanner.Err(); err != nil {
		errCh <- fmt.Errorf("scanning input failed: %w", err)
	}
}

// ReadFull sends all of reader as a single record. One trailing line
// ending is dropped.
func ReadFull(ctx context.Context, reader io.Reader, out chan<- []byte, errCh chan<- error) {
	defer close(out)
	data, err := io.ReadAll(reader)
	if err != nil {
		errCh <- fmt.Errorf("unable to read data: %w", err)
		return
	}
	data = bytes.TrimSuffix(data, []byte("\n"))
	data = bytes.TrimSuffix(data, []byte("\r"))
	select {
	case out <- data:
	case <-ctx.Done():
	}
}

// RenderTemplate runs data through the go template engine with the sprig
// function map. The record index is available as {{ .i }}.
func RenderTemplate(data []byte, i int) ([]byte, error) {
	tpl, err := template.New("flip").Funcs(sprig.HermeticTxtFuncMap()).Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse go template: %w", err)
	}

	buf := bytes.NewBuffer(nil)
	if err := tpl.Execute(buf, map[string]any{"i": i}); err != nil {
		return nil, fmt.Errorf("failed to execute go template: %w", err)
	}
	return buf.Bytes(), nil
}
