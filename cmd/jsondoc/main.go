// Command jsondoc is a JSON checker and re-serializer built on the
// jsondoc document model. It reads each input file (stdin when none is
// given), parses it (optionally tolerating comments) and writes the
// compact serialization back out. A schema document can be supplied to
// shape-check every input, and a dot path can be extracted instead of the
// whole document.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/cybergodev/jsondoc"
	"github.com/lmittmann/tint"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := mainImpl(); err != nil {
		fmt.Fprintf(os.Stderr, "jsondoc: %v\n", err)
		os.Exit(1)
	}
}

func mainImpl() error {
	comments := flag.Bool("comments", false, "Accept /* block */ and // line comments in inputs")
	check := flag.Bool("check", false, "Parse and validate only; write no output")
	schemaPath := flag.String("schema", "", "Validate every input against this schema document")
	getPath := flag.String("get", "", "Serialize only the value at this dot path (e.g. user.address.city)")
	output := flag.String("o", "", "Write output to this file instead of stdout")
	logLevel := flag.String("log-level", "warn", "Log level (debug, info, warn, error)")
	flag.Parse()

	level := slog.LevelWarn
	if err := level.UnmarshalText([]byte(*logLevel)); err != nil {
		return fmt.Errorf("invalid -log-level %q", *logLevel)
	}
	logger := slog.New(tint.NewHandler(colorable.NewColorable(os.Stderr), &tint.Options{
		Level:   level,
		NoColor: !isatty.IsTerminal(os.Stderr.Fd()),
	}))
	slog.SetDefault(logger)

	var schema *jsondoc.Value
	if *schemaPath != "" {
		var err error
		if schema, err = jsondoc.ParseFile(*schemaPath); err != nil {
			return fmt.Errorf("schema: %w", err)
		}
	}

	out := io.Writer(os.Stdout)
	if *output != "" && !*check {
		f, err := os.Create(*output)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}

	inputs := flag.Args()
	if len(inputs) == 0 {
		inputs = []string{"-"}
	}
	failed := 0
	for _, name := range inputs {
		if err := processInput(name, schema, *comments, *check, *getPath, out); err != nil {
			slog.Error("input rejected", "file", name, "err", err)
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d inputs failed", failed, len(inputs))
	}
	return nil
}

func processInput(name string, schema *jsondoc.Value, comments, check bool, getPath string, out io.Writer) error {
	doc, err := parseInput(name, comments)
	if err != nil {
		return err
	}
	if schema != nil {
		if err := jsondoc.Validate(schema, doc); err != nil {
			return err
		}
	}
	if getPath != "" {
		if doc = doc.AsObject().DotGet(getPath); doc.Type() == jsondoc.TypeError {
			return fmt.Errorf("path %q not found", getPath)
		}
	}
	if check {
		slog.Debug("input ok", "file", name)
		return nil
	}
	text, err := doc.Serialize()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, text)
	return err
}

func parseInput(name string, comments bool) (*jsondoc.Value, error) {
	if name == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, err
		}
		if comments {
			return jsondoc.ParseWithComments(string(data))
		}
		return jsondoc.Parse(string(data))
	}
	if comments {
		return jsondoc.ParseFileWithComments(name)
	}
	return jsondoc.ParseFile(name)
}
