// Command dynbindgen generates optional dynbind bindings, and matching cgo
// declarations, from a declaration file.
//
// Typical use is a go:generate line next to the declarations:
//
//	//go:generate go run github.com/crgimenes/dynbind/cmd/dynbindgen -in dpi_decls.go
package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/crgimenes/dynbind/internal/bindgen"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "dynbindgen: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	var (
		in        string
		outPath   string
		staticOut string
		pkg       string
		check     bool
		noStatic  bool
	)
	flags := flag.NewFlagSet("dynbindgen", flag.ContinueOnError)
	flags.StringVar(&in, "in", "", "declaration file (.go or .hcl)")
	flags.StringVar(&outPath, "out", "", "dynamic bindings output (default z<name>_dynbind.go next to -in)")
	flags.StringVar(&staticOut, "static-out", "", "static declarations output (default z<name>_dynbind_static.go next to -in)")
	flags.StringVar(&pkg, "pkg", "", "package name (defaults to the one in the declaration file)")
	flags.StringVar(&cfg.Prefix, "prefix", cfg.Prefix, "binding variable prefix")
	flags.StringVar(&cfg.StaticTag, "static-tag", cfg.StaticTag, "build tag guarding the static file")
	flags.BoolVar(&check, "check", false, "fail if the outputs are missing or out of date instead of writing them")
	flags.BoolVar(&noStatic, "no-static", false, "do not emit the static declarations file")
	flags.SetOutput(stderr)
	if err := flags.Parse(args); err != nil {
		return err
	}
	if in == "" {
		flags.Usage()
		return errors.New("-in is required")
	}

	log, err := newLogger(cfg.LogLevel, cfg.LogFormat, stderr)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	dynName, staticName := bindgen.OutputNames(in)
	if outPath == "" {
		outPath = filepath.Join(filepath.Dir(in), dynName)
	}
	if staticOut == "" {
		staticOut = filepath.Join(filepath.Dir(in), staticName)
	}

	batch, err := bindgen.ParseFile(in)
	if err != nil {
		return err
	}
	if pkg != "" {
		batch.Package = pkg
	}
	log.Debug("declarations parsed",
		zap.String("source", in),
		zap.String("package", batch.Package),
		zap.Int("functions", len(batch.Functions)))

	out, err := bindgen.Generate(batch, bindgen.Options{
		Prefix:    cfg.Prefix,
		StaticTag: cfg.StaticTag,
	})
	if err != nil {
		for _, e := range multierr.Errors(err) {
			log.Error("invalid declaration", zap.Error(e))
		}
		return fmt.Errorf("generate %s: %d problem(s)", in, len(multierr.Errors(err)))
	}

	files := []outputFile{{path: outPath, data: out.Dynamic}}
	if !noStatic {
		files = append(files, outputFile{path: staticOut, data: out.Static})
	}

	for _, f := range files {
		if check {
			if err := checkOutput(f); err != nil {
				return err
			}
			continue
		}
		if err := writeOutput(f); err != nil {
			return err
		}
		fmt.Fprintln(stdout, f.path)
	}

	log.Info("bindings generated",
		zap.String("source", in),
		zap.Strings("libraries", out.Libraries),
		zap.Int("bindings", len(out.Bindings)),
		zap.String("digest", out.Digest),
		zap.Bool("check", check))
	return nil
}

type outputFile struct {
	path string
	data []byte
}

func writeOutput(f outputFile) error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	if err := os.WriteFile(f.path, f.data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", f.path, err)
	}
	return nil
}

func checkOutput(f outputFile) error {
	current, err := os.ReadFile(f.path)
	if err != nil {
		return fmt.Errorf("check %s: %w", f.path, err)
	}
	if !bytes.Equal(current, f.data) {
		return fmt.Errorf("%s is out of date; rerun go generate", f.path)
	}
	return nil
}
