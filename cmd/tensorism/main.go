// Package main provides the tensorism CLI.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/born-ml/tensorism/ricci"
)

const version = "v0.1.0-dev"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		usage(stdout)
		return 0
	}

	switch args[0] {
	case "version":
		fmt.Fprintf(stdout, "tensorism %s\n", version)
		return 0
	case "eval":
		if err := evalCommand(args[1:], stdout, stderr); err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return 1
		}
		return 0
	default:
		fmt.Fprintf(stderr, "unknown command %q\n\n", args[0])
		usage(stderr)
		return 2
	}
}

func usage(w io.Writer) {
	fmt.Fprintf(w, "tensorism %s - index notation over dense tensors\n\n", version)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  version              Show version")
	fmt.Fprintln(w, "  eval -f doc.yaml     Evaluate a stock formula")
	fmt.Fprintf(w, "\nFormulas: %s\n", strings.Join(formulaNames(), ", "))
}

func evalCommand(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("eval", flag.ContinueOnError)
	fs.SetOutput(stderr)
	file := fs.String("f", "", "YAML document to evaluate (- for stdin)")
	verbose := fs.Bool("v", false, "Log resolution and evaluation details")
	parallel := fs.Bool("parallel", false, "Evaluate result elements in parallel")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *file == "" {
		return fmt.Errorf("missing -f")
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	var in io.Reader = os.Stdin
	if *file != "-" {
		f, err := os.Open(*file)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	doc, err := ReadDocument(in)
	if err != nil {
		return err
	}
	logger.Info("evaluating", "formula", doc.Formula, "tensors", doc.Names())

	opts := []ricci.Option{ricci.WithLogger(logger)}
	if *parallel {
		opts = append(opts, ricci.WithParallel(ricci.DefaultParallelConfig()))
	}
	out, err := Evaluate(doc, opts...)
	if err != nil {
		return err
	}
	fmt.Fprintln(stdout, out.String())
	return nil
}
