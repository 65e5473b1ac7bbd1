// Command rulelogic evaluates a JSON rule file against a JSON data file
// and prints the result.
//
//	rulelogic -rule rule.json -data data.json
//	rulelogic -rule rule.json -data data.json -pretty
//	cat data.json | rulelogic -rule rule.json
//
// With -data omitted (or "-"), data is read from stdin.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/sandrolain/rulelogic"
	"github.com/sandrolain/rulelogic/pkg/value"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("rulelogic", flag.ContinueOnError)
	fs.SetOutput(stderr)

	rulePath := fs.String("rule", "", "path to a JSON rule file (required)")
	dataPath := fs.String("data", "-", "path to a JSON data file, or - for stdin")
	pretty := fs.Bool("pretty", false, "pretty-print the result")
	timeout := fs.Duration("timeout", 30*time.Second, "evaluation timeout")
	maxDepth := fs.Int("max-depth", 0, "maximum recursion depth (0 = evaluator default)")

	if err := fs.Parse(args); err != nil {
		return 2
	}
	if *rulePath == "" {
		fmt.Fprintln(stderr, "rulelogic: -rule is required")
		fs.Usage()
		return 2
	}

	ruleBytes, err := os.ReadFile(*rulePath)
	if err != nil {
		fmt.Fprintf(stderr, "rulelogic: read rule: %v\n", err)
		return 1
	}

	var dataBytes []byte
	if *dataPath == "" || *dataPath == "-" {
		dataBytes, err = io.ReadAll(stdin)
	} else {
		dataBytes, err = os.ReadFile(*dataPath)
	}
	if err != nil {
		fmt.Fprintf(stderr, "rulelogic: read data: %v\n", err)
		return 1
	}

	var rule interface{}
	if err := json.Unmarshal(ruleBytes, &rule); err != nil {
		fmt.Fprintf(stderr, "rulelogic: invalid rule JSON: %v\n", err)
		return 1
	}
	var data interface{}
	if len(dataBytes) == 0 {
		dataBytes = []byte("null")
	}
	if err := json.Unmarshal(dataBytes, &data); err != nil {
		fmt.Fprintf(stderr, "rulelogic: invalid data JSON: %v\n", err)
		return 1
	}

	opts := []rulelogic.EvalOption{rulelogic.WithTimeout(*timeout)}
	if *maxDepth > 0 {
		opts = append(opts, rulelogic.WithMaxDepth(*maxDepth))
	}

	result, evalErr := rulelogic.EvaluateWithContext(context.Background(), rule, data, opts...)
	if evalErr != nil {
		fmt.Fprintf(stderr, "rulelogic: %v\n", evalErr)
		return 1
	}

	enc := json.NewEncoder(stdout)
	if *pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(value.ToJSON(result)); err != nil {
		fmt.Fprintf(stderr, "rulelogic: encode result: %v\n", err)
		return 1
	}
	return 0
}
