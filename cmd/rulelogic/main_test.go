package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeTemp(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write temp file: %v", err)
	}
	return path
}

func TestRunEvaluatesRuleAgainstDataFile(t *testing.T) {
	rulePath := writeTemp(t, "rule.json", `{"val":"name"}`)
	dataPath := writeTemp(t, "data.json", `{"name":"Ada"}`)

	var stdout, stderr bytes.Buffer
	code := run([]string{"-rule", rulePath, "-data", dataPath}, strings.NewReader(""), &stdout, &stderr)
	if code != 0 {
		t.Fatalf("expected exit 0, got %d, stderr=%s", code, stderr.String())
	}
	if got := strings.TrimSpace(stdout.String()); got != `"Ada"` {
		t.Fatalf("expected %q, got %q", `"Ada"`, got)
	}
}

func TestRunReadsDataFromStdin(t *testing.T) {
	rulePath := writeTemp(t, "rule.json", `{"+":[{"val":"a"},{"val":"b"}]}`)

	var stdout, stderr bytes.Buffer
	code := run([]string{"-rule", rulePath}, strings.NewReader(`{"a":1,"b":2}`), &stdout, &stderr)
	if code != 0 {
		t.Fatalf("expected exit 0, got %d, stderr=%s", code, stderr.String())
	}
	if got := strings.TrimSpace(stdout.String()); got != "3" {
		t.Fatalf("expected \"3\", got %q", got)
	}
}

func TestRunMissingRuleFlagFails(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run(nil, strings.NewReader(""), &stdout, &stderr)
	if code != 2 {
		t.Fatalf("expected exit 2 for missing -rule, got %d", code)
	}
}

func TestRunInvalidRuleJSONFails(t *testing.T) {
	rulePath := writeTemp(t, "rule.json", `not json`)

	var stdout, stderr bytes.Buffer
	code := run([]string{"-rule", rulePath}, strings.NewReader(`null`), &stdout, &stderr)
	if code != 1 {
		t.Fatalf("expected exit 1 for invalid rule JSON, got %d", code)
	}
}

func TestRunThrowPropagatesAsError(t *testing.T) {
	rulePath := writeTemp(t, "rule.json", `{"throw":"boom"}`)

	var stdout, stderr bytes.Buffer
	code := run([]string{"-rule", rulePath}, strings.NewReader(`null`), &stdout, &stderr)
	if code != 1 {
		t.Fatalf("expected exit 1 when the rule throws, got %d", code)
	}
	if !strings.Contains(stderr.String(), "boom") {
		t.Fatalf("expected stderr to mention the thrown payload, got %q", stderr.String())
	}
}

func TestRunPrettyPrintsResult(t *testing.T) {
	rulePath := writeTemp(t, "rule.json", `{"val":[]}`)

	var stdout, stderr bytes.Buffer
	code := run([]string{"-rule", rulePath, "-pretty"}, strings.NewReader(`{"a":1}`), &stdout, &stderr)
	if code != 0 {
		t.Fatalf("expected exit 0, got %d, stderr=%s", code, stderr.String())
	}
	if !strings.Contains(stdout.String(), "\n  \"a\"") {
		t.Fatalf("expected indented output, got %q", stdout.String())
	}
}
