package main

import (
	"bytes"
	"strings"
	"testing"
)

func runCLI(t *testing.T, stdin string, args ...string) (int, string, string) {
	t.Helper()
	var out, errb bytes.Buffer
	code := run(t.Context(), args, strings.NewReader(stdin), &out, &errb)
	return code, out.String(), errb.String()
}

func TestRun_Type(t *testing.T) {
	code, out, errs := runCLI(t, "", "-type", "../../testdata/test-record-array.json")
	if code != 0 {
		t.Fatalf("exit %d: %s", code, errs)
	}
	if want := "6 * var * {x: float64, y: var * int64}\n"; out != want {
		t.Fatalf("got %q want %q", out, want)
	}
}

func TestRun_Stdin(t *testing.T) {
	code, out, errs := runCLI(t, `[1, 2.5, null]`)
	if code != 0 {
		t.Fatalf("exit %d: %s", code, errs)
	}
	if want := "[1.0,2.5,null]\n"; out != want {
		t.Fatalf("got %q want %q", out, want)
	}
}

func TestRun_Sentinels(t *testing.T) {
	code, out, errs := runCLI(t, `["NaN", 1, null]`, "-nan-string", "NaN", "-sentinels-as-float", "-missing-string", "NA")
	if code != 0 {
		t.Fatalf("exit %d: %s", code, errs)
	}
	if want := `["NaN",1.0,"NA"]` + "\n"; out != want {
		t.Fatalf("got %q want %q", out, want)
	}
}

func TestRun_MissingConfig(t *testing.T) {
	code, _, errs := runCLI(t, `["inf"]`, "-config", "testdata/none.yaml")
	if code != 1 {
		t.Fatalf("missing config should fail with exit 1, got %d", code)
	}
	if !strings.Contains(errs, "loading config") {
		t.Fatalf("stderr: %s", errs)
	}
}

func TestRun_DuplicateKeyError(t *testing.T) {
	code, _, errs := runCLI(t, `{"a": 1, "a": 2}`, "-on-duplicate-key", "error")
	if code != 1 || !strings.Contains(errs, "duplicate_key") {
		t.Fatalf("exit %d, stderr: %s", code, errs)
	}
}

func TestRun_ConfigFile(t *testing.T) {
	code, out, errs := runCLI(t, `["inf", "-inf", 2]`, "-config", "../../testdata/config.yaml")
	if code != 0 {
		t.Fatalf("exit %d: %s", code, errs)
	}
	if want := `["inf","-inf",2.0]` + "\n"; out != want {
		t.Fatalf("got %q want %q", out, want)
	}
}

func TestRun_UsageErrors(t *testing.T) {
	if code, _, _ := runCLI(t, "", "-no-such-flag"); code != 2 {
		t.Fatalf("unknown flag: exit %d", code)
	}
	if code, _, _ := runCLI(t, "", "-on-duplicate-key", "loud"); code != 2 {
		t.Fatalf("bad severity: exit %d", code)
	}
}
