package jsoncol_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/reoring/jsoncol"
)

func TestLoadConfig(t *testing.T) {
	opt, err := jsoncol.LoadConfig("testdata/config.yaml")
	if err != nil {
		t.Fatal(err)
	}
	want := jsoncol.SentinelConfig{
		NaNString:                   jsoncol.Ptr("NaN"),
		InfinityString:              jsoncol.Ptr("inf"),
		MinusInfinityString:         jsoncol.Ptr("-inf"),
		TreatSentinelStringsAsFloat: true,
	}
	if diff := cmp.Diff(want, opt.Sentinels); diff != "" {
		t.Fatalf("sentinels (-want +got):\n%s", diff)
	}
	if opt.MaxDepth != 64 || opt.OnDuplicateKey != jsoncol.Warn || opt.Resize != 2 || opt.Initial != 0 {
		t.Fatalf("unexpected options: %+v", opt)
	}

	a, err := jsoncol.FromText(`["inf", 1.5]`, opt)
	if err != nil {
		t.Fatal(err)
	}
	got, err := jsoncol.ToText(a, opt.Sentinels)
	if err != nil {
		t.Fatal(err)
	}
	if got != `["inf",1.5]` {
		t.Fatalf("got %s", got)
	}
}

func TestParseConfig_Empty(t *testing.T) {
	opt, err := jsoncol.ParseConfig(nil)
	if err != nil {
		t.Fatal(err)
	}
	if opt.Sentinels.NaNString != nil || opt.MaxDepth != 0 || opt.OnDuplicateKey != jsoncol.Ignore {
		t.Fatalf("want zero options, got %+v", opt)
	}
}

func TestParseConfig_Errors(t *testing.T) {
	cases := map[string]string{
		"unknown key":      "nan: NaN\n",
		"bad severity":     "on_duplicate_key: loud\n",
		"negative depth":   "max_depth: -1\n",
		"resize too small": "resize: 1\n",
		"wrong type":       "max_bytes: lots\n",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := jsoncol.ParseConfig([]byte(doc)); err == nil {
				t.Fatalf("expected error for %q", doc)
			} else if !strings.HasPrefix(err.Error(), "jsoncol: config:") {
				t.Fatalf("unexpected error text: %v", err)
			}
		})
	}
}

func TestSeverity_String(t *testing.T) {
	for sev, want := range map[jsoncol.Severity]string{jsoncol.Ignore: "ignore", jsoncol.Warn: "warn", jsoncol.Error: "error", 7: "unknown"} {
		if got := sev.String(); got != want {
			t.Errorf("%d: got %q want %q", int(sev), got, want)
		}
	}
}
