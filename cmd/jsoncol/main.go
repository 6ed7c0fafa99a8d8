package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/reoring/jsoncol"
	"github.com/reoring/jsoncol/array"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	os.Exit(run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func usage(fs *flag.FlagSet) func() {
	return func() {
		fmt.Fprintln(fs.Output(), "jsoncol: build a columnar array from JSON and print it\n\nUsage:\n  jsoncol [flags] [file ...]\n\nReads standard input when no file is given.\n\nFlags:")
		fs.PrintDefaults()
	}
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("jsoncol", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = usage(fs)
	var (
		configPath   string
		nanString    string
		infString    string
		minusInf     string
		missing      string
		asFloat      bool
		maxDepth     int
		printType    bool
		verbose      bool
		useGoJSON    bool
		onDuplicates string
	)
	fs.StringVar(&configPath, "config", "", "YAML file with parse and sentinel options")
	fs.StringVar(&nanString, "nan-string", "", "string written for NaN")
	fs.StringVar(&infString, "infinity-string", "", "string written for +Infinity")
	fs.StringVar(&minusInf, "minus-infinity-string", "", "string written for -Infinity")
	fs.StringVar(&missing, "missing-string", "", "string written for missing values")
	fs.BoolVar(&asFloat, "sentinels-as-float", false, "read input strings equal to a sentinel as floats")
	fs.IntVar(&maxDepth, "max-depth", 0, "maximum nesting depth (0 = unlimited)")
	fs.StringVar(&onDuplicates, "on-duplicate-key", "", "ignore, warn or error")
	fs.BoolVar(&printType, "type", false, "print the inferred array type instead of the data")
	fs.BoolVar(&useGoJSON, "gojson", false, "tokenize with goccy/go-json")
	fs.BoolVar(&verbose, "v", false, "enable debug logs")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	var opt jsoncol.ParseOpt
	if configPath != "" {
		var err error
		if opt, err = jsoncol.LoadConfig(configPath); err != nil {
			logger.Error("loading config", "err", err)
			return 1
		}
	}
	// explicit flags override the config file
	var flagErr error
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "nan-string":
			opt.Sentinels.NaNString = jsoncol.Ptr(nanString)
		case "infinity-string":
			opt.Sentinels.InfinityString = jsoncol.Ptr(infString)
		case "minus-infinity-string":
			opt.Sentinels.MinusInfinityString = jsoncol.Ptr(minusInf)
		case "missing-string":
			opt.Sentinels.MissingString = jsoncol.Ptr(missing)
		case "sentinels-as-float":
			opt.Sentinels.TreatSentinelStringsAsFloat = asFloat
		case "max-depth":
			opt.MaxDepth = maxDepth
		case "on-duplicate-key":
			opt.OnDuplicateKey, flagErr = parseSeverity(onDuplicates)
		}
	})
	if flagErr != nil {
		fmt.Fprintln(stderr, flagErr)
		return 2
	}
	opt.Logger = logger
	if useGoJSON {
		jsoncol.SetJSONDriver(jsoncol.GoJSONDriver())
		defer jsoncol.UseDefaultJSONDriver()
	}
	logger.Debug("jsoncol: options", "driver", jsoncol.JSONDriverName(), "max_depth", opt.MaxDepth, "on_duplicate_key", opt.OnDuplicateKey.String())

	inputs := fs.Args()
	if len(inputs) == 0 {
		inputs = []string{"-"}
	}
	for _, name := range inputs {
		a, err := build(ctx, name, stdin, opt)
		if err != nil {
			logger.Error("reading input", "file", name, "err", err)
			return 1
		}
		if err := emit(stdout, a, opt.Sentinels, printType); err != nil {
			logger.Error("writing output", "file", name, "err", err)
			return 1
		}
	}
	return 0
}

func build(ctx context.Context, name string, stdin io.Reader, opt jsoncol.ParseOpt) (array.Array, error) {
	if name == "-" {
		return jsoncol.FromReader(ctx, stdin, opt)
	}
	return jsoncol.FromFile(ctx, name, opt)
}

func emit(w io.Writer, a array.Array, cfg jsoncol.SentinelConfig, printType bool) error {
	if printType {
		_, err := fmt.Fprintf(w, "%d * %s\n", a.Len(), array.TypeString(a))
		return err
	}
	b, err := jsoncol.AppendJSON(nil, a, cfg)
	if err != nil {
		return err
	}
	_, err = w.Write(append(b, '\n'))
	return err
}

func parseSeverity(s string) (jsoncol.Severity, error) {
	for _, sev := range []jsoncol.Severity{jsoncol.Ignore, jsoncol.Warn, jsoncol.Error} {
		if sev.String() == s {
			return sev, nil
		}
	}
	return jsoncol.Ignore, fmt.Errorf("invalid -on-duplicate-key %q: want ignore, warn or error", s)
}
