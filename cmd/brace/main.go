// brace - brace text codec CLI tool
//
// Usage:
//
//	brace demo [--attempts=N] [--strict]  Encode and decode the fixtures, compare codecs
//	brace parse [--strict] [file]         Print the value tree of brace text
//	brace version                         Print version info
//
// If no file is given, parse reads from stdin.
package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/zoobzio/brace"
	"github.com/zoobzio/brace/bench"
	"github.com/zoobzio/brace/bson"
	"github.com/zoobzio/brace/json"
	"github.com/zoobzio/brace/msgpack"
	bracetest "github.com/zoobzio/brace/testing"
	"github.com/zoobzio/brace/xml"
	"github.com/zoobzio/brace/yaml"
)

const libVersion = "0.1.0"

const defaultAttempts = 1000

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "brace: logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	cmd := os.Args[1]

	attempts := defaultAttempts
	strict := false
	fileArg := ""
	for _, arg := range os.Args[2:] {
		switch {
		case arg == "--strict":
			strict = true
		case strings.HasPrefix(arg, "--attempts="):
			n, err := strconv.Atoi(strings.TrimPrefix(arg, "--attempts="))
			if err != nil {
				logger.Fatal("invalid --attempts", zap.String("arg", arg), zap.Error(err))
			}
			attempts = n
		default:
			if !strings.HasPrefix(arg, "-") && arg != "-" {
				fileArg = arg
			}
		}
	}

	var opts []brace.Option
	if strict {
		opts = append(opts, brace.WithStrictNesting())
	}

	switch cmd {
	case "demo":
		if err := cmdDemo(os.Stdout, logger, attempts, opts); err != nil {
			logger.Fatal("demo failed", zap.Error(err))
		}
	case "parse":
		var input io.Reader = os.Stdin
		if fileArg != "" {
			f, err := os.Open(fileArg)
			if err != nil {
				logger.Fatal("open file", zap.String("file", fileArg), zap.Error(err))
			}
			defer f.Close()
			input = f
		}
		if err := cmdParse(os.Stdout, input, opts); err != nil {
			logger.Fatal("parse failed", zap.Error(err))
		}
	case "version", "-v", "--version":
		fmt.Printf("brace %s\n", libVersion)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", cmd)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, `Usage: brace <command> [options]

Commands:
  demo [--attempts=N] [--strict]  Encode and decode the fixtures, compare codecs
  parse [--strict] [file]         Print the value tree of brace text
  version                         Print version info`)
}

// cmdDemo writes every fixture with brace, reads it back, and times brace
// against the comparison codecs.
func cmdDemo(w io.Writer, logger *zap.Logger, attempts int, opts []brace.Option) error {
	codecs := []brace.Codec{
		brace.TextCodec(opts...),
		json.New(),
		xml.New(),
		yaml.New(),
		msgpack.New(),
		bson.New(),
	}

	for _, s := range bracetest.Samples() {
		text, err := brace.Encode(s.Value, opts...)
		if err != nil {
			return fmt.Errorf("encode %s: %w", s.Name, err)
		}
		fmt.Fprintf(w, "%s\n  %s\n", s.Name, text)

		results, err := bench.Compare(s.Value, attempts, codecs...)
		if err != nil {
			return err
		}
		for _, r := range results {
			if r.Err != nil {
				logger.Warn("codec failed",
					zap.String("fixture", s.Name),
					zap.String("content_type", r.ContentType),
					zap.Error(r.Err),
				)
				fmt.Fprintf(w, "  %-22s error: %v\n", r.ContentType, r.Err)
				continue
			}
			logger.Debug("codec timed",
				zap.String("fixture", s.Name),
				zap.String("content_type", r.ContentType),
				zap.Int("size", r.Size),
				zap.Duration("encode", r.Encode),
				zap.Duration("decode", r.Decode),
			)
			fmt.Fprintf(w, "  %-22s %5d bytes  encode %10v  decode %10v\n",
				r.ContentType, r.Size, r.Encode, r.Decode)
		}
	}

	logger.Info("demo complete", zap.Int("attempts", attempts), zap.Int("codecs", len(codecs)))
	return nil
}

// cmdParse prints the value tree of the brace text read from r.
func cmdParse(w io.Writer, r io.Reader, opts []brace.Option) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	v, err := brace.Parse(string(data), opts...)
	if err != nil {
		return err
	}
	return printValue(w, v, 0, opts)
}

func printValue(w io.Writer, v brace.Value, indent int, opts []brace.Option) error {
	pad := strings.Repeat("  ", indent)
	switch v.Kind {
	case brace.KindNull:
		fmt.Fprintf(w, "%snull\n", pad)
	case brace.KindBool:
		fmt.Fprintf(w, "%sbool %t\n", pad, v.Bool)
	case brace.KindInteger:
		fmt.Fprintf(w, "%sinteger %d\n", pad, v.Int)
	case brace.KindFloat:
		fmt.Fprintf(w, "%sfloat %s\n", pad, strconv.FormatFloat(v.Float, 'g', -1, 64))
	case brace.KindDecimal:
		fmt.Fprintf(w, "%sdecimal %s\n", pad, v.Decimal.String())
	case brace.KindString:
		fmt.Fprintf(w, "%sstring %q\n", pad, v.Str)
	case brace.KindObject:
		fmt.Fprintf(w, "%sobject (%d members)\n", pad, v.Members.Len())
		var err error
		v.Members.Each(func(name, raw string) bool {
			fmt.Fprintf(w, "%s  %s:\n", pad, name)
			var child brace.Value
			if child, err = brace.Parse(raw, opts...); err != nil {
				return false
			}
			err = printValue(w, child, indent+2, opts)
			return err == nil
		})
		return err
	}
	return nil
}
