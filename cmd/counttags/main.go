package main

import (
	"compress/gzip"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"
	"runtime/pprof"
	"strings"

	"github.com/jacoelho/minim"
	"github.com/jacoelho/minim/pkg/chunk"
)

func main() {
	os.Exit(run())
}

func run() int {
	return runWithArgs(os.Args[1:], os.Stdout, os.Stderr)
}

func runWithArgs(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("counttags", flag.ContinueOnError)
	fs.SetOutput(stderr)
	namespaces := fs.Bool("ns", false, "resolve namespace prefixes")
	chunkSize := fs.Int("chunk", chunk.DefaultSize, "chunk size in bytes")
	kinds := fs.Bool("kinds", false, "print a count per token kind")
	cpuProfilePath := fs.String("cpuprofile", "", "write CPU profile to file")
	memProfilePath := fs.String("memprofile", "", "write memory profile to file")
	var usageErr error
	fs.Usage = func() {
		usageErr = errors.Join(
			usageErr,
			writef(stderr, "Usage: %s [options] <document.xml>...\n\n", os.Args[0]),
			writeln(stderr, "Counts the start and empty-element tags of markup documents."),
			writeln(stderr, "Files ending in .gz are decompressed."),
			writeln(stderr),
			writeln(stderr, "Options:"),
		)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}

	paths := fs.Args()
	if len(paths) == 0 {
		if err := writeln(stderr, "error: at least one file argument is required"); err != nil {
			return 1
		}
		fs.Usage()
		if usageErr != nil {
			return 1
		}
		return 2
	}
	if *chunkSize <= 0 {
		if err := writeln(stderr, "error: -chunk must be positive"); err != nil {
			return 1
		}
		return 2
	}

	if *cpuProfilePath != "" {
		stopCPUProfile, err := startCPUProfile(*cpuProfilePath)
		if err != nil {
			_ = writef(stderr, "error starting CPU profile: %v\n", err)
			return 1
		}
		defer func() {
			if err := stopCPUProfile(); err != nil {
				_ = writef(stderr, "error stopping CPU profile: %v\n", err)
			}
		}()
	}

	if *memProfilePath != "" {
		defer func() {
			if err := writeMemProfile(*memProfilePath); err != nil {
				_ = writef(stderr, "error writing memory profile: %v\n", err)
			}
		}()
	}

	var tz *minim.Tokenizer
	status := 0
	for _, path := range paths {
		counts, err := countFile(path, *chunkSize, &tz, minim.EnableNamespaces(*namespaces))
		if err != nil {
			if writeErr := writef(stderr, "error: %s: %v\n", path, err); writeErr != nil {
				return 1
			}
			status = 1
			continue
		}
		if err := report(stdout, path, len(paths) > 1, counts, *kinds); err != nil {
			return 1
		}
	}
	return status
}

// countFile reuses the tokenizer in *tz across files.
func countFile(path string, size int, tz **minim.Tokenizer, opts ...minim.Option) (counts minim.KindCounts, err error) {
	f, err := os.Open(path)
	if err != nil {
		return counts, err
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, closeErr)
		}
	}()

	var r io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		zr, err := gzip.NewReader(f)
		if err != nil {
			return counts, fmt.Errorf("open gzip stream: %w", err)
		}
		defer func() {
			if closeErr := zr.Close(); closeErr != nil && err == nil {
				err = fmt.Errorf("close gzip stream: %w", closeErr)
			}
		}()
		r = zr
	}

	src := chunk.NewReader(r, size)
	if *tz == nil {
		*tz = minim.NewTokenizer(src, opts...)
	} else {
		(*tz).Reset(src)
	}
	return (*tz).CountKinds()
}

func report(w io.Writer, path string, labeled bool, counts minim.KindCounts, kinds bool) error {
	prefix := ""
	if labeled {
		prefix = path + ": "
	}
	if err := writef(w, "%s%d\n", prefix, counts.Tags()); err != nil {
		return err
	}
	if !kinds {
		return nil
	}
	for k, n := range counts {
		kind := minim.Kind(k)
		if kind == minim.KindNone || kind == minim.KindEndOfStream {
			continue
		}
		if err := writef(w, "%s  %-22s %d\n", prefix, kind, n); err != nil {
			return err
		}
	}
	return nil
}

func writef(w io.Writer, format string, args ...any) error {
	_, err := fmt.Fprintf(w, format, args...)
	return err
}

func writeln(w io.Writer, args ...any) error {
	_, err := fmt.Fprintln(w, args...)
	return err
}

func startCPUProfile(path string) (func() error, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create cpu profile %s: %w", path, err)
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		if closeErr := f.Close(); closeErr != nil {
			return nil, fmt.Errorf("start cpu profile %s: %w (close failed: %w)", path, err, closeErr)
		}
		return nil, fmt.Errorf("start cpu profile %s: %w", path, err)
	}
	return func() error {
		pprof.StopCPUProfile()
		if err := f.Close(); err != nil {
			return fmt.Errorf("close cpu profile %s: %w", path, err)
		}
		return nil
	}, nil
}

func writeMemProfile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create mem profile %s: %w", path, err)
	}
	runtime.GC()
	if err := pprof.WriteHeapProfile(f); err != nil {
		if closeErr := f.Close(); closeErr != nil {
			return fmt.Errorf("write mem profile %s: %w (close failed: %w)", path, err, closeErr)
		}
		return fmt.Errorf("write mem profile %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close mem profile %s: %w", path, err)
	}
	return nil
}
