package record

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/AeronFaust/CISC-7700X-HW-2/internal/geom"
	"github.com/AeronFaust/CISC-7700X-HW-2/internal/logging"
)

const maxLineBytes = 1024 * 1024

type Option func(*Options)

type Options struct {
	delimiter byte
}

func WithDelimiter(d byte) Option {
	return func(o *Options) {
		o.delimiter = d
	}
}

// Report summarizes a load. Skipped holds a warning for every line dropped
// because of a numeric parse failure.
type Report struct {
	Lines   int
	Loaded  int
	Skipped []*ParseError
}

// LoadFile opens path and loads it into store. If the file cannot be opened
// the store is left untouched and the returned error wraps ErrOpen.
func LoadFile(ctx context.Context, store *Store, path string, opts ...Option) (*Report, error) {
	logger := logging.FromContext(ctx)
	file, err := os.Open(path)
	if err != nil {
		logger.Errorf("Unable to open file %s: %v", path, err)
		return &Report{}, fmt.Errorf("%w %s: %v", ErrOpen, path, err)
	}
	defer file.Close()

	return Load(ctx, store, file, opts...)
}

// Load reads r line by line, appending one observation per line. Every line
// holds four numeric fields followed by a label.
//
// A field that is present but not a number skips only that line. A line that
// runs out of fields before the label stops the load with a *StructuralError;
// observations appended before that line stay in the store.
func Load(ctx context.Context, store *Store, r io.Reader, opts ...Option) (*Report, error) {
	logger := logging.FromContext(ctx)
	o := Options{delimiter: DefaultDelimiter}
	for _, f := range opts {
		f(&o)
	}

	report := &Report{}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for scanner.Scan() {
		line := scanner.Text()
		report.Lines++

		features, label, err := parseLine(line, report.Lines, o.delimiter)
		if err != nil {
			if perr, ok := err.(*ParseError); ok {
				logger.Warnf("warning: %v", perr)
				report.Skipped = append(report.Skipped, perr)
				continue
			}
			logger.Errorf("loading stopped: %v", err)
			return report, err
		}

		store.Append(features, label)
		report.Loaded++
	}
	if err := scanner.Err(); err != nil {
		return report, fmt.Errorf("reading training source: %w", err)
	}

	logger.Debugf("training data loaded, lines: %d, loaded: %d, skipped: %d",
		report.Lines, report.Loaded, len(report.Skipped))
	return report, nil
}

// parseLine consumes the numeric fields strictly left to right, so a bad
// number is reported before any missing field later in the line.
func parseLine(line string, lineNum int, delim byte) (geom.Point, string, error) {
	var features geom.Point
	fields := Fields(line, delim)
	for i := 0; i < geom.NumFeatures; i++ {
		token, ok := fields.Next()
		if !ok {
			return features, "", &StructuralError{Line: lineNum, Text: line}
		}
		value, err := geom.ParseValue(token)
		if err != nil {
			return features, "", &ParseError{Line: lineNum, Text: line, Token: token, Err: err}
		}
		features[i] = value
	}

	label, ok := fields.Next()
	if !ok || label == "" {
		return features, "", &StructuralError{Line: lineNum, Text: line}
	}
	return features, label, nil
}
