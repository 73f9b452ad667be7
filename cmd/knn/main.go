package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	knn "github.com/AeronFaust/CISC-7700X-HW-2/internal/config"
	"github.com/AeronFaust/CISC-7700X-HW-2/internal/journal"
	"github.com/AeronFaust/CISC-7700X-HW-2/internal/logging"
	"github.com/AeronFaust/CISC-7700X-HW-2/internal/query"
	"github.com/AeronFaust/CISC-7700X-HW-2/internal/setup"
)

// main always exits 0: load and prediction failures are reported as text.
func main() {
	ctx := context.Background()
	logger := logging.FromContext(ctx)
	if err := run(ctx, os.Stdin, os.Stdout); err != nil {
		logger.Errorf("knn: %v", err)
	}
}

func run(ctx context.Context, in io.Reader, out io.Writer) error {
	logger := logging.FromContext(ctx)
	config := knn.Config{}
	env, err := setup.Setup(ctx, &config)
	if err != nil {
		return fmt.Errorf("setup.Setup: %w", err)
	}
	defer func() {
		if err := env.Close(ctx); err != nil {
			logger.Errorf("env.Close: %v", err)
		}
	}()

	classifier, err := env.ProvideClassifier()(env.Store())
	if err != nil {
		return fmt.Errorf("classifier provider function error: %w", err)
	}

	_, _ = fmt.Fprint(out, "Enter variables separated by commas: ")
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("reading input: %w", err)
	}

	q, err := query.Parse(line)
	if err != nil {
		_, _ = fmt.Fprintln(out, "Invalid input format.")
		return nil
	}

	k := config.Predictor.K
	label, err := classifier.Predict(q, k)
	if err != nil {
		logger.Warnf("predict: %v", err)
		_, _ = fmt.Fprintf(out, "Unable to predict: %v\n", err)
		return nil
	}
	_, _ = fmt.Fprintf(out, "Predicted Label: %s\n", label)

	if j := env.Journal(); j != nil {
		if err := j.Append(ctx, journal.NewEntry(q, k, label, time.Now().UTC())); err != nil {
			logger.Errorf("unable to journal prediction: %v", err)
		}
	}
	return nil
}
