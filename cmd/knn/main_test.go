package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/AeronFaust/CISC-7700X-HW-2/internal/logging"
	"go.uber.org/zap"
)

func TestRun(t *testing.T) {
	const prompt = "Enter variables separated by commas: "
	tests := []struct {
		name     string
		training string
		env      map[string]string
		input    string
		expected string
	}{
		{
			name:     "end_to_end",
			training: "5.1,3.5,1.4,0.2,setosa\n7.0,3.2,4.7,1.4,versicolor\n6.3,3.3,6.0,2.5,virginica\n",
			input:    "5.0,3.6,1.4,0.2\n",
			expected: prompt + "Predicted Label: setosa\n",
		},
		{
			name:     "input_without_newline",
			training: "5.1,3.5,1.4,0.2,setosa\n7.0,3.2,4.7,1.4,versicolor\n",
			input:    " 7.1 , 3.1, 4.6 ,1.5",
			expected: prompt + "Predicted Label: versicolor\n",
		},
		{
			name:     "invalid_input",
			training: "5.1,3.5,1.4,0.2,setosa\n",
			input:    "1.0,2.0,3.0\n",
			expected: prompt + "Invalid input format.\n",
		},
		{
			name:     "nan_input",
			training: "5.1,3.5,1.4,0.2,setosa\n7.0,3.2,4.7,1.4,versicolor\n",
			input:    "NaN,NaN,NaN,NaN\n",
			expected: prompt + "Invalid input format.\n",
		},
		{
			name:     "k_over_size",
			training: "5.1,3.5,1.4,0.2,setosa\n",
			env:      map[string]string{"KNN_K": "3"},
			input:    "5.0,3.6,1.4,0.2\n",
			expected: prompt + "Unable to predict: ",
		},
		{
			name:     "partial_load",
			training: "1.0,2.0,x,4.0,setosa\n6.3,3.3,6.0,2.5,virginica\n",
			input:    "5.0,3.6,1.4,0.2\n",
			expected: prompt + "Predicted Label: virginica\n",
		},
	}
	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			dir := t.TempDir()
			path := filepath.Join(dir, "iris.csv")
			if err := os.WriteFile(path, []byte(test.training), 0600); err != nil {
				t.Fatalf("unable to write training file: %v", err)
			}
			t.Setenv("KNN_TRAINING_FILE", path)
			t.Setenv("KNN_JOURNAL_FILE", filepath.Join(dir, "journal.db"))
			for k, v := range test.env {
				t.Setenv(k, v)
			}

			var out bytes.Buffer
			ctx := logging.WithLogger(context.Background(), zap.NewNop().Sugar())
			if err := run(ctx, strings.NewReader(test.input), &out); err != nil {
				t.Fatalf("unexpected run error: %v", err)
			}
			if !strings.HasPrefix(out.String(), test.expected) {
				t.Errorf("the output got: %q, expected prefix: %q", out.String(), test.expected)
			}
		})
	}
}

func TestRun_MissingTrainingFile(t *testing.T) {
	t.Setenv("KNN_TRAINING_FILE", filepath.Join(t.TempDir(), "missing.csv"))

	var out bytes.Buffer
	ctx := logging.WithLogger(context.Background(), zap.NewNop().Sugar())
	if err := run(ctx, strings.NewReader("5.0,3.6,1.4,0.2\n"), &out); err != nil {
		t.Fatalf("a missing training file must not fail the run: %v", err)
	}
	if !strings.Contains(out.String(), "Unable to predict: ") {
		t.Errorf("the output got: %q", out.String())
	}
}
