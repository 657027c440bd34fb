package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bmistack/bmistack/internal/report"
)

// execute runs the root command with args and returns stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func writeInput(t *testing.T, content string) (dir, path string) {
	t.Helper()
	dir = t.TempDir()
	path = filepath.Join(dir, "people.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return dir, path
}

const people = `[
    {"Gender": "Male", "HeightCm": 171, "WeightKg": 96},
    {"Gender": "Male", "HeightCm": 180, "WeightKg": 77},
    {"Gender": "Female", "HeightCm": 167, "WeightKg": 82}
]`

func TestClassify(t *testing.T) {
	tests := []struct {
		args []string
		want classification
	}{
		{[]string{"--height", "175", "--weight", "75"}, classification{24.49, "Normal Weight", "Low Risk"}},
		{[]string{"--height", "1.71", "--weight", "96", "--meters"}, classification{32.83, "Moderately Obese", "Medium Risk"}},
		{[]string{"--height", "0", "--weight", "70"}, classification{0, "Underweight", "Malnutrition Risk"}},
	}
	for _, tc := range tests {
		t.Run(strings.Join(tc.args, " "), func(t *testing.T) {
			out, err := execute(t, append([]string{"classify"}, tc.args...)...)
			require.NoError(t, err)

			var got classification
			require.NoError(t, json.Unmarshal([]byte(out), &got))
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestClassify_RequiresFlags(t *testing.T) {
	_, err := execute(t, "classify", "--height", "170")
	require.Error(t, err)
}

func TestClassify_NonFiniteBMI(t *testing.T) {
	out, err := execute(t, "classify", "--height", "1e-200", "--weight", "70", "--meters")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not finite")
	assert.Empty(t, out)
}

func TestRun_FlagsOnly(t *testing.T) {
	dir, input := writeInput(t, people)
	output := filepath.Join(dir, "result.json")

	out, err := execute(t, "run", "--input", input, "--output", output, "--format", "json",
		"--mode", "pool", "--workers", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "The counts for Overweight : 1")
	assert.Contains(t, out, "Verified counts for Overweight and Success")

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	var rows []map[string]any
	require.NoError(t, json.Unmarshal(data, &rows))
	assert.Len(t, rows, 3)
}

func TestRun_ConfigWithOverride(t *testing.T) {
	dir, input := writeInput(t, people)
	cfgPath := filepath.Join(dir, "bmistack.yaml")
	cfg := "input:\n  path: " + input + "\noutput:\n  path: " + filepath.Join(dir, "out.csv") +
		"\ncheck:\n  category: Overweight\n"
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfg), 0o600))

	out, err := execute(t, "run", "--config", cfgPath, "--category", "Normal Weight")
	require.NoError(t, err)
	assert.Contains(t, out, "The counts for Normal Weight : 1")

	_, err = os.Stat(filepath.Join(dir, "out.csv"))
	require.NoError(t, err)
}

func TestRun_ConfigWithoutInputPath(t *testing.T) {
	dir, input := writeInput(t, people)
	cfgPath := filepath.Join(dir, "bmistack.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("output:\n  format: json\n"), 0o600))
	output := filepath.Join(dir, "result.json")

	out, err := execute(t, "run", "--config", cfgPath, "--input", input, "--output", output)
	require.NoError(t, err)
	assert.Contains(t, out, "Verified counts for Overweight and Success")

	// format comes from the file, input and output from flags.
	data, err := os.ReadFile(output)
	require.NoError(t, err)
	var rows []map[string]any
	require.NoError(t, json.Unmarshal(data, &rows))
	assert.Len(t, rows, 3)
}

func TestWatch_FollowsInputFlag(t *testing.T) {
	dir, input := writeInput(t, "[]")
	cfgPath := filepath.Join(dir, "bmistack.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("output:\n  format: json\n"), 0o600))
	output := filepath.Join(dir, "result.json")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{"watch", "--config", cfgPath, "--input", input, "--output", output})
	done := make(chan error, 1)
	go func() { done <- root.ExecuteContext(ctx) }()

	rows := func() int {
		data, err := os.ReadFile(output)
		if err != nil {
			return -1
		}
		var got []map[string]any
		if json.Unmarshal(data, &got) != nil {
			return -1
		}
		return len(got)
	}

	// The first run writes an empty array. Only after that is the input
	// rewritten, and a second run must pick up all three rows.
	deadline := time.After(5 * time.Second)
	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()
	firstRun := false
	for {
		select {
		case <-ticker.C:
			n := rows()
			if !firstRun {
				firstRun = n == 0
				continue
			}
			if n != 3 {
				require.NoError(t, os.WriteFile(input, []byte(people), 0o600))
				continue
			}
			cancel()
			require.NoError(t, <-done)
			return
		case err := <-done:
			t.Fatalf("watch exited early: %v", err)
		case <-deadline:
			t.Fatal("watch did not re-run after the --input file changed")
		}
	}
}

func TestRun_MissingInputFlag(t *testing.T) {
	_, err := execute(t, "run")
	require.Error(t, err)
}

func TestRun_InvalidFormat(t *testing.T) {
	_, input := writeInput(t, people)
	_, err := execute(t, "run", "--input", input, "--format", "xml")
	require.Error(t, err)
}

func TestWatch_RequiresConfig(t *testing.T) {
	_, err := execute(t, "watch")
	require.Error(t, err)
}

func TestCheckResult_Strict(t *testing.T) {
	o := &overrides{strict: true}
	err := o.checkResult(summaryWithCheck(false))
	assert.True(t, errors.Is(err, errCheckFailed))
	assert.NoError(t, o.checkResult(summaryWithCheck(true)))

	lenient := &overrides{}
	assert.NoError(t, lenient.checkResult(summaryWithCheck(false)))
}

func summaryWithCheck(verified bool) report.Summary {
	return report.Summary{Check: report.Check{Category: "Overweight", Count: 1, Verified: verified}}
}
