package application

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "evaluation.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadEvaluationConfig(t *testing.T) {
	path := writeConfig(t, `
ground_truth_dir: ground-truth
models:
  - name: XTTS
    dir: xtts/text
  - name: F5-TTS
    dir: f5tts/text
output_dir: wer_results
workers: 4
`)

	cfg, err := LoadEvaluationConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "ground-truth", cfg.GroundTruthDir)
	assert.Equal(t, "wer_results", cfg.OutputDir)
	assert.Equal(t, 4, cfg.Workers)
	require.Len(t, cfg.Models, 2)
	assert.Equal(t, ModelSource{Name: "XTTS", Dir: "xtts/text"}, cfg.Models[0])
}

func TestLoadEvaluationConfig_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		errMsg  string
	}{
		{
			name: "unknown field rejected",
			content: `
ground_truth_dir: gt
modells:
  - name: a
    dir: b
output_dir: out
`,
			errMsg: "typos",
		},
		{
			name: "missing models",
			content: `
ground_truth_dir: gt
output_dir: out
`,
			errMsg: "validation failed",
		},
		{
			name: "model without name",
			content: `
ground_truth_dir: gt
models:
  - dir: b
output_dir: out
`,
			errMsg: "validation failed",
		},
		{
			name: "negative workers",
			content: `
ground_truth_dir: gt
models:
  - name: a
    dir: b
output_dir: out
workers: -1
`,
			errMsg: "validation failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.content)
			_, err := LoadEvaluationConfig(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestLoadEvaluationConfig_MissingFile(t *testing.T) {
	_, err := LoadEvaluationConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
