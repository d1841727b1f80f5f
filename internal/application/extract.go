package application

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ExtractTranscripts splits a pipe-delimited transcript listing into
// per-sample ground-truth files. Each non-blank line of the form
// "audio|transcript|..." contributes its second column as a numbered
// .txt file under outputDir (1.txt, 2.txt, ...). Lines with fewer than
// two columns are skipped. A limit > 0 stops after that many
// transcripts. Returns the number of transcripts written.
func ExtractTranscripts(inputPath, outputDir string, limit int) (int, error) {
	f, err := os.Open(inputPath)
	if err != nil {
		return 0, fmt.Errorf("open transcript file %q: %w", inputPath, err)
	}
	defer f.Close()

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return 0, fmt.Errorf("create output dir %q: %w", outputDir, err)
	}

	written := 0
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		parts := strings.Split(line, "|")
		if len(parts) < 2 {
			continue
		}
		transcript := strings.TrimSpace(parts[1])

		outPath := filepath.Join(outputDir, fmt.Sprintf("%d.txt", written+1))
		if err := os.WriteFile(outPath, []byte(transcript), 0o644); err != nil {
			return written, fmt.Errorf("write transcript %q: %w", outPath, err)
		}
		written++

		if limit > 0 && written >= limit {
			break
		}
	}
	if err := scanner.Err(); err != nil {
		return written, fmt.Errorf("scan transcript file %q: %w", inputPath, err)
	}
	return written, nil
}
