package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/matzehuels/paraflow/pkg/flow"
)

type stepsDoc struct {
	Steps []flow.Step `json:"steps"`
}

// WriteSteps encodes steps as indented JSON. A nil slice is written as [].
func WriteSteps(steps []flow.Step, w io.Writer) error {
	if steps == nil {
		steps = []flow.Step{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(stepsDoc{Steps: steps})
}

// WriteFile writes data to path, creating parent directories.
func WriteFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
