package output

import (
	"fmt"
	"io"
	"os"
)

// WritePlan writes the serialized plan text to filePath, or to stdout when
// filePath is empty.
func WritePlan(plan string, filePath string) error {
	w, closer, err := getWriter(filePath)
	if err != nil {
		return err
	}
	if closer != nil {
		defer closer.Close()
	}

	if _, err := io.WriteString(w, plan); err != nil {
		return fmt.Errorf("failed to write plan: %w", err)
	}
	return nil
}

// getWriter returns an io.Writer for output (stdout or file)
func getWriter(filePath string) (io.Writer, io.Closer, error) {
	if filePath == "" {
		return os.Stdout, nil, nil
	}

	f, err := os.Create(filePath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create output file: %w", err)
	}
	return f, f, nil
}
