package utils

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
)

// OpenLogFile opens <dir>/app-YYYY-MM-DD.log for appending, creating dir when needed
func OpenLogFile(dir string) (*os.File, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	timestamp := time.Now().Format("2006-01-02")
	return os.OpenFile(filepath.Join(dir, fmt.Sprintf("app-%s.log", timestamp)), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
}

// LogWriter tees to stdout and the daily log file; stdout only when the file cannot be opened
func LogWriter(dir string) (io.Writer, func() error) {
	f, err := OpenLogFile(dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "log file disabled: %v\n", err)
		return os.Stdout, func() error { return nil }
	}
	return io.MultiWriter(os.Stdout, f), f.Close
}
