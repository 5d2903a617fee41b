// Package logging points the standard logger at a rotating debug file.
package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"
)

const (
	FileName   = "catchstars.log"
	MaxLogSize = 10 * 1024 * 1024
)

// Setup routes the standard logger. Without debug it writes to fallback
// and returns a nil file. With debug it appends to dir/FileName, rotating
// the previous file aside once it exceeds MaxLogSize.
func Setup(debug bool, dir string, fallback io.Writer) (*os.File, error) {
	if !debug {
		log.SetOutput(fallback)
		return nil, nil
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}

	path := filepath.Join(dir, FileName)
	if info, err := os.Stat(path); err == nil && info.Size() > MaxLogSize {
		rotated := filepath.Join(dir, fmt.Sprintf("catchstars-%s.log", time.Now().Format("20060102-150405")))
		if err := os.Rename(path, rotated); err != nil {
			return nil, fmt.Errorf("rotate log: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}
	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	return f, nil
}
