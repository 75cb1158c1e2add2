// Package mdsql pulls the initial schema SQL out of the Study-Sync design
// document. Only the first fenced code block opened by a ```sql line counts;
// everything else in the document is ignored.
package mdsql

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

const (
	openFence  = "```sql"
	closeFence = "```"
)

const (
	fileMode = 0o644
	dirMode  = 0o755
)

// Extract returns the lines strictly between the first ```sql fence and the
// next bare ``` fence, each line keeping its original terminator. Fences
// match on their whitespace-trimmed content only; an opening fence carrying
// anything after the sql tag does not open a block. If no opening fence
// exists the result is empty, and a block left unterminated runs to the end
// of the source.
func Extract(source []byte) []byte {
	var out bytes.Buffer

	inside := false
	rest := source

	for len(rest) > 0 {
		line := rest
		if idx := bytes.IndexByte(rest, '\n'); idx >= 0 {
			line = rest[:idx+1]
		}

		rest = rest[len(line):]

		trimmed := string(bytes.TrimSpace(line))

		switch {
		case !inside && trimmed == openFence:
			inside = true
		case inside && trimmed == closeFence:
			// Only the first block counts.
			return out.Bytes()
		case inside:
			out.Write(line)
		}
	}

	return out.Bytes()
}

// FromFS reads name from fsys and extracts its first sql block.
func FromFS(fsys fs.FS, name string) ([]byte, error) {
	source, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}

	return Extract(source), nil
}

// File extracts the first sql block of sourcePath and writes it to destPath,
// creating destPath's directory chain first. An existing destination is
// overwritten; a document without a sql block yields an empty file.
func File(sourcePath, destPath string) error {
	source, err := os.ReadFile(sourcePath)
	if err != nil {
		return fmt.Errorf("read %s: %w", sourcePath, err)
	}

	sql := Extract(source)

	destDir := filepath.Dir(destPath)
	if err := os.MkdirAll(destDir, dirMode); err != nil {
		return fmt.Errorf("create %s: %w", destDir, err)
	}

	if err := os.WriteFile(destPath, sql, fileMode); err != nil {
		return fmt.Errorf("write %s: %w", destPath, err)
	}

	return nil
}
