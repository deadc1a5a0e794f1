package seed

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
)

// FileSource loads seeds from hex-encoded text files, the format
// quantum seed captures are delivered in. Surrounding whitespace is
// tolerated; odd-length or non-hex content is rejected.
type FileSource struct{}

func (FileSource) Load(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("read seed file %s: %w", path, err)
	}
	material, err := DecodeHex(string(data))
	if err != nil {
		return nil, fmt.Errorf("seed file %s: %w", path, err)
	}
	return material, nil
}

// RawFileSource loads seeds that are already raw bytes on disk.
type RawFileSource struct{}

func (RawFileSource) Load(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("read seed file %s: %w", path, err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty file", ErrInvalidSeed)
	}
	return data, nil
}

// DecodeHex converts hex-encoded seed text to bytes after trimming
// surrounding whitespace.
func DecodeHex(s string) ([]byte, error) {
	cleaned := strings.TrimSpace(s)
	if len(cleaned) == 0 {
		return nil, fmt.Errorf("%w: empty input", ErrInvalidSeed)
	}
	if len(cleaned)%2 != 0 {
		return nil, fmt.Errorf("%w: hex string has odd length %d", ErrInvalidSeed, len(cleaned))
	}
	material, err := hex.DecodeString(cleaned)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSeed, err)
	}
	return material, nil
}
