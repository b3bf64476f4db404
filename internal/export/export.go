package export

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/san-kum/hexfield/internal/render"
)

var ErrUnknownFormat = errors.New("export: unknown output format")

type Format string

const (
	PNG Format = "png"
	SVG Format = "svg"
	GIF Format = "gif"
)

// FormatFor picks the output format from a file extension.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return PNG, nil
	case ".svg":
		return SVG, nil
	case ".gif":
		return GIF, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, path)
}

// SavePNG writes a rendered frame to path through the image's own encoder.
func SavePNG(path string, img *render.Image) error {
	if err := img.SavePNG(path); err != nil {
		return fmt.Errorf("export: png %s: %w", path, err)
	}
	return nil
}

// ToFile creates path and hands it to write, reporting close errors too.
func ToFile(path string, write func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	return write(f)
}
