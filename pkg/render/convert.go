package render

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	perrors "github.com/matzehuels/paraflow/pkg/errors"
)

// DefaultFilename is the name offered when a PNG flowchart is downloaded.
const DefaultFilename = "flowchart.png"

const pngDataURLPrefix = "data:image/png;base64,"

// DataURL encodes PNG bytes as a data URL suitable for an <img> src or a
// download link.
func DataURL(png []byte) string {
	return pngDataURLPrefix + base64.StdEncoding.EncodeToString(png)
}

// ParseDataURL is the inverse of [DataURL].
func ParseDataURL(url string) ([]byte, error) {
	payload, ok := strings.CutPrefix(url, pngDataURLPrefix)
	if !ok {
		return nil, errors.New("not a PNG data URL")
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("decode data URL: %w", err)
	}
	return data, nil
}

// PDFConverter is the external program [ToPDF] runs. Tests may point it at
// a stub.
var PDFConverter = "rsvg-convert"

// ErrNoPDFConverter is returned by [ToPDF] when [PDFConverter] is not on PATH.
var ErrNoPDFConverter = perrors.New(perrors.ErrCodeUnsupported,
	"PDF output needs rsvg-convert (brew install librsvg, apt install librsvg2-bin)")

// ToPDF converts SVG to PDF with rsvg-convert. The conversion is killed when
// ctx ends.
func ToPDF(ctx context.Context, svg []byte) ([]byte, error) {
	bin, err := exec.LookPath(PDFConverter)
	if err != nil {
		return nil, ErrNoPDFConverter
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, bin, "--format", "pdf")
	cmd.Stdin = bytes.NewReader(svg)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("%s: %w: %s", PDFConverter, err, strings.TrimSpace(stderr.String()))
	}
	return stdout.Bytes(), nil
}
