package imaging

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/expenseworks/receipts-pipeline/constants"
)

// jpegQuality is the fixed transcode quality factor: lossy but bounded, and
// deterministic for a given input.
const jpegQuality = "80"

// NormalizedImage is a blob guaranteed to be in an encoding the extraction
// service and the spreadsheet embedder accept.
type NormalizedImage struct {
	Data        []byte
	ContentType string
}

// Normalizer converts accepted upload encodings into canonical raster form.
// Allow-listed encodings pass through untouched; HEIC/HEIF is transcoded to
// JPEG via an external converter (heif-convert | magick | sips).
type Normalizer struct {
	runner    Runner
	converter string
	logger    *slog.Logger
}

func NewNormalizer(runner Runner, converter string, logger *slog.Logger) *Normalizer {
	if runner == nil {
		runner = NewExecRunner()
	}
	if converter == "" {
		converter = "magick"
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Normalizer{runner: runner, converter: converter, logger: logger}
}

// Normalize returns the canonical encoding of data. Inputs outside the
// upload allow-list never reach here; the ingestion boundary rejects them
// first. A conversion failure is fatal for this file only.
func (n *Normalizer) Normalize(ctx context.Context, data []byte, contentType string) (NormalizedImage, error) {
	if constants.Passthrough(contentType) {
		return NormalizedImage{Data: data, ContentType: contentType}, nil
	}

	target, ok := constants.ConvertibleMIMETypes[contentType]
	if !ok {
		return NormalizedImage{}, fmt.Errorf("unsupported content type reached normalizer: %s", contentType)
	}

	converted, err := n.transcode(ctx, data)
	if err != nil {
		return NormalizedImage{}, fmt.Errorf("transcode %s: %w", contentType, err)
	}
	return NormalizedImage{Data: converted, ContentType: target}, nil
}

// transcode shells out to the configured converter over a temp pair of files.
func (n *Normalizer) transcode(ctx context.Context, data []byte) ([]byte, error) {
	tmpDir, err := os.MkdirTemp("", "rp-heic-*")
	if err != nil {
		return nil, err
	}
	defer func() { _ = os.RemoveAll(tmpDir) }()

	in := filepath.Join(tmpDir, "in.heic")
	out := filepath.Join(tmpDir, "out.jpg")
	if err := os.WriteFile(in, data, 0o600); err != nil {
		return nil, err
	}

	switch n.converter {
	case "heif-convert":
		if _, errb, err := n.runner.Run(ctx, "heif-convert", n.logger, "-q", jpegQuality, in, out); err != nil {
			return nil, fmt.Errorf("heif-convert failed: %w (%s)", err, truncate(string(errb), 512))
		}
	case "magick":
		if _, errb, err := n.runner.Run(ctx, "magick", n.logger, in, "-quality", jpegQuality, out); err != nil {
			return nil, fmt.Errorf("magick convert failed: %w (%s)", err, truncate(string(errb), 512))
		}
	case "sips":
		if _, errb, err := n.runner.Run(ctx, "sips", n.logger, "-s", "format", "jpeg", "-s", "formatOptions", jpegQuality, in, "--out", out); err != nil {
			return nil, fmt.Errorf("sips convert failed: %w (%s)", err, truncate(string(errb), 512))
		}
	default:
		return nil, fmt.Errorf("HEIC not supported: converter must be one of: heif-convert | magick | sips")
	}

	converted, err := os.ReadFile(out)
	if err != nil {
		return nil, fmt.Errorf("conversion produced no output: %w", err)
	}
	return converted, nil
}
