package imaging

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/expenseworks/receipts-pipeline/constants"
)

// stubRunner fakes the external converter: it records the invocation and
// writes output bytes to the last path argument that looks like the target.
type stubRunner struct {
	name   string
	args   []string
	output []byte
	err    error
}

func (s *stubRunner) Run(_ context.Context, name string, _ *slog.Logger, args ...string) ([]byte, []byte, error) {
	s.name = name
	s.args = args
	if s.err != nil {
		return nil, []byte("converter exploded"), s.err
	}
	out := outputPath(args)
	if out != "" {
		if err := os.WriteFile(out, s.output, 0o600); err != nil {
			return nil, nil, err
		}
	}
	return nil, nil, nil
}

func outputPath(args []string) string {
	for i := len(args) - 1; i >= 0; i-- {
		if len(args[i]) > 4 && args[i][len(args[i])-4:] == ".jpg" {
			return args[i]
		}
	}
	return ""
}

func TestNormalize_Passthrough(t *testing.T) {
	runner := &stubRunner{}
	n := NewNormalizer(runner, "magick", slog.Default())

	data := []byte{0xFF, 0xD8, 0xFF}
	for _, ct := range []string{constants.MIMEJPEG, constants.MIMEPNG, constants.MIMEWebP} {
		img, err := n.Normalize(context.Background(), data, ct)
		require.NoError(t, err)
		assert.Equal(t, data, img.Data)
		assert.Equal(t, ct, img.ContentType)
	}
	assert.Empty(t, runner.name, "passthrough must not shell out")
}

func TestNormalize_TranscodesHEIC(t *testing.T) {
	jpeg := []byte{0xFF, 0xD8, 0xFF, 0xE0}
	runner := &stubRunner{output: jpeg}
	n := NewNormalizer(runner, "magick", slog.Default())

	img, err := n.Normalize(context.Background(), []byte("heic-bytes"), constants.MIMEHEIC)
	require.NoError(t, err)
	assert.Equal(t, jpeg, img.Data)
	assert.Equal(t, constants.MIMEJPEG, img.ContentType)
	assert.Equal(t, "magick", runner.name)
	assert.Contains(t, runner.args, "-quality")
}

func TestNormalize_HeifConvertArgs(t *testing.T) {
	runner := &stubRunner{output: []byte{0xFF, 0xD8}}
	n := NewNormalizer(runner, "heif-convert", slog.Default())

	_, err := n.Normalize(context.Background(), []byte("heif-bytes"), constants.MIMEHEIF)
	require.NoError(t, err)
	assert.Equal(t, "heif-convert", runner.name)
	assert.Contains(t, runner.args, "-q")
}

func TestNormalize_ConverterFailure(t *testing.T) {
	runner := &stubRunner{err: errors.New("exit status 1")}
	n := NewNormalizer(runner, "magick", slog.Default())

	_, err := n.Normalize(context.Background(), []byte("heic-bytes"), constants.MIMEHEIC)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "transcode")
}

func TestNormalize_UnknownConverter(t *testing.T) {
	n := NewNormalizer(&stubRunner{}, "paint", slog.Default())

	_, err := n.Normalize(context.Background(), []byte("heic-bytes"), constants.MIMEHEIC)
	require.Error(t, err)
}

func TestNormalize_RejectsUnknownContentType(t *testing.T) {
	n := NewNormalizer(&stubRunner{}, "magick", slog.Default())

	_, err := n.Normalize(context.Background(), []byte("%PDF-1.4"), "application/pdf")
	require.Error(t, err)
}
