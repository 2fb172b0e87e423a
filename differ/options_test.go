package differ

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fresha/openapi-diff/oaserrors"
	"github.com/fresha/openapi-diff/parser"
)

func TestDiffWithOptions_Config(t *testing.T) {
	parsed, err := parser.ParseWithOptions(parser.WithFilePath(petstoreV1))
	require.NoError(t, err)

	tests := []struct {
		name string
		opts []Option
	}{
		{"no source", []Option{WithTargetFilePath(petstoreV2)}},
		{"no target", []Option{WithSourceFilePath(petstoreV1)}},
		{"two sources", []Option{WithSourceFilePath(petstoreV1), WithSourceParsed(parsed), WithTargetFilePath(petstoreV2)}},
		{"two targets", []Option{WithSourceFilePath(petstoreV1), WithTargetParsed(parsed), WithTargetFilePath(petstoreV2)}},
		{"nil parse result", []Option{WithSourceParsed(nil), WithTargetFilePath(petstoreV2)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := DiffWithOptions(tt.opts...)
			require.Error(t, err)
			assert.ErrorIs(t, err, oaserrors.ErrConfig)
			assert.Nil(t, d)
		})
	}
}

func TestDiffWithOptions_MixedInputs(t *testing.T) {
	parsed, err := parser.ParseWithOptions(parser.WithFilePath(petstoreV1))
	require.NoError(t, err)

	d, err := DiffWithOptions(
		WithSourceParsed(parsed),
		WithTargetFilePath(petstoreV2),
	)
	require.NoError(t, err)
	assert.Len(t, d.Items(), 3)
	assert.Equal(t, "2.2.3", d.NewVersion())
}

func TestDiffWithOptions_IdentityMismatch(t *testing.T) {
	d, err := DiffWithOptions(
		WithSourceFilePath(petstoreV1),
		WithTargetFilePath(bookstore),
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, oaserrors.ErrIdentityMismatch)
	require.NotNil(t, d)
	assert.Empty(t, d.Items())
}

func TestDiffWithOptions_ParseFailure(t *testing.T) {
	_, err := DiffWithOptions(
		WithSourceFilePath("../testdata/does-not-exist.yaml"),
		WithTargetFilePath(petstoreV2),
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse source")
}

func TestDiffWithOptions_Logger(t *testing.T) {
	var buf bytes.Buffer
	_, err := DiffWithOptions(
		WithSourceFilePath(petstoreV1),
		WithTargetFilePath(petstoreV2),
		WithLogger(parser.NewTextLogger(&buf, true)),
	)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "diff pass complete")
	assert.Contains(t, buf.String(), "pass=paths")
}

func TestNew_InvalidOptionsAreLogged(t *testing.T) {
	var buf bytes.Buffer
	d := New(nil, nil,
		WithLogger(parser.NewTextLogger(&buf, false)),
		WithSourceParsed(nil),
		WithColor(true),
	)
	require.NotNil(t, d)
	require.NotNil(t, d.color)
	assert.True(t, *d.color)
	assert.Contains(t, buf.String(), "level=WARN")
	assert.Contains(t, buf.String(), "ignoring invalid options")
	assert.Contains(t, buf.String(), "WithSourceParsed")
}

func TestNew_ValidOptionsLogNothing(t *testing.T) {
	var buf bytes.Buffer
	New(nil, nil, WithLogger(parser.NewTextLogger(&buf, false)), WithColor(false))
	assert.Empty(t, buf.String())
}

func TestLoadPair(t *testing.T) {
	source, target, err := LoadPair(petstoreV1, "../testdata/petstore-v1.json")
	require.NoError(t, err)
	assert.Equal(t, parser.SourceFormatYAML, source.SourceFormat)
	assert.Equal(t, parser.SourceFormatJSON, target.SourceFormat)

	_, _, err = LoadPair(petstoreV1, "../testdata/swagger.yaml")
	require.Error(t, err)
	assert.ErrorIs(t, err, oaserrors.ErrParse)
}
