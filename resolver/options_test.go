package resolver

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apiweld/apiweld/welderrors"
)

func TestWeldRequiresFilePath(t *testing.T) {
	_, err := Weld()
	require.Error(t, err)
	assert.True(t, errors.Is(err, welderrors.ErrConfig))

	var cfgErr *welderrors.ConfigError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, "WithFilePath", cfgErr.Option)
}

func TestWeldOptionValidation(t *testing.T) {
	tests := []struct {
		name string
		opt  Option
	}{
		{name: "empty file path", opt: WithFilePath("")},
		{name: "zero max passes", opt: WithMaxPasses(0)},
		{name: "negative max passes", opt: WithMaxPasses(-2)},
		{name: "zero max file size", opt: WithMaxFileSize(0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Weld(tt.opt)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "invalid options")
		})
	}
}

func TestWeldNilOptionsAreIgnored(t *testing.T) {
	dir := t.TempDir()
	path := writeFixture(t, dir, "api.yaml", "info: {title: Options}\n")

	result, err := Weld(WithFilePath(path), nil, WithoutNormalizers())
	require.NoError(t, err)
	require.NotNil(t, result.Document)
}
