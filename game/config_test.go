package game

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tt "github.com/gnoswap-labs/guess/internal/types"
)

func TestConfigRoundTrip(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "guess.yaml")

	require.NoError(t, WriteConfigurationFile(path, DefaultConfig()))

	config, err := ParseConfigurationFile(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), config)
}

func TestParseConfigurationFile(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		content  string
		expected Config
		wantErr  bool
	}{
		{
			name:     "empty file keeps defaults",
			content:  "",
			expected: DefaultConfig(),
		},
		{
			name:    "partial override",
			content: "range:\n  min: 1\n  max: 10\necho: false\n",
			expected: Config{
				Name:  "guess",
				Range: tt.Range{Min: 1, Max: 10},
				Echo:  false,
				Color: true,
			},
		},
		{
			name:    "inverted range",
			content: "range:\n  min: 50\n  max: 5\n",
			wantErr: true,
		},
		{
			name:    "unknown field",
			content: "rules: {}\n",
			wantErr: true,
		},
		{
			name:    "malformed yaml",
			content: "range: [\n",
			wantErr: true,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			path := filepath.Join(t.TempDir(), "guess.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tc.content), 0o644))

			config, err := ParseConfigurationFile(path)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, config)
		})
	}
}

func TestParseConfigurationFileMissing(t *testing.T) {
	t.Parallel()
	_, err := ParseConfigurationFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
