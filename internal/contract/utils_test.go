package contract

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/huangsam/maturity/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetPlainBucketLabel(t *testing.T) {
	tests := []struct {
		name     string
		input    schema.ActionBucket
		expected string
	}{
		{"no action", schema.NoAction, "No action required"},
		{"limited", schema.Limited, "Limited action required"},
		{"significant", schema.Significant, "Significant action required"},
		{"extensive", schema.Extensive, "Extensive action required"},
		{"unknown falls back", schema.ActionBucket("bogus"), "No action required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, GetPlainBucketLabel(tt.input))
		})
	}
}

func TestGetColorBucketLabel(t *testing.T) {
	for _, b := range schema.AllBuckets {
		t.Run(string(b), func(t *testing.T) {
			// Should contain the plain label
			assert.Contains(t, GetColorBucketLabel(b), GetPlainBucketLabel(b))
		})
	}
}

func TestSelectOutputFile(t *testing.T) {
	t.Run("empty path returns stdout", func(t *testing.T) {
		file, err := SelectOutputFile("")
		require.NoError(t, err)
		assert.Equal(t, os.Stdout, file)
	})

	t.Run("valid path creates file", func(t *testing.T) {
		tempFile := filepath.Join(t.TempDir(), "test_output.txt")

		file, err := SelectOutputFile(tempFile)
		require.NoError(t, err)
		assert.NotNil(t, file)
		_ = file.Close()

		// Verify file was created
		_, err = os.Stat(tempFile)
		assert.NoError(t, err)
	})
}

func TestGetHistoryDBFilePath(t *testing.T) {
	path := GetHistoryDBFilePath()

	assert.NotEmpty(t, path)
	assert.Contains(t, path, ".maturity_history.db")

	homeDir, err := os.UserHomeDir()
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(path, homeDir), "path %s should start with home dir %s", path, homeDir)
}

func TestSplitList(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty", "", nil},
		{"single", "Efficiency", []string{"Efficiency"}},
		{"trims blanks", " a , ,b,", []string{"a", "b"}},
		{"keeps inner spaces", "People & Culture,Engineering", []string{"People & Culture", "Engineering"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitList(tt.input))
		})
	}
}

func TestTruncateText(t *testing.T) {
	assert.Equal(t, "short", TruncateText("short", 10))
	assert.Equal(t, "Establi...", TruncateText("Establish a governance board", 10))
	assert.Equal(t, "abcdef", TruncateText("abcdef", 3), "too narrow to truncate")
	assert.Equal(t, "数据治...", TruncateText("数据治理委员会成立", 6))
}

func TestParseBoolString(t *testing.T) {
	tests := []struct {
		input   string
		want    bool
		wantErr bool
	}{
		{"yes", true, false},
		{"TRUE", true, false},
		{"1", true, false},
		{"no", false, false},
		{"False", false, false},
		{"0", false, false},
		{"maybe", false, true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseBoolString(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewLogger(t *testing.T) {
	for _, env := range ValidAppEnvs {
		logger, err := NewLogger(env)
		require.NoError(t, err)
		assert.NotNil(t, logger)
		_ = logger.Sync()
	}
}
