package scenario

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiscover(t *testing.T) {
	got, err := Discover("testdata/library")
	require.NoError(t, err)
	assert.Equal(t, []string{"morning.yaml", "nested/evening.yml"}, got)
}

func TestDiscover_MissingDir(t *testing.T) {
	got, err := Discover(filepath.Join(t.TempDir(), "nope"))
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = Discover("")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestName(t *testing.T) {
	assert.Equal(t, "nested/evening", Name("nested/evening.yml"))
	assert.Equal(t, "morning", Name("morning.yaml"))
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name    string
		arg     string
		want    string
		wantErr bool
	}{
		{name: "existing path", arg: "testdata/short.yaml", want: "testdata/short.yaml"},
		{name: "by name", arg: "morning", want: filepath.Join("testdata/library", "morning.yaml")},
		{name: "nested by name", arg: "nested/evening", want: filepath.Join("testdata/library", "nested", "evening.yml")},
		{name: "by relative file", arg: "nested/evening.yml", want: filepath.Join("testdata/library", "nested", "evening.yml")},
		{name: "unknown", arg: "afternoon", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Resolve("testdata/library", tt.arg)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			_, err = Load(got)
			assert.NoError(t, err)
		})
	}
}
