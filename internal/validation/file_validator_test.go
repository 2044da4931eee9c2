package validation

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "generationscli/internal/errors"
	"generationscli/internal/shared/testutil"
)

func TestValidateInputFile(t *testing.T) {
	dir := t.TempDir()
	good := testutil.WriteFile(t, dir, "members.csv", "Party,DOB year\nSPD,1970\n")
	empty := testutil.WriteFile(t, dir, "empty.csv", "")
	lock := testutil.WriteFile(t, dir, "~$members.xlsx", "lock")

	tests := []struct {
		name    string
		path    string
		wantErr string
	}{
		{name: "valid", path: good},
		{name: "missing", path: filepath.Join(dir, "absent.csv"), wantErr: "does not exist"},
		{name: "directory", path: dir, wantErr: "is a directory"},
		{name: "empty", path: empty, wantErr: "is empty"},
		{name: "lock file", path: lock, wantErr: "temporary spreadsheet"},
	}

	logger, _ := testutil.NewTestLogger(t)
	v := NewFileValidator(logger)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateInputFile(tt.path)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.True(t, apperrors.IsType(err, apperrors.ErrTypeLoad))
		})
	}
}

func TestValidateInputs_StopsAtFirstFailure(t *testing.T) {
	dir := t.TempDir()
	good := testutil.WriteFile(t, dir, "a.csv", "x\n")
	missing := filepath.Join(dir, "b.csv")

	err := NewFileValidator(nil).ValidateInputs(good, missing, filepath.Join(dir, "c.csv"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "b.csv")

	assert.NoError(t, NewFileValidator(nil).ValidateInputs(good))
}

func TestValidateOutputDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "figures", "nested")

	require.NoError(t, NewFileValidator(nil).ValidateOutputDirectory(dir))

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	_, err = os.Stat(filepath.Join(dir, ".write_test"))
	assert.True(t, os.IsNotExist(err))
}
