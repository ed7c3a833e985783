package iofs

import (
	"errors"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/kgraft/pkg/errcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestErrors_Structure verifies codes, user messages and wrapping of file
// system errors.
func TestErrors_Structure(t *testing.T) {
	originalErr := errors.New("root cause")

	tests := []struct {
		name    string
		err     error
		code    gn.ErrorCode
		path    string
		errText string
	}{
		{
			name:    "CreateDirError",
			err:     CreateDirError("/test/dir", originalErr),
			code:    errcode.CreateDirError,
			path:    "/test/dir",
			errText: "cannot create",
		},
		{
			name:    "CopyFileError",
			err:     CopyFileError("/test/config.yaml", originalErr),
			code:    errcode.CopyFileError,
			path:    "/test/config.yaml",
			errText: "cannot copy",
		},
		{
			name:    "ReadFileError",
			err:     ReadFileError("/test/nodes.dmp", originalErr),
			code:    errcode.ReadFileError,
			path:    "/test/nodes.dmp",
			errText: "cannot read /test/nodes.dmp",
		},
		{
			name:    "WriteFileError",
			err:     WriteFileError("/test/K2.fasta", originalErr),
			code:    errcode.WriteFileError,
			path:    "/test/K2.fasta",
			errText: "cannot write /test/K2.fasta",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gnErr, ok := tt.err.(*gn.Error)
			require.True(t, ok,
				"Error should be of type *gn.Error")

			assert.Equal(t, tt.code, gnErr.Code)
			assert.Contains(t, gnErr.Msg, "%s",
				"Message should contain format placeholder")

			require.Len(t, gnErr.Vars, 1,
				"Should have one variable for message formatting")
			assert.Equal(t, tt.path, gnErr.Vars[0])

			assert.ErrorIs(t, gnErr.Err, originalErr,
				"Should wrap original error")
			assert.Contains(t, gnErr.Err.Error(), tt.errText)
			// caller context from runtime.Caller
			assert.Contains(t, gnErr.Err.Error(), "from")
		})
	}
}
