package errcode

import (
	"errors"

	"github.com/gnames/gn"
)

const (
	UnknownError gn.ErrorCode = iota

	// File System errors
	CreateDirError
	CopyFileError
	ReadFileError
	WriteFileError
	DuplicateOutputError

	// Logging errors
	CreateLogFileError

	// Taxonomy dump errors
	ParseNodeError
	ParseNameError

	// Graft argument errors
	MissingRequiredArgumentError
	InvalidParentRankError
	InvalidLabelError

	// Graft errors
	RootNotFoundError
	RankExhaustedError
	UnknownRankError
	InvalidSequenceIDError
	DuplicateSequenceIDError
)

// Of returns the code of a gn.Error found in the error chain, or
// UnknownError for other errors.
func Of(err error) gn.ErrorCode {
	var gnErr *gn.Error
	if errors.As(err, &gnErr) {
		return gnErr.Code
	}
	return UnknownError
}
