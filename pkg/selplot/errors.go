package selplot

import "github.com/meshsel/selplot/pkg/selplot/models"

// Errors are defined in models so the parser, compose and output packages
// can return them; they are re-exported here for callers.
type (
	LoadError          = models.LoadError
	MissingColumnError = models.MissingColumnError
	TitleMismatchError = models.TitleMismatchError
	AlignmentError     = models.AlignmentError
	ExportError        = models.ExportError
)

var (
	ErrFileNotFound     = models.ErrFileNotFound
	ErrInvalidFormat    = models.ErrInvalidFormat
	ErrSheetNotFound    = models.ErrSheetNotFound
	ErrHeaderOutOfRange = models.ErrHeaderOutOfRange
	ErrEmptyBatch       = models.ErrEmptyBatch
)
