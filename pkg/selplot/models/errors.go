package models

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the input file is not a readable workbook.
var ErrInvalidFormat = errors.New("invalid spreadsheet format")

// ErrSheetNotFound indicates the requested sheet is absent from the workbook.
var ErrSheetNotFound = errors.New("sheet not found")

// ErrHeaderOutOfRange indicates the sheet has no row at the header offset.
var ErrHeaderOutOfRange = errors.New("header row out of range")

// ErrEmptyBatch indicates every pair of a batch was skipped.
var ErrEmptyBatch = errors.New("no charts left in batch")

// LoadError represents a failure to read an input table.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// MissingColumnError reports a mapped column absent from a table.
type MissingColumnError struct {
	Column string
	Source string
}

func (e *MissingColumnError) Error() string {
	if e.Source == "" {
		return fmt.Sprintf("column %q not present", e.Column)
	}
	return fmt.Sprintf("column %q not present in %s", e.Column, e.Source)
}

// TitleMismatchError reports a file name that does not match the title pattern.
type TitleMismatchError struct {
	Path    string
	Pattern string
}

func (e *TitleMismatchError) Error() string {
	return fmt.Sprintf("file name %q does not match title pattern %q", e.Path, e.Pattern)
}

// AlignmentError reports batch input lists of different lengths.
type AlignmentError struct {
	Left  int
	Right int
}

func (e *AlignmentError) Error() string {
	return fmt.Sprintf("batch inputs not aligned: %d catch-share files vs %d selection files", e.Left, e.Right)
}

// ExportError represents a failure writing or opening an output artifact.
type ExportError struct {
	Path string
	Op   string // "write", "spec", "snapshot", "open"
	Err  error
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("export %s (%s): %v", e.Path, e.Op, e.Err)
}

func (e *ExportError) Unwrap() error {
	return e.Err
}
