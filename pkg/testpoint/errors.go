package testpoint

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for errors.Is checks. The concrete error types below carry
// the details and match these through their Is methods.
var (
	ErrReferenceNotFound      = errors.New("reference designator not found")
	ErrAmbiguousReference     = errors.New("reference designator is not unique")
	ErrPadNotFound            = errors.New("pad not found")
	ErrInternalConsistency    = errors.New("internal consistency failure")
	ErrRecordNotFound         = errors.New("report record not found")
	ErrEmptyPropertySelection = errors.New("no pads carry the test point property")
)

// ReferenceNotFoundError reports a query whose reference designator matches no
// footprint on the board.
type ReferenceNotFoundError struct {
	Reference string
}

func (e *ReferenceNotFoundError) Error() string {
	return fmt.Sprintf("ref des %q not found", e.Reference)
}

func (e *ReferenceNotFoundError) Is(target error) bool {
	return target == ErrReferenceNotFound
}

// AmbiguousReferenceError reports a reference designator shared by more than
// one footprint.
type AmbiguousReferenceError struct {
	Reference string
	Count     int
}

func (e *AmbiguousReferenceError) Error() string {
	return fmt.Sprintf("ref des %q matches %d footprints", e.Reference, e.Count)
}

func (e *AmbiguousReferenceError) Is(target error) bool {
	return target == ErrAmbiguousReference
}

// PadNotFoundError reports a pad identifier missing from an existing footprint.
type PadNotFoundError struct {
	Reference string
	Requested string
	Available []string
}

func (e *PadNotFoundError) Error() string {
	return fmt.Sprintf("pad %s not found in footprint %s (%s)",
		e.Requested, e.Reference, strings.Join(e.Available, ", "))
}

func (e *PadNotFoundError) Is(target error) bool {
	return target == ErrPadNotFound
}

// InternalConsistencyError reports a pad handle that cannot be used to build a
// report. Index is the position of the offending handle in the input.
type InternalConsistencyError struct {
	Index  int
	Reason string
}

func (e *InternalConsistencyError) Error() string {
	return fmt.Sprintf("pad %d: %s", e.Index, e.Reason)
}

func (e *InternalConsistencyError) Is(target error) bool {
	return target == ErrInternalConsistency
}

// RecordNotFoundError reports a probe-distance lookup for an unknown record.
type RecordNotFoundError struct {
	Name string
}

func (e *RecordNotFoundError) Error() string {
	return fmt.Sprintf("record %q not found in report", e.Name)
}

func (e *RecordNotFoundError) Is(target error) bool {
	return target == ErrRecordNotFound
}

// NoticeKind classifies a non-fatal diagnostic.
type NoticeKind string

const (
	// NoticeOriginUnavailable means the auxiliary origin was requested but the
	// board defines none. The board zero was used instead.
	NoticeOriginUnavailable NoticeKind = "ORIGIN_UNAVAILABLE"
)

// Notice is a non-fatal diagnostic returned alongside a result.
type Notice struct {
	Kind    NoticeKind
	Message string
}

func (n Notice) String() string {
	return fmt.Sprintf("%s: %s", n.Kind, n.Message)
}
