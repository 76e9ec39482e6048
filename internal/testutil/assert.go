// Package testutil provides shared test utilities for the PGN parser.
package testutil

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/MitchellWeg/PGN-Parser/internal/chess"
)

// ignoreProvenance drops the offset bookkeeping when comparing games.
var ignoreProvenance = cmpopts.IgnoreFields(chess.Game{}, "StartOffset", "EndOffset", "Partial")

// AssertEqual compares got and want using cmp.Diff and reports differences.
// The msgAndArgs are optional and provide additional context if the assertion fails.
func AssertEqual(t *testing.T, got, want any, msgAndArgs ...any) {
	t.Helper()
	if diff := cmp.Diff(want, got, cmpopts.EquateEmpty()); diff != "" {
		reportf(t, msgAndArgs, "mismatch (-want +got):\n%s", diff)
	}
}

// AssertGamesEqual compares the tags and movetext of two game lists,
// ignoring where in the input each game was found.
func AssertGamesEqual(t *testing.T, got, want []*chess.Game, msgAndArgs ...any) {
	t.Helper()
	if diff := cmp.Diff(want, got, ignoreProvenance, cmpopts.EquateEmpty()); diff != "" {
		reportf(t, msgAndArgs, "games mismatch (-want +got):\n%s", diff)
	}
}

// AssertNoError fails if err is not nil.
func AssertNoError(t *testing.T, err error, msgAndArgs ...any) {
	t.Helper()
	if err != nil {
		reportf(t, msgAndArgs, "unexpected error: %v", err)
	}
}

// AssertErrorIs fails unless target is in err's chain.
func AssertErrorIs(t *testing.T, err, target error, msgAndArgs ...any) {
	t.Helper()
	if !errors.Is(err, target) {
		reportf(t, msgAndArgs, "error %v does not match %v", err, target)
	}
}

// AssertContains fails if substr is not found in got.
func AssertContains(t *testing.T, got, substr string, msgAndArgs ...any) {
	t.Helper()
	if !strings.Contains(got, substr) {
		reportf(t, msgAndArgs, "%q does not contain %q", got, substr)
	}
}

// AssertTrue fails if condition is false.
func AssertTrue(t *testing.T, condition bool, msgAndArgs ...any) {
	t.Helper()
	if !condition {
		reportf(t, msgAndArgs, "expected true but got false")
	}
}

// AssertNil fails if got is not nil.
// It handles both untyped nil and typed nil (e.g., (*chess.Game)(nil)).
func AssertNil(t *testing.T, got any, msgAndArgs ...any) {
	t.Helper()
	if !isNil(got) {
		reportf(t, msgAndArgs, "expected nil but got %v", got)
	}
}

// isNil checks if a value is nil, handling both untyped and typed nils.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Slice, reflect.Map, reflect.Chan, reflect.Func:
		return rv.IsNil()
	}
	return false
}

func reportf(t *testing.T, msgAndArgs []any, format string, args ...any) {
	t.Helper()
	detail := fmt.Sprintf(format, args...)
	if msg := formatMessage(msgAndArgs...); msg != "" {
		t.Errorf("%s: %s", msg, detail)
		return
	}
	t.Error(detail)
}

// formatMessage formats optional message arguments into a string.
func formatMessage(msgAndArgs ...any) string {
	if len(msgAndArgs) == 0 {
		return ""
	}
	if s, ok := msgAndArgs[0].(string); ok {
		if len(msgAndArgs) == 1 {
			return s
		}
		return fmt.Sprintf(s, msgAndArgs[1:]...)
	}
	return fmt.Sprintf("%v", msgAndArgs[0])
}
