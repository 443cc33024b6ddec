package cjson

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"testing"
)

// TestHelper provides assertion utilities for the package tests.
type TestHelper struct {
	t *testing.T
}

// NewTestHelper creates a new test helper.
func NewTestHelper(t *testing.T) *TestHelper {
	return &TestHelper{t: t}
}

// AssertEqual checks if two values are equal.
func (h *TestHelper) AssertEqual(expected, actual any, msgAndArgs ...any) {
	h.t.Helper()
	if !reflect.DeepEqual(expected, actual) {
		msg := "Values are not equal"
		if len(msgAndArgs) > 0 {
			msg = fmt.Sprintf(msgAndArgs[0].(string), msgAndArgs[1:]...)
		}
		h.t.Errorf("%s\nExpected: %v (%T)\nActual: %v (%T)", msg, expected, expected, actual, actual)
	}
}

// AssertTrue checks that the condition holds.
func (h *TestHelper) AssertTrue(cond bool, msgAndArgs ...any) {
	h.t.Helper()
	if !cond {
		msg := "Expected condition to be true"
		if len(msgAndArgs) > 0 {
			msg = fmt.Sprintf(msgAndArgs[0].(string), msgAndArgs[1:]...)
		}
		h.t.Error(msg)
	}
}

// AssertFalse checks that the condition does not hold.
func (h *TestHelper) AssertFalse(cond bool, msgAndArgs ...any) {
	h.t.Helper()
	if cond {
		msg := "Expected condition to be false"
		if len(msgAndArgs) > 0 {
			msg = fmt.Sprintf(msgAndArgs[0].(string), msgAndArgs[1:]...)
		}
		h.t.Error(msg)
	}
}

// AssertNoError checks that error is nil.
func (h *TestHelper) AssertNoError(err error, msgAndArgs ...any) {
	h.t.Helper()
	if err != nil {
		msg := "Expected no error"
		if len(msgAndArgs) > 0 {
			msg = fmt.Sprintf(msgAndArgs[0].(string), msgAndArgs[1:]...)
		}
		h.t.Errorf("%s, but got: %v", msg, err)
	}
}

// AssertError checks that error is not nil.
func (h *TestHelper) AssertError(err error, msgAndArgs ...any) {
	h.t.Helper()
	if err == nil {
		msg := "Expected an error"
		if len(msgAndArgs) > 0 {
			msg = fmt.Sprintf(msgAndArgs[0].(string), msgAndArgs[1:]...)
		}
		h.t.Error(msg + ", but got nil")
	}
}

// AssertErrorText checks that the error renders exactly the given text.
func (h *TestHelper) AssertErrorText(err error, text string, msgAndArgs ...any) {
	h.t.Helper()
	if err == nil {
		msg := "Expected an error"
		if len(msgAndArgs) > 0 {
			msg = fmt.Sprintf(msgAndArgs[0].(string), msgAndArgs[1:]...)
		}
		h.t.Errorf("%s with text %q, but got nil", msg, text)
		return
	}
	if err.Error() != text {
		msg := "Error text mismatch"
		if len(msgAndArgs) > 0 {
			msg = fmt.Sprintf(msgAndArgs[0].(string), msgAndArgs[1:]...)
		}
		h.t.Errorf("%s\nExpected: %q\nActual: %q", msg, text, err.Error())
	}
}

// AssertErrorContains checks that error contains specific text.
func (h *TestHelper) AssertErrorContains(err error, contains string, msgAndArgs ...any) {
	h.t.Helper()
	if err == nil {
		msg := "Expected an error"
		if len(msgAndArgs) > 0 {
			msg = fmt.Sprintf(msgAndArgs[0].(string), msgAndArgs[1:]...)
		}
		h.t.Error(msg + ", but got nil")
		return
	}
	if !strings.Contains(err.Error(), contains) {
		msg := fmt.Sprintf("Expected error to contain '%s'", contains)
		if len(msgAndArgs) > 0 {
			msg = fmt.Sprintf(msgAndArgs[0].(string), msgAndArgs[1:]...)
		}
		h.t.Errorf("%s, but got: %v", msg, err)
	}
}

// AssertErrorIs checks that errors.Is matches the target sentinel.
func (h *TestHelper) AssertErrorIs(err, target error, msgAndArgs ...any) {
	h.t.Helper()
	if !errors.Is(err, target) {
		msg := fmt.Sprintf("Expected error to match %v", target)
		if len(msgAndArgs) > 0 {
			msg = fmt.Sprintf(msgAndArgs[0].(string), msgAndArgs[1:]...)
		}
		h.t.Errorf("%s, but got: %v", msg, err)
	}
}

// AssertPanic checks that function panics.
func (h *TestHelper) AssertPanic(fn func(), msgAndArgs ...any) {
	h.t.Helper()
	defer func() {
		if r := recover(); r == nil {
			msg := "Expected function to panic"
			if len(msgAndArgs) > 0 {
				msg = fmt.Sprintf(msgAndArgs[0].(string), msgAndArgs[1:]...)
			}
			h.t.Error(msg + ", but it didn't")
		}
	}()
	fn()
}

// AssertValueEqual checks structural Value equality (NaN-aware).
func (h *TestHelper) AssertValueEqual(expected, actual Value, msgAndArgs ...any) {
	h.t.Helper()
	if !Equal(expected, actual) {
		msg := "Values are not structurally equal"
		if len(msgAndArgs) > 0 {
			msg = fmt.Sprintf(msgAndArgs[0].(string), msgAndArgs[1:]...)
		}
		h.t.Errorf("%s\nExpected: %v\nActual: %v", msg, expected.Interface(), actual.Interface())
	}
}
