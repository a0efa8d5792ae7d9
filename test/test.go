// Package test contains helper functions useful for testing.
package test

import "testing"

// ExpectEquality compares a value against an expected value.
func ExpectEquality[T comparable](t *testing.T, value T, expectedValue T) bool {
	t.Helper()
	if value != expectedValue {
		t.Errorf("equality test of type %T failed: '%v' does not equal '%v'", value, value, expectedValue)
		return false
	}
	return true
}

// ExpectInequality compares a value against an expected value and fails if
// they are equal.
func ExpectInequality[T comparable](t *testing.T, value T, unexpectedValue T) bool {
	t.Helper()
	if value == unexpectedValue {
		t.Errorf("inequality test of type %T failed: '%v' does equal '%v'", value, value, unexpectedValue)
		return false
	}
	return true
}

// ExpectSuccess is used to test for a nil error or a true boolean.
func ExpectSuccess(t *testing.T, v any) bool {
	t.Helper()

	switch v := v.(type) {
	case error:
		if v != nil {
			t.Errorf("success test of type %T failed: %v", v, v)
			return false
		}
	case bool:
		if !v {
			t.Errorf("success test of type %T failed", v)
			return false
		}
	case nil:
	default:
		t.Fatalf("unsupported type (%T) for ExpectSuccess()", v)
		return false
	}

	return true
}

// ExpectFailure is used to test for a non-nil error or a false boolean.
func ExpectFailure(t *testing.T, v any) bool {
	t.Helper()

	switch v := v.(type) {
	case error:
		if v == nil {
			t.Errorf("failure test of type %T failed", v)
			return false
		}
	case bool:
		if v {
			t.Errorf("failure test of type %T failed", v)
			return false
		}
	case nil:
		t.Errorf("failure test of type %T failed", v)
		return false
	default:
		t.Fatalf("unsupported type (%T) for ExpectFailure()", v)
		return false
	}

	return true
}
