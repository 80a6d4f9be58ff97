package testutil

import (
	"reflect"
	"strings"
	"testing"
)

// AssertEqual checks that two comparable values are equal.
func AssertEqual(t *testing.T, got, want interface{}, msg string) {
	t.Helper()
	if got != want {
		t.Errorf("%s: got %v, want %v", msg, got, want)
	}
}

// AssertDeepEqual checks equality with reflect.DeepEqual (slices, maps, structs).
func AssertDeepEqual(t *testing.T, got, want interface{}, msg string) {
	t.Helper()
	if !reflect.DeepEqual(got, want) {
		t.Errorf("%s:\n got  %#v\n want %#v", msg, got, want)
	}
}

// AssertNotNil checks that a value is not nil.
func AssertNotNil(t *testing.T, got interface{}, msg string) {
	t.Helper()
	if got == nil {
		t.Errorf("%s: expected non-nil value", msg)
	}
}

// AssertError checks that err is not nil.
func AssertError(t *testing.T, err error, msg string) {
	t.Helper()
	if err == nil {
		t.Errorf("%s: expected error, got nil", msg)
	}
}

// AssertNoError checks that err is nil.
func AssertNoError(t *testing.T, err error, msg string) {
	t.Helper()
	if err != nil {
		t.Errorf("%s: unexpected error: %v", msg, err)
	}
}

// AssertTrue checks that a condition holds.
func AssertTrue(t *testing.T, condition bool, msg string) {
	t.Helper()
	if !condition {
		t.Errorf("%s: expected true, got false", msg)
	}
}

// AssertFalse checks that a condition does not hold.
func AssertFalse(t *testing.T, condition bool, msg string) {
	t.Helper()
	if condition {
		t.Errorf("%s: expected false, got true", msg)
	}
}

// AssertContains checks that a slice contains an element OR that a string contains a substring.
func AssertContains(t *testing.T, container interface{}, element string, msg string) {
	t.Helper()

	switch v := container.(type) {
	case []string:
		for _, item := range v {
			if item == element {
				return
			}
		}
		t.Errorf("%s: slice %v does not contain %s", msg, v, element)
	case string:
		if !strings.Contains(v, element) {
			t.Errorf("%s: string %q does not contain %q", msg, v, element)
		}
	default:
		t.Errorf("%s: unsupported type for AssertContains", msg)
	}
}

// AssertLen checks the length of a string slice.
func AssertLen(t *testing.T, slice []string, want int, msg string) {
	t.Helper()
	if len(slice) != want {
		t.Errorf("%s: got length %d, want %d (%v)", msg, len(slice), want, slice)
	}
}
