package testing

import (
	"reflect"
	"testing"
)

// AssertEqual asserts that values are deeply equal.
func AssertEqual[T any](t testing.TB, a, b T) {
	t.Helper()

	if !reflect.DeepEqual(a, b) {
		t.Fatalf("expected '%v' to be equal to '%v'", a, b)
	}
}

// AssertTrue asserts that the condition holds.
func AssertTrue(t testing.TB, ok bool, desc string) {
	t.Helper()

	if !ok {
		t.Fatalf("expected %s", desc)
	}
}

// AssertPanics asserts that f panics.
func AssertPanics(t testing.TB, f func()) {
	t.Helper()

	defer func() {
		if recover() == nil {
			t.Fatalf("expected a panic")
		}
	}()

	f()
}
