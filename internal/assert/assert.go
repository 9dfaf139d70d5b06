package assert

import (
	"errors"
	"reflect"
	"testing"
)

func Equal[T any](t *testing.T, a T, b T) {
	t.Helper()
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("%v != %v", a, b)
	}
}

func NotEqual[T any](t *testing.T, a T, b T) {
	t.Helper()
	if reflect.DeepEqual(a, b) {
		t.Fatalf("%v == %v", a, b)
	}
}

func True(t *testing.T, value bool) {
	t.Helper()
	if !value {
		t.Fatal("value is false")
	}
}

func False(t *testing.T, value bool) {
	t.Helper()
	if value {
		t.Fatal("value is true")
	}
}

func ErrorIs(t *testing.T, err error, target error) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("error %v does not match %v", err, target)
	}
}

func NoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
