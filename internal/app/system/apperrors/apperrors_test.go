package apperrors_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/dalemusser/mentorhub/internal/app/system/apperrors"
)

func TestStatusMapping(t *testing.T) {
	cases := []struct {
		err  *apperrors.Error
		want int
	}{
		{apperrors.Validation("bad input"), http.StatusBadRequest},
		{apperrors.Conflict("already there"), http.StatusBadRequest},
		{apperrors.Authentication("wrong password"), http.StatusUnauthorized},
		{apperrors.NotFound("missing"), http.StatusNotFound},
		{apperrors.Storage("db broke", errors.New("io")), http.StatusInternalServerError},
	}
	for _, c := range cases {
		if got := c.err.Status(); got != c.want {
			t.Errorf("%q: status got %d, want %d", c.err.Message, got, c.want)
		}
	}
}

func TestErrorString(t *testing.T) {
	plain := apperrors.Validation("bad input")
	if plain.Error() != "bad input" {
		t.Errorf("got %q", plain.Error())
	}

	wrapped := apperrors.Storage("db broke", errors.New("io timeout"))
	if wrapped.Error() != "db broke: io timeout" {
		t.Errorf("got %q", wrapped.Error())
	}
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("io timeout")
	wrapped := apperrors.Storage("db broke", cause)
	if !errors.Is(wrapped, cause) {
		t.Error("expected errors.Is to find the cause")
	}
}

func TestFrom(t *testing.T) {
	orig := apperrors.NotFound("missing")
	if got := apperrors.From(fmt.Errorf("wrapped: %w", orig), "fallback"); got != orig {
		t.Errorf("expected the original *Error, got %v", got)
	}

	plain := errors.New("boom")
	got := apperrors.From(plain, "fallback")
	if got.Kind != apperrors.KindStorage {
		t.Errorf("kind: got %v, want KindStorage", got.Kind)
	}
	if got.Message != "fallback" {
		t.Errorf("message: got %q", got.Message)
	}
	if !errors.Is(got, plain) {
		t.Error("expected the cause to be wrapped")
	}
}
