// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, and utility functions

package errors_test

import (
	stderrors "errors"
	"testing"

	"github.com/dotsetup/templater/pkg/errors"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "invalid_input_error",
			code:    errors.ErrInvalidInput,
			message: "invalid variable mapping",
			wantStr: "[INVALID_INPUT] invalid variable mapping",
		},
		{
			name:    "var_missing_error",
			code:    errors.ErrVarMissing,
			message: "unresolved variables: x, y",
			wantStr: "[VAR_MISSING] unresolved variables: x, y",
		},
		{
			name:    "var_name_error",
			code:    errors.ErrVarName,
			message: "invalid variable name",
			wantStr: "[VAR_NAME] invalid variable name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			if err.Code != tt.code {
				t.Errorf("New() code = %v, want %v", err.Code, tt.code)
			}

			if err.Message != tt.message {
				t.Errorf("New() message = %q, want %q", err.Message, tt.message)
			}

			if err.Details == nil {
				t.Error("New() details should be initialized")
			}

			if got := err.Error(); got != tt.wantStr {
				t.Errorf("Error() = %q, want %q", got, tt.wantStr)
			}
		})
	}
}

func TestNewf(t *testing.T) {
	err := errors.Newf(errors.ErrVarName, "invalid variable name %q", "bad key")

	want := `[VAR_NAME] invalid variable name "bad key"`
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestWrap(t *testing.T) {
	t.Run("wraps_error", func(t *testing.T) {
		inner := stderrors.New("boom")
		err := errors.Wrap(inner, errors.ErrInternal, "render failed")

		want := "[INTERNAL] render failed: boom"
		if got := err.Error(); got != want {
			t.Errorf("Error() = %q, want %q", got, want)
		}

		if !stderrors.Is(err, inner) {
			t.Error("wrapped error should match errors.Is on the inner error")
		}
	})

	t.Run("nil_error_returns_nil", func(t *testing.T) {
		if err := errors.Wrap(nil, errors.ErrInternal, "ignored"); err != nil {
			t.Errorf("Wrap(nil) = %v, want nil", err)
		}
	})

	t.Run("wrapf_formats_message", func(t *testing.T) {
		inner := stderrors.New("boom")
		err := errors.Wrapf(inner, errors.ErrInternal, "render of %q failed", "tmpl")

		want := `[INTERNAL] render of "tmpl" failed: boom`
		if got := err.Error(); got != want {
			t.Errorf("Error() = %q, want %q", got, want)
		}
	})
}

func TestErrorIs(t *testing.T) {
	err := errors.New(errors.ErrVarMissing, "unresolved variables: z")

	if !stderrors.Is(err, errors.New(errors.ErrVarMissing, "different message")) {
		t.Error("errors with the same code should match via errors.Is")
	}

	if stderrors.Is(err, errors.New(errors.ErrVarName, "unresolved variables: z")) {
		t.Error("errors with different codes should not match via errors.Is")
	}
}

func TestWithDetail(t *testing.T) {
	err := errors.New(errors.ErrVarMissing, "unresolved variables").
		WithDetail("variables", []string{"x", "y"}).
		WithDetails(map[string]interface{}{"count": 2})

	if got := err.Details["count"]; got != 2 {
		t.Errorf("Details[count] = %v, want 2", got)
	}

	vars, ok := err.Details["variables"].([]string)
	if !ok || len(vars) != 2 {
		t.Errorf("Details[variables] = %v, want [x y]", err.Details["variables"])
	}
}

func TestCodeHelpers(t *testing.T) {
	err := errors.New(errors.ErrVarName, "invalid variable name").
		WithDetail("name", "bad key")

	if !errors.IsErrorCode(err, errors.ErrVarName) {
		t.Error("IsErrorCode should match the error's code")
	}

	if errors.IsErrorCode(err, errors.ErrVarMissing) {
		t.Error("IsErrorCode should not match a different code")
	}

	if got := errors.GetErrorCode(err); got != errors.ErrVarName {
		t.Errorf("GetErrorCode() = %v, want %v", got, errors.ErrVarName)
	}

	if got := errors.GetErrorCode(stderrors.New("plain")); got != errors.ErrUnknown {
		t.Errorf("GetErrorCode(plain) = %v, want %v", got, errors.ErrUnknown)
	}

	details := errors.GetErrorDetails(err)
	if details == nil || details["name"] != "bad key" {
		t.Errorf("GetErrorDetails() = %v, want name=bad key", details)
	}

	if errors.GetErrorDetails(stderrors.New("plain")) != nil {
		t.Error("GetErrorDetails(plain) should be nil")
	}
}
