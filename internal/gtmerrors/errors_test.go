package gtmerrors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestErrorFormatting(t *testing.T) {
	tests := []struct {
		name  string
		err   *Error
		wants []string
	}{
		{
			name:  "without cause",
			err:   New(AccountNotFound, "no account named \"Acme\"", nil),
			wants: []string{"ACCOUNT_NOT_FOUND", "no account named"},
		},
		{
			name:  "with cause",
			err:   New(AuthFailed, "token exchange", errors.New("connection refused")),
			wants: []string{"AUTH_FAILED", "token exchange", "connection refused"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, want := range tt.wants {
				if !strings.Contains(msg, want) {
					t.Errorf("Error() = %q, want to contain %q", msg, want)
				}
			}
		})
	}
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := New(WorkspaceMissing, "container has no workspace", cause)

	if !errors.Is(err, cause) {
		t.Error("errors.Is() failed to find wrapped cause")
	}
}

func TestCodeOf(t *testing.T) {
	wrapped := fmt.Errorf("fetching snapshot: %w", New(ContainerNotFound, "no container", nil))

	if got := CodeOf(wrapped); got != ContainerNotFound {
		t.Errorf("CodeOf() = %q, want %q", got, ContainerNotFound)
	}
	if got := CodeOf(errors.New("plain")); got != "" {
		t.Errorf("CodeOf(plain error) = %q, want empty", got)
	}
}

func TestClassification(t *testing.T) {
	tests := []struct {
		code       Code
		notFound   bool
		configured bool
	}{
		{AccountNotFound, true, false},
		{ContainerNotFound, true, false},
		{WorkspaceMissing, false, true},
		{ConfigInvalid, false, true},
		{AuthFailed, false, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			err := New(tt.code, "x", nil)
			if got := IsNotFound(err); got != tt.notFound {
				t.Errorf("IsNotFound() = %v, want %v", got, tt.notFound)
			}
			if got := IsConfiguration(err); got != tt.configured {
				t.Errorf("IsConfiguration() = %v, want %v", got, tt.configured)
			}
		})
	}
}
