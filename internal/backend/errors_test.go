package backend

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	k8serrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	"github.com/Taishi66/kdash/internal/domain"
)

func statusErr(code int32, msg string) *k8serrors.StatusError {
	return &k8serrors.StatusError{ErrStatus: metav1.Status{Code: code, Message: msg}}
}

func TestClassifyError_Nil(t *testing.T) {
	if err := classifyError(nil, "http://dash:9090"); err != nil {
		t.Errorf("classifyError(nil) = %v, want nil", err)
	}
}

func TestClassifyError_StatusCodes(t *testing.T) {
	tests := []struct {
		name string
		code int32
		want domain.ErrType
	}{
		{"401", http.StatusUnauthorized, domain.ErrTokenExpired},
		{"403", http.StatusForbidden, domain.ErrForbidden},
		{"404", http.StatusNotFound, domain.ErrNotFound},
		{"409", http.StatusConflict, domain.ErrConflict},
		{"429", http.StatusTooManyRequests, domain.ErrRateLimited},
		{"500", http.StatusInternalServerError, domain.ErrServerError},
		{"502", http.StatusBadGateway, domain.ErrServerError},
		{"400", http.StatusBadRequest, domain.ErrUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := statusErr(tt.code, "boom")
			err := classifyError(raw, "")

			var apiErr *domain.APIError
			if !errors.As(err, &apiErr) {
				t.Fatal("expected APIError")
			}
			if apiErr.Type != tt.want {
				t.Errorf("Type = %v, want %v", apiErr.Type, tt.want)
			}
			if apiErr.Unwrap() != raw {
				t.Error("Unwrap should return original error")
			}
		})
	}
}

func TestClassifyError_ForbiddenKeepsServerMessage(t *testing.T) {
	err := classifyError(statusErr(http.StatusForbidden, "pods is forbidden"), "")
	if err.Error() != "pods is forbidden" {
		t.Errorf("Error() = %q, want %q", err.Error(), "pods is forbidden")
	}
}

func TestClassifyError_401MentionsServer(t *testing.T) {
	err := classifyError(statusErr(http.StatusUnauthorized, ""), "https://dash.example.com")
	if !strings.Contains(err.Error(), "dash.example.com") {
		t.Errorf("401 message should contain server URL, got: %s", err.Error())
	}

	err = classifyError(statusErr(http.StatusUnauthorized, ""), "")
	if !strings.Contains(err.Error(), "the dashboard") {
		t.Errorf("401 message without URL = %q", err.Error())
	}
}

func TestClassifyError_TLS(t *testing.T) {
	tests := []string{
		"x509: certificate signed by unknown authority",
		"tls: handshake failure",
		"certificate is not valid",
	}
	for _, msg := range tests {
		t.Run(msg, func(t *testing.T) {
			var apiErr *domain.APIError
			if !errors.As(classifyError(errors.New(msg), "https://dash"), &apiErr) {
				t.Fatal("expected APIError")
			}
			if apiErr.Type != domain.ErrTLS {
				t.Errorf("Type = %v, want ErrTLS for %q", apiErr.Type, msg)
			}
		})
	}
}

func TestClassifyError_Unreachable(t *testing.T) {
	tests := []string{
		"dial tcp 10.0.0.1:9090: i/o timeout",
		"dial tcp: lookup dash.local: no such host",
		"connection refused",
	}
	for _, msg := range tests {
		t.Run(msg, func(t *testing.T) {
			var apiErr *domain.APIError
			if !errors.As(classifyError(errors.New(msg), "http://dash"), &apiErr) {
				t.Fatal("expected APIError")
			}
			if apiErr.Type != domain.ErrUnreachable {
				t.Errorf("Type = %v, want ErrUnreachable for %q", apiErr.Type, msg)
			}
		})
	}
}

func TestClassifyError_Unknown(t *testing.T) {
	var apiErr *domain.APIError
	if !errors.As(classifyError(errors.New("some random error"), ""), &apiErr) {
		t.Fatal("expected APIError")
	}
	if apiErr.Type != domain.ErrUnknown {
		t.Errorf("Type = %v, want ErrUnknown", apiErr.Type)
	}
}

func TestAPIError_ErrorAndUnwrap(t *testing.T) {
	inner := errors.New("inner error")
	apiErr := &domain.APIError{Type: domain.ErrForbidden, Message: "access denied", Err: inner}

	if apiErr.Error() != "access denied" {
		t.Errorf("Error() = %q, want %q", apiErr.Error(), "access denied")
	}
	if apiErr.Unwrap() != inner {
		t.Error("Unwrap() should return inner error")
	}
}
