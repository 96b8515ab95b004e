package backend

import (
	"crypto/x509"
	"fmt"
	"net"
	"strings"

	"github.com/pkg/errors"
	k8serrors "k8s.io/apimachinery/pkg/api/errors"

	"github.com/Taishi66/kdash/internal/domain"
)

var (
	tlsMarkers         = []string{"x509", "certificate", "tls"}
	unreachableMarkers = []string{"dial tcp", "no such host", "connection refused", "i/o timeout"}
)

func apiError(t domain.ErrType, err error, format string, args ...any) *domain.APIError {
	return &domain.APIError{Type: t, Message: fmt.Sprintf(format, args...), Err: err}
}

// classifyError converts a raw transport error into a domain.APIError.
func classifyError(err error, serverURL string) error {
	if err == nil {
		return nil
	}

	switch {
	case k8serrors.IsUnauthorized(err):
		target := serverURL
		if target == "" {
			target = "the dashboard"
		}
		return apiError(domain.ErrTokenExpired, err, "Session expired. Sign in again to %s\nthen press 'r' to reconnect", target)
	case k8serrors.IsForbidden(err):
		return apiError(domain.ErrForbidden, err, "%s", statusMessage(err))
	case k8serrors.IsNotFound(err):
		return apiError(domain.ErrNotFound, err, "%s", statusMessage(err))
	case k8serrors.IsConflict(err):
		return apiError(domain.ErrConflict, err, "Conflict: the resource was modified. Try again.")
	case k8serrors.IsTooManyRequests(err):
		return apiError(domain.ErrRateLimited, err, "Too many requests.")
	}
	if code := statusCode(err); code >= 500 {
		return apiError(domain.ErrServerError, err, "Server error (%d). Press 'r' to retry.", code)
	}

	if isTLSError(err) {
		return apiError(domain.ErrTLS, err, "Invalid TLS certificate for %s.", serverURL)
	}
	if isUnreachable(err) {
		return apiError(domain.ErrUnreachable, err, "Dashboard API unreachable: %s\n%v", serverURL, err)
	}
	return apiError(domain.ErrUnknown, err, "%s", err.Error())
}

func statusCode(err error) int32 {
	var statusErr k8serrors.APIStatus
	if errors.As(err, &statusErr) {
		return statusErr.Status().Code
	}
	return 0
}

func statusMessage(err error) string {
	var statusErr k8serrors.APIStatus
	if errors.As(err, &statusErr) && statusErr.Status().Message != "" {
		return statusErr.Status().Message
	}
	return err.Error()
}

func isTLSError(err error) bool {
	var (
		unknownAuthority x509.UnknownAuthorityError
		hostname         x509.HostnameError
		invalid          x509.CertificateInvalidError
	)
	if errors.As(err, &unknownAuthority) || errors.As(err, &hostname) || errors.As(err, &invalid) {
		return true
	}
	return containsAny(err.Error(), tlsMarkers)
}

func isUnreachable(err error) bool {
	var opErr *net.OpError
	var dnsErr *net.DNSError
	if errors.As(err, &opErr) || errors.As(err, &dnsErr) {
		return true
	}
	return containsAny(err.Error(), unreachableMarkers)
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
