package validators

import (
	"net"
	"strings"
)

// IsEmailDomainValid does a best-effort DNS check on the domain part. It is
// advisory only (registration still requires the OTP round trip); resolver
// failures count as invalid.
func IsEmailDomainValid(email string) bool {
	at := strings.LastIndex(email, "@")
	if at < 1 || at == len(email)-1 {
		return false
	}

	domain := email[at+1:]
	if strings.ContainsAny(domain, " \t") {
		return false
	}

	if mx, err := net.LookupMX(domain); err == nil && len(mx) > 0 {
		return true
	}

	if ips, err := net.LookupIP(domain); err == nil && len(ips) > 0 {
		return true
	}

	return false
}
