package settings

import (
	"encoding/json"
	"fmt"
	"net"
	"net/netip"
	"strconv"
	"strings"
)

// Host is the heartbeat peer address: either an IP address (v4 or v6) or a
// domain name. A zero Host has neither set.
type Host struct {
	domain string
	ip     netip.Addr
}

// NewHost parses a single value: IP → sets ip, domain → sets domain.
// Empty string returns a zero Host.
func NewHost(raw string) (Host, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Host{}, nil
	}

	if ip, ok := parseHostIP(trimmed); ok {
		return Host{ip: ip}, nil
	}

	domain, ok := normalizeDomain(trimmed)
	if !ok {
		return Host{}, fmt.Errorf("invalid host %q: expected IP address or domain name", raw)
	}

	return Host{domain: domain}, nil
}

func (h Host) String() string {
	if h.domain != "" {
		return h.domain
	}
	if h.ip.IsValid() {
		return h.ip.String()
	}
	return ""
}

func (h Host) IsZero() bool {
	return h.domain == "" && !h.ip.IsValid()
}

func (h Host) IsIP() bool {
	return h.ip.IsValid()
}

func (h Host) IP() (netip.Addr, bool) {
	return h.ip, h.ip.IsValid()
}

func (h Host) Domain() (string, bool) {
	return h.domain, h.domain != ""
}

// Endpoint returns host:port suitable for dialing; IPv6 is bracketed.
func (h Host) Endpoint(port int) (string, error) {
	if h.IsZero() {
		return "", fmt.Errorf("empty host")
	}
	if err := ValidatePort(port); err != nil {
		return "", err
	}
	return net.JoinHostPort(h.String(), strconv.Itoa(port)), nil
}

// AddrPort returns the host as netip.AddrPort; the host must be an IP.
func (h Host) AddrPort(port int) (netip.AddrPort, error) {
	if !h.ip.IsValid() {
		return netip.AddrPort{}, fmt.Errorf("host %q is not an IP address", h.String())
	}
	if err := ValidatePort(port); err != nil {
		return netip.AddrPort{}, err
	}
	return netip.AddrPortFrom(h.ip, uint16(port)), nil
}

// ListenAddrPort returns an address suitable for binding. A zero Host falls
// back to defaultIP.
func (h Host) ListenAddrPort(port int, defaultIP string) (netip.AddrPort, error) {
	if err := ValidatePort(port); err != nil {
		return netip.AddrPort{}, err
	}
	if h.IsZero() {
		fallback, fallbackErr := NewHost(defaultIP)
		if fallbackErr != nil {
			return netip.AddrPort{}, fallbackErr
		}
		return fallback.AddrPort(port)
	}
	return h.AddrPort(port)
}

func (h Host) MarshalJSON() ([]byte, error) {
	return json.Marshal(h.String())
}

func (h *Host) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("invalid Host JSON: %w", err)
	}
	parsed, parseErr := NewHost(raw)
	if parseErr != nil {
		return parseErr
	}
	*h = parsed
	return nil
}

func parseHostIP(raw string) (netip.Addr, bool) {
	ip, err := netip.ParseAddr(strings.Trim(raw, "[]"))
	if err != nil {
		return netip.Addr{}, false
	}
	return ip.Unmap(), true
}

func ValidatePort(port int) error {
	if port < 1 || port > 65535 {
		return fmt.Errorf("invalid port: %d", port)
	}
	return nil
}

func normalizeDomain(raw string) (string, bool) {
	domain := strings.ToLower(strings.TrimSpace(raw))
	domain = strings.TrimSuffix(domain, ".")
	if domain == "" || len(domain) > 253 {
		return "", false
	}
	if strings.ContainsAny(domain, " \t\n\r/:?#[]@\\") {
		return "", false
	}
	for _, label := range strings.Split(domain, ".") {
		if !isValidDomainLabel(label) {
			return "", false
		}
	}
	return domain, true
}

func isValidDomainLabel(label string) bool {
	if len(label) == 0 || len(label) > 63 {
		return false
	}
	if label[0] == '-' || label[len(label)-1] == '-' {
		return false
	}
	for _, c := range label {
		if (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') || c == '-' {
			continue
		}
		return false
	}
	return true
}
