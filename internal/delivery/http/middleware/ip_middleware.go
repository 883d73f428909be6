package middleware

import (
	"log/slog"
	"net/netip"

	"emporia/config"
	domainerrors "emporia/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// IPAllowMiddleware admits admin mutations only from the configured
// allowlist. In development mode the guard passes everything through.
type IPAllowMiddleware struct {
	prefixes []netip.Prefix
	bypass   bool
	logger   *slog.Logger
}

// NewIPAllowMiddleware parses the configured allowlist once. Entries are
// either single addresses or CIDR blocks; a malformed entry fails startup
// rather than silently shrinking the list.
func NewIPAllowMiddleware(cfg *config.Config, logger *slog.Logger) (*IPAllowMiddleware, error) {
	m := &IPAllowMiddleware{
		bypass: cfg.IsDevelopment(),
		logger: logger,
	}

	var entries []string
	if cfg.Auth != nil {
		entries = cfg.Auth.IPAllowlist
	}

	for _, entry := range entries {
		prefix, err := netip.ParsePrefix(entry)
		if err != nil {
			addr, addrErr := netip.ParseAddr(entry)
			if addrErr != nil {
				return nil, errors.Wrapf(err, "parse ip allowlist entry %q", entry)
			}
			prefix = netip.PrefixFrom(addr, addr.BitLen())
		}
		m.prefixes = append(m.prefixes, prefix)
	}

	return m, nil
}

// Allow is the guard. It must run after authentication so rejections are
// attributable in the logs.
func (m *IPAllowMiddleware) Allow(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if m.bypass {
			return next(c)
		}

		addr, err := netip.ParseAddr(c.RealIP())
		if err != nil || !m.allowed(addr.Unmap()) {
			m.logger.Warn("Admin request from unlisted address",
				slog.String("ip", c.RealIP()), slog.String("path", c.Request().URL.Path))

			return domainerrors.ErrForbidden
		}

		return next(c)
	}
}

func (m *IPAllowMiddleware) allowed(addr netip.Addr) bool {
	for _, prefix := range m.prefixes {
		if prefix.Contains(addr) {
			return true
		}
	}

	return false
}
