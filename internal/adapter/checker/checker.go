// Package checker verifies that the host of a URL can be reached before it is shortened.
package checker

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
	"time"

	"github.com/vadimbarashkov/microservices/internal/entity"
)

// Checker reports whether a URL may be shortened.
type Checker interface {
	Check(ctx context.Context, rawURL string) error
}

// New returns a DNSChecker, or a NopChecker when checking is disabled.
func New(enabled bool, timeout time.Duration) Checker {
	if !enabled {
		return NopChecker{}
	}
	return NewDNSChecker(timeout)
}

type resolver interface {
	LookupHost(ctx context.Context, host string) ([]string, error)
}

// DNSChecker considers a URL reachable when its host resolves to at least one address.
type DNSChecker struct {
	resolver resolver
	timeout  time.Duration
}

func NewDNSChecker(timeout time.Duration) *DNSChecker {
	return &DNSChecker{
		resolver: net.DefaultResolver,
		timeout:  timeout,
	}
}

func (c *DNSChecker) Check(ctx context.Context, rawURL string) error {
	const op = "adapter.checker.DNSChecker.Check"

	u, err := url.Parse(rawURL)
	if err != nil || u.Hostname() == "" {
		return fmt.Errorf("%s: %w", op, entity.ErrInvalidURL)
	}

	if net.ParseIP(u.Hostname()) != nil {
		return nil
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	addrs, err := c.resolver.LookupHost(ctx, u.Hostname())
	if err != nil {
		return fmt.Errorf("%s: failed to resolve %q: %w", op, u.Hostname(), errors.Join(entity.ErrUnreachableURL, err))
	}

	if len(addrs) == 0 {
		return fmt.Errorf("%s: no addresses for %q: %w", op, u.Hostname(), entity.ErrUnreachableURL)
	}

	return nil
}

// NopChecker accepts every URL.
type NopChecker struct{}

func (NopChecker) Check(context.Context, string) error {
	return nil
}
