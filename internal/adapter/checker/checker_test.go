package checker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vadimbarashkov/microservices/internal/entity"
)

type stubResolver struct {
	addrs []string
	err   error
	hosts []string
}

func (r *stubResolver) LookupHost(_ context.Context, host string) ([]string, error) {
	r.hosts = append(r.hosts, host)
	return r.addrs, r.err
}

func TestDNSChecker_Check(t *testing.T) {
	tests := []struct {
		name      string
		rawURL    string
		resolver  *stubResolver
		wantErr   error
		wantHosts []string
	}{
		{
			name:     "no host",
			rawURL:   "ftp:/john-doe.org",
			resolver: &stubResolver{},
			wantErr:  entity.ErrInvalidURL,
		},
		{
			name:     "ip literal skips lookup",
			rawURL:   "http://127.0.0.1:8080/path",
			resolver: &stubResolver{},
		},
		{
			name:      "lookup error",
			rawURL:    "https://does-not-exist.invalid",
			resolver:  &stubResolver{err: errors.New("no such host")},
			wantErr:   entity.ErrUnreachableURL,
			wantHosts: []string{"does-not-exist.invalid"},
		},
		{
			name:      "no addresses",
			rawURL:    "https://empty.example",
			resolver:  &stubResolver{},
			wantErr:   entity.ErrUnreachableURL,
			wantHosts: []string{"empty.example"},
		},
		{
			name:      "resolved",
			rawURL:    "https://example.com/some/path?q=1",
			resolver:  &stubResolver{addrs: []string{"93.184.216.34"}},
			wantHosts: []string{"example.com"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewDNSChecker(0)
			c.resolver = tt.resolver

			err := c.Check(context.Background(), tt.rawURL)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.wantHosts, tt.resolver.hosts)
		})
	}
}

func TestNopChecker(t *testing.T) {
	assert.NoError(t, NopChecker{}.Check(context.Background(), "anything"))
}

func TestNew(t *testing.T) {
	assert.IsType(t, NopChecker{}, New(false, time.Second))
	assert.IsType(t, &DNSChecker{}, New(true, time.Second))
}
