package redis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKey(t *testing.T) {
	assert.Equal(t, "shorturl:1", key(1))
	assert.Equal(t, "shorturl:9999999", key(9999999))
}
