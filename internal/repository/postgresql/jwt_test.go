package postgresql

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFingerprint(t *testing.T) {
	t.Parallel()

	first := fingerprint("refresh-token-a")
	second := fingerprint("refresh-token-a")
	other := fingerprint("refresh-token-b")

	assert.Equal(t, first, second)
	assert.NotEqual(t, first, other)
	// base64 of a SHA-256 digest
	assert.Len(t, first, 44)
	assert.NotContains(t, first, "refresh-token-a")
}
