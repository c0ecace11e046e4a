package scram_test

import (
	"strings"
	"testing"

	"github.com/orbitechz/GPC-Backend/pkg/adapter/hash/scram"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHash(t *testing.T) {
	m := scram.SHA256()
	h1, err := m.Hash("secret", "c2FsdA==", 4096)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(h1, "SCRAM-SHA-256$4096:c2FsdA==$"), h1)
	h2, err := m.Hash("secret", "c2FsdA==", 4096)
	require.NoError(t, err)
	assert.Equal(t, h1, h2, "fixed salt gives a fixed hash")

	h3, err := m.Hash("secret", "", 4096)
	require.NoError(t, err)
	assert.NotEqual(t, h1, h3, "random salt")

	h4, err := scram.SHA1().Hash("secret", "", 15000)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(h4, "SCRAM-SHA-1$15000:"), h4)

	_, err = m.Hash("", "", 4096)
	assert.Error(t, err, "empty password")
	_, err = m.Hash("secret", "", 1000)
	assert.Error(t, err, "too few iterations")
}
