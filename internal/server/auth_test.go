package server

import (
	"crypto/ed25519"
	"crypto/rand"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gossh "golang.org/x/crypto/ssh"
)

func newTestKey(t *testing.T) gossh.PublicKey {
	t.Helper()
	pub, _, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)
	key, err := gossh.NewPublicKey(pub)
	require.NoError(t, err)
	return key
}

func writeAuthorizedKeys(t *testing.T, lines ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "authorized_keys")
	var content []byte
	for _, line := range lines {
		content = append(content, []byte(line+"\n")...)
	}
	require.NoError(t, os.WriteFile(path, content, 0600))
	return path
}

func TestIsKeyAuthorized(t *testing.T) {
	allowed := newTestKey(t)
	other := newTestKey(t)

	path := writeAuthorizedKeys(t,
		"# team keys",
		"",
		"not a key at all",
		strings.TrimSpace(string(gossh.MarshalAuthorizedKey(allowed)))+" alice@laptop",
	)

	assert.True(t, isKeyAuthorized(allowed, path))
	assert.False(t, isKeyAuthorized(other, path))
}

func TestIsKeyAuthorized_MissingFile(t *testing.T) {
	key := newTestKey(t)
	assert.False(t, isKeyAuthorized(key, filepath.Join(t.TempDir(), "missing")))
}

func TestGetKeyFingerprint(t *testing.T) {
	key := newTestKey(t)

	fingerprint := getKeyFingerprint(key)
	assert.Regexp(t, regexp.MustCompile(`^MD5(:[0-9a-f]{2}){16}$`), fingerprint)
	assert.Equal(t, fingerprint, getKeyFingerprint(key))
	assert.NotEqual(t, fingerprint, getKeyFingerprint(newTestKey(t)))
}
