package session

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": "u1",
		"exp":     exp.Unix(),
	})
	s, err := tok.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return s
}

func TestNewDecodesExpiry(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	s := New(signedToken(t, exp))
	assert.True(t, s.Valid())
	assert.Equal(t, exp.Unix(), s.ExpiresAt().Unix())
}

func TestExpiredCredentialIsInvalid(t *testing.T) {
	s := New(signedToken(t, time.Now().Add(-time.Minute)))
	assert.False(t, s.Valid())
}

func TestMalformedCredentialIsInvalid(t *testing.T) {
	assert.False(t, New("not-a-jwt").Valid())
	assert.False(t, New("").Valid())
}

func TestMissingExpiryClaimIsInvalid(t *testing.T) {
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"user_id": "u1"})
	raw, err := tok.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	assert.False(t, New(raw).Valid())
}

func TestStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token")
	store := NewStore(path)

	// empty before first save
	got, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, got)

	require.NoError(t, store.Save("abc.def.ghi"))
	got, err = store.Load()
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", got)

	require.NoError(t, store.Clear())
	got, err = store.Load()
	require.NoError(t, err)
	assert.Empty(t, got)

	// clearing twice is fine
	require.NoError(t, store.Clear())
}

func TestManagerPurgesExpiredStoredCredential(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token")
	store := NewStore(path)
	require.NoError(t, store.Save(signedToken(t, time.Now().Add(-time.Hour))))

	m, err := NewManager(store)
	require.NoError(t, err)
	assert.False(t, m.Current().Valid())

	// the store was purged, not just the in-memory copy
	raw, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, raw)
}

func TestManagerSetAndInvalidate(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "token"))
	m, err := NewManager(store)
	require.NoError(t, err)

	require.NoError(t, m.Set(signedToken(t, time.Now().Add(time.Hour))))
	assert.True(t, m.Current().Valid())

	m.Invalidate()
	assert.False(t, m.Current().Valid())
	raw, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, raw)
}

func TestManagerRejectsExpiredSet(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "token"))
	m, err := NewManager(store)
	require.NoError(t, err)

	assert.Error(t, m.Set(signedToken(t, time.Now().Add(-time.Minute))))
	assert.False(t, m.Current().Valid())
}
