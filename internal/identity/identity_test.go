package identity

import (
	"testing"

	"github.com/dmitrijs2005/postboard/internal/models"
	"github.com/dmitrijs2005/postboard/internal/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestSessionUser(t *testing.T) {
	st := state.New()
	st.Users = append(st.Users, &models.User{ID: "u1", Name: "Ann", Role: models.RoleAdmin})

	assert.Nil(t, SessionUser(nil))
	assert.Nil(t, SessionUser(st), "no session")

	st.SetSession("u1")
	require.NotNil(t, SessionUser(st))
	assert.Equal(t, "Ann", SessionUser(st).Name)

	st.SetSession("ghost")
	assert.Nil(t, SessionUser(st), "dangling session is no session")
}

func TestIsAdmin(t *testing.T) {
	assert.False(t, IsAdmin(nil))
	assert.False(t, IsAdmin(&models.User{Role: models.RoleUser}))
	assert.True(t, IsAdmin(&models.User{Role: models.RoleAdmin}))
}

func TestPlaintext(t *testing.T) {
	var c Plaintext

	sealed, err := c.Seal(" secret ")
	require.NoError(t, err)
	assert.Equal(t, " secret ", sealed)
	assert.True(t, c.Match(sealed, " secret "))
	assert.False(t, c.Match(sealed, "secret"))
}

func TestBcrypt(t *testing.T) {
	c := Bcrypt{Cost: bcrypt.MinCost}

	sealed, err := c.Seal("secret")
	require.NoError(t, err)
	assert.NotEqual(t, "secret", sealed)
	assert.True(t, c.Match(sealed, "secret"))
	assert.False(t, c.Match(sealed, "Secret"))
	assert.False(t, c.Match("not-a-hash", "secret"))
}

func TestNewCredentials(t *testing.T) {
	c, err := NewCredentials("")
	require.NoError(t, err)
	assert.IsType(t, Plaintext{}, c)

	c, err = NewCredentials("bcrypt")
	require.NoError(t, err)
	assert.IsType(t, Bcrypt{}, c)

	_, err = NewCredentials("rot13")
	require.Error(t, err)
}
