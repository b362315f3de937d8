package auth

import (
	"testing"

	"github.com/ruimv/tribunal-backend/internal/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestService(t *testing.T) *Service {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	return NewService(db)
}

func TestRegister(t *testing.T) {
	svc := newTestService(t)

	user, err := svc.Register("acosta", "acosta@example.pt", "s3cret-pw", "")
	require.NoError(t, err)

	assert.Equal(t, "acosta", user.Username)
	assert.Equal(t, database.RoleCitizen, user.Role)
	assert.True(t, user.IsActive)

	// The stored value is a hash, never the plaintext
	assert.NotEqual(t, "s3cret-pw", user.PasswordHash)
	assert.NoError(t, CheckPassword(user.PasswordHash, "s3cret-pw"))
}

func TestRegisterDuplicateUsername(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Register("acosta", "acosta@example.pt", "s3cret-pw", "")
	require.NoError(t, err)

	// Same username, different everything else
	_, err = svc.Register("acosta", "other@example.pt", "different-pw", "")
	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Register("acosta", "acosta@example.pt", "s3cret-pw", "")
	require.NoError(t, err)

	_, err = svc.Register("bmendes", "acosta@example.pt", "different-pw", "")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestRegisterInvalidRole(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Register("acosta", "acosta@example.pt", "s3cret-pw", "chancellor")
	assert.ErrorIs(t, err, ErrInvalidRole)
}

func TestAuthenticate(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Register("acosta", "acosta@example.pt", "s3cret-pw", database.RoleJudge)
	require.NoError(t, err)

	user, err := svc.Authenticate("acosta", "s3cret-pw")
	require.NoError(t, err)
	assert.Equal(t, database.RoleJudge, user.Role)
}

func TestAuthenticateBadPassword(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Register("acosta", "acosta@example.pt", "s3cret-pw", "")
	require.NoError(t, err)

	_, err = svc.Authenticate("acosta", "wrong-pw")
	assert.ErrorIs(t, err, ErrBadPassword)
}

func TestAuthenticateUnknownUser(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Authenticate("nobody", "whatever")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAuthenticateInactiveUser(t *testing.T) {
	svc := newTestService(t)

	user, err := svc.Register("acosta", "acosta@example.pt", "s3cret-pw", "")
	require.NoError(t, err)

	require.NoError(t, svc.db.Model(user).Update("is_active", false).Error)

	_, err = svc.Authenticate("acosta", "s3cret-pw")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateProfileEmail(t *testing.T) {
	svc := newTestService(t)

	user, err := svc.Register("acosta", "acosta@example.pt", "s3cret-pw", "")
	require.NoError(t, err)

	require.NoError(t, svc.UpdateProfile(user, "novo@example.pt", ""))

	var reloaded database.User
	require.NoError(t, svc.db.First(&reloaded, user.ID).Error)
	assert.Equal(t, "novo@example.pt", reloaded.Email)
}

func TestUpdateProfileEmailConflict(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Register("acosta", "acosta@example.pt", "s3cret-pw", "")
	require.NoError(t, err)

	other, err := svc.Register("bmendes", "bmendes@example.pt", "s3cret-pw", "")
	require.NoError(t, err)

	err = svc.UpdateProfile(other, "acosta@example.pt", "")
	assert.ErrorIs(t, err, ErrEmailTaken)

	// The conflicting change must not be persisted
	var reloaded database.User
	require.NoError(t, svc.db.First(&reloaded, other.ID).Error)
	assert.Equal(t, "bmendes@example.pt", reloaded.Email)
}

func TestUpdateProfileKeepOwnEmail(t *testing.T) {
	svc := newTestService(t)

	user, err := svc.Register("acosta", "acosta@example.pt", "s3cret-pw", "")
	require.NoError(t, err)

	// Re-submitting the current email is not a conflict
	assert.NoError(t, svc.UpdateProfile(user, "acosta@example.pt", ""))
}

func TestUpdateProfilePassword(t *testing.T) {
	svc := newTestService(t)

	user, err := svc.Register("acosta", "acosta@example.pt", "s3cret-pw", "")
	require.NoError(t, err)

	require.NoError(t, svc.UpdateProfile(user, "", "new-s3cret"))

	_, err = svc.Authenticate("acosta", "s3cret-pw")
	assert.ErrorIs(t, err, ErrBadPassword)

	_, err = svc.Authenticate("acosta", "new-s3cret")
	assert.NoError(t, err)
}
