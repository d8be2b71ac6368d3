package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/solidkit/internal/core/domain"
)

func TestUserGet(t *testing.T) {
	buf, cleanup := setupTestServices(t)
	defer cleanup()

	err := execute(buf, "user", "get", "1")

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "User 1: ada@example.com")
}

func TestUserGet_NotFound(t *testing.T) {
	buf, cleanup := setupTestServices(t)
	defer cleanup()

	err := execute(buf, "user", "get", "99")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUserGet_BadID(t *testing.T) {
	buf, cleanup := setupTestServices(t)
	defer cleanup()

	err := execute(buf, "user", "get", "one")

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUserLifecycle(t *testing.T) {
	buf, cleanup := setupTestServices(t)
	defer cleanup()

	require.NoError(t, execute(buf, "user", "create", "--id", "2", "--email", "grace@example.com"))
	assert.Contains(t, buf.String(), "User 2 created")

	buf.Reset()
	require.NoError(t, execute(buf, "user", "update", "--id", "2", "--email", "hopper@example.com"))
	assert.Contains(t, buf.String(), "User 2 updated")

	buf.Reset()
	require.NoError(t, execute(buf, "user", "list"))
	assert.Contains(t, buf.String(), "ada@example.com")
	assert.Contains(t, buf.String(), "hopper@example.com")

	buf.Reset()
	require.NoError(t, execute(buf, "user", "delete", "2"))
	assert.Contains(t, buf.String(), "User 2 deleted")

	buf.Reset()
	require.NoError(t, execute(buf, "user", "list"))
	assert.NotContains(t, buf.String(), "hopper@example.com")
}

func TestUserCreate_Duplicate(t *testing.T) {
	buf, cleanup := setupTestServices(t)
	defer cleanup()

	err := execute(buf, "user", "create", "--id", "1", "--email", "other@example.com")

	assert.ErrorIs(t, err, domain.ErrAlreadyExists)
}

func TestUserCreate_Invalid(t *testing.T) {
	buf, cleanup := setupTestServices(t)
	defer cleanup()

	err := execute(buf, "user", "create", "--id", "3", "--email", "not-an-email")

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestUserResetPassword(t *testing.T) {
	buf, cleanup := setupTestServices(t)
	defer cleanup()

	err := execute(buf, "user", "reset-password", "1")

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Sending password reset email to ada@example.com")
}

func TestUserReport(t *testing.T) {
	buf, cleanup := setupTestServices(t)
	defer cleanup()

	err := execute(buf, "user", "report", "--month", "3", "--year", "2024")

	require.NoError(t, err)
	assert.Equal(t, "period,id,email\n2024-03,1,ada@example.com\n", buf.String())
}

func TestUserReport_InvalidMonth(t *testing.T) {
	buf, cleanup := setupTestServices(t)
	defer cleanup()

	err := execute(buf, "user", "report", "--month", "13")

	assert.ErrorIs(t, err, domain.ErrValidation)
}
