package postgresql_test

import (
	"context"
	"os"
	"testing"

	"github.com/edupay/edupay-backend-go/internal/domain/user"
	"github.com/edupay/edupay-backend-go/internal/pkg/database"
	"github.com/edupay/edupay-backend-go/internal/repository/postgresql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

var testDB *database.DB

// TestMain connects once; tests skip when no test database is configured.
func TestMain(m *testing.M) {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		os.Exit(m.Run())
	}

	var err error
	testDB, err = database.NewPostgreSQLDB(dsn)
	if err != nil {
		panic("Failed to connect to test database: " + err.Error())
	}
	os.Exit(m.Run())
}

func requireDB(t *testing.T) {
	t.Helper()
	if testDB == nil {
		t.Skip("TEST_DATABASE_URL not set")
	}
}

func truncateAll(t *testing.T, ctx context.Context) {
	t.Helper()
	tables := []string{"notifications", "audit_log", "payroll_items", "payroll", "teachers", "users"}
	for _, table := range tables {
		_, err := testDB.Exec(ctx, "TRUNCATE TABLE "+table+" CASCADE")
		require.NoError(t, err)
	}
}

func createTestUser(t *testing.T, ctx context.Context, username string, role user.Role) user.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)

	repo := postgresql.NewUserRepository(testDB)
	created, err := repo.Create(ctx, user.User{
		Username:           username,
		PasswordHash:       string(hash),
		Role:               role,
		FullName:           "Test " + username,
		IsActive:           true,
		MustChangePassword: false,
	})
	require.NoError(t, err)
	return created
}

func TestUserRepository_CreateAndGet(t *testing.T) {
	requireDB(t)
	ctx := context.Background()
	truncateAll(t, ctx)

	repo := postgresql.NewUserRepository(testDB)
	created := createTestUser(t, ctx, "accountant1", user.RoleAccountant)

	byID, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "accountant1", byID.Username)
	assert.Equal(t, user.RoleAccountant, byID.Role)
	assert.True(t, byID.IsActive)

	byUsername, err := repo.GetByUsername(ctx, "accountant1")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byUsername.ID)
}

func TestUserRepository_GetMissing(t *testing.T) {
	requireDB(t)
	ctx := context.Background()
	truncateAll(t, ctx)

	repo := postgresql.NewUserRepository(testDB)

	_, err := repo.GetByUsername(ctx, "ghost")
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}

func TestUserRepository_DuplicateUsername(t *testing.T) {
	requireDB(t)
	ctx := context.Background()
	truncateAll(t, ctx)

	createTestUser(t, ctx, "dup", user.RoleAdmin)

	repo := postgresql.NewUserRepository(testDB)
	_, err := repo.Create(ctx, user.User{
		Username:     "dup",
		PasswordHash: "x",
		Role:         user.RoleAdmin,
		FullName:     "Duplicate",
		IsActive:     true,
	})
	assert.ErrorIs(t, err, user.ErrUsernameExists)
}

func TestUserRepository_UpdatePasswordAndToggle(t *testing.T) {
	requireDB(t)
	ctx := context.Background()
	truncateAll(t, ctx)

	repo := postgresql.NewUserRepository(testDB)
	created := createTestUser(t, ctx, "changer", user.RoleTeacher)

	require.NoError(t, repo.UpdatePassword(ctx, created.ID, "new-hash", true))
	updated, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "new-hash", updated.PasswordHash)
	assert.True(t, updated.MustChangePassword)

	require.NoError(t, repo.SetActive(ctx, created.ID, false))
	updated, err = repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, updated.IsActive)
}
