package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserUpdate_PartialFields(t *testing.T) {
	t.Parallel()
	users := newFakeUserRepo()
	svc := NewUserService(users)
	ctx := context.Background()

	created, err := users.Create(ctx, "a@app.com", "hash")
	require.NoError(t, err)

	first := "Ada"
	got, err := svc.Update(ctx, created.ID, nil, &first, nil)
	require.NoError(t, err)
	assert.Equal(t, "Ada", got.FirstName)
	assert.Equal(t, "a@app.com", got.Email) // untouched

	email := "new@app.com"
	got, err = svc.Update(ctx, created.ID, &email, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "new@app.com", got.Email)
	assert.Equal(t, "Ada", got.FirstName)
}

func TestUserUpdate_EmailConflict(t *testing.T) {
	t.Parallel()
	users := newFakeUserRepo()
	svc := NewUserService(users)
	ctx := context.Background()

	_, err := users.Create(ctx, "a@app.com", "hash")
	require.NoError(t, err)
	b, err := users.Create(ctx, "b@app.com", "hash")
	require.NoError(t, err)

	taken := "a@app.com"
	_, err = svc.Update(ctx, b.ID, &taken, nil, nil)
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestUserGet_Missing(t *testing.T) {
	t.Parallel()
	svc := NewUserService(newFakeUserRepo())

	_, err := svc.Get(context.Background(), 404)
	assert.ErrorIs(t, err, ErrNotFound)
}
