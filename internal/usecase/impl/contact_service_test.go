package impl

import (
	"context"
	"testing"

	"foodcritic/internal/domain/entity"
	domainerrors "foodcritic/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContactService_CreateAndFind(t *testing.T) {
	svc := newServices(t, nil).contacts
	ctx := context.Background()

	created, err := svc.Create(ctx, newContact("jane@example.com"))
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	found, err := svc.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, found)

	byEmail, err := svc.FindByEmail(ctx, "jane@example.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byEmail.ID)

	byFirst, err := svc.FindAllByFirstName(ctx, "Jane")
	require.NoError(t, err)
	assert.Len(t, byFirst, 1)

	byLast, err := svc.FindAllByLastName(ctx, "Nobody")
	require.NoError(t, err)
	assert.Empty(t, byLast)

	_, err = svc.FindByID(ctx, created.ID+100)
	assert.ErrorIs(t, err, domainerrors.ErrContactNotFound)

	_, err = svc.FindByEmail(ctx, "missing@example.com")
	assert.ErrorIs(t, err, domainerrors.ErrContactNotFound)
}

func TestContactService_CreateRejectsInvalidAndDuplicate(t *testing.T) {
	svc := newServices(t, nil).contacts
	ctx := context.Background()

	invalid := newContact("not-an-email")
	_, err := svc.Create(ctx, invalid)

	var validationErr *domainerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Reasons(), "email")
	assert.Zero(t, invalid.ID)

	_, err = svc.Create(ctx, newContact("jane@example.com"))
	require.NoError(t, err)

	_, err = svc.Create(ctx, newContact("jane@example.com"))
	assert.ErrorIs(t, err, domainerrors.ErrContactEmailTaken)

	all, err := svc.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestContactService_Update(t *testing.T) {
	svc := newServices(t, nil).contacts
	ctx := context.Background()

	jane, err := svc.Create(ctx, newContact("jane@example.com"))
	require.NoError(t, err)
	john, err := svc.Create(ctx, newContact("john@example.com"))
	require.NoError(t, err)

	jane.LastName = "Smith"
	updated, err := svc.Update(ctx, jane)
	require.NoError(t, err)
	assert.Equal(t, "Smith", updated.LastName)

	john.Email = "jane@example.com"
	_, err = svc.Update(ctx, john)
	assert.ErrorIs(t, err, domainerrors.ErrContactEmailTaken)

	ghost := newContact("ghost@example.com")
	ghost.ID = 999
	_, err = svc.Update(ctx, ghost)
	assert.ErrorIs(t, err, domainerrors.ErrContactNotFound)
}

func TestContactService_Delete(t *testing.T) {
	svc := newServices(t, nil).contacts
	ctx := context.Background()

	deleted, err := svc.Delete(ctx, &entity.Contact{})
	require.NoError(t, err)
	assert.Nil(t, deleted)

	jane, err := svc.Create(ctx, newContact("jane@example.com"))
	require.NoError(t, err)

	deleted, err = svc.Delete(ctx, jane)
	require.NoError(t, err)
	assert.Equal(t, jane.ID, deleted.ID)

	_, err = svc.FindByID(ctx, jane.ID)
	assert.ErrorIs(t, err, domainerrors.ErrContactNotFound)
}
