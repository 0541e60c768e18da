package memory

import (
	"context"
	"testing"
	"time"

	"catalog-chatbot-be/pkg/session"

	"github.com/stretchr/testify/assert"
)

func TestSessionRepositoryRoundTrip(t *testing.T) {
	repo := NewSessionRepository(time.Hour)
	ctx := context.Background()

	got, err := repo.Get(ctx, "u1")
	assert.NoError(t, err)
	assert.Nil(t, got)

	s := &session.Session{UserID: "u1", State: session.StateAwaitingProductName}
	assert.NoError(t, repo.Save(ctx, s))

	got, err = repo.Get(ctx, "u1")
	assert.NoError(t, err)
	assert.Equal(t, session.StateAwaitingProductName, got.State)

	assert.NoError(t, repo.Delete(ctx, "u1"))

	got, err = repo.Get(ctx, "u1")
	assert.NoError(t, err)
	assert.Nil(t, got)
}
