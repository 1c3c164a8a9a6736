package service_test

import (
	"context"
	"testing"
	"time"

	"studyplanner/internal/actor"
	"studyplanner/internal/model"
	"studyplanner/internal/repository"
	"studyplanner/internal/service"
	"studyplanner/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type messageEnv struct {
	users    service.UserService
	messages service.MessageService
}

func newMessageEnv(t *testing.T) *messageEnv {
	t.Helper()
	db := testutil.NewSQLiteDB(t)
	clock := testutil.NewClock(time.Date(2024, 4, 1, 12, 0, 0, 0, time.UTC))
	return &messageEnv{
		users:    service.NewUserService(repository.NewUserRepository(db), nil),
		messages: service.NewMessageService(repository.NewMessageRepository(db), service.WithClock(clock.Now)),
	}
}

func (e *messageEnv) createUser(t *testing.T, name, email string) *model.User {
	t.Helper()
	u, err := e.users.CreateUser(context.Background(), model.CreateUserInput{Name: name, Email: email})
	require.NoError(t, err)
	return u
}

func TestMessageService_SendUsesActorAndDefaults(t *testing.T) {
	env := newMessageEnv(t)
	alice := env.createUser(t, "Alice", "alice@example.com")
	ctx := actor.WithID(context.Background(), alice.ID)

	msg, err := env.messages.SendMessage(ctx, model.MessageInput{Content: "hello"})
	require.NoError(t, err)
	assert.NotZero(t, msg.ID)
	assert.Equal(t, alice.ID, msg.SenderID)
	assert.Equal(t, model.MessageTypePublic, msg.Type)
	assert.Equal(t, time.Date(2024, 4, 1, 12, 0, 0, 0, time.UTC), msg.Timestamp)
}

func TestMessageService_SendWithoutActor(t *testing.T) {
	env := newMessageEnv(t)

	_, err := env.messages.SendMessage(context.Background(), model.MessageInput{Content: "hello"})
	require.ErrorIs(t, err, actor.ErrNoActor)
}

func TestMessageService_SendValidation(t *testing.T) {
	env := newMessageEnv(t)
	alice := env.createUser(t, "Alice", "alice@example.com")
	ctx := actor.WithID(context.Background(), alice.ID)

	var verr *service.ValidationError
	_, err := env.messages.SendMessage(ctx, model.MessageInput{})
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "content is required")

	_, err = env.messages.SendMessage(ctx, model.MessageInput{Content: "hi", Type: "broadcast"})
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "type must be one of: public private group")
}

func TestMessageService_SendToUnknownUser(t *testing.T) {
	env := newMessageEnv(t)
	alice := env.createUser(t, "Alice", "alice@example.com")

	ghost := int64(777)
	_, err := env.messages.SendMessage(actor.WithID(context.Background(), alice.ID),
		model.MessageInput{Content: "hi", Type: model.MessageTypePrivate, RecipientID: &ghost})
	require.ErrorIs(t, err, service.ErrUnknownUser)

	_, err = env.messages.SendMessage(actor.WithID(context.Background(), 555), model.MessageInput{Content: "hi"})
	require.ErrorIs(t, err, service.ErrUnknownUser)
}

func TestMessageService_ListAndDelete(t *testing.T) {
	env := newMessageEnv(t)
	alice := env.createUser(t, "Alice", "alice@example.com")
	bob := env.createUser(t, "Bob", "bob@example.com")
	ctx := actor.WithID(context.Background(), alice.ID)

	first, err := env.messages.SendMessage(ctx, model.MessageInput{Content: "public note"})
	require.NoError(t, err)
	second, err := env.messages.SendMessage(ctx, model.MessageInput{Content: "psst", Type: model.MessageTypePrivate, RecipientID: &bob.ID})
	require.NoError(t, err)

	all, err := env.messages.ListMessages(ctx, model.MessageFilter{})
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, second.ID, all[0].ID)
	assert.Equal(t, first.ID, all[1].ID)

	private := model.MessageTypePrivate
	onlyPrivate, err := env.messages.ListMessages(ctx, model.MessageFilter{Type: &private, UserID: &bob.ID})
	require.NoError(t, err)
	require.Len(t, onlyPrivate, 1)
	assert.Equal(t, second.ID, onlyPrivate[0].ID)

	bogus := "shout"
	var verr *service.ValidationError
	_, err = env.messages.ListMessages(ctx, model.MessageFilter{Type: &bogus})
	require.ErrorAs(t, err, &verr)

	require.NoError(t, env.messages.DeleteMessage(ctx, first.ID))
	require.ErrorIs(t, env.messages.DeleteMessage(ctx, first.ID), service.ErrMessageNotFound)
}
