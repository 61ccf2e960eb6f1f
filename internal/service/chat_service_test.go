package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestSendMessage(t *testing.T) {
	chatRepo := &mockChatRepo{}
	svc := NewChatService(chatRepo, newMockUserRepo())

	trainerID := primitive.NewObjectID()
	customerID := primitive.NewObjectID()

	msg, err := svc.SendMessage(context.Background(), trainerID, customerID, trainerID, "Welcome aboard")
	require.NoError(t, err)
	assert.False(t, msg.ID.IsZero())
	assert.Equal(t, trainerID, msg.SenderID)
	assert.False(t, msg.Timestamp.IsZero())

	// The customer side of the pair can send too.
	_, err = svc.SendMessage(context.Background(), trainerID, customerID, customerID, "Thanks!")
	require.NoError(t, err)

	messages, err := svc.ListMessages(context.Background(), trainerID, customerID)
	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.Equal(t, "Welcome aboard", messages[0].Text)
	assert.Equal(t, "Thanks!", messages[1].Text)
}

func TestSendMessageRejectsOutsiders(t *testing.T) {
	svc := NewChatService(&mockChatRepo{}, newMockUserRepo())

	trainerID := primitive.NewObjectID()
	customerID := primitive.NewObjectID()

	_, err := svc.SendMessage(context.Background(), trainerID, customerID, primitive.NewObjectID(), "hi")
	assert.Error(t, err)

	_, err = svc.SendMessage(context.Background(), trainerID, customerID, trainerID, "")
	assert.ErrorIs(t, err, ErrMissingRequired)
}
