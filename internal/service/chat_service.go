package service

import (
	"context"
	"errors"
	"time"

	"pushpull/studio-admin/internal/domain"
	"pushpull/studio-admin/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ChatService reads and appends trainer/customer conversations.
type ChatService interface {
	ListMessages(ctx context.Context, trainerID, customerID primitive.ObjectID) ([]domain.ChatMessage, error)
	SendMessage(ctx context.Context, trainerID, customerID, senderID primitive.ObjectID, text string) (*domain.ChatMessage, error)
}

type chatService struct {
	chatRepo repository.ChatRepository
	userRepo repository.UserRepository
}

// NewChatService creates a new instance of chatService.
func NewChatService(chatRepo repository.ChatRepository, userRepo repository.UserRepository) ChatService {
	return &chatService{chatRepo: chatRepo, userRepo: userRepo}
}

// ListMessages returns the conversation in chronological order.
func (s *chatService) ListMessages(ctx context.Context, trainerID, customerID primitive.ObjectID) ([]domain.ChatMessage, error) {
	return s.chatRepo.ListByPair(ctx, trainerID, customerID)
}

// SendMessage appends a message to the conversation. The sender must be
// one of the two participants.
func (s *chatService) SendMessage(ctx context.Context, trainerID, customerID, senderID primitive.ObjectID, text string) (*domain.ChatMessage, error) {
	if text == "" {
		return nil, ErrMissingRequired
	}
	if senderID != trainerID && senderID != customerID {
		return nil, errors.New("sender is not part of this conversation")
	}

	message := &domain.ChatMessage{
		TrainerID:  trainerID,
		CustomerID: customerID,
		SenderID:   senderID,
		Text:       text,
		Timestamp:  time.Now().UTC(),
	}

	id, err := s.chatRepo.Append(ctx, message)
	if err != nil {
		return nil, err
	}
	message.ID = id
	return message, nil
}
