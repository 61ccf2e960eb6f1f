package service

import (
	"context"

	"pushpull/studio-admin/internal/domain"
	"pushpull/studio-admin/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// In-memory repository stand-ins shared by the service tests.

type mockUserRepo struct {
	users           map[primitive.ObjectID]*domain.User
	freeTrialMarked []primitive.ObjectID
}

func newMockUserRepo(users ...*domain.User) *mockUserRepo {
	m := &mockUserRepo{users: make(map[primitive.ObjectID]*domain.User)}
	for _, u := range users {
		if u.ID.IsZero() {
			u.ID = primitive.NewObjectID()
		}
		m.users[u.ID] = u
	}
	return m
}

func (m *mockUserRepo) Create(_ context.Context, user *domain.User) (primitive.ObjectID, error) {
	for _, u := range m.users {
		if u.Email == user.Email {
			return primitive.NilObjectID, repository.ErrDuplicate
		}
	}
	user.ID = primitive.NewObjectID()
	stored := *user
	m.users[user.ID] = &stored
	return user.ID, nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id primitive.ObjectID) (*domain.User, error) {
	u, ok := m.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *u
	return &copied, nil
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *mockUserRepo) List(_ context.Context) ([]domain.User, error) {
	out := make([]domain.User, 0, len(m.users))
	for _, u := range m.users {
		out = append(out, *u)
	}
	return out, nil
}

func (m *mockUserRepo) ListByRole(_ context.Context, role domain.Role) ([]domain.User, error) {
	var out []domain.User
	for _, u := range m.users {
		if u.Role == role {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (m *mockUserRepo) Update(_ context.Context, id primitive.ObjectID, fields map[string]any) error {
	u, ok := m.users[id]
	if !ok {
		return repository.ErrNotFound
	}
	if v, ok := fields["displayName"].(string); ok {
		u.DisplayName = v
	}
	if v, ok := fields["email"].(string); ok {
		u.Email = v
	}
	if v, ok := fields["mobile"].(string); ok {
		u.Mobile = v
	}
	if v, ok := fields["specialization"].(string); ok {
		u.Specialization = v
	}
	return nil
}

func (m *mockUserRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	if _, ok := m.users[id]; !ok {
		return repository.ErrNotFound
	}
	delete(m.users, id)
	return nil
}

func (m *mockUserRepo) MarkFreeTrial(_ context.Context, customerID primitive.ObjectID) error {
	u, ok := m.users[customerID]
	if !ok {
		return repository.ErrNotFound
	}
	u.FreeTrial = true
	m.freeTrialMarked = append(m.freeTrialMarked, customerID)
	return nil
}

type mockPackageRepo struct {
	pkgs []domain.Package
}

func (m *mockPackageRepo) Create(_ context.Context, pkg *domain.Package) (primitive.ObjectID, error) {
	pkg.ID = primitive.NewObjectID()
	m.pkgs = append(m.pkgs, *pkg)
	return pkg.ID, nil
}

func (m *mockPackageRepo) GetByID(_ context.Context, id primitive.ObjectID) (*domain.Package, error) {
	for i := range m.pkgs {
		if m.pkgs[i].ID == id {
			copied := m.pkgs[i]
			return &copied, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *mockPackageRepo) List(_ context.Context) ([]domain.Package, error) {
	return append([]domain.Package(nil), m.pkgs...), nil
}

func (m *mockPackageRepo) ListByTrainerID(_ context.Context, trainerID primitive.ObjectID) ([]domain.Package, error) {
	var out []domain.Package
	for _, p := range m.pkgs {
		if p.TrainerID == trainerID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *mockPackageRepo) ListByCustomerID(_ context.Context, customerID primitive.ObjectID) ([]domain.Package, error) {
	var out []domain.Package
	for _, p := range m.pkgs {
		if p.CustomerID == customerID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *mockPackageRepo) Update(_ context.Context, pkg *domain.Package) error {
	for i := range m.pkgs {
		if m.pkgs[i].ID == pkg.ID {
			m.pkgs[i] = *pkg
			return nil
		}
	}
	return repository.ErrNotFound
}

func (m *mockPackageRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	for i := range m.pkgs {
		if m.pkgs[i].ID == id {
			m.pkgs = append(m.pkgs[:i], m.pkgs[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

type mockSubscriptionRepo struct {
	subs []domain.Subscription
}

func (m *mockSubscriptionRepo) Create(_ context.Context, sub *domain.Subscription) (primitive.ObjectID, error) {
	sub.ID = primitive.NewObjectID()
	m.subs = append(m.subs, *sub)
	return sub.ID, nil
}

func (m *mockSubscriptionRepo) GetByID(_ context.Context, id primitive.ObjectID) (*domain.Subscription, error) {
	for i := range m.subs {
		if m.subs[i].ID == id {
			copied := m.subs[i]
			return &copied, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *mockSubscriptionRepo) List(_ context.Context) ([]domain.Subscription, error) {
	return append([]domain.Subscription(nil), m.subs...), nil
}

func (m *mockSubscriptionRepo) Update(_ context.Context, sub *domain.Subscription) error {
	for i := range m.subs {
		if m.subs[i].ID == sub.ID {
			m.subs[i] = *sub
			return nil
		}
	}
	return repository.ErrNotFound
}

func (m *mockSubscriptionRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	for i := range m.subs {
		if m.subs[i].ID == id {
			m.subs = append(m.subs[:i], m.subs[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

type mockRequestRepo struct {
	requests []domain.Request
}

func (m *mockRequestRepo) Create(_ context.Context, request *domain.Request) (primitive.ObjectID, error) {
	request.ID = primitive.NewObjectID()
	if request.Status == "" {
		request.Status = domain.RequestPending
	}
	m.requests = append(m.requests, *request)
	return request.ID, nil
}

func (m *mockRequestRepo) GetByID(_ context.Context, id primitive.ObjectID) (*domain.Request, error) {
	for i := range m.requests {
		if m.requests[i].ID == id {
			copied := m.requests[i]
			return &copied, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *mockRequestRepo) List(_ context.Context) ([]domain.Request, error) {
	return append([]domain.Request(nil), m.requests...), nil
}

func (m *mockRequestRepo) UpdateStatus(_ context.Context, id primitive.ObjectID, status domain.RequestStatus) error {
	for i := range m.requests {
		if m.requests[i].ID == id {
			m.requests[i].Status = status
			return nil
		}
	}
	return repository.ErrNotFound
}

func (m *mockRequestRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	for i := range m.requests {
		if m.requests[i].ID == id {
			m.requests = append(m.requests[:i], m.requests[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

type mockSuggestionRepo struct {
	suggestions []domain.Suggestion
	accepted    map[primitive.ObjectID]*domain.AcceptedSuggestion
	moreStatus  map[primitive.ObjectID]string
}

func newMockSuggestionRepo() *mockSuggestionRepo {
	return &mockSuggestionRepo{
		accepted:   make(map[primitive.ObjectID]*domain.AcceptedSuggestion),
		moreStatus: make(map[primitive.ObjectID]string),
	}
}

func (m *mockSuggestionRepo) Add(_ context.Context, suggestion *domain.Suggestion) (primitive.ObjectID, error) {
	suggestion.ID = primitive.NewObjectID()
	m.suggestions = append(m.suggestions, *suggestion)
	return suggestion.ID, nil
}

func (m *mockSuggestionRepo) ListByCustomerID(_ context.Context, customerID primitive.ObjectID) ([]domain.Suggestion, error) {
	var out []domain.Suggestion
	for _, s := range m.suggestions {
		if s.CustomerID == customerID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (m *mockSuggestionRepo) GetAccepted(_ context.Context, customerID primitive.ObjectID) (*domain.AcceptedSuggestion, error) {
	accepted, ok := m.accepted[customerID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return accepted, nil
}

func (m *mockSuggestionRepo) SetAccepted(_ context.Context, accepted *domain.AcceptedSuggestion) error {
	m.accepted[accepted.CustomerID] = accepted
	return nil
}

func (m *mockSuggestionRepo) GetMoreStatus(_ context.Context, customerID primitive.ObjectID) (string, error) {
	status, ok := m.moreStatus[customerID]
	if !ok {
		return "", repository.ErrNotFound
	}
	return status, nil
}

func (m *mockSuggestionRepo) SetMoreStatus(_ context.Context, customerID primitive.ObjectID, status string) error {
	m.moreStatus[customerID] = status
	return nil
}

type mockNotificationRepo struct {
	appended []struct {
		Audience     domain.Role
		Notification domain.Notification
	}
	appendErr error
}

func (m *mockNotificationRepo) Append(_ context.Context, audience domain.Role, notification *domain.Notification) error {
	if m.appendErr != nil {
		return m.appendErr
	}
	m.appended = append(m.appended, struct {
		Audience     domain.Role
		Notification domain.Notification
	}{audience, *notification})
	return nil
}

func (m *mockNotificationRepo) ListByRecipient(_ context.Context, audience domain.Role, recipientID primitive.ObjectID) ([]domain.Notification, error) {
	var out []domain.Notification
	for _, entry := range m.appended {
		if entry.Audience == audience && entry.Notification.RecipientID == recipientID {
			out = append(out, entry.Notification)
		}
	}
	return out, nil
}

func (m *mockNotificationRepo) MarkRead(_ context.Context, audience domain.Role, recipientID primitive.ObjectID, notifID string) error {
	for i, entry := range m.appended {
		if entry.Audience == audience && entry.Notification.RecipientID == recipientID && entry.Notification.NotifID == notifID {
			m.appended[i].Notification.Read = true
			return nil
		}
	}
	return repository.ErrNotFound
}

type mockChatRepo struct {
	messages []domain.ChatMessage
}

func (m *mockChatRepo) Append(_ context.Context, message *domain.ChatMessage) (primitive.ObjectID, error) {
	message.ID = primitive.NewObjectID()
	m.messages = append(m.messages, *message)
	return message.ID, nil
}

func (m *mockChatRepo) ListByPair(_ context.Context, trainerID, customerID primitive.ObjectID) ([]domain.ChatMessage, error) {
	var out []domain.ChatMessage
	for _, msg := range m.messages {
		if msg.TrainerID == trainerID && msg.CustomerID == customerID {
			out = append(out, msg)
		}
	}
	return out, nil
}
