package services

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bastianbuilt.com/internal/config"
	apperrors "bastianbuilt.com/internal/errors"
	"bastianbuilt.com/internal/logging"
	"bastianbuilt.com/internal/mail"
	"bastianbuilt.com/internal/metrics"
	"bastianbuilt.com/internal/models"
)

type fakeStore struct {
	saved []models.ContactSubmission
	err   error
}

func (f *fakeStore) SaveContact(_ context.Context, c models.ContactSubmission) error {
	if f.err != nil {
		return f.err
	}
	f.saved = append(f.saved, c)
	return nil
}

type fakeSender struct {
	sent []mail.Message
	err  error
}

func (f *fakeSender) Send(_ context.Context, msg mail.Message) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.sent = append(f.sent, msg)
	return "msg_1", nil
}

var testMail = config.MailConfig{
	ResendAPIKey: "re_test",
	To:           config.DefaultContactTo,
	From:         config.DefaultFrom,
}

func newTestContactService(store ContactSaver, sender mail.Sender) *ContactService {
	s := NewContactService(store, sender, testMail, logging.Nop(), metrics.New())
	s.now = func() time.Time { return time.Date(2025, 3, 1, 9, 30, 0, 0, time.UTC) }
	s.newID = func() string { return "c0ffee00-0000-4000-8000-000000000001" }
	return s
}

func validRequest() models.ContactRequest {
	return models.ContactRequest{Name: "Ada", Email: "ada@example.com", Message: "Hi\nthere"}
}

func TestContactService_Submit(t *testing.T) {
	store := &fakeStore{}
	sender := &fakeSender{}
	s := newTestContactService(store, sender)

	got, err := s.Submit(context.Background(), validRequest())
	require.NoError(t, err)

	require.Len(t, store.saved, 1)
	assert.Equal(t, "c0ffee00-0000-4000-8000-000000000001", got.ID)
	assert.Equal(t, store.saved[0], *got)
	assert.Equal(t, time.Date(2025, 3, 1, 9, 30, 0, 0, time.UTC), got.ReceivedAt)

	require.Len(t, sender.sent, 1)
	msg := sender.sent[0]
	assert.Equal(t, "Portfolio Contact <onboarding@resend.dev>", msg.From)
	assert.Equal(t, "contact@bastianbuilt.com", msg.To)
	assert.Equal(t, "ada@example.com", msg.ReplyTo)
	assert.Equal(t, "New Contact Form Submission from Ada", msg.Subject)
	assert.Contains(t, msg.HTML, "Hi<br>there")

	count, err := testutil.GatherAndCount(s.metrics.Registry(), "bastian_contact_submissions_total")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestContactService_Validation(t *testing.T) {
	tests := []struct {
		name    string
		req     models.ContactRequest
		message string
	}{
		{"missing name", models.ContactRequest{Email: "a@b.co", Message: "hi"}, MsgFieldsRequired},
		{"missing email", models.ContactRequest{Name: "Ada", Message: "hi"}, MsgFieldsRequired},
		{"missing message", models.ContactRequest{Name: "Ada", Email: "a@b.co"}, MsgFieldsRequired},
		{"all missing", models.ContactRequest{}, MsgFieldsRequired},
		{"no at sign", models.ContactRequest{Name: "Ada", Email: "ada.example.com", Message: "hi"}, MsgInvalidEmail},
		{"no dot in domain", models.ContactRequest{Name: "Ada", Email: "ada@example", Message: "hi"}, MsgInvalidEmail},
		{"whitespace", models.ContactRequest{Name: "Ada", Email: "a da@example.com", Message: "hi"}, MsgInvalidEmail},
		{"vertical tab", models.ContactRequest{Name: "Ada", Email: "a\vb@c.co", Message: "hi"}, MsgInvalidEmail},
		{"no-break space", models.ContactRequest{Name: "Ada", Email: "a\u00a0b@c.co", Message: "hi"}, MsgInvalidEmail},
		{"em space in domain", models.ContactRequest{Name: "Ada", Email: "a@b\u2003c.co", Message: "hi"}, MsgInvalidEmail},
		{"ideographic space", models.ContactRequest{Name: "Ada", Email: "a\u3000@c.co", Message: "hi"}, MsgInvalidEmail},
		{"line separator", models.ContactRequest{Name: "Ada", Email: "a@b.co\u2028", Message: "hi"}, MsgInvalidEmail},
		{"byte order mark", models.ContactRequest{Name: "Ada", Email: "\ufeffa@b.co", Message: "hi"}, MsgInvalidEmail},
		{"two at signs", models.ContactRequest{Name: "Ada", Email: "a@b@example.com", Message: "hi"}, MsgInvalidEmail},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &fakeStore{}
			sender := &fakeSender{}
			s := newTestContactService(store, sender)

			_, err := s.Submit(context.Background(), tt.req)
			require.Error(t, err)
			assert.ErrorIs(t, err, apperrors.ErrValidation)
			assert.Equal(t, tt.message, apperrors.PublicMessage(err))
			assert.Equal(t, http.StatusBadRequest, apperrors.HTTPStatus(err))
			assert.Empty(t, store.saved, "storage must not be touched")
			assert.Empty(t, sender.sent)
		})
	}
}

func TestContactService_WhitespaceFieldsAreAccepted(t *testing.T) {
	store := &fakeStore{}
	s := newTestContactService(store, &fakeSender{})

	_, err := s.Submit(context.Background(), models.ContactRequest{Name: " ", Email: "a@b.co", Message: " "})
	require.NoError(t, err)
	assert.Len(t, store.saved, 1)
}

func TestContactService_StorageFailure(t *testing.T) {
	store := &fakeStore{err: errors.New("connection refused")}
	sender := &fakeSender{}
	s := newTestContactService(store, sender)

	_, err := s.Submit(context.Background(), validRequest())
	require.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, apperrors.HTTPStatus(err))
	assert.Equal(t, apperrors.GenericMessage, apperrors.PublicMessage(err))
	assert.NotContains(t, apperrors.PublicMessage(err), "connection refused")
	assert.Empty(t, sender.sent)
}

func TestContactService_MissingStorageConfig(t *testing.T) {
	store := &fakeStore{err: config.ErrMissingDatabaseURL}
	s := newTestContactService(store, &fakeSender{})

	_, err := s.Submit(context.Background(), validRequest())
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrMissingDatabaseURL)
	assert.Equal(t, apperrors.GenericMessage, apperrors.PublicMessage(err))
}

func TestContactService_MailNotConfigured(t *testing.T) {
	store := &fakeStore{}
	s := newTestContactService(store, nil)

	got, err := s.Submit(context.Background(), validRequest())
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrConfiguration)
	assert.Equal(t, MsgMailNotConfigured, apperrors.PublicMessage(err))
	assert.Equal(t, http.StatusInternalServerError, apperrors.HTTPStatus(err))

	require.Len(t, store.saved, 1, "record is written before the mail check")
	assert.Equal(t, store.saved[0].ID, got.ID)
}

func TestContactService_SendFailure(t *testing.T) {
	store := &fakeStore{}
	s := newTestContactService(store, &fakeSender{err: errors.New("rate limited")})

	_, err := s.Submit(context.Background(), validRequest())
	require.Error(t, err)
	assert.Equal(t, apperrors.GenericMessage, apperrors.PublicMessage(err))
	assert.Equal(t, http.StatusInternalServerError, apperrors.HTTPStatus(err))
	assert.Len(t, store.saved, 1)
}

func TestContactService_EscapesVisitorInput(t *testing.T) {
	sender := &fakeSender{}
	s := newTestContactService(&fakeStore{}, sender)

	req := models.ContactRequest{Name: "<i>Eve</i>", Email: "eve@example.com", Message: "<script>x</script>"}
	_, err := s.Submit(context.Background(), req)
	require.NoError(t, err)

	require.Len(t, sender.sent, 1)
	assert.NotContains(t, sender.sent[0].HTML, "<script>")
	assert.Equal(t, "New Contact Form Submission from <i>Eve</i>", sender.sent[0].Subject)
}
