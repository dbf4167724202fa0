package services

import (
	"context"
	"regexp"
	"time"

	"github.com/google/uuid"

	"bastianbuilt.com/internal/config"
	apperrors "bastianbuilt.com/internal/errors"
	"bastianbuilt.com/internal/logging"
	"bastianbuilt.com/internal/mail"
	"bastianbuilt.com/internal/metrics"
	"bastianbuilt.com/internal/models"
)

// Messages returned to the visitor
const (
	MsgFieldsRequired     = "All fields are required"
	MsgInvalidEmail       = "Invalid email address"
	MsgMailNotConfigured  = "Server email configuration missing"
	MsgSubmissionAccepted = "Message sent successfully!"
)

// emailPattern rejects any whitespace, including vertical tab, Unicode
// separators and the byte order mark, around a single @ and a dotted domain.
var emailPattern = regexp.MustCompile(`^[^\s\v\p{Z}\x{FEFF}@]+@[^\s\v\p{Z}\x{FEFF}@]+\.[^\s\v\p{Z}\x{FEFF}@]+$`)

// ContactSaver persists contact submissions
type ContactSaver interface {
	SaveContact(ctx context.Context, c models.ContactSubmission) error
}

// ContactService validates, stores and forwards contact form submissions
type ContactService struct {
	store   ContactSaver
	sender  mail.Sender
	mail    config.MailConfig
	logger  logging.Logger
	metrics *metrics.Metrics

	now   func() time.Time
	newID func() string
}

// NewContactService creates a new ContactService. A nil sender means email
// delivery is not configured.
func NewContactService(store ContactSaver, sender mail.Sender, mailCfg config.MailConfig, logger logging.Logger, m *metrics.Metrics) *ContactService {
	return &ContactService{
		store:   store,
		sender:  sender,
		mail:    mailCfg,
		logger:  logger.WithComponent("contact"),
		metrics: m,
		now:     time.Now,
		newID:   uuid.NewString,
	}
}

// Validate checks the request without touching storage
func (s *ContactService) Validate(req models.ContactRequest) error {
	if req.Name == "" || req.Email == "" || req.Message == "" {
		return apperrors.Validation(MsgFieldsRequired)
	}
	if !emailPattern.MatchString(req.Email) {
		return apperrors.Validation(MsgInvalidEmail)
	}
	return nil
}

// Submit records the submission and emails it to the site owner. The record
// is kept even when the email cannot be sent.
func (s *ContactService) Submit(ctx context.Context, req models.ContactRequest) (*models.ContactSubmission, error) {
	if err := s.Validate(req); err != nil {
		s.metrics.ObserveContact(metrics.OutcomeInvalid)
		return nil, err
	}

	submission := models.ContactSubmission{
		ID:         s.newID(),
		Name:       req.Name,
		Email:      req.Email,
		Message:    req.Message,
		ReceivedAt: s.now().UTC(),
	}

	if err := s.store.SaveContact(ctx, submission); err != nil {
		s.metrics.ObserveContact(metrics.OutcomeStorageError)
		s.logger.Error(ctx, err, "Failed to store contact submission", "contact_id", submission.ID)
		return nil, apperrors.Internal("store contact submission", err)
	}

	if s.sender == nil {
		s.metrics.ObserveContact(metrics.OutcomeMailUnavailable)
		s.logger.Warn(ctx, nil, "Email delivery is not configured", "contact_id", submission.ID)
		return &submission, apperrors.Configuration(MsgMailNotConfigured)
	}

	msg, err := mail.ContactNotification(ctx, s.mail.From, s.mail.To, submission)
	if err != nil {
		s.metrics.ObserveContact(metrics.OutcomeMailError)
		s.logger.Error(ctx, err, "Failed to build contact email", "contact_id", submission.ID)
		return &submission, apperrors.Internal("build contact email", err)
	}

	messageID, err := s.sender.Send(ctx, msg)
	if err != nil {
		s.metrics.ObserveContact(metrics.OutcomeMailError)
		s.logger.Error(ctx, err, "Failed to send contact email", "contact_id", submission.ID)
		return &submission, apperrors.Internal("send contact email", err)
	}

	s.metrics.ObserveContact(metrics.OutcomeSent)
	s.logger.Info(ctx, "Contact submission delivered", "contact_id", submission.ID, "message_id", messageID)
	return &submission, nil
}
