package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"theaterlist/internal/domain"
	"theaterlist/internal/repository"
)

// EmailMessage is a rendered billing email, ready to copy or send.
type EmailMessage struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// EmailService renders the practice's billing email from the stored
// templates and a list's header. Delivery through the relay is optional;
// without a client the rendered message is still useful to copy out.
type EmailService struct {
	lists    repository.ListsRepository
	settings *SettingsService
	mail     *MailClient // nil when the relay is disabled
	logger   *zap.Logger
}

func NewEmailService(lists repository.ListsRepository, settings *SettingsService, mail *MailClient, logger *zap.Logger) *EmailService {
	return &EmailService{
		lists:    lists,
		settings: settings,
		mail:     mail,
		logger:   logger,
	}
}

// Compose renders subject and body for a list. [date] becomes the long-form
// list date, [hospital]/[hospital name] the location, [doctor name] the
// surgeon.
func (s *EmailService) Compose(ctx context.Context, listID string) (*EmailMessage, error) {
	list, err := s.lists.GetList(ctx, listID)
	if err != nil {
		return nil, err
	}

	header, err := s.settings.Get(ctx, SettingEmailHeader)
	if err != nil {
		return nil, err
	}
	body, err := s.settings.Get(ctx, SettingEmailBody)
	if err != nil {
		return nil, err
	}

	return &EmailMessage{
		Subject: renderSubject(header, list.Info),
		Body:    renderBody(body, list.Info),
	}, nil
}

// Send renders the message and hands it to the mail relay.
func (s *EmailService) Send(ctx context.Context, listID string, to string) (*EmailMessage, error) {
	if s.mail == nil {
		return nil, fmt.Errorf("mail relay is not configured")
	}
	if strings.TrimSpace(to) == "" {
		return nil, fmt.Errorf("recipient address is required")
	}

	msg, err := s.Compose(ctx, listID)
	if err != nil {
		return nil, err
	}
	if err := s.mail.Send(ctx, to, msg.Subject, msg.Body); err != nil {
		return nil, fmt.Errorf("failed to send billing email: %w", err)
	}

	s.logger.Info("Sent billing email",
		zap.String("list_id", listID),
		zap.String("to", to),
	)
	return msg, nil
}

func renderSubject(template string, info domain.TheaterListInfo) string {
	out := strings.ReplaceAll(template, "[date]", longFormDate(info.Date))
	out = strings.ReplaceAll(out, "[hospital]", info.HospitalLocation)
	return out
}

func renderBody(template string, info domain.TheaterListInfo) string {
	out := strings.ReplaceAll(template, "[doctor name]", info.DoctorName)
	out = strings.ReplaceAll(out, "[hospital name]", info.HospitalLocation)
	return out
}

// longFormDate turns the stored yyyy-mm-dd list date into "January 2, 2006".
// An unparseable date passes through untouched.
func longFormDate(iso string) string {
	t, err := time.Parse("2006-01-02", iso)
	if err != nil {
		return iso
	}
	return t.Format("January 2, 2006")
}
