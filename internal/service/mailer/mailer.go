package mailer

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/resend/resend-go/v2"

	"Bricklix/entity"
	"Bricklix/internal/config"
	"Bricklix/internal/lib/sl"
)

// Service delivers lead and inquiry notifications to the sales inbox via
// Resend. Every send is a single attempt; the caller decides what a failure
// means for the conversation.
type Service struct {
	client *resend.Client
	from   string
	to     string
	log    *slog.Logger
}

func NewMailerService(conf *config.Config, logger *slog.Logger) *Service {
	return &Service{
		client: resend.NewClient(conf.Resend.ApiKey),
		from:   conf.Resend.FromEmail,
		to:     conf.Resend.ToEmail,
		log:    logger.With(sl.Module("mailer service")),
	}
}

// SubmitLead sends the chatbot lead notification.
func (s *Service) SubmitLead(ctx context.Context, lead entity.Lead) error {
	text := fmt.Sprintf(`A new lead has been captured by Bricklixbot:

- Name: %s
- Email: %s
- Phone: %s
- Purpose: %s
`, lead.Name, lead.Email, lead.Phone, lead.Purpose)

	html := fmt.Sprintf(`<p>A new lead has been captured by Bricklixbot:</p>
<ul>
    <li><strong>Name:</strong> %s</li>
    <li><strong>Email:</strong> %s</li>
    <li><strong>Phone:</strong> %s</li>
    <li><strong>Purpose:</strong> %s</li>
</ul>`, lead.Name, lead.Email, lead.Phone, lead.Purpose)

	_, err := s.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    s.from,
		To:      []string{s.to},
		Subject: "New Sales Inquiry from: " + lead.Name,
		Text:    text,
		Html:    html,
	})
	if err != nil {
		s.log.With(
			slog.String("email", lead.Email),
			sl.Err(err),
		).Error("send lead email")
		return fmt.Errorf("sending lead email: %w", err)
	}

	s.log.With(
		slog.String("email", lead.Email),
	).Info("lead email sent")
	return nil
}

// SendInquiry sends the contact-form inquiry notification. Optional fields
// are omitted from the body when empty.
func (s *Service) SendInquiry(ctx context.Context, inq entity.Inquiry) error {
	label := inq.TypeLabel()
	fullName := inq.FirstName + " " + inq.LastName

	var text strings.Builder
	fmt.Fprintf(&text, "New Inquiry: %s\n\n", label)
	text.WriteString("Contact Information:\n")
	fmt.Fprintf(&text, "Name: %s\n", fullName)
	fmt.Fprintf(&text, "Email: %s\n", inq.Email)
	writeField(&text, "Contact Number", inq.ContactNumber)
	text.WriteString("\nInquiry Details:\n")
	writeField(&text, "Company", inq.Company)
	writeField(&text, "Budget Range", inq.Budget)
	writeField(&text, "Platform Type", inq.Platform)
	writeField(&text, "Uptime Requirement", inq.Uptime)
	writeField(&text, "Launch Date", inq.LaunchDate)
	writeField(&text, "Tech Stack", inq.TechStack)
	writeField(&text, "Required Role", inq.Role)
	if inq.Duration != "" {
		fmt.Fprintf(&text, "Duration: %s months\n", inq.Duration)
	}
	if inq.Message != "" {
		fmt.Fprintf(&text, "\nMessage:\n%s\n", inq.Message)
	}

	var html strings.Builder
	fmt.Fprintf(&html, "<h2>New Inquiry: %s</h2>", label)
	html.WriteString("<h3>Contact Information</h3>")
	fmt.Fprintf(&html, "<p><strong>Name:</strong> %s</p>", fullName)
	fmt.Fprintf(&html, `<p><strong>Email:</strong> <a href="mailto:%s">%s</a></p>`, inq.Email, inq.Email)
	writeHTMLField(&html, "Contact Number", inq.ContactNumber)
	html.WriteString("<h3>Inquiry Details</h3>")
	writeHTMLField(&html, "Company", inq.Company)
	writeHTMLField(&html, "Budget Range", inq.Budget)
	writeHTMLField(&html, "Platform Type", inq.Platform)
	writeHTMLField(&html, "Uptime Requirement", inq.Uptime)
	writeHTMLField(&html, "Launch Date", inq.LaunchDate)
	writeHTMLField(&html, "Tech Stack", inq.TechStack)
	writeHTMLField(&html, "Required Role", inq.Role)
	if inq.Duration != "" {
		fmt.Fprintf(&html, "<p><strong>Duration:</strong> %s months</p>", inq.Duration)
	}
	if inq.Message != "" {
		fmt.Fprintf(&html, "<h3>Message</h3><p>%s</p>", inq.Message)
	}

	_, err := s.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    s.from,
		To:      []string{s.to},
		ReplyTo: inq.Email,
		Subject: fmt.Sprintf("New Inquiry: %s - %s", label, fullName),
		Text:    text.String(),
		Html:    html.String(),
	})
	if err != nil {
		s.log.With(
			slog.String("email", inq.Email),
			slog.String("type", label),
			sl.Err(err),
		).Error("send inquiry email")
		return fmt.Errorf("sending inquiry email: %w", err)
	}

	s.log.With(
		slog.String("email", inq.Email),
		slog.String("type", label),
	).Info("inquiry email sent")
	return nil
}

func writeField(b *strings.Builder, label, value string) {
	if value != "" {
		fmt.Fprintf(b, "%s: %s\n", label, value)
	}
}

func writeHTMLField(b *strings.Builder, label, value string) {
	if value != "" {
		fmt.Fprintf(b, "<p><strong>%s:</strong> %s</p>", label, value)
	}
}
