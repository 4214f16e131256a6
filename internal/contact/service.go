package contact

import (
	"go.uber.org/zap"

	"github.com/probikes/probikes-backend/internal/observability/metrics"
)

// Message is a contact-form submission.
type Message struct {
	Name    string
	Email   string
	Subject string
	Body    string
}

// Service accepts contact messages and newsletter signups. Nothing is stored
// or delivered anywhere; submissions are acknowledged, logged, and counted,
// mirroring the storefront forms that were never wired to a backend.
type Service struct {
	logger  *zap.Logger
	metrics *metrics.SiteMetrics
}

func NewService(logger *zap.Logger, m *metrics.SiteMetrics) *Service {
	if logger == nil {
		logger = zap.L()
	}
	return &Service{
		logger:  logger,
		metrics: m,
	}
}

// AcceptMessage acknowledges a contact-form submission.
func (s *Service) AcceptMessage(msg Message) {
	s.logger.Info("contact message accepted",
		zap.String("name", msg.Name),
		zap.String("email", msg.Email),
		zap.String("subject", msg.Subject),
	)
	s.metrics.FormAccepted("contact")
}

// AcceptNewsletterSignup acknowledges a newsletter signup.
func (s *Service) AcceptNewsletterSignup(email string) {
	s.logger.Info("newsletter signup accepted", zap.String("email", email))
	s.metrics.FormAccepted("newsletter")
}
