package audit

import (
	"context"
	"log/slog"

	"github.com/edupay/edupay-backend-go/internal/domain/audit"
	"github.com/go-chi/jwtauth/v5"
)

const listLimit = 200

type AuditServiceImpl struct {
	auditRepo audit.AuditRepository
}

func NewAuditService(auditRepo audit.AuditRepository) audit.Service {
	return &AuditServiceImpl{auditRepo: auditRepo}
}

// Record writes an audit entry with the actor taken from the JWT claims.
// Failures are logged and swallowed so auditing never breaks the operation
// being audited.
func (s *AuditServiceImpl) Record(ctx context.Context, action, details, ip string) {
	entry := audit.Entry{Action: action}
	if details != "" {
		entry.Details = &details
	}
	if ip != "" {
		entry.IPAddress = &ip
	}

	if _, claims, err := jwtauth.FromContext(ctx); err == nil {
		if userID, ok := claims["user_id"].(string); ok && userID != "" {
			entry.UserID = &userID
		}
		if username, ok := claims["username"].(string); ok && username != "" {
			entry.Username = &username
		}
	}

	if err := s.auditRepo.Create(ctx, entry); err != nil {
		slog.Error("audit write failed", "action", action, "error", err)
	}
}

func (s *AuditServiceImpl) RecordFor(ctx context.Context, username, action, details, ip string) {
	entry := audit.Entry{Action: action}
	if username != "" {
		entry.Username = &username
	}
	if details != "" {
		entry.Details = &details
	}
	if ip != "" {
		entry.IPAddress = &ip
	}

	if err := s.auditRepo.Create(ctx, entry); err != nil {
		slog.Error("audit write failed", "action", action, "error", err)
	}
}

func (s *AuditServiceImpl) ListRecent(ctx context.Context) ([]audit.EntryResponse, error) {
	entries, err := s.auditRepo.ListRecent(ctx, listLimit)
	if err != nil {
		return nil, err
	}

	responses := make([]audit.EntryResponse, 0, len(entries))
	for _, e := range entries {
		responses = append(responses, audit.ToEntryResponse(e))
	}

	return responses, nil
}
