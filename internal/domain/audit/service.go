package audit

import (
	"context"
)

type Service interface {
	// Record writes an audit entry, taking the actor from the JWT claims
	// when present. Best-effort: failures are logged, never returned.
	Record(ctx context.Context, action, details, ip string)
	// RecordFor is Record with an explicit username, for events outside an
	// authenticated context (failed logins).
	RecordFor(ctx context.Context, username, action, details, ip string)
	ListRecent(ctx context.Context) ([]EntryResponse, error)
}
