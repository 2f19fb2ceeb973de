package ports

import "context"

// HealthRepository probes the storage backend for the readiness check. Ping
// honours the deadline of ctx; a timeout is reported the same way as any
// other connectivity failure.
type HealthRepository interface {
	Ping(ctx context.Context) error
}
