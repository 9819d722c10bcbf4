package users

import "context"

// ChecksPolicy exposes the admin-configurable lookup allowance granted to
// new accounts
// go:generate mockgen -destination=mocks/mock_policy.go -package=mocks github.com/scrapline/scrapline/services/users ChecksPolicy
type ChecksPolicy interface {
	DefaultChecks(ctx context.Context) (int, error)
}
