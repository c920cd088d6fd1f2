package services

import "context"

// SeedSvcFacade populates a tenant's initial chart of accounts from the
// standard template.
type SeedSvcFacade interface {
	// SeedChartOfAccounts inserts the standard account set, skipping codes
	// the tenant already has, and returns the count actually created.
	SeedChartOfAccounts(ctx context.Context, tenantID, userID string) (int, error)
}
