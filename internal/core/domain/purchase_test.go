package domain_test

import (
	"testing"

	"github.com/centsible/centsible_backend/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestPurchaseStatusCanTransitionTo(t *testing.T) {
	testCases := []struct {
		name     string
		from     domain.PurchaseStatus
		to       domain.PurchaseStatus
		expected bool
	}{
		{"PendingToPosted", domain.PurchasePending, domain.PurchasePosted, true},
		{"PostedToReconciled", domain.PurchasePosted, domain.PurchaseReconciled, true},
		{"PendingSkipsPosted", domain.PurchasePending, domain.PurchaseReconciled, false},
		{"PostedBackToPending", domain.PurchasePosted, domain.PurchasePending, false},
		{"ReconciledIsTerminal", domain.PurchaseReconciled, domain.PurchasePosted, false},
		{"SameStatus", domain.PurchasePosted, domain.PurchasePosted, false},
		{"UnknownFrom", domain.PurchaseStatus("DISPUTED"), domain.PurchasePosted, false},
		{"UnknownTo", domain.PurchasePending, domain.PurchaseStatus("DISPUTED"), false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.from.CanTransitionTo(tc.to))
		})
	}
}
