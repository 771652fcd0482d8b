package reconciler

import (
	"context"
	"testing"

	"payment-gateway-core/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoop_ReconcileAlwaysAgrees(t *testing.T) {
	n := New()
	status, err := n.Reconcile(context.Background(), &domain.Payment{Status: domain.StatusAuthorized})
	require.NoError(t, err)
	assert.Nil(t, status)
}
