package api

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriteInvalidationTargets(t *testing.T) {
	// A sale moves land between wallets, so both the sales aggregate and the
	// influence ranking go stale; the entity counts do not
	require.Contains(t, saleInvalidations, "report:landsales")
	require.Contains(t, saleInvalidations, "report:influence")
	require.NotContains(t, saleInvalidations, "report:summary")

	// A business only feeds the summary counts, not the influence score
	require.Contains(t, businessInvalidations, "report:summary")
	require.NotContains(t, businessInvalidations, "report:influence")

	// A cascade touches counts, land holdings, votes and sale parties
	for _, key := range []string{"report:summary", "report:influence", "report:landsales"} {
		require.Contains(t, cascadeInvalidations, key)
	}
}
