package examples

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/solidkit/internal/core/domain"
)

func run(t *testing.T, id string) string {
	t.Helper()
	var out bytes.Buffer
	require.NoError(t, NewDefaultRegistry().Run(context.Background(), id, &out))
	return out.String()
}

func TestRunners_AllSucceed(t *testing.T) {
	for _, e := range NewDefaultRegistry().List(domain.ExampleFilter{}) {
		t.Run(e.ID, func(t *testing.T) {
			assert.NotEmpty(t, run(t, e.ID))
		})
	}
}

func TestRunners_Output(t *testing.T) {
	tests := []struct {
		id       string
		contains []string
	}{
		{"srp/good", []string{
			"Saving invoice to database\nSending invoice email to customer@example.com\n",
			"Rejected: validate invoice: total: invoice total must be greater than zero",
		}},
		{"srp/bad", []string{"Invoice created successfully", "Rejected:"}},
		{"ocp/good", []string{"Credit Card fee on 200.00: 6.00", "PayPal fee on 200.00: 10.00", "Pix fee on 200.00: 0.00"}},
		{"ocp/bad", []string{"PayPal fee on 200.00: 10.00"}},
		{"lsp/good", []string{"Sparrow is hopping\nPenguin is swimming\nSparrow is flying\n", "no flying capability"}},
		{"lsp/bad", []string{"Sparrow is flying", "Run-time failure: penguins cannot fly"}},
		{"isp/good", []string{"Profile: #1 user@email.com", "Sending password reset email to user@email.com", "period,id,email\n2025-01,1,user@email.com\n"}},
		{"isp/bad", []string{"Profile: #1 user@email.com", "GenerateMonthlyReport"}},
		{"dip/good", []string{"Saving order to SQL Server", "1 order(s) stored"}},
		{"dip/bad", []string{"Saving order to SQL Server"}},
		{"kiss-yagni/good", []string{"Sending EMAIL: Hello\n"}},
		{"kiss-yagni/bad", []string{"Sending EMAIL: [DEFAULT]: Hello\n"}},
		{"dry/good", []string{"premium_holiday", "loyalty", "Total discount: 35.00"}},
		{"dry/bad", []string{"Total discount: 35.00"}},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			out := run(t, tt.id)
			for _, want := range tt.contains {
				assert.Contains(t, out, want)
			}
		})
	}
}

func TestRunners_GoodAndBadAgree(t *testing.T) {
	// Same results, different designs.
	assert.Equal(t, run(t, "ocp/good"), run(t, "ocp/bad"))
	assert.Contains(t, run(t, "kiss-yagni/bad"), "Sending EMAIL:")
}
