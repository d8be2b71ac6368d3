package cli

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/solidkit/internal/core/domain"
)

func TestOrderPlaceAndList(t *testing.T) {
	buf, cleanup := setupTestServices(t)
	defer cleanup()

	require.NoError(t, execute(buf, "order", "list"))
	assert.Contains(t, buf.String(), "No orders stored.")

	buf.Reset()
	require.NoError(t, execute(buf, "order", "place", "--id", "7", "--amount", "42.5"))
	assert.Contains(t, buf.String(), "Order 7 placed (42.50)")

	buf.Reset()
	require.NoError(t, execute(buf, "order", "list"))
	assert.Contains(t, buf.String(), "7")
	assert.Contains(t, buf.String(), "42.50")
}

func TestOrderPlace_InvalidAmount(t *testing.T) {
	tests := []struct {
		name   string
		amount string
	}{
		{"not a number", "lots"},
		{"negative", "-1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf, cleanup := setupTestServices(t)
			defer cleanup()

			err := execute(buf, "order", "place", "--amount", tt.amount)

			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestInvoiceCreateAndList(t *testing.T) {
	buf, cleanup := setupTestServices(t)
	defer cleanup()

	require.NoError(t, execute(buf, "invoice", "list"))
	assert.Contains(t, buf.String(), "No invoices stored.")

	buf.Reset()
	require.NoError(t, execute(buf, "invoice", "create", "--total", "250", "--email", "ada@example.com"))
	out := buf.String()
	assert.Contains(t, out, "Sending invoice email to ada@example.com")
	assert.Contains(t, out, "Invoice created")

	buf.Reset()
	require.NoError(t, execute(buf, "invoice", "list"))
	assert.Contains(t, buf.String(), "ada@example.com")
	assert.Contains(t, buf.String(), "250.00")
}

func TestInvoiceCreate_MissingEmail(t *testing.T) {
	buf, cleanup := setupTestServices(t)
	defer cleanup()

	err := execute(buf, "invoice", "create", "--total", "10")

	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.NotContains(t, buf.String(), "Sending invoice email")
}

func TestFeeCmd(t *testing.T) {
	tests := []struct {
		method string
		want   string
	}{
		{"credit_card", "Credit Card fee on 200.00: 6.00"},
		{"paypal", "PayPal fee on 200.00: 10.00"},
		{"pix", "Pix fee on 200.00: 0.00"},
	}
	for _, tt := range tests {
		t.Run(tt.method, func(t *testing.T) {
			buf, cleanup := setupTestServices(t)
			defer cleanup()

			err := execute(buf, "fee", "--method", tt.method, "--amount", "200")

			require.NoError(t, err)
			assert.Contains(t, buf.String(), tt.want)
		})
	}
}

func TestFeeCmd_UnknownMethod(t *testing.T) {
	buf, cleanup := setupTestServices(t)
	defer cleanup()

	err := execute(buf, "fee", "-m", "bitcoin")

	require.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), "accepted: credit_card, paypal, pix")
}

func TestDiscountCmd_Text(t *testing.T) {
	buf, cleanup := setupTestServices(t)
	defer cleanup()

	err := execute(buf, "discount", "--amount", "100", "--holiday", "--first-purchase")

	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "premium_holiday")
	assert.Contains(t, out, "20.00")
	assert.Contains(t, out, "first_purchase")
	assert.Contains(t, out, "Total discount: 30.00")
}

func TestDiscountCmd_JSON(t *testing.T) {
	buf, cleanup := setupTestServices(t)
	defer cleanup()

	err := execute(buf, "discount", "--amount", "200", "--employee", "--json")

	require.NoError(t, err)
	var got discountJSONOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "200.00", got.Amount)
	assert.Equal(t, "60.00", got.Total)
	require.Len(t, got.Lines, 4)
	assert.Equal(t, discountLineJSON{Rule: "employee", Amount: "60.00"}, got.Lines[0])
}

func TestDiscountCmd_NegativeLoyalty(t *testing.T) {
	buf, cleanup := setupTestServices(t)
	defer cleanup()

	err := execute(buf, "discount", "--loyalty-years", "-2")

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestMessageSend(t *testing.T) {
	buf, cleanup := setupTestServices(t)
	defer cleanup()

	err := execute(buf, "message", "send", "hello", "world")

	require.NoError(t, err)
	assert.Equal(t, "Sending EMAIL: hello world\n", buf.String())
}

func TestBirdCmd(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"bird", "move", "sparrow"}, "Sparrow is hopping"},
		{[]string{"bird", "move", "penguin"}, "Penguin is swimming"},
		{[]string{"bird", "fly", "sparrow"}, "Sparrow is flying"},
	}
	for _, tt := range tests {
		t.Run(strings.Join(tt.args[1:], " "), func(t *testing.T) {
			buf, cleanup := setupTestServices(t)
			defer cleanup()

			err := execute(buf, tt.args...)

			require.NoError(t, err)
			assert.Contains(t, buf.String(), tt.want)
		})
	}
}

func TestBirdFly_PenguinRefused(t *testing.T) {
	buf, cleanup := setupTestServices(t)
	defer cleanup()

	err := execute(buf, "bird", "fly", "penguin")

	require.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.NotErrorIs(t, err, domain.ErrUnsupportedBehaviour)
	assert.Contains(t, err.Error(), "penguin cannot fly")
	assert.NotContains(t, buf.String(), "flying")
}

func TestBirdMove_Unknown(t *testing.T) {
	buf, cleanup := setupTestServices(t)
	defer cleanup()

	err := execute(buf, "bird", "move", "dodo")

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
