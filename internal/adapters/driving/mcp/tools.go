package mcp

import (
	"bytes"
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/shopspring/decimal"

	"github.com/custodia-labs/solidkit/internal/core/domain"
)

// ListExamplesInput is the input schema for the list_examples tool.
type ListExamplesInput struct {
	Principle string `json:"principle,omitempty" jsonschema:"only list one principle: srp, ocp, lsp, isp, dip, kiss-yagni or dry"`
	Variant   string `json:"variant,omitempty" jsonschema:"only list good or bad examples"`
}

// ListExamplesOutput is the output schema for the list_examples tool.
type ListExamplesOutput struct {
	Examples []ExampleOutput `json:"examples"`
	Count    int             `json:"count"`
}

// ExampleOutput describes one catalog entry.
type ExampleOutput struct {
	ID        string   `json:"id"`
	Principle string   `json:"principle"`
	Variant   string   `json:"variant"`
	Title     string   `json:"title"`
	Summary   string   `json:"summary"`
	Notes     []string `json:"notes,omitempty"`
}

// RunExampleInput is the input schema for the run_example tool.
type RunExampleInput struct {
	ID string `json:"id" jsonschema:"example id, e.g. ocp/good"`
}

// RunExampleOutput is the output schema for the run_example tool.
type RunExampleOutput struct {
	ID     string `json:"id"`
	Output string `json:"output"`
}

// FeeInput is the input schema for the calculate_fee tool.
type FeeInput struct {
	Method string `json:"method" jsonschema:"payment method: credit_card, paypal or pix"`
	Amount string `json:"amount" jsonschema:"payment amount as a decimal string, e.g. 200.00"`
}

// FeeOutput is the output schema for the calculate_fee tool.
type FeeOutput struct {
	Method string `json:"method"`
	Amount string `json:"amount"`
	Fee    string `json:"fee"`
}

// DiscountInput is the input schema for the calculate_discount tool.
type DiscountInput struct {
	Amount          string `json:"amount" jsonschema:"order amount as a decimal string"`
	IsHoliday       bool   `json:"is_holiday,omitempty" jsonschema:"order placed during a holiday campaign"`
	IsFirstPurchase bool   `json:"is_first_purchase,omitempty" jsonschema:"customer's first order"`
	LoyaltyYears    int    `json:"loyalty_years,omitempty" jsonschema:"years the customer has been with us"`
	IsEmployee      bool   `json:"is_employee,omitempty" jsonschema:"order placed by staff"`
}

// DiscountLineOutput is one rule's share of a discount.
type DiscountLineOutput struct {
	Rule   string `json:"rule"`
	Amount string `json:"amount"`
}

// DiscountOutput is the output schema for the calculate_discount tool.
type DiscountOutput struct {
	Lines []DiscountLineOutput `json:"lines"`
	Total string               `json:"total"`
}

// registerTools registers all tool handlers with the MCP server.
// The fee and discount tools are only offered when their port is set.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_examples",
		Description: "List the SOLID, DRY and KISS/YAGNI examples",
	}, s.handleListExamples)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "run_example",
		Description: "Run one example and return what it printed",
	}, s.handleRunExample)

	if s.ports.Payments != nil {
		mcp.AddTool(s.server, &mcp.Tool{
			Name:        "calculate_fee",
			Description: "Calculate the fee for a payment using the configured fee strategies",
		}, s.handleCalculateFee)
	}

	if s.ports.Discounts != nil {
		mcp.AddTool(s.server, &mcp.Tool{
			Name:        "calculate_discount",
			Description: "Calculate an order discount with a per-rule breakdown",
		}, s.handleCalculateDiscount)
	}
}

func (s *Server) handleListExamples(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input ListExamplesInput,
) (*mcp.CallToolResult, ListExamplesOutput, error) {
	filter := domain.ExampleFilter{
		Principle: domain.Principle(input.Principle),
		Variant:   domain.Variant(input.Variant),
	}
	if filter.Principle != "" && !filter.Principle.IsValid() {
		return nil, ListExamplesOutput{}, fmt.Errorf("%w: unknown principle %q", domain.ErrInvalidInput, input.Principle)
	}
	if filter.Variant != "" && !filter.Variant.IsValid() {
		return nil, ListExamplesOutput{}, fmt.Errorf("%w: unknown variant %q", domain.ErrInvalidInput, input.Variant)
	}

	list := s.ports.Catalog.List(filter)
	output := ListExamplesOutput{
		Examples: make([]ExampleOutput, len(list)),
		Count:    len(list),
	}
	for i := range list {
		output.Examples[i] = toExampleOutput(list[i])
	}
	return nil, output, nil
}

func (s *Server) handleRunExample(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input RunExampleInput,
) (*mcp.CallToolResult, RunExampleOutput, error) {
	var buf bytes.Buffer
	if err := s.ports.Catalog.Run(ctx, input.ID, &buf); err != nil {
		return nil, RunExampleOutput{}, err
	}
	return nil, RunExampleOutput{ID: input.ID, Output: buf.String()}, nil
}

func (s *Server) handleCalculateFee(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input FeeInput,
) (*mcp.CallToolResult, FeeOutput, error) {
	if s.ports.Payments == nil {
		return nil, FeeOutput{}, fmt.Errorf("calculate_fee: %w", ErrToolUnavailable)
	}

	method, err := domain.ParsePaymentMethod(input.Method)
	if err != nil {
		return nil, FeeOutput{}, err
	}
	amount, err := parseAmount(input.Amount)
	if err != nil {
		return nil, FeeOutput{}, err
	}

	fee, err := s.ports.Payments.CalculateFee(domain.Payment{Method: method, Amount: amount})
	if err != nil {
		return nil, FeeOutput{}, err
	}

	return nil, FeeOutput{
		Method: method.String(),
		Amount: amount.StringFixed(2),
		Fee:    fee.StringFixed(2),
	}, nil
}

func (s *Server) handleCalculateDiscount(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input DiscountInput,
) (*mcp.CallToolResult, DiscountOutput, error) {
	if s.ports.Discounts == nil {
		return nil, DiscountOutput{}, fmt.Errorf("calculate_discount: %w", ErrToolUnavailable)
	}

	amount, err := parseAmount(input.Amount)
	if err != nil {
		return nil, DiscountOutput{}, err
	}
	if input.LoyaltyYears < 0 {
		return nil, DiscountOutput{}, fmt.Errorf("%w: loyalty_years must not be negative", domain.ErrInvalidInput)
	}

	order := domain.Order{
		Amount:          amount,
		IsHoliday:       input.IsHoliday,
		IsFirstPurchase: input.IsFirstPurchase,
		LoyaltyYears:    input.LoyaltyYears,
		IsEmployee:      input.IsEmployee,
	}

	lines := s.ports.Discounts.Breakdown(order)
	output := DiscountOutput{
		Lines: make([]DiscountLineOutput, len(lines)),
		Total: s.ports.Discounts.CalculateDiscount(order).StringFixed(2),
	}
	for i, line := range lines {
		output.Lines[i] = DiscountLineOutput{Rule: line.Rule, Amount: line.Amount.StringFixed(2)}
	}
	return nil, output, nil
}

func parseAmount(s string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: amount %q is not a number", domain.ErrInvalidInput, s)
	}
	if amount.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: amount must not be negative", domain.ErrInvalidInput)
	}
	return amount, nil
}

func toExampleOutput(e domain.Example) ExampleOutput {
	return ExampleOutput{
		ID:        e.ID,
		Principle: e.Principle.String(),
		Variant:   e.Variant.String(),
		Title:     e.Title,
		Summary:   e.Summary,
		Notes:     e.Notes,
	}
}
