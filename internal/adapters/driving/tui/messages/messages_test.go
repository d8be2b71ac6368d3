package messages

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/custodia-labs/solidkit/internal/core/domain"
)

func TestViewType_String(t *testing.T) {
	tests := []struct {
		view     ViewType
		expected string
	}{
		{ViewCatalog, "catalog"},
		{ViewOutput, "output"},
		{ViewHelp, "help"},
		{ViewType(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.view.String())
		})
	}
}

func TestViewType_CatalogIsZeroValue(t *testing.T) {
	var v ViewType
	assert.Equal(t, ViewCatalog, v)
}

func TestExampleRun_KeepsPartialOutput(t *testing.T) {
	runErr := errors.New("boom")
	msg := ExampleRun{
		Example: domain.Example{ID: "ocp/good"},
		Output:  "Credit Card fee on 200.00: 6.00\n",
		Err:     runErr,
	}

	assert.Equal(t, "ocp/good", msg.Example.ID)
	assert.NotEmpty(t, msg.Output)
	assert.ErrorIs(t, msg.Err, runErr)
}

func TestFilterChanged(t *testing.T) {
	msg := FilterChanged{
		Filter: domain.ExampleFilter{Principle: domain.PrincipleDRY},
		Count:  2,
	}

	assert.Equal(t, domain.PrincipleDRY, msg.Filter.Principle)
	assert.Equal(t, 2, msg.Count)
}
