package services

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/solidkit/internal/core/domain"
)

func TestMessageService_Send(t *testing.T) {
	var out bytes.Buffer
	service := NewMessageService(&out)

	err := service.Send(context.Background(), domain.Message{Content: "Hello"})

	require.NoError(t, err)
	assert.Equal(t, "Sending EMAIL: Hello\n", out.String())
}

func TestMessageService_Send_Empty(t *testing.T) {
	var out bytes.Buffer
	service := NewMessageService(&out)

	require.NoError(t, service.Send(context.Background(), domain.Message{}))
	assert.Equal(t, "Sending EMAIL: \n", out.String())
}
