package log

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestWithCorrelationID(t *testing.T) {
	t.Run("Gera uuid quando não informado", func(t *testing.T) {
		ctx, id := WithCorrelationID(context.Background(), "")

		_, err := uuid.Parse(id)
		assert.NoError(t, err)
		assert.Equal(t, id, GetCorrelationID(ctx))
	})

	t.Run("Reaproveita o ID recebido", func(t *testing.T) {
		ctx, id := WithCorrelationID(context.Background(), " abc-123 ")

		assert.Equal(t, "abc-123", id)
		assert.Equal(t, "abc-123", GetCorrelationID(ctx))
	})

	t.Run("ID muito longo é substituído", func(t *testing.T) {
		long := make([]byte, 100)
		for i := range long {
			long[i] = 'x'
		}

		_, id := WithCorrelationID(context.Background(), string(long))

		_, err := uuid.Parse(id)
		assert.NoError(t, err)
	})

	t.Run("Contexto sem ID", func(t *testing.T) {
		assert.Equal(t, "", GetCorrelationID(context.Background()))
	})
}

func TestSetEnvironment(t *testing.T) {
	defer SetEnvironment("")

	tests := []struct {
		env      string
		expected bool
	}{
		{env: "", expected: true},
		{env: "development", expected: true},
		{env: "DEV", expected: true},
		{env: "production", expected: false},
		{env: "staging", expected: false},
	}

	for _, tt := range tests {
		SetEnvironment(tt.env)
		assert.Equal(t, tt.expected, IsDevelopment(), "env=%q", tt.env)
	}
}

func TestWithFields_FiltraEmDesenvolvimento(t *testing.T) {
	SetupTestLogger()
	SetEnvironment("development")
	defer SetEnvironment("")

	l := L.WithFields(Fields{"irrelevante": 1}).(*logger)
	assert.Empty(t, l.entry.Data)

	l = L.WithFields(Fields{"agent_id": 7, "irrelevante": 1}).(*logger)
	assert.Equal(t, 7, l.entry.Data["agent_id"])
	assert.NotContains(t, l.entry.Data, "irrelevante")

	SetEnvironment("production")
	l = L.WithFields(Fields{"irrelevante": 1}).(*logger)
	assert.Equal(t, 1, l.entry.Data["irrelevante"])
}
