package log

import (
	"context"
	"strings"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
)

func TestContextWithCorrelationID(t *testing.T) {
	tests := []struct {
		name     string
		incoming string
		reuse    bool
	}{
		{name: "Reaproveita o ID do cliente", incoming: "req-123", reuse: true},
		{name: "Gera um novo quando vazio", incoming: "  ", reuse: false},
		{name: "Gera um novo quando muito longo", incoming: strings.Repeat("x", 65), reuse: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, id := ContextWithCorrelationID(context.Background(), tt.incoming)

			assert.Equal(t, id, GetCorrelationID(ctx))
			if tt.reuse {
				assert.Equal(t, tt.incoming, id)
				return
			}
			assert.Len(t, id, 36)
		})
	}
}

func TestGetCorrelationID_Empty(t *testing.T) {
	assert.Equal(t, "", GetCorrelationID(context.Background()))
}

func TestForContext_AnexaCorrelationID(t *testing.T) {
	hook := test.NewGlobal()
	defer hook.Reset()
	L = newLogger()

	ctx, id := ContextWithCorrelationID(context.Background(), "req-abc")
	ForContext(ctx).WithField("user_id", "user-1").Info("mensagem")

	entry := hook.LastEntry()
	if assert.NotNil(t, entry) {
		assert.Equal(t, id, entry.Data[correlationIDField])
		assert.Equal(t, "user-1", entry.Data["user_id"])
	}
}

func TestForContext_SemCorrelationID(t *testing.T) {
	hook := test.NewGlobal()
	defer hook.Reset()
	L = newLogger()

	ForContext(context.Background()).Warn("sem id")

	entry := hook.LastEntry()
	if assert.NotNil(t, entry) {
		assert.NotContains(t, entry.Data, correlationIDField)
	}
}
