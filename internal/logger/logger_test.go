package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	log := New()
	require.NotNil(t, log)
	log.Infow("hello", "k", "v")
}

func TestFromContextFallsBack(t *testing.T) {
	log := FromContext(context.Background())
	assert.NotNil(t, log)

	seeded := New()
	ctx := context.WithValue(context.Background(), ContextKey, seeded)
	assert.Equal(t, seeded, FromContext(ctx))
}
