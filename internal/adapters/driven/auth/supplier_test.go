package auth

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInteractiveSupplier_ReadsCode(t *testing.T) {
	var out bytes.Buffer
	s := &InteractiveSupplier{
		in:  strings.NewReader("4/abc-code\n"),
		out: &out,
	}

	code, err := s.Code(context.Background(), "https://auth.example/authorize")

	require.NoError(t, err)
	assert.Equal(t, "4/abc-code", code)
	assert.Contains(t, out.String(), "https://auth.example/authorize")
}

func TestInteractiveSupplier_TrimsWhitespace(t *testing.T) {
	s := &InteractiveSupplier{
		in:  strings.NewReader("  4/abc-code  \n"),
		out: &bytes.Buffer{},
	}

	code, err := s.Code(context.Background(), "https://auth.example")

	require.NoError(t, err)
	assert.Equal(t, "4/abc-code", code)
}

func TestInteractiveSupplier_EmptyInput(t *testing.T) {
	s := &InteractiveSupplier{
		in:  strings.NewReader("\n"),
		out: &bytes.Buffer{},
	}

	_, err := s.Code(context.Background(), "https://auth.example")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty")
}

func TestInteractiveSupplier_ContextCancelled(t *testing.T) {
	s := &InteractiveSupplier{
		in:  strings.NewReader("code\n"),
		out: &bytes.Buffer{},
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.Code(ctx, "https://auth.example")

	assert.ErrorIs(t, err, context.Canceled)
}

func TestStaticSupplier(t *testing.T) {
	s := NewStaticSupplier("fixed-code")

	code, err := s.Code(context.Background(), "ignored")

	require.NoError(t, err)
	assert.Equal(t, "fixed-code", code)
}

func TestStaticSupplier_Empty(t *testing.T) {
	s := NewStaticSupplier("")

	_, err := s.Code(context.Background(), "ignored")

	require.Error(t, err)
}
