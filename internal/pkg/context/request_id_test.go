package context

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequestID(t *testing.T) {
	ctx := WithRequestID(context.Background(), "  abc  ")
	assert.Equal(t, "abc", RequestID(ctx))

	assert.Equal(t, "", RequestID(context.Background()))
	assert.Equal(t, "", RequestID(WithRequestID(context.Background(), " ")))
}
