package errors

import (
	stderrors "errors"
	"testing"

	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test 1: a bare tracer reports its message and has no stack yet
func TestNewTracer(t *testing.T) {
	tracer := NewTracer(string(KafkaReadError))

	assert.Equal(t, "kafka_read_error", tracer.Error())
	assert.Nil(t, tracer.Unwrap())
	assert.Nil(t, tracer.StackTrace())
}

// Test 2: Wrap captures a stack for plain errors and keeps the cause
// reachable through errors.Is
func TestErrorTracer_Wrap(t *testing.T) {
	cause := stderrors.New("connection refused")
	tracer := NewTracer(string(KafkaReadError)).Wrap(cause)

	assert.Equal(t, "kafka_read_error", tracer.Error())
	assert.True(t, stderrors.Is(tracer, cause))
	require.NotNil(t, tracer.StackTrace())
}

// Test 3: an error that already carries a stack is attached as-is
func TestErrorTracer_WrapKeepsExistingStack(t *testing.T) {
	cause := pkgerrors.New("already traced")
	tracer := NewTracer(string(RedisGetError)).Wrap(cause)

	assert.Equal(t, cause, tracer.Err)
	require.NotNil(t, tracer.StackTrace())
}

// Test 4: TracerFromError adopts the cause's own message
func TestTracerFromError(t *testing.T) {
	cause := stderrors.New("snapshot missing")
	tracer := TracerFromError(cause)

	assert.Equal(t, "snapshot missing", tracer.Error())
	assert.True(t, stderrors.Is(tracer, cause))
	require.NotNil(t, tracer.StackTrace())
}
