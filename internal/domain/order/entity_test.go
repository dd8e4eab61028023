package order

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusValidation(t *testing.T) {
	assert.True(t, StatusPending.IsValid())
	assert.True(t, StatusCancelled.IsValid())
	assert.False(t, Status("shipped").IsValid())
}

func TestStatusTransitions(t *testing.T) {
	tests := []struct {
		from Status
		to   Status
		ok   bool
	}{
		{StatusPending, StatusPreparing, true},
		{StatusPending, StatusCancelled, true},
		{StatusPending, StatusDelivered, false},
		{StatusPreparing, StatusReady, true},
		{StatusPreparing, StatusDelivered, false},
		{StatusReady, StatusDelivered, true},
		{StatusDelivered, StatusPending, false},
		{StatusCancelled, StatusPreparing, false},
	}

	for _, tt := range tests {
		got := tt.from.CanTransitionTo(tt.to)
		assert.Equal(t, tt.ok, got, "%s -> %s", tt.from, tt.to)
	}
}
