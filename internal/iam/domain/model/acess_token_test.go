package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAcessToken_Expired(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	assert.False(t, AcessToken{Expiry: now.Add(time.Minute)}.Expired(now))
	assert.True(t, AcessToken{Expiry: now}.Expired(now))
	assert.True(t, AcessToken{Expiry: now.Add(-time.Second)}.Expired(now))
}
