package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOTPCache(t *testing.T) {
	t.Cleanup(OTPCache.Flush)

	assert.True(t, SaveOTPIfAbsent("a@example.com", "123456"))
	assert.False(t, SaveOTPIfAbsent("a@example.com", "999999"))

	code, ok := GetOTP("a@example.com")
	assert.True(t, ok)
	assert.Equal(t, "123456", code)

	DeleteOTP("a@example.com")
	_, ok = GetOTP("a@example.com")
	assert.False(t, ok)
}
