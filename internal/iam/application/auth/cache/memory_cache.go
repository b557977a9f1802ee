package cache

import (
	"time"

	"github.com/patrickmn/go-cache"
)

// OTPTTL é a validade de um código OTP.
const OTPTTL = 5 * time.Minute

var OTPCache = cache.New(OTPTTL, 10*time.Minute)

func SaveOTP(email, code string) {
	OTPCache.Set(email, code, OTPTTL)
}

// SaveOTPIfAbsent grava o código só quando não há outro válido para o email.
func SaveOTPIfAbsent(email, code string) bool {
	return OTPCache.Add(email, code, OTPTTL) == nil
}

func GetOTP(email string) (string, bool) {
	v, found := OTPCache.Get(email)
	if !found {
		return "", false
	}
	code, ok := v.(string)
	return code, ok
}

func DeleteOTP(email string) {
	OTPCache.Delete(email)
}
