package auth

import "errors"

var (
	ErrPwdWrong        = errors.New("invalid email or password")
	ErrUserDisabled    = errors.New("user disabled")
	ErrTokenDuplicated = errors.New("access token conflict")
	ErrTokenNotFound   = errors.New("access token not found")
	ErrOTPCodeExist    = errors.New("otp code already sent")
	ErrOTPCodeWrong    = errors.New("otp code wrong")
)
