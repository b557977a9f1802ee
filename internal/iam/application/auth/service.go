package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"sistema-advocacia/internal/iam/application/auth/cache"
	"sistema-advocacia/internal/iam/domain/user"
	"sistema-advocacia/internal/pkg/mailer"
	"sistema-advocacia/internal/pkg/util"

	"github.com/google/uuid"
)

const otpLength = 6

// TokenIssuer é implementado por *jwt.TokenGenerator.
type TokenIssuer interface {
	GenerateAccessToken(userID uuid.UUID, role string) (string, time.Time, error)
}

type Service interface {
	Login(ctx context.Context, email, pwd string) (Login, error)
	RevokeAcessToken(ctx context.Context, token string) error
	GetAcessToken(ctx context.Context, token string) (AcessToken, error)
	CreateOTPCode(ctx context.Context, email string) error
	ValidateOTPCode(ctx context.Context, email, codeDst string) bool
	ChangeUserPwd(ctx context.Context, otpCode, email, pwd string) (bool, error)
}

type implService struct {
	Repository Repository
	users      user.Service
	tokens     TokenIssuer
	mail       mailer.Service
}

func NewService(repository Repository, users user.Service, tokens TokenIssuer, mail mailer.Service) Service {
	return &implService{
		Repository: repository,
		users:      users,
		tokens:     tokens,
		mail:       mail,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *implService) Login(ctx context.Context, email, pwd string) (Login, error) {
	rUser, err := s.users.Read(ctx, user.User{Email: normalizeEmail(email)})
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return Login{}, ErrPwdWrong
		}
		return Login{}, err
	}
	if err := util.UsePassword().Compare(rUser.Password, pwd); err != nil {
		return Login{}, ErrPwdWrong
	}
	if !rUser.Live {
		return Login{}, ErrUserDisabled
	}

	token, expTime, err := s.tokens.GenerateAccessToken(rUser.UUID, string(rUser.Role))
	if err != nil {
		return Login{}, err
	}
	acessToken := AcessToken{UserUUID: &rUser.UUID, Token: token, Expiry: expTime}

	// sessão única: tokens anteriores expiram
	if err := s.Repository.RevokeAllUserTokens(ctx, rUser.UUID.String()); err != nil {
		return Login{}, err
	}
	if err := s.Repository.CreateAcessToken(ctx, acessToken); err != nil {
		return Login{}, err
	}

	return Login{User: rUser, AcessToken: acessToken}, nil
}

func (s *implService) RevokeAcessToken(ctx context.Context, token string) error {
	return s.Repository.RevokeAcessToken(ctx, token)
}

func (s *implService) GetAcessToken(ctx context.Context, token string) (AcessToken, error) {
	return s.Repository.GetAcessToken(ctx, token)
}

func (s *implService) CreateOTPCode(ctx context.Context, email string) error {
	email = normalizeEmail(email)
	if _, err := s.users.Read(ctx, user.User{Email: email}); err != nil {
		return err
	}
	if s.mail == nil {
		return mailer.ErrMailerNotInitialized
	}

	otpCode, err := GenerateOTP(otpLength)
	if err != nil {
		return err
	}
	if !cache.SaveOTPIfAbsent(email, otpCode) {
		return ErrOTPCodeExist
	}

	err = s.mail.SendRaw(
		email,
		"Código de verificação",
		fmt.Sprintf("<h1>Seu código OTP é: %s</h1><p>Válido por %d minutos.</p>", otpCode, int(cache.OTPTTL.Minutes())),
	)
	if err != nil {
		cache.DeleteOTP(email)
		return err
	}
	return nil
}

func (s *implService) ValidateOTPCode(ctx context.Context, email, codeDst string) bool {
	otpExist, found := cache.GetOTP(normalizeEmail(email))
	return found && otpExist == codeDst
}

func (s *implService) ChangeUserPwd(ctx context.Context, otpCode, email, pwd string) (bool, error) {
	email = normalizeEmail(email)
	if !s.ValidateOTPCode(ctx, email, otpCode) {
		return false, ErrOTPCodeWrong
	}
	cache.DeleteOTP(email)

	userDst, err := s.users.Read(ctx, user.User{Email: email})
	if err != nil {
		return false, err
	}
	if _, err := s.users.Update(ctx, user.User{UUID: userDst.UUID, Password: pwd}, nil); err != nil {
		return false, err
	}
	if err := s.Repository.RevokeAllUserTokens(ctx, userDst.UUID.String()); err != nil {
		return false, err
	}
	return true, nil
}
