package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"gymhub/internal/auth"
	"gymhub/internal/model"
	"gymhub/internal/repository"
)

const bcryptCost = 10

var (
	// ErrInvalidCredentials is returned when phone or password is incorrect.
	// A single error for both cases avoids account enumeration.
	ErrInvalidCredentials = errors.New("invalid phone or password")
	// ErrPasswordMismatch is returned when the confirmation does not match.
	ErrPasswordMismatch = errors.New("passwords must match")
	// ErrEmailTaken is returned when the email already belongs to an account.
	ErrEmailTaken = errors.New("email already in use")
	// ErrPhoneTaken is returned when the phone already belongs to an account.
	ErrPhoneTaken = errors.New("phone number already in use")
	// ErrInvalidRefreshToken is returned when refresh token is invalid or expired.
	ErrInvalidRefreshToken = errors.New("invalid or expired refresh token")
)

// AuthService handles registration, login, and session management.
type AuthService interface {
	Register(ctx context.Context, name, phone, email, password, passwordConfirm string) (*model.Member, error)
	Login(ctx context.Context, phone, password string) (accessToken, refreshToken string, member *model.Member, err error)
	RefreshToken(ctx context.Context, refreshToken string) (accessToken string, err error)
	Logout(ctx context.Context, refreshToken string) error
}

type authService struct {
	memberRepo repository.MemberRepository
	jwtService *auth.JWTService
	tokenStore auth.TokenStoreInterface
}

// NewAuthService creates a new authentication service.
func NewAuthService(memberRepo repository.MemberRepository, jwtService *auth.JWTService, tokenStore auth.TokenStoreInterface) AuthService {
	return &authService{
		memberRepo: memberRepo,
		jwtService: jwtService,
		tokenStore: tokenStore,
	}
}

// Register creates a new member account with a bcrypt-hashed password. All
// validation failures return before anything is persisted.
func (s *authService) Register(ctx context.Context, name, phone, email, password, passwordConfirm string) (*model.Member, error) {
	if password != passwordConfirm {
		return nil, ErrPasswordMismatch
	}

	existing, err := s.memberRepo.FindByEmail(ctx, email)
	if err == nil && existing != nil {
		return nil, ErrEmailTaken
	}
	if err != nil && err != gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("check email: %w", err)
	}

	existing, err = s.memberRepo.FindByPhone(ctx, phone)
	if err == nil && existing != nil {
		return nil, ErrPhoneTaken
	}
	if err != nil && err != gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("check phone: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	member := &model.Member{
		Name:         name,
		Phone:        phone,
		Email:        email,
		PasswordHash: string(hashedPassword),
	}

	if err := s.memberRepo.Create(ctx, member); err != nil {
		return nil, fmt.Errorf("create member: %w", err)
	}

	return member, nil
}

// Login authenticates a member and returns access and refresh tokens.
func (s *authService) Login(ctx context.Context, phone, password string) (accessToken, refreshToken string, member *model.Member, err error) {
	member, err = s.memberRepo.FindByPhone(ctx, phone)
	if err != nil {
		return "", "", nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(member.PasswordHash), []byte(password)); err != nil {
		return "", "", nil, ErrInvalidCredentials
	}

	accessToken, err = s.jwtService.GenerateAccessToken(member.ID, member.Phone)
	if err != nil {
		return "", "", nil, fmt.Errorf("generate access token: %w", err)
	}

	tokenID, refreshToken, err := s.jwtService.GenerateRefreshToken(member.ID, member.Phone)
	if err != nil {
		return "", "", nil, fmt.Errorf("generate refresh token: %w", err)
	}

	if err := s.tokenStore.StoreRefreshToken(ctx, tokenID, member.ID, member.Phone, auth.RefreshTokenExpiry); err != nil {
		return "", "", nil, fmt.Errorf("store refresh token: %w", err)
	}

	return accessToken, refreshToken, member, nil
}

// RefreshToken validates a refresh token and returns a new access token.
func (s *authService) RefreshToken(ctx context.Context, refreshToken string) (accessToken string, err error) {
	claims, err := s.jwtService.ValidateToken(refreshToken)
	if err != nil {
		return "", ErrInvalidRefreshToken
	}

	tokenID, err := s.jwtService.ExtractTokenID(refreshToken)
	if err != nil {
		return "", ErrInvalidRefreshToken
	}

	storedMemberID, storedPhone, err := s.tokenStore.GetRefreshToken(ctx, tokenID)
	if err != nil {
		return "", ErrInvalidRefreshToken
	}

	if storedMemberID != claims.MemberID || storedPhone != claims.Phone {
		return "", ErrInvalidRefreshToken
	}

	accessToken, err = s.jwtService.GenerateAccessToken(claims.MemberID, claims.Phone)
	if err != nil {
		return "", fmt.Errorf("generate access token: %w", err)
	}

	return accessToken, nil
}

// Logout invalidates a session by deleting its refresh token.
func (s *authService) Logout(ctx context.Context, refreshToken string) error {
	tokenID, err := s.jwtService.ExtractTokenID(refreshToken)
	if err != nil {
		return ErrInvalidRefreshToken
	}

	return s.tokenStore.DeleteRefreshToken(ctx, tokenID)
}
