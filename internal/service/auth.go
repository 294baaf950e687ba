package service

import (
	"context"
	"errors"

	"seller-wallet-backend/internal/domain"
	"seller-wallet-backend/internal/repository"
	"seller-wallet-backend/internal/security"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

type authService struct {
	sellerRepo repository.SellerRepository
	tokens     security.TokenManager
}

func NewAuthService(sellerRepo repository.SellerRepository, tokens security.TokenManager) AuthService {
	return &authService{
		sellerRepo: sellerRepo,
		tokens:     tokens,
	}
}

func (s *authService) Signup(ctx context.Context, email, name, about, password string) (*domain.Seller, string, string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", "", err
	}

	seller := &domain.Seller{
		Email:        email,
		Name:         name,
		About:        about,
		PasswordHash: string(hash),
		Credit:       decimal.Zero,
		IsActive:     true,
	}
	if err := s.sellerRepo.Create(ctx, seller); err != nil {
		return nil, "", "", err
	}

	access, refresh, err := s.generateTokenPair(seller)
	return seller, access, refresh, err
}

func (s *authService) Login(ctx context.Context, email, password string) (string, string, error) {
	seller, err := s.sellerRepo.GetByEmail(ctx, email)
	if err != nil {
		return "", "", ErrInvalidCredentials
	}
	if !seller.IsActive {
		return "", "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(seller.PasswordHash), []byte(password)); err != nil {
		return "", "", ErrInvalidCredentials
	}

	return s.generateTokenPair(seller)
}

func (s *authService) RefreshToken(ctx context.Context, refresh string) (string, string, error) {
	claims, err := s.tokens.ValidateToken(refresh)
	if err != nil {
		return "", "", err
	}
	if claims.Type != security.TokenTypeRefresh {
		return "", "", security.ErrWrongTokenType
	}

	seller, err := s.sellerRepo.GetByID(ctx, claims.SellerID)
	if err != nil {
		return "", "", security.ErrInvalidToken
	}
	return s.generateTokenPair(seller)
}

func (s *authService) generateTokenPair(seller *domain.Seller) (string, string, error) {
	access, err := s.tokens.GenerateAccessToken(seller.ID, seller.Email, seller.IsStaff)
	if err != nil {
		return "", "", err
	}
	refresh, err := s.tokens.GenerateRefreshToken(seller.ID, seller.Email)
	if err != nil {
		return "", "", err
	}
	return access, refresh, nil
}
