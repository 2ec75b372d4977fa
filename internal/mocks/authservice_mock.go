package mocks

import (
	"context"
	"net/http"

	"procuroid.app/internal/auth"
	"procuroid.app/internal/constants"
	"procuroid.app/internal/dtos"
	"procuroid.app/internal/models"
)

func NewMockedAuthService(userID string, email string) auth.Service {
	return &MockedAuthService{
		userID: userID,
		email:  email,
	}
}

type MockedAuthService struct {
	userID string
	email  string
}

func (m *MockedAuthService) Access(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := models.User{
			ID:        m.userID,
			Email:     m.email,
			FirstName: "Pat",
			LastName:  "Buyer",
		}

		ctx := context.WithValue(r.Context(), constants.UserContextKey, user)
		r = r.WithContext(ctx)

		next(w, r)
	}
}

func (m *MockedAuthService) SignUp(
	signUpDto *dtos.SignUpDto,
) (*models.User, error) {
	return &models.User{
		ID:        m.userID,
		Email:     signUpDto.Email,
		FirstName: signUpDto.FirstName,
		LastName:  signUpDto.LastName,
	}, nil
}

func (m *MockedAuthService) SignInWithEmail(
	_ *dtos.SignInDto,
) (*models.Tokens, error) {
	return &models.Tokens{
		AccessToken:  AccessToken,
		RefreshToken: RefreshToken,
		ExpiresIn:    3600,
	}, nil
}

func (m *MockedAuthService) SignInWithRefreshToken(
	_ string,
) (*models.Tokens, error) {
	return &models.Tokens{
		AccessToken:  AccessToken,
		RefreshToken: RefreshToken,
		ExpiresIn:    3600,
	}, nil
}

func (m *MockedAuthService) GetUser(_ string) (*models.User, error) {
	return &models.User{
		ID:        m.userID,
		Email:     m.email,
		FirstName: "Pat",
		LastName:  "Buyer",
	}, nil
}

func (m *MockedAuthService) SignOut(_ string) error {
	return nil
}
