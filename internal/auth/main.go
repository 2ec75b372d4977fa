package auth

import (
	"net/http"

	"procuroid.app/internal/dtos"
	"procuroid.app/internal/models"
)

type Service interface {
	Access(next http.HandlerFunc) http.HandlerFunc
	SignUp(signUpDto *dtos.SignUpDto) (*models.User, error)
	SignInWithEmail(signInDto *dtos.SignInDto) (*models.Tokens, error)
	SignInWithRefreshToken(refreshToken string) (*models.Tokens, error)
	GetUser(accessToken string) (*models.User, error)
	SignOut(accessToken string) error
}
