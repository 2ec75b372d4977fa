package services

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/getsentry/sentry-go"
	"github.com/supabase-community/gotrue-go"
	"github.com/supabase-community/gotrue-go/types"
	httptools "github.com/xdoubleu/essentia/v2/pkg/communication/httptools"
	errortools "github.com/xdoubleu/essentia/v2/pkg/errortools"
	"github.com/xhit/go-str2duration/v2"
	"procuroid.app/internal/constants"
	"procuroid.app/internal/dtos"
	"procuroid.app/internal/models"
)

type AuthService struct {
	client       gotrue.Client
	accessExpiry string
}

func (service *AuthService) SignUp(
	signUpDto *dtos.SignUpDto,
) (*models.User, error) {
	//nolint:exhaustruct //don't need other fields
	response, err := service.client.Signup(types.SignupRequest{
		Email:    signUpDto.Email,
		Password: signUpDto.Password,
		Data: map[string]interface{}{
			"first_name": signUpDto.FirstName,
			"last_name":  signUpDto.LastName,
		},
	})
	if err != nil {
		return nil, err
	}

	user := models.UserFromTypesUser(response.User)

	return &user, nil
}

func (service *AuthService) SignInWithEmail(
	signInDto *dtos.SignInDto,
) (*models.Tokens, error) {
	//nolint:exhaustruct //don't need other fields
	response, err := service.client.Token(types.TokenRequest{
		GrantType: "password",
		Email:     signInDto.Email,
		Password:  signInDto.Password,
	})
	if err != nil {
		return nil, errortools.NewUnauthorizedError(
			errors.New("invalid credentials"),
		)
	}

	return service.tokensFromSession(
		response.AccessToken,
		response.RefreshToken,
	)
}

func (service *AuthService) SignInWithRefreshToken(
	refreshToken string,
) (*models.Tokens, error) {
	//nolint:exhaustruct //don't need other fields
	response, err := service.client.Token(types.TokenRequest{
		GrantType:    "refresh_token",
		RefreshToken: refreshToken,
	})
	if err != nil {
		return nil, errortools.NewUnauthorizedError(
			errors.New("invalid refresh token"),
		)
	}

	return service.tokensFromSession(
		response.AccessToken,
		response.RefreshToken,
	)
}

func (service *AuthService) GetUser(accessToken string) (*models.User, error) {
	response, err := service.client.WithToken(accessToken).GetUser()
	if err != nil {
		return nil, err
	}

	user := models.UserFromTypesUser(response.User)

	return &user, nil
}

func (service *AuthService) SignOut(accessToken string) error {
	return service.client.WithToken(accessToken).Logout()
}

// Access guards API routes behind a bearer token issued by Supabase.
func (service *AuthService) Access(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		accessToken, err := bearerToken(r)
		if err != nil {
			httptools.UnauthorizedResponse(
				w,
				r,
				errortools.NewUnauthorizedError(err),
			)
			return
		}

		user, err := service.GetUser(accessToken)
		if err != nil {
			httptools.UnauthorizedResponse(
				w,
				r,
				errortools.NewUnauthorizedError(errors.New("invalid token")),
			)
			return
		}

		r = r.WithContext(contextSetUser(r.Context(), *user))
		next.ServeHTTP(w, r)
	}
}

func (service *AuthService) tokensFromSession(
	accessToken string,
	refreshToken string,
) (*models.Tokens, error) {
	ttl, err := str2duration.ParseDuration(service.accessExpiry)
	if err != nil {
		return nil, err
	}

	return &models.Tokens{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(ttl.Seconds()),
	}, nil
}

func bearerToken(r *http.Request) (string, error) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", errors.New("no authorization header")
	}

	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || token == "" {
		return "", errors.New("malformed authorization header")
	}

	return token, nil
}

func contextSetUser(ctx context.Context, user models.User) context.Context {
	if hub := sentry.GetHubFromContext(ctx); hub != nil {
		//nolint:exhaustruct //other fields are optional
		hub.Scope().SetUser(sentry.User{
			ID:    user.ID,
			Email: user.Email,
		})
	}

	return context.WithValue(ctx, constants.UserContextKey, user)
}
