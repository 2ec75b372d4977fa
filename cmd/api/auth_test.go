package main

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/xdoubleu/essentia/v2/pkg/test"
	"procuroid.app/internal/dtos"
	"procuroid.app/internal/mocks"
	"procuroid.app/internal/models"
)

func TestSignInHandler(t *testing.T) {
	tReq := test.CreateRequestTester(
		testApp.Routes(),
		http.MethodPost,
		"/auth/signin",
	)

	tReq.SetData(dtos.SignInDto{
		Email:    "buyer@procuroid.app",
		Password: "password",
	})

	rs := tReq.Do(t)
	assert.Equal(t, http.StatusOK, rs.StatusCode)

	var tokens models.Tokens
	err := json.NewDecoder(rs.Body).Decode(&tokens)
	assert.Nil(t, err)
	assert.Equal(t, mocks.AccessToken, tokens.AccessToken)
	assert.Equal(t, mocks.RefreshToken, tokens.RefreshToken)
}

func TestSignInHandlerValidation(t *testing.T) {
	tReq := test.CreateRequestTester(
		testApp.Routes(),
		http.MethodPost,
		"/auth/signin",
	)

	tReq.SetData(dtos.SignInDto{
		Email:    "buyer@procuroid.app",
		Password: "",
	})

	rs := tReq.Do(t)
	assert.Equal(t, http.StatusUnprocessableEntity, rs.StatusCode)
}

func TestSignUpHandler(t *testing.T) {
	tReq := test.CreateRequestTester(
		testApp.Routes(),
		http.MethodPost,
		"/auth/signup",
	)

	tReq.SetData(dtos.SignUpDto{
		Email:     "new@procuroid.app",
		Password:  "password",
		FirstName: "New",
		LastName:  "Buyer",
	})

	rs := tReq.Do(t)
	assert.Equal(t, http.StatusCreated, rs.StatusCode)

	var user models.User
	err := json.NewDecoder(rs.Body).Decode(&user)
	assert.Nil(t, err)
	assert.Equal(t, "new@procuroid.app", user.Email)
	assert.Equal(t, "New", user.FirstName)
}

func TestRefreshHandler(t *testing.T) {
	tReq := test.CreateRequestTester(
		testApp.Routes(),
		http.MethodPost,
		"/auth/refresh",
	)

	tReq.SetData(dtos.RefreshTokenDto{
		RefreshToken: mocks.RefreshToken,
	})

	rs := tReq.Do(t)
	assert.Equal(t, http.StatusOK, rs.StatusCode)

	var tokens models.Tokens
	err := json.NewDecoder(rs.Body).Decode(&tokens)
	assert.Nil(t, err)
	assert.Equal(t, mocks.AccessToken, tokens.AccessToken)
}

func TestCurrentUserHandler(t *testing.T) {
	tReq := test.CreateRequestTester(
		testApp.Routes(),
		http.MethodGet,
		"/auth/me",
	)

	rs := tReq.Do(t)
	assert.Equal(t, http.StatusOK, rs.StatusCode)

	var user models.User
	err := json.NewDecoder(rs.Body).Decode(&user)
	assert.Nil(t, err)
	assert.Equal(t, userID, user.ID)
}
