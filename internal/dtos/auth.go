package dtos

import "github.com/xdoubleu/essentia/v2/pkg/validate"

type SignUpDto struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

func (dto *SignUpDto) Validate() (bool, map[string]string) {
	v := validate.New()

	validate.Check(v, "email", dto.Email, validate.IsNotEmpty)
	validate.Check(v, "password", dto.Password, validate.IsNotEmpty)

	return v.Valid(), v.Errors()
}

type SignInDto struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (dto *SignInDto) Validate() (bool, map[string]string) {
	v := validate.New()

	validate.Check(v, "email", dto.Email, validate.IsNotEmpty)
	validate.Check(v, "password", dto.Password, validate.IsNotEmpty)

	return v.Valid(), v.Errors()
}

type RefreshTokenDto struct {
	RefreshToken string `json:"refresh_token"`
}

func (dto *RefreshTokenDto) Validate() (bool, map[string]string) {
	v := validate.New()

	validate.Check(v, "refresh_token", dto.RefreshToken, validate.IsNotEmpty)

	return v.Valid(), v.Errors()
}
