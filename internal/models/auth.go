package models

import "github.com/supabase-community/gotrue-go/types"

type User struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type Tokens struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

func UserFromTypesUser(user types.User) User {
	result := User{
		ID:    user.ID.String(),
		Email: user.Email,
	}

	if firstName, ok := user.UserMetadata["first_name"].(string); ok {
		result.FirstName = firstName
	}
	if lastName, ok := user.UserMetadata["last_name"].(string); ok {
		result.LastName = lastName
	}

	return result
}
