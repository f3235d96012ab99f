package response

import "mechmobile/internal/usecase"

type LoginResponse struct {
	Token     string `json:"token"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

func FromLoginResult(result *usecase.LoginResult) *LoginResponse {
	return &LoginResponse{
		Token:     result.Token,
		Email:     result.Email,
		FirstName: result.FirstName,
		LastName:  result.LastName,
	}
}
