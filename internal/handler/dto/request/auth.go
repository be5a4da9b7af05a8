package request

import (
	"taller-api/internal/domain/user"
)

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

func (r *LoginRequest) ToDomain() (user.Credentials, error) {
	email, err := user.NewEmail(r.Email)
	if err != nil {
		return user.Credentials{}, err
	}

	password, err := user.NewPassword(r.Password)
	if err != nil {
		return user.Credentials{}, err
	}

	return user.NewCredentials(email, password), nil
}

type RegisterRequest struct {
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=8"`
	DisplayName string `json:"display_name" binding:"required"`
	Role        string `json:"role" binding:"required"`
}

// ToDomain returns the unpersisted user together with the plain password;
// the usecase hashes it before the entity is stored.
func (r *RegisterRequest) ToDomain() (*user.User, user.Password, error) {
	email, err := user.NewEmail(r.Email)
	if err != nil {
		return nil, user.Password{}, err
	}

	password, err := user.NewPassword(r.Password)
	if err != nil {
		return nil, user.Password{}, err
	}

	role, err := user.NewRole(r.Role)
	if err != nil {
		return nil, user.Password{}, err
	}

	return user.NewUser(email, "", role, r.DisplayName), password, nil
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}
