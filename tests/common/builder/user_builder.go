//go:build unit || e2e

package builder

import (
	"taller-api/internal/domain/user"
	"taller-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserBuilder struct {
	Email        string
	PasswordHash string
	Role         string
	DisplayName  string
	WorkshopName *string
	CurrentPlate *string
	IsActive     bool
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		Email:        "test@example.com",
		PasswordHash: "hashed_password",
		Role:         "cliente",
		DisplayName:  "Test User",
		IsActive:     true,
	}
}

func (u *UserBuilder) BuildDomain() (*user.User, error) {
	email, err := user.NewEmail(u.Email)
	if err != nil {
		return nil, err
	}

	role, err := user.NewRole(u.Role)
	if err != nil {
		return nil, err
	}

	return user.NewUser(email, u.PasswordHash, role, u.DisplayName), nil
}

func (u *UserBuilder) BuildReadModel() *queries.AuthorizedUserView {
	return &queries.AuthorizedUserView{
		ID:           uuid.New(),
		Email:        u.Email,
		Role:         u.Role,
		DisplayName:  u.DisplayName,
		WorkshopName: u.WorkshopName,
		CurrentPlate: u.CurrentPlate,
		IsActive:     u.IsActive,
	}
}

// Fluent builder methods
func (u *UserBuilder) WithEmail(email string) *UserBuilder {
	u.Email = email
	return u
}

func (u *UserBuilder) WithRole(role string) *UserBuilder {
	u.Role = role
	return u
}

func (u *UserBuilder) WithDisplayName(name string) *UserBuilder {
	u.DisplayName = name
	return u
}

func (u *UserBuilder) WithCurrentPlate(plate string) *UserBuilder {
	u.CurrentPlate = &plate
	return u
}

func (u *UserBuilder) AsNegocio() *UserBuilder {
	u.Role = "negocio"
	return u
}

func (u *UserBuilder) AsInactive() *UserBuilder {
	u.IsActive = false
	return u
}
