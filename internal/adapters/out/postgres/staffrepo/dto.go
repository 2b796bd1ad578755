// Package staffrepo provides data transfer objects and mapping functions
// for staff account persistence.
package staffrepo

import (
	"time"

	"github.com/google/uuid"

	"barpos/internal/core/domain/model/kernel"
	"barpos/internal/core/domain/model/staff"
)

// UserDTO represents the database structure for persisting staff accounts.
// The username carries a unique index; registration races resolve in the
// database rather than in application code.
type UserDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	Username       string    `gorm:"uniqueIndex"`
	Name           string
	CredentialHash string
	Role           int
	CreatedAt      time.Time
}

// TableName specifies the database table name for staff accounts.
func (UserDTO) TableName() string {
	return "staff"
}

// fromDomain converts a staff domain aggregate to its database
// representation.
func fromDomain(user *staff.User) UserDTO {
	return UserDTO{
		ID:             user.ID().Bytes(),
		Username:       user.Username(),
		Name:           user.Name(),
		CredentialHash: user.CredentialHash(),
		Role:           int(user.Role()),
		CreatedAt:      user.CreatedAt(),
	}
}

// toDomain converts a database DTO to a staff domain aggregate using
// RestoreUser.
func toDomain(dto UserDTO) (*staff.User, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return staff.RestoreUser(id, dto.Username, dto.Name, dto.CredentialHash, staff.Role(dto.Role), dto.CreatedAt)
}
