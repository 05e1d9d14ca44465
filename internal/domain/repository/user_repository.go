package repository

import "github.com/oksasatya/user-directory/internal/domain/entity"

// UserRepository defines the directory operations over user records.
// Failures are *apperror.Error values of kind NotFound or Conflict.
type UserRepository interface {
	List(filter string) []entity.User
	GetByID(id int) (entity.User, error)
	Create(in entity.NewUser) (entity.User, error)
	Update(id int, patch entity.UserPatch) (entity.User, error)
	Delete(id int) error
	Count() int
}
