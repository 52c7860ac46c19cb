package repository

import "github.com/jfcastano/taller-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para usuarios del taller.
type UserRepository interface {
	Create(u *entity.User) error
	GetByID(id string) (*entity.User, error)
	FindByEmail(email string) (*entity.User, error)
}
