package repository

import "github.com/tu-usuario/farmacia-suite/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmailAndPharmacy(email, pharmacyID string) (*entity.User, error)
	FindByEmail(email string) (*entity.User, error)
	ListByPharmacy(pharmacyID string, limit, offset int) ([]*entity.User, error)
}
