package repository

import (
	"time"

	"github.com/jhoicas/Mensajeria-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
// Los métodos Get* retornan (nil, nil) cuando no existe la fila.
type UserRepository interface {
	// Create inserta el usuario y devuelve la fila recargada.
	Create(user *entity.User) (*entity.User, error)
	GetByID(id string) (*entity.User, error)
	// GetByEmail carga por email sin importar is_active (ruta de login).
	GetByEmail(email string) (*entity.User, error)
	// GetActiveByEmail carga solo usuarios con is_active=true (gate de Basic auth).
	GetActiveByEmail(email string) (*entity.User, error)
	// UpdateFields aplica una actualización parcial columna → valor, siempre
	// toca updated_at y devuelve la fila recargada. Las claves deben venir de
	// la allow-list de columnas mutables; cualquier otra es un error.
	UpdateFields(id string, fields map[string]any) (*entity.User, error)
	// UpdateLastLogin marca el último inicio de sesión.
	UpdateLastLogin(id string, at time.Time) error
}
