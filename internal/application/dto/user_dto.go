package dto

import (
	"net/mail"
	"time"

	"github.com/jhoicas/Mensajeria-api/internal/domain/entity"
)

// RegisterRequest entrada para registro (password en texto, se hashea en use case).
type RegisterRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Type      string `json:"type"`
	Lang      string `json:"lang"`
	Avatar    string `json:"avatar"`
}

// Validate aplica las reglas declarativas de registro. Retorna el mapa
// campo → mensaje; vacío significa entrada válida.
func (r RegisterRequest) Validate() map[string]string {
	errs := map[string]string{}
	if r.FirstName == "" {
		errs["first_name"] = "first_name es requerido"
	}
	if r.LastName == "" {
		errs["last_name"] = "last_name es requerido"
	}
	if !isEmail(r.Email) {
		errs["email"] = "email inválido"
	}
	if len(r.Password) < 6 {
		errs["password"] = "password debe tener al menos 6 caracteres"
	}
	if !entity.IsValidType(r.Type) {
		errs["type"] = "type debe ser company, employee o admin"
	}
	return errs
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate reglas declarativas de login.
func (r LoginRequest) Validate() map[string]string {
	errs := map[string]string{}
	if !isEmail(r.Email) {
		errs["email"] = "email inválido"
	}
	if r.Password == "" {
		errs["password"] = "password es requerido"
	}
	return errs
}

// UpdateProfileRequest entrada parcial de actualización de perfil: solo los
// campos presentes en el body se aplican (punteros nil = ausente).
type UpdateProfileRequest struct {
	FirstName      *string `json:"first_name"`
	LastName       *string `json:"last_name"`
	Subscription   *string `json:"subscription"`
	Lang           *string `json:"lang"`
	Avatar         *string `json:"avatar"`
	DarkMode       *bool   `json:"dark_mode"`
	MessengerColor *string `json:"messenger_color"`
}

// Validate reglas declarativas de actualización: cada campo se valida solo si
// está presente.
func (r UpdateProfileRequest) Validate() map[string]string {
	errs := map[string]string{}
	if r.FirstName != nil && *r.FirstName == "" {
		errs["first_name"] = "first_name no puede ser vacío"
	}
	if r.LastName != nil && *r.LastName == "" {
		errs["last_name"] = "last_name no puede ser vacío"
	}
	if r.Subscription != nil && !entity.IsValidSubscription(*r.Subscription) {
		errs["subscription"] = "subscription debe ser Basic, Silver, Premium o Enterprise"
	}
	return errs
}

// IsEmpty indica si el body no trae ningún campo mutable.
func (r UpdateProfileRequest) IsEmpty() bool {
	return r.FirstName == nil && r.LastName == nil && r.Subscription == nil &&
		r.Lang == nil && r.Avatar == nil && r.DarkMode == nil && r.MessengerColor == nil
}

// UserResponse salida de un usuario. No tiene campo password: el hash jamás
// se serializa en ninguna respuesta.
type UserResponse struct {
	ID             string     `json:"id"`
	FirstName      string     `json:"first_name"`
	LastName       string     `json:"last_name"`
	Email          string     `json:"email"`
	Type           string     `json:"type"`
	CompanyID      *string    `json:"company_id"`
	Subscription   string     `json:"subscription"`
	Plan           int        `json:"plan"`
	Lang           string     `json:"lang"`
	Avatar         string     `json:"avatar"`
	IsActive       bool       `json:"is_active"`
	IsLoginEnable  bool       `json:"is_login_enable"`
	DarkMode       bool       `json:"dark_mode"`
	MessengerColor string     `json:"messenger_color"`
	IsDisable      bool       `json:"is_disable"`
	CreatedBy      int        `json:"created_by"`
	LastLogin      *time.Time `json:"last_login"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// FromUser mapea la entidad a su representación pública, descartando el hash.
func FromUser(u *entity.User) *UserResponse {
	if u == nil {
		return nil
	}
	return &UserResponse{
		ID:             u.ID,
		FirstName:      u.FirstName,
		LastName:       u.LastName,
		Email:          u.Email,
		Type:           u.Type,
		CompanyID:      u.CompanyID,
		Subscription:   u.Subscription,
		Plan:           u.Plan,
		Lang:           u.Lang,
		Avatar:         u.Avatar,
		IsActive:       u.IsActive,
		IsLoginEnable:  u.IsLoginEnable,
		DarkMode:       u.DarkMode,
		MessengerColor: u.MessengerColor,
		IsDisable:      u.IsDisable,
		CreatedBy:      u.CreatedBy,
		LastLogin:      u.LastLogin,
		CreatedAt:      u.CreatedAt,
		UpdatedAt:      u.UpdatedAt,
	}
}

func isEmail(s string) bool {
	if s == "" {
		return false
	}
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address == s
}
