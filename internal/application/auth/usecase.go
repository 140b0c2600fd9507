package auth

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Mensajeria-api/internal/application/dto"
	"github.com/jhoicas/Mensajeria-api/internal/domain"
	"github.com/jhoicas/Mensajeria-api/internal/domain/entity"
	"github.com/jhoicas/Mensajeria-api/internal/domain/repository"
	"github.com/jhoicas/Mensajeria-api/pkg/companyid"
	"github.com/jhoicas/Mensajeria-api/pkg/password"
)

// AuthUseCase casos de uso de autenticación: registro, login y la verificación
// de credenciales Basic que corre en cada request protegido.
type AuthUseCase struct {
	userRepo repository.UserRepository
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo}
}

// RegisterUser crea una cuenta: hashea el password con bcrypt, genera el
// company_id si el tipo es company y persiste con los defaults de creación.
// Devuelve ErrEmailAlreadyExists si el email ya está tomado.
func (uc *AuthUseCase) RegisterUser(in dto.RegisterRequest) (*dto.UserResponse, error) {
	existing, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	hash, err := password.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	var cmpID *string
	if in.Type == entity.TypeCompany {
		id := companyid.New()
		cmpID = &id
	}
	lang := in.Lang
	if lang == "" {
		lang = "en"
	}

	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Email:        in.Email,
		PasswordHash: hash,
		Type:         in.Type,
		CompanyID:    cmpID,
		// Defaults de creación: la suscripción nunca es elegible al registrarse.
		Subscription:   entity.SubscriptionBasic,
		Plan:           0,
		Lang:           lang,
		Avatar:         in.Avatar,
		IsActive:       true,
		IsLoginEnable:  true,
		DarkMode:       false,
		MessengerColor: entity.DefaultMessengerColor,
		IsDisable:      true,
		CreatedBy:      0,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	created, err := uc.userRepo.Create(user)
	if err != nil {
		return nil, err
	}
	return dto.FromUser(created), nil
}

// Login verifica email/password y marca last_login. El orden de los chequeos
// importa: cuenta inactiva y login deshabilitado responden antes de comparar
// el password, y usuario inexistente comparte error con password incorrecto.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, domain.ErrAccountInactive
	}
	if !user.IsLoginEnable {
		return nil, domain.ErrLoginDisabled
	}
	if !password.Verify(in.Password, user.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}

	now := time.Now()
	if err := uc.userRepo.UpdateLastLogin(user.ID, now); err != nil {
		return nil, err
	}
	user.LastLogin = &now
	return dto.FromUser(user), nil
}

// Authenticate es el corazón del gate Basic: carga solo usuarios activos y
// verifica el password en cada request (no hay sesión ni cache). Retorna la
// entidad completa para que el middleware la deje en el contexto.
func (uc *AuthUseCase) Authenticate(email, plain string) (*entity.User, error) {
	if email == "" || plain == "" {
		return nil, domain.ErrInvalidCredentials
	}
	user, err := uc.userRepo.GetActiveByEmail(email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrInvalidCredentials
	}
	if !user.IsLoginEnable {
		return nil, domain.ErrLoginDisabled
	}
	if !password.Verify(plain, user.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}
	return user, nil
}
