package auth_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Mensajeria-api/internal/application/auth"
	"github.com/jhoicas/Mensajeria-api/internal/application/dto"
	"github.com/jhoicas/Mensajeria-api/internal/domain"
	"github.com/jhoicas/Mensajeria-api/internal/domain/entity"
	"github.com/jhoicas/Mensajeria-api/pkg/password"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake en memoria del puerto UserRepository
// ──────────────────────────────────────────────────────────────────────────────

type fakeUserRepo struct {
	byID map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byID: map[string]*entity.User{}}
}

func (f *fakeUserRepo) Create(u *entity.User) (*entity.User, error) {
	for _, existing := range f.byID {
		if existing.Email == u.Email {
			return nil, domain.ErrEmailAlreadyExists
		}
	}
	cp := *u
	f.byID[u.ID] = &cp
	out := cp
	return &out, nil
}

func (f *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	if u, ok := f.byID[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range f.byID {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) GetActiveByEmail(email string) (*entity.User, error) {
	for _, u := range f.byID {
		if u.Email == email && u.IsActive {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) UpdateFields(id string, fields map[string]any) (*entity.User, error) {
	u, ok := f.byID[id]
	if !ok {
		return nil, nil
	}
	for col, val := range fields {
		switch col {
		case "first_name":
			u.FirstName = val.(string)
		case "last_name":
			u.LastName = val.(string)
		case "subscription":
			u.Subscription = val.(string)
		case "plan":
			u.Plan = val.(int)
		case "lang":
			u.Lang = val.(string)
		case "avatar":
			u.Avatar = val.(string)
		case "dark_mode":
			u.DarkMode = val.(bool)
		case "messenger_color":
			u.MessengerColor = val.(string)
		}
	}
	u.UpdatedAt = time.Now()
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepo) UpdateLastLogin(id string, at time.Time) error {
	if u, ok := f.byID[id]; ok {
		u.LastLogin = &at
	}
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Registro
// ──────────────────────────────────────────────────────────────────────────────

func registerInput(email, userType string) dto.RegisterRequest {
	return dto.RegisterRequest{
		FirstName: "Ana",
		LastName:  "Pérez",
		Email:     email,
		Password:  "secret1",
		Type:      userType,
	}
}

func TestRegisterUser_DefaultsDeCreacion(t *testing.T) {
	uc := auth.NewAuthUseCase(newFakeUserRepo())

	out, err := uc.RegisterUser(registerInput("ana@example.com", "employee"))
	require.NoError(t, err)

	assert.Equal(t, entity.SubscriptionBasic, out.Subscription, "la suscripción inicial siempre es Basic")
	assert.Equal(t, 0, out.Plan)
	assert.Equal(t, "en", out.Lang)
	assert.True(t, out.IsActive)
	assert.True(t, out.IsLoginEnable)
	assert.True(t, out.IsDisable, "is_disable nace en true")
	assert.False(t, out.DarkMode)
	assert.Equal(t, entity.DefaultMessengerColor, out.MessengerColor)
	assert.Equal(t, 0, out.CreatedBy)
	assert.Nil(t, out.CompanyID, "employee no recibe company_id")
	assert.Nil(t, out.LastLogin)
}

func TestRegisterUser_CompanyRecibeCompanyID(t *testing.T) {
	uc := auth.NewAuthUseCase(newFakeUserRepo())

	out, err := uc.RegisterUser(registerInput("empresa@example.com", "company"))
	require.NoError(t, err)
	require.NotNil(t, out.CompanyID)
	assert.Contains(t, *out.CompanyID, "CMP-")
}

func TestRegisterUser_CompanyIDsDistintos(t *testing.T) {
	uc := auth.NewAuthUseCase(newFakeUserRepo())

	a, err := uc.RegisterUser(registerInput("a@example.com", "company"))
	require.NoError(t, err)
	b, err := uc.RegisterUser(registerInput("b@example.com", "company"))
	require.NoError(t, err)

	require.NotNil(t, a.CompanyID)
	require.NotNil(t, b.CompanyID)
	assert.NotEqual(t, *a.CompanyID, *b.CompanyID)
}

func TestRegisterUser_EmailTomado(t *testing.T) {
	uc := auth.NewAuthUseCase(newFakeUserRepo())

	_, err := uc.RegisterUser(registerInput("ana@example.com", "employee"))
	require.NoError(t, err)

	// Mismo email con otros campos distintos: igualmente rechazado
	in := registerInput("ana@example.com", "company")
	in.FirstName = "Otra"
	_, err = uc.RegisterUser(in)
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestRegisterUser_PasswordQuedaHasheado(t *testing.T) {
	repo := newFakeUserRepo()
	uc := auth.NewAuthUseCase(repo)

	out, err := uc.RegisterUser(registerInput("ana@example.com", "employee"))
	require.NoError(t, err)

	stored, err := repo.GetByID(out.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.NotEqual(t, "secret1", stored.PasswordHash)
	assert.True(t, password.Verify("secret1", stored.PasswordHash))
}

// ──────────────────────────────────────────────────────────────────────────────
// Login
// ──────────────────────────────────────────────────────────────────────────────

func seedUser(t *testing.T, repo *fakeUserRepo, uc *auth.AuthUseCase, email string) *dto.UserResponse {
	t.Helper()
	out, err := uc.RegisterUser(registerInput(email, "employee"))
	require.NoError(t, err)
	return out
}

func TestLogin_ExitosoMarcaLastLogin(t *testing.T) {
	repo := newFakeUserRepo()
	uc := auth.NewAuthUseCase(repo)
	seedUser(t, repo, uc, "ana@example.com")

	out, err := uc.Login(dto.LoginRequest{Email: "ana@example.com", Password: "secret1"})
	require.NoError(t, err)
	assert.NotNil(t, out.LastLogin, "login exitoso debe marcar last_login")
}

func TestLogin_UsuarioInexistente(t *testing.T) {
	uc := auth.NewAuthUseCase(newFakeUserRepo())

	_, err := uc.Login(dto.LoginRequest{Email: "nadie@example.com", Password: "secret1"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestLogin_PasswordIncorrecto_MismoError(t *testing.T) {
	repo := newFakeUserRepo()
	uc := auth.NewAuthUseCase(repo)
	seedUser(t, repo, uc, "ana@example.com")

	_, err := uc.Login(dto.LoginRequest{Email: "ana@example.com", Password: "incorrecto"})
	// Usuario inexistente y password incorrecto comparten el mismo error genérico
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestLogin_CuentaInactiva(t *testing.T) {
	repo := newFakeUserRepo()
	uc := auth.NewAuthUseCase(repo)
	out := seedUser(t, repo, uc, "ana@example.com")
	repo.byID[out.ID].IsActive = false

	_, err := uc.Login(dto.LoginRequest{Email: "ana@example.com", Password: "secret1"})
	assert.ErrorIs(t, err, domain.ErrAccountInactive,
		"cuenta inactiva bloquea login aunque el password sea correcto")
}

func TestLogin_LoginDeshabilitado(t *testing.T) {
	repo := newFakeUserRepo()
	uc := auth.NewAuthUseCase(repo)
	out := seedUser(t, repo, uc, "ana@example.com")
	repo.byID[out.ID].IsLoginEnable = false

	_, err := uc.Login(dto.LoginRequest{Email: "ana@example.com", Password: "secret1"})
	assert.ErrorIs(t, err, domain.ErrLoginDisabled)
}

// ──────────────────────────────────────────────────────────────────────────────
// Authenticate (gate Basic)
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthenticate_Exitoso(t *testing.T) {
	repo := newFakeUserRepo()
	uc := auth.NewAuthUseCase(repo)
	seedUser(t, repo, uc, "ana@example.com")

	user, err := uc.Authenticate("ana@example.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", user.Email)
	assert.NotEmpty(t, user.PasswordHash, "el gate entrega la entidad completa")
}

func TestAuthenticate_CredencialesVacias(t *testing.T) {
	uc := auth.NewAuthUseCase(newFakeUserRepo())

	_, err := uc.Authenticate("", "secret1")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	_, err = uc.Authenticate("ana@example.com", "")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

// El gate consulta solo usuarios activos: una cuenta inactiva produce el
// mismo error genérico que una inexistente.
func TestAuthenticate_CuentaInactivaEsGenerico(t *testing.T) {
	repo := newFakeUserRepo()
	uc := auth.NewAuthUseCase(repo)
	out := seedUser(t, repo, uc, "ana@example.com")
	repo.byID[out.ID].IsActive = false

	_, err := uc.Authenticate("ana@example.com", "secret1")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAuthenticate_LoginDeshabilitado(t *testing.T) {
	repo := newFakeUserRepo()
	uc := auth.NewAuthUseCase(repo)
	out := seedUser(t, repo, uc, "ana@example.com")
	repo.byID[out.ID].IsLoginEnable = false

	_, err := uc.Authenticate("ana@example.com", "secret1")
	assert.ErrorIs(t, err, domain.ErrLoginDisabled)
}
