package postgres

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/Mensajeria-api/internal/domain"
	"github.com/jhoicas/Mensajeria-api/internal/domain/entity"
	"github.com/jhoicas/Mensajeria-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// userColumns columnas en el orden de scanUser.
const userColumns = `id, first_name, last_name, email, password_hash, type, company_id,
	subscription, plan, lang, avatar, is_active, is_login_enable, dark_mode,
	messenger_color, is_disable, created_by, last_login, created_at, updated_at`

// mutableColumns allow-list de columnas aceptadas en UpdateFields. Nada fuera
// de esta lista se interpola jamás en el SQL, aunque venga en el body.
var mutableColumns = map[string]struct{}{
	"first_name":      {},
	"last_name":       {},
	"subscription":    {},
	"plan":            {},
	"lang":            {},
	"avatar":          {},
	"dark_mode":       {},
	"messenger_color": {},
}

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
type UserRepo struct {
	pool *pgxpool.Pool
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(pool *pgxpool.Pool) *UserRepo {
	return &UserRepo{pool: pool}
}

// Create persiste una nueva cuenta y devuelve la fila recargada.
func (r *UserRepo) Create(user *entity.User) (*entity.User, error) {
	query := `
		INSERT INTO users (id, first_name, last_name, email, password_hash, type, company_id,
			subscription, plan, lang, avatar, is_active, is_login_enable, dark_mode,
			messenger_color, is_disable, created_by, last_login, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)`
	_, err := r.pool.Exec(context.Background(), query,
		user.ID, user.FirstName, user.LastName, user.Email, user.PasswordHash, user.Type,
		user.CompanyID, user.Subscription, user.Plan, user.Lang, user.Avatar,
		user.IsActive, user.IsLoginEnable, user.DarkMode, user.MessengerColor,
		user.IsDisable, user.CreatedBy, user.LastLogin, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrEmailAlreadyExists
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return r.findByID(context.Background(), user.ID)
}

// GetByID obtiene un usuario por ID.
func (r *UserRepo) GetByID(id string) (*entity.User, error) {
	return r.findByID(context.Background(), id)
}

// GetByEmail obtiene un usuario por email sin importar is_active (login).
func (r *UserRepo) GetByEmail(email string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1 LIMIT 1`
	return r.queryOne(context.Background(), query, email)
}

// GetActiveByEmail obtiene un usuario activo por email (gate de Basic auth).
func (r *UserRepo) GetActiveByEmail(email string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1 AND is_active = true LIMIT 1`
	return r.queryOne(context.Background(), query, email)
}

// UpdateFields aplica una actualización parcial sobre columnas de la allow-list,
// siempre toca updated_at y devuelve la fila recargada. (nil, nil) si el id no existe.
func (r *UserRepo) UpdateFields(id string, fields map[string]any) (*entity.User, error) {
	if len(fields) == 0 {
		return nil, domain.ErrNoFieldsToUpdate
	}
	cols := make([]string, 0, len(fields))
	for col := range fields {
		if _, ok := mutableColumns[col]; !ok {
			return nil, fmt.Errorf("columna no actualizable: %s", col)
		}
		cols = append(cols, col)
	}
	sort.Strings(cols) // SQL determinista

	set := make([]string, 0, len(cols)+1)
	args := make([]any, 0, len(cols)+1)
	args = append(args, id)
	for i, col := range cols {
		set = append(set, fmt.Sprintf("%s = $%d", col, i+2))
		args = append(args, fields[col])
	}
	set = append(set, "updated_at = now()")

	query := "UPDATE users SET " + strings.Join(set, ", ") + " WHERE id = $1"
	tag, err := r.pool.Exec(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, nil
	}
	return r.findByID(context.Background(), id)
}

// UpdateLastLogin marca el último inicio de sesión. No toca updated_at: el
// login solo muta last_login.
func (r *UserRepo) UpdateLastLogin(id string, at time.Time) error {
	_, err := r.pool.Exec(context.Background(),
		`UPDATE users SET last_login = $2 WHERE id = $1`, id, at)
	if err != nil {
		return fmt.Errorf("update last_login: %w", err)
	}
	return nil
}

func (r *UserRepo) findByID(ctx context.Context, id string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return r.queryOne(ctx, query, id)
}

func (r *UserRepo) queryOne(ctx context.Context, query string, args ...any) (*entity.User, error) {
	var u entity.User
	err := r.pool.QueryRow(ctx, query, args...).Scan(
		&u.ID, &u.FirstName, &u.LastName, &u.Email, &u.PasswordHash, &u.Type, &u.CompanyID,
		&u.Subscription, &u.Plan, &u.Lang, &u.Avatar, &u.IsActive, &u.IsLoginEnable,
		&u.DarkMode, &u.MessengerColor, &u.IsDisable, &u.CreatedBy, &u.LastLogin,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("query user: %w", err)
	}
	return &u, nil
}
