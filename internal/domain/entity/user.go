package entity

import "time"

// Tipos de cuenta válidos para User.
const (
	TypeCompany  = "company"
	TypeEmployee = "employee"
	TypeAdmin    = "admin"
)

// Planes de suscripción válidos.
const (
	SubscriptionBasic      = "Basic"
	SubscriptionSilver     = "Silver"
	SubscriptionPremium    = "Premium"
	SubscriptionEnterprise = "Enterprise"
)

// DefaultMessengerColor color de mensajería asignado al crear la cuenta.
const DefaultMessengerColor = "#2180f3"

// planBySubscription espejo numérico de cada suscripción. Cualquier cambio de
// subscription debe actualizar plan con este mapa, nunca por separado.
var planBySubscription = map[string]int{
	SubscriptionBasic:      0,
	SubscriptionSilver:     1,
	SubscriptionPremium:    2,
	SubscriptionEnterprise: 3,
}

// PlanForSubscription devuelve el plan numérico de una suscripción.
// ok=false si la suscripción no existe.
func PlanForSubscription(subscription string) (int, bool) {
	plan, ok := planBySubscription[subscription]
	return plan, ok
}

// IsValidType indica si el tipo de cuenta es uno de los permitidos.
func IsValidType(t string) bool {
	return t == TypeCompany || t == TypeEmployee || t == TypeAdmin
}

// IsValidSubscription indica si la suscripción es una de las permitidas.
func IsValidSubscription(s string) bool {
	_, ok := planBySubscription[s]
	return ok
}

// User representa una cuenta del sistema de mensajería.
// CompanyID es no-nulo si y solo si Type == "company".
type User struct {
	ID             string
	FirstName      string
	LastName       string
	Email          string  // único, clave de login
	PasswordHash   string  // bcrypt hash, nunca plano en dominio después de persistir
	Type           string  // company, employee, admin
	CompanyID      *string // CMP-<epoch-ms><base36>, solo cuentas company
	Subscription   string  // Basic, Silver, Premium, Enterprise
	Plan           int     // espejo numérico de Subscription
	Lang           string
	Avatar         string
	IsActive       bool // false bloquea autenticación aunque el password sea correcto
	IsLoginEnable  bool // false bloquea login, independiente de IsActive
	DarkMode       bool
	MessengerColor string
	IsDisable      bool // deshabilitado-por-defecto al crear, distinto de IsActive
	CreatedBy      int
	LastLogin      *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
