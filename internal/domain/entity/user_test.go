package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Mensajeria-api/internal/domain/entity"
)

// plan es el espejo numérico de subscription: Basic=0, Silver=1, Premium=2, Enterprise=3.
func TestPlanForSubscription(t *testing.T) {
	cases := []struct {
		subscription string
		plan         int
	}{
		{entity.SubscriptionBasic, 0},
		{entity.SubscriptionSilver, 1},
		{entity.SubscriptionPremium, 2},
		{entity.SubscriptionEnterprise, 3},
	}
	for _, tc := range cases {
		plan, ok := entity.PlanForSubscription(tc.subscription)
		assert.True(t, ok, "suscripción válida: %s", tc.subscription)
		assert.Equal(t, tc.plan, plan)
	}
}

func TestPlanForSubscription_Desconocida(t *testing.T) {
	_, ok := entity.PlanForSubscription("Gold")
	assert.False(t, ok)
	_, ok = entity.PlanForSubscription("basic") // sensible a mayúsculas
	assert.False(t, ok)
}

func TestIsValidType(t *testing.T) {
	assert.True(t, entity.IsValidType("company"))
	assert.True(t, entity.IsValidType("employee"))
	assert.True(t, entity.IsValidType("admin"))
	assert.False(t, entity.IsValidType("superuser"))
	assert.False(t, entity.IsValidType(""))
}
