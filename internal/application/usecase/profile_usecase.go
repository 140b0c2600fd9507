package usecase

import (
	"github.com/jhoicas/Mensajeria-api/internal/application/dto"
	"github.com/jhoicas/Mensajeria-api/internal/domain"
	"github.com/jhoicas/Mensajeria-api/internal/domain/entity"
	"github.com/jhoicas/Mensajeria-api/internal/domain/repository"
)

// ProfileUseCase aplica reglas de negocio del perfil de la cuenta autenticada.
type ProfileUseCase struct {
	repo repository.UserRepository
}

// NewProfileUseCase construye el caso de uso con el puerto de persistencia.
func NewProfileUseCase(repo repository.UserRepository) *ProfileUseCase {
	return &ProfileUseCase{repo: repo}
}

// UpdateProfile construye la actualización parcial solo con las columnas de la
// allow-list de campos mutables; cualquier otra clave del body se ignora y
// jamás llega al SQL. Si cambia subscription también fija plan con el espejo
// numérico. Devuelve ErrNoFieldsToUpdate con el body vacío.
func (uc *ProfileUseCase) UpdateProfile(userID string, in dto.UpdateProfileRequest) (*dto.UserResponse, error) {
	if in.IsEmpty() {
		return nil, domain.ErrNoFieldsToUpdate
	}

	fields := map[string]any{}
	if in.FirstName != nil {
		fields["first_name"] = *in.FirstName
	}
	if in.LastName != nil {
		fields["last_name"] = *in.LastName
	}
	if in.Subscription != nil {
		plan, ok := entity.PlanForSubscription(*in.Subscription)
		if !ok {
			return nil, domain.NewValidationError(map[string]string{
				"subscription": "subscription debe ser Basic, Silver, Premium o Enterprise",
			})
		}
		fields["subscription"] = *in.Subscription
		fields["plan"] = plan
	}
	if in.Lang != nil {
		fields["lang"] = *in.Lang
	}
	if in.Avatar != nil {
		fields["avatar"] = *in.Avatar
	}
	if in.DarkMode != nil {
		fields["dark_mode"] = *in.DarkMode
	}
	if in.MessengerColor != nil {
		fields["messenger_color"] = *in.MessengerColor
	}

	updated, err := uc.repo.UpdateFields(userID, fields)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, domain.ErrUserNotFound
	}
	return dto.FromUser(updated), nil
}
