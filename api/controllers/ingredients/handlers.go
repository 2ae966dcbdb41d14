package ingredients

import (
	"net/http"

	"github.com/angelmondragon/pantrycost-backend/api/responses"
	"github.com/angelmondragon/pantrycost-backend/api/validators"
	ingredientsvc "github.com/angelmondragon/pantrycost-backend/internal/ingredients"
	pkgerrors "github.com/angelmondragon/pantrycost-backend/pkg/errors"
	"github.com/angelmondragon/pantrycost-backend/pkg/logger"
)

// Create records a new ingredient; a case-insensitive name match is a 409
// carrying the existing record.
func Create(svc ingredientsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "ingredient service unavailable"))
			return
		}

		var payload createIngredientRequest
		if err := validators.DecodeJSONBody(w, r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, validators.Rephrase(err, missingFieldsMessage))
			return
		}

		input, err := payload.toInput()
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		created, err := svc.CreateIngredient(r.Context(), input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if logg != nil {
			logg.Info(logg.WithEntity(r.Context(), "ingredient", created.ID), "ingredient.created")
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, created)
	}
}

// List returns every ingredient ordered by name.
func List(svc ingredientsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "ingredient service unavailable"))
			return
		}

		items, err := svc.ListIngredients(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, items)
	}
}
