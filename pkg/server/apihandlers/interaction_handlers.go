package apihandlers

import (
	"net/http"

	"github.com/jinzhu/copier"

	"github.com/nmchat/nmbot/pkg/models"
	"github.com/nmchat/nmbot/pkg/server/apidata"
	"github.com/nmchat/nmbot/pkg/server/handlertools"
)

// GetInteractionsHandler godoc
//
//	@Summary		Returns recent interactions
//	@Description	get logged interactions, newest first
//	@Tags			interactions
//	@Produce		json
//	@Param			limit		query		integer	false	"Maximum number of interactions"
//	@Param			unmatched	query		boolean	false	"Only interactions that matched no intent"
//	@Success		200			{object}	[]apidata.Interaction
//	@Failure		400			{object}	APIError	"Bad Request"
//	@Failure		404			{object}	APIError	"Not Found"
//	@Failure		500			{object}	APIError	"Internal Server Error"
//	@Security		Bearer
//	@Router			/api/v1/interactions [get]
func GetInteractionsHandler(appState *models.AppState) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if appState.InteractionStore == nil {
			handlertools.RenderError(w, models.NewNotFoundError("interaction log"), http.StatusNotFound)
			return
		}

		limit, err := handlertools.IntFromQuery[int](r, "limit")
		if err != nil {
			handlertools.RenderError(w, err, http.StatusBadRequest)
			return
		}
		unmatched, err := handlertools.BoolFromQuery(r, "unmatched")
		if err != nil {
			handlertools.RenderError(w, err, http.StatusBadRequest)
			return
		}

		interactions, err := appState.InteractionStore.ListInteractions(
			r.Context(),
			models.InteractionFilter{Limit: limit, UnmatchedOnly: unmatched},
		)
		if err != nil {
			handlertools.RenderError(w, err, http.StatusInternalServerError)
			return
		}

		resp := make([]apidata.Interaction, 0, len(interactions))
		if len(interactions) > 0 {
			if err := copier.Copy(&resp, interactions); err != nil {
				handlertools.RenderError(w, err, http.StatusInternalServerError)
				return
			}
		}
		if err := handlertools.EncodeJSON(w, resp); err != nil {
			handlertools.RenderError(w, err, http.StatusInternalServerError)
			return
		}
	}
}
