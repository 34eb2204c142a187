package apihandlers

import (
	"net/http"

	"github.com/jinzhu/copier"

	"github.com/nmchat/nmbot/pkg/models"
	"github.com/nmchat/nmbot/pkg/server/apidata"
	"github.com/nmchat/nmbot/pkg/server/handlertools"
)

// GetIntentsHandler godoc
//
//	@Summary		Returns the loaded intents
//	@Description	get intents, default responses and client suggestions
//	@Tags			intents
//	@Produce		json
//	@Success		200	{object}	apidata.IntentsResponse
//	@Failure		500	{object}	APIError	"Internal Server Error"
//	@Security		Bearer
//	@Router			/api/v1/intents [get]
func GetIntentsHandler(appState *models.AppState) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp := apidata.IntentsResponse{
			DefaultResponses: appState.Bot.DefaultResponses(),
			Suggestions:      appState.Bot.Suggestions(),
		}
		if err := copier.Copy(&resp.Intents, appState.Bot.Corpus().Intents()); err != nil {
			handlertools.RenderError(w, err, http.StatusInternalServerError)
			return
		}

		if err := handlertools.EncodeJSON(w, resp); err != nil {
			handlertools.RenderError(w, err, http.StatusInternalServerError)
			return
		}
	}
}
