package apihandlers

import (
	"net/http"

	"github.com/abadojack/whatlanggo"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/samber/lo"

	"github.com/nmchat/nmbot/internal"
	"github.com/nmchat/nmbot/pkg/models"
	"github.com/nmchat/nmbot/pkg/server/apidata"
	"github.com/nmchat/nmbot/pkg/server/handlertools"
)

var log = internal.GetLogger()

// ChatHandler godoc
//
//	@Summary		Returns a reply to a chat message
//	@Description	classify a message and return a canned response
//	@Tags			chat
//	@Accept			json
//	@Produce		json
//	@Param			message	body		apidata.ChatRequest	true	"Message"
//	@Success		200		{object}	apidata.ChatResponse
//	@Failure		400		{object}	APIError	"Bad Request"
//	@Failure		500		{object}	APIError	"Internal Server Error"
//	@Router			/api/chat [post]
func ChatHandler(appState *models.AppState) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		reply, ok := chat(appState, w, r)
		if !ok {
			return
		}

		if err := handlertools.EncodeJSON(w, apidata.ChatResponse{Response: reply.Response}); err != nil {
			handlertools.RenderError(w, err, http.StatusInternalServerError)
			return
		}
	}
}

// ChatV1Handler godoc
//
//	@Summary		Returns a reply to a chat message with its classification
//	@Description	classify a message and return a canned response, the intent and its score
//	@Tags			chat
//	@Accept			json
//	@Produce		json
//	@Param			message	body		apidata.ChatRequest	true	"Message"
//	@Success		200		{object}	apidata.ChatV1Response
//	@Failure		400		{object}	APIError	"Bad Request"
//	@Failure		500		{object}	APIError	"Internal Server Error"
//	@Security		Bearer
//	@Router			/api/v1/chat [post]
func ChatV1Handler(appState *models.AppState) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		reply, ok := chat(appState, w, r)
		if !ok {
			return
		}

		resp := apidata.ChatV1Response{
			Response: reply.Response,
			Intent:   reply.Intent,
			Score:    reply.Score,
			Matched:  reply.Matched,
		}
		if err := handlertools.EncodeJSON(w, resp); err != nil {
			handlertools.RenderError(w, err, http.StatusInternalServerError)
			return
		}
	}
}

// ClassifyHandler godoc
//
//	@Summary		Ranks the trained phrases closest to a message
//	@Description	normalize a message and return its best scoring trigger phrases
//	@Tags			chat
//	@Accept			json
//	@Produce		json
//	@Param			request	body		apidata.ClassifyRequest	true	"Message and limit"
//	@Success		200		{object}	apidata.ClassifyResponse
//	@Failure		400		{object}	APIError	"Bad Request"
//	@Failure		500		{object}	APIError	"Internal Server Error"
//	@Security		Bearer
//	@Router			/api/v1/classify [post]
func ClassifyHandler(appState *models.AppState) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req apidata.ClassifyRequest
		if err := handlertools.DecodeJSON(r, &req); err != nil {
			handlertools.RenderError(w, err, http.StatusBadRequest)
			return
		}
		if err := handlertools.Validate(req); err != nil {
			handlertools.RenderError(w, err, http.StatusBadRequest)
			return
		}
		if req.Limit == 0 {
			req.Limit = apidata.DefaultClassifyLimit
		}

		normalized, matches := appState.Bot.Rank(req.Message, req.Limit)
		resp := apidata.ClassifyResponse{
			Normalized: normalized,
			Threshold:  appState.Bot.Threshold(),
			Matches: lo.Map(matches, func(m models.Match, _ int) apidata.ClassifyMatch {
				return apidata.ClassifyMatch{
					Intent:  m.Intent,
					Phrase:  m.Phrase,
					Score:   m.Score,
					Matched: m.Matched,
				}
			}),
		}
		if err := handlertools.EncodeJSON(w, resp); err != nil {
			handlertools.RenderError(w, err, http.StatusInternalServerError)
			return
		}
	}
}

// chat decodes the request, replies and records the interaction. It renders
// the error and returns false when the request cannot be served.
func chat(appState *models.AppState, w http.ResponseWriter, r *http.Request) (models.Reply, bool) {
	var req apidata.ChatRequest
	if err := handlertools.DecodeJSON(r, &req); err != nil {
		handlertools.RenderError(w, err, http.StatusBadRequest)
		return models.Reply{}, false
	}

	reply := appState.Bot.Reply(req.Message)
	if !reply.Prompted {
		record(appState, r, req.Message, reply)
	}
	return reply, true
}

// record appends the interaction to the log if one is configured. Failures
// are logged and never change the reply.
func record(appState *models.AppState, r *http.Request, message string, reply models.Reply) {
	if appState.InteractionStore == nil {
		return
	}

	interaction := &models.Interaction{
		Message:    message,
		Normalized: reply.Normalized,
		Intent:     reply.Intent,
		Score:      reply.Score,
		Matched:    reply.Matched,
		Response:   reply.Response,
		Language:   detectLanguage(message),
		RequestID:  middleware.GetReqID(r.Context()),
	}
	if err := appState.InteractionStore.PutInteraction(r.Context(), interaction); err != nil {
		log.Errorf("failed to record interaction: %v", err)
	}
}

// detectLanguage returns the ISO 639-1 code of text, or "" when unsure.
func detectLanguage(text string) string {
	info := whatlanggo.Detect(text)
	if !info.IsReliable() {
		return ""
	}
	return info.Lang.Iso6391()
}
