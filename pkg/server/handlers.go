package server

import (
	"net/http"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/getzep/zep-ner/pkg/extractors"
	"github.com/getzep/zep-ner/pkg/models"
)

// ExtractEntitiesHandler godoc
//
//	@Summary		Extracts named entities from a batch of documents
//	@Description	Documents are processed in order. The response holds one record per
//	@Description	document, at the same position. If any document fails, the whole
//	@Description	request fails.
//	@Tags			ner
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		models.PayloadRequest		true	"Documents"
//	@Success		200		{array}		models.Entities				"OK"
//	@Failure		422		{object}	models.HTTPValidationError	"Validation Error"
//	@Failure		500		{object}	APIError					"Internal Server Error"
//	@Router			/ner-service [post]
func ExtractEntitiesHandler(appState *models.AppState) http.HandlerFunc {
	extractor := extractors.NewEntityExtractor(appState.Recognizer)
	return func(w http.ResponseWriter, r *http.Request) {
		requestID := middleware.GetReqID(r.Context())

		payloadRequest, verr := decodePayloadRequest(r)
		if verr != nil {
			renderValidationError(w, verr)
			return
		}

		payload := payloadRequest.Payload()
		log.Debugf("ExtractEntitiesHandler %s: %d documents", requestID, len(payload.Data))

		entities, err := extractor.ExtractEntities(r.Context(), payload.Data)
		if err != nil {
			log.Errorf("ExtractEntitiesHandler %s failed", requestID)
			renderError(w, err, http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		if err := encodeJSON(w, entities); err != nil {
			log.Errorf("ExtractEntitiesHandler %s: error encoding response: %v", requestID, err)
			return
		}
	}
}
