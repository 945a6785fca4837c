package nlp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/getzep/zep-ner/config"
	"github.com/getzep/zep-ner/pkg/models"
)

var _ models.EntityRecognizer = &ServerRecognizer{}

// ServerRecognizer calls a remote spaCy NLP server's /entities endpoint.
// One request is made per document and failed requests are not retried.
type ServerRecognizer struct {
	serverURL  string
	language   string
	httpClient *http.Client
}

// NewServerRecognizer checks that the NLP server is healthy before returning.
func NewServerRecognizer(ctx context.Context, cfg config.NLP) (*ServerRecognizer, error) {
	if cfg.ServerURL == "" {
		return nil, fmt.Errorf("nlp.server_url must be set")
	}
	language := cfg.Language
	if language == "" {
		language = "en"
	}

	sr := &ServerRecognizer{
		serverURL:  strings.TrimRight(cfg.ServerURL, "/"),
		language:   language,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}

	if err := sr.healthCheck(ctx); err != nil {
		return nil, fmt.Errorf("nlp server at %s is not available: %w", sr.serverURL, err)
	}

	log.Infof("Using NLP server at %s", sr.serverURL)

	return sr, nil
}

func (sr *ServerRecognizer) Name() string {
	return "nlp-server:" + sr.serverURL
}

func (sr *ServerRecognizer) healthCheck(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, sr.serverURL+"/healthz", nil)
	if err != nil {
		return err
	}
	resp, err := sr.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("health check returned %d - %s", resp.StatusCode, resp.Status)
	}
	return nil
}

// Recognize sends text to the NLP server and flattens the returned entity matches
// into spans ordered by their start offset.
func (sr *ServerRecognizer) Recognize(
	ctx context.Context,
	text string,
) ([]models.SingleEntity, error) {
	recordUUID := uuid.New().String()
	requestBody := models.EntityRequest{Texts: []models.EntityRequestRecord{{
		UUID:     recordUUID,
		Text:     text,
		Language: sr.language,
	}}}

	jsonBody, err := json.Marshal(requestBody)
	if err != nil {
		return nil, fmt.Errorf("%w: error marshaling request body: %w", models.ErrInference, err)
	}

	bodyBytes, err := sr.makeEntityRequest(ctx, jsonBody)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", models.ErrInference, err)
	}

	var response models.EntityResponse
	if err := json.Unmarshal(bodyBytes, &response); err != nil {
		return nil, fmt.Errorf(
			"%w: error unmarshaling response body: %w",
			models.ErrInference,
			err,
		)
	}

	if len(response.Texts) != 1 {
		return nil, fmt.Errorf(
			"%w: expected 1 record from nlp server, got %d",
			models.ErrInference,
			len(response.Texts),
		)
	}
	record := response.Texts[0]
	if record.UUID != recordUUID {
		return nil, fmt.Errorf(
			"%w: nlp server returned record %s for request %s",
			models.ErrInference,
			record.UUID,
			recordUUID,
		)
	}

	return flattenEntities(record.Entities), nil
}

func (sr *ServerRecognizer) makeEntityRequest(ctx context.Context, jsonBody []byte) ([]byte, error) {
	url := sr.serverURL + "/entities"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonBody))
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	resp, err := sr.httpClient.Do(req)
	if err != nil {
		log.Error("Error making POST request: ", err)
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Errorf("Error making POST request: %d - %s", resp.StatusCode, resp.Status)
		return nil, fmt.Errorf("nlp server returned %d - %s", resp.StatusCode, resp.Status)
	}

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Error("Error reading response body: ", err)
		return nil, err
	}

	return bodyBytes, nil
}

// flattenEntities turns the server's grouped entities (one per distinct name, each
// with its matches) into one span per match, ordered left to right.
func flattenEntities(entities []models.Entity) []models.SingleEntity {
	type span struct {
		start int
		models.SingleEntity
	}

	var spans []span
	for _, e := range entities {
		for _, m := range e.Matches {
			spans = append(spans, span{
				start:        m.Start,
				SingleEntity: models.SingleEntity{Text: m.Text, EntityType: e.Label},
			})
		}
	}

	sort.SliceStable(spans, func(i, j int) bool {
		return spans[i].start < spans[j].start
	})

	result := make([]models.SingleEntity, len(spans))
	for i, s := range spans {
		result[i] = s.SingleEntity
	}
	return result
}
