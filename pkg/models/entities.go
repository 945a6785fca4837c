package models

// Content is a single document submitted for entity recognition.
// PostURL is an opaque identifier and is not validated as a URL.
type Content struct {
	PostURL string `json:"post_url"`
	Content string `json:"content"`
}

// Payload is the ordered batch of documents submitted in one request.
type Payload struct {
	Data []Content `json:"data"`
}

// SingleEntity is one entity span as emitted by the model.
type SingleEntity struct {
	Text       string `json:"text"`
	EntityType string `json:"entity_type"`
}

// Entities holds the entities recognized in one document, in model order.
type Entities struct {
	PostURL  string         `json:"post_url"`
	Entities []SingleEntity `json:"entities"`
}

// ContentRequest is the wire form of Content. Fields are pointers so that a
// missing or null field can be told apart from an empty string.
type ContentRequest struct {
	PostURL *string `json:"post_url" validate:"required"`
	Content *string `json:"content"  validate:"required"`
}

// PayloadRequest is the wire form of Payload. An empty data list is valid,
// a missing or null one is not.
type PayloadRequest struct {
	Data []ContentRequest `json:"data" validate:"required,dive"`
}

// Payload converts a validated request into a Payload, preserving order.
func (pr *PayloadRequest) Payload() Payload {
	data := make([]Content, len(pr.Data))
	for i, c := range pr.Data {
		if c.PostURL != nil {
			data[i].PostURL = *c.PostURL
		}
		if c.Content != nil {
			data[i].Content = *c.Content
		}
	}
	return Payload{Data: data}
}

// The types below model the zep NLP server's /entities contract.

type EntityMatch struct {
	Start int    `json:"start"`
	End   int    `json:"end"`
	Text  string `json:"text"`
}

type Entity struct {
	Name    string        `json:"name"`
	Label   string        `json:"label"`
	Matches []EntityMatch `json:"matches"`
}

type EntityRequestRecord struct {
	UUID     string `json:"uuid"`
	Text     string `json:"text"`
	Language string `json:"language"`
}

type EntityResponseRecord struct {
	UUID     string   `json:"uuid"`
	Entities []Entity `json:"entities"`
}

type EntityRequest struct {
	Texts []EntityRequestRecord `json:"texts"`
}

type EntityResponse struct {
	Texts []EntityResponseRecord `json:"texts"`
}
