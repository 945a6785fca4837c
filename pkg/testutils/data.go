package testutils

import (
	"strings"

	"github.com/brianvoe/gofakeit/v6"

	"github.com/getzep/zep-ner/pkg/models"
)

// TestContents is a small fixed batch. Clone it before mutating.
var TestContents = []models.Content{
	{
		PostURL: "https://example.com/posts/1",
		Content: "Barack Obama was born in Hawaii.",
	},
	{
		PostURL: "https://example.com/posts/2",
		Content: "and and and",
	},
	{
		PostURL: "https://example.com/posts/3",
		Content: "Angela Merkel met Emmanuel Macron in Paris.",
	},
}

// TestEntities maps each TestContents text to the entities StubRecognizer returns for it.
var TestEntities = map[string][]models.SingleEntity{
	"Barack Obama was born in Hawaii.": {
		{Text: "Barack Obama", EntityType: "PERSON"},
		{Text: "Hawaii", EntityType: "GPE"},
	},
	"Angela Merkel met Emmanuel Macron in Paris.": {
		{Text: "Angela Merkel", EntityType: "PERSON"},
		{Text: "Emmanuel Macron", EntityType: "PERSON"},
		{Text: "Paris", EntityType: "GPE"},
	},
}

// GenerateContents returns count random documents. Seed gofakeit first for
// reproducible output.
func GenerateContents(count int) []models.Content {
	contents := make([]models.Content, count)
	for i := range contents {
		contents[i] = models.Content{
			PostURL: gofakeit.URL() + "/" + strings.ToLower(gofakeit.Word()),
			Content: gofakeit.HipsterParagraph(1, 2, 12, " "),
		}
	}
	return contents
}
