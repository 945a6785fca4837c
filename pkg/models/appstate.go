package models

import (
	"github.com/getzep/zep-ner/config"
)

// AppState is a struct that holds the state of the application
// Use cmd.NewAppState to create a new instance
type AppState struct {
	Recognizer EntityRecognizer
	Config     *config.Config
}
