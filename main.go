package main

import (
	cmd "github.com/getzep/zep-ner/cmd/zepner"
	"github.com/getzep/zep-ner/internal"
)

var log = internal.GetLogger()

func main() {
	log.Info("Starting zep-ner")
	cmd.Execute()
}
