package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/getzep/zep-ner/config"
	"github.com/getzep/zep-ner/pkg/models"
	"github.com/getzep/zep-ner/pkg/nlp"
	"github.com/getzep/zep-ner/pkg/server"
)

// run is the entrypoint for the zep-ner server
func run() {
	cfg, err := config.LoadConfig(cfgFile)
	if err != nil {
		log.Fatalf("Error configuring zep-ner: %s", err)
	}

	handleCLIOptions(cfg)

	log.Infof("Starting zep-ner server version %s", config.VersionString)

	config.SetLogLevel(cfg)

	// The model must load before we accept requests. A failure here is fatal.
	appState, err := NewAppState(context.Background(), cfg)
	if err != nil {
		log.Fatalf("Error loading NER model: %s", err)
	}

	srv := server.Create(appState)
	setupSignalHandler(srv, cfg)

	log.Infof("Listening on: %s", srv.Addr)
	err = srv.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
}

// NewAppState creates an AppState struct from the config file / ENV and loads the
// recognizer shared by all requests.
func NewAppState(ctx context.Context, cfg *config.Config) (*models.AppState, error) {
	recognizer, err := nlp.NewRecognizer(ctx, cfg)
	if err != nil {
		return nil, err
	}

	log.Infof("Using NER model: %s", recognizer.Name())

	return &models.AppState{
		Recognizer: recognizer,
		Config:     cfg,
	}, nil
}

// handleCLIOptions handles CLI options that don't require the server to run
func handleCLIOptions(cfg *config.Config) {
	if showVersion {
		fmt.Println(config.VersionString)
		os.Exit(0)
	}
	if dumpConfig {
		if err := writeConfig(os.Stdout, cfg); err != nil {
			log.Fatalf("Error dumping config: %s", err)
		}
		os.Exit(0)
	}
}

func writeConfig(w io.Writer, cfg *config.Config) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(cfg)
}

// setupSignalHandler shuts the HTTP server down gracefully on termination
func setupSignalHandler(srv *http.Server, cfg *config.Config) {
	signalCh := make(chan os.Signal, 1)
	signal.Notify(signalCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-signalCh
		log.Info("Shutting down zep-ner server")
		ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			log.Errorf("Error shutting down server: %v", err)
		}
	}()
}
