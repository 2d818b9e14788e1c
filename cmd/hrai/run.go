package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robohr/ai-service/config"
	"github.com/robohr/ai-service/pkg/auth"
	"github.com/robohr/ai-service/pkg/cache"
	"github.com/robohr/ai-service/pkg/models"
	"github.com/robohr/ai-service/pkg/nlp"
	"github.com/robohr/ai-service/pkg/server"
	"github.com/robohr/ai-service/pkg/speech"
	"github.com/robohr/ai-service/pkg/store"
	"github.com/robohr/ai-service/pkg/translation"
)

// run is the entrypoint for the hrai server
func run() {
	cfg, err := config.LoadConfig(cfgFile)
	if err != nil {
		log.Fatalf("Error configuring hrai: %s", err)
	}

	handleCLIOptions(cfg)

	log.Infof("Starting hrai server version %s", config.VersionString)

	config.SetLogLevel(cfg)
	appState := NewAppState(cfg)

	srv := server.Create(appState)

	log.Infof("Listening on: %s", srv.Addr)
	err = srv.ListenAndServe()
	if err != nil {
		log.Fatal(err)
	}
}

// NewAppState creates an AppState struct from the config file / ENV and
// initializes the NLP, speech, translation and history services.
func NewAppState(cfg *config.Config) *models.AppState {
	sharedCache, err := cache.NewCache(cfg)
	if err != nil {
		log.Fatalf("Error creating cache: %s", err)
	}

	speechProcessor, err := speech.NewProcessor(cfg)
	if err != nil {
		log.Fatalf("Error creating speech processor: %s", err)
	}
	// Resolve the audio dir so the file serving route and the processor agree
	// when the configured dir was empty.
	cfg.Speech.AudioDir = speechProcessor.Files().Dir()

	translationService, err := translation.NewService(cfg, sharedCache)
	if err != nil {
		log.Fatalf("Error creating translation service: %s", err)
	}

	historyStore, err := store.NewHistoryStore(cfg)
	if err != nil {
		log.Fatalf("Error creating history store: %s", err)
	}

	appState := &models.AppState{
		NLP:         nlp.NewProcessor(cfg, sharedCache),
		Speech:      speechProcessor,
		Translation: translationService,
		History:     historyStore,
		Config:      cfg,
	}
	log.Info("Using history store: ", cfg.Store.Type)

	setupSignalHandler(appState)
	setupPurgeProcessor(context.Background(), appState)
	speechProcessor.Files().StartSweeper(
		context.Background(),
		time.Duration(cfg.Speech.SweepEvery)*time.Minute,
	)

	return appState
}

// handleCLIOptions handles CLI options that don't require the server to run
func handleCLIOptions(cfg *config.Config) {
	if showVersion {
		fmt.Println(config.VersionString)
		os.Exit(0)
	}
	if dumpConfig {
		out, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			log.Fatalf("Error dumping config: %s", err)
		}
		fmt.Println(string(out))
		os.Exit(0)
	}
	if generateKey {
		fmt.Println(auth.GenerateJWT(cfg))
		os.Exit(0)
	}
}

// setupSignalHandler sets up a signal handler to close the history store connection on termination
func setupSignalHandler(appState *models.AppState) {
	signalCh := make(chan os.Signal, 1)
	signal.Notify(signalCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-signalCh
		if err := appState.History.Close(); err != nil {
			log.Errorf("Error closing history store connection: %v", err)
		}
		os.Exit(0)
	}()
}

// setupPurgeProcessor sets up a go routine to purge soft deleted records from the
// history store at a regular interval. It's cancellable via the passed context.
// If store.purge_every is 0, this function does nothing.
func setupPurgeProcessor(ctx context.Context, appState *models.AppState) {
	interval := time.Duration(appState.Config.Store.PurgeEvery) * time.Minute
	if interval == 0 {
		log.Debug("purge delete processor disabled")
		return
	}

	log.Infof("Starting purge delete processor. Purging every %v", interval)
	go func() {
		for {
			select {
			case <-ctx.Done():
				log.Info("Stopping purge delete processor")
				return
			default:
				err := appState.History.PurgeDeleted(ctx)
				if err != nil {
					log.Errorf("error purging deleted records: %v", err)
				}
			}
			time.Sleep(interval)
		}
	}()
}
