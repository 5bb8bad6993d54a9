package main

import (
	"context"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/gofrs/flock"

	"prospector-engine/internal/config"
	"prospector-engine/internal/credits"
	"prospector-engine/internal/events"
	"prospector-engine/internal/history"
	"prospector-engine/internal/httpapi"
	"prospector-engine/internal/lookup"
	"prospector-engine/internal/people"
	"prospector-engine/internal/scheduler"
	"prospector-engine/internal/secrets"
	"prospector-engine/internal/store"
)

func main() {
	// Engine data dir: use env if provided (the desktop shell passes one),
	// else local folder.
	dataDir := os.Getenv("PROSPECTOR_DATA_DIR")
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		log.Fatal(err)
	}

	// One engine per data dir. The kv store does read-modify-write with no
	// cross-process locking, so a second instance would silently lose
	// updates; refuse to start instead.
	lock := flock.New(filepath.Join(dataDir, "engine.lock"))
	locked, err := lock.TryLock()
	if err != nil {
		log.Fatalf("lock data dir: %v", err)
	}
	if !locked {
		log.Fatalf("another engine instance already owns %s", dataDir)
	}
	defer func() { _ = lock.Unlock() }()

	defaultCfgPath := filepath.Join("config", "config.yml")
	userCfgPath, err := config.EnsureUserConfig(dataDir, defaultCfgPath)
	if err != nil {
		log.Fatalf("config bootstrap failed: %v", err)
	}

	// Load config and keep it reloadable
	var cfgVal atomic.Value // stores config.Config
	loadCfg := func() (config.Config, error) {
		cfg, err := config.Load(userCfgPath)
		if err != nil {
			return cfg, err
		}
		norm, vr := config.NormalizeAndValidate(cfg)
		if !vr.OK() {
			return cfg, fmt.Errorf("config invalid: %v", vr.Errors)
		}
		return norm, nil
	}
	cfg, err := loadCfg()
	if err != nil {
		log.Fatalf("config load failed (%s): %v", userCfgPath, err)
	}
	cfgVal.Store(cfg)

	dbPath := filepath.Join(dataDir, "prospector.db")
	db, err := store.Open(dbPath)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	hub := events.NewHub()

	limiter := lookup.NewHostLimiter(cfg.Autocomplete.RequestsPerSec, cfg.Autocomplete.Burst)
	client := lookup.New(lookup.Config{
		BaseURL:         cfg.API.BaseURL,
		AutocompleteURL: cfg.Autocomplete.URL,
		Timeout:         time.Duration(cfg.API.TimeoutSeconds) * time.Second,
	}, secrets.GetAPIKey, limiter)

	ledger := credits.NewLedger(client, hub)

	ctx := context.Background()
	kv := store.NewKV(db.Pool)
	emailLog := history.NewLog[*history.EmailEntry](ctx, kv, history.EmailLogKey)
	companyLog := history.NewLog[*history.CompanyEntry](ctx, kv, history.CompanyLogKey)
	log.Printf("[history] loaded email=%d company=%d", emailLog.Len(), companyLog.Len())

	// keep the displayed balance from going stale
	if mins := cfg.Credits.RefreshMinutes; mins > 0 {
		go scheduler.Every(ctx, time.Duration(mins)*time.Minute, "credits", func(ctx context.Context) error {
			_, err := ledger.Refresh(ctx)
			if lookup.IsNotConfigured(err) {
				return nil // nothing to do until the UI stores a key
			}
			return err
		})
	}

	mux := httpapi.NewMux(httpapi.Deps{
		DB:          db.Pool,
		Hub:         hub,
		Lookup:      client,
		Ledger:      ledger,
		Sessions:    people.NewManager(),
		EmailLog:    emailLog,
		CompanyLog:  companyLog,
		CfgVal:      &cfgVal,
		UserCfgPath: userCfgPath,
		LoadCfg:     loadCfg,
	})

	handler := httpapi.Chain(mux,
		httpapi.RequestID,
		httpapi.AccessLog,
		httpapi.Recover,
		httpapi.Cors,
	)

	addr := fmt.Sprintf("127.0.0.1:%d", cfg.App.Port)
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("engine listening on http://%s (db=%s)", addr, dbPath)

	srv := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}
	log.Fatal(srv.Serve(ln))
}
