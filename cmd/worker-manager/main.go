// cmd/worker-manager/main.go
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"leadrank-workers/internal/common/aws"
	"leadrank-workers/internal/common/camunda"
	"leadrank-workers/internal/common/config"
	"leadrank-workers/internal/common/database"
	"leadrank-workers/internal/common/logger"
	"leadrank-workers/internal/common/observability"
	"leadrank-workers/internal/leadsource"
	"leadrank-workers/internal/profilesource"
	"leadrank-workers/internal/ranking"

	er "leadrank-workers/internal/workers/export/export-results"
	pi "leadrank-workers/internal/workers/intent/parse-intent"
	el "leadrank-workers/internal/workers/leads/enrich-leads"
	fl "leadrank-workers/internal/workers/leads/fetch-leads"
	rl "leadrank-workers/internal/workers/ranking/rank-leads"
)

// retryWithBackoff attempts to execute a function with exponential backoff
func retryWithBackoff(operation func() error, maxRetries int, initialDelay time.Duration, log *zap.Logger, operationName string) error {
	var err error
	delay := initialDelay

	for i := 0; i < maxRetries; i++ {
		err = operation()
		if err == nil {
			return nil
		}

		if i < maxRetries-1 {
			log.Warn(fmt.Sprintf("%s failed, retrying...", operationName),
				zap.Error(err),
				zap.Int("attempt", i+1),
				zap.Int("maxRetries", maxRetries),
				zap.Duration("nextRetryIn", delay),
			)
			time.Sleep(delay)
			delay *= 2 // Exponential backoff
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", operationName, maxRetries, err)
}

func main() {
	zapLog := logger.New("info", "console")
	defer zapLog.Sync()

	zapLog.Info("Starting worker manager...")

	cfg, err := config.Load()
	if err != nil {
		zapLog.Fatal("config load failed", zap.Error(err))
	}

	// Rebuild the logger with the configured level and format.
	zapLog = logger.New(cfg.Logging.Level, cfg.Logging.Format)
	log := logger.NewZapAdapter(zapLog)

	obs := observability.New("worker-manager")
	defer obs.Shutdown()

	ctx := context.Background()

	// --- Init Zeebe Client with retry ---
	var zeebeClient *camunda.Client
	err = retryWithBackoff(func() error {
		var err error
		zeebeClient, err = camunda.NewClientWithConfig(&camunda.ClientConfig{
			GatewayAddress:         cfg.Camunda.BrokerAddress,
			UsePlaintextConnection: true,
			ConnectionTimeout:      10 * time.Second,
			RequestTimeout:         time.Duration(cfg.Camunda.RequestTimeout) * time.Millisecond,
		})
		return err
	}, 10, 2*time.Second, zapLog, "Zeebe client initialization")

	if err != nil {
		zapLog.Fatal("zeebe client failed after retries", zap.Error(err))
	}
	zapLog.Info("Zeebe client connected successfully")

	// Profiles come from Postgres unless the whole deployment is
	// file-backed; raw leads follow leads.source directly.
	profileKind := cfg.Leads.Source
	if profileKind == "elasticsearch" {
		if cfg.Database.Postgres.Host != "" {
			profileKind = "postgres"
		} else {
			profileKind = "file"
		}
	}

	// --- Init PostgreSQL with retry (only when a source needs it) ---
	var pg *database.PostgresClient
	if cfg.Leads.Source == "postgres" || profileKind == "postgres" {
		err = retryWithBackoff(func() error {
			var err error
			pg, err = database.NewPostgres(cfg.Database.Postgres)
			if err != nil {
				return err
			}
			return pg.Ping(ctx)
		}, 15, 2*time.Second, zapLog, "PostgreSQL connection")

		if err != nil {
			zapLog.Fatal("postgres failed after retries", zap.Error(err))
		}
		defer pg.Close()
		zapLog.Info("PostgreSQL connected successfully")
	}

	// --- Init Elasticsearch with retry (only when it backs the lead source) ---
	var esClient *database.ElasticsearchClient
	if cfg.Leads.Source == "elasticsearch" {
		err = retryWithBackoff(func() error {
			var err error
			esClient, err = database.NewElasticsearch(cfg.Database.Elasticsearch)
			if err != nil {
				return err
			}
			return esClient.Ping()
		}, 15, 2*time.Second, zapLog, "Elasticsearch connection")

		if err != nil {
			zapLog.Fatal("elasticsearch failed after retries", zap.Error(err))
		}
		zapLog.Info("Elasticsearch connected successfully")
	}

	// --- Init Redis with retry ---
	// The profile cache is an optimization: if Redis never comes up the
	// workers run against the backing source directly.
	var redisClient *database.RedisClient
	err = retryWithBackoff(func() error {
		var err error
		redisClient, err = database.NewRedis(cfg.Database.Redis)
		if err != nil {
			return err
		}
		return redisClient.Ping(ctx)
	}, 5, 2*time.Second, zapLog, "Redis connection")

	if err != nil {
		zapLog.Warn("redis unavailable, continuing without profile cache", zap.Error(err))
		redisClient = nil
	} else {
		defer redisClient.Close()
		zapLog.Info("Redis connected successfully")
	}

	// --- START: Register Workers ---

	var workers []*camunda.CamundaWorker

	// Fetch Leads
	if taskType := fl.TaskType; cfg.Workers[taskType].Enabled {
		leadSrc, err := leadsource.New(cfg.Leads, pg, esClient, log)
		if err != nil {
			zapLog.Fatal("failed to build lead source", zap.Error(err))
		}
		handler := fl.NewHandler(
			&fl.Config{
				Timeout: time.Duration(cfg.Workers[taskType].Timeout) * time.Millisecond,
			},
			leadSrc, cfg.Leads.Source, log,
		)
		workers = append(workers, camunda.NewWorker(zeebeClient.GetClient(), taskType, cfg.Workers[taskType], handler, zapLog))
	}

	// Enrich Leads
	if taskType := el.TaskType; cfg.Workers[taskType].Enabled {
		profileSrc, err := profilesource.New(cfg.Leads, profileKind, pg, redisClient, log)
		if err != nil {
			zapLog.Fatal("failed to build profile source", zap.Error(err))
		}
		handler := el.NewHandler(
			&el.Config{
				Timeout: time.Duration(cfg.Workers[taskType].Timeout) * time.Millisecond,
			},
			profileSrc, log,
		)
		workers = append(workers, camunda.NewWorker(zeebeClient.GetClient(), taskType, cfg.Workers[taskType], handler, zapLog))
	}

	// Parse Intent
	if taskType := pi.TaskType; cfg.Workers[taskType].Enabled {
		handler := pi.NewHandler(
			&pi.Config{
				Timeout: time.Duration(cfg.Workers[taskType].Timeout) * time.Millisecond,
			},
			log,
		)
		workers = append(workers, camunda.NewWorker(zeebeClient.GetClient(), taskType, cfg.Workers[taskType], handler, zapLog))
	}

	// Rank Leads
	if taskType := rl.TaskType; cfg.Workers[taskType].Enabled {
		handler := rl.NewHandler(
			&rl.Config{
				Timeout:      time.Duration(cfg.Workers[taskType].Timeout) * time.Millisecond,
				SlowRankWarn: time.Duration(cfg.Ranking.SlowRankWarnMs) * time.Millisecond,
			},
			ranking.NewRuleStrategy(), log,
		)
		workers = append(workers, camunda.NewWorker(zeebeClient.GetClient(), taskType, cfg.Workers[taskType], handler, zapLog))
	}

	// Export Results
	if taskType := er.TaskType; cfg.Workers[taskType].Enabled {
		var sesSvc er.SESService
		var snsSvc er.SNSService

		if cfg.Export.Email.Enabled {
			sesClient, err := aws.NewSESClient(ctx, cfg.Export.AWS.Region)
			if err != nil {
				zapLog.Fatal("failed to create SES client", zap.Error(err))
			}
			sesSvc = sesClient
		}
		if cfg.Export.SMS.Enabled {
			snsClient, err := aws.NewSNSClient(ctx, cfg.Export.AWS.Region)
			if err != nil {
				zapLog.Fatal("failed to create SNS client", zap.Error(err))
			}
			snsSvc = snsClient
		}

		exportCfg := er.LoadConfig()
		exportCfg.Timeout = time.Duration(cfg.Workers[taskType].Timeout) * time.Millisecond
		exportCfg.EmailEnabled = cfg.Export.Email.Enabled
		exportCfg.SMSEnabled = cfg.Export.SMS.Enabled
		exportCfg.FromEmail = cfg.Export.Email.FromEmail

		handler := er.NewHandler(exportCfg, sesSvc, snsSvc, log)
		workers = append(workers, camunda.NewWorker(zeebeClient.GetClient(), taskType, cfg.Workers[taskType], handler, zapLog))
	}

	zapLog.Info("All workers registered successfully")

	// --- Health & Metrics Server ---
	go func() {
		http.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			json.NewEncoder(w).Encode(map[string]string{
				"status": "healthy",
				"time":   time.Now().Format(time.RFC3339),
			})
		})
		http.HandleFunc("/ready", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			json.NewEncoder(w).Encode(map[string]string{
				"status": "ready",
				"time":   time.Now().Format(time.RFC3339),
			})
		})
		http.Handle("/metrics", promhttp.Handler())
		zapLog.Info("Health/Metrics server listening", zap.String("address", cfg.Metrics.Address))
		if err := http.ListenAndServe(cfg.Metrics.Address, nil); err != nil {
			zapLog.Error("Health/Metrics server failed", zap.Error(err))
		}
	}()

	// --- Graceful Shutdown ---
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	zapLog.Info("Shutdown signal received, stopping workers...")

	for _, w := range workers {
		w.Stop()
	}

	if err := zeebeClient.Close(); err != nil {
		zapLog.Error("Error closing Zeebe client", zap.Error(err))
	}

	zapLog.Info("Worker manager stopped gracefully")
}
