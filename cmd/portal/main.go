package main

import (
	"log"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/scholarship-portal/internal/cli"
	"github.com/noah-isme/scholarship-portal/internal/repository"
	"github.com/noah-isme/scholarship-portal/internal/service"
	"github.com/noah-isme/scholarship-portal/internal/store"
	"github.com/noah-isme/scholarship-portal/pkg/config"
	"github.com/noah-isme/scholarship-portal/pkg/logger"
	"github.com/noah-isme/scholarship-portal/pkg/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	st, err := store.Open(cfg.Storage.DataDir, logr)
	if err != nil {
		logr.Sugar().Fatalw("failed to open store", "error", err)
	}
	scholarships, applications := st.Load()

	exportsDir, err := storage.NewLocalStorage(cfg.Storage.ExportsDir)
	if err != nil {
		logr.Sugar().Fatalw("failed to prepare exports directory", "error", err)
	}

	notifier := cli.ConsoleNotifier{}
	validate := validator.New()

	scholarshipRepo := repository.NewScholarshipRepository(st, scholarships, logr)
	applicationRepo := repository.NewApplicationRepository(st, applications, logr)

	scholarshipSvc := service.NewScholarshipService(scholarshipRepo, validate, notifier, logr)
	applicationSvc := service.NewApplicationService(applicationRepo, scholarshipRepo, validate, notifier, logr)
	analyticsSvc := service.NewAnalyticsService(applicationRepo)
	exportSvc := service.NewExportService(scholarshipRepo, applicationRepo, exportsDir, logr)

	authSvc, err := service.NewAuthService(cfg.Admin, notifier, logr)
	if err != nil {
		logr.Sugar().Fatalw("failed to init auth", "error", err)
	}

	if cfg.Seed.SampleData && scholarshipRepo.Count() == 0 {
		if err := scholarshipSvc.SeedSampleData(); err != nil {
			logr.Warn("failed to seed sample data", zap.Error(err))
		}
	}

	logr.Sugar().Infow("portal starting",
		"env", cfg.Env,
		"data_dir", cfg.Storage.DataDir,
		"scholarships", scholarshipRepo.Count(),
		"applications", applicationRepo.Count())

	cli.New(scholarshipSvc, applicationSvc, analyticsSvc, authSvc, exportSvc, logr).Run()

	// Teardown: one final full save so shutdown state is explicit.
	if err := st.Save(scholarshipRepo.All(), applicationRepo.All()); err != nil {
		logr.Warn("final save failed", zap.Error(err))
	}
}
