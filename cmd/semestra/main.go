package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"

	"github.com/alexanderramin/semestra/internal/cli"
	"github.com/alexanderramin/semestra/internal/config"
	"github.com/alexanderramin/semestra/internal/db"
	"github.com/alexanderramin/semestra/internal/repository"
	"github.com/alexanderramin/semestra/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0o755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	taskRepo := repository.NewSQLiteTaskRepo(database)
	slotRepo := repository.NewSQLiteBusySlotRepo(database)
	profileRepo := repository.NewSQLiteProfileRepo(database)
	courseRepo := repository.NewSQLiteCourseRepo(database)
	userRepo := repository.NewSQLiteUserRepo(database)

	uow := db.NewSQLiteUnitOfWork(database)

	app := &cli.App{
		Tasks:    service.NewTaskService(taskRepo, uow),
		Slots:    service.NewBusySlotService(slotRepo),
		Profiles: service.NewProfileService(profileRepo),
		Courses:  service.NewCourseService(courseRepo),
		Schedule: service.NewScheduleService(taskRepo, slotRepo, profileRepo, uow),
		Importer: service.NewImportService(uow),
		Users:    userRepo,

		HTTPAddr:  cfg.HTTPAddr,
		JWTSecret: cfg.JWTSecret,
		TokenTTL:  cfg.TokenTTL,

		Interactive: isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()),
	}

	return cli.NewRootCmd(app).Execute()
}
