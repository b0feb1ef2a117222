package main

import (
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	internalcli "github.com/abcmobile/registration/internal/cli"
	"github.com/abcmobile/registration/internal/config"
	"github.com/abcmobile/registration/internal/database"
	"github.com/abcmobile/registration/internal/handlers"
	"github.com/abcmobile/registration/internal/regform"
	"github.com/abcmobile/registration/internal/repository"
	"github.com/abcmobile/registration/internal/services"
)

var version = "0.1.0"

// newLogger builds the process logger; --debug switches to the human-readable development config
func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// buildServerDependencies wires repository, service and handlers on top of an open database
func buildServerDependencies(c *cli.Context, log *zap.Logger, repo services.RegistrationRepository) internalcli.ServerDependencies {
	service := services.NewRegistrationService(repo, log.Named("service"))

	return internalcli.ServerDependencies{
		ServerConfig:            config.LoadServerConfig(os.Getenv),
		Logger:                  log.Named("http"),
		RegistrationPageHandler: handlers.NewRegistrationPageHandler(c.String("store-name"), log.Named("page")),
		RegistrationAPIHandler:  handlers.NewRegistrationAPIHandler(service, log.Named("api")),
	}
}

// ServeCommand returns the serve command
func ServeCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Start the registration web server",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "store-name",
				Usage:   "storefront name shown on the registration page",
				Value:   regform.DefaultStoreName,
				EnvVars: []string{"STORE_NAME"},
			},
		},
		Action: func(c *cli.Context) error {
			log, err := newLogger(c.Bool("debug"))
			if err != nil {
				return fmt.Errorf("failed to create logger: %w", err)
			}
			defer log.Sync()

			pgConfig, err := config.LoadPostgresConfig(os.Getenv)
			if err != nil {
				return fmt.Errorf("failed to load postgres config: %w", err)
			}

			db, err := database.Connect(pgConfig, log.Named("db"))
			if err != nil {
				return fmt.Errorf("failed to connect to database: %w", err)
			}
			defer db.Close()

			if err := database.RunMigrations(db, log.Named("db")); err != nil {
				return fmt.Errorf("failed to run database migrations: %w", err)
			}

			deps := buildServerDependencies(c, log, repository.NewRegistrationRepository(db))
			return internalcli.RunServe(deps)
		},
	}
}

// PageCommand returns the page command, which prints the registration page
func PageCommand() *cli.Command {
	return &cli.Command{
		Name:  "page",
		Usage: "Print the registration page HTML to stdout",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "store-name",
				Usage: "storefront name shown on the registration page",
				Value: regform.DefaultStoreName,
			},
		},
		Action: func(c *cli.Context) error {
			return writePage(c.App.Writer, c.String("store-name"))
		},
	}
}

func writePage(w io.Writer, storeName string) error {
	return regform.Render(w, regform.PageData{StoreName: storeName})
}

func newApp() *cli.App {
	return &cli.App{
		Name:    "abcmobile",
		Usage:   "ABC Mobile registration service",
		Version: version,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "debug",
				Usage:   "enable development logging",
				EnvVars: []string{"DEBUG"},
			},
		},
		Commands: []*cli.Command{
			ServeCommand(),
			PageCommand(),
		},
	}
}

func main() {
	// A missing .env file is fine; the environment may already be set
	_ = godotenv.Load()

	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
