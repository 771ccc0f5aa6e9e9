package main

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/shopspring/decimal"
	"github.com/urfave/cli/v2"

	"github.com/eladgel/nof-ai/internal/api"
	"github.com/eladgel/nof-ai/internal/catalog"
	"github.com/eladgel/nof-ai/internal/config"
	"github.com/eladgel/nof-ai/internal/database"
	"github.com/eladgel/nof-ai/internal/domain"
	"github.com/eladgel/nof-ai/internal/export"
	"github.com/eladgel/nof-ai/internal/investment"
	"github.com/eladgel/nof-ai/internal/source"
	"github.com/eladgel/nof-ai/internal/worker"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.Load()
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel})))

	app := &cli.App{
		Name:  "advisor",
		Usage: "compare brokerage fees for a domestic/foreign portfolio",
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "run the HTTP API with periodic schedule reloads",
				Action: func(c *cli.Context) error {
					return serve(c.Context, cfg)
				},
			},
			{
				Name:  "rank",
				Usage: "print the cheapest brokerages for a portfolio",
				Flags: append(portfolioFlags(),
					&cli.IntFlag{Name: "limit", Value: cfg.RecommendationLimit, Usage: "rows to print, 0 for all"},
				),
				Action: func(c *cli.Context) error {
					return rank(c, cfg)
				},
			},
			{
				Name:  "export",
				Usage: "write the ranking to an XLSX file or Google Sheets",
				Flags: append(portfolioFlags(),
					&cli.StringFlag{Name: "xlsx", Usage: "write to this XLSX file instead of Google Sheets"},
				),
				Action: func(c *cli.Context) error {
					return exportRanking(c, cfg)
				},
			},
		},
	}

	if err := app.RunContext(ctx, os.Args); err != nil {
		log.Fatal(err)
	}
}

func portfolioFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "domestic", Value: "0", Usage: "domestic holdings in ILS"},
		&cli.StringFlag{Name: "foreign", Value: "0", Usage: "foreign holdings in ILS"},
		&cli.StringFlag{Name: "current", Usage: "id of the brokerage used today"},
	}
}

func portfolioFromFlags(c *cli.Context) (domain.PortfolioSplit, error) {
	domestic, err := decimal.NewFromString(c.String("domestic"))
	if err != nil {
		return domain.PortfolioSplit{}, fmt.Errorf("invalid --domestic: %w", err)
	}
	foreign, err := decimal.NewFromString(c.String("foreign"))
	if err != nil {
		return domain.PortfolioSplit{}, fmt.Errorf("invalid --foreign: %w", err)
	}
	if domestic.IsNegative() || foreign.IsNegative() {
		return domain.PortfolioSplit{}, errors.New("amounts must be non-negative")
	}
	return domain.PortfolioSplit{Domestic: domestic, Foreign: foreign}, nil
}

func loadCatalog(ctx context.Context, cfg config.Config) (*catalog.Service, error) {
	brokers := catalog.NewService(source.NewDirLoader(cfg.DataDir, cfg.LoadConcurrency))
	if err := brokers.Reload(ctx); err != nil {
		return nil, err
	}
	return brokers, nil
}

func serve(ctx context.Context, cfg config.Config) error {
	brokers := catalog.NewService(source.NewDirLoader(cfg.DataDir, cfg.LoadConcurrency))

	var investments *investment.Service
	if cfg.DatabaseURL != "" {
		pool, err := database.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return err
		}
		defer pool.Close()

		migrationsSub, err := fs.Sub(migrationsFS, "migrations")
		if err != nil {
			return fmt.Errorf("creating migrations sub-fs: %w", err)
		}
		if err := database.RunMigrations(ctx, pool, migrationsSub); err != nil {
			return fmt.Errorf("running migrations: %w", err)
		}
		investments = investment.NewService(investment.NewPgRepository(pool), cfg.InvestmentProfile, brokers)
	} else {
		slog.Warn("DATABASE_URL not set, investment endpoints disabled")
	}

	var hook worker.AfterReloadHook
	if cfg.SheetsEnabled() && investments != nil {
		writer, err := export.NewSheetsWriter(ctx, cfg.SheetsSpreadsheetID, cfg.GoogleCredentialsJSON)
		if err != nil {
			return err
		}
		hook = export.NewStoredProfileHook(export.NewService(brokers, writer, cfg.RecommendationLimit), investments)
	}

	go worker.NewReloadWorker(brokers, cfg.ReloadInterval, hook).Run(ctx)

	if cfg.AdminAPIKey == "" {
		slog.Warn("ADMIN_API_KEY not set, investment writes are unprotected")
	}

	srv := api.NewServer(cfg.HTTPPort, brokers, investments, cfg.RecommendationLimit, cfg.AdminAPIKey)
	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "port", cfg.HTTPPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		return fmt.Errorf("HTTP server: %w", err)
	}
	slog.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("HTTP server shutdown: %w", err)
	}

	slog.Info("shutdown complete")
	return nil
}

func rank(c *cli.Context, cfg config.Config) error {
	split, err := portfolioFromFlags(c)
	if err != nil {
		return err
	}
	brokers, err := loadCatalog(c.Context, cfg)
	if err != nil {
		return err
	}

	current := c.String("current")
	rows := export.BuildRankingRows(brokers.Recommend(split, current, c.Int("limit")), current)

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tID\tNAME\tDOMESTIC\tFOREIGN\tMANAGEMENT\tMGMT RATE\tTOTAL\tSAVINGS\t")
	for _, r := range rows {
		marker := ""
		if r.IsCurrent {
			marker = " *"
		}
		fmt.Fprintf(tw, "%d\t%s\t%s%s\t%s\t%s\t%s\t%s\t%s\t%s\t\n",
			r.Rank, r.ID, r.Name, marker,
			export.FormatILS(r.DomesticFee),
			export.FormatILS(r.ForeignFee),
			export.FormatILS(r.ManagementFee),
			domain.FormatAmount(r.ManagementRate),
			export.FormatILS(r.Total),
			export.FormatILS(r.Savings),
		)
	}
	return tw.Flush()
}

func exportRanking(c *cli.Context, cfg config.Config) error {
	split, err := portfolioFromFlags(c)
	if err != nil {
		return err
	}

	var writer export.SheetWriter
	switch {
	case c.String("xlsx") != "":
		writer = export.NewXLSXWriter(c.String("xlsx"))
	case cfg.SheetsEnabled():
		writer, err = export.NewSheetsWriter(c.Context, cfg.SheetsSpreadsheetID, cfg.GoogleCredentialsJSON)
		if err != nil {
			return err
		}
	default:
		return errors.New("nothing to export to: pass --xlsx or set SHEETS_SPREADSHEET_ID and GOOGLE_CREDENTIALS_JSON")
	}

	brokers, err := loadCatalog(c.Context, cfg)
	if err != nil {
		return err
	}
	return export.NewService(brokers, writer, cfg.RecommendationLimit).Export(c.Context, split, c.String("current"))
}
