// salesreport fetches the per-product analytics and writes them to a PDF so
// the shop owner can file or print a periodic summary.
package main

import (
	"context"
	"flag"
	"os"
	"time"

	"ufcdash/internal/api"
	"ufcdash/internal/apierror"
	"ufcdash/internal/config"
	"ufcdash/internal/dto"
	"ufcdash/internal/session"
	"ufcdash/internal/viewmodel"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	out := flag.String("out", "", "output path (default sales_report_<date>.pdf)")
	sortBy := flag.String("sort", "totalRevenue", "sort field")
	order := flag.String("order", dto.SortDesc, "asc | desc")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	sess, err := session.NewManager(session.NewStore(cfg.CredentialFile))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load stored credential")
	}

	client := api.New(cfg, sess)
	asm := viewmodel.NewAssembler(client, cfg.PageSize)

	view, err := asm.Analytics(context.Background(), dto.SortState{Field: *sortBy, Order: *order})
	if err != nil {
		if apierror.IsAuth(err) {
			log.Fatal().Msg("session expired or rejected — run 'dashboard login'")
		}
		log.Fatal().Err(err).Msg("failed to fetch analytics")
	}

	path := *out
	if path == "" {
		path = "sales_report_" + time.Now().Format("2006-01-02") + ".pdf"
	}
	if err := writeReport(view, path); err != nil {
		log.Fatal().Err(err).Msg("failed to write report")
	}
	log.Info().Str("path", path).Int("products", len(view.Rows)).Msg("report written")
}
