package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ufcdash/internal/api"
	"ufcdash/internal/apierror"
	"ufcdash/internal/config"
	"ufcdash/internal/dto"
	"ufcdash/internal/metrics"
	"ufcdash/internal/model"
	"ufcdash/internal/session"
	"ufcdash/internal/stream"
	"ufcdash/internal/viewmodel"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const usage = `usage: dashboard <command> [flags]

commands:
  login       -u <user> -p <password>
  register    -u <user> -p <password>
  logout
  summary     [-filter daily|weekly|monthly] [-start YYYY-MM-DD -end YYYY-MM-DD]
  sales       [-page N] [-search TERM]
  record      -product NAME -qty N -price AMOUNT -cost AMOUNT
  inventory   [-page N] [-sort FIELD] [-order asc|desc] [-search TERM]
  upsert      -product NAME -stock N -cost AMOUNT -threshold N
  analytics   [-sort FIELD] [-order asc|desc]
  watch       [-filter daily|weekly|monthly]
`

func main() {
	// Structured logger — dev: pretty, prod: JSON
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

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

	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	app := &app{cfg: cfg, client: client, asm: asm}
	ctx := context.Background()

	var cmdErr error
	switch os.Args[1] {
	case "login":
		cmdErr = app.login(ctx, os.Args[2:])
	case "register":
		cmdErr = app.register(ctx, os.Args[2:])
	case "logout":
		cmdErr = client.Logout()
		if cmdErr == nil {
			fmt.Println("logged out")
		}
	case "summary":
		cmdErr = app.summary(ctx, os.Args[2:])
	case "sales":
		cmdErr = app.sales(ctx, os.Args[2:])
	case "record":
		cmdErr = app.record(ctx, os.Args[2:])
	case "inventory":
		cmdErr = app.inventory(ctx, os.Args[2:])
	case "upsert":
		cmdErr = app.upsert(ctx, os.Args[2:])
	case "analytics":
		cmdErr = app.analytics(ctx, os.Args[2:])
	case "watch":
		cmdErr = app.watch(ctx, os.Args[2:])
	default:
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	if cmdErr != nil {
		if apierror.IsAuth(cmdErr) {
			// credential already purged — tell the user, nothing to retry
			log.Fatal().Msg("session expired or rejected — run 'dashboard login'")
		}
		log.Fatal().Err(cmdErr).Msg("command failed")
	}
}

type app struct {
	cfg    *config.Config
	client *api.Client
	asm    *viewmodel.Assembler
}

func (a *app) login(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	user := fs.String("u", "", "username")
	pass := fs.String("p", "", "password")
	_ = fs.Parse(args)

	if err := a.client.Login(ctx, dto.LoginRequest{Username: *user, Password: *pass}); err != nil {
		return err
	}
	fmt.Println("logged in")
	return nil
}

func (a *app) register(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("register", flag.ExitOnError)
	user := fs.String("u", "", "username")
	pass := fs.String("p", "", "password")
	_ = fs.Parse(args)

	if err := a.client.Register(ctx, dto.RegisterRequest{Username: *user, Password: *pass}); err != nil {
		return err
	}
	fmt.Println("registered — now run 'dashboard login'")
	return nil
}

func periodFlags(fs *flag.FlagSet) func() dto.PeriodQuery {
	filter := fs.String("filter", dto.PeriodDaily, "daily | weekly | monthly")
	start := fs.String("start", "", "start date YYYY-MM-DD")
	end := fs.String("end", "", "end date YYYY-MM-DD")
	return func() dto.PeriodQuery {
		if *start != "" || *end != "" {
			return dto.PeriodQuery{StartDate: *start, EndDate: *end}
		}
		return dto.PeriodQuery{Filter: *filter}
	}
}

func (a *app) summary(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("summary", flag.ExitOnError)
	period := periodFlags(fs)
	_ = fs.Parse(args)

	view, err := a.asm.Dashboard(ctx, period())
	if err != nil {
		return err
	}
	renderDashboard(os.Stdout, view)
	return nil
}

func (a *app) sales(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("sales", flag.ExitOnError)
	page := fs.Int("page", 1, "page number")
	search := fs.String("search", "", "filter by product name")
	_ = fs.Parse(args)

	view, err := a.asm.SalesPage(ctx, dto.ListQuery{Page: *page, Search: *search})
	if err != nil {
		return err
	}
	renderSales(os.Stdout, view)
	return nil
}

func (a *app) record(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("record", flag.ExitOnError)
	product := fs.String("product", "", "product name")
	qty := fs.String("qty", "", "quantity sold")
	price := fs.String("price", "", "selling price per unit")
	cost := fs.String("cost", "", "buying price per unit")
	_ = fs.Parse(args)

	// preview the derived figures the way the form does, zero for anything
	// not yet parseable
	quantity := metrics.Quantity(*qty)
	revenue := metrics.Revenue(quantity, metrics.Amount(*price))
	costTotal := metrics.Cost(quantity, metrics.Amount(*cost))
	fmt.Printf("revenue %s  cost %s  profit %s\n",
		metrics.Display(revenue), metrics.Display(costTotal),
		metrics.Display(metrics.Profit(revenue, costTotal)))

	sale, err := a.client.RecordSale(ctx, dto.RecordSaleRequest{
		Product:      *product,
		Quantity:     quantity,
		SellingPrice: metrics.Amount(*price),
		BuyingPrice:  metrics.Amount(*cost),
	})
	if err != nil {
		return err
	}
	fmt.Printf("sale recorded: %s\n", sale.ID)

	// the summary is stale now — re-render it like the dashboard does after
	// a saleRecorded event
	view, err := a.asm.Dashboard(ctx, dto.PeriodQuery{Filter: dto.PeriodDaily})
	if err != nil {
		return err
	}
	renderDashboard(os.Stdout, view)
	return nil
}

func (a *app) inventory(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("inventory", flag.ExitOnError)
	page := fs.Int("page", 1, "page number")
	sortBy := fs.String("sort", "product", "sort field")
	order := fs.String("order", dto.SortAsc, "asc | desc")
	search := fs.String("search", "", "filter by product name")
	_ = fs.Parse(args)

	view, err := a.asm.InventoryPage(ctx, dto.ListQuery{
		Page: *page, SortBy: *sortBy, SortOrder: *order, Search: *search,
	})
	if err != nil {
		return err
	}
	renderInventory(os.Stdout, view)
	return nil
}

func (a *app) upsert(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("upsert", flag.ExitOnError)
	product := fs.String("product", "", "product name")
	stock := fs.Int("stock", 0, "stock on hand")
	cost := fs.String("cost", "", "buying price per unit")
	threshold := fs.Int("threshold", 10, "low stock threshold")
	_ = fs.Parse(args)

	item, err := a.client.UpsertInventory(ctx, dto.UpsertInventoryRequest{
		Product:           *product,
		Stock:             *stock,
		BuyingPrice:       metrics.Amount(*cost),
		LowStockThreshold: *threshold,
	})
	if err != nil {
		return err
	}
	fmt.Printf("inventory updated: %s — %d units (%s)\n", item.Product, item.Stock, item.Status())
	return nil
}

func (a *app) analytics(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("analytics", flag.ExitOnError)
	sortBy := fs.String("sort", "totalRevenue", "sort field")
	order := fs.String("order", dto.SortDesc, "asc | desc")
	_ = fs.Parse(args)

	view, err := a.asm.Analytics(ctx, dto.SortState{Field: *sortBy, Order: *order})
	if err != nil {
		return err
	}
	renderAnalytics(os.Stdout, view)
	return nil
}

// watch renders the dashboard once, then folds live low-stock events into the
// snapshot until interrupted. The subscription is torn down on every exit
// path, including errors.
func (a *app) watch(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("watch", flag.ExitOnError)
	period := periodFlags(fs)
	_ = fs.Parse(args)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	view, err := a.asm.Dashboard(ctx, period())
	if err != nil {
		return err
	}
	renderDashboard(os.Stdout, view)

	cred := a.client.Session().Current()
	if !cred.Valid() {
		return apierror.Auth("watch", "session expired", nil)
	}
	sub, err := stream.Subscribe(ctx, a.cfg.StreamURL, cred.Token())
	if err != nil {
		if apierror.KindOf(err) == apierror.KindChannel {
			// degraded mode: snapshot stays on screen, just no live updates
			log.Warn().Err(err).Msg("live feed unavailable, snapshot only")
			return nil
		}
		return err
	}
	defer sub.Close()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	snapshot := view.LowStock.Data
	var history []model.LowStockAlert
	for {
		select {
		case alert, open := <-sub.Events():
			if !open {
				// transport gone — Err was already logged once by the stream
				return nil
			}
			history = append(history, alert)
			fmt.Printf("Low stock alert: %s has %d units left\n", alert.Product, alert.Stock)
			renderLowStock(os.Stdout, viewmodel.MergeLowStock(snapshot, history))
		case <-quit:
			log.Info().Msg("shutting down watch…")
			return nil
		}
	}
}
