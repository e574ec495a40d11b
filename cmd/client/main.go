package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/Netflix/go-env"
	"github.com/gookit/color"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
	"github.com/olekukonko/tablewriter"

	"rukun-live/client"
	"rukun-live/domain"
)

// Exit codes for the client application.
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

// Config defines the client-side environment variables.
type Config struct {
	ServerURL    string        `env:"RUKUN_SERVER_URL,default=http://localhost:8080"`
	UserID       string        `env:"RUKUN_USER_ID,required=true"`
	Role         string        `env:"RUKUN_ROLE,required=true"`
	Block        string        `env:"RUKUN_BLOCK"`
	Token        string        `env:"RUKUN_TOKEN,required=true"`
	PollInterval time.Duration `env:"RUKUN_POLL_INTERVAL,default=30s"`
	LogLevel     string        `env:"LOG_LEVEL,default=info"`
}

func main() {
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Client error: %v", err)
	}
	os.Exit(code)
}

// run wires the bridge, presenter, and refresh coordinator into a terminal
// session that mirrors what the web client does: toasts, a bell, and a
// counters table refreshed on data signals.
func run() (int, error) {
	_ = godotenv.Load()
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}

	log := logs.GetLoggerFromString(config.LogLevel)

	role, err := domain.ParseRole(config.Role)
	if err != nil {
		return exitConfig, err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	bus := client.NewBus()
	wsURL := strings.Replace(config.ServerURL, "http", "ws", 1) + "/ws"
	bridge := client.NewBridge(log, wsURL, bus)
	bridge.SetIdentity(&client.Identity{
		UserID: config.UserID,
		Role:   config.Role,
		Block:  config.Block,
		Token:  config.Token,
	})

	fetcher := client.NewHTTPCountsFetcher(config.ServerURL)
	presenter := client.NewPresenter(log, bus, fetcher, consoleToaster{}, role, config.PollInterval)

	coordinator := client.NewRefreshCoordinator(log, bus)
	defer coordinator.Close()
	detach := coordinator.Register(client.SignalDataUpdate, func(fetchCtx context.Context) {
		counts, err := fetcher.FetchCounts(fetchCtx)
		if err != nil {
			log.Warn("Counters refresh failed", "error", err)
			return
		}
		renderCounts(counts)
	})
	defer detach()

	go func() { _ = bridge.Run(ctx) }()
	go func() { _ = presenter.Run(ctx) }()

	color.Greenln(">>> Connected session for", config.UserID, "(Ctrl+C to quit)...")
	<-ctx.Done()
	bridge.SetIdentity(nil)
	return exitOK, nil
}

// consoleToaster renders toasts on the terminal; the notification sound is
// the terminal bell.
type consoleToaster struct{}

func (consoleToaster) Toast(title, message string) {
	color.New(color.FgBlack, color.BgYellow).Printf(" %s ", title)
	fmt.Printf(" %s\n", message)
}

func (consoleToaster) PlaySound() {
	fmt.Print("\a")
}

func renderCounts(counts client.Counts) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Postingan", "Aduan", "Pembayaran Menunggu"})
	table.Append([]string{
		fmt.Sprintf("%d", counts.Posts),
		fmt.Sprintf("%d", counts.Aduan),
		fmt.Sprintf("%d", counts.PaymentsAwaiting),
	})
	table.Render()
}
