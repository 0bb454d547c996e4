package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/arbiterhq/arbiter/internal/setup"
	"github.com/arbiterhq/arbiter/internal/setup/telemetry"
	"github.com/arbiterhq/arbiter/internal/worker/expiry"
	"github.com/urfave/cli/v3"
)

// WorkerLogDir specifies where worker log files are stored.
const WorkerLogDir = "logs/worker_logs"

func main() {
	if err := run(); err != nil {
		log.Printf("Error: %v", err)
		os.Exit(1)
	}
}

func run() error {
	app := &cli.Command{
		Name:  "worker",
		Usage: "Start the arbiter background workers",
		Commands: []*cli.Command{
			{
				Name:  "expiry",
				Usage: "Start the sanction expiry worker",
				Action: func(ctx context.Context, _ *cli.Command) error {
					runExpiryWorker(ctx)
					return nil
				},
			},
		},
	}

	return app.Run(context.Background(), os.Args)
}

// runExpiryWorker boots the application and runs the expiry sweep loop until
// interrupted.
func runExpiryWorker(ctx context.Context) {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := setup.InitializeApp(ctx, telemetry.ServiceWorker, WorkerLogDir, setup.Options{})
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}
	defer app.Cleanup(ctx)

	if delay := app.Config.Worker.StartupDelay; delay > 0 {
		time.Sleep(time.Duration(delay) * time.Millisecond)
	}

	worker := expiry.New(app, app.LogManager.GetNamedLogger("expiry_worker"))
	worker.Start(ctx)
}
