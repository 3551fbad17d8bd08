package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/tasktime/task-predictor/shared/logger"
	"github.com/tasktime/task-predictor/shared/mlclient"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

func newApp(out io.Writer) *cli.App {
	return &cli.App{
		Name:      "predict-cli",
		Usage:     "Ask the prediction service how long a task will take",
		Writer:    out,
		ErrWriter: out,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "url",
				Value:   "http://localhost:8000",
				Usage:   "Prediction service base URL",
				EnvVars: []string{"ML_SERVICE_URL"},
			},
			&cli.DurationFlag{
				Name:  "timeout",
				Value: 10 * time.Second,
				Usage: "Request timeout",
			},
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "error",
				Usage:   "Log level (debug, info, warn, error)",
				EnvVars: []string{"LOG_LEVEL"},
			},
		},
		Commands: []*cli.Command{
			predictCommand(),
			healthCommand(),
		},
	}
}

func predictCommand() *cli.Command {
	return &cli.Command{
		Name:  "predict",
		Usage: "Estimate the hours a task will take",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "title",
				Aliases:  []string{"t"},
				Usage:    "Task title",
				Required: true,
			},
			&cli.StringFlag{
				Name:    "description",
				Aliases: []string{"d"},
				Usage:   "Task description",
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Print the raw JSON response",
			},
		},
		Action: func(c *cli.Context) error {
			client, err := newClient(c)
			if err != nil {
				return err
			}

			var description *string
			if c.IsSet("description") {
				d := c.String("description")
				description = &d
			}

			ctx, cancel := context.WithTimeout(c.Context, c.Duration("timeout"))
			defer cancel()

			hours, err := client.PredictTime(ctx, c.String("title"), description)
			if err != nil {
				return fmt.Errorf("prediction failed: %w", err)
			}

			if c.Bool("json") {
				return json.NewEncoder(c.App.Writer).Encode(map[string]float64{"predicted_hours": hours})
			}
			fmt.Fprintf(c.App.Writer, "predicted_hours: %g\n", hours)
			return nil
		},
	}
}

func healthCommand() *cli.Command {
	return &cli.Command{
		Name:  "health",
		Usage: "Check that the prediction service is alive",
		Action: func(c *cli.Context) error {
			client, err := newClient(c)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(c.Context, c.Duration("timeout"))
			defer cancel()

			if err := client.Health(ctx); err != nil {
				return fmt.Errorf("health check failed: %w", err)
			}
			fmt.Fprintln(c.App.Writer, "status: ok")
			return nil
		},
	}
}

func newClient(c *cli.Context) (*mlclient.Client, error) {
	zl, err := logger.New(c.String("log-level"))
	if err != nil {
		return nil, err
	}
	return mlclient.New(
		c.String("url"),
		mlclient.WithHTTPClient(&http.Client{Timeout: c.Duration("timeout")}),
		mlclient.WithLogger(zl.With(zap.String("component", "mlclient"))),
	), nil
}
