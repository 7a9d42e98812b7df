package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/charlinto/MedRemApp/internal/infra/handler"
	"github.com/charlinto/MedRemApp/internal/observability/logging"
)

var dispatchCmd = &cobra.Command{
	Use:   "dispatch",
	Short: "Run a single dispatch tick and print its report",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		c, err := bootstrap(ctx)
		if err != nil {
			return err
		}

		defer func() {
			if err := c.close(context.Background()); err != nil {
				slog.Warn("failed to release resources", "error", err)
			}
		}()

		ctx = logging.WithModule(ctx, logging.ModuleDispatch)
		ctx = logging.WithRequestID(ctx, logging.ValidateAndExtractRequestID(""))

		report, err := c.dispatch.RunTick(ctx)
		if err != nil {
			return fmt.Errorf("dispatch tick failed: %w", err)
		}

		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")

		return encoder.Encode(handler.FromDispatchReport(report))
	},
}
