package cli

import (
	"fmt"
	"net/http"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/alexanderramin/semestra/internal/api"
)

func newServeCmd(app *App) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the multi-user HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.JWTSecret == "" {
				return fmt.Errorf("SEMESTRA_JWT_SECRET must be set to run the server")
			}
			if addr == "" {
				addr = app.HTTPAddr
			}

			logger := zerolog.New(os.Stderr).With().Timestamp().Logger()
			handler := api.New(
				app.Tasks, app.Slots, app.Profiles, app.Courses, app.Schedule,
				app.Users, []byte(app.JWTSecret), app.TokenTTL, logger,
			)

			logger.Info().Str("addr", addr).Msg("listening")
			return http.ListenAndServe(addr, handler.Router())
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (defaults to SEMESTRA_HTTP_ADDR)")
	return cmd
}
