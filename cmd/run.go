package cmd

import (
	"context"
	"fmt"

	"github.com/jfmyers9/graplsub/internal/config"
	"github.com/jfmyers9/graplsub/internal/sampler"
	"github.com/jfmyers9/graplsub/pkg/subsonic"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Recreate the playlist and fill it with random albums",
	Long: `Run the full workflow once:

1. Delete the configured playlist if it already exists
2. Create it fresh
3. Pick a random selection of albums
4. Append every song from those albums to the playlist

Every API call is a single attempt and the first failure anywhere aborts
the whole run with exit code 1. If the delete succeeds and the create then
fails, the old playlist is gone; rerun once the server is healthy.`,
	RunE:          runRun,
	SilenceUsage:  true,
	SilenceErrors: false,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	logger := setupLogger(logLevel)

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	cfg.Normalize(logger)

	client, err := newClient(cfg, logger)
	if err != nil {
		return err
	}

	logger.Info().
		Str("server", cfg.BaseURL).
		Str("playlist", cfg.PlaylistName).
		Int("num_albums", cfg.NumAlbums).
		Msg("Starting run")

	s := sampler.New(client, logger)
	ctx := context.Background()

	playlistID, err := s.Recreate(ctx, cfg.PlaylistName)
	if err != nil {
		return err
	}

	return s.Populate(ctx, playlistID, cfg.NumAlbums)
}

// newClient builds the API client from configuration.
func newClient(cfg *config.Config, logger zerolog.Logger) (*subsonic.Client, error) {
	client, err := subsonic.NewClient(subsonic.Config{
		BaseURL:  cfg.BaseURL,
		Username: cfg.User,
		Password: cfg.Pass,
		Logger:   sdkLogger{logger},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}
	return client, nil
}

// sdkLogger adapts zerolog to the subsonic.Logger interface.
type sdkLogger struct {
	logger zerolog.Logger
}

func (l sdkLogger) Debugf(format string, args ...interface{}) {
	l.logger.Debug().Msgf(format, args...)
}
