package cmd

import (
	"context"
	"fmt"

	"github.com/jfmyers9/graplsub/internal/config"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"
)

// playlistsCmd represents the playlists command
var playlistsCmd = &cobra.Command{
	Use:   "playlists",
	Short: "List the playlists on the server",
	Long: `Query the server and print its playlists, one per line, as an
aligned ID / name table. Read-only: nothing is created or deleted.

Useful for checking what a run left behind, or that credentials work at
all before letting 'run' loose on the library.`,
	RunE:          runPlaylists,
	SilenceUsage:  true,
	SilenceErrors: false,
}

var playlistsNameWidth int

func init() {
	rootCmd.AddCommand(playlistsCmd)

	playlistsCmd.Flags().IntVarP(&playlistsNameWidth, "width", "w", 0, "Fixed name column width (0=unpadded)")
}

func runPlaylists(cmd *cobra.Command, args []string) error {
	logger := setupLogger(logLevel)

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	client, err := newClient(cfg, logger)
	if err != nil {
		return err
	}

	ctx := context.Background()

	if err := client.Ping(ctx); err != nil {
		return fmt.Errorf("server check failed: %w", err)
	}

	playlists, err := client.Playlists().List(ctx)
	if err != nil {
		return err
	}

	if len(playlists) == 0 {
		logger.Info().Msg("No playlists on server")
		return nil
	}

	// Pad IDs so the name column lines up.
	idWidth := 0
	for _, p := range playlists {
		if w := runewidth.StringWidth(p.ID); w > idWidth {
			idWidth = w
		}
	}

	for _, p := range playlists {
		name := p.Name
		if playlistsNameWidth > 0 {
			name = padToWidth(name, playlistsNameWidth)
		}
		fmt.Printf("%s  %s\n", runewidth.FillRight(p.ID, idWidth), name)
	}

	return nil
}

// padToWidth pads or truncates text to a fixed display width.
// Width is measured in display columns, accounting for Unicode characters.
// If text is longer than width, truncates with "..." suffix.
// If text is shorter than width, pads with spaces.
func padToWidth(text string, width int) string {
	if width <= 0 {
		return text // no padding requested
	}

	currentWidth := runewidth.StringWidth(text)

	if currentWidth > width {
		ellipsis := "..."
		ellipsisWidth := runewidth.StringWidth(ellipsis)

		if width <= ellipsisWidth {
			return runewidth.Truncate(ellipsis, width, "")
		}

		truncated := runewidth.Truncate(text, width-ellipsisWidth, "")
		return runewidth.FillRight(truncated+ellipsis, width)
	}

	return runewidth.FillRight(text, width)
}
