// Package sampler sequences the Subsonic API calls that build a random-album
// playlist: recreate the target playlist, pick random albums, and append
// every song on them.
package sampler

import (
	"context"
	"fmt"

	"github.com/jfmyers9/graplsub/pkg/subsonic"
	"github.com/rs/zerolog"
)

// Pipeline step names used in StepError.
const (
	StepListPlaylists  = "list-playlists"
	StepDeletePlaylist = "delete-playlist"
	StepCreatePlaylist = "create-playlist"
	StepRandomAlbums   = "random-album-list"
	StepGetAlbum       = "get-album"
	StepAddSong        = "add-song"
)

// StepError wraps a transport or validation error with the pipeline step
// that produced it.
type StepError struct {
	Step string
	Err  error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("%s: %v", e.Step, e.Err)
}

// Unwrap returns the wrapped error.
func (e *StepError) Unwrap() error {
	return e.Err
}

// Sampler drives the playlist-building workflow against a single server.
type Sampler struct {
	client *subsonic.Client
	logger zerolog.Logger
}

// New creates a Sampler using the given client.
func New(client *subsonic.Client, logger zerolog.Logger) *Sampler {
	return &Sampler{
		client: client,
		logger: logger,
	}
}

// Recreate ensures a fresh, empty playlist with the given name exists and
// returns its ID.
//
// It lists the existing playlists, deletes the first one whose name matches
// (first match wins; a missing match is the normal create-fresh path, not an
// error), then creates a new playlist with that name. There is no rollback:
// if the delete succeeds and the create fails, the old playlist is gone and
// the error is returned as-is.
func (s *Sampler) Recreate(ctx context.Context, name string) (string, error) {
	playlists, err := s.client.Playlists().List(ctx)
	if err != nil {
		return "", &StepError{Step: StepListPlaylists, Err: err}
	}

	var existingID string
	for _, p := range playlists {
		if p.Name == name {
			existingID = p.ID
			break
		}
	}

	if existingID != "" {
		// Our playlist did already exist, so delete it.
		s.logger.Info().Str("id", existingID).Str("name", name).Msg("Deleting existing playlist")
		if err := s.client.Playlists().Delete(ctx, existingID); err != nil {
			return "", &StepError{Step: StepDeletePlaylist, Err: err}
		}
	}

	created, err := s.client.Playlists().Create(ctx, name)
	if err != nil {
		return "", &StepError{Step: StepCreatePlaylist, Err: err}
	}

	s.logger.Info().Str("id", created.ID).Str("name", name).Msg("Created playlist")
	return created.ID, nil
}

// Populate fills the playlist with every song from a random selection of up
// to size albums.
//
// Albums are fetched one at a time and songs appended one call each, in
// order. The first error anywhere aborts the entire run; remaining albums
// and songs are never fetched. An album list or song list that comes back
// empty is fine and simply contributes nothing.
func (s *Sampler) Populate(ctx context.Context, playlistID string, size int) error {
	albums, err := s.client.Albums().RandomList(ctx, size)
	if err != nil {
		return &StepError{Step: StepRandomAlbums, Err: err}
	}

	s.logger.Info().Int("albums", len(albums)).Msg("Picked random albums")

	songs := 0
	for _, a := range albums {
		album, err := s.client.Albums().Get(ctx, a.ID)
		if err != nil {
			return &StepError{Step: StepGetAlbum, Err: err}
		}

		s.logger.Info().Str("album", album.ID).Int("songs", len(album.Song)).Msg("Adding album")

		for _, song := range album.Song {
			if err := s.client.Playlists().AddSong(ctx, playlistID, song.ID); err != nil {
				return &StepError{Step: StepAddSong, Err: err}
			}
			s.logger.Debug().Str("song", song.ID).Msg("Added song")
			songs++
		}
	}

	s.logger.Info().Int("albums", len(albums)).Int("songs", songs).Msg("Playlist populated")
	return nil
}
