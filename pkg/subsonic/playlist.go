package subsonic

import (
	"context"
)

// PlaylistService provides playlist operations for the Subsonic API.
type PlaylistService struct {
	client *Client
}

// List retrieves all playlists visible to the authenticated user.
//
// The returned slice is empty (not an error) when the server has no
// playlists. The server returns everything in one response; there is no
// pagination.
//
// Example:
//
//	playlists, err := client.Playlists().List(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, p := range playlists {
//	    fmt.Println(p.ID, p.Name)
//	}
func (s *PlaylistService) List(ctx context.Context) ([]Playlist, error) {
	resp, raw, err := s.client.call(ctx, "getPlaylists", nil)
	if err != nil {
		return nil, err
	}

	if err := validate(resp, raw, PayloadPlaylists); err != nil {
		return nil, err
	}

	// Safe to dereference Playlists as validate checked it, but the inner
	// slice is still absent when there are no playlists.
	return resp.Playlists.Playlist, nil
}

// Delete removes the playlist with the given ID.
func (s *PlaylistService) Delete(ctx context.Context, id string) error {
	resp, raw, err := s.client.call(ctx, "deletePlaylist", []param{{"id", id}})
	if err != nil {
		return err
	}

	// An empty response is expected here so just do the basic checks.
	return validate(resp, raw, PayloadNone)
}

// Create creates a new empty playlist with the given name and returns it.
func (s *PlaylistService) Create(ctx context.Context, name string) (*Playlist, error) {
	resp, raw, err := s.client.call(ctx, "createPlaylist", []param{{"name", name}})
	if err != nil {
		return nil, err
	}

	if err := validate(resp, raw, PayloadPlaylist); err != nil {
		return nil, err
	}

	return resp.Playlist, nil
}

// AddSong appends a single song to an existing playlist via updatePlaylist.
func (s *PlaylistService) AddSong(ctx context.Context, playlistID, songID string) error {
	resp, raw, err := s.client.call(ctx, "updatePlaylist", []param{
		{"playlistId", playlistID},
		{"songIdToAdd", songID},
	})
	if err != nil {
		return err
	}

	// An empty response is expected here so just do the basic checks.
	return validate(resp, raw, PayloadNone)
}
