package subsonic

import (
	"context"
	"strconv"
)

// AlbumService provides album operations for the Subsonic API.
type AlbumService struct {
	client *Client
}

// RandomList retrieves a random selection of up to size albums.
//
// The albums in the returned slice carry IDs only; fetch each one with Get
// to see its songs. An empty slice means the library has no albums and is
// not an error.
//
// Example:
//
//	albums, err := client.Albums().RandomList(ctx, 100)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, a := range albums {
//	    full, err := client.Albums().Get(ctx, a.ID)
//	    ...
//	}
func (s *AlbumService) RandomList(ctx context.Context, size int) ([]Album, error) {
	resp, raw, err := s.client.call(ctx, "getAlbumList", []param{
		{"type", "random"},
		{"size", strconv.Itoa(size)},
	})
	if err != nil {
		return nil, err
	}

	if err := validate(resp, raw, PayloadAlbumList); err != nil {
		return nil, err
	}

	// Safe to dereference AlbumList as validate checked it, but the inner
	// slice is still absent when there are no albums.
	return resp.AlbumList.Album, nil
}

// Get retrieves a single album with its song list.
//
// Album.Song can still be empty for an album with no tracks.
func (s *AlbumService) Get(ctx context.Context, id string) (*Album, error) {
	resp, raw, err := s.client.call(ctx, "getAlbum", []param{{"id", id}})
	if err != nil {
		return nil, err
	}

	if err := validate(resp, raw, PayloadAlbum); err != nil {
		return nil, err
	}

	return resp.Album, nil
}
