package subsonic

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

// TestAlbumService_RandomList tests the RandomList method.
func TestAlbumService_RandomList(t *testing.T) {
	tests := []struct {
		name      string
		size      int
		response  string
		wantCount int
		wantErr   bool
	}{
		{
			name: "success",
			size: 2,
			response: `{"subsonic-response": {"status": "ok", "albumList": {
				"album": [{"id": "a1"}, {"id": "a2"}]}}}`,
			wantCount: 2,
		},
		{
			name:      "empty library",
			size:      100,
			response:  `{"subsonic-response": {"status": "ok", "albumList": {}}}`,
			wantCount: 0,
		},
		{
			name:     "missing albumList wrapper",
			size:     100,
			response: `{"subsonic-response": {"status": "ok"}}`,
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/rest/getAlbumList" {
					t.Errorf("unexpected path %s", r.URL.Path)
				}
				q := r.URL.Query()
				if got := q.Get("type"); got != "random" {
					t.Errorf("expected type=random, got %q", got)
				}
				if got := q.Get("size"); got == "" {
					t.Error("expected size parameter")
				}
				w.Write([]byte(tt.response))
			}))
			defer server.Close()

			client := newTestClient(t, server)
			albums, err := client.Albums().RandomList(context.Background(), tt.size)

			if tt.wantErr {
				var missing *MissingPayloadError
				if !errors.As(err, &missing) {
					t.Fatalf("expected MissingPayloadError, got %v", err)
				}
				if missing.Kind != PayloadAlbumList {
					t.Errorf("expected albumList kind, got %v", missing.Kind)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(albums) != tt.wantCount {
				t.Errorf("expected %d albums, got %d", tt.wantCount, len(albums))
			}
		})
	}
}

// TestAlbumService_Get tests the Get method.
func TestAlbumService_Get(t *testing.T) {
	tests := []struct {
		name      string
		response  string
		wantSongs int
		wantErr   bool
	}{
		{
			name: "album with songs",
			response: `{"subsonic-response": {"status": "ok", "album": {
				"id": "a1", "song": [{"id": "s1"}, {"id": "s2"}]}}}`,
			wantSongs: 2,
		},
		{
			name:      "album with no songs",
			response:  `{"subsonic-response": {"status": "ok", "album": {"id": "a1"}}}`,
			wantSongs: 0,
		},
		{
			name:     "missing album payload",
			response: `{"subsonic-response": {"status": "ok"}}`,
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/rest/getAlbum" {
					t.Errorf("unexpected path %s", r.URL.Path)
				}
				if id := r.URL.Query().Get("id"); id != "a1" {
					t.Errorf("expected id=a1, got %q", id)
				}
				w.Write([]byte(tt.response))
			}))
			defer server.Close()

			client := newTestClient(t, server)
			album, err := client.Albums().Get(context.Background(), "a1")

			if tt.wantErr {
				var missing *MissingPayloadError
				if !errors.As(err, &missing) {
					t.Fatalf("expected MissingPayloadError, got %v", err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if album.ID != "a1" {
				t.Errorf("expected album a1, got %s", album.ID)
			}
			if len(album.Song) != tt.wantSongs {
				t.Errorf("expected %d songs, got %d", tt.wantSongs, len(album.Song))
			}
		})
	}
}

// TestClientPing tests the Ping method.
func TestClientPing(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/rest/ping" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Write([]byte(`{"subsonic-response": {"status": "ok"}}`))
	}))
	defer server.Close()

	client := newTestClient(t, server)
	if err := client.Ping(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
