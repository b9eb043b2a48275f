package subsonic

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// TestPlaylistService_List tests the List method.
func TestPlaylistService_List(t *testing.T) {
	tests := []struct {
		name        string
		response    string
		wantCount   int
		wantErr     bool
		errContains string
	}{
		{
			name: "success",
			response: `{"subsonic-response": {"status": "ok", "playlists": {
				"playlist": [
					{"id": "42", "name": "graplsub_random_albums"},
					{"id": "43", "name": "favourites"}
				]}}}`,
			wantCount: 2,
		},
		{
			name:      "empty playlists block",
			response:  `{"subsonic-response": {"status": "ok", "playlists": {}}}`,
			wantCount: 0,
		},
		{
			name:        "missing playlists wrapper",
			response:    `{"subsonic-response": {"status": "ok"}}`,
			wantErr:     true,
			errContains: "missing a playlists",
		},
		{
			name:        "failed status",
			response:    `{"subsonic-response": {"status": "failed"}}`,
			wantErr:     true,
			errContains: "'ok' status",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if !strings.HasPrefix(r.URL.Path, "/rest/getPlaylists") {
					t.Errorf("unexpected path %s", r.URL.Path)
				}
				w.Write([]byte(tt.response))
			}))
			defer server.Close()

			client := newTestClient(t, server)
			playlists, err := client.Playlists().List(context.Background())

			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("expected error containing %q, got %v", tt.errContains, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(playlists) != tt.wantCount {
				t.Errorf("expected %d playlists, got %d", tt.wantCount, len(playlists))
			}
		})
	}
}

// TestPlaylistService_Delete tests the Delete method.
func TestPlaylistService_Delete(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/rest/deletePlaylist" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if id := r.URL.Query().Get("id"); id != "42" {
			t.Errorf("expected id=42, got %q", id)
		}
		w.Write([]byte(`{"subsonic-response": {"status": "ok"}}`))
	}))
	defer server.Close()

	client := newTestClient(t, server)
	if err := client.Playlists().Delete(context.Background(), "42"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// TestPlaylistService_Create tests the Create method.
func TestPlaylistService_Create(t *testing.T) {
	tests := []struct {
		name     string
		response string
		wantID   string
		wantErr  bool
	}{
		{
			name:     "success",
			response: `{"subsonic-response": {"status": "ok", "playlist": {"id": "99", "name": "graplsub_random_albums"}}}`,
			wantID:   "99",
		},
		{
			name:     "missing playlist payload",
			response: `{"subsonic-response": {"status": "ok"}}`,
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/rest/createPlaylist" {
					t.Errorf("unexpected path %s", r.URL.Path)
				}
				if name := r.URL.Query().Get("name"); name != "graplsub_random_albums" {
					t.Errorf("expected playlist name, got %q", name)
				}
				w.Write([]byte(tt.response))
			}))
			defer server.Close()

			client := newTestClient(t, server)
			created, err := client.Playlists().Create(context.Background(), "graplsub_random_albums")

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
			if created.ID != tt.wantID {
				t.Errorf("expected id %s, got %s", tt.wantID, created.ID)
			}
		})
	}
}

// TestPlaylistService_AddSong tests the AddSong method.
func TestPlaylistService_AddSong(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/rest/updatePlaylist" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		q := r.URL.Query()
		if got := q.Get("playlistId"); got != "99" {
			t.Errorf("expected playlistId=99, got %q", got)
		}
		if got := q.Get("songIdToAdd"); got != "s1" {
			t.Errorf("expected songIdToAdd=s1, got %q", got)
		}
		w.Write([]byte(`{"subsonic-response": {"status": "ok"}}`))
	}))
	defer server.Close()

	client := newTestClient(t, server)
	if err := client.Playlists().AddSong(context.Background(), "99", "s1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
