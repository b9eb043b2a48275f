// Package subsonic provides a client library for the Subsonic REST API.
//
// # Overview
//
// This package implements a Go client for the subset of the Subsonic API
// needed for playlist and album operations: listing, creating and deleting
// playlists, fetching random album selections, fetching individual albums,
// and appending songs to a playlist. It provides a type-safe API with
// context support and structured errors.
//
// # Quick Start
//
// Create a client with your server credentials:
//
//	import "github.com/jfmyers9/graplsub/pkg/subsonic"
//
//	client, err := subsonic.NewClient(subsonic.Config{
//	    BaseURL:  "http://localhost:4533",
//	    Username: "admin",
//	    Password: "secret",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Authentication
//
// Subsonic uses salted token authentication: the client generates a random
// 3 byte salt per run, hex-encodes it, and sends md5(password + salt)
// together with the salt on every request. The plaintext password never
// crosses the wire. NewClient derives the salt and token once; they are
// valid for the lifetime of the client.
//
// # Operations
//
// Operations are grouped into services:
//
//	playlists, err := client.Playlists().List(ctx)
//	err = client.Playlists().Delete(ctx, "42")
//	created, err := client.Playlists().Create(ctx, "my-playlist")
//	err = client.Playlists().AddSong(ctx, created.ID, songID)
//
//	albums, err := client.Albums().RandomList(ctx, 100)
//	album, err := client.Albums().Get(ctx, albums[0].ID)
//
// # Error Handling
//
// Failures are reported as typed errors usable with errors.As:
//
//   - [NetworkError]: connection, DNS, or timeout failure
//   - [NotFoundError]: HTTP 404, reported URL has the query (auth) stripped
//   - [HTTPError]: any other non-2xx status
//   - [MalformedResponseError]: HTTP 200 body that did not decode
//   - [NotOKError]: envelope status other than "ok"
//   - [MissingPayloadError]: "ok" envelope missing the expected payload
//
// There is no retry logic: every call is a single attempt and the first
// outcome is returned.
//
// # Context Support
//
// All API methods accept a context.Context. Each request is additionally
// bounded by a 5 second per-request timeout, independent of the client-wide
// settings in [NewHTTPClient].
//
// # Subsonic API Documentation
//
// For more information about the Subsonic API:
// http://www.subsonic.org/pages/api.jsp
package subsonic
