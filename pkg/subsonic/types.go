package subsonic

// Playlist is a playlist as returned by the server. Only the name and ID are
// kept; the contents are never inspected.
type Playlist struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Playlists wraps the playlist list returned by getPlaylists.
type Playlists struct {
	// The server returns an empty "playlists": {} block when there are no
	// playlists, so the inner slice can be absent even when the wrapper is
	// present.
	Playlist []Playlist `json:"playlist"`
}

// Song is a single track. Only the ID is needed.
type Song struct {
	ID string `json:"id"`
}

// Album is an individual album's details as returned by getAlbum.
type Album struct {
	ID string `json:"id"`
	// Song is only populated when the individual album is requested, not
	// when the album appears in a list.
	Song []Song `json:"song"`
}

// AlbumList wraps the album list returned by getAlbumList.
type AlbumList struct {
	// Absent when the server has no albums, same as Playlists.Playlist.
	Album []Album `json:"album"`
}

// Response is the shared response envelope. Every API call returns the same
// shape; at most one of the optional payload fields is present, depending on
// which call was made. Which field a caller may rely on is the contract of
// that call, checked by validate, not a property of the envelope itself.
type Response struct {
	Status    string     `json:"status"`
	Album     *Album     `json:"album"`
	AlbumList *AlbumList `json:"albumList"`
	Playlist  *Playlist  `json:"playlist"`
	Playlists *Playlists `json:"playlists"`
}

// topLevel is the outer wrapper returned in every API response.
type topLevel struct {
	SubsonicResponse Response `json:"subsonic-response"`
}
