package subsonic

// PayloadKind names the payload substructure a call expects in the response
// envelope. Calls that return only the bare envelope (deletePlaylist,
// updatePlaylist) expect PayloadNone.
type PayloadKind int

const (
	PayloadNone PayloadKind = iota
	PayloadAlbum
	PayloadAlbumList
	PayloadPlaylist
	PayloadPlaylists
)

// String describes the expected payload for error messages.
func (k PayloadKind) String() string {
	switch k {
	case PayloadAlbum:
		return "an album"
	case PayloadAlbumList:
		return "an albumList"
	case PayloadPlaylist:
		return "a playlist"
	case PayloadPlaylists:
		return "a playlists"
	default:
		return "no payload"
	}
}

const statusOK = "ok"

// validate applies the checks common to every response, then the
// call-specific payload presence check.
//
// The status must be exactly "ok". When kind is not PayloadNone, the named
// payload pointer must be non-nil; an empty inner sequence inside a present
// wrapper is valid (the server sends an empty block rather than omitting
// it when there are zero entries). Sequence contents are never inspected
// here, that is the caller's job.
func validate(resp *Response, raw string, kind PayloadKind) error {
	if resp.Status != statusOK {
		return &NotOKError{Body: raw}
	}

	var present bool
	switch kind {
	case PayloadNone:
		return nil
	case PayloadAlbum:
		present = resp.Album != nil
	case PayloadAlbumList:
		present = resp.AlbumList != nil
	case PayloadPlaylist:
		present = resp.Playlist != nil
	case PayloadPlaylists:
		present = resp.Playlists != nil
	}

	if !present {
		return &MissingPayloadError{Kind: kind, Body: raw}
	}

	return nil
}
