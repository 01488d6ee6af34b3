package service

import "context"

// AvatarStorage stores profile images in a blob bucket and serves them by
// public URL. Paths follow the {userID}_{timestamp}.{ext} convention.
type AvatarStorage interface {
	// Upload writes the image bytes and returns the public URL.
	Upload(ctx context.Context, path string, data []byte, contentType string) (string, error)

	// Remove deletes the object behind a previously returned URL.
	// Missing objects are not an error.
	Remove(ctx context.Context, publicURL string) error
}
