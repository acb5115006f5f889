// Package upload enforces the per-role folder allow-list for image
// uploads and delegates credential signing to an external collaborator.
package upload

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/pawlig/pawlig/internal/auth"
)

// roleFolders maps each role to the upload folders it may write.
var roleFolders = map[auth.Role][]string{
	auth.RoleAdopter: {"avatars"},
	auth.RoleShelter: {"avatars", "shelters", "pets"},
	auth.RoleVendor:  {"avatars", "vendors", "products"},
	auth.RoleAdmin:   {"avatars", "shelters", "pets", "vendors", "products", "announcements"},
}

// FolderAllowed reports whether the role may upload into folder.
func FolderAllowed(role auth.Role, folder string) bool {
	for _, f := range roleFolders[role] {
		if f == folder {
			return true
		}
	}
	return false
}

// Credential is a time-boxed permission to upload into one folder.
type Credential struct {
	Folder    string    `json:"folder"`
	Signature string    `json:"signature"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Signer produces upload credentials. The production implementation
// talks to the image host; it is out of scope here.
type Signer interface {
	Sign(ctx context.Context, folder string, ttl time.Duration) (Credential, error)
}

// HMACSigner is a local deterministic Signer for development and
// tests.
type HMACSigner struct {
	key []byte
	now func() time.Time
}

func NewHMACSigner(key string) *HMACSigner {
	return &HMACSigner{key: []byte(key), now: time.Now}
}

func (s *HMACSigner) Sign(_ context.Context, folder string, ttl time.Duration) (Credential, error) {
	expires := s.now().Add(ttl).UTC()
	m := hmac.New(sha256.New, s.key)
	fmt.Fprintf(m, "%s:%d", folder, expires.Unix())
	return Credential{
		Folder:    folder,
		Signature: hex.EncodeToString(m.Sum(nil)),
		ExpiresAt: expires,
	}, nil
}
