package domain

import (
	"errors"
	"time"
)

// Column limits for the ads table.
const (
	MaxNameLen        = 256
	MaxDescriptionLen = 1024
	MaxOwnerLen       = 64
)

// ErrAdNotFound is returned when an id does not resolve to a stored ad.
var ErrAdNotFound = errors.New("ad does not exist")

// Ad represents a classified listing. Owner always holds a one-way hash of
// the submitted value, never the plaintext.
type Ad struct {
	ID           int64
	Name         string
	Description  string
	CreationTime time.Time // set by storage on insert
	Owner        string
}

// AdPatch is a partial update. Nil fields are left untouched.
type AdPatch struct {
	Name        *string
	Description *string
	Owner       *string
}

// Empty reports whether the patch would change nothing.
func (p AdPatch) Empty() bool {
	return p.Name == nil && p.Description == nil && p.Owner == nil
}

// Apply copies the present fields onto ad. ID and CreationTime are never
// touched.
func (p AdPatch) Apply(ad *Ad) {
	if p.Name != nil {
		ad.Name = *p.Name
	}
	if p.Description != nil {
		ad.Description = *p.Description
	}
	if p.Owner != nil {
		ad.Owner = *p.Owner
	}
}
