package tui

import "github.com/tagsurf/tagsurf-terminal/pkg/models"

// TagSelectedMsg notifies the host view that the user picked a tag.
// Path is the tag URL reduced to a path-only identifier; Name is the
// tag's display label. Emitted at most once per selection and never on
// a failed load.
type TagSelectedMsg struct {
	Path string
	Name string
}

// StatusMsg updates the status bar text.
type StatusMsg string

// tagsLoadedMsg delivers a successfully fetched catalog. seq identifies
// the load request it answers; responses from superseded requests are
// discarded.
type tagsLoadedMsg struct {
	seq  int
	tags models.Catalog
}

// tagsLoadFailedMsg reports a failed catalog load for request seq.
type tagsLoadFailedMsg struct {
	seq int
	err error
}
