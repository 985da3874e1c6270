package models

import "time"

// Blog is a post. AssignedEditorID is nil until an editor is assigned.
type Blog struct {
	BlogID           int64     `json:"blogId"`
	Title            string    `json:"title"`
	Content          string    `json:"content"`
	AssignedEditorID *int64    `json:"assignedEditorId,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
}

// HasEditor reports whether the one-way Unassigned -> Assigned transition
// already happened.
func (b *Blog) HasEditor() bool {
	return b.AssignedEditorID != nil
}

// BlogPatch carries an edit. A nil or empty field means "leave unchanged":
// empty strings never erase stored text.
type BlogPatch struct {
	Title   *string
	Content *string
}

func (p BlogPatch) NewTitle() (string, bool) {
	return present(p.Title)
}

func (p BlogPatch) NewContent() (string, bool) {
	return present(p.Content)
}

// Empty is true when neither field would change anything.
func (p BlogPatch) Empty() bool {
	_, t := p.NewTitle()
	_, c := p.NewContent()
	return !t && !c
}

// Apply merges the patch into b.
func (p BlogPatch) Apply(b *Blog) {
	if v, ok := p.NewTitle(); ok {
		b.Title = v
	}
	if v, ok := p.NewContent(); ok {
		b.Content = v
	}
}

func present(s *string) (string, bool) {
	if s == nil || *s == "" {
		return "", false
	}
	return *s, true
}
