package models

import (
	"time"

	"github.com/gofrs/uuid"
)

type Comment struct {
	ID        uuid.UUID `json:"id"`
	PostID    uuid.UUID `json:"post_id"`
	ParentID  uuid.UUID `json:"parent_id,omitempty"`
	Author    string    `json:"author"`
	Text      string    `json:"text"`
	Published time.Time `json:"published"`
}

// FilterRequest is the body of the filter endpoints. Empty optional fields
// are not sent to PurgoMalum.
type FilterRequest struct {
	Text     string `json:"text"`
	Add      string `json:"add,omitempty"`
	FillText string `json:"fill_text,omitempty"`
	FillChar string `json:"fill_char,omitempty"`
}

type CheckResult struct {
	ContainsProfanity bool `json:"contains_profanity"`
}

type FilterResult struct {
	Result string `json:"result"`
}
