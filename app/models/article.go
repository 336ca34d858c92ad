package models

import "time"

// ArticleStatus is the moderation state of a submitted article.
type ArticleStatus string

const (
	StatusReview   ArticleStatus = "review"
	StatusAccepted ArticleStatus = "accepted"
	StatusArchived ArticleStatus = "archived"
	StatusDeleted  ArticleStatus = "deleted"
)

// ArticleStatuses lists every valid moderation state.
var ArticleStatuses = []ArticleStatus{
	StatusReview,
	StatusAccepted,
	StatusArchived,
	StatusDeleted,
}

// ValidStatus reports whether s names a known moderation state.
func ValidStatus(s string) bool {
	for _, st := range ArticleStatuses {
		if string(st) == s {
			return true
		}
	}
	return false
}

// Article is a community blog submission. New submissions always enter
// moderation in the review state regardless of what the client sends.
type Article struct {
	ID               string        `bson:"_id,omitempty" json:"id"`
	Title            string        `bson:"title"            json:"title"`
	Author           string        `bson:"author"           json:"author"`
	ShortDescription string        `bson:"shortDescription" json:"shortDescription"`
	Link             string        `bson:"link"             json:"link"`
	Date             time.Time     `bson:"date"             json:"-"`
	Status           ArticleStatus `bson:"status"           json:"status"`
	CreatedAt        time.Time     `bson:"createdAt"        json:"-"`
	UpdatedAt        time.Time     `bson:"updatedAt"        json:"-"`
}

// ArticleView is the API shape of an article, with wire timestamps.
type ArticleView struct {
	Article
	Date      Timestamp `json:"date"`
	CreatedAt Timestamp `json:"createdAt"`
	UpdatedAt Timestamp `json:"updatedAt"`
}

// View converts a to its API shape.
func (a Article) View() ArticleView {
	return ArticleView{
		Article:   a,
		Date:      NewTimestamp(a.Date),
		CreatedAt: NewTimestamp(a.CreatedAt),
		UpdatedAt: NewTimestamp(a.UpdatedAt),
	}
}

// ArticleInput is the payload accepted from the submission form.
// Status is intentionally absent: submitters cannot pick one.
type ArticleInput struct {
	Title            string `json:"title"            validate:"required,min=5"`
	Author           string `json:"author"           validate:"required,min=2"`
	ShortDescription string `json:"shortDescription" validate:"required,min=20"`
	Link             string `json:"link"             validate:"required,url"`
	Date             string `json:"date"             validate:"required,date"`
}
