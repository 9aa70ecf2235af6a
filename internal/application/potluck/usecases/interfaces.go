package usecases

import "context"

// TransactionManager runs fn in a transaction carried by ctx.
type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// TextRenderer renders organizer descriptions and strips markup from attendee text.
type TextRenderer interface {
	ToHTMLSanitized(markdown string) (string, error)
	StripTags(text string) string
}
