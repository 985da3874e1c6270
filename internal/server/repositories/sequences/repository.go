// Package sequences allocates sequential integer ids for users, blogs and
// comments. Next must run in the same transaction as the insert that uses
// the id: the row lock it takes serialises concurrent creators.
package sequences

import "context"

const (
	Users    = "users"
	Blogs    = "blogs"
	Comments = "comments"
)

type Repository interface {
	Next(ctx context.Context, name string) (int64, error)
}
