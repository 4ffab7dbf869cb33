// Package users implements the Identity Store: the table of user records
// that lives for the whole process. There is no deletion path.
package users

import (
	"context"

	"github.com/dmitrijs2005/skillswap/internal/server/models"
)

// Repository stores users in insertion order.
//
// Add assigns ID = count+1 and fails with common.ErrorAlreadyExists when the
// email is taken. Lookups return common.ErrorNotFound when nothing matches.
// All returned users are copies; mutate them and call Update to persist.
type Repository interface {
	Add(ctx context.Context, user *models.User) (*models.User, error)
	FindByCredentials(ctx context.Context, email, password string) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id int64) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
	List(ctx context.Context) ([]*models.User, error)
}
