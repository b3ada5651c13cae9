package form

import (
	"context"

	"github.com/google/uuid"
)

// Store is the persistence boundary for applications.
//
// CreateForm must execute the duplicate check, examination-number
// allocation, form insert and subject inserts as one atomic unit: either
// the whole application lands or none of it does, and two concurrent
// submissions can never share an examination number or a user.
type Store interface {
	FindUserID(ctx context.Context, userUUID uuid.UUID) (int64, error)
	ExistsByUser(ctx context.Context, userID int64) (bool, error)
	CreateForm(ctx context.Context, bandStart int64, rec *Record, subjects []GradedSubject) (int64, error)
	GetByUser(ctx context.Context, userID int64) (*Record, []GradedSubject, error)
	ListSummaries(ctx context.Context) ([]Summary, error)
}
