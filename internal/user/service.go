package user

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type Service struct {
	store Store
}

func NewService(store Store) *Service { return &Service{store: store} }

// SignUp registers an applicant account. Phone numbers are the login
// identity and must be unique.
func (s *Service) SignUp(ctx context.Context, req SignUpRequest) error {
	exists, err := s.store.ExistsByPhone(ctx, req.PhoneNumber)
	if err != nil {
		return fmt.Errorf("check phone: %w", err)
	}
	if exists {
		return ErrPhoneTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	u := &User{
		UUID:         uuid.New(),
		PhoneNumber:  req.PhoneNumber,
		Name:         req.Name,
		PasswordHash: string(hash),
		Authority:    AuthorityUser,
	}
	return s.store.Create(ctx, u)
}

// Get returns the public view of an account.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (Response, error) {
	u, err := s.store.FindByUUID(ctx, id)
	if err != nil {
		return Response{}, err
	}
	return Response{PhoneNumber: u.PhoneNumber, Name: u.Name, Authority: u.Authority}, nil
}

// Authenticate verifies phone/password and returns the account.
func (s *Service) Authenticate(ctx context.Context, phone, password string) (*User, error) {
	u, err := s.store.FindByPhone(ctx, phone)
	if err != nil {
		if err == ErrNotFound {
			return nil, ErrBadPassword
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return nil, ErrBadPassword
	}
	return u, nil
}

// Delete removes the account; forms cascade with it.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.store.Delete(ctx, id)
}
