package user

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type fakeStore struct {
	byPhone map[string]*User
	created *User
	deleted []uuid.UUID
}

func newFakeStore() *fakeStore {
	return &fakeStore{byPhone: map[string]*User{}}
}

func (f *fakeStore) Create(ctx context.Context, u *User) error {
	u.ID = int64(len(f.byPhone) + 1)
	f.byPhone[u.PhoneNumber] = u
	f.created = u
	return nil
}

func (f *fakeStore) FindByPhone(ctx context.Context, phone string) (*User, error) {
	u, ok := f.byPhone[phone]
	if !ok {
		return nil, ErrNotFound
	}
	return u, nil
}

func (f *fakeStore) FindByUUID(ctx context.Context, id uuid.UUID) (*User, error) {
	for _, u := range f.byPhone {
		if u.UUID == id {
			return u, nil
		}
	}
	return nil, ErrNotFound
}

func (f *fakeStore) ExistsByPhone(ctx context.Context, phone string) (bool, error) {
	_, ok := f.byPhone[phone]
	return ok, nil
}

func (f *fakeStore) Delete(ctx context.Context, id uuid.UUID) error {
	f.deleted = append(f.deleted, id)
	return nil
}

func TestSignUpHashesPasswordAndAssignsUserAuthority(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store)

	req := SignUpRequest{PhoneNumber: "01012345678", Name: "김마루", Password: "secret-pw"}
	if err := svc.SignUp(context.Background(), req); err != nil {
		t.Fatalf("SignUp: %v", err)
	}

	u := store.created
	if u == nil {
		t.Fatal("no user created")
	}
	if u.Authority != AuthorityUser {
		t.Fatalf("authority = %s, want USER", u.Authority)
	}
	if u.UUID == uuid.Nil {
		t.Fatal("uuid not assigned")
	}
	if u.PasswordHash == "secret-pw" {
		t.Fatal("password stored in plaintext")
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("secret-pw")) != nil {
		t.Fatal("stored hash does not verify the password")
	}
}

func TestSignUpRejectsTakenPhone(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store)

	req := SignUpRequest{PhoneNumber: "01012345678", Name: "김마루", Password: "pw"}
	if err := svc.SignUp(context.Background(), req); err != nil {
		t.Fatalf("first SignUp: %v", err)
	}
	if err := svc.SignUp(context.Background(), req); !errors.Is(err, ErrPhoneTaken) {
		t.Fatalf("second SignUp err = %v, want ErrPhoneTaken", err)
	}
}

func TestAuthenticate(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store)

	req := SignUpRequest{PhoneNumber: "01012345678", Name: "김마루", Password: "right-pw"}
	if err := svc.SignUp(context.Background(), req); err != nil {
		t.Fatalf("SignUp: %v", err)
	}

	u, err := svc.Authenticate(context.Background(), "01012345678", "right-pw")
	if err != nil {
		t.Fatalf("Authenticate: %v", err)
	}
	if u.Name != "김마루" {
		t.Fatalf("name = %s", u.Name)
	}

	if _, err := svc.Authenticate(context.Background(), "01012345678", "wrong-pw"); !errors.Is(err, ErrBadPassword) {
		t.Fatalf("wrong password err = %v, want ErrBadPassword", err)
	}
	// Unknown phone reads the same as a wrong password.
	if _, err := svc.Authenticate(context.Background(), "01000000000", "right-pw"); !errors.Is(err, ErrBadPassword) {
		t.Fatalf("unknown phone err = %v, want ErrBadPassword", err)
	}
}

func TestAuthorityRole(t *testing.T) {
	if got := AuthorityUser.Role(); got != "user" {
		t.Fatalf("USER role = %s", got)
	}
	if got := AuthorityAdmin.Role(); got != "admin" {
		t.Fatalf("ADMIN role = %s", got)
	}
}
