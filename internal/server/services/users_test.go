package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stucanii/therappy/internal/common"
	"github.com/stucanii/therappy/internal/server/models"
	"golang.org/x/crypto/bcrypt"
)

func TestSignUp_Success(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	fu := &fakeUsersRepo{}
	s := NewUserService(db, &fakeRepoManager{u: fu})

	u, err := s.SignUp(context.Background(), "alice", "pa55word")
	if err != nil {
		t.Fatalf("SignUp error: %v", err)
	}
	if u.ID == "" || u.Username != "alice" {
		t.Fatalf("unexpected user: %+v", u)
	}
	if u.Role != models.RoleUser {
		t.Fatalf("want default role USER, got %q", u.Role)
	}
	if u.PasswordHash == "pa55word" || u.PasswordHash == "" {
		t.Fatalf("password was not hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("pa55word")); err != nil {
		t.Fatalf("stored hash does not verify: %v", err)
	}
}

func TestSignUp_Duplicate(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	fu := &fakeUsersRepo{createErr: common.ErrorAlreadyExists}
	s := NewUserService(db, &fakeRepoManager{u: fu})

	if _, err := s.SignUp(context.Background(), "alice", "x"); !errors.Is(err, common.ErrorAlreadyExists) {
		t.Fatalf("want ErrorAlreadyExists, got %v", err)
	}
}

func TestCreateWithRole(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	fu := &fakeUsersRepo{}
	s := NewUserService(db, &fakeRepoManager{u: fu})

	u, err := s.CreateWithRole(context.Background(), "dr.bob", "pw", models.RolePsychologist)
	if err != nil {
		t.Fatalf("CreateWithRole error: %v", err)
	}
	if u.Role != models.RolePsychologist {
		t.Fatalf("want role PSYCHOLOGIST, got %q", u.Role)
	}
	if fu.updatedRoles[u.ID] != models.RolePsychologist {
		t.Fatalf("role not persisted")
	}

	// USER needs no extra update
	fu2 := &fakeUsersRepo{}
	s2 := NewUserService(db, &fakeRepoManager{u: fu2})
	u2, err := s2.CreateWithRole(context.Background(), "carol", "pw", models.RoleUser)
	if err != nil || u2.Role != models.RoleUser {
		t.Fatalf("CreateWithRole USER: got (%+v, %v)", u2, err)
	}
	if len(fu2.updatedRoles) != 0 {
		t.Fatalf("unexpected role update")
	}

	if _, err := s.CreateWithRole(context.Background(), "x", "pw", models.Role("SUPERVISOR")); !errors.Is(err, common.ErrorValidation) {
		t.Fatalf("unknown role: want ErrorValidation, got %v", err)
	}
}

func TestVerifyCredentials_Flows(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	hash, err := bcrypt.GenerateFromPassword([]byte("right"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt error: %v", err)
	}
	stored := &models.User{ID: "u1", Username: "alice", PasswordHash: string(hash), Role: models.RoleClient}

	// not found → unauthorized
	sNF := NewUserService(db, &fakeRepoManager{u: &fakeUsersRepo{byUsernameErr: common.ErrorNotFound}})
	if _, err := sNF.VerifyCredentials(context.Background(), "ghost", "x"); !errors.Is(err, common.ErrorUnauthorized) {
		t.Fatalf("notfound → unauthorized, got %v", err)
	}

	// repo failure → internal
	sIE := NewUserService(db, &fakeRepoManager{u: &fakeUsersRepo{byUsernameErr: errBoom{}}})
	if _, err := sIE.VerifyCredentials(context.Background(), "alice", "x"); !errors.Is(err, common.ErrorInternal) {
		t.Fatalf("repo error → ErrorInternal, got %v", err)
	}

	// wrong password → unauthorized
	sWP := NewUserService(db, &fakeRepoManager{u: &fakeUsersRepo{byUsernameOut: stored}})
	if _, err := sWP.VerifyCredentials(context.Background(), "alice", "wrong"); !errors.Is(err, common.ErrorUnauthorized) {
		t.Fatalf("wrong password → unauthorized, got %v", err)
	}

	// success
	sOK := NewUserService(db, &fakeRepoManager{u: &fakeUsersRepo{byUsernameOut: stored}})
	u, err := sOK.VerifyCredentials(context.Background(), "alice", "right")
	if err != nil || u.ID != "u1" {
		t.Fatalf("VerifyCredentials success: got (%+v, %v)", u, err)
	}
}
