package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"trimspire/utils"
)

func TestNormalizeEmail(t *testing.T) {
	if got := NormalizeEmail("  John.Doe@Example.COM "); got != "john.doe@example.com" {
		t.Errorf("NormalizeEmail = %q", got)
	}
}

func TestSetPasswordThenLogin(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	user, err := f.quiz.Save(ctx, "anna@example.com", map[string]any{"goal": "Lose weight"})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := f.auth.Login(ctx, "anna@example.com", "whatever"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("login before password set: got %v", err)
	}

	setup := tokenFrom(t, f.mailer.last(t))
	session, err := f.auth.SetPassword(ctx, setup, "s3cret-pass")
	if err != nil {
		t.Fatal(err)
	}
	if id, err := f.auth.Authenticate(session); err != nil || id != user.ID {
		t.Errorf("Authenticate = %q, %v; want %q", id, err, user.ID)
	}

	me, err := f.auth.CurrentUser(ctx, user.ID)
	if err != nil {
		t.Fatal(err)
	}
	if !me.HasPassword() {
		t.Error("password not stored")
	}

	session, err = f.auth.Login(ctx, " ANNA@example.com", "s3cret-pass")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if id, _ := f.auth.Authenticate(session); id != user.ID {
		t.Errorf("session user = %q", id)
	}

	if _, err := f.auth.Login(ctx, "anna@example.com", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("wrong password: got %v", err)
	}
	if _, err := f.auth.Login(ctx, "nobody@example.com", "s3cret-pass"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("unknown user: got %v", err)
	}
}

func TestSetPasswordRejectsOtherTokens(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	user, err := f.quiz.Save(ctx, "anna@example.com", nil)
	if err != nil {
		t.Fatal(err)
	}
	session, _ := f.tokens.Issue(user.ID, utils.PurposeSession)
	if _, err := f.auth.SetPassword(ctx, session, "s3cret-pass"); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("session token accepted as setup token: %v", err)
	}

	orphan, _ := f.tokens.Issue("deleted-user", utils.PurposeSetup)
	if _, err := f.auth.SetPassword(ctx, orphan, "s3cret-pass"); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("token for missing user: got %v", err)
	}
}

func TestMagicLink(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	user, err := f.quiz.Save(ctx, "anna@example.com", nil)
	if err != nil {
		t.Fatal(err)
	}
	before := len(f.mailer.sent)

	if err := f.auth.SendMagicLink(ctx, "nobody@example.com"); err != nil {
		t.Errorf("unknown email should not fail: %v", err)
	}
	if len(f.mailer.sent) != before {
		t.Error("mail sent to an unknown address")
	}

	if err := f.auth.SendMagicLink(ctx, "Anna@example.com"); err != nil {
		t.Fatal(err)
	}
	msg := f.mailer.last(t)
	if !strings.Contains(msg.Text, "http://api.test/api/auth/verify?token=") {
		t.Errorf("magic link missing from %q", msg.Text)
	}

	session, err := f.auth.VerifyMagicLink(ctx, tokenFrom(t, msg))
	if err != nil {
		t.Fatal(err)
	}
	if id, _ := f.auth.Authenticate(session); id != user.ID {
		t.Errorf("session user = %q", id)
	}

	if _, err := f.auth.VerifyMagicLink(ctx, session); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("session token accepted as magic link: %v", err)
	}
	if _, err := f.auth.VerifyMagicLink(ctx, "garbage"); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("garbage token: %v", err)
	}
}

func TestCurrentUserNotFound(t *testing.T) {
	f := newFixture(t)
	if _, err := f.auth.CurrentUser(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("got %v, want ErrNotFound", err)
	}
}

func TestSetPasswordLength(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	if _, err := f.quiz.Save(ctx, "anna@example.com", nil); err != nil {
		t.Fatal(err)
	}
	setup := tokenFrom(t, f.mailer.last(t))

	for _, password := range []string{"short", strings.Repeat("a", 73), strings.Repeat("é", 40)} {
		if _, err := f.auth.SetPassword(ctx, setup, password); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("SetPassword(%d bytes) = %v, want ErrInvalidInput", len(password), err)
		}
	}
	if _, err := f.auth.SetPassword(ctx, setup, strings.Repeat("a", 72)); err != nil {
		t.Errorf("72-byte password rejected: %v", err)
	}
}
