package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"trimspire/models"
)

func TestQuizSaveCreatesUserAndSendsSetupLink(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	user, err := f.quiz.Save(ctx, "  Anna@Example.com ", map[string]any{"goal": "Lose weight", "height": "170"})
	if err != nil {
		t.Fatal(err)
	}
	if user.Email != "anna@example.com" {
		t.Errorf("email = %q, want normalized", user.Email)
	}

	msg := f.mailer.last(t)
	if msg.To != "anna@example.com" {
		t.Errorf("mail sent to %q", msg.To)
	}
	if !strings.Contains(msg.Text, "http://app.test/set-password?token=") {
		t.Errorf("setup link missing from %q", msg.Text)
	}
	if _, err := f.tokens.Verify(tokenFrom(t, msg), "setup"); err != nil {
		t.Errorf("setup token: %v", err)
	}

	answers, err := f.quiz.Answers(ctx, user.ID)
	if err != nil {
		t.Fatal(err)
	}
	if answers.Goal != "Lose weight" || answers.Height == nil || *answers.Height != 170 {
		t.Errorf("stored answers = %+v", answers)
	}
}

func TestQuizSaveUpserts(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	first, err := f.quiz.Save(ctx, "anna@example.com", map[string]any{"goal": "Lose weight", "vegetarian": "yes"})
	if err != nil {
		t.Fatal(err)
	}
	second, err := f.quiz.Save(ctx, "ANNA@example.com", map[string]any{"goal": "Get stronger"})
	if err != nil {
		t.Fatal(err)
	}
	if first.ID != second.ID {
		t.Errorf("second save created a new user: %s != %s", first.ID, second.ID)
	}

	var users, rows int64
	f.db.Model(&models.User{}).Count(&users)
	f.db.Model(&models.QuizAnswers{}).Count(&rows)
	if users != 1 || rows != 1 {
		t.Errorf("users=%d answers=%d, want 1 and 1", users, rows)
	}

	answers, err := f.quiz.Answers(ctx, first.ID)
	if err != nil {
		t.Fatal(err)
	}
	if answers.Goal != "Get stronger" {
		t.Errorf("goal = %q, want the latest answer", answers.Goal)
	}
	if answers.IsVegetarian {
		t.Error("answers missing from the latest submission should be reset")
	}
}

func TestQuizSaveErrors(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	if _, err := f.quiz.Save(ctx, "anna@example.com", map[string]any{"height": "tall"}); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("got %v, want ErrInvalidInput", err)
	}

	f.mailer.err = errors.New("ses down")
	if _, err := f.quiz.Save(ctx, "anna@example.com", map[string]any{"goal": "Lose weight"}); err == nil {
		t.Error("expected mail failure to be reported")
	}
	// Answers are stored before the mail goes out.
	var rows int64
	f.db.Model(&models.QuizAnswers{}).Count(&rows)
	if rows != 1 {
		t.Errorf("answers rows = %d, want 1", rows)
	}
}
