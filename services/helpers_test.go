package services

import (
	"context"
	"net/url"
	"strings"
	"sync"
	"testing"

	"trimspire/config"
	"trimspire/utils"

	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Discard})
	if err != nil {
		t.Fatal(err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatal(err)
	}
	// Every connection to :memory: is a separate database.
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	if err := config.Migrate(db); err != nil {
		t.Fatal(err)
	}
	return db
}

type captureMailer struct {
	mu   sync.Mutex
	sent []utils.Email
	err  error
}

func (m *captureMailer) Send(_ context.Context, msg utils.Email) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, msg)
	return nil
}

func (m *captureMailer) last(t *testing.T) utils.Email {
	t.Helper()
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.sent) == 0 {
		t.Fatal("no email sent")
	}
	return m.sent[len(m.sent)-1]
}

// tokenFrom extracts the token query parameter from the link in an email.
func tokenFrom(t *testing.T, msg utils.Email) string {
	t.Helper()
	i := strings.LastIndex(msg.Text, "\n")
	u, err := url.Parse(msg.Text[i+1:])
	if err != nil {
		t.Fatalf("parse link: %v", err)
	}
	token := u.Query().Get("token")
	if token == "" {
		t.Fatalf("no token in %q", msg.Text)
	}
	return token
}

type fixture struct {
	db     *gorm.DB
	mailer *captureMailer
	tokens *utils.Tokens
	auth   *AuthService
	quiz   *QuizService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		db:     newTestDB(t),
		mailer: &captureMailer{},
		tokens: utils.NewTokens("test-secret"),
	}
	f.auth = NewAuthService(f.db, f.tokens, f.mailer, "http://app.test", "http://api.test", zap.NewNop())
	f.quiz = NewQuizService(f.db, f.auth, zap.NewNop())
	return f
}
