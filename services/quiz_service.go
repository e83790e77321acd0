package services

import (
	"context"
	"errors"
	"fmt"

	"trimspire/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// answerColumns are overwritten on every quiz submission.
var answerColumns = []string{
	"goal", "age_range", "current_weight", "goal_weight", "height", "activity_level",
	"dietary_exclusions", "is_vegetarian", "has_allergies", "meals_per_day", "updated_at",
}

type QuizService struct {
	db   *gorm.DB
	auth *AuthService
	log  *zap.Logger
}

func NewQuizService(db *gorm.DB, auth *AuthService, log *zap.Logger) *QuizService {
	return &QuizService{db: db, auth: auth, log: log}
}

// Save upserts the user and their answers, then mails the password setup link.
func (s *QuizService) Save(ctx context.Context, email string, raw map[string]any) (*models.User, error) {
	answers, unknown, err := MapAnswers(raw)
	if err != nil {
		return nil, err
	}
	if len(unknown) > 0 {
		s.log.Debug("ignoring unknown quiz questions", zap.Strings("questions", unknown))
	}

	user := models.User{Email: NormalizeEmail(email)}
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where(models.User{Email: user.Email}).FirstOrCreate(&user).Error; err != nil {
			return fmt.Errorf("upsert user: %w", err)
		}
		answers.UserID = user.ID
		err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns(answerColumns),
		}).Create(&answers).Error
		if err != nil {
			return fmt.Errorf("upsert quiz answers: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := s.auth.SendSetupLink(ctx, &user); err != nil {
		return nil, fmt.Errorf("send setup link: %w", err)
	}
	return &user, nil
}

func (s *QuizService) Answers(ctx context.Context, userID string) (*models.QuizAnswers, error) {
	return findAnswers(ctx, s.db, userID)
}

func findAnswers(ctx context.Context, db *gorm.DB, userID string) (*models.QuizAnswers, error) {
	var answers models.QuizAnswers
	err := db.WithContext(ctx).Where("user_id = ?", userID).First(&answers).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: quiz answers", ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("load quiz answers: %w", err)
	}
	return &answers, nil
}
