package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"trimspire/models"
	"trimspire/utils"

	"gorm.io/gorm"
)

const (
	defaultRecipeLimit = 20
	maxRecipeLimit     = 100
)

type RecipeFilter struct {
	MealType models.MealType
	Tag      string
	Search   string
	Offset   int
	Limit    int
}

type IngredientInput struct {
	Name     string  `json:"name" binding:"required"`
	Category string  `json:"category"`
	Quantity float64 `json:"quantity" binding:"gte=0"`
	Unit     string  `json:"unit"`
}

type CreateRecipeInput struct {
	Title        string            `json:"title" binding:"required"`
	Description  string            `json:"description"`
	MealType     models.MealType   `json:"mealType" binding:"required"`
	Instructions string            `json:"instructions"`
	ImageURL     string            `json:"imageUrl"`
	ImageBase64  string            `json:"imageBase64"`
	Calories     int               `json:"calories" binding:"gte=0"`
	Proteins     int               `json:"proteins" binding:"gte=0"`
	Fats         int               `json:"fats" binding:"gte=0"`
	Carbs        int               `json:"carbs" binding:"gte=0"`
	CookingTime  int               `json:"cookingTime" binding:"gte=0"`
	Tags         []string          `json:"tags"`
	Ingredients  []IngredientInput `json:"ingredients" binding:"dive"`
}

type RecipeService struct {
	db       *gorm.DB
	uploader utils.ImageUploader
}

// NewRecipeService builds the catalog service. uploader may be nil, in which case
// recipes can only reference existing image URLs.
func NewRecipeService(db *gorm.DB, uploader utils.ImageUploader) *RecipeService {
	return &RecipeService{db: db, uploader: uploader}
}

func (s *RecipeService) List(ctx context.Context, f RecipeFilter) ([]models.Recipe, error) {
	if f.Limit <= 0 {
		f.Limit = defaultRecipeLimit
	}
	if f.Limit > maxRecipeLimit {
		f.Limit = maxRecipeLimit
	}
	if f.Offset < 0 {
		f.Offset = 0
	}

	q := s.db.WithContext(ctx).Model(&models.Recipe{})
	if f.MealType != "" {
		q = q.Where("recipes.meal_type = ?", f.MealType)
	}
	if f.Search != "" {
		like := "%" + strings.ToLower(f.Search) + "%"
		q = q.Where("LOWER(recipes.title) LIKE ? OR LOWER(recipes.description) LIKE ?", like, like)
	}
	if f.Tag != "" {
		q = q.Joins("JOIN recipe_tags ON recipe_tags.recipe_id = recipes.id").
			Joins("JOIN tags ON tags.id = recipe_tags.tag_id").
			Where("tags.name = ?", f.Tag)
	}

	recipes := []models.Recipe{}
	err := q.Preload("Tags").Preload("Ingredients.Ingredient").
		Order("recipes.created_at ASC").
		Offset(f.Offset).Limit(f.Limit).
		Find(&recipes).Error
	if err != nil {
		return nil, fmt.Errorf("list recipes: %w", err)
	}
	return recipes, nil
}

func (s *RecipeService) Get(ctx context.Context, id string) (*models.Recipe, error) {
	var recipe models.Recipe
	err := s.db.WithContext(ctx).
		Preload("Tags").Preload("Ingredients.Ingredient").
		First(&recipe, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: recipe", ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get recipe: %w", err)
	}
	return &recipe, nil
}

func (s *RecipeService) Tags(ctx context.Context) ([]string, error) {
	names := []string{}
	if err := s.db.WithContext(ctx).Model(&models.Tag{}).Order("name ASC").Pluck("name", &names).Error; err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}
	return names, nil
}

// Create stores a recipe, connecting tags and ingredients by name and creating the
// missing ones.
func (s *RecipeService) Create(ctx context.Context, in CreateRecipeInput) (*models.Recipe, error) {
	in.Title = strings.TrimSpace(in.Title)
	if in.Title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if !in.MealType.Valid() {
		return nil, fmt.Errorf("%w: unknown meal type %q", ErrInvalidInput, in.MealType)
	}
	seen := make(map[string]bool, len(in.Ingredients))
	for _, ing := range in.Ingredients {
		name := strings.TrimSpace(ing.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: ingredient name is required", ErrInvalidInput)
		}
		if seen[name] {
			return nil, fmt.Errorf("%w: ingredient %q listed twice", ErrInvalidInput, name)
		}
		seen[name] = true
	}

	imageURL := in.ImageURL
	if in.ImageBase64 != "" {
		if s.uploader == nil {
			return nil, fmt.Errorf("%w: image uploads are not configured", ErrInvalidInput)
		}
		url, err := s.uploader.UploadBase64Image(ctx, in.ImageBase64, slug(in.Title))
		if errors.Is(err, utils.ErrInvalidImage) {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to upload image: %w", err)
		}
		imageURL = url
	}

	recipe := models.Recipe{
		Title:        in.Title,
		Description:  in.Description,
		MealType:     in.MealType,
		Instructions: in.Instructions,
		ImageURL:     imageURL,
		Calories:     in.Calories,
		Proteins:     in.Proteins,
		Fats:         in.Fats,
		Carbs:        in.Carbs,
		CookingTime:  in.CookingTime,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, name := range in.Tags {
			name = strings.TrimSpace(name)
			if name == "" {
				continue
			}
			tag := models.Tag{Name: name}
			if err := tx.Where(models.Tag{Name: name}).FirstOrCreate(&tag).Error; err != nil {
				return fmt.Errorf("upsert tag %q: %w", name, err)
			}
			recipe.Tags = append(recipe.Tags, tag)
		}

		if err := tx.Omit("Ingredients").Create(&recipe).Error; err != nil {
			return fmt.Errorf("create recipe: %w", err)
		}

		for _, ing := range in.Ingredients {
			name := strings.TrimSpace(ing.Name)
			ingredient := models.Ingredient{Name: name}
			err := tx.Where(models.Ingredient{Name: name}).
				Attrs(models.Ingredient{Category: ing.Category}).
				FirstOrCreate(&ingredient).Error
			if err != nil {
				return fmt.Errorf("upsert ingredient %q: %w", name, err)
			}
			link := models.RecipeIngredient{
				RecipeID:     recipe.ID,
				IngredientID: ingredient.ID,
				Quantity:     ing.Quantity,
				Unit:         ing.Unit,
			}
			if err := tx.Omit("Ingredient").Create(&link).Error; err != nil {
				return fmt.Errorf("link ingredient %q: %w", name, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.Get(ctx, recipe.ID)
}

func slug(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '_':
			if b.Len() > 0 && !strings.HasSuffix(b.String(), "-") {
				b.WriteByte('-')
			}
		}
	}
	out := strings.TrimSuffix(b.String(), "-")
	if out == "" {
		return "recipe"
	}
	return out
}
