package ormstore

import "ricettario/internal/domain"

// RecipeModel is the recipes table.
type RecipeModel struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	Name        string `gorm:"size:50;not null"`
	CookingTime int    `gorm:"not null"`
	Difficulty  string `gorm:"size:20;not null"`

	Links []RecipeIngredientModel `gorm:"foreignKey:RecipeID"`
}

func (RecipeModel) TableName() string { return "recipes" }

// IngredientModel is the ingredients table. Names are unique.
type IngredientModel struct {
	ID   int64  `gorm:"primaryKey;autoIncrement"`
	Name string `gorm:"size:50;not null;uniqueIndex"`
}

func (IngredientModel) TableName() string { return "ingredients" }

// RecipeIngredientModel links a recipe to an ingredient at a position.
type RecipeIngredientModel struct {
	RecipeID     int64 `gorm:"primaryKey;autoIncrement:false"`
	Position     int   `gorm:"primaryKey;autoIncrement:false"`
	IngredientID int64 `gorm:"not null;index"`

	Ingredient IngredientModel `gorm:"foreignKey:IngredientID"`
}

func (RecipeIngredientModel) TableName() string { return "recipe_ingredients" }

func (m *RecipeModel) toDomain() domain.Recipe {
	r := domain.Recipe{
		ID:          m.ID,
		Name:        m.Name,
		CookingTime: m.CookingTime,
		Difficulty:  domain.ParseDifficulty(m.Difficulty),
		Ingredients: make([]string, 0, len(m.Links)),
	}
	for _, l := range m.Links {
		r.Ingredients = append(r.Ingredients, l.Ingredient.Name)
	}
	return r
}
