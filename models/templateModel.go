package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Template categories form a closed set; anything else is rejected at
// creation time.
var TemplateCategories = []string{
	"E-commerce",
	"Portfolio",
	"Blog",
	"Business",
	"Landing Page",
	"Other",
}

func ValidTemplateCategory(category string) bool {
	for _, c := range TemplateCategories {
		if c == category {
			return true
		}
	}
	return false
}

type Template struct {
	gorm.Model
	Name        string         `json:"name" binding:"required,max=100"`
	Description string         `json:"description" binding:"required"`
	Category    string         `json:"category" binding:"required"`
	Tags        datatypes.JSON `json:"tags"`
	ImageURL    string         `json:"imageUrl" binding:"required"`
	DemoURL     string         `json:"demoUrl" binding:"required"`
	Price       float64        `json:"price" binding:"min=0"`
	Features    datatypes.JSON `json:"features"`
	IsPopular   bool           `json:"isPopular"`
}
