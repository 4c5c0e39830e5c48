package seed

import (
	"log"

	"gorm.io/gorm"

	"velour_backend/internal/model"
)

// SeedContent loads the static site content (menu, gallery) that the public
// pages read. Idempotent: existing rows are left alone.
func SeedContent(db *gorm.DB) {
	seedMenu(db)
	seedGallery(db)
}

func seedMenu(db *gorm.DB) {
	categories := []model.MenuCategory{
		{
			Title: "Small Plates",
			Order: 0,
			Items: []model.MenuItem{
				{Name: "Spicy Edamame", Order: 0},
				{Name: "Duck Salad", Order: 1},
				{Name: "Cucumber Tataki", Order: 2},
				{Name: "A5 Wagyu Tacos", Order: 3},
				{Name: "Salted Shishito Peppers", Order: 4},
				{Name: "King Crab Crispy Rolls", Order: 5},
			},
		},
		{
			Title: "Signature Cocktails",
			Order: 1,
			Items: []model.MenuItem{
				{Name: "The Midnight Ember", Description: "A smoky blend of mezcal and blood orange", Order: 0},
				{Name: "Winter Velvet", Description: "Smooth bourbon with hints of vanilla and spice", Order: 1},
				{Name: "Neon Sunset", Description: "A refreshing twist on the classic gin fizz", Order: 2},
			},
		},
		{
			Title: "Large Plates",
			Order: 2,
			Items: []model.MenuItem{
				{Name: "Black Cod Miso", Order: 0},
				{Name: "Tomahawk for Two", Order: 1},
				{Name: "Lobster Fried Rice", Order: 2},
			},
		},
	}

	for _, category := range categories {
		result := db.FirstOrCreate(&category, model.MenuCategory{Title: category.Title})
		if result.Error != nil {
			log.Printf("Error seeding menu category %s: %v", category.Title, result.Error)
		}
	}

	log.Println("Menu seeded successfully!")
}

func seedGallery(db *gorm.DB) {
	images := []model.GalleryImage{
		{Path: "images/gallery/gallery-1.webp", Alt: "Main floor at midnight", Order: 0},
		{Path: "images/gallery/gallery-2.webp", Alt: "VIP room", Order: 1},
		{Path: "images/gallery/gallery-3.webp", Alt: "Craft cocktails at the bar", Order: 2},
		{Path: "images/gallery/gallery-4.webp", Alt: "Rooftop sunset sessions", Order: 3},
	}

	for _, img := range images {
		result := db.FirstOrCreate(&img, model.GalleryImage{Path: img.Path})
		if result.Error != nil {
			log.Printf("Error seeding gallery image %s: %v", img.Path, result.Error)
		}
	}

	log.Println("Gallery seeded successfully!")
}
