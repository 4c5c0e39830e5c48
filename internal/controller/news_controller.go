package controller

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gosimple/slug"
	"gorm.io/gorm"

	"velour_backend/internal/model"
	"velour_backend/pkg/database"
	"velour_backend/pkg/storage"
	"velour_backend/pkg/utils/image"
)

const MaxNewsImageSize = 10 * 1024 * 1024 // 10MB

// NewsWebhookInput is the strict shape the automation pipeline posts.
type NewsWebhookInput struct {
	English *NewsArticleInput `json:"english"`
}

type NewsArticleInput struct {
	Title     string   `json:"title"`
	Content   string   `json:"content"`
	Excerpt   string   `json:"excerpt"`
	Tags      []string `json:"tags"`
	Published *bool    `json:"published"`
	Image     string   `json:"image"`
}

// NewsWebhook handles POST /api/news/webhook: validates the payload, pulls
// the referenced image into storage, and inserts the article under a slug
// derived from its title.
func NewsWebhook(c *fiber.Ctx) error {
	input := new(NewsWebhookInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid payload",
		})
	}

	if input.English == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid payload: missing 'english' object",
		})
	}

	article := input.English

	if article.Title == "" || article.Content == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Missing required fields: title or content",
		})
	}

	imageURL := ""
	if strings.TrimSpace(article.Image) != "" {
		uploaded, err := ingestNewsImage(article.Image)
		if err != nil {
			log.Printf("Image processing error: %v", err)
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"error":   fmt.Sprintf("Image processing failed: %v", err),
			})
		}
		imageURL = uploaded
	}

	published := true
	if article.Published != nil {
		published = *article.Published
	}

	tags := article.Tags
	if tags == nil {
		tags = []string{}
	}
	tagsJSON, err := json.Marshal(tags)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Server error",
		})
	}

	entry := model.NewsArticle{
		Slug:      slug.Make(article.Title),
		Title:     article.Title,
		Content:   article.Content,
		Excerpt:   article.Excerpt,
		Tags:      tagsJSON,
		Image:     imageURL,
		Published: published,
	}

	if err := database.GetDB().Create(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"success": false,
				"error":   fmt.Sprintf("A post with the title '%s' already exists (duplicate slug).", article.Title),
			})
		}
		log.Printf("News insertion error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Could not save news entry",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "News entry successfully recorded",
		"data":    entry,
	})
}

// ingestNewsImage downloads an image URL, re-encodes it, and uploads it under
// images/news/. Returns the public URL of the stored copy.
func ingestNewsImage(url string) (string, error) {
	resp, err := http.Get(url)
	if err != nil {
		return "", fmt.Errorf("failed to download image: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("failed to download image: %s", resp.Status)
	}

	contentType := resp.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		return "", fmt.Errorf("URL does not point to an image")
	}

	// Read one byte past the cap to detect oversized bodies.
	data, err := io.ReadAll(io.LimitReader(resp.Body, MaxNewsImageSize+1))
	if err != nil {
		return "", fmt.Errorf("failed to read image: %v", err)
	}
	if len(data) > MaxNewsImageSize {
		return "", fmt.Errorf("image size must be less than 10MB")
	}

	buf, processedType, err := image.Process(bytes.NewReader(data))
	if err != nil {
		return "", err
	}

	objectKey := storage.NewObjectKey(storage.NewsImagePrefix, image.Ext(processedType))

	if err := storage.Upload(objectKey, buf.Bytes(), processedType); err != nil {
		return "", fmt.Errorf("failed to upload image: %v", err)
	}

	return storage.PublicURL(objectKey), nil
}

// ListNews returns published articles, newest update first.
func ListNews(c *fiber.Ctx) error {
	var articles []model.NewsArticle
	if err := database.GetDB().Where("published = ?", true).
		Order("updated_at desc").Find(&articles).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not fetch news",
		})
	}

	return c.JSON(articles)
}

func GetNewsBySlug(c *fiber.Ctx) error {
	var article model.NewsArticle
	if err := database.GetDB().Where("slug = ? AND published = ?", c.Params("slug"), true).
		First(&article).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Article not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not fetch article",
		})
	}

	return c.JSON(article)
}
