// publication_service.go
//
// Content service and admin API for the Ledgerline Advisors marketing site.
// Copyright (c) 2026 Ledgerline Advisors <dev@ledgerline.co>
//
// This file is part of sitecms.
// sitecms is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// sitecms is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with sitecms.
// If not, see <https://www.gnu.org/licenses/>.

package services

import (
	"errors"
	"fmt"

	"github.com/gosimple/slug"
	"github.com/ledgerline/sitecms/internal/models"
	"gorm.io/gorm"
	"gorm.io/hints"
)

// ListBlogs returns all blog posts, newest first.
func ListBlogs(db *gorm.DB) ([]models.Blog, error) {
	var blogs []models.Blog
	if err := db.Clauses(hints.CommentBefore("select", "public blog list")).
		Order("created_at DESC").
		Find(&blogs).Error; err != nil {
		return nil, err
	}
	return blogs, nil
}

// GetBlogByID returns a single blog post by id.
func GetBlogByID(db *gorm.DB, id uint64) (*models.Blog, error) {
	var blog models.Blog
	if err := db.First(&blog, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("not found")
		}
		return nil, err
	}
	return &blog, nil
}

// GetBlogBySlug returns a single blog post by slug.
func GetBlogBySlug(db *gorm.DB, s string) (*models.Blog, error) {
	var blog models.Blog
	if err := db.Where("slug = ?", s).First(&blog).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("not found")
		}
		return nil, err
	}
	return &blog, nil
}

// CreateBlog stores a new blog post. The slug derives from the title; a slug
// already in use rejects the write ("slug exists", surfaced as 409). This is
// deliberately different from case studies, which suffix instead.
func CreateBlog(db *gorm.DB, blog *models.Blog) error {
	if blog.Slug == "" {
		blog.Slug = slug.Make(blog.Title)
	}

	var count int64
	if err := db.Model(&models.Blog{}).Where("slug = ?", blog.Slug).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return fmt.Errorf("slug exists")
	}

	// The unique index catches a writer that slips in between the lookup and
	// the insert.
	if err := db.Create(blog).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("slug exists")
		}
		return err
	}
	return nil
}

// UpdateBlog overwrites only the provided fields of an existing post.
// Published is pointer-typed in the handler input so false remains settable.
func UpdateBlog(db *gorm.DB, id uint64, patch *models.Blog, published *bool) (*models.Blog, error) {
	var blog models.Blog
	if err := db.First(&blog, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("not found")
		}
		return nil, err
	}

	if patch.Title != "" {
		blog.Title = patch.Title
	}
	if patch.Excerpt != "" {
		blog.Excerpt = patch.Excerpt
	}
	if patch.Content != "" {
		blog.Content = patch.Content
	}
	if patch.Author != "" {
		blog.Author = patch.Author
	}
	if patch.Image != "" {
		// TODO: delete the replaced image file from the uploads directory
		blog.Image = patch.Image
	}
	if len(patch.Tags.JSON) > 0 {
		blog.Tags = patch.Tags
	}
	if published != nil {
		blog.Published = *published
	}

	if err := db.Save(&blog).Error; err != nil {
		return nil, err
	}
	return &blog, nil
}

// DeleteBlog removes a blog post.
func DeleteBlog(db *gorm.DB, id uint64) error {
	result := db.Delete(&models.Blog{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("not found")
	}
	return nil
}

// ListCaseStudies returns all case studies, newest first.
func ListCaseStudies(db *gorm.DB) ([]models.CaseStudy, error) {
	var studies []models.CaseStudy
	if err := db.Clauses(hints.CommentBefore("select", "public case study list")).
		Order("created_at DESC").
		Find(&studies).Error; err != nil {
		return nil, err
	}
	return studies, nil
}

// GetCaseStudyByID returns a single case study by id.
func GetCaseStudyByID(db *gorm.DB, id uint64) (*models.CaseStudy, error) {
	var study models.CaseStudy
	if err := db.First(&study, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("not found")
		}
		return nil, err
	}
	return &study, nil
}

// GetCaseStudyBySlug returns a single case study by slug.
func GetCaseStudyBySlug(db *gorm.DB, s string) (*models.CaseStudy, error) {
	var study models.CaseStudy
	if err := db.Where("slug = ?", s).First(&study).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("not found")
		}
		return nil, err
	}
	return &study, nil
}

// CreateCaseStudy stores a new case study. Slug collisions are resolved by
// appending a numeric suffix (-2, -3, ...), unlike blogs which reject.
func CreateCaseStudy(db *gorm.DB, study *models.CaseStudy) error {
	base := study.Slug
	if base == "" {
		base = slug.Make(study.Title)
	}

	candidate := base
	for n := 2; ; n++ {
		var count int64
		if err := db.Model(&models.CaseStudy{}).Where("slug = ?", candidate).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			break
		}
		candidate = fmt.Sprintf("%s-%d", base, n)
	}
	study.Slug = candidate

	return db.Create(study).Error
}

// UpdateCaseStudy overwrites only the provided fields.
func UpdateCaseStudy(db *gorm.DB, id uint64, patch *models.CaseStudy) (*models.CaseStudy, error) {
	var study models.CaseStudy
	if err := db.First(&study, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("not found")
		}
		return nil, err
	}

	if patch.Title != "" {
		study.Title = patch.Title
	}
	if patch.HeaderTitle != "" {
		study.HeaderTitle = patch.HeaderTitle
	}
	if patch.HeaderDescription != "" {
		study.HeaderDescription = patch.HeaderDescription
	}
	if patch.Content != "" {
		study.Content = patch.Content
	}
	if len(patch.Cards.JSON) > 0 {
		study.Cards = patch.Cards
	}

	if err := db.Save(&study).Error; err != nil {
		return nil, err
	}
	return &study, nil
}

// DeleteCaseStudy removes a case study. Card images stay on disk.
func DeleteCaseStudy(db *gorm.DB, id uint64) error {
	result := db.Delete(&models.CaseStudy{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("not found")
	}
	return nil
}
