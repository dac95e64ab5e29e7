package tags

import (
	"errors"
	"strings"

	"github.com/ashub/ash/pkg/ash/models"
	"gorm.io/gorm"
)

// Normalize trims, lower-cases and de-duplicates tag names.
// Each input may itself be a comma-separated list, as submitted by the upload form.
func Normalize(raw ...string) []string {
	seen := make(map[string]bool)
	var names []string
	for _, item := range raw {
		for _, part := range strings.Split(item, ",") {
			name := strings.ToLower(strings.Join(strings.Fields(part), " "))
			if name == "" || seen[name] {
				continue
			}
			seen[name] = true
			names = append(names, name)
		}
	}
	return names
}

// Ensure finds or creates a tag row for every normalized name
func Ensure(db *gorm.DB, raw ...string) ([]models.Tag, error) {
	names := Normalize(raw...)
	tags := make([]models.Tag, 0, len(names))
	for _, name := range names {
		var tag models.Tag
		err := db.Where("name = ?", name).First(&tag).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			tag = models.Tag{Name: name}
			if err = db.Create(&tag).Error; errors.Is(err, gorm.ErrDuplicatedKey) {
				err = db.Where("name = ?", name).First(&tag).Error
			}
		}
		if err != nil {
			return nil, err
		}
		tags = append(tags, tag)
	}
	return tags, nil
}

// Names returns the names of tags in order
func Names(tags []models.Tag) []string {
	names := make([]string, len(tags))
	for i, t := range tags {
		names[i] = t.Name
	}
	return names
}
