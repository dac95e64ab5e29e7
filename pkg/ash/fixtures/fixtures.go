package fixtures

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/ashub/ash/pkg/ash/apperr"
	"github.com/ashub/ash/pkg/ash/models"
	"github.com/ashub/ash/pkg/ash/resources"
	"github.com/ashub/ash/pkg/ash/studygroups"
	"github.com/ashub/ash/pkg/ash/tags"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Document is the fixture and export format
type Document struct {
	Groups        []Group    `json:"groups"`
	Resources     []Resource `json:"resources"`
	Announcements []string   `json:"announcements"`
}

// Group is a study group with its members in join order
type Group struct {
	Course   string   `json:"course"`
	Title    string   `json:"title"`
	Capacity int      `json:"capacity,omitempty"`
	Meets    string   `json:"meets,omitempty"`
	Location string   `json:"location,omitempty"`
	Tags     []string `json:"tags,omitempty"`
	Members  []Person `json:"members,omitempty"`
}

// Person is a member as written in a fixture. A bare JSON string is read as
// a name without an email.
type Person struct {
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
}

// UnmarshalJSON accepts either "Alice" or {"name":"Alice","email":"..."}
func (p *Person) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		*p = Person{Name: name}
		return nil
	}
	type plain Person
	var v plain
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*p = Person(v)
	return nil
}

// Resource is a shared link or uploaded file
type Resource struct {
	Course     string   `json:"course"`
	Title      string   `json:"title"`
	FileURL    string   `json:"file_url"`
	Tags       []string `json:"tags,omitempty"`
	UploadedBy string   `json:"uploaded_by"`
	Email      string   `json:"uploaded_by_email,omitempty"`
}

// Result reports what an import did
type Result struct {
	Imported int      `json:"imported"`
	Skipped  int      `json:"skipped"`
	Errors   []string `json:"errors"`
}

// Loader imports and exports fixture documents.
// Members are seated through the membership service so counts always match
// the membership rows.
type Loader struct {
	db        *gorm.DB
	svc       *studygroups.Service
	resources *resources.Handler
	log       *zap.Logger
}

// NewLoader creates a new fixture loader
func NewLoader(db *gorm.DB, svc *studygroups.Service, res *resources.Handler, log *zap.Logger) *Loader {
	return &Loader{db: db, svc: svc, resources: res, log: log}
}

// LoadFile reads a fixture document from path and imports it
func (l *Loader) LoadFile(ctx context.Context, path string) (*Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read fixtures %s", path)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrapf(err, "parse fixtures %s", path)
	}

	result, err := l.Import(ctx, &doc)
	if err != nil {
		return nil, err
	}

	l.log.Info("fixtures loaded",
		zap.String("path", path),
		zap.Int("imported", result.Imported),
		zap.Int("skipped", result.Skipped),
		zap.Int("errors", len(result.Errors)))
	return result, nil
}

// Import creates everything in doc that does not already exist.
// Problems with single entries are collected in the result; only storage
// failures abort the import.
func (l *Loader) Import(ctx context.Context, doc *Document) (*Result, error) {
	result := &Result{Errors: []string{}}
	fail := func(format string, args ...interface{}) {
		result.Errors = append(result.Errors, fmt.Sprintf(format, args...))
	}

	for i, g := range doc.Groups {
		_, err := l.svc.Groups().FindByCourseAndName(ctx, g.Course, g.Title)
		if err == nil {
			result.Skipped++
			continue
		}
		if !errors.Is(err, studygroups.ErrGroupNotFound) {
			return nil, err
		}

		group, err := l.svc.Create(ctx, studygroups.NewGroup{
			Name:     g.Title,
			Course:   g.Course,
			Capacity: g.Capacity,
			Meets:    g.Meets,
			Location: g.Location,
			Tags:     g.Tags,
		})
		if err != nil {
			if apperr.KindOf(err) == apperr.KindStorage {
				return nil, err
			}
			fail("group %d: %s", i, apperr.MessageOf(err))
			result.Skipped++
			continue
		}
		result.Imported++

		for _, p := range g.Members {
			if _, err := l.svc.Join(ctx, group.ID, p.Name, p.Email); err != nil {
				if apperr.KindOf(err) == apperr.KindStorage {
					return nil, err
				}
				fail("group %d: %s: %s", i, p.Name, apperr.MessageOf(err))
			}
		}
	}

	for i, r := range doc.Resources {
		var count int64
		err := l.db.WithContext(ctx).Model(&models.Resource{}).
			Where("LOWER(course) = LOWER(?) AND LOWER(title) = LOWER(?)", strings.TrimSpace(r.Course), strings.TrimSpace(r.Title)).
			Count(&count).Error
		if err != nil {
			return nil, apperr.Storage(err, "Failed to check resources")
		}
		if count > 0 {
			result.Skipped++
			continue
		}

		_, err = l.resources.Create(ctx, resources.NewResource{
			Title:         r.Title,
			Course:        r.Course,
			FilePath:      r.FileURL,
			IsUpload:      strings.HasPrefix(r.FileURL, resources.PublicPrefix),
			Tags:          r.Tags,
			UploaderName:  r.UploadedBy,
			UploaderEmail: r.Email,
		})
		if err != nil {
			if apperr.KindOf(err) == apperr.KindStorage {
				return nil, err
			}
			fail("resource %d: %s", i, apperr.MessageOf(err))
			result.Skipped++
			continue
		}
		result.Imported++
	}

	for _, msg := range doc.Announcements {
		msg = strings.TrimSpace(msg)
		if msg == "" {
			continue
		}
		var existing models.Announcement
		err := l.db.WithContext(ctx).Where("message = ?", msg).Limit(1).Find(&existing).Error
		if err != nil {
			return nil, apperr.Storage(err, "Failed to check announcements")
		}
		if existing.ID != 0 {
			result.Skipped++
			continue
		}
		if err := l.db.WithContext(ctx).Create(&models.Announcement{Message: msg}).Error; err != nil {
			return nil, apperr.Storage(err, "Failed to save announcement")
		}
		result.Imported++
	}

	return result, nil
}

// Export returns the current data as a fixture document
func (l *Loader) Export(ctx context.Context) (*Document, error) {
	doc := &Document{Groups: []Group{}, Resources: []Resource{}, Announcements: []string{}}

	groups, err := l.svc.Groups().List(ctx, studygroups.Filter{})
	if err != nil {
		return nil, err
	}
	for _, g := range groups {
		members, err := l.svc.Groups().Members(ctx, g.ID)
		if err != nil {
			return nil, err
		}
		people := make([]Person, len(members))
		for i, m := range members {
			people[i] = Person{Name: m.Name, Email: m.Email}
		}
		doc.Groups = append(doc.Groups, Group{
			Course:   g.Course,
			Title:    g.Name,
			Capacity: g.Capacity,
			Meets:    g.Meets,
			Location: g.Location,
			Tags:     tags.Names(g.Tags),
			Members:  people,
		})
	}

	res, err := l.resources.Search(ctx, resources.Filter{})
	if err != nil {
		return nil, err
	}
	// oldest first, so a re-import keeps the original order
	for i := len(res) - 1; i >= 0; i-- {
		r := res[i]
		doc.Resources = append(doc.Resources, Resource{
			Course:     r.Course,
			Title:      r.Title,
			FileURL:    r.FilePath,
			Tags:       tags.Names(r.Tags),
			UploadedBy: r.UploadedBy.Name,
			Email:      r.UploadedBy.Email,
		})
	}

	var announcements []models.Announcement
	if err := l.db.WithContext(ctx).Order("id ASC").Find(&announcements).Error; err != nil {
		return nil, apperr.Storage(err, "Failed to fetch announcements")
	}
	for _, a := range announcements {
		doc.Announcements = append(doc.Announcements, a.Message)
	}

	return doc, nil
}
