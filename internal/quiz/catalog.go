package quiz

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
)

// Question is one catalog entry. The JSON field names match the
// questions.json format the bot ships with.
type Question struct {
	ID            int      `json:"id"`
	Text          string   `json:"question"`
	Options       []string `json:"options"`
	CorrectOption int      `json:"correct_option"`
}

// Catalog is the fixed set of quiz questions, loaded once at startup.
// It is immutable after construction and safe for concurrent reads.
type Catalog struct {
	byID map[int]Question
	ids  []int
}

// LoadCatalog reads a JSON array of questions from path. A missing or
// malformed file is reported as ErrCatalogUnavailable; callers are expected
// to log it and continue with EmptyCatalog rather than abort startup.
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w: %v", path, ErrCatalogUnavailable, err)
	}

	var questions []Question
	if err := json.Unmarshal(data, &questions); err != nil {
		return nil, fmt.Errorf("parse %s: %w: %v", path, ErrCatalogUnavailable, err)
	}

	return NewCatalog(questions), nil
}

// NewCatalog builds a catalog from an in-memory question list.
func NewCatalog(questions []Question) *Catalog {
	catalog := &Catalog{
		byID: make(map[int]Question, len(questions)),
		ids:  make([]int, 0, len(questions)),
	}
	for _, question := range questions {
		if _, seen := catalog.byID[question.ID]; seen {
			continue
		}
		catalog.byID[question.ID] = question
		catalog.ids = append(catalog.ids, question.ID)
	}
	sort.Ints(catalog.ids)
	return catalog
}

// EmptyCatalog is the degraded catalog used when the question source
// could not be loaded.
func EmptyCatalog() *Catalog {
	return NewCatalog(nil)
}

// ByID looks up a question. Absence is a normal outcome, not an error:
// a stored progress row may reference an id the current catalog no
// longer carries.
func (c *Catalog) ByID(id int) (Question, bool) {
	question, ok := c.byID[id]
	return question, ok
}

func (c *Catalog) Size() int {
	return len(c.ids)
}

// IDs returns all question ids in ascending order. The returned slice is
// shared; callers must treat it as read-only.
func (c *Catalog) IDs() []int {
	return c.ids
}

// FirstID is the lowest question id, used as the resume default for users
// with no stored progress. Returns 0 for an empty catalog.
func (c *Catalog) FirstID() int {
	if len(c.ids) == 0 {
		return 0
	}
	return c.ids[0]
}
