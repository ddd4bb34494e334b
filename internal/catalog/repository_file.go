package catalog

import (
	"encoding/json"
	"os"

	"ring-shop-backend/internal/logging"
)

// FileRepository reads a JSON array of entries from disk on every
// call. There is no caching: edits to the file show up on the next
// request.
type FileRepository struct {
	path string
	log  *logging.Logger
}

func NewFileRepository(path string, log *logging.Logger) *FileRepository {
	return &FileRepository{path: path, log: log}
}

func (r *FileRepository) ReadAll() []Entry {
	data, err := os.ReadFile(r.path)
	if err != nil {
		r.log.Warn("catalog file unreadable, serving empty catalog", "path", r.path, "error", err.Error())
		return []Entry{}
	}

	var raw []Entry
	if err := json.Unmarshal(data, &raw); err != nil {
		r.log.Warn("catalog file unparsable, serving empty catalog", "path", r.path, "error", err.Error())
		return []Entry{}
	}

	return keepValid(raw, r.log)
}

// keepValid drops entries that fail schema validation, logging the
// recorded reason for each skip.
func keepValid(raw []Entry, log *logging.Logger) []Entry {
	entries := make([]Entry, 0, len(raw))
	for i, e := range raw {
		if ves := e.Validate(); len(ves) > 0 {
			log.Warn("skipping malformed catalog entry", "index", i, "name", e.Name, "reasons", ves)
			continue
		}
		entries = append(entries, e)
	}
	return entries
}
