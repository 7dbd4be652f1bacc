package ingest

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/rs/zerolog/log"
)

// SourceUpload labels snapshots parsed from caller-supplied bytes.
const SourceUpload = "upload"

// Loader resolves the input source of a load and memoizes results by content identity.
type Loader struct {
	path  string
	cache *Cache
	now   func() time.Time
}

// NewLoader creates a loader falling back to path when no upload is supplied.
// A nil cache disables memoization.
func NewLoader(path string, cache *Cache) *Loader {
	return &Loader{
		path:  path,
		cache: cache,
		now:   time.Now,
	}
}

// Path returns the local fallback path.
func (l *Loader) Path() string {
	return l.path
}

// Key returns the cache key a load of upload would use.
func (l *Loader) Key(upload []byte) string {
	if len(upload) > 0 {
		return ContentKey(upload)
	}
	return FallbackKey(l.path)
}

// Load parses upload, or the local fallback file when upload is empty.
// It never returns a Go error: every outcome is reported through Result.Status.
func (l *Loader) Load(upload []byte) Result {
	key := l.Key(upload)
	load := func() Result {
		if len(upload) > 0 {
			return l.parse(upload, SourceUpload, key)
		}
		return l.loadFallback(key)
	}
	if l.cache == nil {
		return load()
	}
	return l.cache.Do(key, load)
}

// Invalidate forgets the memoized load of upload.
func (l *Loader) Invalidate(upload []byte) {
	if l.cache != nil {
		l.cache.Invalidate(l.Key(upload))
	}
}

func (l *Loader) loadFallback(key string) Result {
	if l.path == "" {
		return Result{Status: StatusNoData, Key: key, Message: "no file uploaded and no local path configured"}
	}
	data, err := os.ReadFile(l.path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Info().Str("path", l.path).Msg("No upload and no local file found")
		return Result{Status: StatusNoData, Key: key, Message: fmt.Sprintf("no file uploaded and %s not found", l.path)}
	}
	if err != nil {
		log.Warn().Err(err).Str("path", l.path).Msg("Failed to read local file")
		return failed(key, fmt.Sprintf("failed to read %s: %v", l.path, err))
	}
	return l.parse(data, l.path, key)
}

func (l *Loader) parse(data []byte, source, key string) Result {
	snap, err := Parse(data, source, key, l.now())
	if err != nil {
		log.Warn().Err(err).Str("source", source).Msg("Load failed")
		return failed(key, fmt.Sprintf("failed to load %s: %v", source, err))
	}

	if missing := snap.Columns.Missing(); len(missing) > 0 {
		log.Debug().Strs("missing", missing).Msg("Source lacks optional columns")
	}
	log.Info().Str("source", source).Int("tickets", snap.Len()).Msg("Tickets loaded")
	return Result{Status: StatusLoaded, Key: key, Snapshot: snap}
}
