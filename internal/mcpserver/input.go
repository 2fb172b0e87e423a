package mcpserver

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/fresha/openapi-diff/parser"
)

// specInput represents the two ways an OAS document can be provided to a tool.
// Exactly one of File or Content must be set.
type specInput struct {
	File    string `json:"file,omitempty"    jsonschema:"Path to an OAS file on disk"`
	Content string `json:"content,omitempty" jsonschema:"Inline OAS document content (JSON or YAML)"`
}

// specCache is a session-scoped cache of parse results. File inputs are keyed
// by absolute path and modification time, inline content by its xxhash.
type specCache struct {
	lru *expirable.LRU[string, *parser.ParseResult]
}

func newSpecCache(maxSize int, ttl time.Duration) *specCache {
	if maxSize <= 0 {
		maxSize = 16
	}
	return &specCache{lru: expirable.NewLRU[string, *parser.ParseResult](maxSize, nil, ttl)}
}

func (c *specCache) get(key string) (*parser.ParseResult, bool) {
	if c == nil || key == "" {
		return nil, false
	}
	return c.lru.Get(key)
}

func (c *specCache) put(key string, result *parser.ParseResult) {
	if c == nil || key == "" {
		return
	}
	c.lru.Add(key, result)
}

func (c *specCache) len() int {
	if c == nil {
		return 0
	}
	return c.lru.Len()
}

// cacheKey returns the cache key for the input, or "" when the input should
// not be cached.
func (s specInput) cacheKey() string {
	switch {
	case s.File != "":
		absPath, err := filepath.Abs(s.File)
		if err != nil {
			return ""
		}
		info, err := os.Stat(absPath)
		if err != nil {
			return ""
		}
		return "file:" + absPath + ":" + strconv.FormatInt(info.ModTime().UnixNano(), 10)
	case s.Content != "":
		return "content:" + strconv.FormatUint(xxhash.Sum64String(s.Content), 16)
	}
	return ""
}

// resolve parses the document from whichever input was provided, using the
// server's cache.
func (srv *Server) resolve(s specInput) (*parser.ParseResult, error) {
	count := 0
	if s.File != "" {
		count++
	}
	if s.Content != "" {
		count++
	}
	if count != 1 {
		return nil, fmt.Errorf("exactly one of file or content must be provided (got %d)", count)
	}

	if s.Content != "" && int64(len(s.Content)) > srv.cfg.MaxInlineSize {
		return nil, fmt.Errorf("inline content size %d bytes exceeds maximum %d bytes; use file input instead, or set OPENAPI_DIFF_MAX_INLINE_SIZE to increase",
			len(s.Content), srv.cfg.MaxInlineSize)
	}

	key := s.cacheKey()
	if cached, ok := srv.cache.get(key); ok {
		return cached, nil
	}

	var opt parser.Option
	if s.File != "" {
		opt = parser.WithFilePath(s.File)
	} else {
		opt = parser.WithReader(strings.NewReader(s.Content))
	}
	result, err := parser.ParseWithOptions(opt)
	if err != nil {
		return nil, err
	}

	srv.cache.put(key, result)
	return result, nil
}
