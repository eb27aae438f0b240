package ana

import (
	"crypto/sha256"
	"encoding/hex"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/boynton/ana/lexicon"
	"github.com/boynton/ana/util"
)

// Cache remembers compiled documents by the hash of their source, so recompiling unchanged
// text (as the watch loop does on every write event) returns the earlier result.
// Cached documents are shared and must not be modified.
type Cache struct {
	docs *lru.Cache[string, *lexicon.Lexicon]
}

func NewCache(size int) (*Cache, error) {
	docs, err := lru.New[string, *lexicon.Lexicon](size)
	if err != nil {
		return nil, err
	}
	return &Cache{docs: docs}, nil
}

// String compiles src, or returns the cached document for identical source. Failures are not
// cached.
func (c *Cache) String(src string) (*lexicon.Lexicon, error) {
	sum := sha256.Sum256([]byte(src))
	key := hex.EncodeToString(sum[:])
	if doc, ok := c.docs.Get(key); ok {
		util.Debug("cache hit", key[:12])
		return doc, nil
	}
	doc, err := String(src)
	if err != nil {
		return nil, err
	}
	c.docs.Add(key, doc)
	return doc, nil
}

func (c *Cache) Len() int {
	return c.docs.Len()
}
