package sdlrender

import "github.com/veandco/go-sdl2/sdl"

const defaultMaxCacheSize = 64

type cachedTexture struct {
	texture *sdl.Texture
	w, h    int32
}

// TextureCache keeps the most recently used label and icon textures.
// Textures evicted from it are destroyed.
type TextureCache struct {
	textures map[string]cachedTexture
	order    []string // tracks insertion order for LRU eviction
	maxSize  int
}

func NewTextureCache() *TextureCache {
	return NewTextureCacheWithSize(defaultMaxCacheSize)
}

func NewTextureCacheWithSize(maxSize int) *TextureCache {
	return &TextureCache{
		textures: make(map[string]cachedTexture),
		order:    make([]string, 0, maxSize),
		maxSize:  maxSize,
	}
}

// Get returns the texture stored under key with its size.
func (c *TextureCache) Get(key string) (*sdl.Texture, int32, int32, bool) {
	if entry, exists := c.textures[key]; exists {
		// Move to end (most recently used)
		c.moveToEnd(key)
		return entry.texture, entry.w, entry.h, true
	}
	return nil, 0, 0, false
}

func (c *TextureCache) Set(key string, texture *sdl.Texture, w, h int32) {
	entry := cachedTexture{texture: texture, w: w, h: h}

	// If key already exists, replace and move to end
	if old, exists := c.textures[key]; exists {
		if old.texture != nil && old.texture != texture {
			old.texture.Destroy()
		}
		c.textures[key] = entry
		c.moveToEnd(key)
		return
	}

	// Evict oldest if at capacity
	if len(c.order) >= c.maxSize {
		c.evictOldest()
	}

	c.textures[key] = entry
	c.order = append(c.order, key)
}

// Len returns the number of cached textures.
func (c *TextureCache) Len() int {
	return len(c.order)
}

func (c *TextureCache) moveToEnd(key string) {
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			c.order = append(c.order, key)
			return
		}
	}
}

func (c *TextureCache) evictOldest() {
	if len(c.order) == 0 {
		return
	}

	oldest := c.order[0]
	c.order = c.order[1:]

	if entry, exists := c.textures[oldest]; exists {
		if entry.texture != nil {
			entry.texture.Destroy()
		}
		delete(c.textures, oldest)
	}
}

func (c *TextureCache) Destroy() {
	for _, entry := range c.textures {
		if entry.texture != nil {
			entry.texture.Destroy()
		}
	}
	c.textures = make(map[string]cachedTexture)
	c.order = c.order[:0]
}
