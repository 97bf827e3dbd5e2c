package cache

type CacheableWidgetEntry struct {
	scope string
	key   string
	value []byte
}

// CacheKeys implements Cacheable.
func (e *CacheableWidgetEntry) CacheKeys() []string {
	return []string{getWidgetEntryCacheKey(e.scope, e.key)}
}

func NewCacheableWidgetEntry(scope, key string, value []byte) *CacheableWidgetEntry {
	return &CacheableWidgetEntry{
		scope: scope,
		key:   key,
		value: value,
	}
}

var _ Cacheable = &CacheableWidgetEntry{}

func getWidgetEntryCacheKey(scope, key string) string {
	return "widget:" + scope + ":" + key
}
