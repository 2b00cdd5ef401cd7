package utils

// Redis key prefixes shared across services.
const (
	SESSION_KEY_PREFIX = "watchmapper:session:"
	CACHE_SHOP_KEY     = "watchmapper:cache:shop:"
	CACHE_SHOP_MAP_KEY = "watchmapper:cache:shopmap"
)
