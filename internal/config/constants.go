package config

const (
	// ProviderESPN reads the public scoreboard API.
	ProviderESPN = "espn"
	// ProviderFixture serves the embedded canned season.
	ProviderFixture = "fixture"

	// CacheBackendMemory keeps entries in process.
	CacheBackendMemory = "memory"
	// CacheBackendRedis shares entries through Redis.
	CacheBackendRedis = "redis"
	// CacheBackendNone disables caching; every request recomputes.
	CacheBackendNone = "none"

	defaultEnvFile = ".env"
)
