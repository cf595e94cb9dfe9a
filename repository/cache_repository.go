package repository

// CacheRepository memoiza trayectorias ya calculadas por clave.
type CacheRepository interface {
	Get(key string) (string, bool)
	Set(key string, value string) error
}
