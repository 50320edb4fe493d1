// File: utils/constants.go
package utils

// SessionCachePrefix is the prefix used for Redis edit-session cache keys.
const SessionCachePrefix = "editsession:"
