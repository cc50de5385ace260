// Package constants provides shared constants used throughout the richtext codebase.
// This includes the join defaults, key defaults and file permissions that
// should be consistent across the library and the CLI.
package constants

// Join defaults
const (
	// DefaultSeparator is placed between two joined elements
	DefaultSeparator = ", "

	// DefaultTruncated is the marker appended when a join hits its limit
	DefaultTruncated = "..."

	// DefaultLimit means a join includes every element
	DefaultLimit = -1
)

// Key constants
const (
	// DefaultNamespace is the namespace used when a key string has none
	DefaultNamespace = "minecraft"

	// NamespaceSeparator separates the namespace from the value of a key
	NamespaceSeparator = ':'
)

// Translatable and selector defaults
const (
	// DefaultSelectorSeparator is the separator used when a selector matches many entities
	DefaultSelectorSeparator = ", "
)

// File permission constants define standard Unix file permissions
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)

// Path constants
const (
	// DefaultConfigName is the config file name searched for in $HOME and the working directory
	DefaultConfigName = ".richtext"

	// EnvPrefix prefixes every environment variable the CLI reads
	EnvPrefix = "RICHTEXT"
)
