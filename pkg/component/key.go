package component

import (
	"strings"

	"github.com/agentstation/richtext/pkg/constants"
	"github.com/agentstation/richtext/pkg/errors"
)

// Key is a namespaced identifier such as "minecraft:stone".
type Key struct {
	namespace string
	value     string
}

// ParseKey parses "namespace:value" or a bare "value", which gets the
// default namespace.
func ParseKey(s string) (Key, error) {
	namespace, value, ok := strings.Cut(s, string(constants.NamespaceSeparator))
	if !ok {
		return NewKey(constants.DefaultNamespace, s)
	}
	return NewKey(namespace, value)
}

// NewKey creates a key from its parts. An empty namespace means the default one.
func NewKey(namespace, value string) (Key, error) {
	if namespace == "" {
		namespace = constants.DefaultNamespace
	}
	if i := strings.IndexFunc(namespace, func(r rune) bool { return !validNamespaceRune(r) }); i >= 0 {
		return Key{}, errors.NewValidationError("namespace", namespace,
			"non [a-z0-9_.-] character in namespace of key["+namespace+":"+value+"]")
	}
	if i := strings.IndexFunc(value, func(r rune) bool { return !validValueRune(r) }); i >= 0 {
		return Key{}, errors.NewValidationError("value", value,
			"non [a-z0-9/._-] character in value of key["+namespace+":"+value+"]")
	}
	return Key{namespace: namespace, value: value}, nil
}

// MustKey is like ParseKey but panics on malformed input.
func MustKey(s string) Key {
	k, err := ParseKey(s)
	if err != nil {
		panic(err)
	}
	return k
}

func validNamespaceRune(r rune) bool {
	return r == '_' || r == '-' || r == '.' || (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
}

func validValueRune(r rune) bool {
	return validNamespaceRune(r) || r == '/'
}

// Namespace returns the namespace part.
func (k Key) Namespace() string { return k.namespace }

// Value returns the value part.
func (k Key) Value() string { return k.value }

// IsZero reports whether k was never initialized.
func (k Key) IsZero() bool { return k.namespace == "" && k.value == "" }

// String returns "namespace:value".
func (k Key) String() string {
	if k.IsZero() {
		return ""
	}
	return k.namespace + string(constants.NamespaceSeparator) + k.value
}
