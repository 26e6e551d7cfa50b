package cache

import "fmt"

// PrefixToken namespaces cached credentials by the source they came from.
const PrefixToken = "token:"

// MakeTokenKey creates a cache key for a credential source.
func MakeTokenKey(source string) string {
	return fmt.Sprintf("%s%s", PrefixToken, source)
}
