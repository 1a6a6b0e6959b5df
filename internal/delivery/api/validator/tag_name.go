package validator

import (
	"reflect"
	"strings"
)

// jsonTagName names fields after their json, param or query tag.
func jsonTagName(field reflect.StructField) string {
	for _, key := range []string{"json", "param", "query"} {
		name, _, _ := strings.Cut(field.Tag.Get(key), ",")
		if name != "" && name != "-" {
			return name
		}
	}

	return field.Name
}
