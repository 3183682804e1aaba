package chain

import (
	"fmt"
	"reflect"

	"github.com/kbukum/chainkit/errors"
)

// Size maps a sizeable container-like value (string, slice, array, map, or
// channel) to its element count. It is stateless and usable directly as a
// Then argument:
//
//	n := chain.Then(c, chain.Size[string])
func Size[T any](v T) (int, error) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String, reflect.Slice, reflect.Array, reflect.Map, reflect.Chan:
		return rv.Len(), nil
	default:
		return 0, errors.InvalidInput("value", fmt.Sprintf("%T is not a sizeable container", v))
	}
}
