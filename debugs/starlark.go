package debugs

import (
	"fmt"

	"go.starlark.net/starlark"
)

func toStarlarkValue(v any) starlark.Value {
	switch v := v.(type) {

	case nil:
		return starlark.None

	case bool:
		return starlark.Bool(v)

	case string:
		return starlark.String(v)

	case int:
		return starlark.MakeInt(v)
	case int64:
		return starlark.MakeInt64(v)

	case float64:
		return starlark.Float(v)

	case []string:
		elems := make([]starlark.Value, len(v))
		for i, e := range v {
			elems[i] = starlark.String(e)
		}
		return starlark.NewList(elems)

	case []any:
		elems := make([]starlark.Value, len(v))
		for i, e := range v {
			elems[i] = toStarlarkValue(e)
		}
		return starlark.NewList(elems)

	case map[string]any:
		d := starlark.NewDict(len(v))
		for k, val := range v {
			d.SetKey(starlark.String(k), toStarlarkValue(val))
		}
		return d

	}

	panic(fmt.Errorf("unsupported type for starlark: %T", v))
}
