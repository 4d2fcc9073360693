// File: objx.go
// Title: Generic Object Helpers
// Description: JSONPath queries over arbitrary values and small nil and
//              zero-value helpers.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation

package objx

import (
	"context"
	"fmt"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	json "github.com/goccy/go-json"

	exterr "github.com/msto63/extkit/core/error"
	"github.com/msto63/extkit/core/errors"
	"github.com/msto63/extkit/utils/mapx"
)

type evaluator = func(context.Context, any) (any, error)

var pathCache = mapx.NewCache[string, evaluator](mapx.CacheOptions{MaxEntries: 256})

// PathCacheStats exposes the compiled JSONPath cache counters
func PathCacheStats() mapx.StatsProvider {
	return pathCache
}

// QueryPath evaluates a JSONPath expression such as "$.items[0].name" or
// "$.items[*].price" against v. Structs are viewed through their JSON
// encoding, so json tags decide the key names. Wildcards and filters yield
// a []any.
func QueryPath(v any, path string) (any, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.InvalidArgument(errors.ModuleObjx, "QueryPath", "path", path, "must not be empty")
	}
	eval, err := pathCache.GetOrAdd(path, compilePath)
	if err != nil {
		return nil, err
	}
	doc, err := generic(v)
	if err != nil {
		return nil, err
	}
	result, err := eval(context.Background(), doc)
	if err != nil {
		return nil, errors.NewErrorBuilder(errors.ModuleObjx).
			Operation("QueryPath").
			Messagef("no value at %s", path).
			Code(exterr.CodeNotFound).
			Cause(err).
			Detail("path", path).
			Build()
	}
	return result, nil
}

func compilePath(path string) (evaluator, error) {
	eval, err := jsonpath.New(path)
	if err != nil {
		return nil, errors.InvalidFormat(errors.ModuleObjx, "QueryPath", path, "JSONPath expression", err)
	}
	return eval, nil
}

// generic converts v into the map[string]any / []any form jsonpath walks
func generic(v any) (any, error) {
	switch v.(type) {
	case nil, map[string]any, []any, string, float64, bool:
		return v, nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		return nil, errors.ConversionFailed(errors.ModuleObjx, "QueryPath", typeOf(v), "JSON", err)
	}
	var out any
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, errors.ConversionFailed(errors.ModuleObjx, "QueryPath", typeOf(v), "JSON", err)
	}
	return out, nil
}

// QueryPathAs is QueryPath with the result converted to T through JSON
func QueryPathAs[T any](v any, path string) (T, error) {
	var out T
	result, err := QueryPath(v, path)
	if err != nil {
		return out, err
	}
	data, err := json.Marshal(result)
	if err != nil {
		return out, errors.ConversionFailed(errors.ModuleObjx, "QueryPathAs", typeOf(result), typeOf(out), err)
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return out, errors.ConversionFailed(errors.ModuleObjx, "QueryPathAs", typeOf(result), typeOf(out), err)
	}
	return out, nil
}

// DefaultIfNil dereferences v, or returns def when v is nil
func DefaultIfNil[T any](v *T, def T) T {
	if v == nil {
		return def
	}
	return *v
}

// In reports whether v equals one of candidates
func In[T comparable](v T, candidates ...T) bool {
	for _, c := range candidates {
		if c == v {
			return true
		}
	}
	return false
}

// Coalesce returns the first value that is not the zero value of T
func Coalesce[T comparable](values ...T) T {
	var zero T
	for _, v := range values {
		if v != zero {
			return v
		}
	}
	return zero
}

// Ptr returns a pointer to a copy of v
func Ptr[T any](v T) *T { return &v }

func typeOf(v any) string {
	return fmt.Sprintf("%T", v)
}
