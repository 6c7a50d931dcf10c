package app

import (
	"github.com/tidwall/gjson"
)

// summariseBody pulls a few log friendly facts out of a JSON body without
// decoding it. The body itself is always printed untouched.
func summariseBody(body []byte) []any {
	if len(body) == 0 {
		return []any{"body", "empty"}
	}
	if !gjson.ValidBytes(body) {
		return []any{"body", "not json"}
	}

	root := gjson.ParseBytes(body)
	if root.IsArray() {
		return []any{"items", len(root.Array())}
	}
	if !root.IsObject() {
		return nil
	}

	var args []any
	root.ForEach(func(key, value gjson.Result) bool {
		if value.IsArray() {
			args = append(args, "items", len(value.Array()))
			return false
		}
		return true
	})

	if page := root.Get("pageIndex"); page.Exists() {
		args = append(args, "page", page.Int())
	}
	if total := root.Get("totalPageCount"); total.Exists() {
		args = append(args, "total_pages", total.Int())
	}
	if id := root.Get("id"); id.Exists() {
		args = append(args, "id", id.String())
	}
	if msg := root.Get("error.message"); msg.Exists() {
		args = append(args, "error", msg.String())
	}
	return args
}
