package trials

// The registry payload is decoded into a tree of map[string]any / []any.
// Every read goes through these helpers so that a missing or mistyped
// section yields the zero value instead of a panic.

// lookup follows keys through nested objects and returns nil at the first
// missing link or non-object node.
func lookup(node any, keys ...string) any {
	cur := node
	for _, key := range keys {
		obj, ok := cur.(map[string]any)
		if !ok {
			return nil
		}
		cur, ok = obj[key]
		if !ok {
			return nil
		}
	}
	return cur
}

// objectAt returns the object at the path, or nil.
func objectAt(node any, keys ...string) map[string]any {
	obj, _ := lookup(node, keys...).(map[string]any)
	return obj
}

// stringAt returns the string at the path, or "".
func stringAt(node any, keys ...string) string {
	s, _ := lookup(node, keys...).(string)
	return s
}

// listAt returns the array at the path, or nil.
func listAt(node any, keys ...string) []any {
	list, _ := lookup(node, keys...).([]any)
	return list
}

// stringsAt returns the string elements of the array at the path, skipping
// anything that is not a string. The result is never nil.
func stringsAt(node any, keys ...string) []string {
	list := listAt(node, keys...)
	out := make([]string, 0, len(list))
	for _, v := range list {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// namesAt collects the "name" field of every object in the array at the path.
// Entries without a string name are skipped.
func namesAt(node any, keys ...string) []string {
	list := listAt(node, keys...)
	out := make([]string, 0, len(list))
	for _, v := range list {
		if name, ok := lookup(v, "name").(string); ok {
			out = append(out, name)
		}
	}
	return out
}
