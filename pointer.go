package clux

import (
	"strconv"
	"strings"
)

// comparePointerSegment reports whether key matches the (still-escaped)
// pointer segment seg, where a literal '~' in key must correspond to
// "~0" in seg and a literal '/' in key must correspond to "~1".
func comparePointerSegment(key, seg string) bool {
	i, j := 0, 0
	for j < len(seg) {
		if i >= len(key) {
			return false
		}
		switch key[i] {
		case '~':
			if j+1 >= len(seg) || seg[j] != '~' || seg[j+1] != '0' {
				return false
			}
			j += 2
		case '/':
			if j+1 >= len(seg) || seg[j] != '~' || seg[j+1] != '1' {
				return false
			}
			j += 2
		default:
			if seg[j] != key[i] {
				return false
			}
			j++
		}
		i++
	}
	return i == len(key)
}

func findKey(node *Node, seg string) *Node {
	for _, c := range node.children {
		if c.hasKey && comparePointerSegment(c.key, seg) {
			return c
		}
	}
	return nil
}

func findIndex(node *Node, seg string) *Node {
	if seg == "" {
		return nil
	}
	for i := 0; i < len(seg); i++ {
		if !(seg[i] >= '0' && seg[i] <= '9') {
			return nil
		}
	}
	index, err := strconv.ParseUint(seg, 10, 64)
	if err != nil {
		return nil
	}
	if index >= uint64(len(node.children)) {
		return nil
	}
	return node.children[index]
}

func pointerWalk(node *Node, path string) *Node {
	for node != nil {
		end := strings.IndexByte(path, '/')
		var seg string
		if end < 0 {
			seg, end = path, len(path)
		} else {
			seg = path[:end]
		}
		if node.tag == Object {
			node = findKey(node, seg)
		} else {
			node = findIndex(node, seg)
		}
		if end >= len(path) || path[end] != '/' {
			return node
		}
		path = path[end+1:]
	}
	return nil
}

// Pointer resolves an RFC-6901-style path relative to node. "" returns
// node itself; a leading "/" is otherwise required. Each segment is
// unescaped on the fly (~0 -> ~, ~1 -> /) while matching: within an
// Object, segments match child keys byte-for-byte; within an Array,
// segments are decimal non-negative indices. A miss anywhere along the
// path returns nil.
func Pointer(node *Node, path string) *Node {
	if path == "" {
		return node
	}
	if path[0] != '/' {
		return nil
	}
	return pointerWalk(node, path[1:])
}

func escapePointerSegment(s string) string {
	if !strings.ContainsAny(s, "~/") {
		return s
	}
	s = strings.ReplaceAll(s, "~", "~0")
	s = strings.ReplaceAll(s, "/", "~1")
	return s
}

// PathOf builds the pointer path from n's root down to n, escaping `~`
// and `/` in object keys, suitable for passing to Pointer on the same
// root to recover n.
func PathOf(n *Node) string {
	if n == nil || n.parent == nil {
		return ""
	}
	var segs []string
	for cur := n; cur.parent != nil; cur = cur.parent {
		if cur.hasKey {
			segs = append(segs, escapePointerSegment(cur.key))
		} else {
			segs = append(segs, strconv.Itoa(cur.Index()))
		}
	}
	for i, j := 0, len(segs)-1; i < j; i, j = i+1, j-1 {
		segs[i], segs[j] = segs[j], segs[i]
	}
	return "/" + strings.Join(segs, "/")
}
