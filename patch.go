package clux

// Patch merges source into target (both must be Objects): for each
// child of source in order, if its key is absent from target it is
// moved (ownership transferred) to target's end; otherwise the
// matching target and source children are swapped in place, so target
// keeps source's value and source keeps target's prior value.
// Duplicate keys within source are collapsed as they're encountered:
// the later occurrence wins and the earlier one is deleted.
//
// Returns the count of keys inserted into target (so Unpatch can undo
// exactly those), or -1 if either argument is not an Object.
func Patch(target, source *Node) int {
	if !target.IsObject() || !source.IsObject() {
		return -1
	}

	count := 0
	inserts := 0
	for count < len(source.children) {
		key := source.children[count].key
		index := indexOfKey(target, key)

		if index < 0 {
			if err := Move(target, -1, source.children[count]); err != nil {
				Unpatch(target, source, inserts)
				return -1
			}
			inserts++
			continue
		}

		Swap(target.children[index], source.children[count])
		dup := indexOfKey(source, key)
		if dup != count {
			Swap(source.children[dup], source.children[count])
			Delete(source.children[dup])
		} else {
			count++
		}
	}
	return inserts
}

// Unpatch reverses a Patch call: for source's remaining entries (most
// recently touched first), it swaps back whatever target holds under
// the same key and discards the swapped-out source entry, then deletes
// the last inserts children appended to target.
func Unpatch(target, source *Node, inserts int) {
	if !target.IsObject() || !source.IsObject() {
		return
	}
	for len(source.children) > 0 {
		last := len(source.children) - 1
		tail := source.children[last]
		if index := indexOfKey(target, tail.key); index >= 0 {
			Swap(target.children[index], tail)
		}
		Delete(source.children[last])
	}
	for inserts > 0 && len(target.children) > 0 {
		Delete(target.children[len(target.children)-1])
		inserts--
	}
}

func indexOfKey(node *Node, key string) int {
	for i, c := range node.children {
		if c.hasKey && c.key == key {
			return i
		}
	}
	return -1
}
