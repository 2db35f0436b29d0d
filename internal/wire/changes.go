package wire

// Extract splits records into a change set. Tombstones become deleted ids,
// tombstones without an id are dropped and everything else is reported as
// updated. Created is always empty: the server does not track whether a
// client has seen a row before, and clients upsert both lists the same way.
func Extract[T Record](records []T) ChangeSet[T] {
	cs := ChangeSet[T]{
		Created: []T{},
		Updated: []T{},
		Deleted: []string{},
	}
	for _, r := range records {
		if r.Tombstoned() {
			if id := r.RecordID(); id != "" {
				cs.Deleted = append(cs.Deleted, id)
			}
			continue
		}
		cs.Updated = append(cs.Updated, r)
	}
	return cs
}
