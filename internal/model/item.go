package model

// ChecklistItem is the domain model for a checklist entry.
// Ids are stable once assigned; only Completed changes after seeding.
type ChecklistItem struct {
	ID        int    `json:"id" yaml:"id"`
	Text      string `json:"text" yaml:"text"`
	Completed bool   `json:"completed" yaml:"completed"`
}

func (i ChecklistItem) EntityID() int { return i.ID }

// Toggle returns a copy of items with the completed flag of the entry
// matching id inverted. found is false when no entry matches.
func Toggle(items []ChecklistItem, id int) (out []ChecklistItem, found bool) {
	out = make([]ChecklistItem, len(items))
	for i, it := range items {
		if it.ID == id {
			it.Completed = !it.Completed
			found = true
		}
		out[i] = it
	}
	return out, found
}

// AppendItem adds a pending entry with the next free id.
func AppendItem(items []ChecklistItem, text string) ([]ChecklistItem, ChecklistItem) {
	it := ChecklistItem{ID: NextID(items), Text: text}
	out := make([]ChecklistItem, 0, len(items)+1)
	out = append(out, items...)
	return append(out, it), it
}

// Progress counts completed and pending entries.
func Progress(items []ChecklistItem) (done, pending int) {
	for _, it := range items {
		if it.Completed {
			done++
		} else {
			pending++
		}
	}
	return
}
