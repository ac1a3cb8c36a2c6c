package gen

import (
	"container/heap"

	"github.com/syssam/coder/model"
)

// Order sorts the eligible classes topologically over the generalization
// relation: every eligible ancestor of a class, direct or reached through
// non-eligible classes, precedes it. Classes without an ordering constraint
// are sorted by name, then by model index.
func Order(m *model.Model, eligible []model.ClassID) ([]model.ClassID, error) {
	in := make(map[model.ClassID]bool, len(eligible))
	for _, id := range eligible {
		in[id] = true
	}
	var (
		children = make(map[model.ClassID][]model.ClassID, len(eligible))
		indegree = make(map[model.ClassID]int, len(eligible))
	)
	for _, id := range eligible {
		supers, err := SuperClasses(m, id)
		if err != nil {
			return nil, err
		}
		for _, s := range supers {
			if in[s] {
				children[s] = append(children[s], id)
				indegree[id]++
			}
		}
	}
	ready := &classQueue{model: m}
	for _, id := range eligible {
		if indegree[id] == 0 {
			ready.ids = append(ready.ids, id)
		}
	}
	heap.Init(ready)
	sorted := make([]model.ClassID, 0, len(eligible))
	for ready.Len() > 0 {
		id := heap.Pop(ready).(model.ClassID)
		sorted = append(sorted, id)
		for _, c := range children[id] {
			if indegree[c]--; indegree[c] == 0 {
				heap.Push(ready, c)
			}
		}
	}
	// SuperClasses rejects cycles, so a leftover means corrupted input.
	if len(sorted) != len(eligible) {
		var path []string
		for _, id := range eligible {
			if indegree[id] > 0 {
				path = append(path, className(m, id))
			}
		}
		return nil, NewConfigurationError("generalization", "classes could not be ordered", path)
	}
	return sorted, nil
}

// classQueue is a min-heap of classes keyed by (name, index).
type classQueue struct {
	model *model.Model
	ids   []model.ClassID
}

func (q *classQueue) Len() int { return len(q.ids) }

func (q *classQueue) Less(i, j int) bool {
	a, b := q.model.Classes[q.ids[i]].Name, q.model.Classes[q.ids[j]].Name
	if a != b {
		return a < b
	}
	return q.ids[i] < q.ids[j]
}

func (q *classQueue) Swap(i, j int) { q.ids[i], q.ids[j] = q.ids[j], q.ids[i] }

func (q *classQueue) Push(x any) { q.ids = append(q.ids, x.(model.ClassID)) }

func (q *classQueue) Pop() any {
	n := len(q.ids)
	id := q.ids[n-1]
	q.ids = q.ids[:n-1]
	return id
}
