package planfile

import (
	"github.com/awpr/collate"
	"github.com/awpr/collate/util"
)

// Record holds compiled extraction results keyed by manifest field name.
type Record[A any] map[string]A

// Compile turns a manifest into a plan extracting every field's element,
// keyed by field name. The whole record is gathered in one scan bounded
// by the manifest's deepest index.
func Compile[E any](m *Manifest) (*collate.Plan[E, Record[E]], error) {
	return CompileFunc(m, func(e E) E { return e })
}

// CompileFunc is Compile with a per-element transform applied to each
// extracted element.
func CompileFunc[E, A any](m *Manifest, transform func(E) A) (*collate.Plan[E, Record[A]], error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}

	names := util.Map(m.Fields, func(f Field) string { return f.Name })
	plans := util.Map(m.Fields, func(f Field) *collate.Plan[E, A] {
		return collate.Sample(f.Index, transform)
	})

	return collate.Map(collate.All(plans...), func(values []A) Record[A] {
		record := make(Record[A], len(values))
		for i, v := range values {
			record[names[i]] = v
		}
		return record
	}), nil
}
