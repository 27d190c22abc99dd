package source

import "path/filepath"

// Resolve returns the transitive closure of f's Dependencies, loading
// each one through m as needed. visited accumulates the result and also
// guards against import cycles: a file already present in visited is
// never re-descended into.
func (f *File) Resolve(m *Manager) (map[*File]struct{}, error) {
	visited := make(map[*File]struct{})
	if err := f.resolve(m, visited); err != nil {
		return nil, err
	}
	return visited, nil
}

func (f *File) resolve(m *Manager, visited map[*File]struct{}) error {
	if _, ok := visited[f]; ok {
		return nil
	}
	visited[f] = struct{}{}

	root := filepath.Dir(f.Path)
	for _, dep := range f.Dependencies {
		child, err := m.Get(dep.Path, root, dep.Kind)
		if err != nil {
			return err
		}
		if _, ok := visited[child]; ok {
			continue
		}
		if err := child.resolve(m, visited); err != nil {
			return err
		}
	}
	return nil
}
