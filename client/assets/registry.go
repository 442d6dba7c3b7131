package assets

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/cbodonnell/playerdata/client/objects"
	"github.com/cbodonnell/playerdata/pkg/kinematic"
	"github.com/cbodonnell/playerdata/pkg/log"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

//go:embed resources
var resources embed.FS

var ErrResourceNotFound = errors.New("resource not found")

// Registry resolves prefab names like "levels/arena" to prefab definitions.
// Names are file paths below the resources root without the extension.
type Registry struct {
	prefabs map[string]*Prefab
}

// NewRegistry loads every .yaml/.yml file below root in fsys.
func NewRegistry(fsys fs.FS, root string) (*Registry, error) {
	r := &Registry{
		prefabs: make(map[string]*Prefab),
	}

	err := fs.WalkDir(fsys, root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		ext := path.Ext(p)
		if ext != ".yaml" && ext != ".yml" {
			return nil
		}

		b, err := fs.ReadFile(fsys, p)
		if err != nil {
			return fmt.Errorf("failed to read prefab %s: %w", p, err)
		}

		prefab := &Prefab{}
		if err := yaml.Unmarshal(b, prefab); err != nil {
			return fmt.Errorf("failed to unmarshal prefab %s: %w", p, err)
		}

		name := strings.TrimSuffix(strings.TrimPrefix(p, root+"/"), ext)
		if prefab.ID == "" {
			prefab.ID = path.Base(name)
		}
		if err := prefab.validate(); err != nil {
			return fmt.Errorf("invalid prefab %s: %w", p, err)
		}
		r.prefabs[name] = prefab
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Debug("Loaded %d prefabs", len(r.prefabs))
	return r, nil
}

// NewEmbeddedRegistry loads the prefabs bundled with the binary.
func NewEmbeddedRegistry() (*Registry, error) {
	return NewRegistry(resources, "resources")
}

// NewDirRegistry loads prefabs from a directory on disk.
func NewDirRegistry(dir string) (*Registry, error) {
	return NewRegistry(os.DirFS(dir), ".")
}

// Names returns the sorted prefab names.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.prefabs))
	for name := range r.prefabs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Load returns the prefab registered under name.
func (r *Registry) Load(name string) (*Prefab, error) {
	prefab, ok := r.prefabs[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrResourceNotFound, name)
	}
	return prefab, nil
}

// Instantiate builds the named prefab and attaches it under parent with the
// given local offset, so it lands at parent's world position plus offset.
func (r *Registry) Instantiate(name string, parent objects.GameObject, offset kinematic.Vector) (objects.GameObject, error) {
	log.Debug("Trying to load prefab %s", name)
	prefab, err := r.Load(name)
	if err != nil {
		return nil, err
	}
	if parent == nil {
		return nil, fmt.Errorf("cannot instantiate %s without a parent", name)
	}

	id := fmt.Sprintf("%s-%s", prefab.ID, uuid.New().String())
	obj, err := build(id, prefab)
	if err != nil {
		return nil, fmt.Errorf("failed to build prefab %s: %w", name, err)
	}
	obj.SetPosition(offset)

	if err := parent.AddChild(id, obj); err != nil {
		return nil, fmt.Errorf("failed to attach prefab %s: %w", name, err)
	}

	return obj, nil
}

func build(id string, prefab *Prefab) (objects.GameObject, error) {
	var obj objects.GameObject
	switch prefab.Kind {
	case PrefabKindRect:
		clr, err := parseColor(prefab.Color)
		if err != nil {
			return nil, err
		}
		obj = objects.NewLevelObject(id, objects.NewLevelObjectOptions{
			Position: prefab.Position,
			W:        prefab.Width,
			H:        prefab.Height,
			Color:    clr,
			ZIndex:   prefab.ZIndex,
		})
	default:
		obj = objects.NewBaseObject(id, &objects.NewBaseObjectOpts{
			ZIndex:   prefab.ZIndex,
			Position: prefab.Position,
		})
	}

	for _, childPrefab := range prefab.Children {
		child, err := build(childPrefab.ID, childPrefab)
		if err != nil {
			return nil, err
		}
		if err := obj.AddChild(childPrefab.ID, child); err != nil {
			return nil, err
		}
	}

	return obj, nil
}
