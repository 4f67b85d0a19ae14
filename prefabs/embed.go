package prefabs

import (
	"embed"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// DiskRoot is where on-disk overrides are looked up, relative to the working
// directory.
const DiskRoot = "prefabs"

//go:embed *.yaml
var PrefabsFS embed.FS

//go:embed scripts/*.tengo
var ScriptsFS embed.FS

// Load returns the named prefab. A copy under DiskRoot wins over the embedded
// one so edits apply without a rebuild.
func Load(name string) ([]byte, error) {
	return read(PrefabsFS, prefabPath(name))
}

// LoadScript is Load for tengo scripts. It accepts "x.tengo",
// "scripts/x.tengo" and "prefabs/scripts/x.tengo".
func LoadScript(name string) ([]byte, error) {
	return read(ScriptsFS, scriptPath(name))
}

func read(fsys embed.FS, rel string) ([]byte, error) {
	if data, err := os.ReadFile(filepath.Join(DiskRoot, filepath.FromSlash(rel))); err == nil {
		return data, nil
	}
	data, err := fsys.ReadFile(rel)
	if err != nil {
		return nil, fmt.Errorf("prefabs: %s: %w", rel, err)
	}
	return data, nil
}

func prefabPath(name string) string {
	return strings.TrimPrefix(filepath.ToSlash(name), DiskRoot+"/")
}

func scriptPath(name string) string {
	return path.Join("scripts", strings.TrimPrefix(prefabPath(name), "scripts/"))
}
