package assets

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spaghettifunk/glshapes/engine/assets/loaders"
	"github.com/spaghettifunk/glshapes/engine/core"
	"github.com/spaghettifunk/glshapes/engine/resources"
)

// Size of the change queue drained by the main loop once per frame.
const changeQueueSize = 16

type AssetInfo struct {
	Path       string
	Type       resources.ResourceType
	LastLoaded time.Time
}

// AssetManager indexes the assets of a scene and, when they live in a
// directory on disk, watches that directory for edits.
type AssetManager struct {
	root    string
	fsys    fs.FS
	assets  map[string]AssetInfo
	loaders map[resources.ResourceType]Loader

	mutex sync.RWMutex

	done     chan struct{}
	wg       sync.WaitGroup
	fsnotify *fsnotify.Watcher
	isClosed atomic.Bool
	changes  chan string
}

func NewAssetManager() *AssetManager {
	am := &AssetManager{
		assets:  make(map[string]AssetInfo),
		loaders: make(map[resources.ResourceType]Loader),
		changes: make(chan string, changeQueueSize),
		done:    make(chan struct{}),
	}
	// Register loaders
	am.registerLoader(resources.ResourceTypeShader, &loaders.ShaderLoader{})
	am.registerLoader(resources.ResourceTypeScene, &loaders.SceneLoader{})
	return am
}

// Initialize indexes the assets. When root is a directory on disk it is
// served and watched; otherwise the fallback file system (typically the
// embedded exercise assets) is indexed without watching.
func (am *AssetManager) Initialize(root string, fallback fs.FS) error {
	if root != "" {
		if fi, err := os.Stat(root); err == nil && fi.IsDir() {
			am.root = root
			am.fsys = os.DirFS(root)
			if err := am.startWatching(); err != nil {
				return err
			}
			return am.index()
		}
		core.LogWarn("asset directory %q not found, using built-in assets", root)
	}
	if fallback == nil {
		return fmt.Errorf("%w: no asset directory and no built-in assets", core.ErrAssetNotFound)
	}
	am.fsys = fallback
	return am.index()
}

func (am *AssetManager) startWatching() error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	am.fsnotify = w
	if err := am.watchRecursive(am.root, false); err != nil {
		w.Close()
		return err
	}
	am.wg.Add(1)
	go am.start()
	return nil
}

// Watching reports whether on-disk changes are being tracked.
func (am *AssetManager) Watching() bool {
	return am.fsnotify != nil
}

func (am *AssetManager) index() error {
	return fs.WalkDir(am.fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			am.handleFileEvent(p)
		}
		return nil
	})
}

// Register loaders for each asset type
func (am *AssetManager) registerLoader(assetType resources.ResourceType, loader Loader) {
	am.loaders[assetType] = loader
}

// LoadAsset loads the asset at path (slash separated, relative to the
// asset root) with the loader registered for its type.
func (am *AssetManager) LoadAsset(p string) (*resources.Resource, error) {
	p = path.Clean(filepath.ToSlash(p))

	am.mutex.Lock()
	asset, exists := am.assets[p]
	if exists {
		asset.LastLoaded = time.Now()
		am.assets[p] = asset
	}
	am.mutex.Unlock()
	if !exists {
		return nil, fmt.Errorf("%w: %s", core.ErrAssetNotFound, p)
	}

	loader, loaderExists := am.loaders[asset.Type]
	if !loaderExists {
		return nil, fmt.Errorf("%w: no loader registered for %s", core.ErrUnknownAssetType, asset.Type)
	}
	return loader.Load(am.fsys, p)
}

func (am *AssetManager) UnloadAsset(asset *resources.Resource) error {
	if asset == nil {
		return nil
	}
	loader, ok := am.loaders[asset.Type]
	if !ok {
		return nil
	}
	return loader.Unload(asset)
}

// Assets lists the indexed assets of the given type.
func (am *AssetManager) Assets(t resources.ResourceType) []AssetInfo {
	am.mutex.RLock()
	defer am.mutex.RUnlock()
	var out []AssetInfo
	for _, a := range am.assets {
		if a.Type == t {
			out = append(out, a)
		}
	}
	return out
}

// Changes delivers the relative paths of assets modified on disk. The
// channel is buffered; the main loop drains it without blocking.
func (am *AssetManager) Changes() <-chan string {
	return am.changes
}

func (am *AssetManager) Shutdown() error {
	if !am.isClosed.CompareAndSwap(false, true) {
		return nil
	}
	close(am.done)
	am.wg.Wait()
	return nil
}

func (am *AssetManager) start() {
	defer am.wg.Done()
	for {
		select {
		case e, ok := <-am.fsnotify.Events:
			if !ok {
				return
			}
			am.handleWatchEvent(e)

		case err, ok := <-am.fsnotify.Errors:
			if !ok {
				return
			}
			core.LogError("asset watcher: %s", err)

		case <-am.done:
			am.fsnotify.Close()
			return
		}
	}
}

func (am *AssetManager) handleWatchEvent(e fsnotify.Event) {
	s, err := os.Stat(e.Name)
	if err == nil && s != nil && s.IsDir() {
		if e.Op&fsnotify.Create != 0 {
			if err := am.watchRecursive(e.Name, false); err != nil {
				core.LogWarn("failed to watch %s: %s", e.Name, err)
			}
		}
		return
	}

	rel, ok := am.relative(e.Name)
	if !ok {
		return
	}
	// Handle create or modify events
	if e.Op&(fsnotify.Create|fsnotify.Write) != 0 {
		if am.handleFileEvent(rel) {
			am.notify(rel)
		}
	}
	// Can't stat a deleted directory, so just pretend that it's always a directory and
	// try to remove from the watch list.
	if e.Op&(fsnotify.Remove|fsnotify.Rename) != 0 {
		am.removeAsset(rel)
		_ = am.fsnotify.Remove(e.Name)
	}
}

func (am *AssetManager) notify(rel string) {
	select {
	case am.changes <- rel:
		core.LogDebug("asset changed: %s", rel)
	default:
		core.LogWarn("asset change queue full, dropping %s", rel)
	}
}

func (am *AssetManager) relative(name string) (string, bool) {
	rel, err := filepath.Rel(am.root, name)
	if err != nil || strings.HasPrefix(rel, "..") {
		return "", false
	}
	return filepath.ToSlash(rel), true
}

// watchRecursive adds all directories under the given one to the watch list.
func (am *AssetManager) watchRecursive(p string, unWatch bool) error {
	if am.isClosed.Load() {
		return errors.New("asset manager already closed")
	}
	return filepath.WalkDir(p, func(walkPath string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if unWatch {
			return am.fsnotify.Remove(walkPath)
		}
		return am.fsnotify.Add(walkPath)
	})
}

// Handle the creation or modification of a file. Reports whether the file
// is a known asset type.
func (am *AssetManager) handleFileEvent(p string) bool {
	assetType := determineAssetType(p)
	if assetType == resources.ResourceTypeNone {
		return false
	}

	am.mutex.Lock()
	defer am.mutex.Unlock()
	am.assets[p] = AssetInfo{
		Path: p,
		Type: assetType,
	}
	return true
}

// Remove the asset from the index if it was deleted
func (am *AssetManager) removeAsset(p string) {
	am.mutex.Lock()
	defer am.mutex.Unlock()

	delete(am.assets, p)
}

func determineAssetType(p string) resources.ResourceType {
	switch strings.ToLower(path.Ext(p)) {
	case ".vert", ".frag", ".glsl":
		return resources.ResourceTypeShader
	case ".toml", ".yaml", ".yml":
		return resources.ResourceTypeScene
	default:
		return resources.ResourceTypeNone
	}
}
