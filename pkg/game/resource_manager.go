package game

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/decker502/roguelike/pkg/logging"
)

var (
	// ErrUnknownAsset 资源 ID 不属于该 ResourceManager
	ErrUnknownAsset = errors.New("unknown asset")
	// ErrAssetNotReady 资源仍在加载中
	ErrAssetNotReady = errors.New("asset not loaded yet")
	// ErrNoLoader 没有为该扩展名注册加载器
	ErrNoLoader = errors.New("no loader for extension")
)

// LoadState 描述单个资源的加载状态
type LoadState int

const (
	LoadStateNotLoaded LoadState = iota
	LoadStateLoading
	LoadStateLoaded
	LoadStateFailed
)

func (s LoadState) String() string {
	switch s {
	case LoadStateNotLoaded:
		return "NotLoaded"
	case LoadStateLoading:
		return "Loading"
	case LoadStateLoaded:
		return "Loaded"
	case LoadStateFailed:
		return "Failed"
	default:
		return "Unknown"
	}
}

// AssetID 唯一标识一个已请求的资源
type AssetID uuid.UUID

func (id AssetID) String() string {
	return uuid.UUID(id).String()
}

// AssetLoader 将文件内容解码为具体的资源对象
type AssetLoader interface {
	Load(path string, data []byte) (any, error)
	Extensions() []string
}

// LoadProgress 是已加载/总数计数
type LoadProgress struct {
	Loaded int
	Failed int
	Total  int
}

// Fraction 返回加载进度 (0.0 - 1.0)，没有任何资源时视为已完成
func (p LoadProgress) Fraction() float64 {
	if p.Total == 0 {
		return 1.0
	}
	return float64(p.Loaded) / float64(p.Total)
}

// AssetFailure 记录一个加载失败的资源
type AssetFailure struct {
	ID   AssetID
	Path string
	Err  error
}

type assetEntry struct {
	id         AssetID
	path       string
	state      LoadState
	value      any
	err        error
	generation int
}

// ResourceManager is responsible for centralized management of game resources.
// Every resource is requested once per path and decoded on a worker goroutine;
// callers poll LoadState until the resource is Loaded or Failed.
//
// Unlike a synchronous cache, ResourceManager is safe for concurrent use:
// the workers publish their results under the manager's lock.
//
// Usage:
//
//	rm := NewResourceManager(assetsFS, FontLoader{}, ImageLoader{})
//	if err := rm.LoadResourceConfig("config/resources.yaml"); err != nil {
//	    return err
//	}
//	ids, err := rm.LoadGroup("menu")
type ResourceManager struct {
	fsys fs.FS

	mu       sync.RWMutex
	loaders  map[string]AssetLoader
	byPath   map[string]AssetID
	entries  map[AssetID]*assetEntry
	inflight sync.WaitGroup

	// YAML resource configuration
	config      *ResourceConfig
	resourceMap map[string]string // Resource ID -> file path

	logger *log.Logger
}

// NewResourceManager creates a ResourceManager reading files from fsys.
func NewResourceManager(fsys fs.FS, loaders ...AssetLoader) *ResourceManager {
	rm := &ResourceManager{
		fsys:        fsys,
		loaders:     make(map[string]AssetLoader),
		byPath:      make(map[string]AssetID),
		entries:     make(map[AssetID]*assetEntry),
		resourceMap: make(map[string]string),
		logger:      logging.For("ResourceManager"),
	}

	for _, l := range loaders {
		rm.RegisterLoader(l)
	}

	return rm
}

// RegisterLoader registers l for all of its extensions, replacing earlier loaders.
func (rm *ResourceManager) RegisterLoader(l AssetLoader) {
	rm.mu.Lock()
	defer rm.mu.Unlock()

	for _, ext := range l.Extensions() {
		rm.loaders[strings.ToLower(ext)] = l
	}
}

// LoadResourceConfig reads the YAML manifest and builds the resource ID -> path map.
func (rm *ResourceManager) LoadResourceConfig(configPath string) error {
	data, err := fs.ReadFile(rm.fsys, configPath)
	if err != nil {
		return fmt.Errorf("failed to read resource config %s: %w", configPath, err)
	}

	config, err := ParseResourceConfig(data)
	if err != nil {
		return fmt.Errorf("failed to parse resource config %s: %w", configPath, err)
	}

	rm.mu.Lock()
	defer rm.mu.Unlock()

	rm.config = config
	rm.resourceMap = make(map[string]string)
	for _, group := range config.Groups {
		for _, entry := range group.Entries() {
			rm.resourceMap[entry.ID] = buildFullPath(config.BasePath, entry.Path)
		}
	}

	rm.logger.Debug("resource config loaded", "path", configPath, "groups", len(config.Groups), "resources", len(rm.resourceMap))
	return nil
}

// Load requests the resource at p and returns its id.
// Requesting the same (cleaned) path again returns the same id without reloading.
func (rm *ResourceManager) Load(p string) AssetID {
	p = path.Clean(filepath.ToSlash(p))

	rm.mu.Lock()
	defer rm.mu.Unlock()

	if id, ok := rm.byPath[p]; ok {
		return id
	}

	entry := &assetEntry{
		id:   AssetID(uuid.New()),
		path: p,
	}
	rm.byPath[p] = entry.id
	rm.entries[entry.id] = entry

	rm.startLocked(entry)
	return entry.id
}

// LoadByID requests the resource declared under resourceID in the manifest.
func (rm *ResourceManager) LoadByID(resourceID string) (AssetID, error) {
	rm.mu.RLock()
	config := rm.config
	filePath, exists := rm.resourceMap[resourceID]
	rm.mu.RUnlock()

	if config == nil {
		return AssetID{}, fmt.Errorf("resource config not loaded - call LoadResourceConfig first")
	}
	if !exists {
		return AssetID{}, fmt.Errorf("resource ID not found: %s", resourceID)
	}

	return rm.Load(filePath), nil
}

// LoadGroup requests every resource of a manifest group.
// The returned ids follow the manifest order, images before fonts.
func (rm *ResourceManager) LoadGroup(groupName string) (map[string]AssetID, []AssetID, error) {
	rm.mu.RLock()
	config := rm.config
	rm.mu.RUnlock()

	if config == nil {
		return nil, nil, fmt.Errorf("resource config not loaded - call LoadResourceConfig first")
	}

	group, exists := config.Groups[groupName]
	if !exists {
		return nil, nil, fmt.Errorf("resource group not found: %s", groupName)
	}

	byResource := make(map[string]AssetID)
	var ids []AssetID
	for _, entry := range group.Entries() {
		id, err := rm.LoadByID(entry.ID)
		if err != nil {
			return nil, nil, fmt.Errorf("load group %s: %w", groupName, err)
		}
		byResource[entry.ID] = id
		ids = append(ids, id)
	}

	return byResource, ids, nil
}

// Reload loads the resource at p again if it was requested before.
// While reloading its state is Loading; the previous value stays readable until then.
func (rm *ResourceManager) Reload(p string) bool {
	p = path.Clean(filepath.ToSlash(p))

	rm.mu.Lock()
	defer rm.mu.Unlock()

	id, ok := rm.byPath[p]
	if !ok {
		return false
	}

	rm.startLocked(rm.entries[id])
	return true
}

// startLocked starts a worker for entry. rm.mu must be held.
func (rm *ResourceManager) startLocked(entry *assetEntry) {
	entry.generation++
	entry.state = LoadStateLoading

	ext := strings.ToLower(filepath.Ext(entry.path))
	loader, ok := rm.loaders[ext]
	if !ok {
		entry.state = LoadStateFailed
		entry.err = fmt.Errorf("load %s: %w %q", entry.path, ErrNoLoader, ext)
		rm.logger.Warn("failed to load asset", "path", entry.path, "err", entry.err)
		return
	}

	generation := entry.generation
	p := entry.path

	rm.inflight.Add(1)
	go func() {
		defer rm.inflight.Done()

		startTime := time.Now()
		value, err := rm.decode(loader, p)
		rm.finish(entry.id, generation, value, err)

		if err != nil {
			rm.logger.Warn("failed to load asset", "path", p, "duration", time.Since(startTime), "err", err)
		} else {
			rm.logger.Debug("finished loading asset", "path", p, "duration", time.Since(startTime))
		}
	}()
}

func (rm *ResourceManager) decode(loader AssetLoader, p string) (value any, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("loading %s panicked: %v", p, r)
		}
	}()

	data, err := fs.ReadFile(rm.fsys, p)
	if err != nil {
		return nil, fmt.Errorf("open asset %s: %w", p, err)
	}

	value, err = loader.Load(p, data)
	if err != nil {
		return nil, fmt.Errorf("decode asset %s with %T: %w", p, loader, err)
	}

	return value, nil
}

func (rm *ResourceManager) finish(id AssetID, generation int, value any, err error) {
	rm.mu.Lock()
	defer rm.mu.Unlock()

	entry, ok := rm.entries[id]
	if !ok || entry.generation != generation {
		// a newer reload superseded this result
		return
	}

	if err != nil {
		entry.state = LoadStateFailed
		entry.err = err
		return
	}

	entry.state = LoadStateLoaded
	entry.value = value
	entry.err = nil
}

// LoadState returns the state of id; ok is false for ids this manager never issued.
func (rm *ResourceManager) LoadState(id AssetID) (state LoadState, ok bool) {
	rm.mu.RLock()
	defer rm.mu.RUnlock()

	entry, ok := rm.entries[id]
	if !ok {
		return LoadStateNotLoaded, false
	}
	return entry.state, true
}

// Get returns the decoded resource of id.
//
// A resource being reloaded keeps returning its previous value.
func (rm *ResourceManager) Get(id AssetID) (any, error) {
	rm.mu.RLock()
	defer rm.mu.RUnlock()

	entry, ok := rm.entries[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownAsset, id)
	}

	switch {
	case entry.value != nil && entry.state != LoadStateFailed:
		return entry.value, nil
	case entry.state == LoadStateFailed:
		return nil, entry.err
	default:
		return nil, fmt.Errorf("%s: %w", entry.path, ErrAssetNotReady)
	}
}

// Path returns the path id was requested with.
func (rm *ResourceManager) Path(id AssetID) string {
	rm.mu.RLock()
	defer rm.mu.RUnlock()

	if entry, ok := rm.entries[id]; ok {
		return entry.path
	}
	return ""
}

// Progress counts the requested resources by state.
func (rm *ResourceManager) Progress() LoadProgress {
	rm.mu.RLock()
	defer rm.mu.RUnlock()

	progress := LoadProgress{Total: len(rm.entries)}
	for _, entry := range rm.entries {
		switch entry.state {
		case LoadStateLoaded:
			progress.Loaded++
		case LoadStateFailed:
			progress.Failed++
		}
	}
	return progress
}

// Failures lists every resource currently in the Failed state, ordered by path.
func (rm *ResourceManager) Failures() []AssetFailure {
	rm.mu.RLock()
	defer rm.mu.RUnlock()

	var failures []AssetFailure
	for _, entry := range rm.entries {
		if entry.state == LoadStateFailed {
			failures = append(failures, AssetFailure{ID: entry.id, Path: entry.path, Err: entry.err})
		}
	}

	slices.SortFunc(failures, func(a, b AssetFailure) int {
		return strings.Compare(a.Path, b.Path)
	})
	return failures
}

// Wait blocks until every load started so far has finished.
func (rm *ResourceManager) Wait() {
	rm.inflight.Wait()
}

// Handle is a typed reference to a requested resource.
type Handle[T any] struct {
	ID AssetID
	rm *ResourceManager
}

// NewHandle wraps id as a typed handle of rm.
func NewHandle[T any](rm *ResourceManager, id AssetID) Handle[T] {
	return Handle[T]{ID: id, rm: rm}
}

// IsValid reports whether the handle refers to a manager.
func (h Handle[T]) IsValid() bool {
	return h.rm != nil
}

// Get returns the resource once it is loaded and of type T.
func (h Handle[T]) Get() (T, bool) {
	var zero T
	if h.rm == nil {
		return zero, false
	}

	value, err := h.rm.Get(h.ID)
	if err != nil {
		return zero, false
	}

	typed, ok := value.(T)
	return typed, ok
}
