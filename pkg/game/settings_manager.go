package game

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"

	"github.com/decker502/roguelike/pkg/logging"
)

// GameSettings 全局设置，跨启动保存
type GameSettings struct {
	// 显示设置
	Fullscreen      bool `yaml:"fullscreen"`      // 启动时是否全屏
	ShowDiagnostics bool `yaml:"showDiagnostics"` // 是否输出帧时间诊断日志
}

// DefaultSettings 返回默认设置
func DefaultSettings() *GameSettings {
	return &GameSettings{
		Fullscreen:      false,
		ShowDiagnostics: false,
	}
}

// SettingsManager 设置管理器
// 负责设置的加载、保存和内存管理
type SettingsManager struct {
	gdataManager *gdata.Manager // 可为 nil（降级模式，仅内存设置）
	settings     *GameSettings
	logger       *log.Logger
}

// 存储路径常量
const (
	settingsObject   = "settings"
	settingsProperty = "global"
)

// NewSettingsManager 创建设置管理器并尝试加载已保存的设置
//
// 加载失败不是致命错误：记录警告后使用默认设置。
func NewSettingsManager(gdataManager *gdata.Manager) *SettingsManager {
	sm := &SettingsManager{
		gdataManager: gdataManager,
		settings:     DefaultSettings(),
		logger:       logging.For("SettingsManager"),
	}

	if err := sm.Load(); err != nil {
		sm.logger.Warn("failed to load settings, using defaults", "err", err)
	}

	return sm
}

// Load 从 gdata 加载设置
//
// gdataManager 为 nil 或没有保存过设置时使用默认设置。
func (sm *SettingsManager) Load() error {
	if sm.gdataManager == nil {
		sm.settings = DefaultSettings()
		return nil
	}

	if !sm.gdataManager.ObjectPropExists(settingsObject, settingsProperty) {
		sm.settings = DefaultSettings()
		return nil
	}

	data, err := sm.gdataManager.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		sm.settings = DefaultSettings()
		return fmt.Errorf("failed to load settings: %w", err)
	}

	loaded := DefaultSettings()
	if err := yaml.Unmarshal(data, loaded); err != nil {
		sm.settings = DefaultSettings()
		return fmt.Errorf("failed to unmarshal settings: %w", err)
	}

	sm.settings = loaded
	sm.logger.Debug("settings loaded", "fullscreen", loaded.Fullscreen, "diagnostics", loaded.ShowDiagnostics)
	return nil
}

// Save 保存设置到 gdata
//
// 降级模式下不做任何事，也不报错。
func (sm *SettingsManager) Save() error {
	if sm.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(sm.settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := sm.gdataManager.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	sm.logger.Debug("settings saved")
	return nil
}

// GetSettings 获取当前设置
func (sm *SettingsManager) GetSettings() *GameSettings {
	return sm.settings
}

// SetFullscreen 设置全屏模式，需调用 Save() 持久化
func (sm *SettingsManager) SetFullscreen(enabled bool) {
	sm.settings.Fullscreen = enabled
}

// SetShowDiagnostics 设置诊断输出，需调用 Save() 持久化
func (sm *SettingsManager) SetShowDiagnostics(enabled bool) {
	sm.settings.ShowDiagnostics = enabled
}
