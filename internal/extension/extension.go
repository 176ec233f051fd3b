package extension

import (
	"fmt"

	"github.com/feinheit/zipfelchappe/internal/logger"
	"gorm.io/gorm"
)

// Region 内容区域，由宿主CMS在页面上渲染
type Region struct {
	Key   string
	Title string
}

// StartupCheck 启动检查，宿主初始化时执行一次
type StartupCheck func(db *gorm.DB) error

// Registry 插件注册点。宿主CMS在启动时调用这些注册函数，
// 取代隐式的类级别钩子和信号订阅。
type Registry struct {
	contentTypes []string
	regions      []Region
	checks       []StartupCheck
}

// NewRegistry 创建注册点
func NewRegistry() *Registry {
	return &Registry{}
}

// RegisterContentType 注册内容类型
func (r *Registry) RegisterContentType(name string) {
	r.contentTypes = append(r.contentTypes, name)
}

// RegisterRegions 注册内容区域
func (r *Registry) RegisterRegions(regions ...Region) {
	r.regions = append(r.regions, regions...)
}

// RegisterStartupCheck 注册启动检查
func (r *Registry) RegisterStartupCheck(check StartupCheck) {
	r.checks = append(r.checks, check)
}

// ContentTypes 已注册的内容类型
func (r *Registry) ContentTypes() []string {
	return r.contentTypes
}

// Regions 已注册的内容区域
func (r *Registry) Regions() []Region {
	return r.regions
}

// RunStartupChecks 依次执行启动检查，第一个失败即返回
func (r *Registry) RunStartupChecks(db *gorm.DB) error {
	for i, check := range r.checks {
		if err := check(db); err != nil {
			return fmt.Errorf("startup check %d failed: %w", i, err)
		}
	}
	logger.Info("All %d startup checks passed", len(r.checks))
	return nil
}
