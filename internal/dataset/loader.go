package dataset

import (
	"log"
	"path/filepath"
	"sync"

	"golang.org/x/sync/singleflight"

	"premiere/internal/model"
)

// Loader 数据集加载器
// 首次访问时解析文件，之后在进程生命周期内返回同一份只读表；失败不缓存
type Loader struct {
	mu     sync.RWMutex
	tables map[string]*model.Table
	group  singleflight.Group
}

// NewLoader 创建加载器
func NewLoader() *Loader {
	return &Loader{
		tables: make(map[string]*model.Table),
	}
}

// sourceKey 数据源标识：清理后的绝对路径
func sourceKey(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return filepath.Clean(path)
	}
	return abs
}

// Load 加载数据集
func (l *Loader) Load(path string) (*model.Table, error) {
	key := sourceKey(path)

	l.mu.RLock()
	t, ok := l.tables[key]
	l.mu.RUnlock()
	if ok {
		return t, nil
	}

	v, err, _ := l.group.Do(key, func() (interface{}, error) {
		l.mu.RLock()
		cached, ok := l.tables[key]
		l.mu.RUnlock()
		if ok {
			return cached, nil
		}

		records, err := readRecords(path)
		if err != nil {
			return nil, err
		}
		table, err := buildTable(path, records)
		if err != nil {
			return nil, err
		}

		l.mu.Lock()
		l.tables[key] = table
		l.mu.Unlock()

		log.Printf("dataset loaded: %s (%d rows, %d columns)", path, table.Len(), len(table.Columns))
		return table, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*model.Table), nil
}

// Cached 数据源是否已缓存
func (l *Loader) Cached(path string) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	_, ok := l.tables[sourceKey(path)]
	return ok
}

// Len 已缓存的数据源数量
func (l *Loader) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.tables)
}

// LoadDataset 加载并校验必需列
func (l *Loader) LoadDataset(path string, schema model.Schema) (*model.Table, error) {
	t, err := l.Load(path)
	if err != nil {
		return nil, err
	}
	if err := Validate(t, schema); err != nil {
		return nil, err
	}
	return t, nil
}

// Validate 检查表是否包含 Schema 的全部必需列
func Validate(t *model.Table, schema model.Schema) error {
	var missing []string
	for _, f := range schema.Required {
		if t.Index(f.Name) < 0 {
			missing = append(missing, f.Name)
		}
	}
	if len(missing) > 0 {
		return &SchemaError{Source: t.Source, Missing: missing}
	}
	return nil
}
