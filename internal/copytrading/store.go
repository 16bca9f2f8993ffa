package copytrading

import (
	"bytes"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	json "github.com/goccy/go-json"

	"nextrade/internal/model"
	"nextrade/pkg/logger"
)

// Store 跟单配置的本地持久化，单文件JSON数组
// 文件被外部进程改写时通过fsnotify通知订阅者，等价于多开页面间的同步
type Store struct {
	path string

	mu        sync.Mutex
	rawCache  []byte
	rawValid  bool
	parsed    []model.CopyTradeConfig
	subs      map[uint64]func()
	nextSubID uint64

	watcher *fsnotify.Watcher
	done    chan struct{}
}

func NewStore(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	s := &Store{
		path: path,
		subs: make(map[uint64]func()),
		done: make(chan struct{}),
	}

	// 监听目录而不是文件本身，原子替换(rename)后inode会变
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err = watcher.Add(filepath.Dir(path)); err != nil {
		watcher.Close()
		return nil, err
	}
	s.watcher = watcher
	go s.watchLoop()

	return s, nil
}

func (s *Store) watchLoop() {
	for {
		select {
		case event, ok := <-s.watcher.Events:
			if !ok {
				return
			}
			if event.Name != s.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				s.notify()
			}
		case err, ok := <-s.watcher.Errors:
			if !ok {
				return
			}
			logger.Errorf("copytrading store watch error: %v", err)
		case <-s.done:
			return
		}
	}
}

// Read 读出全部配置，文件缺失或损坏一律当空列表
// 原始字节没变时直接复用上次的解析结果
func (s *Store) Read() []model.CopyTradeConfig {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := os.ReadFile(s.path)
	if err != nil {
		raw = nil
	}

	if !s.rawValid || !bytes.Equal(raw, s.rawCache) {
		s.rawCache = raw
		s.rawValid = true
		s.parsed = parseConfigs(raw)
	}

	out := make([]model.CopyTradeConfig, len(s.parsed))
	copy(out, s.parsed)
	return out
}

func parseConfigs(raw []byte) []model.CopyTradeConfig {
	if len(raw) == 0 {
		return nil
	}
	var configs []model.CopyTradeConfig
	if err := json.Unmarshal(raw, &configs); err != nil {
		logger.Warnf("copytrading store corrupted, treat as empty: %v", err)
		return nil
	}
	return configs
}

// Write 全量覆盖写入，先写临时文件再rename，避免读到半截
func (s *Store) Write(configs []model.CopyTradeConfig) error {
	data, err := json.Marshal(configs)
	if err != nil {
		return err
	}

	s.mu.Lock()
	tmp := s.path + ".tmp"
	if err = os.WriteFile(tmp, data, 0o644); err != nil {
		s.mu.Unlock()
		return err
	}
	if err = os.Rename(tmp, s.path); err != nil {
		s.mu.Unlock()
		return err
	}
	s.rawCache = data
	s.rawValid = true
	s.parsed = make([]model.CopyTradeConfig, len(configs))
	copy(s.parsed, configs)
	s.mu.Unlock()

	s.notify()
	return nil
}

// Upsert 同wallet原位替换，新wallet插到最前，返回写入后的完整列表
func (s *Store) Upsert(config model.CopyTradeConfig) ([]model.CopyTradeConfig, error) {
	configs := s.Read()

	replaced := false
	for i := range configs {
		if configs[i].Wallet == config.Wallet {
			configs[i] = config
			replaced = true
			break
		}
	}
	if !replaced {
		configs = append([]model.CopyTradeConfig{config}, configs...)
	}

	if err := s.Write(configs); err != nil {
		return nil, err
	}
	return configs, nil
}

// Subscribe 注册变更回调，返回用于退订的id
// 回调里应当重新Read，参数不携带数据
func (s *Store) Subscribe(fn func()) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextSubID++
	id := s.nextSubID
	s.subs[id] = fn
	return id
}

// Unsubscribe 退订，重复调用无副作用
func (s *Store) Unsubscribe(id uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.subs, id)
}

func (s *Store) notify() {
	s.mu.Lock()
	callbacks := make([]func(), 0, len(s.subs))
	for _, fn := range s.subs {
		callbacks = append(callbacks, fn)
	}
	s.mu.Unlock()

	for _, fn := range callbacks {
		fn()
	}
}

func (s *Store) Close() error {
	close(s.done)
	return s.watcher.Close()
}
