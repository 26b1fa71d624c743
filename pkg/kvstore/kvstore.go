package kvstore

// Store 本地键值存储抽象
// 对应浏览器 localStorage 的进程内角色：全局可变、无锁协议、按键存取字符串
type Store interface {
	// Get 读取键值，第二个返回值表示键是否存在
	Get(key string) (string, bool)
	Set(key, value string) error
	Delete(key string) error
}

// Has 判断键是否存在
func Has(s Store, key string) bool {
	_, ok := s.Get(key)
	return ok
}
