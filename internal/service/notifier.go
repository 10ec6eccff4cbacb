package service

// Notifier 站内通知分发接口
// 由队列客户端实现，失败只记录日志，不阻塞业务流程。
type Notifier interface {
	Notify(kind, title, message, refID string)
}

// NopNotifier 空实现，测试或未接入队列时使用
type NopNotifier struct{}

// Notify 丢弃通知
func (NopNotifier) Notify(kind, title, message, refID string) {}
