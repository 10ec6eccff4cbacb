package service

import (
	"fmt"
	"strings"

	"github.com/laga-admin/internal/constants"
)

// OrderStatusTransitionError 非法的订单状态流转
type OrderStatusTransitionError struct {
	From string
	To   string
}

func (e *OrderStatusTransitionError) Error() string {
	return fmt.Sprintf("订单状态不允许从 %s 流转到 %s", e.From, e.To)
}

// orderStatusTransitions 订单状态机
// 所有非终态均可取消，终态不再流转。
var orderStatusTransitions = map[string][]string{
	constants.OrderStatusPending:    {constants.OrderStatusProcessing, constants.OrderStatusCancelled},
	constants.OrderStatusProcessing: {constants.OrderStatusShipped, constants.OrderStatusCancelled},
	constants.OrderStatusShipped:    {constants.OrderStatusCompleted, constants.OrderStatusCancelled},
	constants.OrderStatusCompleted:  {},
	constants.OrderStatusCancelled:  {},
}

// NormalizeOrderStatus 规范化状态值，未知状态返回空串
func NormalizeOrderStatus(raw string) string {
	status := strings.ToLower(strings.TrimSpace(raw))
	if _, ok := orderStatusTransitions[status]; !ok {
		return ""
	}
	return status
}

// CanTransitionOrderStatus 判断状态流转是否合法
func CanTransitionOrderStatus(from, to string) bool {
	allowed, ok := orderStatusTransitions[from]
	if !ok {
		return false
	}
	for _, next := range allowed {
		if next == to {
			return true
		}
	}
	return false
}
