package constants

// 订单状态常量
const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusCompleted  = "completed"
	OrderStatusCancelled  = "cancelled"
)

// 订单支付状态常量
const (
	PaymentStatusPending = "pending"
	PaymentStatusPaid    = "paid"
	PaymentStatusFailed  = "failed"
)

// 赛事报名支付状态常量（外部网关侧）
const (
	FantasyPaymentPending = "PENDING"
	FantasyPaymentPaid    = "PAID"
	FantasyPaymentFailed  = "FAILED"
	FantasyPaymentExpired = "EXPIRED"
)

// 优惠券类型常量
const (
	VoucherTypePercentage = "percentage"
	VoucherTypeFlat       = "flat"
)

// 通知类型常量
const (
	NotificationTypeOrder   = "order"
	NotificationTypePayment = "payment"
	NotificationTypeStock   = "stock"
)

// 队列名称常量
const (
	QueueDefault  = "default"
	QueueCritical = "critical"
)

// 队列任务类型常量
const (
	TaskNotificationDispatch   = "notification:dispatch"
	TaskOrderReservationExpire = "order:reservation_expire"
)
