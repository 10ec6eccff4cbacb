package service

import "errors"

// 服务层哨兵错误，处理器据此映射 HTTP 状态码。
var (
	ErrNotFound           = errors.New("资源不存在")
	ErrInvalidCredentials = errors.New("账号或密码错误")
	ErrInvalidPassword    = errors.New("原密码错误")
	ErrForbidden          = errors.New("没有权限执行该操作")

	ErrProductInvalid  = errors.New("商品参数无效")
	ErrVariantInvalid  = errors.New("商品规格参数无效")
	ErrCategoryInvalid = errors.New("分类参数无效")

	ErrVoucherInvalid = errors.New("优惠券参数无效")
	ErrVoucherExists  = errors.New("优惠码已存在")
	ErrVoucherExpired = errors.New("优惠券已过期或停用")

	ErrProvinceUnknown = errors.New("未知的省份名称")
	ErrProvinceExists  = errors.New("该省份已配置费率")
	ErrRateInvalid     = errors.New("费率参数无效")

	ErrOrderInvalid    = errors.New("订单参数无效")
	ErrOrderOutOfStock = errors.New("商品库存不足")

	ErrNotificationInvalid = errors.New("通知参数无效")

	ErrTvCategoryInvalid = errors.New("电视分类参数无效")
	ErrTvContentInvalid  = errors.New("电视内容参数无效")

	ErrFantasyInvalid      = errors.New("活动参数无效")
	ErrRegistrationInvalid = errors.New("报名参数无效")
	ErrTeamInvalid         = errors.New("队伍参数无效")
	ErrShoeInvalid         = errors.New("球鞋参数无效")

	ErrUploadInvalid = errors.New("上传内容无效")
)
