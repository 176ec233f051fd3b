package logic

import "errors"

// 校验错误。保存前触发，任何一条命中都会整体拒绝本次保存。
var (
	ErrProjectNotFound = errors.New("项目不存在")
	ErrStartAfterEnd   = errors.New("开始时间不能晚于结束时间")
	ErrDurationTooLong = errors.New("众筹周期超过上限")
	ErrGoalNotPositive = errors.New("目标金额必须大于0")
	ErrUnknownCurrency = errors.New("不支持的货币")
	ErrCurrencyLocked  = errors.New("项目已有出资，不能修改货币")
	ErrEndLocked       = errors.New("项目已有出资，不能修改结束时间")

	ErrRewardNotFound       = errors.New("回报不存在")
	ErrRewardWrongProject   = errors.New("回报不属于该项目")
	ErrRewardExhausted      = errors.New("回报名额已满")
	ErrRewardMinimum        = errors.New("出资金额未达到回报最低金额")
	ErrQuantityBelowAwarded = errors.New("数量不能低于已承诺给出资人的份数")

	ErrPledgeNotFound    = errors.New("出资记录不存在")
	ErrAmountNotPositive = errors.New("出资金额必须大于0")
	ErrInvalidStatus     = errors.New("无效的出资状态")
	ErrStatusRegression  = errors.New("出资状态不能回退")

	ErrBackerNotFound  = errors.New("出资人不存在")
	ErrBackerNoContact = errors.New("出资人必须关联账号或填写邮箱")

	ErrCategoryNotFound = errors.New("分类不存在")
	ErrUpdateNotFound   = errors.New("项目动态不存在")

	ErrTemplateNotFound  = errors.New("邮件模板不存在")
	ErrUnknownMailAction = errors.New("不支持的邮件动作")
)
