package render

// User-visible strings. The dashboard ships a single fixed locale (zh-CN).
const (
	LabelExpired   = "已过期"
	LabelExhausted = "已耗尽"
	LabelLow       = "即将耗尽"
	LabelActive    = "正常"

	LabelUnknownOwner = "未知用户"
	Placeholder       = "-"

	MessageLoading = "加载中..."
	MessageNoData  = "暂无数据"

	MessageEmptyToken   = "请输入访问令牌"
	MessageNetworkError = "网络错误，请检查连接"
	MessageVerifyFailed = "验证失败: HTTP %d"
	MessageInvalidToken = "令牌无效或已过期"
	MessageLoadFailed   = "加载失败: %s"
)

const (
	BadgeExpired   = "status-expired"
	BadgeExhausted = "status-exhausted"
	BadgeLow       = "status-low"
	BadgeActive    = "status-active"
)

// Terminal chrome.
const (
	AppTitle = "令牌管理面板"

	ColumnOwner     = "用户"
	ColumnPreview   = "令牌"
	ColumnAuthType  = "认证方式"
	ColumnRemaining = "剩余次数"
	ColumnExpiresAt = "过期时间"
	ColumnLastUsed  = "最后使用"
	ColumnStatus    = "状态"

	PromptToken       = "访问令牌"
	PromptPlaceholder = "粘贴访问令牌后按 Enter"
	MessageVerifying  = "验证中..."

	LabelSession     = "会话"
	LabelLoggedIn    = "已登录"
	LabelLoggedOut   = "未登录"
	LabelTotal       = "令牌总数"
	LabelActiveCount = "有效令牌"
	LabelLastUpdated = "最后更新"
	LabelAutoRefresh = "自动刷新"
	LabelOn          = "开启"
	LabelOff         = "关闭"

	StatusRefreshed      = "已刷新"
	StatusLoggedOut      = "已退出登录"
	StatusAutoOn         = "自动刷新已开启"
	StatusAutoOff        = "自动刷新已关闭"
	StatusUnknownCommand = "未知命令: %s"
	StatusHelp           = "命令: :refresh 刷新  :auto 自动刷新  :logout 退出  :logs 日志  :q 退出程序"
)
