package responsex

var (
	SUCCESS           = "0"     //"操作成功"
	FAIL              = "EX000" //"Fail"
	INVALID_PARAMETER = "EX001" //"参数不合法"
	GENERAL_EXCEPTION = "EX002" //"系统异常"

	// 渠道
	SERVICE_RESPONSE_ERROR      = "207" // "渠道返回错误"
	SERVICE_RESPONSE_DATA_ERROR = "208" // "渠道返回资料错误"
	INVALID_STATUS_CODE         = "209" // "渠道返回状态码错误"
	CHANNEL_REPLY_ERROR         = "210" // "渠道返回错误"
	INVALID_SIGN                = "211" // "验签失败"
	API_KEY_NOT_SET             = "212" // "渠道API KEY未设定"
	ORDER_NUMBER_NOT_EXIST      = "501" // "商户订单号不存在"
)

var messages = map[string]string{
	SUCCESS:                     "操作成功",
	FAIL:                        "Fail",
	INVALID_PARAMETER:           "参数不合法",
	GENERAL_EXCEPTION:           "系统异常",
	SERVICE_RESPONSE_ERROR:      "渠道返回错误",
	SERVICE_RESPONSE_DATA_ERROR: "渠道返回资料错误",
	INVALID_STATUS_CODE:         "渠道返回状态码错误",
	CHANNEL_REPLY_ERROR:         "渠道返回错误",
	INVALID_SIGN:                "验签失败",
	API_KEY_NOT_SET:             "渠道API KEY未设定",
	ORDER_NUMBER_NOT_EXIST:      "商户订单号不存在",
}

func Message(code string) string {
	if msg, ok := messages[code]; ok {
		return msg
	}
	return messages[FAIL]
}
