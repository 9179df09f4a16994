package types

type PayOrderRequest struct {
	MerchantId        string `json:"merchantId"`
	MerchantOrderNo   string `json:"merchantOrderNo,optional"`
	OrderNo           string `json:"orderNo"`
	TransactionAmount string `json:"transactionAmount"`
	Currency          string `json:"currency,optional"`
	PayTypeNo         string `json:"payTypeNo"`
	PageUrl           string `json:"pageUrl,optional"`
	OrderEmail        string `json:"orderEmail,optional"`
	SourceIp          string `json:"sourceIp,optional"`
	UserId            string `json:"userId,optional"`
	JumpType          string `json:"jumpType,optional"`
}

type PayOrderResponse struct {
	PayPageType    string `json:"payPageType"`
	PayPageInfo    string `json:"payPageInfo"`
	ChannelOrderNo string `json:"channelOrderNo"`
}

type ApiPayOrderRequest struct {
	MerchantId        string `json:"merchantId"`
	MerchantOrderNo   string `json:"merchantOrderNo,optional"`
	OrderNo           string `json:"orderNo"`
	TransactionAmount string `json:"transactionAmount"`
	Currency          string `json:"currency,optional"`
	PayTypeNo         string `json:"payTypeNo"`
	OrderEmail        string `json:"orderEmail"`
	SourceIp          string `json:"sourceIp,optional"`
	Nonce             int64  `json:"nonce,optional"`
}

type PayCallBackRequest struct {
	MyIp            string `form:"myIp,optional"`
	MerchantId      string `form:"MERCHANT_ID"`
	Amount          string `form:"AMOUNT"`
	Intid           string `form:"intid,optional"` //渠道訂單號
	MerchantOrderId string `form:"MERCHANT_ORDER_ID"`
	CurId           string `form:"CUR_ID,optional"`
	Sign            string `form:"SIGN"`
}

type PayOrderQueryRequest struct {
	OrderNo string `json:"orderNo"`
}

type PayOrderQueryResponse struct {
	OrderAmount    float64 `json:"orderAmount"`
	OrderStatus    string  `json:"orderStatus"`
	ChannelOrderNo string  `json:"channelOrderNo"`
}

type TelegramNotifyRequest struct {
	ChatID  int64  `json:"chatId"`
	Message string `json:"message"`
}
