package typesX

type ChannelData struct {
	ID           int64  `json:"id,optional"`
	Code         string `json:"code,optional"`
	Name         string `json:"name,optional"`
	ApiUrl       string `json:"apiUrl,optional"`
	CurrencyCode string `json:"currencyCode,optional"`
	Status       string `json:"status,optional"`
	Device       string `json:"device,optional"`
	MerId        string `json:"merId,optional"`
	MerKey       string `json:"merKey,optional"`
	PayUrl       string `json:"payUrl,optional"`
	PayQueryUrl  string `json:"payQueryUrl,optional"`
}

type TransactionLogData struct {
	MerchantNo       string
	MerchantOrderNo  string
	ChannelCode      string
	OrderNo          string
	LogType          string
	LogSource        string
	Content          interface{}
	TraceId          string
	ChannelErrorCode string
}

type TxLog struct {
	ID              int64
	MerchantCode    string
	MerchantOrderNo string
	ChannelCode     string
	OrderNo         string
	LogType         string
	LogSource       string
	Content         string
	ErrorCode       string
	TraceId         string
	CreatedAt       string
}
