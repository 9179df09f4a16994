package payutils

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/copo888/freekassapay/common/errorx"
	"github.com/copo888/freekassapay/common/responsex"
	"github.com/gioco-play/gozzle"
	"github.com/shopspring/decimal"
	"github.com/zeromicro/go-zero/core/logx"
	"go.opentelemetry.io/otel/trace"
)

const (
	defaultApiUrl     = "https://api.fk.life/v1/"
	defaultUiUrl      = "https://pay.fk.money/"
	defaultNonce      = 1
	defaultTimeoutSec = 10
)

// ErrApiKeyNotSet API金鑰未設定，orders API呼叫前檢查
var ErrApiKeyNotSet = errorx.New(responsex.API_KEY_NOT_SET, "api key is not set")

// FreeKassa 渠道客戶端。設定值建構後不再變動，可跨goroutine共用
type FreeKassa struct {
	MerchantId  int64
	SecretWord1 string
	SecretWord2 string
	ApiKey      string
	SuccessUrl  string
	FailUrl     string
	NotifyUrl   string
	ApiUrl      string
	UiUrl       string
	Nonce       int64
	TimeoutSec  int
}

// CreateOrderData orders/create API請求資料
type CreateOrderData struct {
	Nonce     int64
	PayWayId  int64
	Email     string
	Ip        string
	PaymentId string
	Amount    decimal.Decimal
	Currency  string
}

// FormatAmount 金額固定兩位小數，採round-half-even捨入
func FormatAmount(amount decimal.Decimal) string {
	return amount.StringFixedBank(2)
}

// BuildCheckoutUrl 組收銀台跳轉網址
// 加簽來源: {merchantId}:{amount}:{secretWord1}:{currency}:{paymentId}
func (c *FreeKassa) BuildCheckoutUrl(amount decimal.Decimal, currency string, paymentId string, payWayId int64) string {
	amountStr := FormatAmount(amount)
	signStr := fmt.Sprintf("%d:%s:%s:%s:%s", c.MerchantId, amountStr, c.SecretWord1, currency, paymentId)
	sign := Md5Hex(signStr)

	params := url.Values{}
	params.Set("m", strconv.FormatInt(c.MerchantId, 10))
	params.Set("oa", amountStr)
	params.Set("currency", currency)
	params.Set("o", paymentId)
	params.Set("s", sign)
	params.Set("i", strconv.FormatInt(payWayId, 10))

	return c.uiBase() + "?" + params.Encode()
}

// VerifyNotify 檢查渠道回調SIGN
// 加簽來源: {merchantId}:{amount}:{secretWord2}:{orderId}，amount取回調原始字串
func (c *FreeKassa) VerifyNotify(amount string, orderId string, sign string) bool {
	expected := Md5Hex(fmt.Sprintf("%d:%s:%s:%s", c.MerchantId, amount, c.SecretWord2, orderId))
	return strings.EqualFold(expected, sign)
}

// CreateOrder orders/create API下單，返回渠道原始回覆
// 渠道此路徑HTTP狀態碼不代表下單結果，故不檢查狀態碼直接解析body
func (c *FreeKassa) CreateOrder(ctx context.Context, data CreateOrderData) (map[string]interface{}, error) {
	if c.ApiKey == "" {
		return nil, ErrApiKeyNotSet
	}

	nonce := data.Nonce
	if nonce == 0 {
		nonce = c.nonce()
	}

	payload := map[string]interface{}{
		"shopId":    c.MerchantId,
		"nonce":     nonce,
		"amount":    FormatAmount(data.Amount),
		"currency":  data.Currency,
		"paymentId": data.PaymentId,
		"ip":        data.Ip,
		"email":     data.Email,
		"i":         data.PayWayId,
	}
	payload["signature"] = c.signPayload(payload)

	span := trace.SpanFromContext(ctx)
	res, chnErr := gozzle.Post(c.apiBase() + "orders/create").Timeout(c.timeout()).Trace(span).JSON(payload)
	if chnErr != nil {
		return nil, errorx.New(responsex.SERVICE_RESPONSE_ERROR, chnErr.Error())
	}
	logx.WithContext(ctx).Infof("Status: %d  Body: %s", res.Status(), string(res.Body()))

	channelResp := map[string]interface{}{}
	if err := res.DecodeJSON(&channelResp); err != nil {
		return nil, errorx.New(responsex.GENERAL_EXCEPTION, err.Error())
	}
	return channelResp, nil
}

// GetOrder orders API查單，返回渠道原始回覆
// 與CreateOrder不同，此路徑HTTP狀態碼4xx/5xx即視為失敗，不解析body
func (c *FreeKassa) GetOrder(ctx context.Context, paymentId string) (map[string]interface{}, error) {
	if c.ApiKey == "" {
		return nil, ErrApiKeyNotSet
	}

	payload := map[string]interface{}{
		"shopId":    c.MerchantId,
		"nonce":     c.nonce(),
		"paymentId": paymentId,
	}
	payload["signature"] = c.signPayload(payload)

	span := trace.SpanFromContext(ctx)
	res, chnErr := gozzle.Post(c.apiBase() + "orders").Timeout(c.timeout()).Trace(span).JSON(payload)
	if chnErr != nil {
		return nil, errorx.New(responsex.SERVICE_RESPONSE_ERROR, chnErr.Error())
	} else if res.Status() >= 400 {
		logx.WithContext(ctx).Infof("Status: %d  Body: %s", res.Status(), string(res.Body()))
		return nil, errorx.New(responsex.INVALID_STATUS_CODE, fmt.Sprintf("Error HTTP Status: %d", res.Status()))
	}
	logx.WithContext(ctx).Infof("Status: %d  Body: %s", res.Status(), string(res.Body()))

	channelResp := map[string]interface{}{}
	if err := res.DecodeJSON(&channelResp); err != nil {
		return nil, errorx.New(responsex.GENERAL_EXCEPTION, err.Error())
	}
	return channelResp, nil
}

// signPayload 取payload鍵做字典排序，取值以 | 拼接後用ApiKey做HMAC-SHA256
// signature欄位本身不參與加簽
func (c *FreeKassa) signPayload(payload map[string]interface{}) string {
	data := make(map[string]string, len(payload))
	for k, v := range payload {
		if k == "signature" {
			continue
		}
		data[k] = fmt.Sprintf("%v", v)
	}
	message := JoinValuesByASCIIKey(data, "|")
	return HmacSha256Hex(message, c.ApiKey)
}

func (c *FreeKassa) apiBase() string {
	if c.ApiUrl != "" {
		return c.ApiUrl
	}
	return defaultApiUrl
}

func (c *FreeKassa) uiBase() string {
	if c.UiUrl != "" {
		return c.UiUrl
	}
	return defaultUiUrl
}

func (c *FreeKassa) nonce() int64 {
	if c.Nonce != 0 {
		return c.Nonce
	}
	return defaultNonce
}

func (c *FreeKassa) timeout() int {
	if c.TimeoutSec > 0 {
		return c.TimeoutSec
	}
	return defaultTimeoutSec
}
