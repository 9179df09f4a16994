package payutils

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"

	"github.com/copo888/freekassapay/common/errorx"
	"github.com/copo888/freekassapay/common/responsex"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient() *FreeKassa {
	return &FreeKassa{
		MerchantId:  66058,
		SecretWord1: "2aJ0hR?0Z-[=VJ6",
		SecretWord2: "Hs)D3l&hb4(?xFf",
		ApiKey:      "962c879ce9be06f9d34a556872869220",
	}
}

func TestFormatAmount(t *testing.T) {
	cases := map[string]string{
		"100":    "100.00",
		"1.2":    "1.20",
		"99.999": "100.00",
		"1.005":  "1.00", // round-half-even
		"1.015":  "1.02",
	}
	for in, expected := range cases {
		amount, err := decimal.NewFromString(in)
		require.NoError(t, err)
		assert.Equal(t, expected, FormatAmount(amount), "amount %s", in)
	}
}

func TestBuildCheckoutUrl(t *testing.T) {
	client := testClient()
	amount := decimal.NewFromInt(100)

	payUrl := client.BuildCheckoutUrl(amount, "RUB", "order-1", 4)

	parsed, err := url.Parse(payUrl)
	require.NoError(t, err)
	assert.Equal(t, "pay.fk.money", parsed.Host)

	query := parsed.Query()
	assert.Equal(t, "66058", query.Get("m"))
	assert.Equal(t, "100.00", query.Get("oa"))
	assert.Equal(t, "RUB", query.Get("currency"))
	assert.Equal(t, "order-1", query.Get("o"))
	assert.Equal(t, "4", query.Get("i"))
	assert.Equal(t, "4bc8d94974dbabfec61451745fd0e71f", query.Get("s"))

	assert.Contains(t, payUrl, "m=66058")
	assert.Contains(t, payUrl, "oa=100.00")
	assert.Contains(t, payUrl, "i=4")

	// 同樣輸入須得到逐byte相同的網址
	assert.Equal(t, payUrl, client.BuildCheckoutUrl(amount, "RUB", "order-1", 4))
}

func TestBuildCheckoutUrlEscapesValues(t *testing.T) {
	client := testClient()

	payUrl := client.BuildCheckoutUrl(decimal.NewFromInt(5), "RUB", "order 1/й", 4)
	parsed, err := url.Parse(payUrl)
	require.NoError(t, err)
	assert.Equal(t, "order 1/й", parsed.Query().Get("o"))
}

func TestVerifyNotify(t *testing.T) {
	client := testClient()
	sign := "528824e3528d5f2fcc1aea712e4cd2af"

	assert.True(t, client.VerifyNotify("100.00", "order-1", sign))
	// 大小寫不敏感
	assert.True(t, client.VerifyNotify("100.00", "order-1", "528824E3528D5F2FCC1AEA712E4CD2AF"))

	// 任一欄位異動即驗簽失敗
	assert.False(t, client.VerifyNotify("100.01", "order-1", sign))
	assert.False(t, client.VerifyNotify("100.0", "order-1", sign))
	assert.False(t, client.VerifyNotify("100.00", "order-2", sign))
	assert.False(t, client.VerifyNotify("100.00", "order-1", "528824e3528d5f2fcc1aea712e4cd2aa"))
	assert.False(t, client.VerifyNotify("100.00", "order-1", ""))
}

func TestVerifyNotifyUsesRawAmount(t *testing.T) {
	client := testClient()

	// 回調amount取原始字串，"100"與"100.00"簽名不同
	sign := Md5Hex("66058:100:Hs)D3l&hb4(?xFf:order-1")
	assert.True(t, client.VerifyNotify("100", "order-1", sign))
	assert.False(t, client.VerifyNotify("100.00", "order-1", sign))
}

func TestCreateOrderWithoutApiKey(t *testing.T) {
	var hits int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
	}))
	defer ts.Close()

	client := testClient()
	client.ApiKey = ""
	client.ApiUrl = ts.URL + "/"

	_, err := client.CreateOrder(context.Background(), CreateOrderData{
		PaymentId: "order-1",
		Amount:    decimal.NewFromInt(100),
		Currency:  "RUB",
	})
	assert.ErrorIs(t, err, ErrApiKeyNotSet)

	_, err = client.GetOrder(context.Background(), "order-1")
	assert.ErrorIs(t, err, ErrApiKeyNotSet)

	// API KEY未設定時不可發出任何請求
	assert.EqualValues(t, 0, atomic.LoadInt32(&hits))
}

func TestCreateOrder(t *testing.T) {
	var gotPath string
	var gotBody map[string]interface{}
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"type":"success","orderId":123456789,"orderHash":"abc123","location":"https://pay.fk.money/oplata/123456789"}`))
	}))
	defer ts.Close()

	client := testClient()
	client.ApiUrl = ts.URL + "/"

	resp, err := client.CreateOrder(context.Background(), CreateOrderData{
		Nonce:     1,
		PayWayId:  4,
		Email:     "user@example.com",
		Ip:        "127.0.0.1",
		PaymentId: "order-1",
		Amount:    decimal.NewFromInt(100),
		Currency:  "RUB",
	})
	require.NoError(t, err)

	assert.Equal(t, "/orders/create", gotPath)
	assert.Equal(t, "success", resp["type"])
	assert.Equal(t, "https://pay.fk.money/oplata/123456789", resp["location"])

	assert.EqualValues(t, 66058, gotBody["shopId"])
	assert.EqualValues(t, 1, gotBody["nonce"])
	assert.Equal(t, "100.00", gotBody["amount"])
	assert.Equal(t, "RUB", gotBody["currency"])
	assert.Equal(t, "order-1", gotBody["paymentId"])
	assert.Equal(t, "127.0.0.1", gotBody["ip"])
	assert.Equal(t, "user@example.com", gotBody["email"])
	assert.EqualValues(t, 4, gotBody["i"])
	assert.Equal(t, "c4258afe5df6aca61aa8521a4cf894498bf10556054980aa0c01d86d45886e67", gotBody["signature"])
}

func TestCreateOrderDecodesNonSuccessStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"type":"error","description":"Order not created"}`))
	}))
	defer ts.Close()

	client := testClient()
	client.ApiUrl = ts.URL + "/"

	// 下單路徑不檢查HTTP狀態碼，body照常解析
	resp, err := client.CreateOrder(context.Background(), CreateOrderData{
		PaymentId: "order-1",
		Amount:    decimal.NewFromInt(100),
		Currency:  "RUB",
	})
	require.NoError(t, err)
	assert.Equal(t, "error", resp["type"])
	assert.Equal(t, "Order not created", resp["description"])
}

func TestGetOrder(t *testing.T) {
	var gotPath string
	var gotBody map[string]interface{}
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"type":"success","orders":[{"merchant_order_id":"order-1","fk_order_id":123456789,"amount":100.00,"currency":"RUB","status":1}]}`))
	}))
	defer ts.Close()

	client := testClient()
	client.ApiUrl = ts.URL + "/"

	resp, err := client.GetOrder(context.Background(), "order-1")
	require.NoError(t, err)

	assert.Equal(t, "/orders", gotPath)
	assert.Equal(t, "success", resp["type"])

	assert.EqualValues(t, 66058, gotBody["shopId"])
	assert.EqualValues(t, 1, gotBody["nonce"])
	assert.Equal(t, "order-1", gotBody["paymentId"])
	assert.Equal(t, "209685b0e7a49cb8626d79af6d8f1408fbebb3f136c219717358a072ecfb49d3", gotBody["signature"])
}

func TestGetOrderFailsOnErrorStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`this is not json`)) // 狀態碼錯誤時不應解析body
	}))
	defer ts.Close()

	client := testClient()
	client.ApiUrl = ts.URL + "/"

	_, err := client.GetOrder(context.Background(), "order-1")
	require.Error(t, err)

	codeErr, ok := err.(*errorx.CodeError)
	require.True(t, ok)
	assert.Equal(t, responsex.INVALID_STATUS_CODE, codeErr.Code)
}

func TestClientDefaults(t *testing.T) {
	client := &FreeKassa{}

	assert.Equal(t, "https://api.fk.life/v1/", client.apiBase())
	assert.Equal(t, "https://pay.fk.money/", client.uiBase())
	assert.EqualValues(t, 1, client.nonce())
	assert.Equal(t, 10, client.timeout())
}
