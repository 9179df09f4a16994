package payutils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMd5Hex(t *testing.T) {
	assert.Equal(t, "4bc8d94974dbabfec61451745fd0e71f", Md5Hex("66058:100.00:2aJ0hR?0Z-[=VJ6:RUB:order-1"))
	assert.Equal(t, "528824e3528d5f2fcc1aea712e4cd2af", Md5Hex("66058:100.00:Hs)D3l&hb4(?xFf:order-1"))
}

func TestHmacSha256Hex(t *testing.T) {
	key := "962c879ce9be06f9d34a556872869220"

	assert.Equal(t,
		"c4258afe5df6aca61aa8521a4cf894498bf10556054980aa0c01d86d45886e67",
		HmacSha256Hex("100.00|RUB|user@example.com|4|127.0.0.1|1|order-1|66058", key))
	assert.Equal(t,
		"209685b0e7a49cb8626d79af6d8f1408fbebb3f136c219717358a072ecfb49d3",
		HmacSha256Hex("1|order-1|66058", key))
}

func TestJoinValuesByASCIIKey(t *testing.T) {
	data := map[string]string{
		"shopId":    "66058",
		"nonce":     "1",
		"amount":    "100.00",
		"currency":  "RUB",
		"paymentId": "order-1",
		"ip":        "127.0.0.1",
		"email":     "user@example.com",
		"i":         "4",
	}

	// 鍵排序: amount, currency, email, i, ip, nonce, paymentId, shopId
	assert.Equal(t, "100.00|RUB|user@example.com|4|127.0.0.1|1|order-1|66058", JoinValuesByASCIIKey(data, "|"))
}
