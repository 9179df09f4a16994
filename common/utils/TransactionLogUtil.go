package utils

import (
	"encoding/json"
	"fmt"

	"github.com/copo888/freekassapay/common/model"
	"github.com/copo888/freekassapay/common/typesX"
	"gorm.io/gorm"
)

//寫入交易日志
func CreateTransactionLog(db *gorm.DB, data *typesX.TransactionLogData) (err error) {
	content := ""
	switch c := data.Content.(type) {
	case string:
		content = c
	default:
		if contentBytes, jsonErr := json.Marshal(data.Content); jsonErr == nil {
			content = string(contentBytes)
		} else {
			content = fmt.Sprintf("%+v", data.Content)
		}
	}

	txLog := typesX.TxLog{
		MerchantCode:    data.MerchantNo,
		MerchantOrderNo: data.MerchantOrderNo,
		ChannelCode:     data.ChannelCode,
		OrderNo:         data.OrderNo,
		LogType:         data.LogType,
		LogSource:       data.LogSource,
		Content:         content,
		ErrorCode:       data.ChannelErrorCode,
		TraceId:         data.TraceId,
	}

	return model.NewTxLog(db).CreateTransactionLog(&txLog)
}
