package model

import (
	"time"

	"github.com/copo888/freekassapay/common/typesX"
	"gorm.io/gorm"
)

type TxLog struct {
	MyDB  *gorm.DB
	Table string
}

func NewTxLog(mydb *gorm.DB, t ...string) *TxLog {
	table := "tx_log"
	if len(t) > 0 {
		table = t[0]
	}
	return &TxLog{
		MyDB:  mydb,
		Table: table,
	}
}

//交易日志新增Func
func (c *TxLog) CreateTransactionLog(data *typesX.TxLog) (err error) {
	data.CreatedAt = time.Now().UTC().String()

	if err = c.MyDB.Table(c.Table).Create(data).Error; err != nil {
		return
	}

	return nil
}
