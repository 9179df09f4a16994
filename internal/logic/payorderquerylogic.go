package logic

import (
	"context"
	"strconv"

	"github.com/copo888/freekassapay/common/errorx"
	"github.com/copo888/freekassapay/common/responsex"
	"github.com/copo888/freekassapay/internal/svc"
	"github.com/copo888/freekassapay/internal/types"
	"github.com/mitchellh/mapstructure"
	"github.com/zeromicro/go-zero/core/logx"
)

type PayOrderQueryLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewPayOrderQueryLogic(ctx context.Context, svcCtx *svc.ServiceContext) PayOrderQueryLogic {
	return PayOrderQueryLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *PayOrderQueryLogic) PayOrderQuery(req *types.PayOrderQueryRequest) (resp *types.PayOrderQueryResponse, err error) {

	logx.WithContext(l.ctx).Infof("Enter PayOrderQuery. channelName: %s, PayOrderQueryRequest: %+v", l.svcCtx.Config.ProjectName, req)

	// 請求渠道，查單HTTP狀態碼錯誤直接返回
	channelResp, err := l.svcCtx.FreeKassa.GetOrder(l.ctx, req.OrderNo)
	if err != nil {
		return nil, err
	}

	// 渠道回覆處理
	queryResp := struct {
		Type   string `mapstructure:"type"`
		Orders []struct {
			MerchantOrderId string  `mapstructure:"merchant_order_id"`
			FkOrderId       float64 `mapstructure:"fk_order_id"`
			Amount          float64 `mapstructure:"amount"`
			Currency        string  `mapstructure:"currency"`
			Status          float64 `mapstructure:"status"`
		} `mapstructure:"orders"`
	}{}

	if err = mapstructure.Decode(channelResp, &queryResp); err != nil {
		return nil, errorx.New(responsex.GENERAL_EXCEPTION, err.Error())
	}

	if queryResp.Type != "success" {
		return nil, errorx.New(responsex.CHANNEL_REPLY_ERROR, queryResp.Type)
	} else if len(queryResp.Orders) == 0 {
		return nil, errorx.New(responsex.ORDER_NUMBER_NOT_EXIST)
	}

	order := queryResp.Orders[0]

	//订单状态: 状态 0处理中，1成功，2失败 (渠道状态 0:NEW 1:PAID 8:ERROR 9:CANCEL)
	orderStatus := "0"
	switch int64(order.Status) {
	case 1:
		orderStatus = "1"
	case 8, 9:
		orderStatus = "2"
	}

	resp = &types.PayOrderQueryResponse{
		OrderAmount:    order.Amount,
		OrderStatus:    orderStatus,
		ChannelOrderNo: strconv.FormatInt(int64(order.FkOrderId), 10),
	}

	return
}
