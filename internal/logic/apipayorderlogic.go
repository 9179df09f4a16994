package logic

import (
	"context"
	"fmt"
	"strconv"

	"github.com/copo888/freekassapay/common/constants"
	"github.com/copo888/freekassapay/common/errorx"
	"github.com/copo888/freekassapay/common/model"
	"github.com/copo888/freekassapay/common/responsex"
	"github.com/copo888/freekassapay/common/typesX"
	"github.com/copo888/freekassapay/common/utils"
	"github.com/copo888/freekassapay/internal/payutils"
	"github.com/copo888/freekassapay/internal/service"
	"github.com/copo888/freekassapay/internal/svc"
	"github.com/copo888/freekassapay/internal/types"
	"github.com/mitchellh/mapstructure"
	"github.com/shopspring/decimal"
	"github.com/zeromicro/go-zero/core/logx"
	"go.opentelemetry.io/otel/trace"
)

type ApiPayOrderLogic struct {
	logx.Logger
	ctx     context.Context
	svcCtx  *svc.ServiceContext
	traceID string
}

func NewApiPayOrderLogic(ctx context.Context, svcCtx *svc.ServiceContext) ApiPayOrderLogic {
	return ApiPayOrderLogic{
		Logger:  logx.WithContext(ctx),
		ctx:     ctx,
		svcCtx:  svcCtx,
		traceID: trace.SpanContextFromContext(ctx).TraceID().String(),
	}
}

func (l *ApiPayOrderLogic) ApiPayOrder(req *types.ApiPayOrderRequest) (resp *types.PayOrderResponse, err error) {

	logx.WithContext(l.ctx).Infof("Enter ApiPayOrder. channelName: %s, orderNo: %s, ApiPayOrderRequest: %+v", l.svcCtx.Config.ProjectName, req.OrderNo, req)

	// 取得取道資訊
	var channel typesX.ChannelData
	channelModel := model.NewChannel(l.svcCtx.MyDB)
	if channel, err = channelModel.GetChannelByProjectName(l.svcCtx.Config.ProjectName); err != nil {
		return
	}

	// 取值
	amount, errDecimal := decimal.NewFromString(req.TransactionAmount)
	if errDecimal != nil {
		logx.WithContext(l.ctx).Errorf("金额错误 transactionAmount:%s", req.TransactionAmount)
		return nil, errorx.New(responsex.INVALID_PARAMETER, errDecimal.Error())
	}

	payWayId, errParse := strconv.ParseInt(req.PayTypeNo, 10, 64)
	if errParse != nil {
		logx.WithContext(l.ctx).Errorf("支付系统编号错误 payTypeNo:%s", req.PayTypeNo)
		return nil, errorx.New(responsex.INVALID_PARAMETER, errParse.Error())
	}

	currency := req.Currency
	if len(currency) == 0 {
		currency = channel.CurrencyCode
	}

	var ip string
	if len(req.SourceIp) > 0 {
		ip = req.SourceIp
	} else {
		ip = utils.GetRandomIp()
	}

	orderData := payutils.CreateOrderData{
		Nonce:     req.Nonce,
		PayWayId:  payWayId,
		Email:     req.OrderEmail,
		Ip:        ip,
		PaymentId: req.OrderNo,
		Amount:    amount,
		Currency:  currency,
	}

	//寫入交易日志
	if err := utils.CreateTransactionLog(l.svcCtx.MyDB, &typesX.TransactionLogData{
		MerchantNo:      req.MerchantId,
		MerchantOrderNo: req.MerchantOrderNo,
		ChannelCode:     channel.Code,
		OrderNo:         req.OrderNo,
		LogType:         constants.DATA_REQUEST_CHANNEL,
		LogSource:       constants.API_ZF,
		Content:         orderData,
		TraceId:         l.traceID,
	}); err != nil {
		logx.WithContext(l.ctx).Errorf("写入交易日志错误:%s", err)
	}

	// 請求渠道
	channelResp, chnErr := l.svcCtx.FreeKassa.CreateOrder(l.ctx, orderData)
	if chnErr != nil {
		logx.WithContext(l.ctx).Error("呼叫渠道返回錯誤: ", chnErr.Error())
		msg := fmt.Sprintf("支付提单，呼叫'%s'渠道返回錯誤: '%s'，订单号： '%s'", channel.Name, chnErr.Error(), req.OrderNo)

		//寫入交易日志
		if err := utils.CreateTransactionLog(l.svcCtx.MyDB, &typesX.TransactionLogData{
			MerchantNo:       req.MerchantId,
			MerchantOrderNo:  req.MerchantOrderNo,
			ChannelCode:      channel.Code,
			OrderNo:          req.OrderNo,
			LogType:          constants.ERROR_REPLIED_FROM_CHANNEL,
			LogSource:        constants.API_ZF,
			Content:          chnErr.Error(),
			TraceId:          l.traceID,
			ChannelErrorCode: chnErr.Error(),
		}); err != nil {
			logx.WithContext(l.ctx).Errorf("写入交易日志错误:%s", err)
		}

		service.CallTGSendURL(l.ctx, l.svcCtx, &types.TelegramNotifyRequest{ChatID: l.svcCtx.Config.TelegramSend.ChatId, Message: msg})
		return nil, chnErr
	}

	// 渠道回覆處理
	orderResp := struct {
		Type      string  `mapstructure:"type"`
		OrderId   float64 `mapstructure:"orderId"`
		OrderHash string  `mapstructure:"orderHash"`
		Location  string  `mapstructure:"location"`
	}{}

	if err = mapstructure.Decode(channelResp, &orderResp); err != nil {
		return nil, errorx.New(responsex.GENERAL_EXCEPTION, err.Error())
	}

	// 渠道狀態判斷
	if orderResp.Type != "success" {
		msg := fmt.Sprintf("支付提单，呼叫'%s'渠道返回失败: '%+v'，订单号： '%s'", channel.Name, channelResp, req.OrderNo)

		//寫入交易日志
		if err := utils.CreateTransactionLog(l.svcCtx.MyDB, &typesX.TransactionLogData{
			MerchantNo:       req.MerchantId,
			MerchantOrderNo:  req.MerchantOrderNo,
			ChannelCode:      channel.Code,
			OrderNo:          req.OrderNo,
			LogType:          constants.ERROR_REPLIED_FROM_CHANNEL,
			LogSource:        constants.API_ZF,
			Content:          channelResp,
			TraceId:          l.traceID,
			ChannelErrorCode: orderResp.Type,
		}); err != nil {
			logx.WithContext(l.ctx).Errorf("写入交易日志错误:%s", err)
		}

		service.CallTGSendURL(l.ctx, l.svcCtx, &types.TelegramNotifyRequest{ChatID: l.svcCtx.Config.TelegramSend.ChatId, Message: msg})
		return nil, errorx.New(responsex.CHANNEL_REPLY_ERROR, orderResp.Type)
	}

	//寫入交易日志
	if err := utils.CreateTransactionLog(l.svcCtx.MyDB, &typesX.TransactionLogData{
		MerchantNo:      req.MerchantId,
		MerchantOrderNo: req.MerchantOrderNo,
		ChannelCode:     channel.Code,
		OrderNo:         req.OrderNo,
		LogType:         constants.RESPONSE_FROM_CHANNEL,
		LogSource:       constants.API_ZF,
		Content:         channelResp,
		TraceId:         l.traceID,
	}); err != nil {
		logx.WithContext(l.ctx).Errorf("写入交易日志错误:%s", err)
	}

	resp = &types.PayOrderResponse{
		PayPageType:    "url",
		PayPageInfo:    orderResp.Location,
		ChannelOrderNo: strconv.FormatInt(int64(orderResp.OrderId), 10),
	}

	return
}
