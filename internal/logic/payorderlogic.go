package logic

import (
	"context"
	"strconv"
	"time"

	"github.com/copo888/freekassapay/common/constants"
	"github.com/copo888/freekassapay/common/constants/redisKey"
	"github.com/copo888/freekassapay/common/errorx"
	"github.com/copo888/freekassapay/common/model"
	"github.com/copo888/freekassapay/common/responsex"
	"github.com/copo888/freekassapay/common/typesX"
	"github.com/copo888/freekassapay/common/utils"
	"github.com/copo888/freekassapay/internal/svc"
	"github.com/copo888/freekassapay/internal/types"
	"github.com/shopspring/decimal"
	"github.com/zeromicro/go-zero/core/logx"
	"go.opentelemetry.io/otel/trace"
)

type PayOrderLogic struct {
	logx.Logger
	ctx     context.Context
	svcCtx  *svc.ServiceContext
	traceID string
}

func NewPayOrderLogic(ctx context.Context, svcCtx *svc.ServiceContext) PayOrderLogic {
	return PayOrderLogic{
		Logger:  logx.WithContext(ctx),
		ctx:     ctx,
		svcCtx:  svcCtx,
		traceID: trace.SpanContextFromContext(ctx).TraceID().String(),
	}
}

func (l *PayOrderLogic) PayOrder(req *types.PayOrderRequest) (resp *types.PayOrderResponse, err error) {

	logx.WithContext(l.ctx).Infof("Enter PayOrder. channelName: %s, orderNo: %s, PayOrderRequest: %+v", l.svcCtx.Config.ProjectName, req.OrderNo, req)

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

	// 組收銀台跳轉網址(本地加簽，不需請求渠道)
	payUrl := l.svcCtx.FreeKassa.BuildCheckoutUrl(amount, currency, req.OrderNo, payWayId)

	//寫入交易日志
	if err := utils.CreateTransactionLog(l.svcCtx.MyDB, &typesX.TransactionLogData{
		MerchantNo:      req.MerchantId,
		MerchantOrderNo: req.MerchantOrderNo,
		ChannelCode:     channel.Code,
		OrderNo:         req.OrderNo,
		LogType:         constants.DATA_REQUEST_CHANNEL,
		LogSource:       constants.API_ZF,
		Content:         payUrl,
		TraceId:         l.traceID,
	}); err != nil {
		logx.WithContext(l.ctx).Errorf("写入交易日志错误:%s", err)
	}

	// 暫存訂單資料，供導向頁查詢
	if l.svcCtx.RedisClient != nil {
		redisCacheKey := redisKey.CACHE_ORDER_DATA + req.OrderNo
		if err := l.svcCtx.RedisClient.Set(l.ctx, redisCacheKey, payUrl, 30*time.Minute).Err(); err != nil {
			logx.WithContext(l.ctx).Errorf("写入redis错误:%s", err)
		}
	}

	resp = &types.PayOrderResponse{
		PayPageType:    "url",
		PayPageInfo:    payUrl,
		ChannelOrderNo: "",
	}

	return
}
