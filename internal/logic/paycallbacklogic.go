package logic

import (
	"context"
	"fmt"

	"github.com/copo888/freekassapay/common/constants"
	"github.com/copo888/freekassapay/common/errorx"
	"github.com/copo888/freekassapay/common/responsex"
	"github.com/copo888/freekassapay/common/typesX"
	"github.com/copo888/freekassapay/common/utils"
	"github.com/copo888/freekassapay/internal/svc"
	"github.com/copo888/freekassapay/internal/types"
	"github.com/zeromicro/go-zero/core/logx"
	"go.opentelemetry.io/otel/trace"
)

type PayCallBackLogic struct {
	logx.Logger
	ctx     context.Context
	svcCtx  *svc.ServiceContext
	traceID string
}

func NewPayCallBackLogic(ctx context.Context, svcCtx *svc.ServiceContext) PayCallBackLogic {
	return PayCallBackLogic{
		Logger:  logx.WithContext(ctx),
		ctx:     ctx,
		svcCtx:  svcCtx,
		traceID: trace.SpanContextFromContext(ctx).TraceID().String(),
	}
}

func (l *PayCallBackLogic) PayCallBack(req *types.PayCallBackRequest) (resp string, err error) {

	logx.WithContext(l.ctx).Infof("Enter PayCallBack. channelName: %s, PayCallBackRequest: %+v", l.svcCtx.Config.ProjectName, req)

	//寫入交易日志
	if err := utils.CreateTransactionLog(l.svcCtx.MyDB, &typesX.TransactionLogData{
		MerchantNo: req.MerchantId,
		OrderNo:    req.MerchantOrderId,
		LogType:    constants.CALLBACK_FROM_CHANNEL,
		LogSource:  constants.API_ZF,
		Content:    fmt.Sprintf("%+v", req),
		TraceId:    l.traceID,
	}); err != nil {
		logx.WithContext(l.ctx).Errorf("写入交易日志错误:%s", err)
	}

	// 驗簽，amount取回調原始字串不重新格式化
	if !l.svcCtx.FreeKassa.VerifyNotify(req.Amount, req.MerchantOrderId, req.Sign) {
		logx.WithContext(l.ctx).Errorf("验签失败 orderNo:%s, sign:%s", req.MerchantOrderId, req.Sign)
		return "", errorx.New(responsex.INVALID_SIGN)
	}

	// 渠道要求回覆YES
	return "YES", nil
}
