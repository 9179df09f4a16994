package service

import (
	"context"
	"fmt"

	"github.com/copo888/freekassapay/internal/svc"
	"github.com/copo888/freekassapay/internal/types"
	"github.com/gioco-play/gozzle"
	"github.com/zeromicro/go-zero/core/logx"
	"go.opentelemetry.io/otel/trace"
)

func CallTGSendURL(ctx context.Context, svcCtx *svc.ServiceContext, notify *types.TelegramNotifyRequest) error {
	if svcCtx.Config.TelegramSend.Host == "" {
		return nil
	}

	span := trace.SpanFromContext(ctx)
	notifyUrl := fmt.Sprintf("%s:%d/telegram/notify", svcCtx.Config.TelegramSend.Host, svcCtx.Config.TelegramSend.Port)

	if _, err := gozzle.Post(notifyUrl).Timeout(25).Trace(span).JSON(notify); err != nil {
		logx.WithContext(ctx).Errorf("报警通知失敗:%s", err.Error())
	}
	return nil
}
