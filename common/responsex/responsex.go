package responsex

import (
	"net/http"

	"github.com/copo888/freekassapay/common/errorx"
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/rest/httpx"
)

type Body struct {
	Code string      `json:"code"`
	Msg  string      `json:"msg"`
	Data interface{} `json:"data,omitempty"`
}

func Json(w http.ResponseWriter, r *http.Request, code string, resp interface{}, err error) {
	body := Body{
		Code: code,
		Msg:  Message(code),
		Data: resp,
	}

	if err != nil {
		logx.WithContext(r.Context()).Errorf("response error: %s", err.Error())
		if codeErr, ok := err.(*errorx.CodeError); ok && codeErr.Detail() != "" {
			body.Msg = body.Msg + ": " + codeErr.Detail()
		}
	}

	httpx.OkJson(w, body)
}
