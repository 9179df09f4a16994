package errorx

import "strings"

// CodeError 通用錯誤，Error()返回响应代码，responsex依代码取對應訊息
type CodeError struct {
	Code     string
	Messages []string
}

func New(code string, messages ...string) *CodeError {
	return &CodeError{
		Code:     code,
		Messages: messages,
	}
}

func (e *CodeError) Error() string {
	return e.Code
}

func (e *CodeError) Detail() string {
	return strings.Join(e.Messages, " ")
}
