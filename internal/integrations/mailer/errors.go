package mailer

import "errors"

// ErrSendFailed не удалось отправить письмо
var ErrSendFailed = errors.New("mailer: failed to send email")
