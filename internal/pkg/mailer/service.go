package mailer

// Service envia emails HTML. Hoje só o código OTP da redefinição de senha passa por aqui.
type Service interface {
	SendRaw(to, subject, body string) error
	// SendTemplate renderiza tpl com html/template antes do envio.
	SendTemplate(to, subject, tpl string, data any) error
}
