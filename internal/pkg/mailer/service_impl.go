package mailer

import (
	"bytes"
	"crypto/tls"
	"errors"
	"fmt"
	"html/template"
	"mime"
	"net/smtp"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"
)

type impl struct {
	cfg SMTPConfig
}

type SMTPConfig struct {
	Host       string
	Port       string
	Username   string
	Password   string
	Encryption string // "tls" usa STARTTLS
	Address    string // From:
}

var (
	instance                Service
	once                    sync.Once
	initErr                 error
	ErrMailerNotInitialized = errors.New("mailer not initialized")
)

// loginAuth implementa AUTH LOGIN (Office 365 recusa PLAIN após STARTTLS).
type loginAuth struct {
	username, password string
}

func LoginAuth(username, password string) smtp.Auth {
	return &loginAuth{username, password}
}

func (a *loginAuth) Start(server *smtp.ServerInfo) (string, []byte, error) {
	return "LOGIN", []byte{}, nil
}

func (a *loginAuth) Next(fromServer []byte, more bool) ([]byte, error) {
	if !more {
		return nil, nil
	}
	switch string(fromServer) {
	case "Username:":
		return []byte(a.username), nil
	case "Password:":
		return []byte(a.password), nil
	default:
		return nil, errors.New("unknown from server")
	}
}

func (c SMTPConfig) validate() error {
	var missing []string
	for name, v := range map[string]string{
		"host": c.Host, "port": c.Port, "username": c.Username,
		"password": c.Password, "encryption": c.Encryption, "address": c.Address,
	} {
		if strings.TrimSpace(v) == "" {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required SMTP configuration: %s", strings.Join(missing, ", "))
	}
	return nil
}

// New cria a instância do mailer (uma vez).
func New(cfg SMTPConfig) (Service, error) {
	once.Do(func() {
		if err := cfg.validate(); err != nil {
			initErr = err
			return
		}
		instance = &impl{cfg: cfg}
	})

	return instance, initErr
}

// Use retorna a instância já inicializada (pode ser nil)
func Use() Service { return instance }

// BuildMessage monta cabeçalhos e corpo HTML.
func BuildMessage(from, to, subject, body string) []byte {
	var b strings.Builder
	b.WriteString("From: " + from + "\r\n")
	b.WriteString("To: " + to + "\r\n")
	b.WriteString("Subject: " + mime.QEncoding.Encode("UTF-8", subject) + "\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n\r\n")
	b.WriteString(body)
	return []byte(b.String())
}

func (m *impl) SendRaw(to, subject, body string) error {
	msg := BuildMessage(m.cfg.Address, to, subject, body)
	addr := fmt.Sprintf("%s:%s", m.cfg.Host, m.cfg.Port)

	var err error
	if m.cfg.Encryption == "tls" {
		err = m.sendWithStartTLS(addr, to, msg)
	} else {
		auth := smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
		err = smtp.SendMail(addr, auth, m.cfg.Address, []string{to}, msg)
	}
	if err != nil {
		log.Error().Err(err).Str("component", "mailer").Str("addr", addr).Msg("falha ao enviar email")
		return fmt.Errorf("erro ao enviar email via %s: %w", addr, err)
	}
	return nil
}

func (m *impl) sendWithStartTLS(addr, to string, msg []byte) error {
	c, err := smtp.Dial(addr)
	if err != nil {
		return fmt.Errorf("smtp dial error: %w", err)
	}
	defer c.Close()

	if err = c.Hello("localhost"); err != nil {
		return fmt.Errorf("smtp hello error: %w", err)
	}
	if err = c.StartTLS(&tls.Config{ServerName: m.cfg.Host}); err != nil {
		return fmt.Errorf("smtp starttls error: %w", err)
	}
	if err = c.Auth(LoginAuth(m.cfg.Username, m.cfg.Password)); err != nil {
		return fmt.Errorf("smtp auth error: %w", err)
	}
	if err = c.Mail(m.cfg.Address); err != nil {
		return fmt.Errorf("smtp mail error: %w", err)
	}
	if err = c.Rcpt(to); err != nil {
		return fmt.Errorf("smtp rcpt error: %w", err)
	}

	wc, err := c.Data()
	if err != nil {
		return fmt.Errorf("smtp data error: %w", err)
	}
	if _, err = wc.Write(msg); err != nil {
		_ = wc.Close()
		return fmt.Errorf("smtp write error: %w", err)
	}
	if err = wc.Close(); err != nil {
		return fmt.Errorf("smtp close data error: %w", err)
	}

	// o email já foi aceito; erro no QUIT é ignorado
	_ = c.Quit()
	return nil
}

// RenderTemplate executa o template HTML do email.
func RenderTemplate(tpl string, data any) (string, error) {
	t, err := template.New("email").Parse(tpl)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func (m *impl) SendTemplate(to, subject, tpl string, data any) error {
	body, err := RenderTemplate(tpl, data)
	if err != nil {
		return err
	}
	return m.SendRaw(to, subject, body)
}
